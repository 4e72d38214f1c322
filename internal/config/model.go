package config

import "iter"

// Model is the unified, format-agnostic representation of a parsed part
// configuration database. Parts appear in declaration order.
type Model struct {
	Parts []*Part
}

// Part is one device description from the configuration file. A part owns
// its memory regions; the slice preserves declaration order.
type Part struct {
	Name     string
	Desc     string
	ID       string
	FamilyID string

	// Source provenance of the part block.
	ConfigFile string
	LineNo     int

	Mem []*Memory
}

// Memory is one named addressable memory area of a part. PageSize and
// NumPages are only meaningful when Paged is true.
type Memory struct {
	Desc     string
	Size     int
	Paged    bool
	PageSize int
	NumPages int
}

// Regions iterates over the part's memory regions in declaration order.
// The sequence is finite and restartable, and it hides the backing storage
// from callers that only need traversal.
func (p *Part) Regions() iter.Seq[*Memory] {
	return func(yield func(*Memory) bool) {
		for _, m := range p.Mem {
			if !yield(m) {
				return
			}
		}
	}
}

// Region returns the memory region with the given description, or nil.
func (p *Part) Region(desc string) *Memory {
	for _, m := range p.Mem {
		if m.Desc == desc {
			return m
		}
	}
	return nil
}
