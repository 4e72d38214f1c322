package inspect

import (
	"fmt"

	"github.com/avrkit/partscope/internal/config"
)

// PartMap flattens a part record into a plain mapping with exactly the
// keys desc, id, family_id, config_file, lineno and mem. The mem key holds
// the flattened memory regions in declaration order.
//
// The argument is type-checked at the boundary: anything other than a
// *config.Part is rejected with an error and no partial result.
func PartMap(v any) (map[string]any, error) {
	p, ok := v.(*config.Part)
	if !ok {
		return nil, fmt.Errorf("wrong argument: %T, expecting *config.Part", v)
	}

	mem := make([]map[string]any, 0, len(p.Mem))
	for m := range p.Regions() {
		mm, err := MemoryMap(m)
		if err != nil {
			return nil, err
		}
		mem = append(mem, mm)
	}

	return map[string]any{
		"desc":        p.Desc,
		"id":          p.ID,
		"family_id":   p.FamilyID,
		"config_file": p.ConfigFile,
		"lineno":      p.LineNo,
		"mem":         mem,
	}, nil
}

// MemoryMap flattens one memory region into a plain mapping with the keys
// desc, size, paged, page_size and num_pages. Like PartMap it fails closed
// on any argument that is not a *config.Memory.
func MemoryMap(v any) (map[string]any, error) {
	m, ok := v.(*config.Memory)
	if !ok {
		return nil, fmt.Errorf("wrong argument: %T, expecting *config.Memory", v)
	}

	return map[string]any{
		"desc":      m.Desc,
		"size":      m.Size,
		"paged":     m.Paged,
		"page_size": m.PageSize,
		"num_pages": m.NumPages,
	}, nil
}
