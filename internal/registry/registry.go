package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/avrkit/partscope/internal/config"
	"github.com/avrkit/partscope/internal/ctxlog"
)

// Registry holds all part records parsed from one configuration file.
type Registry struct {
	parts      []*config.Part
	configFile string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// PopulateFromModel copies the loaded part definitions from the config
// model into the registry. It is called once at startup.
func (r *Registry) PopulateFromModel(model *config.Model) {
	r.parts = append(r.parts, model.Parts...)
	if len(model.Parts) > 0 {
		r.configFile = model.Parts[0].ConfigFile
	}
}

// ConfigFile returns the path of the configuration file the registry was
// populated from, or "" for an empty registry.
func (r *Registry) ConfigFile() string {
	return r.configFile
}

// Len returns the number of part records.
func (r *Registry) Len() int {
	return len(r.parts)
}

// All returns the part records in declaration order. The returned slice is
// shared; callers must not modify it.
func (r *Registry) All() []*config.Part {
	return r.parts
}

// Locate finds a part record by name. The search is linear over the
// declaration order and matches the part name, id or desc, folding case.
// No match is reported as nil, not as an error; callers are expected to
// check and produce their own "not found" message.
func (r *Registry) Locate(name string) *config.Part {
	want := strings.ToLower(name)
	for _, p := range r.parts {
		if strings.ToLower(p.Name) == want ||
			strings.ToLower(p.ID) == want ||
			strings.ToLower(p.Desc) == want {
			return p
		}
	}
	return nil
}

// Match returns all parts whose name, id or desc contains substr, folding
// case. An empty substr matches everything.
func (r *Registry) Match(substr string) []*config.Part {
	want := strings.ToLower(substr)
	var out []*config.Part
	for _, p := range r.parts {
		if strings.Contains(strings.ToLower(p.Name), want) ||
			strings.Contains(strings.ToLower(p.ID), want) ||
			strings.Contains(strings.ToLower(p.Desc), want) {
			out = append(out, p)
		}
	}
	return out
}

// Validate performs a sanity check over the populated registry: every part
// needs a name, and memory geometry must not be negative. Duplicate names
// are assumed resolved by the loader and are not re-checked here.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var errs []string
	for _, p := range r.parts {
		if p.Name == "" {
			errs = append(errs, fmt.Sprintf("part at %s:%d has an empty name", p.ConfigFile, p.LineNo))
		}
		for _, m := range p.Mem {
			if m.Size < 0 || m.PageSize < 0 || m.NumPages < 0 {
				errs = append(errs, fmt.Sprintf("part %q: memory %q has negative geometry", p.Name, m.Desc))
			}
			if m.Paged && m.PageSize > 0 && m.NumPages > 0 && m.PageSize*m.NumPages != m.Size {
				logger.Warn("Memory page geometry does not cover its size.",
					"part", p.Name, "memory", m.Desc,
					"size", m.Size, "page_size", m.PageSize, "num_pages", m.NumPages)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
