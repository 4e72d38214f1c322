package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/avrkit/partscope/internal/config"
	"github.com/avrkit/partscope/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// rootSchema matches the top level of a configuration file: any number of
// labeled part blocks.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "part", LabelNames: []string{"name"}},
	},
}

// partSchema matches the body of a part block.
var partSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "desc"},
		{Name: "id"},
		{Name: "family_id"},
		{Name: "parent"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "memory", LabelNames: []string{"desc"}},
	},
}

// memorySchema matches the body of a memory block.
var memorySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "size"},
		{Name: "paged"},
		{Name: "page_size"},
		{Name: "num_pages"},
	},
}

// Load parses the configuration file at path and translates it into the
// config model. Parts are processed in declaration order so that a part's
// parent is always translated before the part referencing it.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	content, diags := hclFile.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	model := &config.Model{}
	byName := make(map[string]*config.Part)

	for _, block := range content.Blocks {
		part, err := l.translatePart(block, path, byName)
		if err != nil {
			return nil, err
		}

		// A redefinition of an existing name supersedes the earlier one
		// in place; the registry assumes names are unique.
		if prev, ok := byName[part.Name]; ok {
			for i, p := range model.Parts {
				if p == prev {
					model.Parts[i] = part
					break
				}
			}
		} else {
			model.Parts = append(model.Parts, part)
		}
		byName[part.Name] = part
	}

	logger.Debug("HCL loading complete.", "parts", len(model.Parts))
	return model, nil
}

// translatePart decodes one part block into the model, applying parent
// inheritance first so that the block's own attributes and memory blocks
// act as overrides.
func (l *Loader) translatePart(block *hcl.Block, path string, byName map[string]*config.Part) (*config.Part, error) {
	content, diags := block.Body.Content(partSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid part %q in %s: %w", block.Labels[0], path, diags)
	}

	part := &config.Part{
		Name:       block.Labels[0],
		ConfigFile: path,
		LineNo:     block.DefRange.Start.Line,
	}

	if attr, ok := content.Attributes["parent"]; ok {
		parentName, err := attrString(attr)
		if err != nil {
			return nil, err
		}
		parent, ok := byName[parentName]
		if !ok {
			return nil, fmt.Errorf("part %q at %s: parent %q is not defined earlier in the file",
				part.Name, block.DefRange, parentName)
		}
		inheritFrom(part, parent)
	}

	for name, attr := range content.Attributes {
		if name == "parent" {
			continue
		}
		s, err := attrString(attr)
		if err != nil {
			return nil, err
		}
		switch name {
		case "desc":
			part.Desc = s
		case "id":
			part.ID = s
		case "family_id":
			part.FamilyID = s
		}
	}

	for _, mb := range content.Blocks {
		mem, err := l.translateMemory(mb, part.Name)
		if err != nil {
			return nil, err
		}
		// An inherited region with the same name is replaced wholesale.
		if existing := part.Region(mem.Desc); existing != nil {
			*existing = *mem
		} else {
			part.Mem = append(part.Mem, mem)
		}
	}

	return part, nil
}

// translateMemory decodes one memory block. Size may be any expression
// evaluating to a number, e.g. 32 * 1024.
func (l *Loader) translateMemory(block *hcl.Block, partName string) (*config.Memory, error) {
	content, diags := block.Body.Content(memorySchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid memory %q of part %q: %w", block.Labels[0], partName, diags)
	}

	mem := &config.Memory{Desc: block.Labels[0]}

	for name, attr := range content.Attributes {
		var err error
		switch name {
		case "size":
			mem.Size, err = attrInt(attr)
		case "paged":
			mem.Paged, err = attrBool(attr)
		case "page_size":
			mem.PageSize, err = attrInt(attr)
		case "num_pages":
			mem.NumPages, err = attrInt(attr)
		}
		if err != nil {
			return nil, fmt.Errorf("memory %q of part %q: %w", mem.Desc, partName, err)
		}
	}

	return mem, nil
}

// inheritFrom copies the parent's fields into the child, deep-copying the
// region list so overrides never mutate the parent.
func inheritFrom(child, parent *config.Part) {
	child.Desc = parent.Desc
	child.ID = parent.ID
	child.FamilyID = parent.FamilyID
	child.Mem = make([]*config.Memory, len(parent.Mem))
	for i, m := range parent.Mem {
		cp := *m
		child.Mem[i] = &cp
	}
}
