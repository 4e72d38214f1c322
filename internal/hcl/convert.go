package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// attrValue evaluates an attribute expression. Configuration files carry no
// variables, so the expression is evaluated against a nil EvalContext;
// literals and arithmetic work, references are diagnostics.
func attrValue(attr *hcl.Attribute, want cty.Type) (cty.Value, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("attribute %q at %s: %w", attr.Name, attr.Range, diags)
	}
	if !val.Type().Equals(want) {
		return cty.NilVal, fmt.Errorf("attribute %q at %s: expected %s, got %s",
			attr.Name, attr.Range, want.FriendlyName(), val.Type().FriendlyName())
	}
	return val, nil
}

func attrString(attr *hcl.Attribute) (string, error) {
	val, err := attrValue(attr, cty.String)
	if err != nil {
		return "", err
	}
	var s string
	if err := gocty.FromCtyValue(val, &s); err != nil {
		return "", fmt.Errorf("attribute %q at %s: %w", attr.Name, attr.Range, err)
	}
	return s, nil
}

func attrInt(attr *hcl.Attribute) (int, error) {
	val, err := attrValue(attr, cty.Number)
	if err != nil {
		return 0, err
	}
	var n int
	if err := gocty.FromCtyValue(val, &n); err != nil {
		return 0, fmt.Errorf("attribute %q at %s: %w", attr.Name, attr.Range, err)
	}
	return n, nil
}

func attrBool(attr *hcl.Attribute) (bool, error) {
	val, err := attrValue(attr, cty.Bool)
	if err != nil {
		return false, err
	}
	var b bool
	if err := gocty.FromCtyValue(val, &b); err != nil {
		return false, fmt.Errorf("attribute %q at %s: %w", attr.Name, attr.Range, err)
	}
	return b, nil
}
