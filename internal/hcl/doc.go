// Package hcl is the HCL-specific implementation of the config.Loader
// interface. It parses an avrdude.conf written in HCL into the
// format-agnostic config model, evaluating attribute expressions to cty
// values and converting them to Go types.
package hcl
