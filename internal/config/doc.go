// Package config defines the format-agnostic model of the part
// configuration database, along with the Loader interface implemented by
// format-specific packages.
//
// The config.Model is the single source of truth for the registry and the
// presentation layer. The concrete HCL implementation lives in the hcl
// package.
package config
