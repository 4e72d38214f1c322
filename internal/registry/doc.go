// Package registry holds the in-memory collection of all parsed part
// records for a single application instance.
//
// The registry is populated once at startup from the loaded config model
// and is read-only thereafter. It replaces the process-wide global part
// list of the original C library with an explicit context object that is
// constructed by the app and passed to lookups and presentation.
package registry
