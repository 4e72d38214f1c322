// Package app wires the application together: it owns the logger, the
// configuration search, the registry, and the dispatch between one-shot
// and interactive operation.
package app
