// Package inspect converts part records into plain mappings for display
// and renders the memory overview table. It is the presentation layer over
// the registry: no state of its own, output to a caller-supplied writer.
package inspect
