// Package shell implements the interactive inspection surface: a
// line-oriented command loop over a populated registry, the equivalent of
// loading the original harness into a live interpreter session.
package shell
