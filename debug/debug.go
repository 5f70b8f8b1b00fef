//go:build !debug

// Package debug controls debug-only behaviour of the library.
//
// Building with the "debug" tag enables internal assertions and keeps the
// global logger active under "go test".
package debug

const Debug = false

// Assert does nothing unless the debug build tag is set.
func Assert(condition bool, message ...string) {}
