//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cli

// isTerminal always reports false; the repl falls back to plain line input.
func isTerminal(uintptr) bool {
	return false
}
