//go:build !ux_debug

package ux

// overflowChecks is enabled with the ux_debug build tag. Without it, Add and
// Sub wrap like the native integer types do.
const overflowChecks = false
