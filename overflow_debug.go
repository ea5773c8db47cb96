//go:build ux_debug

package ux

const overflowChecks = true
