//go:build !debug

// Package debug toggles internal assertions through the debug build tag.
package debug

const Debug = false
