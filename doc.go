// Package pism compiles pism circuit descriptions into Rust bellman gadget
// code for the jubjub curve.
//
// A description is an ordered sequence of gadget operations. The parser turns
// it into operation records (package ir), and the generator renders each
// record into the exact source fragment the bellman constraint system
// expects (package generator). The emitted fragments are concatenated into a
// synthesize body, one fragment per description line.
package pism

import (
	"github.com/blang/semver/v4"

	"github.com/darkrenaissance/pism/ir"
)

var Version = semver.MustParse("0.1.0")

// Kinds returns the gadget operation kinds supported by the generator, in
// catalog order.
func Kinds() []ir.Kind {
	return []ir.Kind{
		ir.Witness,
		ir.AssertNotSmallOrder,
		ir.FieldToBits,
		ir.FixedBaseScalarMul,
		ir.PointAdd,
		ir.ExposeInput,
	}
}
