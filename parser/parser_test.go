package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/darkrenaissance/pism/ir"
	"github.com/darkrenaissance/pism/parser"
)

const mintDescription = `# mint circuit
input maybe_pk
input r
input G

witness p maybe_pk
assert_not_small_order p

fr_as_binary_le r_bits r
ec_mul_const rg r_bits G
ec_add s p rg
emit_ec s
`

func TestParse(t *testing.T) {
	ops, err := parser.Parse(strings.NewReader(mintDescription))
	require.NoError(t, err)

	want := []ir.Operation{
		{Label: "witness p maybe_pk", Kind: ir.Witness, Output: "p", Operands: []ir.Identifier{"maybe_pk"}},
		{Label: "assert_not_small_order p", Kind: ir.AssertNotSmallOrder, Operands: []ir.Identifier{"p"}},
		{Label: "fr_as_binary_le r_bits r", Kind: ir.FieldToBits, Output: "r_bits", Operands: []ir.Identifier{"r"}},
		{Label: "ec_mul_const rg r_bits G", Kind: ir.FixedBaseScalarMul, Output: "rg", Operands: []ir.Identifier{"r_bits", "G"}},
		{Label: "ec_add s p rg", Kind: ir.PointAdd, Output: "s", Operands: []ir.Identifier{"p", "rg"}},
		{Label: "emit_ec s", Kind: ir.ExposeInput, Operands: []ir.Identifier{"s"}},
	}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Fatalf("parsed operations mismatch (-want +got):\n%s", diff)
	}

	for _, op := range ops {
		require.NoError(t, op.Validate())
	}
}

func TestParseStrict(t *testing.T) {
	ops, err := parser.Parse(strings.NewReader(mintDescription), parser.WithStrict())
	require.NoError(t, err)
	require.Len(t, ops, 6)
}

func TestParseStrictRejectsUndeclaredOperand(t *testing.T) {
	description := `input maybe_pk
witness p maybe_pk
ec_add s p rg
`
	_, err := parser.Parse(strings.NewReader(description), parser.WithStrict())
	require.ErrorIs(t, err, parser.ErrUndeclaredOperand)
	require.Contains(t, err.Error(), "line 3")
	require.Contains(t, err.Error(), `"rg"`)

	// legacy behavior performs no cross-record check
	_, err = parser.Parse(strings.NewReader(description))
	require.NoError(t, err)
}

func TestParseUnknownWireName(t *testing.T) {
	_, err := parser.Parse(strings.NewReader("ec_double q p\n"))
	require.ErrorIs(t, err, ir.ErrUnknownKind)
	require.Contains(t, err.Error(), "line 1")
}

func TestParseArityMismatch(t *testing.T) {
	_, err := parser.Parse(strings.NewReader("witness p\nec_add s p\n"))
	var mr *ir.MalformedRecordError
	require.ErrorAs(t, err, &mr)
	require.Contains(t, err.Error(), "line 1")
}

func TestParseInvalidIdentifier(t *testing.T) {
	_, err := parser.Parse(strings.NewReader("witness 0p maybe_pk\n"))
	require.ErrorIs(t, err, ir.ErrInvalidIdentifier)
}

func TestParseInputDirective(t *testing.T) {
	_, err := parser.Parse(strings.NewReader("input a b\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 1")

	_, err = parser.Parse(strings.NewReader("input 0bad\n"))
	require.ErrorIs(t, err, ir.ErrInvalidIdentifier)
}
