package ir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/darkrenaissance/pism/ir"
)

func TestKindNameRoundTrip(t *testing.T) {
	for kind := range ir.Signatures() {
		got, err := ir.KindFromString(kind.String())
		require.NoError(t, err)
		require.Equal(t, kind, got)
	}
}

func TestKindFromStringUnknown(t *testing.T) {
	for _, name := range []string{"", "poseidon", "Witness", "ec_double"} {
		_, err := ir.KindFromString(name)
		require.ErrorIs(t, err, ir.ErrUnknownKind, "name %q", name)
	}
}

func TestNewIdentifier(t *testing.T) {
	for _, name := range []string{"p", "r_bits", "_tmp", "G", "value0"} {
		id, err := ir.NewIdentifier(name)
		require.NoError(t, err)
		require.Equal(t, ir.Identifier(name), id)
	}
	for _, name := range []string{"", "0x", "a-b", "a b", "é", "p;drop"} {
		_, err := ir.NewIdentifier(name)
		require.ErrorIs(t, err, ir.ErrInvalidIdentifier, "name %q", name)
	}
}

func TestValidate(t *testing.T) {
	valid := ir.Operation{Label: "sum", Kind: ir.PointAdd, Output: "s", Operands: []ir.Identifier{"p", "rg"}}
	require.NoError(t, valid.Validate())

	var mr *ir.MalformedRecordError

	tooFew := valid
	tooFew.Operands = tooFew.Operands[:1]
	err := tooFew.Validate()
	require.ErrorAs(t, err, &mr)
	require.Equal(t, ir.PointAdd, mr.Kind)
	require.Equal(t, 2, mr.Expected)
	require.Equal(t, 1, mr.Actual)

	noOutput := valid
	noOutput.Output = ""
	require.ErrorAs(t, noOutput.Validate(), &mr)

	check := ir.Operation{Label: "pk order", Kind: ir.AssertNotSmallOrder, Operands: []ir.Identifier{"p"}}
	require.NoError(t, check.Validate())
	check.Output = "x"
	require.ErrorAs(t, check.Validate(), &mr)

	badOperand := valid
	badOperand.Operands = []ir.Identifier{"p", "not an identifier"}
	require.ErrorAs(t, badOperand.Validate(), &mr)

	unknown := ir.Operation{Kind: ir.Kind(99)}
	require.ErrorIs(t, unknown.Validate(), ir.ErrUnknownKind)
}

func TestSignatures(t *testing.T) {
	sigs := ir.Signatures()
	require.Len(t, sigs, 6)

	for kind, want := range map[ir.Kind]struct {
		arity     int
		hasOutput bool
	}{
		ir.Witness:             {1, true},
		ir.AssertNotSmallOrder: {1, false},
		ir.FieldToBits:         {1, true},
		ir.FixedBaseScalarMul:  {2, true},
		ir.PointAdd:            {2, true},
		ir.ExposeInput:         {1, false},
	} {
		sig, ok := sigs[kind]
		require.True(t, ok, "missing signature for %s", kind)
		require.Len(t, sig.Operands, want.arity, "kind %s", kind)
		require.Equal(t, want.hasOutput, sig.HasOutput, "kind %s", kind)

		fromCatalog, err := ir.SignatureOf(kind)
		require.NoError(t, err)
		require.Equal(t, sig, fromCatalog)
	}

	// the copy must not alias the catalog
	sig := sigs[ir.PointAdd]
	sig.Operands[0] = "mutated"
	fresh, err := ir.SignatureOf(ir.PointAdd)
	require.NoError(t, err)
	require.Equal(t, "a", fresh.Operands[0])
}
