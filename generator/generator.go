// Package generator renders operation records into Rust bellman source
// fragments. Each supported kind has exactly one renderer, held in a closed
// compile-time table; rendering is pure template interpolation with no state
// shared between calls, so renderers may be invoked concurrently.
package generator

import (
	"fmt"
	"strings"

	"github.com/darkrenaissance/pism/debug"
	"github.com/darkrenaissance/pism/ir"
)

// renderer substitutes op's label, output and operands into the fixed
// fragment shape of one kind. It runs after ir.Operation.Validate, so the
// operand slice is known to match the kind's signature. label is already
// escaped for embedding in a double-quoted literal.
type renderer func(label string, op ir.Operation) string

var renderers = map[ir.Kind]renderer{
	ir.Witness:             renderWitness,
	ir.AssertNotSmallOrder: renderAssertNotSmallOrder,
	ir.FieldToBits:         renderFieldToBits,
	ir.FixedBaseScalarMul:  renderFixedBaseScalarMul,
	ir.PointAdd:            renderPointAdd,
	ir.ExposeInput:         renderExposeInput,
}

func init() {
	// every cataloged kind must have exactly one renderer
	for k := range ir.Signatures() {
		_, ok := renderers[k]
		debug.Assert(ok, "kind "+k.String()+" has no renderer")
	}
}

// Render returns the source fragment for op. Identical inputs always produce
// an identical string; there is no I/O and no dependence on process state.
//
// A kind without a renderer surfaces ir.ErrUnknownKind. A record whose
// operands do not match its kind's signature, or whose label cannot be
// escaped, surfaces an ir.MalformedRecordError before any substitution
// happens.
func Render(op ir.Operation) (string, error) {
	render, ok := renderers[op.Kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ir.ErrUnknownKind, op.Kind)
	}
	if err := op.Validate(); err != nil {
		return "", err
	}
	label, err := escapeLabel(op.Kind, op.Label)
	if err != nil {
		return "", err
	}
	return render(label, op), nil
}

// escapeLabel prepares a diagnostic label for embedding in a double-quoted
// Rust string literal. Quotes and backslashes are escaped; control characters
// have no single canonical escape in a namespace string, so a label carrying
// one is rejected as malformed.
func escapeLabel(kind ir.Kind, label string) (string, error) {
	for _, c := range label {
		if c < 0x20 || c == 0x7f {
			return "", &ir.MalformedRecordError{Kind: kind, Reason: fmt.Sprintf("label %q contains an unescapable control character", label)}
		}
	}
	label = strings.ReplaceAll(label, `\`, `\\`)
	label = strings.ReplaceAll(label, `"`, `\"`)
	return label, nil
}

func renderWitness(label string, op ir.Operation) string {
	return fmt.Sprintf(`let %s = ecc::EdwardsPoint::witness(
    cs.namespace(|| "%s"),
    %s.map(jubjub::ExtendedPoint::from))?;`, op.Output, label, op.Operands[0])
}

func renderAssertNotSmallOrder(label string, op ir.Operation) string {
	return fmt.Sprintf(`%s.assert_not_small_order(cs.namespace(|| "%s"))?;`, op.Operands[0], label)
}

func renderFieldToBits(label string, op ir.Operation) string {
	return fmt.Sprintf(`let %s = boolean::field_into_boolean_vec_le(
    cs.namespace(|| "%s"), %s)?;`, op.Output, label, op.Operands[0])
}

func renderFixedBaseScalarMul(label string, op ir.Operation) string {
	// the base generator comes before the scalar in the bellman call
	return fmt.Sprintf(`let %s = ecc::fixed_base_multiplication(
    cs.namespace(|| "%s"),
    &%s,
    &%s,
)?;`, op.Output, label, op.Operands[1], op.Operands[0])
}

func renderPointAdd(label string, op ir.Operation) string {
	return fmt.Sprintf(`let %s = %s.add(cs.namespace(|| "%s"), &%s)?;`, op.Output, op.Operands[0], label, op.Operands[1])
}

func renderExposeInput(label string, op ir.Operation) string {
	return fmt.Sprintf(`%s.inputize(cs.namespace(|| "%s"))?;`, op.Operands[0], label)
}
