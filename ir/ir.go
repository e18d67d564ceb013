// Package ir defines the operation records consumed by the gadget code
// generator: the closed set of supported operation kinds, validated
// identifiers, and the per-kind signatures an external dispatcher must honor.
package ir

import (
	"errors"
	"fmt"
)

// Kind identifies one supported gadget operation.
type Kind int

const (
	Unknown Kind = iota
	Witness
	AssertNotSmallOrder
	FieldToBits
	FixedBaseScalarMul
	PointAdd
	ExposeInput
)

// ErrUnknownKind is returned when an operation kind is not in the catalog.
var ErrUnknownKind = errors.New("unknown operation kind")

// ErrInvalidIdentifier is returned when a name is not a valid identifier in
// the generated source.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// wire names as they appear in circuit description files
var kindNames = map[Kind]string{
	Witness:             "witness",
	AssertNotSmallOrder: "assert_not_small_order",
	FieldToBits:         "fr_as_binary_le",
	FixedBaseScalarMul:  "ec_mul_const",
	PointAdd:            "ec_add",
	ExposeInput:         "emit_ec",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// String returns the kind's wire name, the name used to select the operation
// in circuit description files.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// KindFromString resolves a wire name to its Kind. An unknown name is an
// unresolvable-kind error; it never silently matches a cataloged operation.
func KindFromString(name string) (Kind, error) {
	k, ok := kindByName[name]
	if !ok {
		return Unknown, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Identifier is a variable name substituted verbatim into generated source.
// It is validated at construction so malformed names are caught when the IR
// is built rather than inside the generated output.
type Identifier string

// NewIdentifier validates name as an identifier of the target source
// language: a letter or underscore followed by letters, digits or
// underscores.
func NewIdentifier(name string) (Identifier, error) {
	if !validIdentifier(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return Identifier(name), nil
}

func validIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Operation is one record of the circuit description IR. Records are
// ephemeral; they carry no state across render calls.
type Operation struct {
	// Label is a diagnostic tag embedded in the generated source as a quoted
	// string literal. It names the constraint namespace and is never
	// interpreted as code.
	Label string

	Kind Kind

	// Output is the name bound to the result, for kinds that produce one.
	// The zero value means the kind produces no output.
	Output Identifier

	// Operands reference previously produced values or external inputs.
	// Their count and role order are fixed per kind, see Signatures.
	Operands []Identifier
}

// MalformedRecordError reports an operation record that does not match its
// kind's signature: wrong operand arity, wrong output presence, an invalid
// identifier or an unescapable label.
type MalformedRecordError struct {
	Kind     Kind
	Reason   string
	Expected int
	Actual   int
}

func (e *MalformedRecordError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("malformed %s record: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("malformed %s record: expected %d operands, got %d", e.Kind, e.Expected, e.Actual)
}

// Validate checks the record against its kind's signature. Rendering a record
// that fails Validate is undefined; the generator calls it before any
// substitution so malformed input fails fast.
func (op Operation) Validate() error {
	sig, ok := signatures[op.Kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, op.Kind)
	}
	if len(op.Operands) != len(sig.Operands) {
		return &MalformedRecordError{Kind: op.Kind, Expected: len(sig.Operands), Actual: len(op.Operands)}
	}
	if sig.HasOutput && op.Output == "" {
		return &MalformedRecordError{Kind: op.Kind, Reason: "missing output identifier"}
	}
	if !sig.HasOutput && op.Output != "" {
		return &MalformedRecordError{Kind: op.Kind, Reason: fmt.Sprintf("unexpected output identifier %q", op.Output)}
	}
	if op.Output != "" && !validIdentifier(string(op.Output)) {
		return &MalformedRecordError{Kind: op.Kind, Reason: fmt.Sprintf("invalid output identifier %q", op.Output)}
	}
	for _, operand := range op.Operands {
		if !validIdentifier(string(operand)) {
			return &MalformedRecordError{Kind: op.Kind, Reason: fmt.Sprintf("invalid operand identifier %q", operand)}
		}
	}
	return nil
}

// Signature describes the shape of one operation kind: the ordered operand
// roles and whether the kind binds an output. It is the contract external
// dispatchers must honor.
type Signature struct {
	Operands  []string
	HasOutput bool
}

var signatures = map[Kind]Signature{
	Witness:             {Operands: []string{"point"}, HasOutput: true},
	AssertNotSmallOrder: {Operands: []string{"point"}},
	FieldToBits:         {Operands: []string{"fr"}, HasOutput: true},
	FixedBaseScalarMul:  {Operands: []string{"fr", "base"}, HasOutput: true},
	PointAdd:            {Operands: []string{"a", "b"}, HasOutput: true},
	ExposeInput:         {Operands: []string{"point"}},
}

// SignatureOf returns the signature of k, or ErrUnknownKind.
func SignatureOf(k Kind) (Signature, error) {
	sig, ok := signatures[k]
	if !ok {
		return Signature{}, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	return sig.clone(), nil
}

// Signatures returns a copy of the full catalog keyed by kind.
func Signatures() map[Kind]Signature {
	m := make(map[Kind]Signature, len(signatures))
	for k, sig := range signatures {
		m[k] = sig.clone()
	}
	return m
}

func (sig Signature) clone() Signature {
	operands := make([]string, len(sig.Operands))
	copy(operands, sig.Operands)
	return Signature{Operands: operands, HasOutput: sig.HasOutput}
}
