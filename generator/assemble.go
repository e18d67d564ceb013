package generator

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/darkrenaissance/pism/ir"
)

// Assemble renders ops in order and joins the fragments into one source
// body, one fragment per description line separated by blank lines. A render
// failure carries the index of the offending record.
func Assemble(ops []ir.Operation) (string, error) {
	fragments := make([]string, len(ops))
	for i, op := range ops {
		fragment, err := Render(op)
		if err != nil {
			return "", fmt.Errorf("operation %d (%s): %w", i, op.Kind, err)
		}
		fragments[i] = fragment
	}
	return strings.Join(fragments, "\n\n"), nil
}

// Generate assembles ops and writes a complete source fragment for the named
// circuit into w, prefixed with a generated-code header. The result is the
// body an external assembler splices into a synthesize implementation.
func Generate(w io.Writer, name string, ops []ir.Operation) error {
	body, err := Assemble(ops)
	if err != nil {
		return fmt.Errorf("assemble %s: %w", name, err)
	}

	var sbb strings.Builder
	sbb.WriteString("// Code generated by pismc. DO NOT EDIT.\n")
	sbb.WriteString("// Circuit: " + name + "\n\n")
	sbb.WriteString(body)
	sbb.WriteString("\n")

	_, err = io.WriteString(w, sbb.String())
	return err
}

// GenerateFile writes the generated source for the named circuit to path.
func GenerateFile(path, name string, ops []ir.Operation) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Generate(f, name, ops)
}
