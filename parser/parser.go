// Package parser reads pism circuit descriptions into operation records.
//
// A description is line oriented: one operation per non-empty line, lines
// starting with # are comments. The first word of a line is the operation's
// wire name, followed by the output identifier for kinds that bind one, then
// the operand identifiers. The full trimmed line becomes the operation's
// diagnostic label, so constraint namespaces in the generated source match
// the description text.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/darkrenaissance/pism/ir"
)

// ErrUndeclaredOperand is returned in strict mode when an operand was not
// produced by an earlier output and not declared as an external input.
var ErrUndeclaredOperand = errors.New("operand not declared")

type config struct {
	strict bool
}

// Option configures the parser.
type Option func(*config)

// WithStrict makes the parser carry a symbol table and reject operands that
// were neither bound by an earlier operation's output nor declared with an
// input directive. Off by default; the legacy toolchain performed no such
// cross-record check.
func WithStrict() Option {
	return func(cfg *config) {
		cfg.strict = true
	}
}

// Parse reads a circuit description and returns its operation sequence, in
// description order. Every returned record satisfies ir.Operation.Validate.
func Parse(r io.Reader, opts ...Option) ([]ir.Operation, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var ops []ir.Operation
	declared := make(map[ir.Identifier]struct{})

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		words := strings.Fields(line)
		if words[0] == "input" {
			// external input declaration, only meaningful to strict mode
			if len(words) != 2 {
				return nil, fmt.Errorf("line %d: input directive takes exactly one name", lineNo)
			}
			name, err := ir.NewIdentifier(words[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			declared[name] = struct{}{}
			continue
		}

		op, err := parseOperation(line, words)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if cfg.strict {
			for _, operand := range op.Operands {
				if _, ok := declared[operand]; !ok {
					return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrUndeclaredOperand, operand)
				}
			}
		}
		if op.Output != "" {
			declared[op.Output] = struct{}{}
		}

		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

// ParseFile reads the circuit description at path.
func ParseFile(path string, opts ...Option) ([]ir.Operation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, opts...)
}

func parseOperation(line string, words []string) (ir.Operation, error) {
	kind, err := ir.KindFromString(words[0])
	if err != nil {
		return ir.Operation{}, err
	}
	sig, err := ir.SignatureOf(kind)
	if err != nil {
		return ir.Operation{}, err
	}

	args := words[1:]
	op := ir.Operation{Label: line, Kind: kind}

	if sig.HasOutput {
		if len(args) == 0 {
			return ir.Operation{}, &ir.MalformedRecordError{Kind: kind, Reason: "missing output identifier"}
		}
		op.Output, err = ir.NewIdentifier(args[0])
		if err != nil {
			return ir.Operation{}, err
		}
		args = args[1:]
	}

	if len(args) != len(sig.Operands) {
		return ir.Operation{}, &ir.MalformedRecordError{Kind: kind, Expected: len(sig.Operands), Actual: len(args)}
	}
	op.Operands = make([]ir.Identifier, len(args))
	for i, arg := range args {
		op.Operands[i], err = ir.NewIdentifier(arg)
		if err != nil {
			return ir.Operation{}, err
		}
	}
	return op, nil
}
