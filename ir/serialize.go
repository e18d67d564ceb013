package ir

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// serialization format version, bumped on any wire-incompatible change
const serializeVersion = 1

var errInvalidVersion = errors.New("operation stream was serialized with an incompatible version")

// Write serializes an operation sequence into a file.
func Write(path string, ops []Operation) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Serialize(f, ops)
}

// Read deserializes an operation sequence from a file.
func Read(path string) ([]Operation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Deserialize(f)
}

// Serialize encodes ops into the provided writer using deterministic CBOR.
// The format version is encoded in the first bytes.
func Serialize(w io.Writer, ops []Operation) error {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return err
	}
	encoder := em.NewEncoder(w)

	if err := encoder.Encode(serializeVersion); err != nil {
		return err
	}
	return encoder.Encode(ops)
}

// Deserialize reads an operation sequence from the provided reader and
// validates every record against its kind's signature, so a malformed stream
// is rejected here rather than at render time.
func Deserialize(r io.Reader) ([]Operation, error) {
	decoder := cbor.NewDecoder(r)

	var version int
	if err := decoder.Decode(&version); err != nil {
		return nil, err
	}
	if version != serializeVersion {
		return nil, errInvalidVersion
	}

	var ops []Operation
	if err := decoder.Decode(&ops); err != nil {
		return nil, err
	}
	for i, op := range ops {
		if err := op.Validate(); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return ops, nil
}
