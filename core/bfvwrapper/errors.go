package bfvwrapper

import (
	"encoding"
	"errors"
	"fmt"
)

var (
	// ErrParameter reports cryptographically inconsistent scheme parameters.
	ErrParameter = errors.New("bfvwrapper: invalid scheme parameters")

	// ErrKeyLoad reports missing or corrupt persisted key material.
	ErrKeyLoad = errors.New("bfvwrapper: cannot load key material")

	// ErrContextMismatch reports key material that belongs to a different
	// context lineage than the one it is being loaded into.
	ErrContextMismatch = errors.New("bfvwrapper: key material belongs to a different context lineage")

	// ErrNoiseBudget reports a ciphertext whose multiplicative budget is
	// exhausted; it must be refreshed before further masked operations.
	ErrNoiseBudget = errors.New("bfvwrapper: multiplicative budget exhausted, refresh required")
)

// UnmarshalBlob decodes data into v. The engine's binary decoders panic on
// malformed length prefixes instead of returning an error, so decode panics
// are recovered here and reported as ordinary errors. Every boundary that
// ingests serialized engine objects must go through this.
func UnmarshalBlob(v encoding.BinaryUnmarshaler, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed blob: %v", r)
		}
	}()
	return v.UnmarshalBinary(data)
}
