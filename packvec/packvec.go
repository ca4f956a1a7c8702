// Package packvec maps bounded integer vectors to and from the slots of a
// single ciphertext. A ciphertext carries no logical length: the caller
// tracks how many leading slots hold valid data and supplies that length on
// decode.
package packvec

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"

	"github.com/hpdic/hermes/core/bfvwrapper"
)

// CapacityError reports a vector that does not fit the slot capacity.
type CapacityError struct {
	Len, Slots int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("packvec: %d values exceed the %d-slot capacity", e.Len, e.Slots)
}

// Encode packs values into slots [0, len(values)), zero elsewhere, and
// encrypts the result.
func Encode(he *bfvwrapper.HeContext, values []int64) (*rlwe.Ciphertext, error) {
	if len(values) > he.Slots() {
		return nil, CapacityError{Len: len(values), Slots: he.Slots()}
	}
	return he.Algebra().Encrypt(values)
}

// Decode decrypts ct and returns its first length slots. The ciphertext
// cannot self-describe its logical length, so supplying the wrong length
// silently yields a truncated vector or stale padding; keeping length
// correct across mutations is the caller's obligation, not an internal
// check.
func Decode(he *bfvwrapper.HeContext, ct *rlwe.Ciphertext, length int) ([]int64, error) {
	if length < 0 || length > he.Slots() {
		return nil, fmt.Errorf("packvec: length %d outside [0, %d]", length, he.Slots())
	}
	values, err := he.Algebra().Decrypt(ct)
	if err != nil {
		return nil, fmt.Errorf("cannot Decode: %w", err)
	}
	return values[:length:length], nil
}

// EncodeScalar packs a single integer as a vector of logical length one.
func EncodeScalar(he *bfvwrapper.HeContext, v int64) (*rlwe.Ciphertext, error) {
	return Encode(he, []int64{v})
}

// DecodeScalar returns the value in slot 0.
func DecodeScalar(he *bfvwrapper.HeContext, ct *rlwe.Ciphertext) (int64, error) {
	values, err := Decode(he, ct, 1)
	if err != nil {
		return 0, err
	}
	return values[0], nil
}

// AddScalar adds a clear value to an encrypted scalar without encrypting it.
func AddScalar(he *bfvwrapper.HeContext, ct *rlwe.Ciphertext, v int64) (*rlwe.Ciphertext, error) {
	out, err := he.Algebra().AddPlain(ct, []int64{v})
	if err != nil {
		return nil, fmt.Errorf("cannot AddScalar: %w", err)
	}
	return out, nil
}

// MulScalars multiplies two encrypted scalars. The product draws one level
// of the multiplicative budget, like any ciphertext multiplication.
func MulScalars(he *bfvwrapper.HeContext, a, b *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
	out, err := he.Algebra().MulCt(a, b)
	if err != nil {
		return nil, fmt.Errorf("cannot MulScalars: %w", err)
	}
	return out, nil
}
