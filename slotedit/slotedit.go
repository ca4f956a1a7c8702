// Package slotedit edits packed ciphertext vectors at slot granularity:
// one-hot insertion and density-preserving removal via masking and rotation.
// Every operation is pure: the input ciphertext is never touched and the
// result is a fresh ciphertext. The logical length k of a vector lives
// outside the ciphertext, so each mutating call takes it as an argument and
// the caller carries the updated value forward.
package slotedit

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"

	"github.com/hpdic/hermes/core/bfvwrapper"
)

// IndexError reports an insert/remove position outside the valid range.
type IndexError struct {
	Index, K, Slots int
}

func (e IndexError) Error() string {
	if e.K > 0 {
		return fmt.Sprintf("slotedit: index %d out of range for k=%d, slots=%d", e.Index, e.K, e.Slots)
	}
	return fmt.Sprintf("slotedit: index %d out of range for slots=%d", e.Index, e.Slots)
}

// Insert writes value into the given slot by adding a fresh one-hot
// encryption. The target slot must currently be zero: inserting into an
// occupied slot adds to the existing value rather than replacing it, and
// keeping that precondition is the caller's responsibility.
func Insert(he *bfvwrapper.HeContext, ct *rlwe.Ciphertext, value int64, index int) (*rlwe.Ciphertext, error) {
	if index < 0 || index >= he.Slots() {
		return nil, IndexError{Index: index, Slots: he.Slots()}
	}
	alg := he.Algebra()
	oneHot := make([]int64, index+1)
	oneHot[index] = value
	enc, err := alg.Encrypt(oneHot)
	if err != nil {
		return nil, fmt.Errorf("cannot Insert: %w", err)
	}
	out, err := alg.AddCt(ct, enc)
	if err != nil {
		return nil, fmt.Errorf("cannot Insert: %w", err)
	}
	he.TraceCt("slotedit.Insert", out, index+1)
	return out, nil
}

// Remove deletes the value at index from a dense vector of logical length k
// and keeps the vector dense: the trailing element at slot k-1 moves into
// the vacated slot, all other elements keep their relative order. The result
// has logical length k-1.
//
// Removing the trailing slot is a single masked multiplication. An interior
// removal costs one rotation, three masked multiplications and one addition;
// that trade buys a dense layout with the scalar k as the only side-channel
// metadata, instead of a free-slot bitmap. The stacked multiplications draw
// on the multiplicative budget (see Budget).
func Remove(he *bfvwrapper.HeContext, ct *rlwe.Ciphertext, index, k int) (*rlwe.Ciphertext, error) {
	slots := he.Slots()
	if index < 0 || k < 1 || index >= k || k > slots {
		return nil, IndexError{Index: index, K: k, Slots: slots}
	}
	alg := he.Algebra()
	width := he.Params.MaxSlots()

	if index == k-1 {
		out, err := alg.MulPlain(ct, maskZeroAt(width, index))
		if err != nil {
			return nil, fmt.Errorf("cannot Remove: %w", err)
		}
		he.TraceCt("slotedit.Remove/tail", out, k)
		return out, nil
	}

	// Zero the removed slot.
	cleared, err := alg.MulPlain(ct, maskZeroAt(width, index))
	if err != nil {
		return nil, fmt.Errorf("cannot Remove: %w", err)
	}

	// Isolate the trailing element.
	tail, err := alg.MulPlain(ct, maskOneAt(width, k-1))
	if err != nil {
		return nil, fmt.Errorf("cannot Remove: %w", err)
	}

	// Carry it into the gap.
	shifted, err := alg.Rotate(tail, (k-1)-index)
	if err != nil {
		return nil, fmt.Errorf("cannot Remove: %w", err)
	}
	merged, err := alg.AddCt(cleared, shifted)
	if err != nil {
		return nil, fmt.Errorf("cannot Remove: %w", err)
	}

	// Clear the now-duplicated trailing slot.
	out, err := alg.MulPlain(merged, maskZeroAt(width, k-1))
	if err != nil {
		return nil, fmt.Errorf("cannot Remove: %w", err)
	}
	he.TraceCt("slotedit.Remove", out, k)
	return out, nil
}

// maskZeroAt is all ones with a zero at i.
func maskZeroAt(width, i int) []uint64 {
	mask := make([]uint64, width)
	for j := range mask {
		mask[j] = 1
	}
	mask[i] = 0
	return mask
}

// maskOneAt is all zeros with a one at i.
func maskOneAt(width, i int) []uint64 {
	mask := make([]uint64, width)
	mask[i] = 1
	return mask
}
