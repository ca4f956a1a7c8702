// Package aggregate implements two-tier homomorphic summation: a streaming
// per-group fold into one ciphertext, then the same fold across the
// finalized group sums. All operands of one fold must come from the same
// context lineage.
package aggregate

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"

	"github.com/hpdic/hermes/core/bfvwrapper"
	"github.com/hpdic/hermes/packvec"
)

// ErrNoData reports a fold that saw no input. An empty group surfaces as the
// absence of a ciphertext, never as an encryption of zero: consumers must be
// able to tell "summed to zero" apart from "had no rows".
var ErrNoData = errors.New("aggregate: no rows accumulated")

// Accumulator is the per-group fold state. It is scoped to one aggregation
// session and must not be shared across concurrently running sessions.
type Accumulator struct {
	// ID tags the session in traces and logs.
	ID uuid.UUID

	he          *bfvwrapper.HeContext
	acc         *rlwe.Ciphertext
	initialized bool
}

// NewAccumulator starts an empty aggregation session.
func NewAccumulator(he *bfvwrapper.HeContext) *Accumulator {
	return &Accumulator{ID: uuid.New(), he: he}
}

// Accumulate folds ct into the running sum. Slot-wise ciphertext addition is
// associative and commutative, so the order of calls never changes the
// decrypted result for a fixed input multiset.
func (g *Accumulator) Accumulate(ct *rlwe.Ciphertext) error {
	if !g.initialized {
		g.acc = ct.CopyNew()
		g.initialized = true
		return nil
	}
	sum, err := g.he.Algebra().AddCt(g.acc, ct)
	if err != nil {
		return fmt.Errorf("cannot Accumulate: %w", err)
	}
	g.acc = sum
	return nil
}

// Finalize returns the group sum, or ErrNoData if nothing was accumulated.
func (g *Accumulator) Finalize() (*rlwe.Ciphertext, error) {
	if !g.initialized {
		return nil, ErrNoData
	}
	g.he.TraceCt("aggregate.Finalize/"+g.ID.String(), g.acc, 1)
	return g.acc.CopyNew(), nil
}

// Reset clears the state so the accumulator can serve the next group.
func (g *Accumulator) Reset() {
	g.acc = nil
	g.initialized = false
}

// GlobalSum folds already-finalized group sums into one total.
func GlobalSum(he *bfvwrapper.HeContext, cts []*rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
	g := NewAccumulator(he)
	for _, ct := range cts {
		if err := g.Accumulate(ct); err != nil {
			return nil, err
		}
	}
	return g.Finalize()
}

// SumCiphers adds two packed ciphertexts slot-wise.
func SumCiphers(he *bfvwrapper.HeContext, a, b *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
	return he.Algebra().AddCt(a, b)
}

// PackGroup packs a group's raw values into the slots of one ciphertext, one
// value per slot in arrival order, and reports the logical length. An empty
// group fails with ErrNoData.
func PackGroup(he *bfvwrapper.HeContext, values []int64) (*rlwe.Ciphertext, int, error) {
	if len(values) == 0 {
		return nil, 0, ErrNoData
	}
	ct, err := packvec.Encode(he, values)
	if err != nil {
		return nil, 0, err
	}
	return ct, len(values), nil
}

// SlotSum folds every slot of a packed vector into slot 0 by rotate-and-add
// over the provisioned power-of-two offsets. The remaining slots hold
// partial sums and should be ignored.
func SlotSum(he *bfvwrapper.HeContext, ct *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
	alg := he.Algebra()
	out := ct.CopyNew()
	for step := 1; step < he.Slots(); step <<= 1 {
		rotated, err := alg.Rotate(out, step)
		if err != nil {
			return nil, fmt.Errorf("cannot SlotSum: %w", err)
		}
		if out, err = alg.AddCt(out, rotated); err != nil {
			return nil, fmt.Errorf("cannot SlotSum: %w", err)
		}
	}
	return out, nil
}
