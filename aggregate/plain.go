package aggregate

import (
	"github.com/google/uuid"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"

	"github.com/hpdic/hermes/core/bfvwrapper"
	"github.com/hpdic/hermes/packvec"
)

// PlainAccumulator folds raw, not-yet-encrypted integers in the clear and
// encrypts the total once at Finalize. The decrypted result is identical to
// folding encryptions of the same multiset at the ciphertext level, at a
// fraction of the cost. Like Accumulator, an empty session finalizes to
// ErrNoData rather than an encrypted zero.
type PlainAccumulator struct {
	ID uuid.UUID

	he          *bfvwrapper.HeContext
	sum         int64
	initialized bool
}

// NewPlainAccumulator starts an empty clear-side aggregation session.
func NewPlainAccumulator(he *bfvwrapper.HeContext) *PlainAccumulator {
	return &PlainAccumulator{ID: uuid.New(), he: he}
}

// Accumulate adds v to the running clear sum.
func (g *PlainAccumulator) Accumulate(v int64) {
	g.sum += v
	g.initialized = true
}

// Finalize encrypts the total as a vector of logical length one.
func (g *PlainAccumulator) Finalize() (*rlwe.Ciphertext, error) {
	if !g.initialized {
		return nil, ErrNoData
	}
	ct, err := packvec.EncodeScalar(g.he, g.sum)
	if err != nil {
		return nil, err
	}
	g.he.TraceCt("aggregate.PlainFinalize/"+g.ID.String(), ct, 1)
	return ct, nil
}

// Reset clears the state for the next group.
func (g *PlainAccumulator) Reset() {
	g.sum = 0
	g.initialized = false
}
