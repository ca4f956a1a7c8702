package slotedit

import (
	"fmt"

	"github.com/hpdic/hermes/core/bfvwrapper"
)

// Budget tracks how much of a ciphertext's nominal multiplicative budget has
// been spent on masked multiplications. A ciphertext cannot report this
// itself, so the caller keeps one Budget per stored ciphertext, charges it
// before each edit, and resets it after a refresh.
type Budget struct {
	depth, spent int
}

// NewBudget returns a tracker sized to the context's nominal depth.
func NewBudget(he *bfvwrapper.HeContext) *Budget {
	return &Budget{depth: he.Depth()}
}

// Charge records n stacked masked multiplications, failing with
// ErrNoiseBudget if they would overdraw the budget. On failure nothing is
// recorded: the caller refreshes the ciphertext, resets the budget and
// retries.
func (b *Budget) Charge(n int) error {
	if b.spent+n > b.depth {
		return fmt.Errorf("%w: %d spent + %d requested > depth %d",
			bfvwrapper.ErrNoiseBudget, b.spent, n, b.depth)
	}
	b.spent += n
	return nil
}

// Spent reports the consumed depth.
func (b *Budget) Spent() int {
	return b.spent
}

// Remaining reports the unconsumed depth.
func (b *Budget) Remaining() int {
	return b.depth - b.spent
}

// Reset clears the tracker after the ciphertext has been refreshed.
func (b *Budget) Reset() {
	b.spent = 0
}

// RemoveCost is the depth charge of a Remove at the given position: interior
// removals stack two multiplications on the surviving data, trailing
// removals one.
func RemoveCost(index, k int) int {
	if index == k-1 {
		return 1
	}
	return 2
}
