package walk

import (
	"math"
	"sync/atomic"
)

// Bound is the pruning bound shared by all attempts of a run: the best
// complete distance seen so far.
type Bound interface {
	// Best returns the current bound.
	Best() int64

	// Offer lowers the bound to d if d is strictly smaller and reports
	// whether it did.
	Offer(d int64) bool
}

// AtomicBound is a lock-free Bound safe for concurrent workers.
type AtomicBound struct {
	best atomic.Int64
}

// NewBound returns an AtomicBound starting at math.MaxInt64 (no walk found yet).
func NewBound() *AtomicBound {
	b := &AtomicBound{}
	b.best.Store(math.MaxInt64)
	return b
}

// Best implements Bound.
func (b *AtomicBound) Best() int64 { return b.best.Load() }

// Offer implements Bound with a compare-and-swap loop.
func (b *AtomicBound) Offer(d int64) bool {
	for {
		cur := b.best.Load()
		if d >= cur {
			return false
		}
		if b.best.CompareAndSwap(cur, d) {
			return true
		}
	}
}

// Found reports whether any distance has been offered successfully.
func (b *AtomicBound) Found() bool { return b.Best() != math.MaxInt64 }
