package trial

import (
	"errors"
	"fmt"

	"github.com/lvlath/zoowalk/walk"
)

// Sentinel errors for trial configuration.
var (
	// ErrGraphNil is returned when Run receives a nil graph.
	ErrGraphNil = errors.New("trial: graph is nil")

	// ErrBadAttempts is returned for a negative attempt budget.
	ErrBadAttempts = errors.New("trial: attempts must be non-negative")

	// ErrBadWorkers is returned when Workers < 1.
	ErrBadWorkers = errors.New("trial: workers must be at least 1")

	// ErrInvalidWalk is returned in Verify mode when the generator reports a
	// complete walk that breaks a walk rule.
	ErrInvalidWalk = errors.New("trial: generator produced an invalid walk")
)

// DefaultAttempts is the attempt budget used by DefaultOptions.
const DefaultAttempts = 1000000

// checkEvery is how many attempts pass between context checks.
const checkEvery = 1024

// Options configures Run.
type Options struct {
	// Attempts is the exact number of walk attempts (≥0).
	Attempts int

	// Workers is the number of goroutines sharing the attempts (≥1).
	Workers int

	// Seed feeds walk.NewRand; 0 selects the fixed default stream.
	Seed int64

	// Walk configures every attempt.
	Walk walk.Options

	// Verify re-checks every complete walk with walk.Validate.
	Verify bool

	// OnResult, if set, is called for each complete walk. With Workers > 1
	// it is called concurrently.
	OnResult func(walk.Result)
}

// DefaultOptions returns one million sequential attempts with the default
// walk options and seed 0.
func DefaultOptions() Options {
	return Options{
		Attempts: DefaultAttempts,
		Workers:  1,
		Walk:     walk.DefaultOptions(),
	}
}

// validate checks the numeric knobs; walk options are checked by walk.NewWalker.
func (o Options) validate() error {
	if o.Attempts < 0 {
		return fmt.Errorf("%w: got %d", ErrBadAttempts, o.Attempts)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrBadWorkers, o.Workers)
	}
	return nil
}

// Stats summarises a run.
type Stats struct {
	// Attempts actually performed (less than requested only on cancellation).
	Attempts int64
	// Complete, DeadEnds and Pruned count attempt outcomes.
	Complete int64
	DeadEnds int64
	Pruned   int64
	// Best is the final bound; 0 when no complete walk was found.
	Best int64
}

// add folds a worker's counters into s.
func (s *Stats) add(o Stats) {
	s.Attempts += o.Attempts
	s.Complete += o.Complete
	s.DeadEnds += o.DeadEnds
	s.Pruned += o.Pruned
}
