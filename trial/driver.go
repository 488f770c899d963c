package trial

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/lvlath/zoowalk/core"
	"github.com/lvlath/zoowalk/result"
	"github.com/lvlath/zoowalk/walk"
)

// progressSteps is how many progress lines a run logs at V(2).
const progressSteps = 10

// run is the state shared by every attempt of one Run call.
type run struct {
	g     *core.Graph
	opts  Options
	set   *result.Set
	bound *walk.AtomicBound

	done     atomic.Int64 // attempts finished, across workers
	progress int64        // log every progress attempts; 0 disables
}

// Run performs opts.Attempts walk attempts over g and returns the set of
// unique covering walks with run statistics.
//
// Errors: ErrGraphNil, ErrBadAttempts, ErrBadWorkers, walk option errors
// from walk.NewWalker, ErrInvalidWalk in Verify mode, or ctx.Err() after
// cancellation. On ctx cancellation or ErrInvalidWalk the partial set and
// stats are returned alongside the error.
func Run(ctx context.Context, g *core.Graph, opts Options) (*result.Set, Stats, error) {
	if g == nil {
		return nil, Stats{}, ErrGraphNil
	}
	if err := opts.validate(); err != nil {
		return nil, Stats{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Build every walker up front so option errors surface before any attempt.
	// Worker streams are derived in index order to keep seeding reproducible.
	base := walk.NewRand(opts.Seed)
	walkers := make([]*walk.Walker, opts.Workers)
	var rng *rand.Rand
	for i := range walkers {
		rng = base
		if opts.Workers > 1 {
			rng = walk.DeriveRand(base, uint64(i))
		}
		w, err := walk.NewWalker(g, opts.Walk, rng)
		if err != nil {
			return nil, Stats{}, err
		}
		walkers[i] = w
	}

	r := &run{
		g:        g,
		opts:     opts,
		set:      result.NewSet(),
		bound:    walk.NewBound(),
		progress: int64(opts.Attempts / progressSteps),
	}
	klog.V(1).Infof("trial: %d attempts on %d workers, %s→%s, max visits %d, seed %d",
		opts.Attempts, opts.Workers, opts.Walk.Entry, opts.Walk.Exit, opts.Walk.MaxVisits, opts.Seed)

	var (
		stats Stats
		err   error
	)
	if opts.Workers == 1 {
		stats, err = r.worker(ctx, walkers[0], opts.Attempts)
	} else {
		stats, err = r.parallel(ctx, walkers)
	}
	if r.bound.Found() {
		stats.Best = r.bound.Best()
	}

	klog.V(1).Infof("trial: %d attempts, %d complete, %d dead ends, %d pruned, %d unique, best %d",
		stats.Attempts, stats.Complete, stats.DeadEnds, stats.Pruned, r.set.Len(), stats.Best)

	return r.set, stats, err
}

// parallel splits the attempts across walkers and merges their counters.
func (r *run) parallel(ctx context.Context, walkers []*walk.Walker) (Stats, error) {
	var (
		total Stats
		mu    sync.Mutex
	)
	per, rem := r.opts.Attempts/len(walkers), r.opts.Attempts%len(walkers)

	grp, gctx := errgroup.WithContext(ctx)
	for i, w := range walkers {
		w := w
		n := per
		if i < rem {
			n++
		}
		grp.Go(func() error {
			st, err := r.worker(gctx, w, n)
			mu.Lock()
			total.add(st)
			mu.Unlock()
			return err
		})
	}
	err := grp.Wait()

	return total, err
}

// worker runs n attempts with one walker.
func (r *run) worker(ctx context.Context, w *walk.Walker, n int) (Stats, error) {
	var st Stats
	for i := 0; i < n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return st, err
			}
		}

		res, state := w.Walk(r.bound)
		st.Attempts++
		switch state {
		case walk.Complete:
			st.Complete++
			if err := r.record(res); err != nil {
				return st, err
			}
		case walk.DeadEnd:
			st.DeadEnds++
		case walk.Pruned:
			st.Pruned++
		}

		if d := r.done.Add(1); r.progress > 0 && d%r.progress == 0 {
			klog.V(2).Infof("trial: %d/%d attempts, best %d", d, r.opts.Attempts, r.bound.Best())
		}
	}

	return st, nil
}

// record stores a complete walk, checking it first in Verify mode.
func (r *run) record(res walk.Result) error {
	if r.opts.Verify {
		if err := walk.Validate(r.g, res, r.opts.Walk); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidWalk, err)
		}
	}
	r.set.Add(res.Path, res.Distance)
	if r.opts.OnResult != nil {
		r.opts.OnResult(res)
	}
	return nil
}
