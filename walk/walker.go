package walk

import (
	"math"

	"github.com/lvlath/zoowalk/core"
)

// step is one precomputed move out of a vertex.
type step struct {
	to     int
	weight int64
}

// Walker holds the immutable walk setup and the per-attempt scratch state.
// A Walker is not safe for concurrent use; give each goroutine its own.
type Walker struct {
	opts   Options
	choose Chooser

	names []string // vertex index → ID
	adj   [][]step // vertex index → moves, in incidence order
	entry int
	exit  int

	// per-attempt state, reset by Walk
	counts  []int
	missing int
	path    []int
	viable  []step
}

// NewWalker validates opts against g and precomputes the adjacency used by Walk.
//
// Errors: ErrGraphNil, ErrChooserNil, ErrEntryNotFound, ErrExitNotFound,
// ErrBadMaxVisits.
//
// Complexity: O(V + E).
func NewWalker(g *core.Graph, opts Options, choose Chooser) (*Walker, error) {
	if err := validateOptions(g, opts); err != nil {
		return nil, err
	}
	if choose == nil {
		return nil, ErrChooserNil
	}

	names := g.Vertices()
	index := make(map[string]int, len(names))
	for i, id := range names {
		index[id] = i
	}

	adj := make([][]step, len(names))
	maxDeg := 0
	var far string
	for i, id := range names {
		edges, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		adj[i] = make([]step, 0, len(edges))
		for _, e := range edges {
			far, _ = e.Other(id)
			adj[i] = append(adj[i], step{to: index[far], weight: e.Weight})
		}
		if len(edges) > maxDeg {
			maxDeg = len(edges)
		}
	}

	return &Walker{
		opts:   opts,
		choose: choose,
		names:  names,
		adj:    adj,
		entry:  index[opts.Entry],
		exit:   index[opts.Exit],
		counts: make([]int, len(names)),
		path:   make([]int, 0, len(names)*min(opts.MaxVisits, DefaultMaxVisits)),
		viable: make([]step, 0, maxDeg),
	}, nil
}

// Options returns the options the Walker was built with.
func (w *Walker) Options() Options { return w.opts }

// Walk runs one attempt against bound and returns its terminal state.
// Only Complete carries a Result; DeadEnd and Pruned return the zero Result.
// A nil bound disables pruning.
//
// Complexity: O(L·maxdeg) where L ≤ V·MaxVisits is the walk length.
func (w *Walker) Walk(bound Bound) (Result, State) {
	if bound == nil {
		bound = unbounded{}
	}

	// 1) Reset per-attempt state and stand on the entry.
	for i := range w.counts {
		w.counts[i] = 0
	}
	w.path = w.path[:0]
	cur := w.entry
	w.counts[cur] = 1
	w.missing = len(w.counts) - 1
	w.path = append(w.path, cur)

	var (
		dist int64
		s    step
	)
	// 2) Walk while the attempt can still beat the bound.
	for dist < bound.Best() {
		w.viable = w.viable[:0]
		for _, s = range w.adj[cur] {
			if w.counts[s.to] < w.opts.MaxVisits {
				w.viable = append(w.viable, s)
			}
		}
		if len(w.viable) == 0 {
			return Result{}, DeadEnd
		}

		s = w.viable[w.choose.Intn(len(w.viable))]
		cur = s.to
		dist += s.weight
		w.path = append(w.path, cur)
		if w.counts[cur] == 0 {
			w.missing--
		}
		w.counts[cur]++

		if cur != w.exit {
			w.hook(cur, dist, Walking)
			continue
		}
		if w.missing > 0 {
			w.hook(cur, dist, IncompleteContinue)
			continue
		}

		// 3) Complete: every walk is reported; only the bound cares about improvement.
		w.hook(cur, dist, Complete)
		bound.Offer(dist)
		return Result{Path: w.pathIDs(), Distance: dist}, Complete
	}

	return Result{}, Pruned
}

// hook forwards a step to Options.OnStep when set.
func (w *Walker) hook(v int, dist int64, st State) {
	if w.opts.OnStep != nil {
		w.opts.OnStep(w.names[v], dist, st)
	}
}

// pathIDs converts the scratch path to a fresh slice of vertex IDs.
func (w *Walker) pathIDs() []string {
	out := make([]string, len(w.path))
	for i, v := range w.path {
		out[i] = w.names[v]
	}
	return out
}

// unbounded is the Bound used when Walk receives nil.
type unbounded struct{}

func (unbounded) Best() int64        { return math.MaxInt64 }
func (unbounded) Offer(d int64) bool { return false }
