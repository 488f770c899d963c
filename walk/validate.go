// Package walk - validation shared by NewWalker, tests and the trial driver.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     wrapped with the offending detail.
package walk

import (
	"fmt"

	"github.com/lvlath/zoowalk/core"
)

// validateOptions checks opts against g.
//
// Complexity: O(1).
func validateOptions(g *core.Graph, opts Options) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasVertex(opts.Entry) {
		return fmt.Errorf("%w: %q", ErrEntryNotFound, opts.Entry)
	}
	if !g.HasVertex(opts.Exit) {
		return fmt.Errorf("%w: %q", ErrExitNotFound, opts.Exit)
	}
	if opts.MaxVisits < 1 {
		return fmt.Errorf("%w: got %d", ErrBadMaxVisits, opts.MaxVisits)
	}

	return nil
}

// Validate checks that res is a walk Walk could have returned as Complete:
//
//   - it starts at opts.Entry and ends at opts.Exit (ErrBadEndpoints);
//   - every vertex of g appears in it (ErrIncomplete);
//   - no vertex appears more than opts.MaxVisits times (ErrVisitCapExceeded);
//   - consecutive vertices are adjacent and res.Distance equals the sum of the
//     traversed weights (ErrDistanceMismatch).
//
// Complexity: O(V + len(path)·maxdeg).
func Validate(g *core.Graph, res Result, opts Options) error {
	if err := validateOptions(g, opts); err != nil {
		return err
	}

	n := len(res.Path)
	if n == 0 || res.Path[0] != opts.Entry || res.Path[n-1] != opts.Exit {
		return fmt.Errorf("%w: %s", ErrBadEndpoints, res)
	}

	counts := make(map[string]int, g.VertexCount())
	for _, id := range res.Path {
		counts[id]++
		if counts[id] > opts.MaxVisits {
			return fmt.Errorf("%w: %q visited %d times in %s", ErrVisitCapExceeded, id, counts[id], res)
		}
	}
	for _, id := range g.Vertices() {
		if counts[id] == 0 {
			return fmt.Errorf("%w: %q missing from %s", ErrIncomplete, id, res)
		}
	}

	d, err := g.PathDistance(res.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDistanceMismatch, err)
	}
	if d != res.Distance {
		return fmt.Errorf("%w: %s reports %d, edges sum to %d", ErrDistanceMismatch, res, res.Distance, d)
	}

	return nil
}
