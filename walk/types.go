package walk

import (
	"errors"
	"strings"
)

// Sentinel errors for walk configuration and validation.
var (
	// ErrGraphNil is returned when a nil graph is supplied.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrEntryNotFound is returned when Options.Entry is not a vertex.
	ErrEntryNotFound = errors.New("walk: entry vertex not found")

	// ErrExitNotFound is returned when Options.Exit is not a vertex.
	ErrExitNotFound = errors.New("walk: exit vertex not found")

	// ErrBadMaxVisits is returned when Options.MaxVisits < 1.
	ErrBadMaxVisits = errors.New("walk: max visits must be at least 1")

	// ErrChooserNil is returned when no Chooser is supplied.
	ErrChooserNil = errors.New("walk: chooser is nil")

	// ErrBadEndpoints is returned by Validate when a walk does not start at
	// Entry or does not end at Exit.
	ErrBadEndpoints = errors.New("walk: walk does not run from entry to exit")

	// ErrIncomplete is returned by Validate when some vertex is never visited.
	ErrIncomplete = errors.New("walk: walk does not cover every vertex")

	// ErrVisitCapExceeded is returned by Validate when a vertex appears more
	// than MaxVisits times.
	ErrVisitCapExceeded = errors.New("walk: visit cap exceeded")

	// ErrDistanceMismatch is returned by Validate when the walk is not a
	// chain of edges or its distance differs from the sum of their weights.
	ErrDistanceMismatch = errors.New("walk: distance does not match traversed edges")
)

// Defaults mirror the zoo: enter at D, leave at F, at most two visits each.
const (
	DefaultEntry     = "D"
	DefaultExit      = "F"
	DefaultMaxVisits = 2
)

// Options configures a Walker.
type Options struct {
	// Entry is the vertex every walk starts from.
	Entry string

	// Exit is the vertex every complete walk ends at.
	Exit string

	// MaxVisits caps how often one vertex may appear in a walk (≥1).
	// The entry vertex's first visit counts.
	MaxVisits int

	// OnStep, if set, is called after every move with the vertex just
	// reached and the resulting state (Walking, IncompleteContinue or Complete).
	// When trial runs with Workers > 1 it is called concurrently.
	OnStep func(vertex string, distance int64, state State)
}

// DefaultOptions returns D → F with a cap of two visits and no hook.
func DefaultOptions() Options {
	return Options{
		Entry:     DefaultEntry,
		Exit:      DefaultExit,
		MaxVisits: DefaultMaxVisits,
	}
}

// State enumerates the walk state machine.
type State int

const (
	// Walking is the in-progress state.
	Walking State = iota
	// DeadEnd: no incident edge leads to a vertex below the cap. No result.
	DeadEnd
	// Pruned: the running distance reached the bound before completion. No result.
	Pruned
	// Complete: at Exit with every vertex visited. Result produced.
	Complete
	// IncompleteContinue: at Exit with coverage missing; loops back to Walking.
	IncompleteContinue
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Walking:
		return "walking"
	case DeadEnd:
		return "dead-end"
	case Pruned:
		return "pruned"
	case Complete:
		return "complete"
	case IncompleteContinue:
		return "incomplete-continue"
	default:
		return "unknown"
	}
}

// Result is one finished walk.
type Result struct {
	// Path is the ordered vertex sequence, Entry first, Exit last.
	Path []string

	// Distance is the sum of the traversed edge weights.
	Distance int64
}

// String renders the path as concatenated vertex IDs ("DGHEB…").
func (r Result) String() string {
	return strings.Join(r.Path, "")
}
