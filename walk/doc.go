// Package walk generates constrained random walks over a core.Graph.
//
// One call to (*Walker).Walk produces at most one candidate walk from the
// entry vertex to the exit vertex that visits every vertex at least once
// while no vertex is visited more than MaxVisits times.
//
// Algorithm (per attempt):
//
//  1. Reset visit counts; stand on Entry with count 1; distance 0.
//  2. While distance < bound.Best():
//     a. viable ← incident edges whose far end has count < MaxVisits;
//     if none, the attempt ends as DeadEnd.
//     b. pick one viable edge uniformly (Chooser.Intn).
//     c. move: append the far end, add the weight, bump its count.
//     d. not at Exit → keep walking.
//     e. at Exit with some vertex still unvisited → IncompleteContinue, keep
//     walking (the walk may leave and come back).
//     f. at Exit with every vertex visited → Complete: offer the distance
//     to the bound and return the walk.
//  3. The loop condition failing before completion ends the attempt as Pruned.
//
// Every Complete walk is returned, whether or not it beats the bound; only
// the bound update depends on improvement. Callers record all of them.
//
// Randomness is injected through Chooser so tests can script choices or use
// a seeded source (NewRand). Bound is shared across attempts (and workers);
// NewBound returns a lock-free implementation.
//
// DeadEnd and Pruned are ordinary outcomes, not errors. Errors only come
// from NewWalker (bad options) and Validate (a walk that breaks a rule).
package walk
