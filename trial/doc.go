// Package trial drives the Monte Carlo search: it invokes the walk generator
// a fixed number of times and records every covering walk into a result.Set.
//
// The run state (the pruning bound and the result set) is owned by Run and
// passed into every attempt; there are no package-level globals.
//
// Workers == 1 (the default) runs attempts strictly one after another from a
// single seeded stream, so a seed reproduces the run exactly. Workers > 1
// splits the attempts across goroutines; each worker owns its Walker and an
// independent RNG stream derived from the seed, the bound is updated with
// compare-and-swap, and the set is mutex-guarded. Results of a parallel run
// depend on scheduling.
//
// Cancelling ctx stops the run between attempts and returns ctx.Err()
// together with whatever was collected so far.
package trial
