// Package zoowalk finds a short walk through a small zoo that passes every
// enclosure, using a pruned Monte Carlo search.
//
// The zoo is nine enclosures A…I joined by sixteen two-way paths. A visitor
// enters at D, leaves at F, and may pass any enclosure at most twice. The
// search repeatedly walks at random from D, abandons a walk as soon as it is
// stuck or already longer than the best covering walk found so far, and
// collects every walk that reaches F having seen all nine enclosures.
//
// Packages:
//
//	core/     – immutable weighted undirected graph: vertices, edges, incidence
//	builder/  – the zoo topology as data and its constructor
//	walk/     – one randomised walk attempt, the shared bound, walk validation
//	trial/    – the attempt loop, sequential or across workers
//	result/   – the set of unique walks, ranking and the text report
//	config/   – YAML run parameters
//	cmd/zoowalk – the command-line entry point
//
// Quick start:
//
//	g, _ := builder.Zoo()
//	set, _, _ := trial.Run(ctx, g, trial.DefaultOptions())
//	set.Rank().WriteTo(os.Stdout)
//
// The best walk the zoo admits is 1600 meters long; DADGHEBCFIF and
// DGDABEHIFCF both reach it.
package zoowalk
