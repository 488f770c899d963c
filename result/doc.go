// Package result aggregates and ranks the covering walks found by a run.
//
// Set deduplicates walks by their exact vertex sequence: adding a path that
// is already present overwrites its entry (the distance of a given path on a
// fixed graph never changes) and does not grow the set. Set is safe for
// concurrent use by several trial workers.
//
// Rank orders a snapshot of the set by (distance, path) in a red-black tree
// and derives the report:
//
//   - Count       – number of unique walks;
//   - Best        – the first walk in that order (nil when the set is empty);
//   - Equivalents – every other walk at Best's distance;
//   - All         – every walk, ascending by distance.
//
// Ranking is a pure function of the set contents, so ranking twice yields the
// same Report. Report.WriteTo renders the text report.
package result
