// Package cracker implements the five adaptive partitioning strategies
// that turn a column.Column into an increasingly clustered layout as
// equality and range queries arrive: Decomposed (uncompressed),
// Recognitive (memoization short-circuit), Compactive (run-merging via
// column.Column.Ofs), UnderSwapRLE and OverSwapRLE (run-length
// encoded, swapping on column.Column.RunLengths).
//
// All five satisfy the Engine interface and share the same bracket
// -> tighten -> three-way-scan -> memoize -> project skeleton; they
// differ in how they locate a run's neighbors and how they swap it.
// Every variant mutates its column.Column and avlindex.Index in
// place and returns the base-row positions (indices into the table's
// original insertion order, i.e. column.Column.BaseIdx) that match
// the query — never a copy of the matching values.
package cracker
