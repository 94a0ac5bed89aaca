// Package accol is an adaptive, in-memory column-store engine: it
// answers equality and range predicates on an integer column by
// cracking — partitioning its physical layout in place, lazily, as
// queries arrive — rather than by pre-sorting or pre-indexing. A
// column converges toward a fully clustered layout over a workload of
// queries, and a supplementary ordered index records the positional
// boundaries already discovered.
//
// Five partitioning strategies trade scan cost against memory and
// bookkeeping overhead:
//
//	cracker.Decomposed    — uncompressed three-way partition
//	cracker.Recognitive   — Decomposed plus a memoized-run short-circuit
//	cracker.Compactive    — merges adjacent equal-value entries via offsets
//	cracker.UnderSwapRLE  — run-length encoded, equal-length swaps only
//	cracker.OverSwapRLE   — run-length encoded, mismatched-length swaps
//
// Packages are organized bottom-up:
//
//	avlindex/   — the ordered positional index (AVL and dense-array backends)
//	column/     — a single column's base values and cracker-side arrays
//	table/      — named columns plus the distinguished cracker column
//	cracker/    — the five partitioning engines
//	adjacency/  — a two-column adjacency-list façade over table.Table
//
// The engine is single-threaded and cooperative: one caller drives a
// sequence of selects to completion before the next begins, and every
// fatal condition (a malformed schema, a missing cracker column, a
// broken partition invariant) is returned as an error rather than a
// panic across a package boundary; the one exception is a broken AVL
// balance invariant in avlindex, which panics with a wrapped
// avlindex.ErrImbalanced.
//
//	adjacency.FromVectors(src, dst, "src", table.WithStrategy(cracker.OverSwapRLE))
package accol
