// Package table implements the named column→Column mapping a
// partitioning engine operates on: bulk insert, the distinguished
// cracker column, tuple projection, and rearrange-by-permutation.
//
// A Table owns its columns exclusively; GetIndices returns an
// independent projection that shares no backing array with its
// parent. The partitioning strategy and index backend are fixed at
// construction via functional options (WithStrategy, WithIndexBackend).
package table
