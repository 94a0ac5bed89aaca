// Package avlindex implements the ordered positional index that backs a
// cracker column: a map from a 64-bit boundary value to the position in
// the cracker array that the partitioning algorithms have already
// discovered for it.
//
// Two implementations satisfy Index:
//
//   - AVL: a self-balancing binary search tree, valid for any int64 key.
//     This is the general-purpose backend.
//   - Dense: a slice-backed map valid only when keys are small
//     non-negative integers (e.g. adjacency-list node ids). Missing
//     slots are sentinel-empty; LowerBound/UpperBound walk linearly to
//     the nearest present slot.
//
// Both backends support the same five operations: Insert, Get,
// LowerBound, UpperBound, and ShiftAbove (used after compactive
// compression shrinks the cracker column and every recorded position
// above a threshold must move down by a fixed amount).
//
// Neither implementation is safe for concurrent use; callers own a
// single goroutine's worth of access, matching the single-threaded
// cracking engine above it.
package avlindex
