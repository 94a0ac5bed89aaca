// Package column defines the physical layout of a single table column
// and the auxiliary arrays a cracker-column partitioning strategy
// mutates in place: the cracked copy, the base-index permutation, the
// run-length dual markers, and the compacted offsets.
//
// A Column holds:
//
//   - V: the base values, immutable once cracking begins.
//   - Crk: a permutation-in-progress of V (only the logical cracker
//     entries; shrinks in the compactive variant as runs merge).
//   - BaseIdx: the permutation mapping a logical cracker position back
//     to the row of the original, unordered data (used to project a
//     resolved range back onto sibling columns).
//   - Ofs: compactive-only; Ofs[i] is the position in BaseIdx where the
//     run represented by Crk[i] starts.
//   - RunLengths: RLE-only; two-ended run-length markers (see the
//     cracker package for the invariant these must satisfy).
package column
