package column

// Column is a single column of a table: an immutable base vector plus
// the mutable cracker-side arrays a partitioning strategy in package
// cracker operates on. Crk and BaseIdx are populated when a
// table.Table designates the column as its cracker column (or, after
// a Rearrange, on the next select); Ofs and RunLengths are populated
// lazily on the first select by the strategy that uses them. An
// untouched Column has Crk, BaseIdx, Ofs, and RunLengths all nil.
type Column struct {
	// V holds the base values. Never reordered once cracking begins
	// (spec invariant: "B = v" is immutable).
	V []int64

	// Crk is a permutation-in-progress of V restricted to the logical
	// cracker entries. len(Crk) == len(V) except in the compactive
	// variant, where it shrinks as equal-value runs merge.
	Crk []int64

	// BaseIdx maps a cracker position back to the base row it came
	// from: the j-th logical tuple of the cracker corresponds to base
	// position BaseIdx[j].
	BaseIdx []int

	// Ofs is populated only by the compactive strategy: Ofs[i] is the
	// position in BaseIdx where the run represented by Crk[i] starts.
	Ofs []int

	// RunLengths is populated only by the RLE strategies. For a
	// maximal run occupying [a, b) in Crk, RunLengths[a] ==
	// RunLengths[b-1] == b-a; interior positions are stale and must
	// never be read directly.
	RunLengths []int
}

// New returns an empty Column.
func New() *Column {
	return &Column{}
}

// Len reports the number of base rows.
func (c *Column) Len() int {
	return len(c.V)
}

// Clone returns a shallow copy of c's base values, suitable for a
// projection table (GetIndices) that must not share backing arrays
// with its parent.
func (c *Column) Clone() *Column {
	v := make([]int64, len(c.V))
	copy(v, c.V)

	return &Column{V: v}
}

// Append adds values to the end of the base vector. Callers (table.Table)
// are responsible for enforcing the "same length across all columns"
// and "no insert after cracking" constraints; Column itself has no
// opinion on them.
func (c *Column) Append(values []int64) {
	c.V = append(c.V, values...)
}

// Rearrange permutes V according to perm (c.V[i] becomes the old
// c.V[perm[i]]) and invalidates all cracker-side state: a rearranged
// column must be re-cracked from scratch.
func (c *Column) Rearrange(perm []int) {
	replacement := make([]int64, len(perm))
	for i, p := range perm {
		replacement[i] = c.V[p]
	}
	c.V = replacement
	c.ResetCracker()
}

// ResetCracker clears every cracker-side array, as if the column had
// never been cracked. Used by Rearrange.
func (c *Column) ResetCracker() {
	c.Crk = nil
	c.BaseIdx = nil
	c.Ofs = nil
	c.RunLengths = nil
}

// EnsureIdentityCrk initializes Crk as a copy of V and BaseIdx as the
// identity permutation, the shared first step of every partitioning
// strategy's "initialize on first call" phase. It is a no-op once Crk
// is already populated.
func (c *Column) EnsureIdentityCrk() {
	if c.Crk != nil {
		return
	}
	c.Crk = make([]int64, len(c.V))
	copy(c.Crk, c.V)
	c.BaseIdx = make([]int, len(c.V))
	for i := range c.BaseIdx {
		c.BaseIdx[i] = i
	}
}

// EnsureIdentityOfs initializes Ofs as the identity permutation
// (Ofs[i] == i), the compactive strategy's lazy setup step. No-op once
// Ofs is already populated.
func (c *Column) EnsureIdentityOfs() {
	if c.Ofs != nil {
		return
	}
	c.Ofs = make([]int, len(c.Crk))
	for i := range c.Ofs {
		c.Ofs[i] = i
	}
}

// EnsureUnitRunLengths initializes RunLengths to all-ones (every
// position is its own run of length 1), the RLE strategies' lazy setup
// step. No-op once RunLengths is already populated.
func (c *Column) EnsureUnitRunLengths() {
	if c.RunLengths != nil {
		return
	}
	c.RunLengths = make([]int, len(c.Crk))
	for i := range c.RunLengths {
		c.RunLengths[i] = 1
	}
}
