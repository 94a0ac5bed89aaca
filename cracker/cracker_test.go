package cracker_test

import (
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptivecolumn/accol/avlindex"
	"github.com/adaptivecolumn/accol/column"
	"github.com/adaptivecolumn/accol/cracker"
)

func newColumn(values []int64) *column.Column {
	c := column.New()
	c.Append(values)

	return c
}

// naiveSelect is the test-only linear-scan oracle property P7
// compares every variant against.
func naiveSelect(v []int64, x int64) []int {
	var out []int
	for i, val := range v {
		if val == x {
			out = append(out, i)
		}
	}

	return out
}

func asBaseValues(base []int64, positions []int) []int64 {
	out := make([]int64, len(positions))
	for i, p := range positions {
		out[i] = base[p]
	}

	return out
}

func sortedInt64(vs []int64) []int64 {
	out := append([]int64(nil), vs...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func sortedInt(vs []int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)

	return out
}

// TestScenario_CanonicalExample reproduces the literal scripted
// decomposed-variant scenario: selecting a range twice in a row over
// the same fourteen-element column.
func TestScenario_CanonicalExample(t *testing.T) {
	v := []int64{13, 16, 4, 9, 2, 12, 7, 1, 19, 3, 14, 11, 8, 6}
	col := newColumn(v)
	idx := avlindex.New(avlindex.BackendAVL)
	engine := cracker.New(cracker.Decomposed, zerolog.Nop())

	positions, err := engine.SelectRange(col, idx, 10, 14, false, false)
	require.NoError(t, err)
	assert.Equal(t, []int64{13, 12, 11}, asBaseValues(v, positions))

	positions2, err := engine.SelectRange(col, idx, 5, 10, false, false)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9, 8, 6}, asBaseValues(v, positions2))
}

// TestScenario_SingleValueAdjacency reproduces the literal
// single-value adjacency-list selection scenario against an
// adjacency-shaped pair of columns.
func TestScenario_SingleValueAdjacency(t *testing.T) {
	src := []int64{5, 2, 4, 1, 1, 4, 4, 3, 3, 1, 5, 2, 1, 2, 3, 3, 4, 5, 2, 5}
	dst := []int64{3, 5, 5, 3, 4, 1, 2, 5, 2, 5, 2, 1, 2, 4, 1, 4, 3, 1, 3, 4}
	col := newColumn(src)
	idx := avlindex.New(avlindex.BackendAVL)
	engine := cracker.New(cracker.Decomposed, zerolog.Nop())

	positions, err := engine.SelectSpecific(col, idx, 3)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int64{2, 1, 4, 5}, asBaseValues(dst, positions))
}

// TestScenario_OutOfRange covers the absent-value scenario: no match,
// no mutation of crk beyond lazily initializing it.
func TestScenario_OutOfRange(t *testing.T) {
	src := []int64{4, 4, 3, 3, 4, 4}
	col := newColumn(src)
	idx := avlindex.New(avlindex.BackendAVL)
	engine := cracker.New(cracker.Decomposed, zerolog.Nop())

	positions, err := engine.SelectSpecific(col, idx, 1)
	require.NoError(t, err)
	assert.Empty(t, positions)
	assert.Equal(t, src, col.Crk, "absent-value select must not reorder crk")
}

// TestScenario_RepeatIdempotence covers P6: a second identical select
// returns the same result and performs no further swaps.
func TestScenario_RepeatIdempotence(t *testing.T) {
	src := []int64{3, 1, 5, 5, 1, 5, 2, 3, 1, 5, 5, 3}
	dst := []int64{5, 3, 2, 1, 5, 1, 1, 4, 3, 1, 2, 5}
	col := newColumn(src)
	idx := avlindex.New(avlindex.BackendAVL)
	engine := cracker.New(cracker.Decomposed, zerolog.Nop())

	for _, q := range []int64{5, 2, 1, 3} {
		_, err := engine.SelectSpecific(col, idx, q)
		require.NoError(t, err)
	}

	crkBefore := append([]int64(nil), col.Crk...)

	positions, err := engine.SelectSpecific(col, idx, 5)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{2, 1, 1, 2, 1}, asBaseValues(dst, positions))
	assert.Equal(t, crkBefore, col.Crk, "idempotent select must not mutate crk")
}

var allStrategies = []cracker.Strategy{
	cracker.Decomposed,
	cracker.Recognitive,
	cracker.Compactive,
	cracker.UnderSwapRLE,
	cracker.OverSwapRLE,
}

// TestProperty_EquivalenceAcrossVariants is P7: every variant, queried
// with the same sequence over the same base vector, agrees with a
// naive linear scan on the resulting multiset for every query.
func TestProperty_EquivalenceAcrossVariants(t *testing.T) {
	base := []int64{7, 3, 3, 9, 1, 7, 2, 3, 9, 9, 1, 7}
	queries := []int64{3, 7, 9, 1, 2, 42, 3}

	for _, strat := range allStrategies {
		col := newColumn(base)
		idx := avlindex.New(avlindex.BackendAVL)
		engine := cracker.New(strat, zerolog.Nop())

		for _, q := range queries {
			positions, err := engine.SelectSpecific(col, idx, q)
			require.NoError(t, err)

			want := sortedInt64(naiveValuesAt(base, q))
			got := sortedInt64(asBaseValues(base, positions))
			assert.Equal(t, want, got, "strategy %v query %d", strat, q)
		}
	}
}

func naiveValuesAt(base []int64, x int64) []int64 {
	positions := naiveSelect(base, x)
	out := make([]int64, len(positions))
	for i, p := range positions {
		out[i] = base[p]
	}

	return out
}

// TestProperty_Permutation is P2: BaseIdx stays a permutation of
// [0, N) after every query, for every variant.
func TestProperty_Permutation(t *testing.T) {
	base := []int64{4, 1, 4, 2, 2, 4, 3, 1}

	for _, strat := range allStrategies {
		col := newColumn(base)
		idx := avlindex.New(avlindex.BackendAVL)
		engine := cracker.New(strat, zerolog.Nop())

		for _, q := range []int64{4, 1, 2, 3} {
			_, err := engine.SelectSpecific(col, idx, q)
			require.NoError(t, err)
		}

		want := make([]int, len(base))
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, want, sortedInt(col.BaseIdx), "strategy %v", strat)
	}
}

// TestProperty_RLEDualMarkers is P4, checked on the two RLE variants:
// every maximal run's end markers both equal the run's length.
func TestProperty_RLEDualMarkers(t *testing.T) {
	base := []int64{9, 9, 1, 1, 1, 4, 4, 9, 9}

	for _, strat := range []cracker.Strategy{cracker.UnderSwapRLE, cracker.OverSwapRLE} {
		col := newColumn(base)
		idx := avlindex.New(avlindex.BackendAVL)
		engine := cracker.New(strat, zerolog.Nop())

		for _, q := range []int64{9, 1, 4} {
			_, err := engine.SelectSpecific(col, idx, q)
			require.NoError(t, err)
		}

		a := 0
		for a < len(col.Crk) {
			b := a
			for b < len(col.Crk) && col.Crk[b] == col.Crk[a] {
				b++
			}
			runLen := b - a
			assert.Equal(t, runLen, col.RunLengths[a], "strategy %v run [%d,%d) start marker", strat, a, b)
			assert.Equal(t, runLen, col.RunLengths[b-1], "strategy %v run [%d,%d) end marker", strat, a, b)
			a = b
		}
	}
}

// TestProperty_Compaction is P5, checked on the compactive variant:
// no two adjacent compressed entries share a value.
func TestProperty_Compaction(t *testing.T) {
	base := []int64{2, 2, 2, 5, 5, 1, 1, 1, 1}
	col := newColumn(base)
	idx := avlindex.New(avlindex.BackendAVL)
	engine := cracker.New(cracker.Compactive, zerolog.Nop())

	for _, q := range []int64{2, 5, 1} {
		_, err := engine.SelectSpecific(col, idx, q)
		require.NoError(t, err)
	}

	for i := 1; i < len(col.Crk); i++ {
		assert.NotEqual(t, col.Crk[i-1], col.Crk[i], "adjacent compressed entries must not share a value")
	}

	sum := 0
	for i := 0; i < len(col.Ofs); i++ {
		next := len(col.BaseIdx)
		if i < len(col.Ofs)-1 {
			next = col.Ofs[i+1]
		}
		sum += next - col.Ofs[i]
	}
	assert.Equal(t, len(base), sum)
}
