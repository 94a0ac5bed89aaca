package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptivecolumn/accol/cracker"
	"github.com/adaptivecolumn/accol/table"
)

func TestTable_NewColumnsDuplicateIsFatal(t *testing.T) {
	tb := table.New()
	require.NoError(t, tb.NewColumns("src", "dst"))
	err := tb.NewColumns("src")
	assert.ErrorIs(t, err, table.ErrColumnExists)
}

func TestTable_InsertRequiresExactSchema(t *testing.T) {
	tb := table.New()
	require.NoError(t, tb.NewColumns("a", "b"))

	err := tb.Insert(map[string][]int64{"a": {1, 2}})
	assert.ErrorIs(t, err, table.ErrSchemaMismatch)

	err = tb.Insert(map[string][]int64{"a": {1, 2}, "b": {1}})
	assert.ErrorIs(t, err, table.ErrLengthMismatch)

	require.NoError(t, tb.Insert(map[string][]int64{"a": {1, 2}, "b": {3, 4}}))
	col, err := tb.GetCol("a")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, col.V)
}

func TestTable_SetCrkColOnlyOnVirginTable(t *testing.T) {
	tb := table.New()
	require.NoError(t, tb.NewColumns("a"))
	require.NoError(t, tb.Insert(map[string][]int64{"a": {3, 1, 2}}))

	require.NoError(t, tb.SetCrkCol("a"))
	assert.ErrorIs(t, tb.SetCrkCol("a"), table.ErrAlreadyCracked)
}

func TestTable_SelectWithoutCrkColIsFatal(t *testing.T) {
	tb := table.New()
	require.NoError(t, tb.NewColumns("a"))
	require.NoError(t, tb.Insert(map[string][]int64{"a": {1}}))

	_, err := tb.CrackerSelectSpecific(1)
	assert.ErrorIs(t, err, table.ErrCrackerUnset)
}

func TestTable_CrackerSelectSpecificProjectsSiblingColumn(t *testing.T) {
	tb := table.New(table.WithStrategy(cracker.Decomposed))
	require.NoError(t, tb.NewColumns("src", "dst"))
	require.NoError(t, tb.Insert(map[string][]int64{
		"src": {5, 2, 4, 1, 1, 4, 4, 3},
		"dst": {3, 5, 5, 3, 4, 1, 2, 5},
	}))
	require.NoError(t, tb.SetCrkCol("src"))

	positions, err := tb.CrackerSelectSpecific(4)
	require.NoError(t, err)

	dst, err := tb.GetCol("dst")
	require.NoError(t, err)

	var got []int64
	for _, p := range positions {
		got = append(got, dst.V[p])
	}
	assert.ElementsMatch(t, []int64{5, 4, 2}, got)
}

func TestTable_CountColEqIgnoresCrackingState(t *testing.T) {
	tb := table.New()
	require.NoError(t, tb.NewColumns("a"))
	require.NoError(t, tb.Insert(map[string][]int64{"a": {1, 2, 1, 1, 3}}))

	count, err := tb.CountColEq("a", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestTable_GetIndicesReturnsIndependentProjection(t *testing.T) {
	tb := table.New()
	require.NoError(t, tb.NewColumns("a"))
	require.NoError(t, tb.Insert(map[string][]int64{"a": {10, 20, 30}}))

	proj, err := tb.GetIndices([]int{2, 0})
	require.NoError(t, err)

	col, err := proj.GetCol("a")
	require.NoError(t, err)
	assert.Equal(t, []int64{30, 10}, col.V)

	col.V[0] = 999
	parentCol, _ := tb.GetCol("a")
	assert.Equal(t, int64(10), parentCol.V[0], "projection must not alias parent's backing array")
}

func TestTable_RearrangeInvalidatesCrackerState(t *testing.T) {
	tb := table.New()
	require.NoError(t, tb.NewColumns("a"))
	require.NoError(t, tb.Insert(map[string][]int64{"a": {1, 2, 3}}))
	require.NoError(t, tb.SetCrkCol("a"))

	_, err := tb.CrackerSelectSpecific(2)
	require.NoError(t, err)

	require.NoError(t, tb.Rearrange([]int{2, 1, 0}))

	col, err := tb.GetCol("a")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, col.V)
	assert.Nil(t, col.Crk, "rearrange must invalidate cracker state")
}
