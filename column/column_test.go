package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adaptivecolumn/accol/column"
)

func TestColumn_AppendLen(t *testing.T) {
	c := column.New()
	c.Append([]int64{1, 2, 3})
	c.Append([]int64{4})
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []int64{1, 2, 3, 4}, c.V)
}

func TestColumn_EnsureIdentityCrk(t *testing.T) {
	c := column.New()
	c.Append([]int64{9, 8, 7})
	c.EnsureIdentityCrk()
	assert.Equal(t, []int64{9, 8, 7}, c.Crk)
	assert.Equal(t, []int{0, 1, 2}, c.BaseIdx)

	// Idempotent: calling again after Crk has been mutated must not reset it.
	c.Crk[0] = 100
	c.EnsureIdentityCrk()
	assert.Equal(t, int64(100), c.Crk[0])
}

func TestColumn_RearrangeInvalidatesCracker(t *testing.T) {
	c := column.New()
	c.Append([]int64{10, 20, 30})
	c.EnsureIdentityCrk()
	c.EnsureUnitRunLengths()

	c.Rearrange([]int{2, 0, 1})
	assert.Equal(t, []int64{30, 10, 20}, c.V)
	assert.Nil(t, c.Crk)
	assert.Nil(t, c.BaseIdx)
	assert.Nil(t, c.RunLengths)
}

func TestColumn_Clone(t *testing.T) {
	c := column.New()
	c.Append([]int64{1, 2})
	c.EnsureIdentityCrk()

	clone := c.Clone()
	clone.V[0] = 999
	assert.Equal(t, int64(1), c.V[0], "clone must not alias parent's backing array")
}
