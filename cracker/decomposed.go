package cracker

import (
	"github.com/rs/zerolog"

	"github.com/adaptivecolumn/accol/avlindex"
	"github.com/adaptivecolumn/accol/column"
)

// decomposedEngine is the uncompressed three-way partition, V_D:
// crk stays length N for the column's lifetime, and every select
// swaps crk/base_idx in place with no merging.
type decomposedEngine struct {
	logger zerolog.Logger
}

func (e *decomposedEngine) SelectSpecific(col *column.Column, idx avlindex.Index, x int64) ([]int, error) {
	return e.SelectRange(col, idx, x, x, true, true)
}

func (e *decomposedEngine) SelectRange(col *column.Column, idx avlindex.Index, low, high int64, incLow, incHigh bool) ([]int, error) {
	col.EnsureIdentityCrk()
	n := len(col.Crk)
	if n == 0 {
		return nil, nil
	}

	adjLow, adjHigh := adjustRangeBounds(low, high, incLow, incHigh)
	bLow, bHigh := bracket(idx, n, adjLow, adjHigh+1)
	if bHigh < bLow {
		return nil, nil
	}

	resultLow, resultHigh := threeWayPartitionRange(col, bLow, bHigh, adjLow, adjHigh)

	idx.Insert(adjLow, resultLow)
	idx.Insert(adjHigh+1, resultHigh+1)

	e.logger.Debug().Int64("low", low).Int64("high", high).Int("resultLow", resultLow).Int("resultHigh", resultHigh).Msg("decomposed select")

	return projectBaseIdx(col, resultLow, resultHigh+1), nil
}
