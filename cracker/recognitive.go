package cracker

import (
	"github.com/rs/zerolog"

	"github.com/adaptivecolumn/accol/avlindex"
	"github.com/adaptivecolumn/accol/column"
)

// recognitiveEngine is Decomposed plus a memoization short-circuit:
// when both range endpoints are already recorded in the index, the
// matching slice is known without any scanning (original_source's
// is_uniform_column_piece).
type recognitiveEngine struct {
	logger zerolog.Logger
}

func (e *recognitiveEngine) SelectSpecific(col *column.Column, idx avlindex.Index, x int64) ([]int, error) {
	return e.SelectRange(col, idx, x, x, true, true)
}

func (e *recognitiveEngine) SelectRange(col *column.Column, idx avlindex.Index, low, high int64, incLow, incHigh bool) ([]int, error) {
	col.EnsureIdentityCrk()
	n := len(col.Crk)
	if n == 0 {
		return nil, nil
	}

	adjLow, adjHigh := adjustRangeBounds(low, high, incLow, incHigh)

	if adjLow == adjHigh {
		if resultLow, resultHigh, ok := uniformShortcut(idx, adjLow, adjHigh+1); ok {
			e.logger.Debug().Int64("low", low).Int64("high", high).Msg("recognitive uniform shortcut")

			return projectBaseIdx(col, resultLow, resultHigh+1), nil
		}
	}

	bLow, bHigh := bracket(idx, n, adjLow, adjHigh+1)
	if bHigh < bLow {
		return nil, nil
	}

	resultLow, resultHigh := threeWayPartitionRange(col, bLow, bHigh, adjLow, adjHigh)

	idx.Insert(adjLow, resultLow)
	idx.Insert(adjHigh+1, resultHigh+1)

	e.logger.Debug().Int64("low", low).Int64("high", high).Int("resultLow", resultLow).Int("resultHigh", resultHigh).Msg("recognitive select")

	return projectBaseIdx(col, resultLow, resultHigh+1), nil
}
