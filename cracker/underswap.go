package cracker

import (
	"github.com/rs/zerolog"

	"github.com/adaptivecolumn/accol/avlindex"
	"github.com/adaptivecolumn/accol/column"
)

// underSwapEngine is the run-length-encoded variant that only ever
// swaps two runs of identical length, repairing the two end markers
// of a run when the low-side tightening finds it folds into an
// adjacent equal-value run; the main scan swaps Crk/BaseIdx only and
// leaves RunLengths as they are (V_U, ported from
// original_source's intrafragment_compression.rs).
type underSwapEngine struct {
	logger zerolog.Logger
}

func (e *underSwapEngine) SelectSpecific(col *column.Column, idx avlindex.Index, x int64) ([]int, error) {
	return e.SelectRange(col, idx, x, x, true, true)
}

func (e *underSwapEngine) SelectRange(col *column.Column, idx avlindex.Index, low, high int64, incLow, incHigh bool) ([]int, error) {
	col.EnsureIdentityCrk()
	col.EnsureUnitRunLengths()

	n := len(col.Crk)
	if n == 0 {
		return nil, nil
	}

	adjLow, adjHigh := adjustRangeBounds(low, high, incLow, incHigh)

	pLow := 0
	if p, ok := idx.LowerBound(adjLow); ok {
		pLow = p
	}
	pHigh := n - 1
	if p, ok := idx.UpperBound(adjHigh + 1); ok {
		pHigh = p
	}

	cLow := func(v int64) bool { return v < adjLow }
	cHigh := func(v int64) bool { return v > adjHigh }

	runValue := col.Crk[pLow]
	runPtr := pLow
	runLength := 1
	for cLow(col.Crk[pLow]) {
		runInc := col.RunLengths[pLow]
		pLow += runInc
		if pLow == n {
			col.RunLengths[runPtr] = runLength
			col.RunLengths[pLow-1] = runLength

			return nil, nil
		}
		nextValue := col.Crk[pLow]
		if nextValue == runValue {
			runLength += runInc
		} else {
			col.RunLengths[runPtr] = runLength
			col.RunLengths[pLow-1] = runLength
			runPtr = pLow
			runLength = 1
			runValue = nextValue
		}
	}

	for cHigh(col.Crk[pHigh]) {
		pHigh -= col.RunLengths[pHigh] - 1
		if pHigh == 0 {
			if cHigh(col.Crk[pHigh]) {
				return nil, nil
			}
		}
		pHigh--
	}

	if pLow == pHigh {
		return projectBaseIdx(col, pLow, pHigh+1), nil
	}

	pItr := pLow
	for pItr <= pHigh {
		switch {
		case cLow(col.Crk[pItr]):
			swapCrkBaseIdx(col, pLow, pItr)
			for cLow(col.Crk[pLow]) {
				pLow += col.RunLengths[pLow]
			}
			if pItr < pLow {
				pItr = pLow
			}
		case cHigh(col.Crk[pItr]):
			swapCrkBaseIdx(col, pItr, pHigh)
			for cHigh(col.Crk[pHigh]) {
				pHigh -= col.RunLengths[pHigh] - 1
				if pHigh > 0 {
					pHigh--
				}
			}
		default:
			pItr += col.RunLengths[pItr]
		}
	}

	highPtr := pItr
	if highPtr >= n {
		highPtr = n - 1
	}
	idx.Insert(adjLow, pLow)
	idx.Insert(adjHigh+1, highPtr)

	e.logger.Debug().Int64("low", low).Int64("high", high).Int("pLow", pLow).Int("pItr", pItr).Msg("under-swap RLE select")

	return projectBaseIdx(col, pLow, pItr), nil
}
