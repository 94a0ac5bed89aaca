package cracker

import (
	"github.com/rs/zerolog"

	"github.com/adaptivecolumn/accol/avlindex"
	"github.com/adaptivecolumn/accol/column"
)

// compactiveEngine merges adjacent equal-value cracker entries after
// every SelectSpecific (SelectRange does not merge), keeping Crk/Ofs
// short while BaseIdx stays at full
// length N. Positions recorded in the index are compressed positions
// (into Crk/Ofs), not base positions; Ofs[i] resolves a compressed
// entry back to the span of base rows it represents (V_C).
type compactiveEngine struct {
	logger zerolog.Logger
}

func (e *compactiveEngine) SelectSpecific(col *column.Column, idx avlindex.Index, x int64) ([]int, error) {
	col.EnsureIdentityCrk()
	col.EnsureIdentityOfs()

	n := len(col.Crk)
	if n == 0 {
		return nil, nil
	}

	pLow := 0
	if p, ok := idx.LowerBound(x); ok {
		pLow = p
	}
	pHigh := n - 1
	if p, ok := idx.UpperBound(x + 1); ok {
		pHigh = p - 1
	}
	if pHigh > n-1 {
		pHigh = n - 1
	}
	if pLow > n-1 {
		pLow = n - 1
	}

	for col.Crk[pLow] < x {
		pLow++
		if pLow == n {
			return nil, nil
		}
	}
	for col.Crk[pHigh] > x {
		if pHigh == 0 {
			return nil, nil
		}
		pHigh--
	}

	if pLow == pHigh {
		result := e.decompress(col, pLow)
		e.logger.Debug().Int64("x", x).Int("compressedPos", pLow).Msg("compactive single-entry select")

		return result, nil
	}

	pItr := pLow
	for pItr <= pHigh {
		switch {
		case col.Crk[pItr] < x:
			e.swapCompressed(col, pLow, pItr)
			for col.Crk[pLow] < x {
				pLow++
			}
			if pItr < pLow {
				pItr = pLow
			}
		case col.Crk[pItr] > x:
			e.swapCompressed(col, pItr, pHigh)
			for col.Crk[pHigh] > x {
				pHigh--
			}
		default:
			pItr++
		}
	}

	if pItr <= len(col.Crk) {
		idx.Insert(x+1, pItr)
		e.compact(col, idx, x+1, pItr)
	}
	idx.Insert(x, pLow)
	e.compact(col, idx, x, pLow)

	e.logger.Debug().Int64("x", x).Int("pLow", pLow).Int("pHigh", pHigh).Msg("compactive select")

	if pLow > pHigh {
		return nil, nil
	}

	return e.decompress(col, pLow), nil
}

func (e *compactiveEngine) SelectRange(col *column.Column, idx avlindex.Index, low, high int64, incLow, incHigh bool) ([]int, error) {
	col.EnsureIdentityCrk()
	col.EnsureIdentityOfs()

	n := len(col.Crk)
	if n == 0 {
		return nil, nil
	}

	adjLow, adjHigh := adjustRangeBounds(low, high, incLow, incHigh)

	pLow, pHigh := bracket(idx, n, adjLow, adjHigh+1)
	if pHigh < pLow {
		return nil, nil
	}

	resultLow, resultHigh := e.partitionCompressed(col, pLow, pHigh, adjLow, adjHigh)

	idx.Insert(adjLow, resultLow)
	idx.Insert(adjHigh+1, resultHigh+1)

	if resultHigh < resultLow {
		return nil, nil
	}

	// Range selects span possibly many distinct values, so (unlike
	// SelectSpecific) no single-value run-merge applies here; every
	// resolved compressed entry is decompressed in turn.
	out := make([]int, 0)
	for i := resultLow; i <= resultHigh; i++ {
		out = append(out, e.decompress(col, i)...)
	}

	return out, nil
}

// swapCompressed swaps the compressed Crk/Ofs slots i and j, and the
// BaseIdx entries at the *offsets* those slots record — never at i, j
// directly, since BaseIdx stays full length while Crk/Ofs shrink
// (original_source's compactive_compression.rs cracker_select_specific).
func (e *compactiveEngine) swapCompressed(col *column.Column, i, j int) {
	col.Crk[i], col.Crk[j] = col.Crk[j], col.Crk[i]
	oi, oj := col.Ofs[i], col.Ofs[j]
	col.BaseIdx[oi], col.BaseIdx[oj] = col.BaseIdx[oj], col.BaseIdx[oi]
}

// partitionCompressed is the range-select analogue of the
// select-specific scan above, partitioning into <adjLow,
// [adjLow,adjHigh], >adjHigh.
func (e *compactiveEngine) partitionCompressed(col *column.Column, low, high int, loVal, hiVal int64) (resultLow, resultHigh int) {
	pLow, pItr, pHigh := low, low, high
	for pItr <= pHigh {
		switch {
		case col.Crk[pItr] < loVal:
			e.swapCompressed(col, pLow, pItr)
			for pLow <= pHigh && col.Crk[pLow] < loVal {
				pLow++
			}
			if pItr < pLow {
				pItr = pLow
			}
		case col.Crk[pItr] > hiVal:
			e.swapCompressed(col, pItr, pHigh)
			for pHigh >= pLow && col.Crk[pHigh] > hiVal {
				pHigh--
			}
		default:
			pItr++
		}
	}

	return pLow, pHigh
}

// compact collapses the run adjacent to the just-inserted boundary
// (v, i) into a single compressed entry, draining the absorbed
// Crk/Ofs slots and shifting every index position above the removed
// span down by the drained width. Ported from compact() in
// original_source's compactive_compression.rs, including its early
// return once the right-neighbor check finds nothing to merge.
func (e *compactiveEngine) compact(col *column.Column, idx avlindex.Index, v int64, i int) {
	col.EnsureIdentityOfs()

	if j, ok := idx.Get(v + 1); ok {
		if i >= j-1 {
			return
		}
		col.Crk = append(col.Crk[:i+1], col.Crk[j:]...)
		col.Ofs = append(col.Ofs[:i+1], col.Ofs[j:]...)
		idx.ShiftAbove(v, j-i-1)
		e.logger.Debug().Int64("v", v).Int("i", i).Int("j", j).Msg("compactive merge right")
	}
	if j, ok := idx.Get(v - 1); ok {
		if j >= i-1 {
			return
		}
		col.Crk = append(col.Crk[:j+1], col.Crk[i:]...)
		col.Ofs = append(col.Ofs[:j+1], col.Ofs[i:]...)
		idx.ShiftAbove(v-1, i-j-1)
		e.logger.Debug().Int64("v", v).Int("i", i).Int("j", j).Msg("compactive merge left")
	}
}

// decompress expands compressed position p back into the base-row
// span it represents, via Ofs[p]..Ofs[p+1) (or the end of BaseIdx for
// the last compressed entry).
func (e *compactiveEngine) decompress(col *column.Column, p int) []int {
	from := col.Ofs[p]
	to := len(col.BaseIdx)
	if p < len(col.Ofs)-1 {
		to = col.Ofs[p+1]
	}

	return projectBaseIdx(col, from, to)
}
