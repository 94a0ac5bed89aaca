package cracker

import "github.com/adaptivecolumn/accol/avlindex"
import "github.com/adaptivecolumn/accol/column"

// adjustRangeBounds turns a [low, high] interval with independent
// inclusivity flags into the closed [adjustedLow, adjustedHigh] form
// (both ends inclusive) the partitioning loops operate on, per original_source's
// cracker_select_in_three: adjusted_low = low + !inc_low,
// adjusted_high = high - !inc_high.
func adjustRangeBounds(low, high int64, incLow, incHigh bool) (adjustedLow, adjustedHigh int64) {
	adjustedLow = low
	if !incLow {
		adjustedLow++
	}
	adjustedHigh = high
	if !incHigh {
		adjustedHigh--
	}

	return adjustedLow, adjustedHigh
}

// bracket clamps the index's recorded lower_bound(loVal) and
// upper_bound(hiExclusive) into a valid [low, high] window over an
// array of length n. An empty result is represented as high < low,
// which is also returned outright when loVal >= hiExclusive (an empty
// value range).
func bracket(idx avlindex.Index, n int, loVal, hiExclusive int64) (low, high int) {
	if loVal >= hiExclusive {
		return 0, -1
	}
	low = 0
	if p, ok := idx.LowerBound(loVal); ok {
		low = p
	}
	high = n - 1
	if p, ok := idx.UpperBound(hiExclusive); ok {
		high = p - 1
	}
	if low > n-1 {
		low = n - 1
	}
	if high > n-1 {
		high = n - 1
	}

	return low, high
}

// uniformShortcut reports whether the index already memoizes both
// boundary endpoints, in which case the matching slice is already
// known and needs no further scanning (original_source's
// is_uniform_column_piece, recognitive_compression.rs).
func uniformShortcut(idx avlindex.Index, loVal, hiExclusive int64) (low, high int, ok bool) {
	low, lowOK := idx.Get(loVal)
	high, highOK := idx.Get(hiExclusive)
	if lowOK && highOK {
		return low, high - 1, true
	}

	return 0, 0, false
}

// projectBaseIdx copies the base-row positions col.BaseIdx[from:to)
// (to exclusive), the shared final step of every variant's select.
func projectBaseIdx(col *column.Column, from, to int) []int {
	if to <= from {
		return nil
	}
	out := make([]int, to-from)
	copy(out, col.BaseIdx[from:to])

	return out
}

func swapCrkBaseIdx(col *column.Column, i, j int) {
	col.Crk[i], col.Crk[j] = col.Crk[j], col.Crk[i]
	col.BaseIdx[i], col.BaseIdx[j] = col.BaseIdx[j], col.BaseIdx[i]
}

// threeWayPartitionRange partitions col.Crk[low:high+1] into values
// below loVal, values within [loVal, hiVal], and values above hiVal,
// swapping BaseIdx alongside. Returns the inclusive bounds of the
// middle partition; an empty middle partition is represented as
// resultHigh < resultLow.
func threeWayPartitionRange(col *column.Column, low, high int, loVal, hiVal int64) (resultLow, resultHigh int) {
	pLow, pItr, pHigh := low, low, high
	for pItr <= pHigh {
		v := col.Crk[pItr]
		switch {
		case v < loVal:
			swapCrkBaseIdx(col, pLow, pItr)
			for pLow <= pHigh && col.Crk[pLow] < loVal {
				pLow++
			}
			if pItr < pLow {
				pItr = pLow
			}
		case v > hiVal:
			swapCrkBaseIdx(col, pItr, pHigh)
			for pHigh >= pLow && col.Crk[pHigh] > hiVal {
				pHigh--
			}
		default:
			pItr++
		}
	}

	return pLow, pHigh
}
