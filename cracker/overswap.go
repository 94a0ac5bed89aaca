package cracker

import (
	"github.com/rs/zerolog"

	"github.com/adaptivecolumn/accol/avlindex"
	"github.com/adaptivecolumn/accol/column"
)

// overSwapEngine is the hardest partitioning variant: like
// underSwapEngine it tracks runs via dual end markers, but a scan
// step whose iterator run is longer or shorter than its swap partner
// performs a size-mismatched "overswap" — a main aligned block plus a
// padding block — rather than requiring equal lengths. Ported from
// original_source's overswap_rle_compression.rs, the five swap cases
// per step (itr run longer/equal/shorter than its partner, each with
// or without region overlap) reproduced exactly, including its
// several panic!() guards on malformed runs (now returned errors) and
// its run-length difference resolved to a full-width absolute value
// instead of the source's suspect i8-narrowing cast (spec's Open
// Question on this point, decided toward the width-safe form).
type overSwapEngine struct {
	logger zerolog.Logger
}

func (e *overSwapEngine) SelectSpecific(col *column.Column, idx avlindex.Index, x int64) ([]int, error) {
	col.EnsureIdentityCrk()
	col.EnsureUnitRunLengths()

	n := len(col.Crk)
	if n == 0 {
		return nil, nil
	}

	pLow := 0
	if p, ok := idx.LowerBound(x); ok {
		pLow = p
	}
	if pLow == n {
		return nil, nil
	}
	pHigh := n
	if p, ok := idx.UpperBound(x + 1); ok {
		pHigh = p
	}
	pHigh--

	e.tightenLow(col, &pLow, pHigh, x)
	e.tightenHigh(col, pLow, &pHigh, x)

	if pLow >= pHigh {
		if col.Crk[pLow] == x {
			return projectBaseIdx(col, pLow, pLow+1), nil
		}

		return nil, nil
	}

	pItr := pLow
	for pItr <= pHigh {
		e.logger.Debug().Int64("x", x).Int("low", pLow).Int("itr", pItr).Int("high", pHigh).Msg("over-swap RLE scan step")

		switch {
		case col.Crk[pItr] < x:
			if err := e.swapLow(col, &pLow, &pItr, pHigh); err != nil {
				return nil, err
			}
			e.tightenLow(col, &pLow, pHigh, x)
			if pItr < pLow {
				pItr = pLow
			}
		case col.Crk[pItr] > x:
			if err := e.swapHigh(col, pLow, &pItr, &pHigh); err != nil {
				return nil, err
			}
			e.tightenHigh(col, pLow, &pHigh, x)
		default:
			e.advanceItr(col, &pItr, x, n)
		}
	}

	if pLow > pHigh {
		return nil, invariantViolation(e.logger, ErrBoundsCollapsed, "over-swap RLE: p_low exceeded p_high after scan")
	}

	idx.Insert(x, pLow)
	idx.Insert(x+1, pHigh+1)

	return projectBaseIdx(col, pLow, pHigh+1), nil
}

func (e *overSwapEngine) SelectRange(col *column.Column, idx avlindex.Index, low, high int64, incLow, incHigh bool) ([]int, error) {
	adjLow, adjHigh := adjustRangeBounds(low, high, incLow, incHigh)
	if adjLow != adjHigh {
		return nil, invariantViolation(e.logger, ErrBoundsCollapsed, "over-swap RLE: multi-value range select is not supported by this variant")
	}

	return e.SelectSpecific(col, idx, adjLow)
}

func (e *overSwapEngine) tightenLow(col *column.Column, pLow *int, pHigh int, x int64) {
	n := len(col.Crk)
	for col.Crk[*pLow] < x && *pLow < pHigh {
		rl := col.RunLengths[*pLow]
		for *pLow+rl >= n && *pLow+1 < n {
			*pLow++
			rl = col.RunLengths[*pLow]
		}
		if *pLow+rl >= n {
			break
		}
		if col.Crk[*pLow+rl] == col.Crk[*pLow] {
			for col.Crk[*pLow+rl] == col.Crk[*pLow] {
				inc := col.RunLengths[*pLow+rl]
				if *pLow+rl+inc >= pHigh {
					break
				}
				rl += inc
			}
			col.RunLengths[*pLow] = rl
			col.RunLengths[*pLow+rl-1] = rl
		}
		*pLow += rl
	}
}

func (e *overSwapEngine) tightenHigh(col *column.Column, pLow int, pHigh *int, x int64) {
	for col.Crk[*pHigh] > x && *pHigh > pLow {
		rl := col.RunLengths[*pHigh]
		if col.Crk[*pHigh-rl] == col.Crk[*pHigh] {
			for col.Crk[*pHigh-rl] == col.Crk[*pHigh] {
				inc := col.RunLengths[*pHigh-rl]
				if *pHigh < rl+inc {
					break
				} else if *pHigh-(rl+inc) < pLow {
					break
				}
				rl += inc
			}
			col.RunLengths[*pHigh] = rl
			col.RunLengths[*pHigh-rl+1] = rl
		}
		*pHigh -= rl
	}
}

func (e *overSwapEngine) advanceItr(col *column.Column, pItr *int, x int64, n int) {
	rl := col.RunLengths[*pItr]
	for *pItr+rl < n {
		if col.Crk[*pItr+rl] == x {
			if *pItr+rl+col.RunLengths[*pItr+rl] < n {
				rl += col.RunLengths[*pItr+rl]
				col.RunLengths[*pItr] = rl
				col.RunLengths[*pItr+rl-1] = rl
			} else {
				break
			}
		} else {
			break
		}
	}
	*pItr += col.RunLengths[*pItr]
}

func swap3(col *column.Column, i, j int) {
	col.Crk[i], col.Crk[j] = col.Crk[j], col.Crk[i]
	col.BaseIdx[i], col.BaseIdx[j] = col.BaseIdx[j], col.BaseIdx[i]
	col.RunLengths[i], col.RunLengths[j] = col.RunLengths[j], col.RunLengths[i]
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}

// swapLow handles a p_itr run whose value is below x: the three
// size-relations between rl_itr and rl_low, each split into an
// overlapping and a non-overlapping sub-case.
func (e *overSwapEngine) swapLow(col *column.Column, pLow, pItr *int, pHigh int) error {
	rlItr := col.RunLengths[*pItr]
	rlLow := col.RunLengths[*pLow]
	padSize := absDiff(rlItr, rlLow)

	switch {
	case rlItr > rlLow:
		if *pItr < *pLow+rlItr {
			overlapSize := (*pLow + rlItr) - *pItr
			col.RunLengths[*pItr+overlapSize-1] = col.RunLengths[*pItr]
			col.RunLengths[*pItr+overlapSize] = col.RunLengths[*pItr]
			for i := 0; i < rlItr-overlapSize; i++ {
				swap3(col, *pLow+i, *pItr+overlapSize+i)
			}
		} else {
			col.RunLengths[*pLow+rlItr] = *pItr - *pLow
			col.RunLengths[*pLow+rlItr-1] = *pItr - *pLow
			for i := 0; i < rlItr; i++ {
				swap3(col, *pLow+i, *pItr+i)
			}
			*pItr += rlItr
		}
	case rlItr < rlLow:
		if *pItr-padSize <= *pLow+rlLow-1 {
			col.RunLengths[*pLow+rlItr] = *pItr - *pLow
			col.RunLengths[*pLow+rlItr-1] = *pItr - *pLow
			for i := 0; i < rlItr; i++ {
				swap3(col, *pLow+i, *pItr+i)
			}
			*pItr += rlItr
		} else {
			pPad := *pItr - 1
			for pPad-col.RunLengths[pPad] >= *pItr-padSize {
				pPad -= col.RunLengths[pPad]
			}
			rlPad := col.RunLengths[pPad]

			if pPad-rlPad != *pItr-padSize-1 {
				remSize := pPad - (*pItr - padSize - 1)
				if remSize == 0 {
					return invariantViolation(e.logger, ErrRunLengthZero, "over-swap RLE: swapLow padding remainder collapsed to zero")
				}
				col.RunLengths[pPad-rlPad+1] -= remSize
				if col.RunLengths[pPad-rlPad-1] == 0 {
					return invariantViolation(e.logger, ErrRunLengthZero, "over-swap RLE: swapLow padding neighbor marker zeroed")
				}
				col.RunLengths[*pItr-padSize-1] = col.RunLengths[pPad-rlPad+1]
				col.RunLengths[pPad] = remSize
				col.RunLengths[pPad-remSize+1] = remSize
			}
			col.RunLengths[*pLow+rlItr] = rlLow

			for i := 0; i < rlItr; i++ {
				swap3(col, *pLow+i, *pItr+i)
			}
			for i := 0; i < padSize; i++ {
				swap3(col, *pLow+rlItr+i, *pItr-padSize+i)
			}
			*pItr -= padSize
		}
	default:
		for i := 0; i < rlItr; i++ {
			swap3(col, *pLow+i, *pItr+i)
		}
	}

	return nil
}

// swapHigh is swapLow's mirror image on the high side: p_itr's run
// is above x and gets swapped down against p_high's run.
func (e *overSwapEngine) swapHigh(col *column.Column, pLow int, pItr, pHigh *int) error {
	rlItr := col.RunLengths[*pItr]
	rlHigh := col.RunLengths[*pHigh]
	padSize := absDiff(rlItr, rlHigh)

	switch {
	case rlItr > rlHigh:
		if *pHigh-padSize < *pItr+rlItr {
			overlapSize := (*pItr + rlItr) - (*pHigh - padSize)
			col.RunLengths[*pItr+(rlItr-overlapSize)-1] = rlItr
			col.RunLengths[*pItr+(rlItr-overlapSize)] = rlItr
			for i := 0; i < rlItr-overlapSize; i++ {
				swap3(col, *pItr+i, *pHigh-rlItr+1+overlapSize+i)
			}
		} else {
			pPad := *pHigh - rlHigh
			for *pHigh-(pPad-col.RunLengths[pPad]) < rlItr {
				pPad -= col.RunLengths[pPad]
			}
			rlPad := col.RunLengths[pPad]
			remSize := pPad - (*pHigh - rlItr)
			if remSize == 0 {
				return invariantViolation(e.logger, ErrRunLengthZero, "over-swap RLE: swapHigh padding remainder collapsed to zero")
			}
			if pPad-rlPad != *pHigh-rlItr {
				col.RunLengths[pPad-rlPad+1] -= remSize
				if col.RunLengths[pPad-rlPad-1] == 0 {
					return invariantViolation(e.logger, ErrRunLengthZero, "over-swap RLE: swapHigh padding neighbor marker zeroed")
				}
				col.RunLengths[*pHigh-rlItr] = col.RunLengths[pPad-rlPad+1]
				col.RunLengths[pPad] = remSize
				col.RunLengths[pPad-remSize+1] = remSize
			}
			col.RunLengths[*pItr+rlHigh] = col.RunLengths[*pItr]

			for i := 0; i < rlHigh; i++ {
				swap3(col, *pItr+i, *pHigh-rlHigh+1+i)
			}
			for i := 0; i < padSize; i++ {
				swap3(col, *pItr+rlHigh+i, *pHigh-rlItr+1+i)
			}
		}
	case rlHigh > rlItr:
		if *pHigh-rlHigh+1 < *pItr+rlHigh {
			overlapSize := (*pItr + rlHigh) - (*pHigh - rlHigh + 1)
			col.RunLengths[*pHigh-(rlHigh-overlapSize)+1] = rlHigh
			col.RunLengths[*pHigh-(rlHigh-overlapSize)] = rlHigh
			for i := 0; i < rlHigh-overlapSize; i++ {
				swap3(col, *pItr+i, *pHigh-(rlHigh-overlapSize)+1+i)
			}
		} else {
			pPad := *pItr + rlItr
			for pPad+col.RunLengths[pPad] < *pItr+rlHigh {
				pPad += col.RunLengths[pPad]
			}
			rlPad := col.RunLengths[pPad]
			remSize := (*pItr + rlHigh) - pPad
			if remSize == 0 {
				return invariantViolation(e.logger, ErrRunLengthZero, "over-swap RLE: swapHigh padding remainder collapsed to zero")
			}
			if pPad+rlPad != *pItr+rlHigh {
				col.RunLengths[pPad+rlPad-1] -= remSize
				if col.RunLengths[pPad+rlPad-1] == 0 {
					return invariantViolation(e.logger, ErrRunLengthZero, "over-swap RLE: swapHigh padding neighbor marker zeroed")
				}
				col.RunLengths[*pItr+rlHigh] = col.RunLengths[pPad+rlPad-1]
				col.RunLengths[pPad] = remSize
				col.RunLengths[pPad+remSize-1] = remSize
			}
			col.RunLengths[*pHigh-rlItr+1] = col.RunLengths[*pHigh]

			for i := 0; i < rlItr; i++ {
				swap3(col, *pItr+i, *pHigh-rlItr+1+i)
			}
			for i := 0; i < padSize; i++ {
				swap3(col, *pItr+rlItr+i, *pHigh-rlHigh+1+i)
			}
		}
	default:
		for i := 0; i < rlItr; i++ {
			swap3(col, *pItr+i, *pHigh-rlHigh+1+i)
		}
		*pHigh -= rlItr
	}

	return nil
}
