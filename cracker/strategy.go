package cracker

import (
	"github.com/rs/zerolog"

	"github.com/adaptivecolumn/accol/avlindex"
	"github.com/adaptivecolumn/accol/column"
)

// Strategy names one of the five partitioning variants a table.Table
// can be configured with.
type Strategy int

const (
	// Decomposed is the uncompressed three-way partition, V_D.
	Decomposed Strategy = iota
	// Recognitive adds a memoized-run short-circuit on top of Decomposed, V_R.
	Recognitive
	// Compactive merges adjacent equal-value cracker entries via Ofs, V_C.
	Compactive
	// UnderSwapRLE swaps only equal-length runs, repairing markers on merge, V_U.
	UnderSwapRLE
	// OverSwapRLE swaps mismatched-length runs via main+padding blocks, V_O.
	OverSwapRLE
)

// Engine is the scan/swap phase a table.Table delegates to once its
// cracker column and index are set up. Positions returned are base
// rows (i.e. already resolved through column.Column.BaseIdx), ready
// to be used to index any sibling column directly.
type Engine interface {
	// SelectSpecific returns the base positions where the cracker
	// column equals x, partitioning col and memoizing boundaries in
	// idx as a side effect. An absent x yields a nil slice, never an
	// error.
	SelectSpecific(col *column.Column, idx avlindex.Index, x int64) ([]int, error)

	// SelectRange returns the base positions where the cracker column
	// falls within [low, high], with inclusivity controlled by incLow
	// and incHigh. The OverSwapRLE engine accepts only ranges that
	// resolve to a single value and returns ErrBoundsCollapsed for
	// any other range.
	SelectRange(col *column.Column, idx avlindex.Index, low, high int64, incLow, incHigh bool) ([]int, error)
}

// New constructs the Engine for strategy, logging scan/swap tracing
// through logger.
func New(strategy Strategy, logger zerolog.Logger) Engine {
	switch strategy {
	case Recognitive:
		return &recognitiveEngine{logger: logger}
	case Compactive:
		return &compactiveEngine{logger: logger}
	case UnderSwapRLE:
		return &underSwapEngine{logger: logger}
	case OverSwapRLE:
		return &overSwapEngine{logger: logger}
	default:
		return &decomposedEngine{logger: logger}
	}
}
