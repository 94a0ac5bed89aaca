package adjacency

import (
	"github.com/pkg/errors"

	"github.com/adaptivecolumn/accol/table"
)

// ErrUnknownColumn is returned by Select when asked to project a
// column other than "src" or "dst".
var ErrUnknownColumn = errors.New("adjacency: unknown sibling column")

// List is a two-column adjacency-list store: src[i] -> dst[i] for
// every row i, with one of the two columns designated as the cracker
// column that drives point-equality node lookups.
type List struct {
	t *table.Table
}

// FromVectors builds an adjacency list from parallel src/dst vectors
// and designates crkCol ("src" or "dst") as the cracker column.
func FromVectors(src, dst []int64, crkCol string, opts ...table.Option) (*List, error) {
	t := table.New(opts...)
	if err := t.NewColumns("src", "dst"); err != nil {
		return nil, err
	}
	if err := t.Insert(map[string][]int64{"src": src, "dst": dst}); err != nil {
		return nil, err
	}
	if err := t.SetCrkCol(crkCol); err != nil {
		return nil, err
	}

	return &List{t: t}, nil
}

// Select returns the values of column other ("src" or "dst", whichever
// was not designated as the cracker column) at the rows where the
// cracker column equals x.
func (l *List) Select(x int64, other string) ([]int64, error) {
	if other != "src" && other != "dst" {
		return nil, errors.Wrap(ErrUnknownColumn, other)
	}

	positions, err := l.t.CrackerSelectSpecific(x)
	if err != nil {
		return nil, err
	}

	col, err := l.t.GetCol(other)
	if err != nil {
		return nil, err
	}

	out := make([]int64, len(positions))
	for i, p := range positions {
		out[i] = col.V[p]
	}

	return out, nil
}
