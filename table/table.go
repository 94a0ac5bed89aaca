package table

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adaptivecolumn/accol/avlindex"
	"github.com/adaptivecolumn/accol/column"
	"github.com/adaptivecolumn/accol/cracker"
)

// Table is a named mapping from column name to column.Column, plus a
// distinguished cracker column and the index that memoizes its
// discovered partition boundaries.
type Table struct {
	id     uuid.UUID
	logger zerolog.Logger

	columns map[string]*column.Column
	order   []string

	crkColName string
	idx        avlindex.Index
	backend    avlindex.Backend
	strategy   cracker.Strategy
	engine     cracker.Engine
}

// Option configures a Table at construction.
type Option func(*Table)

// WithIndexBackend selects the ordered-positional-index implementation
// the table's cracker column uses. Defaults to avlindex.BackendAVL.
func WithIndexBackend(backend avlindex.Backend) Option {
	return func(t *Table) { t.backend = backend }
}

// WithStrategy selects the partitioning variant. Defaults to
// cracker.Decomposed.
func WithStrategy(strategy cracker.Strategy) Option {
	return func(t *Table) { t.strategy = strategy }
}

// WithLogger attaches a logger; every log line the table's operations
// emit carries the table's instance id for correlation across
// concurrently-held tables. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Table) { t.logger = logger }
}

// New constructs an empty Table.
func New(opts ...Option) *Table {
	t := &Table{
		id:       uuid.New(),
		logger:   zerolog.Nop(),
		columns:  make(map[string]*column.Column),
		backend:  avlindex.BackendAVL,
		strategy: cracker.Decomposed,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With().Str("table_id", t.id.String()).Logger()
	t.engine = cracker.New(t.strategy, t.logger)

	return t
}

// NewColumns creates empty columns under the given names. Naming an
// already-existing column is fatal.
func (t *Table) NewColumns(names ...string) error {
	for _, name := range names {
		if _, exists := t.columns[name]; exists {
			return fatal(t.logger, ErrColumnExists, name)
		}
		t.columns[name] = column.New()
		t.order = append(t.order, name)
	}

	return nil
}

// Insert appends values to every column. The call must supply exactly
// the table's declared columns, and every vector in the call must
// share the same length.
func (t *Table) Insert(values map[string][]int64) error {
	if len(values) != len(t.columns) {
		return fatal(t.logger, ErrSchemaMismatch, "insert must supply every declared column, no more and no fewer")
	}

	n := -1
	for name, vec := range values {
		if _, exists := t.columns[name]; !exists {
			return fatal(t.logger, ErrSchemaMismatch, name)
		}
		if n == -1 {
			n = len(vec)
		} else if len(vec) != n {
			return fatal(t.logger, ErrLengthMismatch, name)
		}
	}

	for name, vec := range values {
		t.columns[name].Append(vec)
	}
	t.logger.Debug().Int("rows", n).Msg("insert")

	return nil
}

// SetCrkCol designates name as the cracker column, cloning its values
// into the cracked copy and the identity base-index permutation.
// Re-keying is permitted only on a virgin table (one with no cracker
// column designated yet).
func (t *Table) SetCrkCol(name string) error {
	if t.crkColName != "" {
		return fatal(t.logger, ErrAlreadyCracked, "re-key is only permitted on a virgin table")
	}
	col, exists := t.columns[name]
	if !exists {
		return fatal(t.logger, ErrColumnMissing, name)
	}

	col.EnsureIdentityCrk()
	t.crkColName = name
	t.idx = avlindex.New(t.backend)
	t.logger.Debug().Str("column", name).Msg("set cracker column")

	return nil
}

// GetCol returns the named column.
func (t *Table) GetCol(name string) (*column.Column, error) {
	col, exists := t.columns[name]
	if !exists {
		return nil, fatal(t.logger, ErrColumnMissing, name)
	}

	return col, nil
}

// GetIndices constructs an independent projection Table whose columns
// hold col.V[p] for each p in positions. The projection has no
// cracker column designated and none of the parent's cracked state:
// its cracker selects return ErrCrackerUnset until SetCrkCol is
// called on it.
func (t *Table) GetIndices(positions []int) (*Table, error) {
	proj := New(WithIndexBackend(t.backend), WithStrategy(t.strategy), WithLogger(t.logger))

	for _, name := range t.order {
		src := t.columns[name]
		v := make([]int64, len(positions))
		for i, p := range positions {
			v[i] = src.V[p]
		}
		proj.columns[name] = &column.Column{V: v}
		proj.order = append(proj.order, name)
	}

	return proj, nil
}

// Rearrange permutes every column by perm (column i becomes the old
// column perm[i]) and invalidates all cracker state; the designated
// cracker column's name is retained and will be re-cracked lazily on
// the next select.
func (t *Table) Rearrange(perm []int) error {
	for _, name := range t.order {
		t.columns[name].Rearrange(perm)
	}
	if t.crkColName != "" {
		t.idx = avlindex.New(t.backend)
	}
	t.logger.Debug().Int("rows", len(perm)).Msg("rearrange")

	return nil
}

// CrackerSelectSpecific returns the base-row positions where the
// cracker column equals x, partitioning it further as a side effect.
func (t *Table) CrackerSelectSpecific(x int64) ([]int, error) {
	col, err := t.crackerColumn()
	if err != nil {
		return nil, err
	}

	return t.engine.SelectSpecific(col, t.idx, x)
}

// CrackerSelectRange returns the base-row positions where the cracker
// column falls within [low, high], inclusivity controlled by incLow
// and incHigh.
func (t *Table) CrackerSelectRange(low, high int64, incLow, incHigh bool) ([]int, error) {
	col, err := t.crackerColumn()
	if err != nil {
		return nil, err
	}

	return t.engine.SelectRange(col, t.idx, low, high, incLow, incHigh)
}

// CountColEq counts the rows where the named column equals value, a
// plain linear scan independent of any cracking state.
func (t *Table) CountColEq(name string, value int64) (int64, error) {
	col, err := t.GetCol(name)
	if err != nil {
		return 0, err
	}

	var count int64
	for _, v := range col.V {
		if v == value {
			count++
		}
	}

	return count, nil
}

func (t *Table) crackerColumn() (*column.Column, error) {
	if t.crkColName == "" {
		return nil, fatal(t.logger, ErrCrackerUnset, "no column has been designated via SetCrkCol")
	}

	return t.columns[t.crkColName], nil
}
