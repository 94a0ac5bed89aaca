package table

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrColumnExists is returned by NewColumns when a name is already in use.
var ErrColumnExists = errors.New("table: column already exists")

// ErrColumnMissing is returned when an operation names a column the
// table does not have.
var ErrColumnMissing = errors.New("table: no such column")

// ErrSchemaMismatch is returned by Insert when the set of columns in
// the call does not exactly match the table's declared columns.
var ErrSchemaMismatch = errors.New("table: insert does not match table schema")

// ErrLengthMismatch is returned by Insert when the vectors supplied
// for different columns in the same call disagree in length.
var ErrLengthMismatch = errors.New("table: inserted vectors have mismatched lengths")

// ErrCrackerUnset is returned by the cracker-select operations when no
// column has been designated via SetCrkCol yet.
var ErrCrackerUnset = errors.New("table: no cracker column set")

// ErrAlreadyCracked is returned by SetCrkCol on a table that has
// already designated a cracker column; re-keying is only permitted on
// a virgin table.
var ErrAlreadyCracked = errors.New("table: cracker column already set")

func fatal(logger zerolog.Logger, sentinel error, msg string) error {
	logger.Error().Str("invariant", sentinel.Error()).Msg(msg)

	return errors.Wrap(sentinel, msg)
}
