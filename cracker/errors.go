package cracker

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrRunLengthZero indicates a run-length dual marker decayed to zero,
// which can only happen if a swap step mis-sized a run.
var ErrRunLengthZero = errors.New("cracker: run-length marker is zero")

// ErrBoundsCollapsed indicates the low/high scan pointers crossed in a
// way the partitioning invariant forbids (p_low > p_high after the
// main scan terminates). The over-swap RLE engine also returns it from
// SelectRange for a range that spans more than one value.
var ErrBoundsCollapsed = errors.New("cracker: partition bounds collapsed")

// invariantViolation logs the failure at Error level and returns a
// stack-annotated sentinel, matching the original engine's panic!()
// guards on malformed runs (spec: "Invariant broken ... fatal").
func invariantViolation(logger zerolog.Logger, sentinel error, msg string) error {
	logger.Error().Str("invariant", sentinel.Error()).Msg(msg)

	return errors.Wrap(sentinel, msg)
}
