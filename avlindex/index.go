package avlindex

import "github.com/pkg/errors"

// ErrImbalanced indicates the AVL tree's height-balance invariant
// (children heights within ±1) was violated after a rotation. This can
// only happen if the rotation logic itself has a bug; callers cannot
// recover from it.
var ErrImbalanced = errors.New("avlindex: AVL balance invariant violated")

// Backend selects which Index implementation a table.Table constructs
// for its cracker column.
type Backend int

const (
	// BackendAVL selects the general-purpose, self-balancing tree.
	// Valid for any int64 key, including negative ones.
	BackendAVL Backend = iota

	// BackendDense selects the slice-backed map. Only valid when every
	// key the table will ever insert is a small non-negative integer,
	// e.g. node ids in adjacency-list mode.
	BackendDense
)

// Index is the ordered positional map a cracker column uses to
// memoize partition boundaries already discovered by a select.
//
// k -> p means: for every i < p, crk[i] < k; for every i >= p,
// crk[i] >= k. See spec invariant 3 (index consistency).
type Index interface {
	// Insert sets (or replaces) the entry key -> pos.
	Insert(key int64, pos int)

	// Get returns the position recorded for key, if any.
	Get(key int64) (int, bool)

	// Contains reports whether key has a recorded position.
	Contains(key int64) bool

	// LowerBound returns the position paired with the largest
	// recorded key <= key.
	LowerBound(key int64) (int, bool)

	// UpperBound returns the position paired with the smallest
	// recorded key >= key.
	UpperBound(key int64) (int, bool)

	// ShiftAbove subtracts amount from the position of every entry
	// whose key is strictly greater than threshold. Used after
	// compactive compression removes entries from the cracker array.
	ShiftAbove(threshold int64, amount int)

	// Empty reports whether the index holds no entries.
	Empty() bool
}

// New constructs an Index for the given backend.
func New(backend Backend) Index {
	switch backend {
	case BackendDense:
		return NewDense()
	default:
		return NewAVL()
	}
}

// errWrap annotates a sentinel with a stack trace and a short message,
// used only for the fatal, code-bug-indicating invariant violations
// that this package panics on (spec: "Invariant broken ... fatal").
func errWrap(sentinel error, msg string) error {
	return errors.Wrap(sentinel, msg)
}
