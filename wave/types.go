package wave

import (
	"errors"
	"fmt"
)

// Sentinel errors for wave builds.
var (
	// ErrNilTable is returned when the table pointer is nil.
	ErrNilTable = errors.New("wave: table is nil")

	// ErrNilLayer is returned when the direct-edge layer is nil.
	ErrNilLayer = errors.New("wave: direct layer is nil")

	// ErrLayerOutOfRange is returned when the layer names a station the table does not hold.
	ErrLayerOutOfRange = errors.New("wave: layer references a station outside the table")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wave: invalid option supplied")
)

// Option configures a build via functional arguments.
type Option func(*Options)

// Options holds hooks and limits for a build.
type Options struct {
	// OnRound is called after every expansion round with the round's hop
	// distance (2, 3, ...) and the number of pairs it discovered.
	OnRound func(round, discovered int)

	// OnFill is called for every composed cell with 0-based stations,
	// the stored time and the round that discovered it.
	OnFill func(a, c, time, round int)

	// MaxRounds, if > 0, caps the number of expansion rounds below N−2.
	MaxRounds int

	err error
}

// DefaultOptions returns no-op hooks and no extra round cap.
func DefaultOptions() Options {
	return Options{
		OnRound:   func(int, int) {},
		OnFill:    func(int, int, int, int) {},
		MaxRounds: 0,
	}
}

// WithOnRound registers a per-round callback.
func WithOnRound(fn func(round, discovered int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithOnFill registers a per-cell callback.
func WithOnFill(fn func(a, c, time, round int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFill = fn
		}
	}
}

// WithMaxRounds caps the number of expansion rounds.
//
//	n > 0: at most n rounds
//	n == 0: only the natural N−2 cap
//	n < 0: ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// Result summarizes a finished build.
type Result struct {
	// Rounds is the number of expansion rounds executed.
	Rounds int `json:"rounds"`
	// Discovered is the number of pairs filled by composition.
	Discovered int `json:"discovered"`
	// Filled is the final number of known off-diagonal directed cells.
	Filled int `json:"filled"`
	// Complete is true when every off-diagonal cell is known.
	Complete bool `json:"complete"`
	// Exhausted is true when a round discovered nothing and the build stopped
	// before the round cap.
	Exhausted bool `json:"exhausted"`
}
