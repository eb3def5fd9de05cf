// Package iso provides tunable options and error definitions for the
// embedding search.
package iso

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("iso: invalid option supplied")

// Option configures the embedding search via functional arguments.
// An invalid Option (e.g. a negative embedding cap) is recorded
// internally and surfaced as ErrOptionViolation when All is invoked.
type Option func(*Options)

// Options holds parameters to customize the embedding search.
type Options struct {
	// MaxEmbeddings, if > 0, stops the enumeration after that many
	// complete embeddings. A value of 0 disables the cap.
	MaxEmbeddings int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no embedding cap (MaxEmbeddings == 0)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		MaxEmbeddings: 0,
		err:           nil,
	}
}

// WithMaxEmbeddings caps the enumeration, a guard for patterns whose
// automorphisms explode on symmetric hosts.
//
//	n > 0: stop after n embeddings
//	n == 0: explicit no cap
//	n < 0: invalid option, ErrOptionViolation
func WithMaxEmbeddings(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxEmbeddings cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxEmbeddings = n
		}
	}
}
