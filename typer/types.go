// Package typer: tunable options and error definitions for the typing pass.
package typer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for typing execution.
var (
	// ErrTopologyNil is returned if a nil topology pointer is passed.
	ErrTopologyNil = errors.New("typer: topology is nil")

	// ErrRulesetNil is returned if a nil ruleset pointer is passed.
	ErrRulesetNil = errors.New("typer: ruleset is nil")

	// ErrDuplicateRule is returned when a rule name is registered twice.
	ErrDuplicateRule = errors.New("typer: duplicate rule name")

	// ErrBadRuleFile is returned for malformed YAML rule documents.
	ErrBadRuleFile = errors.New("typer: malformed rule file")

	// ErrUntypedAtom is returned when no type survives for an atom.
	ErrUntypedAtom = errors.New("typer: no type found for atom")

	// ErrAmbiguousType is returned when several types survive for an atom.
	ErrAmbiguousType = errors.New("typer: multiple types found for atom")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("typer: invalid option supplied")
)

// Option configures AssignTypes via functional arguments.
// An invalid Option (e.g. negative worker count) is recorded internally
// and surfaced as ErrOptionViolation when AssignTypes is invoked.
type Option func(*Options)

// Options holds parameters customizing a typing pass.
type Options struct {
	// Ctx allows cancellation and deadlines between rules.
	Ctx context.Context

	// Logger receives per-rule debug lines and the pass summary.
	Logger *zap.Logger

	// Workers bounds the pool for label-free rules. 1 disables the pool.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - a no-op logger
//   - a single worker (fully sequential pass).
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Logger:  zap.NewNop(),
		Workers: 1,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes pass and per-rule logging to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the worker pool size for label-free rules.
//
//	n > 0: exactly n workers
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}
