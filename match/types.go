// Package match: sentinel errors and pattern options.
package match

import "errors"

// Sentinel errors for pattern compilation and evaluation.
var (
	// ErrNoTrunk indicates a branch with no atom before it to attach to.
	ErrNoTrunk = errors.New("match: branch without a trunk atom")

	// ErrRingClosure indicates a ring-closure digit not appearing exactly twice.
	ErrRingClosure = errors.New("match: ring-closure digit must appear exactly twice")

	// ErrUnknownExpr indicates an expression node the evaluator cannot dispatch.
	ErrUnknownExpr = errors.New("match: unexpected expression node")

	// ErrNotImplemented indicates the matches_string predicate, which is
	// parsed but deliberately unsupported.
	ErrNotImplemented = errors.New("match: matches_string is not implemented")
)

// PatternOption configures a Pattern at construction.
type PatternOption func(*Pattern)

// WithName sets the rule name this pattern types atoms as.
func WithName(name string) PatternOption {
	return func(p *Pattern) { p.name = name }
}

// WithOverrides sets the rule names this pattern overrides when it matches.
func WithOverrides(names ...string) PatternOption {
	return func(p *Pattern) {
		p.overrides = append([]string(nil), names...)
	}
}
