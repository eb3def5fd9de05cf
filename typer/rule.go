// Package typer: rules and the ordered ruleset.
package typer

import (
	"fmt"

	"github.com/katalvlaran/molmatch/match"
)

// Rule is one typing rule: the type it assigns, the pattern selecting its
// atoms, and the names of weaker rules it overrides.
type Rule struct {
	// Name is the atom type this rule assigns; unique within a Ruleset.
	Name string

	// Smarts is the pattern source selecting the rule's atoms.
	Smarts string

	// Overrides lists rule names blacklisted on every atom this rule hits.
	Overrides []string

	// Desc is free-form documentation, carried but never interpreted.
	Desc string

	// pattern is compiled once, on Add.
	pattern *match.Pattern
}

// UsesLabels reports whether the rule's pattern reads earlier grants via
// %name predicates, making it order-dependent within a pass.
func (r Rule) UsesLabels() bool {
	return r.pattern != nil && r.pattern.UsesLabels()
}

// Ruleset is an ordered collection of rules with unique names. Application
// order is Add order.
type Ruleset struct {
	rules  []Rule
	byName map[string]int
}

// NewRuleset returns an empty Ruleset.
func NewRuleset() *Ruleset {
	return &Ruleset{byName: make(map[string]int)}
}

// Add compiles r's pattern and appends the rule. Returns ErrDuplicateRule
// for a reused name, ErrBadRuleFile for a blank one, or the pattern's own
// compile error.
func (rs *Ruleset) Add(r Rule) error {
	if r.Name == "" {
		return fmt.Errorf("%w: rule without a name", ErrBadRuleFile)
	}
	if _, dup := rs.byName[r.Name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateRule, r.Name)
	}
	p, err := match.NewPattern(r.Smarts,
		match.WithName(r.Name),
		match.WithOverrides(r.Overrides...))
	if err != nil {
		return fmt.Errorf("typer: rule %q: %w", r.Name, err)
	}
	r.Overrides = append([]string(nil), r.Overrides...)
	r.pattern = p
	rs.byName[r.Name] = len(rs.rules)
	rs.rules = append(rs.rules, r)

	return nil
}

// Rules returns the rules in application order. The slice is a copy.
func (rs *Ruleset) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)

	return out
}

// Get returns the rule registered under name.
func (rs *Ruleset) Get(name string) (Rule, bool) {
	i, ok := rs.byName[name]
	if !ok {
		return Rule{}, false
	}

	return rs.rules[i], true
}

// Len returns the number of rules.
func (rs *Ruleset) Len() int {
	return len(rs.rules)
}
