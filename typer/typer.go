// Package typer: the typing pass itself.
package typer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/molmatch/mol"
)

// AssignTypes runs every rule of rs over t and resolves one type per atom.
//
// Rules apply in definition order; each matched root atom receives the
// rule's name on its whitelist and the rule's overrides on its blacklist
// before the next match is pulled, so %name predicates in later rules (or
// later matches of the same rule) observe earlier grants. With WithWorkers,
// label-free rules run on a bounded pool first and label-dependent rules
// follow sequentially; the resulting sets are identical either way.
//
// Resolution keeps, per atom, the whitelisted names its blacklist does not
// cancel: exactly one survivor is the atom's type, zero is ErrUntypedAtom,
// several is ErrAmbiguousType.
func AssignTypes(t *mol.Topology, rs *Ruleset, opts ...Option) (map[int]string, error) {
	if t == nil {
		return nil, ErrTopologyNil
	}
	if rs == nil {
		return nil, ErrRulesetNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Ring data and typing state must exist before any worker starts.
	t.Prepare()

	run := &runner{
		top:    t,
		atoms:  t.Atoms(),
		ctx:    o.Ctx,
		logger: o.Logger.With(zap.String("run_id", uuid.NewString())),
	}
	run.logger.Debug("typing started",
		zap.Int("atoms", t.Len()),
		zap.Int("rules", rs.Len()),
		zap.Int("workers", o.Workers))
	start := time.Now()

	var err error
	if o.Workers > 1 {
		err = run.applyParallel(rs.Rules(), o.Workers)
	} else {
		err = run.applySequential(rs.Rules())
	}
	if err != nil {
		return nil, err
	}

	types, err := run.resolve()
	if err != nil {
		return nil, err
	}
	run.logger.Debug("typing finished",
		zap.Int("typed", len(types)),
		zap.Duration("took", time.Since(start)))

	return types, nil
}

// runner carries the mutable state of one typing pass.
type runner struct {
	top    *mol.Topology
	atoms  []*mol.Atom
	ctx    context.Context
	logger *zap.Logger

	// mu serializes whitelist and blacklist writes while rules fan out.
	mu sync.Mutex
}

// applySequential runs the rules one after another, in order.
func (run *runner) applySequential(rules []Rule) error {
	for _, r := range rules {
		select {
		case <-run.ctx.Done():
			return run.ctx.Err()
		default:
		}
		if err := run.applyRule(r, false); err != nil {
			return err
		}
	}

	return nil
}

// applyRule matches one rule and publishes its grants atom by atom.
func (run *runner) applyRule(r Rule, serialize bool) error {
	start := time.Now()
	matches := 0
	for idx, err := range r.pattern.FindMatches(run.top) {
		if err != nil {
			return fmt.Errorf("typer: rule %q: %w", r.Name, err)
		}
		atom := run.atoms[idx]
		if serialize {
			run.mu.Lock()
		}
		atom.Whitelist.Add(r.Name)
		atom.Blacklist.AddAll(r.Overrides...)
		if serialize {
			run.mu.Unlock()
		}
		matches++
	}
	run.logger.Debug("rule applied",
		zap.String("rule", r.Name),
		zap.Int("matches", matches),
		zap.Duration("took", time.Since(start)))

	return nil
}

// resolve reduces each atom's whitelist minus blacklist to a single type.
func (run *runner) resolve() (map[int]string, error) {
	types := make(map[int]string, len(run.atoms))
	for _, atom := range run.atoms {
		var eligible []string
		for _, name := range atom.Whitelist.Values() {
			if !atom.Blacklist.Has(name) {
				eligible = append(eligible, name)
			}
		}
		switch len(eligible) {
		case 1:
			types[atom.Index] = eligible[0]
		case 0:
			return nil, fmt.Errorf("%w: atom %d (%s)", ErrUntypedAtom, atom.Index, atom.Symbol)
		default:
			return nil, fmt.Errorf("%w: atom %d (%s) kept [%s]",
				ErrAmbiguousType, atom.Index, atom.Symbol, strings.Join(eligible, ", "))
		}
	}

	return types, nil
}
