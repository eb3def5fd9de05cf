// Package typer: bounded-parallel rule application.
//
// Only rules free of %name predicates fan out; their grants are plain set
// unions, insensitive to publication order. Rules that read labels keep
// the sequential, definition-ordered contract.
package typer

import (
	"golang.org/x/sync/errgroup"
)

// applyParallel fans label-free rules out over a bounded pool, then runs
// the label-dependent remainder sequentially in definition order.
func (run *runner) applyParallel(rules []Rule, workers int) error {
	var labelled []Rule
	g, gctx := errgroup.WithContext(run.ctx)
	g.SetLimit(workers)
	for _, r := range rules {
		if r.UsesLabels() {
			labelled = append(labelled, r)

			continue
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			return run.applyRule(r, true)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return run.applySequential(labelled)
}
