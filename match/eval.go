// Package match: constraint evaluation.
package match

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/molmatch/mol"
	"github.com/katalvlaran/molmatch/smarts"
)

// evalAtomExpr reports whether atom satisfies the constraint expression.
// Conjunctions and disjunctions short-circuit left to right, so an error
// in a right operand surfaces only when the left operand did not already
// decide the result.
func evalAtomExpr(expr *smarts.Node, atom *mol.Atom) (bool, error) {
	switch expr.Kind {
	case smarts.KindNot:
		ok, err := evalAtomExpr(expr.Children[0], atom)
		if err != nil {
			return false, err
		}

		return !ok, nil
	case smarts.KindAnd, smarts.KindWeakAnd:
		ok, err := evalAtomExpr(expr.Children[0], atom)
		if err != nil || !ok {
			return false, err
		}

		return evalAtomExpr(expr.Children[1], atom)
	case smarts.KindOr:
		ok, err := evalAtomExpr(expr.Children[0], atom)
		if err != nil || ok {
			return ok, err
		}

		return evalAtomExpr(expr.Children[1], atom)
	case smarts.KindAtomID:
		return evalAtomID(expr.Children[0], atom)
	case smarts.KindAtomSymbol:
		// A bare atom outside brackets carries no atom_id wrapper.
		return evalAtomID(expr, atom)
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownExpr, expr.Kind)
	}
}

// evalAtomID evaluates one primary constraint against atom.
func evalAtomID(primary *smarts.Node, atom *mol.Atom) (bool, error) {
	switch primary.Kind {
	case smarts.KindAtomicNum:
		want, err := strconv.Atoi(primary.Text)
		if err != nil {
			return false, fmt.Errorf("match: atomic number %q: %w", primary.Text, err)
		}

		return atom.AtomicNum == want, nil
	case smarts.KindAtomSymbol:
		switch {
		case primary.Text == "*":
			return true, nil
		case strings.HasPrefix(primary.Text, "_"):
			// Non-element species are carried in the atom name.
			return atom.Name == primary.Text, nil
		default:
			want, err := mol.AtomicNum(primary.Text)
			if err != nil {
				return false, err
			}

			return atom.AtomicNum == want, nil
		}
	case smarts.KindHasLabel:
		label := strings.TrimPrefix(primary.Text, "%")
		if atom.Whitelist == nil {
			return false, nil
		}

		return atom.Whitelist.Has(label), nil
	case smarts.KindNeighborCount:
		want, err := strconv.Atoi(primary.Text)
		if err != nil {
			return false, fmt.Errorf("match: neighbor count %q: %w", primary.Text, err)
		}

		return len(atom.BondPartners()) == want, nil
	case smarts.KindRingSize:
		want, err := strconv.Atoi(primary.Text)
		if err != nil {
			return false, fmt.Errorf("match: ring size %q: %w", primary.Text, err)
		}
		for _, cycle := range atom.Cycles {
			if len(cycle) == want {
				return true, nil
			}
		}

		return false, nil
	case smarts.KindRingCount:
		want, err := strconv.Atoi(primary.Text)
		if err != nil {
			return false, fmt.Errorf("match: ring count %q: %w", primary.Text, err)
		}

		return len(atom.Cycles) == want, nil
	case smarts.KindMatchesString:
		return false, ErrNotImplemented
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownExpr, primary.Kind)
	}
}
