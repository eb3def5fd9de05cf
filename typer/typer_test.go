package typer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/molmatch/match"
	"github.com/katalvlaran/molmatch/mol"
	"github.com/katalvlaran/molmatch/typer"
)

// propane builds a 3-carbon chain.
func propane() *mol.Topology {
	top := mol.NewTopology()
	for i := 0; i < 3; i++ {
		top.AddAtom("C")
	}
	_ = top.AddBond(0, 1)
	_ = top.AddBond(1, 2)

	return top
}

// methylcyclopropane builds a 3-carbon ring with one chain carbon on atom 0.
func methylcyclopropane() *mol.Topology {
	top := mol.NewTopology()
	for i := 0; i < 4; i++ {
		top.AddAtom("C")
	}
	_ = top.AddBond(0, 1)
	_ = top.AddBond(1, 2)
	_ = top.AddBond(2, 0)
	_ = top.AddBond(0, 3)

	return top
}

// mustAdd registers a rule the test requires to compile.
func mustAdd(t *testing.T, rs *typer.Ruleset, r typer.Rule) {
	t.Helper()
	require.NoError(t, rs.Add(r), "rule %q", r.Name)
}

// TestAssignTypes_ByDegree types propane ends and middle with disjoint rules.
func TestAssignTypes_ByDegree(t *testing.T) {
	rs := typer.NewRuleset()
	mustAdd(t, rs, typer.Rule{Name: "CT3", Smarts: "[C;D1]"})
	mustAdd(t, rs, typer.Rule{Name: "CT2", Smarts: "[C;D2]"})

	types, err := typer.AssignTypes(propane(), rs)
	require.NoError(t, err)

	assert.Equal(t, map[int]string{0: "CT3", 1: "CT2", 2: "CT3"}, types)
}

// TestAssignTypes_Override lets a specific rule displace a generic one on
// the atoms it hits, leaving the generic type elsewhere.
func TestAssignTypes_Override(t *testing.T) {
	rs := typer.NewRuleset()
	mustAdd(t, rs, typer.Rule{Name: "c_any", Smarts: "[C]"})
	mustAdd(t, rs, typer.Rule{Name: "c_end", Smarts: "[C;D1]", Overrides: []string{"c_any"}})

	types, err := typer.AssignTypes(propane(), rs)
	require.NoError(t, err)

	assert.Equal(t, map[int]string{0: "c_end", 1: "c_any", 2: "c_end"}, types)
}

// TestAssignTypes_LabelDependency runs a rule whose pattern reads a grant
// published by an earlier rule in the same pass.
func TestAssignTypes_LabelDependency(t *testing.T) {
	rs := typer.NewRuleset()
	mustAdd(t, rs, typer.Rule{Name: "c_ring", Smarts: "[C;R3]"})
	mustAdd(t, rs, typer.Rule{Name: "c_side", Smarts: "[C;D1][C;%c_ring]"})

	types, err := typer.AssignTypes(methylcyclopropane(), rs)
	require.NoError(t, err)

	assert.Equal(t, map[int]string{0: "c_ring", 1: "c_ring", 2: "c_ring", 3: "c_side"}, types)
}

// TestAssignTypes_ParallelMatchesSequential pools the label-free rules and
// still resolves the same types, label-dependent tail included.
func TestAssignTypes_ParallelMatchesSequential(t *testing.T) {
	build := func() *typer.Ruleset {
		rs := typer.NewRuleset()
		mustAdd(t, rs, typer.Rule{Name: "c_ring", Smarts: "[C;R3]"})
		mustAdd(t, rs, typer.Rule{Name: "c_side", Smarts: "[C;D1][C;%c_ring]"})

		return rs
	}

	sequential, err := typer.AssignTypes(methylcyclopropane(), build())
	require.NoError(t, err)

	parallel, err := typer.AssignTypes(methylcyclopropane(), build(),
		typer.WithWorkers(4),
		typer.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

// TestAssignTypes_UntypedAtom reports the first atom no rule covered.
func TestAssignTypes_UntypedAtom(t *testing.T) {
	rs := typer.NewRuleset()
	mustAdd(t, rs, typer.Rule{Name: "ox", Smarts: "[#8]"})

	_, err := typer.AssignTypes(propane(), rs)

	require.Error(t, err)
	assert.ErrorIs(t, err, typer.ErrUntypedAtom)
	assert.Contains(t, err.Error(), "atom 0")
}

// TestAssignTypes_AmbiguousType reports atoms typed by overlapping rules
// that never override each other.
func TestAssignTypes_AmbiguousType(t *testing.T) {
	rs := typer.NewRuleset()
	mustAdd(t, rs, typer.Rule{Name: "c_a", Smarts: "[C]"})
	mustAdd(t, rs, typer.Rule{Name: "c_b", Smarts: "[#6]"})

	_, err := typer.AssignTypes(propane(), rs)

	require.Error(t, err)
	assert.ErrorIs(t, err, typer.ErrAmbiguousType)
	assert.Contains(t, err.Error(), "c_a")
	assert.Contains(t, err.Error(), "c_b")
}

// TestAssignTypes_RuleEvalError surfaces evaluation failures with the rule name.
func TestAssignTypes_RuleEvalError(t *testing.T) {
	rs := typer.NewRuleset()
	mustAdd(t, rs, typer.Rule{Name: "bad", Smarts: "[$(C(=O)O)]"})

	_, err := typer.AssignTypes(propane(), rs)

	require.Error(t, err)
	assert.ErrorIs(t, err, match.ErrNotImplemented)
	assert.Contains(t, err.Error(), `"bad"`)
}

// TestAssignTypes_NilInputs rejects nil pointers up front.
func TestAssignTypes_NilInputs(t *testing.T) {
	_, err := typer.AssignTypes(nil, typer.NewRuleset())
	assert.ErrorIs(t, err, typer.ErrTopologyNil)

	_, err = typer.AssignTypes(propane(), nil)
	assert.ErrorIs(t, err, typer.ErrRulesetNil)
}

// TestAssignTypes_BadWorkers rejects non-positive pool sizes.
func TestAssignTypes_BadWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := typer.AssignTypes(propane(), typer.NewRuleset(), typer.WithWorkers(n))
		assert.ErrorIs(t, err, typer.ErrOptionViolation, "workers %d", n)
	}
}

// TestAssignTypes_ContextCancelled stops between rules.
func TestAssignTypes_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rs := typer.NewRuleset()
	mustAdd(t, rs, typer.Rule{Name: "c", Smarts: "[C]"})

	_, err := typer.AssignTypes(propane(), rs, typer.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestAssignTypes_EmptyInputs types nothing without failing.
func TestAssignTypes_EmptyInputs(t *testing.T) {
	types, err := typer.AssignTypes(mol.NewTopology(), typer.NewRuleset())

	require.NoError(t, err)
	assert.Empty(t, types)
}
