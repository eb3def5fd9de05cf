package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/match"
	"github.com/katalvlaran/molmatch/smarts"
)

// compile parses a pattern that the test requires to be well-formed.
func compile(t *testing.T, src string) *match.Pattern {
	t.Helper()
	p, err := match.NewPattern(src)
	require.NoError(t, err, "pattern %q", src)

	return p
}

// patternAtoms returns the compiled pattern's atom nodes in document order.
func patternAtoms(p *match.Pattern) []*smarts.Node {
	return p.AST().Select(smarts.KindAtom)
}

// TestNewPattern_SingleAtom compiles the smallest useful pattern.
func TestNewPattern_SingleAtom(t *testing.T) {
	p := compile(t, "[#6]")

	assert.Equal(t, "[#6]", p.Smarts())
	assert.Equal(t, 1, p.Graph().NodeCount())
	assert.Equal(t, 0, p.Graph().EdgeCount())
	assert.Same(t, patternAtoms(p)[0], p.Root())
}

// TestNewPattern_Chain bonds consecutive atoms and roots the first.
func TestNewPattern_Chain(t *testing.T) {
	p := compile(t, "CCO")
	atoms := patternAtoms(p)
	require.Len(t, atoms, 3)

	g := p.Graph()
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(atoms[0], atoms[1]))
	assert.True(t, g.HasEdge(atoms[1], atoms[2]))
	assert.False(t, g.HasEdge(atoms[0], atoms[2]))
	assert.Same(t, atoms[0], p.Root())
}

// TestNewPattern_BranchBondsToTrunk bonds a branch's first atom to the atom
// before the parenthesis, not to whatever follows the branch.
func TestNewPattern_BranchBondsToTrunk(t *testing.T) {
	p := compile(t, "C(F)O")
	atoms := patternAtoms(p)
	require.Len(t, atoms, 3)

	g := p.Graph()
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(atoms[0], atoms[1]), "C-F")
	assert.True(t, g.HasEdge(atoms[0], atoms[2]), "C-O")
	assert.False(t, g.HasEdge(atoms[1], atoms[2]), "F and O share no bond")
}

// TestNewPattern_MultipleBranches fans every branch out from the same trunk.
func TestNewPattern_MultipleBranches(t *testing.T) {
	p := compile(t, "C(F)(Cl)Br")
	atoms := patternAtoms(p)
	require.Len(t, atoms, 4)

	g := p.Graph()
	assert.Equal(t, 3, g.EdgeCount())
	for _, leaf := range atoms[1:] {
		assert.True(t, g.HasEdge(atoms[0], leaf))
	}
}

// TestNewPattern_ChainContinuesPastBranch keeps the trunk for the atoms
// after the closing parenthesis.
func TestNewPattern_ChainContinuesPastBranch(t *testing.T) {
	p := compile(t, "CC(F)C")
	atoms := patternAtoms(p)
	require.Len(t, atoms, 4)

	g := p.Graph()
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(atoms[0], atoms[1]))
	assert.True(t, g.HasEdge(atoms[1], atoms[2]), "branch F bonds the second carbon")
	assert.True(t, g.HasEdge(atoms[1], atoms[3]), "trailing C bonds the second carbon")
	assert.False(t, g.HasEdge(atoms[2], atoms[3]))
}

// TestNewPattern_RingClosure bonds the two atoms sharing a closure digit.
func TestNewPattern_RingClosure(t *testing.T) {
	p := compile(t, "C1CCC1")
	atoms := patternAtoms(p)
	require.Len(t, atoms, 4)

	g := p.Graph()
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(atoms[0], atoms[3]), "closure bond")
}

// TestNewPattern_MultiDigitClosure treats each digit of a label run as an
// independent closure, so "12" opens two rings at once.
func TestNewPattern_MultiDigitClosure(t *testing.T) {
	p := compile(t, "C12CC1C2")
	atoms := patternAtoms(p)
	require.Len(t, atoms, 4)

	g := p.Graph()
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge(atoms[0], atoms[2]), "closure 1")
	assert.True(t, g.HasEdge(atoms[0], atoms[3]), "closure 2")
}

// TestNewPattern_PercentClosure reads "%12" as closures 1 and 2, matching
// the label split used for bare digit runs.
func TestNewPattern_PercentClosure(t *testing.T) {
	p := compile(t, "[C]%12C[C]1[C]2")
	atoms := patternAtoms(p)
	require.Len(t, atoms, 4)

	g := p.Graph()
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge(atoms[0], atoms[2]))
	assert.True(t, g.HasEdge(atoms[0], atoms[3]))
}

// TestNewPattern_BranchWithoutTrunk rejects a branch with no atom to bond to.
func TestNewPattern_BranchWithoutTrunk(t *testing.T) {
	_, err := match.NewPattern("(C)C")

	require.Error(t, err)
	assert.ErrorIs(t, err, match.ErrNoTrunk)
}

// TestNewPattern_RingClosureArity rejects closure digits that do not appear
// exactly twice.
func TestNewPattern_RingClosureArity(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{name: "unpaired", src: "C1CC"},
		{name: "tripled", src: "C1C1C1"},
		{name: "self closure", src: "C11CC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := match.NewPattern(tc.src)

			require.Error(t, err)
			assert.ErrorIs(t, err, match.ErrRingClosure)
		})
	}
}

// TestNewPattern_SyntaxError surfaces parse failures with the source text.
func TestNewPattern_SyntaxError(t *testing.T) {
	_, err := match.NewPattern("[C")

	require.Error(t, err)
	assert.ErrorIs(t, err, smarts.ErrSyntax)
	assert.Contains(t, err.Error(), "[C")
}

// TestNewPattern_Options records the rule name and its override list.
func TestNewPattern_Options(t *testing.T) {
	p, err := match.NewPattern("[#6]",
		match.WithName("opls_135"),
		match.WithOverrides("opls_136", "opls_148"))
	require.NoError(t, err)

	assert.Equal(t, "opls_135", p.Name())
	assert.Equal(t, []string{"opls_136", "opls_148"}, p.Overrides())

	// Mutating the returned slice must not leak back in.
	got := p.Overrides()
	got[0] = "mutated"
	assert.Equal(t, []string{"opls_136", "opls_148"}, p.Overrides())
}

// TestPattern_UsesLabels flags only %name predicates, not ring closures.
func TestPattern_UsesLabels(t *testing.T) {
	assert.True(t, compile(t, "[C;%rule_1]").UsesLabels())
	assert.False(t, compile(t, "[C]").UsesLabels())
	assert.False(t, compile(t, "C1CCC1").UsesLabels(), "closure digits are not label reads")
}
