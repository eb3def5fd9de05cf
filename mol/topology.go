// Package mol: atoms, bonds, and the Topology container.
package mol

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology construction.
var (
	// ErrAtomNotFound indicates an atom index outside the topology.
	ErrAtomNotFound = errors.New("mol: atom index out of range")

	// ErrSelfBond indicates a bond whose endpoints are the same atom.
	ErrSelfBond = errors.New("mol: atom cannot bond to itself")

	// ErrDuplicateBond indicates a bond that is already present.
	ErrDuplicateBond = errors.New("mol: bond already present")
)

// Atom is one atom of a Topology.
//
// Cycles, Whitelist and Blacklist are populated by Prepare and are nil
// before it runs. Whitelist and Blacklist are deliberately mutable shared
// state: typing rules append to them between match pulls, and label
// predicates read them live.
type Atom struct {
	// Index is the atom's position in its Topology, 0-based.
	Index int

	// Symbol is the element symbol, or the raw "_"-prefixed token for
	// custom (united-atom style) particles.
	Symbol string

	// AtomicNum is the element's atomic number, 0 for custom particles
	// and unrecognized symbols.
	AtomicNum int

	// Name identifies the particle for "_"-name matching; defaults to Symbol.
	Name string

	// X, Y are depiction coordinates (molfile units).
	X, Y float64

	// bonds lists bonded neighbor atoms in bond-insertion order.
	bonds []*Atom

	// Cycles lists the fundamental cycles through this atom.
	Cycles [][]*Atom

	// Whitelist holds type names granted to this atom.
	Whitelist *LabelSet

	// Blacklist holds type names overridden away from this atom.
	Blacklist *LabelSet
}

// BondPartners returns the atoms bonded to a, in bond-insertion order.
// The slice is live; callers must not mutate it.
func (a *Atom) BondPartners() []*Atom {
	return a.bonds
}

// Bond is an undirected bond between two atoms.
type Bond struct {
	A, B *Atom
}

// Topology is an insertion-ordered collection of atoms and bonds.
//
// Not safe for concurrent mutation. Once prepared (see Prepare), the
// derived ring data is frozen.
type Topology struct {
	atoms    []*Atom
	bonds    []Bond
	prepared bool
}

// NewTopology returns an empty Topology.
func NewTopology() *Topology {
	return &Topology{}
}

// AddAtom appends an atom with the given element symbol and returns it.
// Unknown and "_"-prefixed symbols are accepted with atomic number 0;
// their Name keeps the raw token for name-based matching.
func (t *Topology) AddAtom(symbol string) *Atom {
	num, err := AtomicNum(symbol)
	if err != nil {
		num = 0
	}
	a := &Atom{
		Index:     len(t.atoms),
		Symbol:    symbol,
		AtomicNum: num,
		Name:      symbol,
	}
	t.atoms = append(t.atoms, a)

	return a
}

// AddBond bonds the atoms at indices i and j.
// Returns ErrAtomNotFound, ErrSelfBond, or ErrDuplicateBond.
func (t *Topology) AddBond(i, j int) error {
	if i < 0 || i >= len(t.atoms) {
		return fmt.Errorf("%w: %d", ErrAtomNotFound, i)
	}
	if j < 0 || j >= len(t.atoms) {
		return fmt.Errorf("%w: %d", ErrAtomNotFound, j)
	}
	if i == j {
		return fmt.Errorf("%w: index %d", ErrSelfBond, i)
	}
	a, b := t.atoms[i], t.atoms[j]
	for _, nbr := range a.bonds {
		if nbr == b {
			return fmt.Errorf("%w: %d-%d", ErrDuplicateBond, i, j)
		}
	}
	a.bonds = append(a.bonds, b)
	b.bonds = append(b.bonds, a)
	t.bonds = append(t.bonds, Bond{A: a, B: b})

	return nil
}

// Atom returns the atom at index i.
func (t *Topology) Atom(i int) (*Atom, error) {
	if i < 0 || i >= len(t.atoms) {
		return nil, fmt.Errorf("%w: %d", ErrAtomNotFound, i)
	}

	return t.atoms[i], nil
}

// Atoms returns all atoms in insertion order. The slice is a copy.
func (t *Topology) Atoms() []*Atom {
	out := make([]*Atom, len(t.atoms))
	copy(out, t.atoms)

	return out
}

// Bonds returns all bonds in insertion order. The slice is a copy.
func (t *Topology) Bonds() []Bond {
	out := make([]Bond, len(t.bonds))
	copy(out, t.bonds)

	return out
}

// Len returns the number of atoms.
func (t *Topology) Len() int {
	return len(t.atoms)
}

// Prepared reports whether Prepare has run.
func (t *Topology) Prepared() bool {
	return t.prepared
}
