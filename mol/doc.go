// Package mol models molecule topologies for substructure matching and
// atom typing.
//
// What:
//
//   - Atom, Bond, Topology: atoms with element identity, coordinates and
//     bonded neighbors; undirected bonds; an insertion-ordered container.
//   - Prepare: one-shot derivation of per-atom ring membership (from the
//     bond graph's cycle basis) plus empty typing whitelists/blacklists.
//     A Topology must be prepared before ring or label predicates can be
//     answered; matching prepares on first use.
//   - LabelSet: insertion-ordered string set carrying the typing state
//     rules accumulate.
//   - ReadSDF: minimal V2000 molfile reader (first molecule block).
//   - AtomicNum, Symbol: periodic-table lookups.
//
// Preparation is explicit and one-way: the prepared flag flips once, and
// the derived ring data is frozen even if atoms or bonds are added later.
// Rebuild the Topology to re-derive.
//
// Errors:
//
//   - ErrUnknownElement  symbol not in the periodic table
//   - ErrAtomNotFound    atom index out of range
//   - ErrSelfBond        bond with equal endpoints
//   - ErrDuplicateBond   bond already present
//   - ErrBadSDF          malformed molfile input
package mol
