// Package typer assigns force-field atom types by running an ordered set
// of pattern rules over a molecular topology.
//
// What:
//
//	A Rule pairs a type name with a substructure pattern and a list of
//	weaker rules it overrides. AssignTypes applies every rule of a
//	Ruleset to a topology: each atom a rule's pattern anchors gets the
//	rule's name added to its whitelist and the rule's overrides added to
//	its blacklist. An atom's final type is the single whitelist entry
//	that no blacklist entry cancels.
//
// Why:
//
//	Rule order matters. A rule whose pattern reads earlier grants via
//	%name predicates must run after the rules it depends on, and grants
//	are published to an atom immediately, not at the end of the pass.
//	AssignTypes keeps that contract in its sequential mode and, with
//	WithWorkers, fans only label-free rules out to a worker pool; rules
//	with %name predicates always run afterwards, in definition order.
//	Whitelist and blacklist writes are serialized, and the final sets
//	match the sequential outcome.
//
// Rules load from YAML documents (LoadRules, LoadRulesFile) or build up
// in code (Ruleset.Add).
//
// Errors:
//
//	ErrTopologyNil, ErrRulesetNil - invalid inputs.
//	ErrDuplicateRule             - a rule name registered twice.
//	ErrBadRuleFile               - malformed YAML rule document.
//	ErrUntypedAtom               - an atom no surviving rule covers.
//	ErrAmbiguousType             - an atom with several surviving types.
//	ErrOptionViolation           - an invalid functional option.
package typer
