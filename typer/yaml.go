// Package typer: YAML rule documents.
package typer

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleDoc is the YAML document shape:
//
//	rules:
//	  - name: opls_135
//	    smarts: "[C;D4](C)(H)(H)H"
//	    overrides: [opls_136]
//	    desc: alkane CH3
type ruleDoc struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Name      string   `yaml:"name"`
	Smarts    string   `yaml:"smarts"`
	Overrides []string `yaml:"overrides"`
	Desc      string   `yaml:"desc"`
}

// LoadRules decodes a YAML rule document into a Ruleset, compiling every
// pattern. Unknown fields, missing names or patterns, duplicate names and
// pattern compile failures are all load errors; rule order in the document
// becomes application order.
func LoadRules(r io.Reader) (*Ruleset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc ruleDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRuleFile, err)
	}
	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("%w: no rules", ErrBadRuleFile)
	}

	rs := NewRuleset()
	for i, e := range doc.Rules {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: rule %d has no name", ErrBadRuleFile, i)
		}
		if e.Smarts == "" {
			return nil, fmt.Errorf("%w: rule %d (%s) has no smarts", ErrBadRuleFile, i, e.Name)
		}
		rule := Rule{Name: e.Name, Smarts: e.Smarts, Overrides: e.Overrides, Desc: e.Desc}
		if err := rs.Add(rule); err != nil {
			return nil, err
		}
	}

	return rs, nil
}

// LoadRulesFile reads and decodes the YAML rule document at path.
func LoadRulesFile(path string) (*Ruleset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("typer: open rules: %w", err)
	}
	defer f.Close()

	return LoadRules(f)
}
