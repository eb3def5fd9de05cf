// Package smarts: recursive-descent parser.
//
// The parser walks the byte cursor directly; the dialect has no whitespace
// and every token is recognizable from its first byte plus one lookahead.
package smarts

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates malformed pattern text. Returned errors wrap it with
// the byte offset and the offending fragment.
var ErrSyntax = errors.New("smarts: syntax error")

// Parse parses one pattern into its syntax tree. The returned root has
// KindPattern; its children are the top-level atoms and branches in source
// order.
func Parse(src string) (*Node, error) {
	p := &parser{src: src}
	root := &Node{Kind: KindPattern}
	if err := p.chain(root); err != nil {
		return nil, err
	}
	// 1) A stray ')' (or any other leftover byte) stops chain without
	//    consuming it; surface it here.
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.src[p.pos])
	}
	// 2) The empty pattern has no typed atom and is malformed.
	if len(root.Children) == 0 {
		return nil, p.errorf("empty pattern")
	}

	return root, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

// peek returns the current byte, or 0 at EOF.
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}

	return p.src[p.pos]
}

// peekAt returns the byte at offset n from the cursor, or 0 past EOF.
func (p *parser) peekAt(n int) byte {
	if p.pos+n >= len(p.src) {
		return 0
	}

	return p.src[p.pos+n]
}

// accept consumes the current byte when it equals c.
func (p *parser) accept(c byte) bool {
	if p.peek() != c {
		return false
	}
	p.pos++

	return true
}

// errorf wraps ErrSyntax with the cursor offset.
func (p *parser) errorf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)

	return fmt.Errorf("%w: %s at offset %d in %q", ErrSyntax, msg, p.pos, p.src)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isWord(c byte) bool {
	return isDigit(c) || isUpper(c) || isLower(c) || c == '_'
}

// atomStart reports whether c can begin an atom.
func atomStart(c byte) bool {
	return c == '[' || c == '*' || c == '_' || isUpper(c)
}

// chain parses a run of atoms and branches into parent. It stops at ')'
// or EOF without consuming the ')'.
//
// Once a branch has been seen at this level, a following atom starts the
// trailing sub-chain: it is wrapped in a synthetic branch node so that the
// graph builder bonds it back to the branching atom the same way it bonds
// parenthesized branches.
func (p *parser) chain(parent *Node) error {
	sawBranch := false
	for !p.eof() {
		switch c := p.peek(); {
		case c == '(':
			p.pos++
			br := &Node{Kind: KindBranch}
			parent.append(br)
			if err := p.chain(br); err != nil {
				return err
			}
			if !p.accept(')') {
				return p.errorf("unclosed branch")
			}
			if len(br.Children) == 0 {
				return p.errorf("empty branch")
			}
			sawBranch = true
		case c == ')':
			return nil
		case atomStart(c):
			if sawBranch {
				wrap := &Node{Kind: KindBranch}
				parent.append(wrap)

				return p.chain(wrap)
			}
			if err := p.atom(parent); err != nil {
				return err
			}
		default:
			return p.errorf("unexpected %q", c)
		}
	}

	return nil
}

// atom parses one atom (bracketed or bare) plus its ring-closure labels.
func (p *parser) atom(parent *Node) error {
	atom := &Node{Kind: KindAtom}
	parent.append(atom)

	if p.accept('[') {
		expr, err := p.weakAnd()
		if err != nil {
			return err
		}
		atom.append(expr)
		if !p.accept(']') {
			return p.errorf("unclosed bracket atom")
		}
	} else {
		sym, err := p.symbol()
		if err != nil {
			return err
		}
		atom.append(&Node{Kind: KindAtomSymbol, Text: sym})
	}

	// Ring-closure labels: digit runs, optionally %-prefixed. Consecutive
	// digits form one label node whose text is split digit-by-digit later.
	for {
		if isDigit(p.peek()) {
			atom.append(&Node{Kind: KindAtomLabel, Text: p.digits()})
		} else if p.peek() == '%' && isDigit(p.peekAt(1)) {
			p.pos++
			atom.append(&Node{Kind: KindAtomLabel, Text: p.digits()})
		} else {
			return nil
		}
	}
}

// weakAnd parses expr = or (";" or)*, left-nested.
func (p *parser) weakAnd() (*Node, error) {
	left, err := p.or()
	if err != nil {
		return nil, err
	}
	for p.accept(';') {
		right, err := p.or()
		if err != nil {
			return nil, err
		}
		left = binary(KindWeakAnd, left, right)
	}

	return left, nil
}

// or parses or = and ("," and)*, left-nested.
func (p *parser) or() (*Node, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.accept(',') {
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = binary(KindOr, left, right)
	}

	return left, nil
}

// and parses and = unary ("&" unary)*, left-nested.
func (p *parser) and() (*Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.accept('&') {
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binary(KindAnd, left, right)
	}

	return left, nil
}

// unary parses "!"-negation; "!" binds tighter than every conjunction.
func (p *parser) unary() (*Node, error) {
	if p.accept('!') {
		child, err := p.unary()
		if err != nil {
			return nil, err
		}
		n := &Node{Kind: KindNot}
		n.append(child)

		return n, nil
	}

	return p.primary()
}

// primary parses one bracketed constraint and wraps it in atom_id.
//
// "D" and "R" are both predicate sigils and element-symbol starts (Ds, Rb);
// a digit after them selects the predicate reading. Unlike Daylight
// SMARTS, "R" constrains ring size and "r" ring count in this dialect.
func (p *parser) primary() (*Node, error) {
	switch c := p.peek(); {
	case c == '#':
		p.pos++
		if !isDigit(p.peek()) {
			return nil, p.errorf("expected digits after '#'")
		}

		return wrapID(KindAtomicNum, p.digits()), nil

	case c == 'D' && isDigit(p.peekAt(1)):
		p.pos++

		return wrapID(KindNeighborCount, p.digits()), nil

	case c == 'R' && isDigit(p.peekAt(1)):
		p.pos++

		return wrapID(KindRingSize, p.digits()), nil

	case c == 'r':
		p.pos++
		if !isDigit(p.peek()) {
			return nil, p.errorf("expected digits after 'r'")
		}

		return wrapID(KindRingCount, p.digits()), nil

	case c == '%':
		p.pos++
		name := p.word()
		if name == "" {
			return nil, p.errorf("expected label name after '%%'")
		}

		// Text keeps the sigil; evaluation strips it.
		return wrapID(KindHasLabel, "%"+name), nil

	case c == '$':
		p.pos++
		body, err := p.parenBody()
		if err != nil {
			return nil, err
		}

		return wrapID(KindMatchesString, body), nil

	case c == '*' || c == '_' || isUpper(c):
		sym, err := p.symbol()
		if err != nil {
			return nil, err
		}

		return wrapID(KindAtomSymbol, sym), nil

	default:
		return nil, p.errorf("expected constraint, found %q", c)
	}
}

// symbol lexes "*", an element symbol (capital plus trailing lowercase), or
// an "_"-prefixed custom name.
func (p *parser) symbol() (string, error) {
	switch c := p.peek(); {
	case c == '*':
		p.pos++

		return "*", nil
	case c == '_':
		start := p.pos
		p.pos++
		for isWord(p.peek()) {
			p.pos++
		}
		if p.pos-start < 2 {
			return "", p.errorf("expected name after '_'")
		}

		return p.src[start:p.pos], nil
	case isUpper(c):
		start := p.pos
		p.pos++
		for isLower(p.peek()) {
			p.pos++
		}

		return p.src[start:p.pos], nil
	default:
		return "", p.errorf("expected element symbol, found %q", c)
	}
}

// digits lexes one or more decimal digits. The caller checks the first.
func (p *parser) digits() string {
	start := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}

	return p.src[start:p.pos]
}

// word lexes zero or more word bytes.
func (p *parser) word() string {
	start := p.pos
	for isWord(p.peek()) {
		p.pos++
	}

	return p.src[start:p.pos]
}

// parenBody consumes "(", then raw text up to the balancing ")". The body
// is kept opaque: "$(...)" is not evaluated, only carried.
func (p *parser) parenBody() (string, error) {
	if !p.accept('(') {
		return "", p.errorf("expected '(' after '$'")
	}
	start := p.pos
	depth := 1
	for !p.eof() {
		switch p.src[p.pos] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				body := p.src[start:p.pos]
				p.pos++

				return body, nil
			}
		}
		p.pos++
	}

	return "", p.errorf("unbalanced '$(' group")
}

// binary builds a two-child operator node.
func binary(k Kind, left, right *Node) *Node {
	n := &Node{Kind: k}
	n.append(left)
	n.append(right)

	return n
}

// wrapID builds atom_id around a fresh leaf.
func wrapID(k Kind, text string) *Node {
	id := &Node{Kind: KindAtomID}
	id.append(&Node{Kind: k, Text: text})

	return id
}
