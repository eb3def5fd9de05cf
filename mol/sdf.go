// Package mol: V2000 molfile reading.
package mol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadSDF indicates malformed molfile input.
var ErrBadSDF = errors.New("mol: malformed SDF input")

// V2000 fixed-column layout.
const (
	sdfHeaderLines = 3
	sdfCountsWidth = 6  // atom count [0:3], bond count [3:6]
	sdfAtomWidth   = 34 // x [0:10], y [10:20], symbol [31:34]
	sdfBondWidth   = 6  // from [0:3], to [3:6], 1-based
)

// ReadSDF reads the first molecule block of a V2000 SDF or molfile stream
// into a Topology. Trailing blocks, properties, and bond orders are ignored.
func ReadSDF(r io.Reader) (*Topology, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	nextLine := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++

		return sc.Text(), true
	}

	// 1) Three header lines: title, program stamp, comment.
	for i := 0; i < sdfHeaderLines; i++ {
		if _, ok := nextLine(); !ok {
			return nil, fmt.Errorf("%w: truncated header", ErrBadSDF)
		}
	}

	// 2) Counts line.
	counts, ok := nextLine()
	if !ok {
		return nil, fmt.Errorf("%w: missing counts line", ErrBadSDF)
	}
	if len(counts) < sdfCountsWidth {
		return nil, fmt.Errorf("%w: short counts line %d", ErrBadSDF, lineNo)
	}
	nAtoms, err := strconv.Atoi(strings.TrimSpace(counts[0:3]))
	if err != nil {
		return nil, fmt.Errorf("%w: atom count on line %d: %v", ErrBadSDF, lineNo, err)
	}
	nBonds, err := strconv.Atoi(strings.TrimSpace(counts[3:6]))
	if err != nil {
		return nil, fmt.Errorf("%w: bond count on line %d: %v", ErrBadSDF, lineNo, err)
	}

	t := NewTopology()

	// 3) Atom block.
	for i := 0; i < nAtoms; i++ {
		line, ok := nextLine()
		if !ok {
			return nil, fmt.Errorf("%w: truncated atom block", ErrBadSDF)
		}
		if len(line) < sdfAtomWidth {
			return nil, fmt.Errorf("%w: short atom line %d", ErrBadSDF, lineNo)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(line[0:10]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: x on line %d: %v", ErrBadSDF, lineNo, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(line[10:20]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: y on line %d: %v", ErrBadSDF, lineNo, err)
		}
		a := t.AddAtom(strings.TrimSpace(line[31:34]))
		a.X, a.Y = x, y
	}

	// 4) Bond block, 1-based atom references.
	for i := 0; i < nBonds; i++ {
		line, ok := nextLine()
		if !ok {
			return nil, fmt.Errorf("%w: truncated bond block", ErrBadSDF)
		}
		if len(line) < sdfBondWidth {
			return nil, fmt.Errorf("%w: short bond line %d", ErrBadSDF, lineNo)
		}
		from, err := strconv.Atoi(strings.TrimSpace(line[0:3]))
		if err != nil {
			return nil, fmt.Errorf("%w: bond origin on line %d: %v", ErrBadSDF, lineNo, err)
		}
		to, err := strconv.Atoi(strings.TrimSpace(line[3:6]))
		if err != nil {
			return nil, fmt.Errorf("%w: bond target on line %d: %v", ErrBadSDF, lineNo, err)
		}
		if err := t.AddBond(from-1, to-1); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadSDF, lineNo, err)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSDF, err)
	}

	return t, nil
}
