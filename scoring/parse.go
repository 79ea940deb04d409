// SPDX-License-Identifier: MIT

package scoring

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a matrix in header-row text format:
//
//	# comment lines and blank lines are ignored
//	   A  R  *
//	A  4 -1 -4
//	R -1  5 -4
//	* -4 -4  1
//
// The first data line names the alphabet; each further line is a symbol
// followed by one score per header column, in header order. Rows may come
// in any order, but each symbol needs exactly one.
//
// Errors carry the 1-based line number and wrap a package sentinel.
func Parse(r io.Reader, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	var (
		m      *Matrix
		seen   []bool
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		// header
		if m == nil {
			alphabet := make([]byte, 0, len(fields))
			for _, f := range fields {
				if len(f) != 1 {
					return nil, parseErrorf(lineNo, fmt.Errorf("header token %q: %w", f, ErrBadSymbol))
				}
				alphabet = append(alphabet, f[0])
			}
			var err error
			if m, err = newMatrix(alphabet, o.gap); err != nil {
				return nil, parseErrorf(lineNo, err)
			}
			seen = make([]bool, m.n)
			continue
		}

		// score row
		if len(fields[0]) != 1 {
			return nil, parseErrorf(lineNo, fmt.Errorf("row label %q: %w", fields[0], ErrBadSymbol))
		}
		i, ok := m.Index(fields[0][0])
		if !ok {
			return nil, parseErrorf(lineNo, fmt.Errorf("row label %q: %w", fields[0], ErrUnknownSymbol))
		}
		if seen[i] {
			return nil, parseErrorf(lineNo, fmt.Errorf("row %q: %w", fields[0], ErrDuplicateSymbol))
		}
		seen[i] = true
		values := fields[1:]
		if len(values) != m.n {
			return nil, parseErrorf(lineNo, fmt.Errorf("row %q has %d values, want %d: %w",
				fields[0], len(values), m.n, ErrNonSquare))
		}
		for j, v := range values {
			score, err := strconv.Atoi(v)
			if err != nil {
				return nil, parseErrorf(lineNo, fmt.Errorf("cell %q: %w", v, ErrBadValue))
			}
			m.data[i*m.n+j] = score
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scoring: read: %w", err)
	}
	if m == nil {
		return nil, ErrEmptyAlphabet
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("symbol %q: %w", m.alphabet[i], ErrMissingRow)
		}
	}
	if o.checkSymmetry {
		if err := m.validateSymmetric(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Load parses the matrix file at path.
func Load(path string, opts ...Option) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scoring: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func parseErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
