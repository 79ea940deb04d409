// Package output renders alignments as text, FASTA or JSON.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/lvmsa/msa"
)

// Format selects a writer.
type Format string

const (
	Text  Format = "text"
	FASTA Format = "fasta"
	JSON  Format = "json"
)

// FASTALineWidth wraps FASTA sequence lines.
const FASTALineWidth = 60

var (
	// ErrUnknownFormat is returned by ParseFormat and Write.
	ErrUnknownFormat = errors.New("output: unknown format")

	// ErrIDCount indicates len(ids) != len(rows).
	ErrIDCount = errors.New("output: id count does not match rows")
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, FASTA, JSON:
		return f, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Write renders aln in format f. ids label the rows; nil ids become
// seq1…seqN.
func Write(w io.Writer, f Format, ids []string, aln *msa.Alignment) error {
	if ids == nil {
		ids = make([]string, len(aln.Rows))
		for i := range ids {
			ids[i] = "seq" + strconv.Itoa(i+1)
		}
	}
	if len(ids) != len(aln.Rows) {
		return fmt.Errorf("%d ids for %d rows: %w", len(ids), len(aln.Rows), ErrIDCount)
	}

	switch f {
	case Text:
		return writeText(w, ids, aln)
	case FASTA:
		return writeFASTA(w, ids, aln)
	case JSON:
		return writeJSON(w, ids, aln)
	}

	return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
}

// writeText prints a score line, then one padded id and row per sequence.
// When w is a termenv.Output with a color profile, fully conserved columns
// are rendered bold.
func writeText(w io.Writer, ids []string, aln *msa.Alignment) error {
	width := 0
	for _, id := range ids {
		width = max(width, len(id))
	}
	if _, err := fmt.Fprintf(w, "score: %d\n", aln.Score); err != nil {
		return err
	}
	style := func(row string) string { return row }
	if out, ok := w.(*termenv.Output); ok && out.Profile != termenv.Ascii {
		marks := Conserved(aln.Rows)
		style = func(row string) string { return highlight(out, row, marks) }
	}
	for i, row := range aln.Rows {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, ids[i], style(row)); err != nil {
			return err
		}
	}

	return nil
}

// Conserved reports, per column, whether every row carries the same byte.
// Every column holds at least one residue, so such a column is never all gaps.
func Conserved(rows []string) []bool {
	if len(rows) == 0 {
		return nil
	}
	marks := make([]bool, len(rows[0]))
	for c := range marks {
		marks[c] = true
		for _, row := range rows[1:] {
			if c >= len(row) || row[c] != rows[0][c] {
				marks[c] = false
				break
			}
		}
	}

	return marks
}

// highlight bolds each run of conserved columns.
func highlight(out *termenv.Output, row string, marks []bool) string {
	var sb strings.Builder
	for start := 0; start < len(row); {
		end := start + 1
		for end < len(row) && marks[end] == marks[start] {
			end++
		}
		if marks[start] {
			sb.WriteString(out.String(row[start:end]).Bold().String())
		} else {
			sb.WriteString(row[start:end])
		}
		start = end
	}

	return sb.String()
}

func writeFASTA(w io.Writer, ids []string, aln *msa.Alignment) error {
	for i, row := range aln.Rows {
		if _, err := fmt.Fprintf(w, ">%s\n", ids[i]); err != nil {
			return err
		}
		for start := 0; start < len(row); start += FASTALineWidth {
			end := min(start+FASTALineWidth, len(row))
			if _, err := fmt.Fprintln(w, row[start:end]); err != nil {
				return err
			}
		}
	}

	return nil
}

type jsonRow struct {
	ID      string `json:"id"`
	Aligned string `json:"aligned"`
}

type jsonAlignment struct {
	Score   int       `json:"score"`
	Columns int       `json:"columns"`
	Cells   int       `json:"cells,omitempty"`
	Rows    []jsonRow `json:"rows"`
}

func writeJSON(w io.Writer, ids []string, aln *msa.Alignment) error {
	doc := jsonAlignment{
		Score:   aln.Score,
		Columns: aln.Columns,
		Cells:   aln.Cells,
		Rows:    make([]jsonRow, len(aln.Rows)),
	}
	for i, row := range aln.Rows {
		doc.Rows[i] = jsonRow{ID: ids[i], Aligned: row}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
