// Package fasta reads FASTA records into memory for alignment.
//
// Lines starting with '>' open a record; the first whitespace-separated
// token after '>' is the ID and the rest the description. Sequence lines
// are concatenated, uppercased and stripped of whitespace. Lines starting
// with ';' are comments.
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

var (
	// ErrNoHeader indicates sequence data before the first '>' line.
	ErrNoHeader = errors.New("fasta: sequence data before first header")

	// ErrNoRecords indicates input without any record.
	ErrNoRecords = errors.New("fasta: no records")
)

// Record is one parsed FASTA entry. It implements msa.Sequence.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// Len returns the sequence length.
func (r Record) Len() int { return len(r.Seq) }

// At returns residue i.
func (r Record) At(i int) byte { return r.Seq[i] }

// Read parses all records from r.
func Read(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	var (
		out    []Record
		lineNo int
	)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lineNo++
			line = bytes.TrimRight(line, "\r\n")
			switch {
			case len(line) > 0 && line[0] == '>':
				header := strings.TrimSpace(string(line[1:]))
				id, desc := header, ""
				if i := strings.IndexFunc(header, unicode.IsSpace); i >= 0 {
					id, desc = header[:i], strings.TrimSpace(header[i:])
				}
				out = append(out, Record{ID: id, Description: desc})
			case len(line) > 0 && line[0] == ';':
				// comment
			default:
				seq := bytes.ToUpper(bytes.Join(bytes.Fields(line), nil))
				if len(seq) == 0 {
					break
				}
				if len(out) == 0 {
					return nil, fmt.Errorf("line %d: %w", lineNo, ErrNoHeader)
				}
				cur := &out[len(out)-1]
				cur.Seq = append(cur.Seq, seq...)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fasta: read: %w", err)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoRecords
	}

	return out, nil
}

// ReadFile parses the file at path. "-" reads stdin; a ".gz" suffix is
// decompressed transparently.
func ReadFile(path string) ([]Record, error) {
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// open returns a reader for path, handling stdin and gzip.
func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fasta: open %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("fasta: gzip %s: %w", path, err)
	}

	return gzipFile{Reader: gz, f: f}, nil
}

// gzipFile closes both the gzip stream and the underlying file.
type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	gerr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}

	return gerr
}
