package fasta_test

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvmsa/fasta"
	"github.com/katalvlaran/lvmsa/msa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `>sp|P1| first protein
seq
 qa
; a comment
>second
MKT AYI
AK

>empty
`

func TestRead(t *testing.T) {
	recs, err := fasta.Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "sp|P1|", recs[0].ID)
	assert.Equal(t, "first protein", recs[0].Description)
	assert.Equal(t, "SEQQA", string(recs[0].Seq))

	assert.Equal(t, "second", recs[1].ID)
	assert.Empty(t, recs[1].Description)
	assert.Equal(t, "MKTAYIAK", string(recs[1].Seq))

	assert.Equal(t, "empty", recs[2].ID)
	assert.Equal(t, 0, recs[2].Len())
}

func TestRead_CRLFAndNoTrailingNewline(t *testing.T) {
	recs, err := fasta.Read(strings.NewReader(">a\r\nAC\r\nGT"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "ACGT", string(recs[0].Seq))
}

func TestRead_HeaderWhitespace(t *testing.T) {
	recs, err := fasta.Read(strings.NewReader(">id1\tdesc with\ttabs\nAC\n>id2 \t spaced  \nGT\n>id3\t\nA\n"))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "id1", recs[0].ID)
	assert.Equal(t, "desc with\ttabs", recs[0].Description)
	assert.Equal(t, "id2", recs[1].ID)
	assert.Equal(t, "spaced", recs[1].Description)
	assert.Equal(t, "id3", recs[2].ID)
	assert.Empty(t, recs[2].Description)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"empty", "", fasta.ErrNoRecords},
		{"blank lines only", "\n\n", fasta.ErrNoRecords},
		{"data before header", "ACGT\n>a\nAC\n", fasta.ErrNoHeader},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := fasta.Read(strings.NewReader(tc.in))
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestRecord_Sequence ensures records feed the engine directly.
func TestRecord_Sequence(t *testing.T) {
	var s msa.Sequence = fasta.Record{ID: "x", Seq: []byte("SEQ")}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, byte('Q'), s.At(2))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "in.fa")
	require.NoError(t, os.WriteFile(plain, []byte(sample), 0o600))
	recs, err := fasta.ReadFile(plain)
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	gzPath := filepath.Join(dir, "in.fa.gz")
	f, err := os.Create(gzPath)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	recs, err = fasta.ReadFile(gzPath)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "MKTAYIAK", string(recs[1].Seq))

	_, err = fasta.ReadFile(filepath.Join(dir, "missing.fa"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.fa")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = fasta.ReadFile(empty)
	assert.ErrorIs(t, err, fasta.ErrNoRecords)
}
