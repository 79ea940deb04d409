package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmsa/internal/config"
	"github.com/katalvlaran/lvmsa/msa"
	"github.com/katalvlaran/lvmsa/scoring"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestAlignDefaultMatrix(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.fa", ">a\nseq\n>b\nSE\nQA\n")

	out, err := run(t, "align", in)
	require.NoError(t, err)
	assert.Equal(t, "score: 10\na  SEQ-\nb  SEQA\n", out)
}

func TestAlignToyMatrixFreeEndGaps(t *testing.T) {
	dir := t.TempDir()
	m, err := scoring.Uniform("ACDEFGHIKLMNPQRSTVWY", 1, -1, -2)
	require.NoError(t, err)
	mat := writeFile(t, dir, "toy.txt", m.String())
	in := writeFile(t, dir, "in.fa", ">a\nSEQ\n>b\nSEQA\n")

	out, err := run(t, "align", "--matrix", mat, "--end-gaps", "free", in)
	require.NoError(t, err)
	assert.Equal(t, "score: 3\na  SEQ-\nb  SEQA\n", out)

	out, err = run(t, "align", "--matrix", mat, in)
	require.NoError(t, err)
	assert.Equal(t, "score: 1\na  SEQ-\nb  SEQA\n", out)
}

func TestAlignMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.fa", ">a\nSEQ\n")
	b := writeFile(t, dir, "b.fa", ">b\nSEQA\n")

	out, err := run(t, "align", "--format", "fasta", a, b)
	require.NoError(t, err)
	assert.Equal(t, ">a\nSEQ-\n>b\nSEQA\n", out)
}

func TestAlignConfigFileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "lvmsa.yaml", "format: json\ngap_marker: \".\"\n")
	in := writeFile(t, dir, "in.fa", ">a\nSEQ\n>b\nSEQA\n")

	out, err := run(t, "align", "--config", cfg, in)
	require.NoError(t, err)
	assert.Contains(t, out, `"score": 10`)
	assert.Contains(t, out, `"aligned": "SEQ."`)

	out, err = run(t, "align", "--config", cfg, "--format", "text", in)
	require.NoError(t, err)
	assert.Equal(t, "score: 10\na  SEQ.\nb  SEQA\n", out)
}

func TestAlignMetricsOut(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.fa", ">a\nSEQ\n>b\nSEQA\n")
	prom := filepath.Join(dir, "lvmsa.prom")

	_, err := run(t, "align", "--metrics-out", prom, in)
	require.NoError(t, err)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lvmsa_alignments_total{outcome="ok"} 1`)
	assert.Contains(t, string(data), "lvmsa_lattice_cells_total 20")
}

func TestAlignErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.fa", ">a\nSEQ\n>b\nSEQA\n")
	bad := writeFile(t, dir, "bad.fa", ">a\nSEQ\n>b\nSEJA\n")
	headerless := writeFile(t, dir, "headerless.fa", "SEQ\n")
	badMatrix := writeFile(t, dir, "bad.txt", "  A C *\nA 1 -1 -2\n* -2 -2 0\n")
	var many strings.Builder
	for i := 0; i < 14; i++ {
		fmt.Fprintf(&many, ">s%d\nAA\n", i)
	}
	manyShort := writeFile(t, dir, "many.fa", many.String())

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no files", []string{"align"}, ExitFailure},
		{"missing file", []string{"align", filepath.Join(dir, "nope.fa")}, ExitFailure},
		{"unknown residue", []string{"align", bad}, ExitInput},
		{"no header", []string{"align", headerless}, ExitInput},
		{"too large", []string{"align", "--max-cells", "4", good}, ExitTooLarge},
		{"too much work", []string{"align", manyShort}, ExitTooLarge},
		{"work flag", []string{"align", "--max-work", "59", good}, ExitTooLarge},
		{"malformed matrix", []string{"align", "--matrix", badMatrix, good}, ExitInput},
		{"marker is gap symbol", []string{"align", "--gap-marker", "*", good}, ExitInput},
		{"bad policy", []string{"align", "--end-gaps", "sometimes", good}, ExitInput},
		{"bad format", []string{"align", "--format", "xml", good}, ExitInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, ExitCode(err))
		})
	}
}

func TestPairwiseCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.fa", ">a\nSEQ\n>b\nSEQA\n>c\nW\n")

	out, err := run(t, "pairwise", in)
	require.NoError(t, err)
	assert.Equal(t, "score: 10\na  SEQ-\nb  SEQA\n", out)

	out, err = run(t, "pairwise", "--gap-marker", ".", in)
	require.NoError(t, err)
	assert.Equal(t, "score: 10\na  SEQ.\nb  SEQA\n", out)

	_, err = run(t, "pairwise", "--gap-marker", "A", in)
	require.Error(t, err)
	assert.Equal(t, ExitInput, ExitCode(err))

	one := writeFile(t, dir, "one.fa", ">a\nSEQ\n")
	_, err = run(t, "pairwise", one)
	require.Error(t, err)
	assert.ErrorIs(t, err, msa.ErrDegenerateInput)
}

func TestMatrixCommand(t *testing.T) {
	out, err := run(t, "matrix")
	require.NoError(t, err)

	m, err := scoring.BLOSUM62()
	require.NoError(t, err)
	assert.Equal(t, m.String(), out)

	parsed, err := scoring.Parse(bytes.NewBufferString(out))
	require.NoError(t, err)
	assert.Equal(t, m.Alphabet(), parsed.Alphabet())
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("lvmsa %s\n", Version), out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitInput, ExitCode(fmt.Errorf("x: %w", config.ErrInvalid)))
	assert.Equal(t, ExitInput, ExitCode(fmt.Errorf("x: %w", msa.ErrInvalidInput)))
	assert.Equal(t, ExitTooLarge, ExitCode(fmt.Errorf("x: %w", msa.ErrLatticeTooLarge)))
}

func TestServeRejectsBadConfig(t *testing.T) {
	_, err := run(t, "serve", "--addr", "127.0.0.1:0", "--log-level", "loud")
	require.Error(t, err)
	assert.Equal(t, ExitInput, ExitCode(err))
}
