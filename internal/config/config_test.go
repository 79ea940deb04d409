package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvmsa/internal/config"
	"github.com/katalvlaran/lvmsa/msa"
	"github.com/katalvlaran/lvmsa/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "blosum62", cfg.Matrix)
	assert.Equal(t, msa.DefaultMaxCells, cfg.MaxCells)
}

func TestParse_Overrides(t *testing.T) {
	in := `
end_gaps: free
traceback: consistent
gap_marker: "."
max_cells: 1000
format: json
`
	cfg, err := config.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "free", cfg.EndGaps)
	assert.Equal(t, "consistent", cfg.Traceback)
	assert.Equal(t, ".", cfg.GapMarker)
	assert.Equal(t, 1000, cfg.MaxCells)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "blosum62", cfg.Matrix, "unset keys keep defaults")
	assert.Len(t, cfg.EngineOptions(), 5)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown key", "colour: red\n"},
		{"bad end gaps", "end_gaps: affine\n"},
		{"bad traceback", "traceback: greedy\n"},
		{"bad marker", "gap_marker: \"--\"\n"},
		{"space symbol", "gap_symbol: \" \"\n"},
		{"zero cells", "max_cells: 0\n"},
		{"zero work", "max_work: 0\n"},
		{"marker is gap symbol", "gap_marker: \"*\"\n"},
		{"bad format", "format: xml\n"},
		{"bad level", "log_level: loud\n"},
		{"empty matrix", "matrix: \"\"\n"},
		{"not yaml", "matrix: [\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(tc.in))
			require.Error(t, err)
		})
	}

	_, err := config.Parse(strings.NewReader("format: xml\n"))
	assert.True(t, errors.Is(err, config.ErrInvalid))
}

func TestLoad_AndLoadMatrix(t *testing.T) {
	dir := t.TempDir()
	matrixPath := filepath.Join(dir, "dna.txt")
	require.NoError(t, os.WriteFile(matrixPath, []byte("  A C -\nA 1 -1 -2\nC -1 1 -2\n- -2 -2 0\n"), 0o600))

	cfgPath := filepath.Join(dir, "lvmsa.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("matrix: "+matrixPath+"\ngap_symbol: \"-\"\ngap_marker: \".\"\n"), 0o600))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	m, err := cfg.LoadMatrix()
	require.NoError(t, err)
	assert.Equal(t, "AC-", m.Alphabet())

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	def := config.Default()
	m, err = def.LoadMatrix()
	require.NoError(t, err)
	assert.Equal(t, 24, m.Len())

	def.GapSymbol = "-"
	_, err = def.LoadMatrix()
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoadMatrix_Malformed(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	cfg.Matrix = filepath.Join(dir, "missing-row.txt")
	require.NoError(t, os.WriteFile(cfg.Matrix, []byte("  A C *\nA 1 -1 -2\n* -2 -2 0\n"), 0o600))
	_, err := cfg.LoadMatrix()
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, scoring.ErrMissingRow)

	cfg.Matrix = filepath.Join(dir, "bad-value.txt")
	require.NoError(t, os.WriteFile(cfg.Matrix, []byte("  A *\nA x -2\n* -2 0\n"), 0o600))
	_, err = cfg.LoadMatrix()
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, scoring.ErrBadValue)

	cfg.Matrix = filepath.Join(dir, "absent.txt")
	_, err = cfg.LoadMatrix()
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid, "unreadable file is not a malformed matrix")
}
