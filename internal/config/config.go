// Package config loads the lvmsa run configuration from YAML.
//
// Example file:
//
//	matrix: blosum62        # or a path to a header-row matrix file
//	gap_symbol: "*"
//	gap_marker: "-"
//	end_gaps: scored        # scored | free
//	traceback: predecessor  # predecessor | consistent
//	max_cells: 33554432
//	max_work: 68719476736   # cells × moves × pairs
//	format: text            # text | fasta | json
//	log_level: info
//	metrics_out: ""
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmsa/internal/logging"
	"github.com/katalvlaran/lvmsa/msa"
	"github.com/katalvlaran/lvmsa/scoring"
)

// BuiltinBLOSUM62 names the embedded matrix.
const BuiltinBLOSUM62 = "blosum62"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the effective run configuration.
type Config struct {
	Matrix     string `yaml:"matrix"`
	GapSymbol  string `yaml:"gap_symbol"`
	GapMarker  string `yaml:"gap_marker"`
	EndGaps    string `yaml:"end_gaps"`
	Traceback  string `yaml:"traceback"`
	MaxCells   int    `yaml:"max_cells"`
	MaxWork    int    `yaml:"max_work"`
	Format     string `yaml:"format"`
	LogLevel   string `yaml:"log_level"`
	MetricsOut string `yaml:"metrics_out"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Matrix:    BuiltinBLOSUM62,
		GapSymbol: string(scoring.DefaultGapSymbol),
		GapMarker: string(msa.DefaultGapMarker),
		EndGaps:   msa.EndGapsScored.String(),
		Traceback: msa.TracebackPredecessor.String(),
		MaxCells:  msa.DefaultMaxCells,
		MaxWork:   msa.DefaultMaxWork,
		Format:    "text",
		LogLevel:  "info",
	}
}

// Parse decodes YAML over the defaults. Unknown keys are rejected; an
// empty document yields the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Validate checks every field that the library constructors would
// otherwise reject with a panic or a less specific error.
func (c Config) Validate() error {
	if c.Matrix == "" {
		return fmt.Errorf("%w: matrix is empty", ErrInvalid)
	}
	if !printable(c.GapSymbol) {
		return fmt.Errorf("%w: gap_symbol %q must be one printable character", ErrInvalid, c.GapSymbol)
	}
	if !printable(c.GapMarker) {
		return fmt.Errorf("%w: gap_marker %q must be one printable character", ErrInvalid, c.GapMarker)
	}
	if _, err := msa.ParseEndGapPolicy(c.EndGaps); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := msa.ParseTracebackPolicy(c.Traceback); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.GapMarker == c.GapSymbol {
		return fmt.Errorf("%w: gap_marker %q equals gap_symbol", ErrInvalid, c.GapMarker)
	}
	if c.MaxCells <= 0 {
		return fmt.Errorf("%w: max_cells must be > 0", ErrInvalid)
	}
	if c.MaxWork <= 0 {
		return fmt.Errorf("%w: max_work must be > 0", ErrInvalid)
	}
	switch c.Format {
	case "text", "fasta", "json":
	default:
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// LoadMatrix returns the embedded BLOSUM62 or parses the configured file.
// The configuration must be valid. A malformed matrix file is reported as
// ErrInvalid; a file that cannot be read is not.
func (c Config) LoadMatrix() (*scoring.Matrix, error) {
	opt := scoring.WithGapSymbol(c.GapSymbol[0])
	if c.Matrix == BuiltinBLOSUM62 {
		if c.GapSymbol[0] != scoring.DefaultGapSymbol {
			return nil, fmt.Errorf("%w: blosum62 uses gap symbol %q", ErrInvalid, scoring.DefaultGapSymbol)
		}
		return scoring.BLOSUM62()
	}

	m, err := scoring.Load(c.Matrix, opt)
	if err != nil && malformed(err) {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return m, err
}

// malformed reports whether err is a scoring validation failure.
func malformed(err error) bool {
	for _, target := range []error{
		scoring.ErrEmptyAlphabet,
		scoring.ErrDuplicateSymbol,
		scoring.ErrBadSymbol,
		scoring.ErrNonSquare,
		scoring.ErrMissingRow,
		scoring.ErrUnknownSymbol,
		scoring.ErrMissingGap,
		scoring.ErrAsymmetry,
		scoring.ErrBadValue,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// EngineOptions translates the configuration into msa options.
// The configuration must be valid.
func (c Config) EngineOptions() []msa.Option {
	endGaps, _ := msa.ParseEndGapPolicy(c.EndGaps)
	traceback, _ := msa.ParseTracebackPolicy(c.Traceback)

	return []msa.Option{
		msa.WithEndGaps(endGaps),
		msa.WithTraceback(traceback),
		msa.WithGapMarker(c.GapMarker[0]),
		msa.WithMaxCells(c.MaxCells),
		msa.WithMaxWork(c.MaxWork),
	}
}

func printable(s string) bool {
	return len(s) == 1 && s[0] > ' ' && s[0] <= '~'
}
