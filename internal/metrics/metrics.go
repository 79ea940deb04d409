// Package metrics records alignment runs in a Prometheus registry.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvmsa/msa"
)

const namespace = "lvmsa"

// Outcome label values.
const (
	OutcomeOK         = "ok"
	OutcomeInvalid    = "invalid_input"
	OutcomeDegenerate = "degenerate_input"
	OutcomeTooLarge   = "lattice_too_large"
	OutcomeError      = "error"
)

// Recorder owns a private registry, so several recorders never collide.
type Recorder struct {
	reg        *prometheus.Registry
	alignments *prometheus.CounterVec
	cells      prometheus.Counter
	columns    prometheus.Histogram
	duration   prometheus.Histogram
}

// NewRecorder registers the alignment metrics on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		alignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alignments_total",
			Help:      "Alignment runs by outcome.",
		}, []string{"outcome"}),
		cells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lattice_cells_total",
			Help:      "Lattice cells filled across successful runs.",
		}),
		columns: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "alignment_columns",
			Help:      "Length of produced alignments.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "alignment_duration_seconds",
			Help:      "Wall time of Align calls.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	r.reg.MustRegister(r.alignments, r.cells, r.columns, r.duration)

	return r
}

// Observe records one Align call. aln may be nil when err is not.
func (r *Recorder) Observe(aln *msa.Alignment, err error, elapsed time.Duration) {
	r.alignments.WithLabelValues(Outcome(err)).Inc()
	r.duration.Observe(elapsed.Seconds())
	if err != nil || aln == nil {
		return
	}
	r.cells.Add(float64(aln.Cells))
	r.columns.Observe(float64(aln.Columns))
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer { return r.reg }

// WriteFile writes the metrics in text exposition format, atomically.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

// Outcome classifies an Align error into a label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, msa.ErrInvalidInput):
		return OutcomeInvalid
	case errors.Is(err, msa.ErrDegenerateInput):
		return OutcomeDegenerate
	case errors.Is(err, msa.ErrLatticeTooLarge):
		return OutcomeTooLarge
	default:
		return OutcomeError
	}
}
