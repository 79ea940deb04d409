// Package server exposes the aligner over HTTP.
//
//	POST /align    {"sequences":[{"id":"a","seq":"SEQ"},...],"end_gaps":"free"}
//	GET  /healthz
//	GET  /metrics  Prometheus exposition
//
// Every response carries an X-Request-Id header; a client-supplied one is
// echoed back.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvmsa/internal/config"
	"github.com/katalvlaran/lvmsa/internal/metrics"
	"github.com/katalvlaran/lvmsa/internal/output"
	"github.com/katalvlaran/lvmsa/msa"
	"github.com/katalvlaran/lvmsa/scoring"
)

// MaxBodyBytes caps the /align request body.
const MaxBodyBytes = 1 << 20

// RequestIDHeader names the request correlation header.
const RequestIDHeader = "X-Request-Id"

// SequenceInput is one input record of an AlignRequest.
type SequenceInput struct {
	ID  string `json:"id"`
	Seq string `json:"seq"`
}

// AlignRequest is the /align body. Empty policies fall back to the
// server configuration.
type AlignRequest struct {
	Sequences []SequenceInput `json:"sequences"`
	EndGaps   string          `json:"end_gaps,omitempty"`
	Traceback string          `json:"traceback,omitempty"`
}

// Server serves alignments under one scoring matrix.
type Server struct {
	matrix  *scoring.Matrix
	cfg     config.Config
	metrics *metrics.Recorder
	log     *slog.Logger
}

// New creates a Server. cfg supplies the default policies and the cell
// limit; rec receives one observation per /align call.
func New(m *scoring.Matrix, cfg config.Config, rec *metrics.Recorder, log *slog.Logger) *Server {
	return &Server{matrix: m, cfg: cfg, metrics: rec, log: log}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
	r.Post("/align", s.align)

	return r
}

type ctxKey struct{}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func (s *Server) logger(r *http.Request) *slog.Logger {
	id, _ := r.Context().Value(ctxKey{}).(string)

	return s.log.With(slog.String("request_id", id))
}

func (s *Server) align(w http.ResponseWriter, r *http.Request) {
	log := s.logger(r)

	var req AlignRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		log.Warn("align: invalid request body", slog.Any("error", err))
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	cfg := s.cfg
	if req.EndGaps != "" {
		cfg.EndGaps = req.EndGaps
	}
	if req.Traceback != "" {
		cfg.Traceback = req.Traceback
	}
	if err := cfg.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ids := make([]string, len(req.Sequences))
	seqs := make([]msa.Sequence, len(req.Sequences))
	for i, in := range req.Sequences {
		ids[i] = in.ID
		if ids[i] == "" {
			ids[i] = fmt.Sprintf("seq%d", i+1)
		}
		seqs[i] = msa.Text(strings.ToUpper(in.Seq))
	}

	eng, err := msa.NewEngine(s.matrix, append(cfg.EngineOptions(), msa.WithLogger(log))...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	start := time.Now()
	aln, err := eng.Align(seqs...)
	s.metrics.Observe(aln, err, time.Since(start))
	if err != nil {
		log.Info("align rejected", slog.Any("error", err))
		writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := output.Write(w, output.JSON, ids, aln); err != nil {
		log.Error("align: response encode failed", slog.Any("error", err))
	}
}

// statusFor maps engine errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, msa.ErrLatticeTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, msa.ErrInvalidInput), errors.Is(err, msa.ErrDegenerateInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
