// Package server exposes the parsing and evaluation core over a small
// JSON API, consumed by the study UI's "parse free text into form
// fields" flow.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lox/handcoach/handtext"
	"github.com/lox/handcoach/poker"
	"github.com/lox/handcoach/spr"
)

// Server handles the /v1 parse, evaluate and spr endpoints.
type Server struct {
	logger     *log.Logger
	normalizer *handtext.Normalizer
	calculator *spr.Calculator
	router     chi.Router
}

// New creates a server. A nil normalizer falls back to the built-in
// rule table.
func New(logger *log.Logger, normalizer *handtext.Normalizer) *Server {
	if normalizer == nil {
		normalizer = handtext.NewNormalizer()
	}
	s := &Server{
		logger:     logger.WithPrefix("api"),
		normalizer: normalizer,
		calculator: spr.New(logger, nil),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/parse", s.handleParse)
		r.Post("/evaluate", s.handleEvaluate)
		r.Post("/spr", s.handleSPR)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start))
	})
}

type parseRequest struct {
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	analysis := handtext.AnalyzeWith(s.normalizer, req.Text)
	analysis.Fields.Tags = handtext.NormalizeTags(req.Tags)
	writeJSON(w, analysis)
}

type evaluateRequest struct {
	Cards string `json:"cards"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, poker.Evaluate(poker.ParseMany(req.Cards)))
}

type sprRequest struct {
	PotSizes spr.PotSizes `json:"pot_sizes"`
	Stacks   spr.Stacks   `json:"stacks"`
}

func (s *Server) handleSPR(w http.ResponseWriter, r *http.Request) {
	var req sprRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, s.calculator.Calculate(req.PotSizes, req.Stacks))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
