// Package api exposes the transformation pipeline over HTTP.
//
// The server is a thin wrapper around pipeline.Runner: it owns no state and
// performs no I/O beyond the request and response bodies. Endpoints:
//
//	POST /v1/transform   program text in, rewritten program text out
//	POST /v1/extrema     program text in, JSON summary out
//	GET  /healthz        liveness probe
//
// Every response carries an X-Job-ID header identifying the run in the logs.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	cncerrors "github.com/adamValent/CNC-code-utility/pkg/errors"
	"github.com/adamValent/CNC-code-utility/pkg/gcode"
	"github.com/adamValent/CNC-code-utility/pkg/pipeline"
)

// Server handles HTTP requests for the transformation pipeline.
type Server struct {
	runner *pipeline.Runner
	opts   pipeline.Options
	logger *log.Logger
}

// NewServer creates a server running the pipeline with the given options.
// If logger is nil, log.Default() is used.
func NewServer(opts pipeline.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner: pipeline.NewRunner(logger),
		opts:   opts,
		logger: logger,
	}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.jobID)
	r.Use(s.requestLog)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/transform", s.handleTransform)
		r.Post("/extrema", s.handleExtrema)
	})

	return r
}

// extremaResponse is the JSON body returned by /v1/extrema. Values are
// rendered strings so the notation of the input survives; an axis with no
// data carries the "-" marker.
type extremaResponse struct {
	XMin   string `json:"x_min"`
	XMax   string `json:"x_max"`
	YMin   string `json:"y_min"`
	YMax   string `json:"y_max"`
	Report string `json:"report"`
	Coords int    `json:"coords"`
}

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	res, err := s.runner.Transform(r.Context(), r.Body, s.opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(res.Output)
}

func (s *Server) handleExtrema(w http.ResponseWriter, r *http.Request) {
	res, err := s.runner.Extrema(r.Context(), r.Body, s.opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := extremaResponse{
		XMin:   slot(res.Extrema.HasX(), res.Extrema.XMin.String()),
		XMax:   slot(res.Extrema.HasX(), res.Extrema.XMax.String()),
		YMin:   slot(res.Extrema.HasY(), res.Extrema.YMin.String()),
		YMax:   slot(res.Extrema.HasY(), res.Extrema.YMax.String()),
		Report: res.Report,
		Coords: res.Stats.Coords,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func slot(ok bool, v string) string {
	if !ok {
		return "-"
	}
	return v
}

// writeError maps pipeline errors to HTTP status codes: parse failures are
// the client's fault (422), everything else is a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := cncerrors.ErrCodeInternal

	var pe *gcode.ParseError
	if errors.As(err, &pe) {
		status = http.StatusUnprocessableEntity
		code = pe.Code()
	} else if c := cncerrors.GetCode(err); c != "" {
		code = c
		if c == cncerrors.ErrCodeInvalidInput {
			status = http.StatusBadRequest
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:    string(code),
		Message: cncerrors.UserMessage(err),
	})
}

// jobID tags every response with a fresh job id for log correlation.
func (s *Server) jobID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Job-ID", uuid.NewString())
		next.ServeHTTP(w, r)
	})
}

// requestLog logs method, path, and duration of every request.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"job", w.Header().Get("X-Job-ID"),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}
