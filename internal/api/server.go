// Package api exposes the evaluation service over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/rosterfit/internal/models"
	"github.com/yourusername/rosterfit/internal/repository"
	"github.com/yourusername/rosterfit/internal/service"
)

// Server serves the evaluation API.
type Server struct {
	evaluations *service.EvaluationService
	repos       *repository.Repositories
	logger      *logrus.Logger
	server      *http.Server
	port        int
	readTimeout time.Duration
}

// Config holds the configuration for the API server.
type Config struct {
	Port               int
	ReadTimeoutSeconds int
	Logger             *logrus.Logger
	Repos              *repository.Repositories
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// NewServer creates the API server. Repositories may be nil; the lookup
// endpoints then report persistence as unavailable.
func NewServer(evaluations *service.EvaluationService, cfg Config) (*Server, error) {
	if evaluations == nil {
		return nil, fmt.Errorf("evaluation service is required")
	}

	readTimeout := time.Duration(cfg.ReadTimeoutSeconds) * time.Second
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}

	return &Server{
		evaluations: evaluations,
		repos:       cfg.Repos,
		logger:      cfg.Logger,
		port:        cfg.Port,
		readTimeout: readTimeout,
	}, nil
}

// Routes builds the request multiplexer.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/evaluations", s.handleEvaluate)
	mux.HandleFunc("POST /v1/evaluations/batch", s.handleEvaluateBatch)
	mux.HandleFunc("GET /v1/evaluations/{id}", s.handleGetEvaluation)
	mux.HandleFunc("GET /v1/programs", s.handleListPrograms)
	mux.HandleFunc("GET /v1/programs/{name}", s.handleGetProgram)
	return mux
}

// Start starts the API server in the background.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Routes(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if s.logger != nil {
			s.logger.WithField("port", s.port).Info("API server starting")
		}

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.WithError(err).Error("API server error")
			}
		}
	}()

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// handleEvaluate runs one evaluation. The summary view strips the
// component breakdown.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req service.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	resp, err := s.evaluations.Evaluate(r.Context(), req)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	if r.URL.Query().Get("view") == "summary" {
		s.writeJSON(w, http.StatusOK, struct {
			Summary      any    `json:"summary"`
			EvaluationID string `json:"evaluation_id,omitempty"`
		}{resp.Result.Summary(), resp.EvaluationID})
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []service.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if len(reqs) == 0 {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("batch is empty"))
		return
	}

	s.writeJSON(w, http.StatusOK, s.evaluations.EvaluateBatch(r.Context(), reqs))
}

func (s *Server) handleGetEvaluation(w http.ResponseWriter, r *http.Request) {
	if s.repos == nil {
		s.writeError(w, http.StatusServiceUnavailable, fmt.Errorf("evaluation storage is not configured"))
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid evaluation id: %w", err))
		return
	}

	evaluation, err := s.repos.Evaluation.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	s.writeJSON(w, http.StatusOK, evaluation)
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	if s.repos == nil {
		s.writeError(w, http.StatusServiceUnavailable, fmt.Errorf("program storage is not configured"))
		return
	}

	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	programs, err := s.repos.Program.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	s.writeJSON(w, http.StatusOK, programs)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	if s.repos == nil {
		s.writeError(w, http.StatusServiceUnavailable, fmt.Errorf("program storage is not configured"))
		return
	}

	program, err := s.repos.Program.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	s.writeJSON(w, http.StatusOK, program)
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && s.logger != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if s.logger != nil && status >= http.StatusInternalServerError {
		s.logger.WithError(err).Error("Request failed")
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
