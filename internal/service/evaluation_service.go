// Package service orchestrates playing-time evaluations over the engine,
// classifier and persistence layers.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/rosterfit/internal/classifier"
	"github.com/yourusername/rosterfit/internal/logger"
	"github.com/yourusername/rosterfit/internal/metrics"
	"github.com/yourusername/rosterfit/internal/models"
	"github.com/yourusername/rosterfit/internal/playingtime"
	"github.com/yourusername/rosterfit/internal/repository"
)

// EvaluateRequest is one evaluation order: a named recruit, their
// measurements and the target program. The program may be referenced by
// name (resolved against stored ratings) or supplied inline.
type EvaluateRequest struct {
	PlayerName string             `json:"player_name" validate:"required"`
	Stats      models.PlayerStats `json:"stats"`

	ProgramName string                 `json:"program_name,omitempty"`
	Program     *models.ProgramContext `json:"program,omitempty"`

	// Optional precomputed signal; when absent the classifier is called.
	Signal *models.ClassifierSignal `json:"signal,omitempty"`
}

// EvaluateResponse pairs the engine result with the persisted record ID
// when the target program is tracked.
type EvaluateResponse struct {
	Result       *playingtime.Result `json:"result"`
	EvaluationID string              `json:"evaluation_id,omitempty"`
}

// EvaluationService coordinates one evaluation end to end.
type EvaluationService struct {
	engine     *playingtime.Engine
	classifier classifier.Predictor
	repos      *repository.Repositories
	validate   *validator.Validate
	log        *logrus.Logger
	evalLog    *logger.EvaluationLogger
}

// NewEvaluationService creates the evaluation orchestrator. The
// repositories may be nil for offline, single-shot use.
func NewEvaluationService(engine *playingtime.Engine, predictor classifier.Predictor, repos *repository.Repositories, log *logrus.Logger) (*EvaluationService, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if predictor == nil {
		return nil, fmt.Errorf("classifier is required")
	}

	return &EvaluationService{
		engine:     engine,
		classifier: predictor,
		repos:      repos,
		validate:   validator.New(),
		log:        log,
		evalLog:    logger.NewEvaluationLogger(log),
	}, nil
}

// Evaluate runs one playing-time evaluation. A classifier outage degrades
// to a neutral signal instead of failing the request; an unresolvable
// program is an error.
func (s *EvaluationService) Evaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResponse, error) {
	start := time.Now()

	if err := s.validate.Struct(req); err != nil {
		metrics.RecordEvaluationError()
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	program, programID, err := s.resolveProgram(ctx, req)
	if err != nil {
		metrics.RecordEvaluationError()
		return nil, err
	}

	signal := s.resolveSignal(ctx, req, program.Name)

	if !s.engine.HasTier(program.Tier) {
		s.evalLog.LogBenchmarkFallback(string(program.Tier), string(models.TierMidD1))
		metrics.RecordBenchmarkFallback()
	}

	result := s.engine.Evaluate(req.Stats, signal, program)

	resp := &EvaluateResponse{Result: result}
	if s.repos != nil && programID != nil {
		record, err := toEvaluationRecord(result, *programID, req.PlayerName)
		if err != nil {
			return nil, err
		}
		if err := s.repos.Evaluation.Create(ctx, record); err != nil {
			s.log.WithError(err).Warn("Failed to persist evaluation")
		} else {
			resp.EvaluationID = record.ID.String()
		}
	}

	durationMs := float64(time.Since(start).Microseconds()) / 1000
	s.evalLog.LogEvaluationCompleted(resp.EvaluationID, program.Name, req.Stats.Position, result.Bucket, result.FinalZ, result.Percentile, durationMs)
	metrics.RecordEvaluation(result.Bucket, time.Since(start).Seconds())

	return resp, nil
}

// BatchItem is one outcome within a batch evaluation. Exactly one of
// Response and Error is set.
type BatchItem struct {
	Response *EvaluateResponse `json:"response,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// EvaluateBatch scores several recruits in one call. Items fail
// independently; one bad request does not abort the rest.
func (s *EvaluationService) EvaluateBatch(ctx context.Context, reqs []EvaluateRequest) []BatchItem {
	start := time.Now()

	items := make([]BatchItem, len(reqs))
	failed := 0
	for i := range reqs {
		resp, err := s.Evaluate(ctx, reqs[i])
		if err != nil {
			items[i] = BatchItem{Error: err.Error()}
			failed++
			continue
		}
		items[i] = BatchItem{Response: resp}
	}

	durationMs := float64(time.Since(start).Microseconds()) / 1000
	s.evalLog.LogBatchCompleted(len(reqs)-failed, failed, durationMs)

	return items
}

// resolveProgram picks the stored program when one is named, otherwise
// the inline context.
func (s *EvaluationService) resolveProgram(ctx context.Context, req EvaluateRequest) (models.ProgramContext, *uuid.UUID, error) {
	if req.ProgramName != "" && s.repos != nil {
		stored, err := s.repos.Program.GetByName(ctx, req.ProgramName)
		if err == nil {
			id := stored.ID
			return stored.Context(), &id, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return models.ProgramContext{}, nil, fmt.Errorf("failed to resolve program %q: %w", req.ProgramName, err)
		}
		if req.Program == nil {
			return models.ProgramContext{}, nil, fmt.Errorf("program %q: %w", req.ProgramName, models.ErrNotFound)
		}
	}

	if req.Program != nil {
		return *req.Program, nil, nil
	}
	if req.ProgramName != "" {
		return models.ProgramContext{}, nil, fmt.Errorf("program %q: %w", req.ProgramName, models.ErrNotFound)
	}

	return models.ProgramContext{}, nil, fmt.Errorf("%w: evaluation request names no program", models.ErrInvalidInput)
}

// resolveSignal uses the inline signal when present, then the classifier,
// then a neutral fallback.
func (s *EvaluationService) resolveSignal(ctx context.Context, req EvaluateRequest, programName string) models.ClassifierSignal {
	if req.Signal != nil {
		return *req.Signal
	}

	signal, err := s.classifier.Predict(ctx, req.Stats)
	if err != nil {
		s.evalLog.LogClassifierUnavailable(programName, err)
		metrics.RecordClassifierRequest("error", 0)
		return models.ClassifierSignal{Confidence: models.ConfidenceLow}
	}

	return *signal
}
