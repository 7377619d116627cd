package logger

import (
	"github.com/sirupsen/logrus"
)

// EvaluationLogger provides dedicated logging for playing-time evaluations.
type EvaluationLogger struct {
	*logrus.Entry
}

// NewEvaluationLogger creates a new evaluation logger.
func NewEvaluationLogger(baseLogger *logrus.Logger) *EvaluationLogger {
	return &EvaluationLogger{
		Entry: baseLogger.WithField("component", "evaluation"),
	}
}

// LogEvaluationCompleted logs a completed playing-time evaluation.
func (el *EvaluationLogger) LogEvaluationCompleted(evaluationID, program, position, bucket string, finalZ, percentile, durationMs float64) {
	el.WithFields(logrus.Fields{
		"evaluation_id":          evaluationID,
		"program":                program,
		"position":               position,
		"bucket":                 bucket,
		"final_z":                finalZ,
		"percentile":             percentile,
		"evaluation_duration_ms": durationMs,
	}).Info("Playing-time evaluation completed")
}

// LogBenchmarkFallback logs an evaluation that fell back to the default tier table.
func (el *EvaluationLogger) LogBenchmarkFallback(requestedTier, fallbackTier string) {
	el.WithFields(logrus.Fields{
		"requested_tier": requestedTier,
		"fallback_tier":  fallbackTier,
	}).Warn("Unknown tier, using fallback benchmarks")
}

// LogClassifierUnavailable logs an evaluation that proceeded without a classifier signal.
func (el *EvaluationLogger) LogClassifierUnavailable(program string, err error) {
	el.WithFields(logrus.Fields{
		"program": program,
		"error":   err,
	}).Warn("Classifier unavailable, evaluating with neutral signal")
}

// LogBatchCompleted logs a completed batch of evaluations.
func (el *EvaluationLogger) LogBatchCompleted(evaluated, failed int, durationMs float64) {
	el.WithFields(logrus.Fields{
		"evaluated":         evaluated,
		"failed":            failed,
		"batch_duration_ms": durationMs,
	}).Info("Evaluation batch completed")
}
