package logger

import (
	"github.com/sirupsen/logrus"
)

// RatingsLogger provides dedicated logging for the program-ratings feed.
type RatingsLogger struct {
	*logrus.Entry
}

// NewRatingsLogger creates a new ratings logger.
func NewRatingsLogger(baseLogger *logrus.Logger) *RatingsLogger {
	return &RatingsLogger{
		Entry: baseLogger.WithField("component", "ratings"),
	}
}

// LogRefreshStarted logs the start of a scheduled ratings refresh.
func (rl *RatingsLogger) LogRefreshStarted(source string) {
	rl.WithFields(logrus.Fields{
		"source": source,
	}).Info("Ratings refresh started")
}

// LogRefreshCompleted logs a completed ratings refresh.
func (rl *RatingsLogger) LogRefreshCompleted(source string, programsUpdated, programsSkipped int, durationMs float64) {
	rl.WithFields(logrus.Fields{
		"source":              source,
		"programs_updated":    programsUpdated,
		"programs_skipped":    programsSkipped,
		"refresh_duration_ms": durationMs,
	}).Info("Ratings refresh completed")
}

// LogRefreshFailed logs a failed ratings refresh.
func (rl *RatingsLogger) LogRefreshFailed(source string, err error) {
	rl.WithFields(logrus.Fields{
		"source": source,
		"error":  err,
	}).Error("Ratings refresh failed")
}
