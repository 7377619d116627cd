package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/rosterfit/internal/logger"
	"github.com/yourusername/rosterfit/internal/metrics"
	"github.com/yourusername/rosterfit/internal/ratings"
	"github.com/yourusername/rosterfit/internal/repository"
)

const ratingsSourceName = "massey"

// RatingsFetcher is the slice of the feed client the refresh needs.
type RatingsFetcher interface {
	FetchRatings(ctx context.Context) (*ratings.FeedResponse, error)
}

// RatingsRefreshService pulls the current ratings snapshot, normalizes it
// and replaces the stored program profiles.
type RatingsRefreshService struct {
	feed       RatingsFetcher
	normalizer *ratings.Normalizer
	repos      *repository.Repositories
	log        *logrus.Logger
	ratingsLog *logger.RatingsLogger
}

// NewRatingsRefreshService creates the refresh service.
func NewRatingsRefreshService(feed RatingsFetcher, repos *repository.Repositories, log *logrus.Logger) (*RatingsRefreshService, error) {
	if feed == nil {
		return nil, fmt.Errorf("ratings feed client is required")
	}
	if repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}

	return &RatingsRefreshService{
		feed:       feed,
		normalizer: ratings.NewNormalizer(log),
		repos:      repos,
		log:        log,
		ratingsLog: logger.NewRatingsLogger(log),
	}, nil
}

// Refresh runs one fetch-normalize-store cycle. Individual bad records
// are skipped; an empty snapshot is an error so a broken feed cannot
// silently wipe the program table.
func (s *RatingsRefreshService) Refresh(ctx context.Context) error {
	start := time.Now()
	s.ratingsLog.LogRefreshStarted(ratingsSourceName)

	feed, err := s.feed.FetchRatings(ctx)
	if err != nil {
		s.ratingsLog.LogRefreshFailed(ratingsSourceName, err)
		metrics.RecordRatingsRefresh("error", time.Since(start).Seconds())
		return fmt.Errorf("ratings fetch failed: %w", err)
	}

	programs, rejected := s.normalizer.NormalizeFeed(feed)
	for i := 0; i < rejected; i++ {
		metrics.RatingsRecordsRejectedTotal.Inc()
	}

	if len(programs) == 0 {
		err := fmt.Errorf("ratings snapshot contained no usable records")
		s.ratingsLog.LogRefreshFailed(ratingsSourceName, err)
		metrics.RecordRatingsRefresh("error", time.Since(start).Seconds())
		return err
	}

	written, err := s.repos.Program.UpsertBatch(ctx, programs)
	if err != nil {
		s.ratingsLog.LogRefreshFailed(ratingsSourceName, err)
		metrics.RecordRatingsRefresh("error", time.Since(start).Seconds())
		return fmt.Errorf("ratings store failed: %w", err)
	}

	durationMs := float64(time.Since(start).Microseconds()) / 1000
	s.ratingsLog.LogRefreshCompleted(ratingsSourceName, written, rejected, durationMs)
	metrics.RecordRatingsRefresh("success", time.Since(start).Seconds())
	metrics.UpdateLastRatingsRefresh(float64(time.Now().Unix()))

	if count, err := s.repos.Program.Count(ctx); err == nil {
		metrics.UpdateProgramsTracked(float64(count))
	}

	return nil
}
