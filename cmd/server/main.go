// Package main provides the entry point for the evaluation server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/rosterfit/internal/api"
	"github.com/yourusername/rosterfit/internal/classifier"
	"github.com/yourusername/rosterfit/internal/config"
	"github.com/yourusername/rosterfit/internal/database"
	"github.com/yourusername/rosterfit/internal/health"
	"github.com/yourusername/rosterfit/internal/logger"
	"github.com/yourusername/rosterfit/internal/metrics"
	"github.com/yourusername/rosterfit/internal/playingtime"
	"github.com/yourusername/rosterfit/internal/ratings"
	"github.com/yourusername/rosterfit/internal/repository"
	"github.com/yourusername/rosterfit/internal/scheduler"
	"github.com/yourusername/rosterfit/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "rosterfit-server",
	Short: "Playing-time evaluation server",
	Long:  `Serves recruit playing-time evaluations over HTTP, refreshing program ratings on a schedule.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.AWS.UseSecretsManager {
		if err := config.LoadSecretsFromAWS(cfg, cfg.AWS.Region, cfg.AWS.SecretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"version":     Version,
	}).Info("Rosterfit server starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}

	benchmarks, err := loadBenchmarks(ctx, cfg, repos, appLog)
	if err != nil {
		return err
	}

	engine, err := playingtime.New(benchmarks)
	if err != nil {
		return fmt.Errorf("failed to build evaluation engine: %w", err)
	}

	metrics.InitRegistry()

	predictor := classifier.NewCachedClient(&cfg.Classifier, appLog)
	evalSvc, err := service.NewEvaluationService(engine, predictor, repos, appLog)
	if err != nil {
		return fmt.Errorf("failed to build evaluation service: %w", err)
	}

	var sched *scheduler.Scheduler
	if cfg.Ratings.Enabled {
		feed := ratings.NewFeedClient(&cfg.Ratings, appLog)
		refreshSvc, err := service.NewRatingsRefreshService(feed, repos, appLog)
		if err != nil {
			return fmt.Errorf("failed to build ratings refresh: %w", err)
		}

		sched = scheduler.NewScheduler(refreshSvc, appLog)
		if err := sched.ScheduleRatingsRefresh(cfg.Ratings.RefreshSchedule); err != nil {
			return fmt.Errorf("failed to schedule ratings refresh: %w", err)
		}
		if err := sched.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer sched.Stop()

		appLog.WithField("next_run", sched.GetNextRun()).Info("Ratings refresh scheduled")
	} else {
		appLog.Info("Ratings refresh disabled; program profiles will not update")
	}

	if cfg.Metrics.Enabled {
		startMetricsServer(cfg, appLog)
	}

	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Commit:      GitCommit,
		Port:        strconv.Itoa(cfg.Server.HealthPort),
		Logger:      appLog,
		DB:          db,
		Classifier:  predictor,
	})
	if err := healthServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start health server: %w", err)
	}

	apiServer, err := api.NewServer(evalSvc, api.Config{
		Port:               cfg.Server.Port,
		ReadTimeoutSeconds: cfg.Server.ReadTimeoutSeconds,
		Logger:             appLog,
		Repos:              repos,
	})
	if err != nil {
		return fmt.Errorf("failed to build API server: %w", err)
	}
	if err := apiServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	healthServer.SetReady(true)
	appLog.WithField("port", cfg.Server.Port).Info("Rosterfit server ready")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	healthServer.SetReady(false)
	cancel()

	if err := apiServer.Shutdown(); err != nil {
		appLog.WithError(err).Error("Error during API server shutdown")
	}

	appLog.Info("Rosterfit server shut down successfully")
	return nil
}

// loadBenchmarks builds the tier benchmark table from the configured
// source, layering any config overrides on top.
func loadBenchmarks(ctx context.Context, cfg *config.Config, repos *repository.Repositories, appLog *logrus.Logger) (playingtime.BenchmarkTable, error) {
	var base playingtime.BenchmarkTable

	switch cfg.Benchmarks.Source {
	case "database":
		table, err := repos.Benchmark.LoadTable(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load benchmarks from database: %w", err)
		}
		base = table
	default:
		base = playingtime.DefaultBenchmarks()
	}

	table := cfg.Benchmarks.ApplyOverrides(base)
	appLog.WithFields(logrus.Fields{
		"source": cfg.Benchmarks.Source,
		"tiers":  len(table),
	}).Info("Benchmark table loaded")

	return table, nil
}

func startMetricsServer(cfg *config.Config, appLog *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, metrics.Handler())

	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler:     mux,
		ReadTimeout: 5 * time.Second,
	}

	go func() {
		appLog.WithField("port", cfg.Metrics.Port).Info("Metrics server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.WithError(err).Error("Metrics server error")
		}
	}()
}
