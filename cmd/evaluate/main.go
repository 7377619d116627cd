// Package main provides a single-shot evaluation CLI. It reads one
// evaluation request as JSON, scores it against the built-in benchmark
// table and prints the result. No database is required; the target
// program must be supplied inline in the request.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/rosterfit/internal/classifier"
	"github.com/yourusername/rosterfit/internal/config"
	"github.com/yourusername/rosterfit/internal/playingtime"
	"github.com/yourusername/rosterfit/internal/service"
)

func main() {
	var (
		input         = flag.String("input", "-", "Path to evaluation request JSON, - for stdin")
		classifierURL = flag.String("classifier-url", "", "Level classifier URL; omit to score without one")
		summary       = flag.Bool("summary", false, "Print the condensed result instead of the full breakdown")
		verbose       = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	log := newLogger(*verbose)

	req, err := readRequest(*input)
	if err != nil {
		log.Fatalf("Failed to read request: %v", err)
	}

	engine, err := playingtime.New(playingtime.DefaultBenchmarks())
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	svc, err := service.NewEvaluationService(engine, newPredictor(*classifierURL, log), nil, log)
	if err != nil {
		log.Fatalf("Failed to build evaluation service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := svc.Evaluate(ctx, *req)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}

	var payload any = resp.Result
	if *summary {
		payload = resp.Result.Summary()
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// newPredictor returns a classifier client. Without a URL the client
// points nowhere and every prediction degrades to the neutral signal.
func newPredictor(url string, log *logrus.Logger) classifier.Predictor {
	if url == "" {
		url = "http://127.0.0.1:0"
	}
	return classifier.NewCachedClient(&config.ClassifierConfig{
		URL:             url,
		TimeoutSeconds:  5,
		RetryAttempts:   0,
		CacheTTLSeconds: 60,
		CacheMaxSize:    16,
	}, log)
}

func readRequest(path string) (*service.EvaluateRequest, error) {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	var req service.EvaluateRequest
	if err := json.NewDecoder(reader).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid request JSON: %w", err)
	}
	return &req, nil
}
