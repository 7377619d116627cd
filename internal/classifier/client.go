// Package classifier provides the HTTP client for the level-classifier service.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/rosterfit/internal/config"
	"github.com/yourusername/rosterfit/internal/models"
)

// Client is the HTTP client for the classifier service
type Client struct {
	client  *http.Client
	baseURL string
	retries int
	logger  *logrus.Logger
}

// NewClient creates a new classifier client
func NewClient(cfg *config.ClassifierConfig, logger *logrus.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		baseURL: cfg.URL,
		retries: cfg.RetryAttempts,
		logger:  logger,
	}
}

// PredictRequest represents the prediction request payload
type PredictRequest struct {
	Stats models.PlayerStats `json:"stats"`
}

// PredictResponse represents the prediction response payload
type PredictResponse struct {
	Signal       models.ClassifierSignal `json:"signal"`
	ModelVersion string                  `json:"model_version"`
}

// Predict requests a division classification for one player
func (c *Client) Predict(ctx context.Context, player models.PlayerStats) (*models.ClassifierSignal, error) {
	start := time.Now()

	jsonData, err := json.Marshal(PredictRequest{Stats: player})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
		}

		signal, err := c.predictOnce(ctx, jsonData)
		if err == nil {
			PredictionLatency.Observe(time.Since(start).Seconds())
			return signal, nil
		}
		lastErr = err
	}

	HTTPErrorsTotal.WithLabelValues("predict", "exhausted").Inc()
	return nil, lastErr
}

func (c *Client) predictOnce(ctx context.Context, body []byte) (*models.ClassifierSignal, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/v1/predict", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		HTTPErrorsTotal.WithLabelValues("predict", "network").Inc()
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		HTTPErrorsTotal.WithLabelValues("predict", "http_error").Inc()
		return nil, fmt.Errorf("prediction request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var predictResp PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&predictResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrediction, err)
	}

	if predictResp.Signal.D1Probability < 0 || predictResp.Signal.D1Probability > 1 {
		return nil, fmt.Errorf("%w: d1 probability %f out of range", ErrInvalidPrediction, predictResp.Signal.D1Probability)
	}

	c.logger.WithFields(logrus.Fields{
		"model_version": predictResp.ModelVersion,
		"d1":            predictResp.Signal.D1Probability,
		"confidence":    predictResp.Signal.Confidence,
	}).Debug("Classifier prediction received")

	return &predictResp.Signal, nil
}

// HealthCheck checks classifier service health
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrClassifierUnavailable, resp.StatusCode)
	}

	return nil
}
