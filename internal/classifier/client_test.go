package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/rosterfit/internal/config"
	"github.com/yourusername/rosterfit/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func clientConfig(url string) *config.ClassifierConfig {
	return &config.ClassifierConfig{
		URL:             url,
		TimeoutSeconds:  2,
		RetryAttempts:   1,
		CacheTTLSeconds: 60,
		CacheMaxSize:    100,
	}
}

func TestPredictSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/predict", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req PredictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Stats.ExitVelo)

		p4 := 0.7
		resp := PredictResponse{
			Signal: models.ClassifierSignal{
				D1Probability: 0.88,
				P4Probability: &p4,
				D1Prediction:  true,
				Confidence:    models.ConfidenceHigh,
			},
			ModelVersion: "v3",
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(clientConfig(server.URL), testLogger())
	signal, err := client.Predict(context.Background(), models.PlayerStats{ExitVelo: fptr(95), Position: "SS"})

	require.NoError(t, err)
	assert.InDelta(t, 0.88, signal.D1Probability, 1e-9)
	assert.InDelta(t, 0.7, signal.P4(), 1e-9)
	assert.Equal(t, models.ConfidenceHigh, signal.Confidence)
}

func TestPredictServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(clientConfig(server.URL), testLogger())
	_, err := client.Predict(context.Background(), models.PlayerStats{Position: "SS"})

	assert.Error(t, err)
}

func TestPredictRetriesThenSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "warming up", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(PredictResponse{
			Signal: models.ClassifierSignal{D1Probability: 0.5, Confidence: models.ConfidenceMedium},
		})
	}))
	defer server.Close()

	client := NewClient(clientConfig(server.URL), testLogger())
	signal, err := client.Predict(context.Background(), models.PlayerStats{Position: "SS"})

	require.NoError(t, err)
	assert.InDelta(t, 0.5, signal.D1Probability, 1e-9)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestPredictRejectsOutOfRangeProbability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(PredictResponse{
			Signal: models.ClassifierSignal{D1Probability: 1.4},
		})
	}))
	defer server.Close()

	cfg := clientConfig(server.URL)
	cfg.RetryAttempts = 0
	client := NewClient(cfg, testLogger())
	_, err := client.Predict(context.Background(), models.PlayerStats{Position: "SS"})

	assert.ErrorIs(t, err, ErrInvalidPrediction)
}

func TestHealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(clientConfig(server.URL), testLogger())
	assert.NoError(t, client.HealthCheck(context.Background()))
}

func TestHealthCheckUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(clientConfig(server.URL), testLogger())
	err := client.HealthCheck(context.Background())
	assert.ErrorIs(t, err, ErrClassifierUnavailable)
}

type countingPredictor struct {
	calls  int32
	signal models.ClassifierSignal
}

func (p *countingPredictor) Predict(ctx context.Context, player models.PlayerStats) (*models.ClassifierSignal, error) {
	atomic.AddInt32(&p.calls, 1)
	s := p.signal
	return &s, nil
}

func (p *countingPredictor) HealthCheck(ctx context.Context) error { return nil }

func TestCachedClientCachesBySameStats(t *testing.T) {
	predictor := &countingPredictor{signal: models.ClassifierSignal{D1Probability: 0.8}}
	cached := newCachedClientWith(predictor, NewPredictionCache(time.Minute, 100), testLogger())

	player := models.PlayerStats{ExitVelo: fptr(95), Position: "SS"}

	first, err := cached.Predict(context.Background(), player)
	require.NoError(t, err)
	second, err := cached.Predict(context.Background(), player)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&predictor.calls))
	assert.Equal(t, 1, cached.CacheSize())
}

func TestCachedClientMissesForDifferentStats(t *testing.T) {
	predictor := &countingPredictor{signal: models.ClassifierSignal{D1Probability: 0.8}}
	cached := newCachedClientWith(predictor, NewPredictionCache(time.Minute, 100), testLogger())

	_, err := cached.Predict(context.Background(), models.PlayerStats{ExitVelo: fptr(95), Position: "SS"})
	require.NoError(t, err)
	_, err = cached.Predict(context.Background(), models.PlayerStats{ExitVelo: fptr(88), Position: "SS"})
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&predictor.calls))
}
