package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingClassifier struct{}

func (failingClassifier) HealthCheck(ctx context.Context) error {
	return errors.New("connection refused")
}

func TestReadyReportsNotReadyBeforeStartup(t *testing.T) {
	s := NewServer(Config{ServiceName: "rosterfit"})

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_ready", resp.Status)
}

func TestReadyOKOnceMarkedReady(t *testing.T) {
	s := NewServer(Config{ServiceName: "rosterfit"})
	s.SetReady(true)

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClassifierOutageDoesNotFailReadiness(t *testing.T) {
	s := NewServer(Config{ServiceName: "rosterfit", Classifier: failingClassifier{}})
	s.SetReady(true)

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Checks["classifier"], "degraded")
}

func TestHealthIncludesServiceMetadata(t *testing.T) {
	s := NewServer(Config{ServiceName: "rosterfit", Version: "1.2.3"})

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rosterfit", resp.Service)
	assert.Equal(t, "1.2.3", resp.Version)
}
