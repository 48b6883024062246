// Package ml wraps the external inference service's anomaly-scoring and
// failure-prediction HTTP endpoints.
package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/civicworks/infrapulse/pkg/logger"
)

var (
	ErrUnexpectedStatusCode = errors.New("inference service returned unexpected status code")
	ErrNoReadings           = errors.New("no readings to score")
	ErrInsufficientReadings = errors.New("not enough mappable readings for failure prediction")
)

const (
	anomalyDetectPath  = "/anomaly/detect"
	failurePredictPath = "/failure/predict"

	// MinPredictionReadings is the smallest window the failure-prediction
	// model accepts.
	MinPredictionReadings = 6

	defaultRequestTimeout = 10 * time.Second
)

// Service is the inference client contract consumed by the pipeline.
type Service interface {
	DetectAnomalies(ctx context.Context, readings []Reading) (*AnomalyResponse, error)
	PredictFailure(ctx context.Context, readings []SequenceReading) (*FailurePredictionResponse, error)
}

// Client talks to the inference service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates an inference client. A zero timeout falls back to the
// default.
func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// DetectAnomalies scores each reading with the isolation-forest model.
// Readings must already be mapped to the service vocabulary.
func (c *Client) DetectAnomalies(ctx context.Context, readings []Reading) (*AnomalyResponse, error) {
	if len(readings) == 0 {
		return nil, ErrNoReadings
	}

	var resp AnomalyResponse
	if err := c.post(ctx, anomalyDetectPath, AnomalyRequest{Readings: readings}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// PredictFailure runs the windowed LSTM failure prediction over a batch of
// readings. Readings with unsupported types are dropped; if fewer than
// MinPredictionReadings remain the call is skipped and
// ErrInsufficientReadings is returned. Sensor identifiers are rewritten to
// the service's hyphenated convention before the call.
func (c *Client) PredictFailure(ctx context.Context, readings []SequenceReading) (*FailurePredictionResponse, error) {
	mapped := make([]SequenceReading, 0, len(readings))

	for _, r := range readings {
		if r.ReadingType == "" {
			continue
		}

		r.SensorID = NormalizeSensorID(r.SensorID)
		mapped = append(mapped, r)
	}

	if len(mapped) < MinPredictionReadings {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientReadings, len(mapped), MinPredictionReadings)
	}

	var resp FailurePredictionResponse
	if err := c.post(ctx, failurePredictPath, FailurePredictionRequest{Readings: mapped}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// NormalizeSensorID rewrites sensor codes to the identifier convention the
// inference service expects (SENSOR_001 -> SENSOR-001).
func NormalizeSensorID(id string) string {
	return strings.ReplaceAll(id, "_", "-")
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build inference request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("inference request failed: %w", err)
	}
	defer c.closeResponse(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %d %s: %s", ErrUnexpectedStatusCode, resp.StatusCode, path, strings.TrimSpace(string(detail)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode inference response: %w", err)
	}

	return nil
}

func (c *Client) closeResponse(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to close inference response body")
	}
}
