package ml

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicworks/infrapulse/pkg/logger"
	"github.com/civicworks/infrapulse/pkg/models"
)

func TestMapReadingType(t *testing.T) {
	tests := []struct {
		name     string
		input    models.TelemetryType
		expected MLType
		ok       bool
	}{
		{"temperature maps to itself", models.TelemetryTypeTemperature, MLTypeTemperature, true},
		{"vibration maps to itself", models.TelemetryTypeVibration, MLTypeVibration, true},
		{"pressure maps to itself", models.TelemetryTypePressure, MLTypePressure, true},
		{"flow rate maps to strain", models.TelemetryTypeFlowRate, MLTypeStrain, true},
		{"voltage is unsupported", models.TelemetryTypeVoltage, "", false},
		{"current is unsupported", models.TelemetryTypeCurrent, "", false},
		{"power usage is unsupported", models.TelemetryTypePowerUsage, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapReadingType(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeSensorID(t *testing.T) {
	assert.Equal(t, "SENSOR-001", NormalizeSensorID("SENSOR_001"))
	assert.Equal(t, "SEN-042", NormalizeSensorID("SEN-042"))
}

func TestDetectAnomalies(t *testing.T) {
	var gotReq AnomalyRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/anomaly/detect", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := AnomalyResponse{
			Results: []AnomalyResult{
				{Value: 42.5, ReadingType: "TEMPERATURE", IsAnomaly: true, AnomalyScore: -0.12},
			},
			TotalReadings:     1,
			AnomaliesDetected: 1,
			AnomalyRate:       1.0,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewTestLogger())

	resp, err := client.DetectAnomalies(context.Background(), []Reading{
		{Value: 42.5, ReadingType: MLTypeTemperature},
	})
	require.NoError(t, err)

	require.Len(t, gotReq.Readings, 1)
	assert.Equal(t, MLTypeTemperature, gotReq.Readings[0].ReadingType)

	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].IsAnomaly)
	assert.InDelta(t, -0.12, resp.Results[0].AnomalyScore, 1e-9)
}

func TestDetectAnomaliesEmptyInput(t *testing.T) {
	client := NewClient("http://localhost:0", time.Second, logger.NewTestLogger())

	_, err := client.DetectAnomalies(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoReadings)
}

func TestDetectAnomaliesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewTestLogger())

	_, err := client.DetectAnomalies(context.Background(), []Reading{
		{Value: 1.0, ReadingType: MLTypePressure},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatusCode)
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestPredictFailure(t *testing.T) {
	var gotReq FailurePredictionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/failure/predict", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := FailurePredictionResponse{
			Predictions: []FailurePredictionResult{
				{
					StructureID:         "STR-001",
					FailureProbability:  0.72,
					FailureRisk:         "HIGH",
					PredictedFailure24h: true,
				},
			},
			ModelThreshold: 0.5,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewTestLogger())

	readings := make([]SequenceReading, 0, MinPredictionReadings)
	for i := 0; i < MinPredictionReadings; i++ {
		readings = append(readings, SequenceReading{
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			SensorID:    "SENSOR_001",
			ReadingType: MLTypeVibration,
			Value:       float64(i),
		})
	}

	resp, err := client.PredictFailure(context.Background(), readings)
	require.NoError(t, err)

	require.Len(t, gotReq.Readings, MinPredictionReadings)
	for _, r := range gotReq.Readings {
		assert.Equal(t, "SENSOR-001", r.SensorID)
	}

	require.Len(t, resp.Predictions, 1)
	assert.InDelta(t, 0.72, resp.Predictions[0].FailureProbability, 1e-9)
}

func TestPredictFailureInsufficientReadings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no HTTP call expected when readings are insufficient")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewTestLogger())

	// Five mappable readings plus one unmappable one: still below the floor
	// after filtering.
	readings := []SequenceReading{
		{SensorID: "SENSOR_001", ReadingType: MLTypeVibration, Value: 1},
		{SensorID: "SENSOR_001", ReadingType: MLTypeVibration, Value: 2},
		{SensorID: "SENSOR_001", ReadingType: MLTypeVibration, Value: 3},
		{SensorID: "SENSOR_001", ReadingType: MLTypeVibration, Value: 4},
		{SensorID: "SENSOR_001", ReadingType: MLTypeVibration, Value: 5},
		{SensorID: "SENSOR_001", ReadingType: "", Value: 6},
	}

	_, err := client.PredictFailure(context.Background(), readings)
	assert.ErrorIs(t, err, ErrInsufficientReadings)
}
