package ml

import "github.com/civicworks/infrapulse/pkg/models"

// MLType is a reading type understood by the inference service. The service
// supports a narrower vocabulary than the pipeline's telemetry types.
type MLType string

const (
	MLTypeTemperature MLType = "TEMPERATURE"
	MLTypeVibration   MLType = "VIBRATION"
	MLTypeStrain      MLType = "STRAIN"
	MLTypePressure    MLType = "PRESSURE"
)

// MapReadingType translates a telemetry type to the inference service's
// vocabulary. The second return value is false for types the service does
// not score (VOLTAGE, CURRENT); callers must skip those readings entirely.
func MapReadingType(t models.TelemetryType) (MLType, bool) {
	switch t {
	case models.TelemetryTypeTemperature:
		return MLTypeTemperature, true
	case models.TelemetryTypeVibration:
		return MLTypeVibration, true
	case models.TelemetryTypePressure:
		return MLTypePressure, true
	case models.TelemetryTypeFlowRate:
		// Flow rate is scored by the strain model.
		return MLTypeStrain, true
	default:
		return "", false
	}
}

// Reading is a single value submitted for anomaly scoring.
type Reading struct {
	Value       float64 `json:"value"`
	ReadingType MLType  `json:"readingType"`
}

// AnomalyRequest is the POST body for /anomaly/detect.
type AnomalyRequest struct {
	Readings []Reading `json:"readings"`
}

// AnomalyResult scores one submitted reading.
type AnomalyResult struct {
	Value        float64 `json:"value"`
	ReadingType  string  `json:"readingType"`
	IsAnomaly    bool    `json:"isAnomaly"`
	AnomalyScore float64 `json:"anomalyScore"`
}

// AnomalyResponse is the /anomaly/detect response body.
type AnomalyResponse struct {
	Results           []AnomalyResult `json:"results"`
	TotalReadings     int             `json:"totalReadings"`
	AnomaliesDetected int             `json:"anomaliesDetected"`
	AnomalyRate       float64         `json:"anomalyRate"`
}

// SequenceReading is a timestamped reading submitted for failure prediction.
type SequenceReading struct {
	Timestamp   string  `json:"timestamp"`
	SensorID    string  `json:"sensorId"`
	ReadingType MLType  `json:"readingType"`
	Value       float64 `json:"value"`
}

// FailurePredictionRequest is the POST body for /failure/predict. The model
// requires at least MinPredictionReadings entries.
type FailurePredictionRequest struct {
	Readings []SequenceReading `json:"readings"`
}

// FailurePredictionResult is the windowed prediction for one structure. The
// service may return "UNKNOWN" risk, which callers coerce to LOW.
type FailurePredictionResult struct {
	StructureID         string  `json:"structureId"`
	FailureProbability  float64 `json:"failureProbability"`
	FailureRisk         string  `json:"failureRisk"`
	PredictedFailure24h bool    `json:"predictedFailureWithin24h"`
}

// FailurePredictionResponse is the /failure/predict response body.
type FailurePredictionResponse struct {
	Predictions    []FailurePredictionResult `json:"predictions"`
	ModelThreshold float64                   `json:"modelThreshold"`
}
