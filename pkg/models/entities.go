package models

import (
	"encoding/json"
	"time"
)

// Structure is a physical asset (pipeline segment, substation, bridge) that
// owns one or more sensors.
type Structure struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	StructureType         string    `json:"structure_type"`
	Zone                  string    `json:"zone"`
	Latitude              float64   `json:"latitude"`
	Longitude             float64   `json:"longitude"`
	InstalledAt           time.Time `json:"installed_at"`
	ExpectedLifespanYears float64   `json:"expected_lifespan_years"`
	ConditionScore        float64   `json:"condition_score"`
	RiskScore             float64   `json:"risk_score"`
}

// Sensor is a telemetry-emitting device bound to exactly one structure.
type Sensor struct {
	ID            string     `json:"id"`
	SensorCode    string     `json:"sensor_code"`
	SensorType    string     `json:"sensor_type"`
	TopicName     string     `json:"topic_name"`
	Zone          string     `json:"zone"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	StructureID   string     `json:"structure_id"`
	IsActive      bool       `json:"is_active"`
	IsSubscribed  bool       `json:"is_subscribed"`
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	InstalledAt   time.Time  `json:"installed_at"`

	// Structure is the owning structure, populated on lookup.
	Structure *Structure `json:"structure,omitempty"`
}

// SensorTelemetry is one persisted row per accepted telemetry message.
// Rows are write-once; duplicates are possible under redelivery.
type SensorTelemetry struct {
	ID          string          `json:"id"`
	SensorID    string          `json:"sensor_id"`
	Timestamp   time.Time       `json:"timestamp"`
	ReadingType TelemetryType   `json:"reading_type"`
	Value       float64         `json:"value"`
	Unit        string          `json:"unit"`
	RawPayload  json.RawMessage `json:"raw_payload,omitempty"`
}

// UtilityAnomaly is a rule-based threshold-violation event.
type UtilityAnomaly struct {
	ID            string      `json:"id"`
	SensorID      string      `json:"sensor_id"`
	AnomalyType   AnomalyType `json:"anomaly_type"`
	Severity      Severity    `json:"severity"`
	DetectedValue float64     `json:"detected_value"`
	ExpectedRange string      `json:"expected_range"`
	Latitude      float64     `json:"latitude"`
	Longitude     float64     `json:"longitude"`
	DetectedAt    time.Time   `json:"detected_at"`
}

// MLAnomalyDetection records the outcome of a per-reading inference call.
// A row is written for every scored reading, anomalous or not. ReadingType
// holds the original telemetry type, not the ML-mapped one.
type MLAnomalyDetection struct {
	ID           string        `json:"id"`
	TelemetryID  string        `json:"telemetry_id"`
	SensorID     string        `json:"sensor_id"`
	ReadingType  TelemetryType `json:"reading_type"`
	Value        float64       `json:"value"`
	IsAnomaly    bool          `json:"is_anomaly"`
	AnomalyScore float64       `json:"anomaly_score"`
	ModelVersion string        `json:"model_version"`
	DetectedAt   time.Time     `json:"detected_at"`
}

// MLFailurePrediction records one windowed failure-prediction result per
// flushed batch per structure.
type MLFailurePrediction struct {
	ID                 string    `json:"id"`
	StructureID        string    `json:"structure_id"`
	FailureProbability float64   `json:"failure_probability"`
	FailureRisk        Severity  `json:"failure_risk"`
	FailureWithin24h   bool      `json:"failure_within_24h"`
	Confidence         float64   `json:"confidence"`
	ModelVersion       string    `json:"model_version"`
	PredictedAt        time.Time `json:"predicted_at"`
	ValidUntil         time.Time `json:"valid_until"`
}
