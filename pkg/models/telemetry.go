// Package models defines the shared data model for the telemetry pipeline.
package models

import "time"

// TelemetryType is the physical quantity a sensor measures.
type TelemetryType string

const (
	TelemetryTypeFlowRate    TelemetryType = "FLOW_RATE"
	TelemetryTypePressure    TelemetryType = "PRESSURE"
	TelemetryTypeVoltage     TelemetryType = "VOLTAGE"
	TelemetryTypeCurrent     TelemetryType = "CURRENT"
	TelemetryTypePowerUsage  TelemetryType = "POWER_USAGE"
	TelemetryTypeVibration   TelemetryType = "VIBRATION"
	TelemetryTypeTemperature TelemetryType = "TEMPERATURE"
)

// AnomalyType classifies a rule-based utility anomaly.
type AnomalyType string

const (
	AnomalyTypeWaterLeak     AnomalyType = "WATER_LEAK"
	AnomalyTypePressureDrop  AnomalyType = "PRESSURE_DROP"
	AnomalyTypePowerSurge    AnomalyType = "POWER_SURGE"
	AnomalyTypeOverload      AnomalyType = "OVERLOAD"
	AnomalyTypeSensorFailure AnomalyType = "SENSOR_FAILURE"
)

// Severity is the priority level assigned to anomalies and failure risks.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// TelemetryMetadata carries producer-side hints attached to a message.
type TelemetryMetadata struct {
	SensorType string `json:"sensorType"`
	IsAnomaly  bool   `json:"isAnomaly"`
}

// TelemetryMessage is the inbound payload published by sensor producers on
// the iot.telemetry.* subjects. It is immutable once parsed; redelivery of
// the same logical message is possible under at-least-once semantics.
type TelemetryMessage struct {
	SensorCode  string            `json:"sensorCode"`
	StructureID string            `json:"structureId"`
	ReadingType TelemetryType     `json:"readingType"`
	Value       float64           `json:"value"`
	Unit        string            `json:"unit"`
	Timestamp   time.Time         `json:"timestamp"`
	TopicName   string            `json:"topicName"`
	Metadata    TelemetryMetadata `json:"metadata"`
}
