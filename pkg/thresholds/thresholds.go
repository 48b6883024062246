// Package thresholds evaluates sensor readings against fixed safe ranges and
// derives rule-based anomaly classifications and severities.
package thresholds

import (
	"fmt"

	"github.com/civicworks/infrapulse/pkg/models"
)

// Range is the inclusive safe operating range for a reading type.
type Range struct {
	Min float64
	Max float64
}

// safeRanges holds the per-reading-type operating envelopes. Values outside
// these bounds trigger rule-based anomaly creation.
var safeRanges = map[models.TelemetryType]Range{
	models.TelemetryTypeFlowRate:    {Min: 20.0, Max: 300.0},
	models.TelemetryTypePressure:    {Min: 10.0, Max: 400.0},
	models.TelemetryTypeVoltage:     {Min: 215.0, Max: 245.0},
	models.TelemetryTypeCurrent:     {Min: 5.0, Max: 75.0},
	models.TelemetryTypeVibration:   {Min: 0.1, Max: 12.0},
	models.TelemetryTypeTemperature: {Min: -5.0, Max: 50.0},
	models.TelemetryTypePowerUsage:  {Min: 0.0, Max: 10000.0},
}

// defaultRange applies to reading types without a configured envelope.
var defaultRange = Range{Min: 0, Max: 100}

// SafeRange returns the safe threshold range for a reading type.
func SafeRange(readingType models.TelemetryType) Range {
	if r, ok := safeRanges[readingType]; ok {
		return r
	}

	return defaultRange
}

// Exceeded reports whether a value falls outside its safe range.
func Exceeded(readingType models.TelemetryType, value float64) bool {
	r := SafeRange(readingType)
	return value < r.Min || value > r.Max
}

// ShouldFlag reports whether a reading triggers anomaly creation: either the
// value is out of range or the producer already suspected an anomaly. Either
// signal alone is sufficient.
func ShouldFlag(readingType models.TelemetryType, value float64, producerFlag bool) bool {
	return Exceeded(readingType, value) || producerFlag
}

// Classify derives the anomaly type for an out-of-range reading. Readings
// that do not match a specific rule fall through to SENSOR_FAILURE.
func Classify(readingType models.TelemetryType, value float64) models.AnomalyType {
	r := SafeRange(readingType)

	switch {
	case readingType == models.TelemetryTypeFlowRate && value < r.Min*0.5:
		return models.AnomalyTypeWaterLeak
	case readingType == models.TelemetryTypePressure && value < r.Min:
		return models.AnomalyTypePressureDrop
	case readingType == models.TelemetryTypeVoltage && (value < r.Min || value > r.Max):
		return models.AnomalyTypePowerSurge
	case readingType == models.TelemetryTypeCurrent && value > r.Max:
		return models.AnomalyTypeOverload
	default:
		return models.AnomalyTypeSensorFailure
	}
}

// Severity sizes an anomaly by how far the value sits outside the safe range,
// normalized by the range width. In-range values always yield LOW.
func Severity(readingType models.TelemetryType, value float64) models.Severity {
	r := SafeRange(readingType)
	width := r.Max - r.Min

	var deviation float64

	switch {
	case value < r.Min:
		deviation = (r.Min - value) / width
	case value > r.Max:
		deviation = (value - r.Max) / width
	default:
		return models.SeverityLow
	}

	switch {
	case deviation > 2.0:
		return models.SeverityCritical
	case deviation > 1.0:
		return models.SeverityHigh
	case deviation > 0.5:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// ExpectedRange renders the safe range as stored on utility anomaly rows,
// e.g. "20-300 L/min".
func ExpectedRange(readingType models.TelemetryType, unit string) string {
	r := SafeRange(readingType)
	return fmt.Sprintf("%g-%g %s", r.Min, r.Max, unit)
}
