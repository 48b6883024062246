package thresholds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civicworks/infrapulse/pkg/models"
)

func TestSafeRange(t *testing.T) {
	tests := []struct {
		name        string
		readingType models.TelemetryType
		expected    Range
	}{
		{
			name:        "flow rate",
			readingType: models.TelemetryTypeFlowRate,
			expected:    Range{Min: 20.0, Max: 300.0},
		},
		{
			name:        "voltage",
			readingType: models.TelemetryTypeVoltage,
			expected:    Range{Min: 215.0, Max: 245.0},
		},
		{
			name:        "temperature allows negative values",
			readingType: models.TelemetryTypeTemperature,
			expected:    Range{Min: -5.0, Max: 50.0},
		},
		{
			name:        "unknown type falls back to default",
			readingType: models.TelemetryType("HUMIDITY"),
			expected:    Range{Min: 0, Max: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeRange(tt.readingType))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		readingType models.TelemetryType
		value       float64
		expected    models.AnomalyType
	}{
		{
			name:        "flow rate below half minimum is a water leak",
			readingType: models.TelemetryTypeFlowRate,
			value:       8.0,
			expected:    models.AnomalyTypeWaterLeak,
		},
		{
			name:        "flow rate between half minimum and minimum is sensor failure",
			readingType: models.TelemetryTypeFlowRate,
			value:       15.0,
			expected:    models.AnomalyTypeSensorFailure,
		},
		{
			name:        "pressure below minimum is a pressure drop",
			readingType: models.TelemetryTypePressure,
			value:       5.0,
			expected:    models.AnomalyTypePressureDrop,
		},
		{
			name:        "voltage above maximum is a power surge",
			readingType: models.TelemetryTypeVoltage,
			value:       250.0,
			expected:    models.AnomalyTypePowerSurge,
		},
		{
			name:        "voltage below minimum is a power surge",
			readingType: models.TelemetryTypeVoltage,
			value:       200.0,
			expected:    models.AnomalyTypePowerSurge,
		},
		{
			name:        "current above maximum is an overload",
			readingType: models.TelemetryTypeCurrent,
			value:       90.0,
			expected:    models.AnomalyTypeOverload,
		},
		{
			name:        "current below minimum falls back to sensor failure",
			readingType: models.TelemetryTypeCurrent,
			value:       1.0,
			expected:    models.AnomalyTypeSensorFailure,
		},
		{
			name:        "out-of-range vibration falls back to sensor failure",
			readingType: models.TelemetryTypeVibration,
			value:       20.0,
			expected:    models.AnomalyTypeSensorFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.readingType, tt.value))
		})
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		name        string
		readingType models.TelemetryType
		value       float64
		expected    models.Severity
	}{
		{
			name:        "in-range value is always low",
			readingType: models.TelemetryTypeVoltage,
			value:       230.0,
			expected:    models.SeverityLow,
		},
		{
			// deviation = (250-245)/(245-215) = 0.167
			name:        "voltage slightly above maximum is low",
			readingType: models.TelemetryTypeVoltage,
			value:       250.0,
			expected:    models.SeverityLow,
		},
		{
			// deviation = (265-245)/30 = 0.667
			name:        "voltage well above maximum is medium",
			readingType: models.TelemetryTypeVoltage,
			value:       265.0,
			expected:    models.SeverityMedium,
		},
		{
			// deviation = (290-245)/30 = 1.5
			name:        "voltage far above maximum is high",
			readingType: models.TelemetryTypeVoltage,
			value:       290.0,
			expected:    models.SeverityHigh,
		},
		{
			// deviation = (330-245)/30 = 2.83
			name:        "voltage extremely above maximum is critical",
			readingType: models.TelemetryTypeVoltage,
			value:       330.0,
			expected:    models.SeverityCritical,
		},
		{
			// deviation = (0.1 - 0.05)/11.9, well under 0.5
			name:        "vibration just below minimum is low",
			readingType: models.TelemetryTypeVibration,
			value:       0.05,
			expected:    models.SeverityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Severity(tt.readingType, tt.value))
		})
	}
}

func TestShouldFlag(t *testing.T) {
	// out-of-range alone triggers
	assert.True(t, ShouldFlag(models.TelemetryTypeCurrent, 90.0, false))
	// producer flag alone triggers
	assert.True(t, ShouldFlag(models.TelemetryTypeCurrent, 40.0, true))
	// neither signal, no flag
	assert.False(t, ShouldFlag(models.TelemetryTypeCurrent, 40.0, false))
}

func TestExpectedRange(t *testing.T) {
	assert.Equal(t, "20-300 L/min", ExpectedRange(models.TelemetryTypeFlowRate, "L/min"))
	assert.Equal(t, "-5-50 C", ExpectedRange(models.TelemetryTypeTemperature, "C"))
}
