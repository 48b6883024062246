package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/civicworks/infrapulse/pkg/models"
)

const insertTelemetrySQL = `
INSERT INTO sensor_telemetry (
    id,
    sensor_id,
    timestamp,
    reading_type,
    value,
    unit,
    raw_payload
) VALUES ($1,$2,$3,$4,$5,$6,$7)`

// StoreTelemetry inserts one telemetry row. The row ID is generated here and
// written back to the model so callers can reference it.
func (db *DB) StoreTelemetry(ctx context.Context, telemetry *models.SensorTelemetry) error {
	if telemetry.ID == "" {
		telemetry.ID = uuid.New().String()
	}

	_, err := db.pool.Exec(ctx, insertTelemetrySQL,
		telemetry.ID,
		telemetry.SensorID,
		telemetry.Timestamp,
		telemetry.ReadingType,
		telemetry.Value,
		telemetry.Unit,
		telemetry.RawPayload,
	)
	if err != nil {
		return fmt.Errorf("%w: telemetry: %w", ErrFailedToInsert, err)
	}

	return nil
}

const insertUtilityAnomalySQL = `
INSERT INTO utility_anomalies (
    id,
    sensor_id,
    anomaly_type,
    severity,
    detected_value,
    expected_range,
    latitude,
    longitude,
    detected_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

// StoreUtilityAnomaly inserts one rule-based anomaly row.
func (db *DB) StoreUtilityAnomaly(ctx context.Context, anomaly *models.UtilityAnomaly) error {
	if anomaly.ID == "" {
		anomaly.ID = uuid.New().String()
	}

	_, err := db.pool.Exec(ctx, insertUtilityAnomalySQL,
		anomaly.ID,
		anomaly.SensorID,
		anomaly.AnomalyType,
		anomaly.Severity,
		anomaly.DetectedValue,
		anomaly.ExpectedRange,
		anomaly.Latitude,
		anomaly.Longitude,
		anomaly.DetectedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: utility anomaly: %w", ErrFailedToInsert, err)
	}

	return nil
}
