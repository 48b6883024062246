package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/civicworks/infrapulse/pkg/models"
)

const insertMLAnomalySQL = `
INSERT INTO ml_anomaly_detections (
    id,
    telemetry_id,
    sensor_id,
    reading_type,
    value,
    is_anomaly,
    anomaly_score,
    model_version,
    detected_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

// StoreMLAnomalyDetection inserts one per-reading inference result row.
func (db *DB) StoreMLAnomalyDetection(ctx context.Context, detection *models.MLAnomalyDetection) error {
	if detection.ID == "" {
		detection.ID = uuid.New().String()
	}

	_, err := db.pool.Exec(ctx, insertMLAnomalySQL,
		detection.ID,
		detection.TelemetryID,
		detection.SensorID,
		detection.ReadingType,
		detection.Value,
		detection.IsAnomaly,
		detection.AnomalyScore,
		detection.ModelVersion,
		detection.DetectedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: ml anomaly detection: %w", ErrFailedToInsert, err)
	}

	return nil
}

const insertFailurePredictionSQL = `
INSERT INTO ml_failure_predictions (
    id,
    structure_id,
    failure_probability,
    failure_risk,
    failure_within_24h,
    confidence,
    model_version,
    predicted_at,
    valid_until
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

// StoreMLFailurePrediction inserts one windowed prediction row.
func (db *DB) StoreMLFailurePrediction(ctx context.Context, prediction *models.MLFailurePrediction) error {
	if prediction.ID == "" {
		prediction.ID = uuid.New().String()
	}

	_, err := db.pool.Exec(ctx, insertFailurePredictionSQL,
		prediction.ID,
		prediction.StructureID,
		prediction.FailureProbability,
		prediction.FailureRisk,
		prediction.FailureWithin24h,
		prediction.Confidence,
		prediction.ModelVersion,
		prediction.PredictedAt,
		prediction.ValidUntil,
	)
	if err != nil {
		return fmt.Errorf("%w: ml failure prediction: %w", ErrFailedToInsert, err)
	}

	return nil
}
