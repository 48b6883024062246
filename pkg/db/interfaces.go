// Package db implements the relational persistence adapter for the
// telemetry pipeline.
package db

import (
	"context"
	"time"

	"github.com/civicworks/infrapulse/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/civicworks/infrapulse/pkg/db Service

// Service represents all database operations the pipeline needs. All writes
// are write-once rows; duplicates under at-least-once redelivery are
// accepted rather than deduplicated.
type Service interface {
	Close() error

	// Sensor operations.

	GetSensorByCode(ctx context.Context, sensorCode string) (*models.Sensor, error)
	UpdateSensorHeartbeat(ctx context.Context, sensorID string, seenAt time.Time) error

	// Telemetry and anomaly writes.

	StoreTelemetry(ctx context.Context, telemetry *models.SensorTelemetry) error
	StoreUtilityAnomaly(ctx context.Context, anomaly *models.UtilityAnomaly) error
	StoreMLAnomalyDetection(ctx context.Context, detection *models.MLAnomalyDetection) error
	StoreMLFailurePrediction(ctx context.Context, prediction *models.MLFailurePrediction) error
}
