package db

import (
	"context"
	"fmt"
)

// schemaStatements bootstraps the tables this service writes to. Structures
// and sensors are provisioned by the management application; the DDL here is
// idempotent and only fills in what a fresh environment is missing.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS structures (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		structure_type TEXT NOT NULL,
		zone TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		installed_at TIMESTAMPTZ,
		expected_lifespan_years DOUBLE PRECISION NOT NULL DEFAULT 0,
		condition_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		risk_score DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS iot_sensors (
		id TEXT PRIMARY KEY,
		sensor_code TEXT NOT NULL UNIQUE,
		sensor_type TEXT NOT NULL,
		topic_name TEXT NOT NULL DEFAULT '',
		zone TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		structure_id TEXT NOT NULL REFERENCES structures(id),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_subscribed BOOLEAN NOT NULL DEFAULT TRUE,
		last_heartbeat TIMESTAMPTZ,
		installed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS sensor_telemetry (
		id TEXT PRIMARY KEY,
		sensor_id TEXT NOT NULL REFERENCES iot_sensors(id),
		timestamp TIMESTAMPTZ NOT NULL,
		reading_type TEXT NOT NULL,
		value DOUBLE PRECISION NOT NULL,
		unit TEXT NOT NULL DEFAULT '',
		raw_payload JSONB
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sensor_telemetry_sensor_ts
		ON sensor_telemetry (sensor_id, timestamp DESC)`,
	`CREATE TABLE IF NOT EXISTS utility_anomalies (
		id TEXT PRIMARY KEY,
		sensor_id TEXT NOT NULL REFERENCES iot_sensors(id),
		anomaly_type TEXT NOT NULL,
		severity TEXT NOT NULL,
		detected_value DOUBLE PRECISION NOT NULL,
		expected_range TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		detected_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ml_anomaly_detections (
		id TEXT PRIMARY KEY,
		telemetry_id TEXT NOT NULL REFERENCES sensor_telemetry(id),
		sensor_id TEXT NOT NULL REFERENCES iot_sensors(id),
		reading_type TEXT NOT NULL,
		value DOUBLE PRECISION NOT NULL,
		is_anomaly BOOLEAN NOT NULL,
		anomaly_score DOUBLE PRECISION NOT NULL,
		model_version TEXT NOT NULL DEFAULT '',
		detected_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ml_failure_predictions (
		id TEXT PRIMARY KEY,
		structure_id TEXT NOT NULL REFERENCES structures(id),
		failure_probability DOUBLE PRECISION NOT NULL,
		failure_risk TEXT NOT NULL,
		failure_within_24h BOOLEAN NOT NULL,
		confidence DOUBLE PRECISION NOT NULL,
		model_version TEXT NOT NULL DEFAULT '',
		predicted_at TIMESTAMPTZ NOT NULL,
		valid_until TIMESTAMPTZ NOT NULL
	)`,
}

func (db *DB) initSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToInit, err)
		}
	}

	return nil
}
