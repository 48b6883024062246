package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/civicworks/infrapulse/pkg/models"
)

const selectSensorByCodeSQL = `
SELECT
    s.id,
    s.sensor_code,
    s.sensor_type,
    s.topic_name,
    s.zone,
    s.latitude,
    s.longitude,
    s.structure_id,
    s.is_active,
    s.is_subscribed,
    s.last_heartbeat,
    s.installed_at,
    st.id,
    st.name,
    st.structure_type,
    st.zone,
    st.latitude,
    st.longitude,
    st.installed_at,
    st.expected_lifespan_years,
    st.condition_score,
    st.risk_score
FROM iot_sensors s
JOIN structures st ON st.id = s.structure_id
WHERE s.sensor_code = $1`

// GetSensorByCode looks up a sensor together with its owning structure.
// Returns ErrSensorNotFound when no sensor matches the code.
func (db *DB) GetSensorByCode(ctx context.Context, sensorCode string) (*models.Sensor, error) {
	sensor := &models.Sensor{Structure: &models.Structure{}}

	var lastHeartbeat, sensorInstalledAt, structureInstalledAt *time.Time

	err := db.pool.QueryRow(ctx, selectSensorByCodeSQL, sensorCode).Scan(
		&sensor.ID,
		&sensor.SensorCode,
		&sensor.SensorType,
		&sensor.TopicName,
		&sensor.Zone,
		&sensor.Latitude,
		&sensor.Longitude,
		&sensor.StructureID,
		&sensor.IsActive,
		&sensor.IsSubscribed,
		&lastHeartbeat,
		&sensorInstalledAt,
		&sensor.Structure.ID,
		&sensor.Structure.Name,
		&sensor.Structure.StructureType,
		&sensor.Structure.Zone,
		&sensor.Structure.Latitude,
		&sensor.Structure.Longitude,
		&structureInstalledAt,
		&sensor.Structure.ExpectedLifespanYears,
		&sensor.Structure.ConditionScore,
		&sensor.Structure.RiskScore,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrSensorNotFound, sensorCode)
		}

		return nil, fmt.Errorf("%w: sensor lookup: %w", ErrFailedToQuery, err)
	}

	sensor.LastHeartbeat = lastHeartbeat

	if sensorInstalledAt != nil {
		sensor.InstalledAt = *sensorInstalledAt
	}

	if structureInstalledAt != nil {
		sensor.Structure.InstalledAt = *structureInstalledAt
	}

	return sensor, nil
}

const updateHeartbeatSQL = `UPDATE iot_sensors SET last_heartbeat = $2 WHERE id = $1`

// UpdateSensorHeartbeat records the last time a sensor was heard from.
func (db *DB) UpdateSensorHeartbeat(ctx context.Context, sensorID string, seenAt time.Time) error {
	if _, err := db.pool.Exec(ctx, updateHeartbeatSQL, sensorID, seenAt); err != nil {
		return fmt.Errorf("%w: sensor heartbeat: %w", ErrFailedToInsert, err)
	}

	return nil
}
