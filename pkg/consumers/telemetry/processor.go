package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/civicworks/infrapulse/pkg/batch"
	"github.com/civicworks/infrapulse/pkg/db"
	"github.com/civicworks/infrapulse/pkg/logger"
	"github.com/civicworks/infrapulse/pkg/metrics"
	"github.com/civicworks/infrapulse/pkg/ml"
	"github.com/civicworks/infrapulse/pkg/models"
	"github.com/civicworks/infrapulse/pkg/thresholds"
)

const (
	anomalyModelVersion    = "isolation-forest-v1"
	predictionModelVersion = "lstm-v1"

	// The inference service does not report confidence yet; rows carry a
	// fixed default until it does.
	defaultPredictionConfidence = 0.8

	predictionValidity = 24 * time.Hour
)

// Processor runs the per-message pipeline: validation gate, telemetry
// persistence, per-reading scoring, heartbeat, batching, and rule-based
// anomaly detection.
type Processor struct {
	db     db.Service
	ml     ml.Service
	window *batch.Window
	logger logger.Logger
}

// NewProcessor creates a processor with its own batching window. The window
// is per-processor state: partial batches do not survive a restart.
func NewProcessor(dbService db.Service, mlService ml.Service, batchSize int, log logger.Logger) *Processor {
	p := &Processor{
		db:     dbService,
		ml:     mlService,
		logger: log,
	}
	p.window = batch.NewWindow(batchSize, p.flushBatch, log)

	return p
}

// Process handles one delivered message and returns a tagged Result driving
// the caller's ack decision.
func (p *Processor) Process(ctx context.Context, data []byte) Result {
	var msg models.TelemetryMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		p.logger.Warn().Err(err).Msg("Failed to parse telemetry payload")
		return discarded(reasonMalformedPayload)
	}

	sensor, gate := p.validateSensor(ctx, msg.SensorCode)
	if gate != nil {
		return *gate
	}

	telemetry := &models.SensorTelemetry{
		SensorID:    sensor.ID,
		Timestamp:   msg.Timestamp,
		ReadingType: msg.ReadingType,
		Value:       msg.Value,
		Unit:        msg.Unit,
		RawPayload:  json.RawMessage(data),
	}

	if err := p.db.StoreTelemetry(ctx, telemetry); err != nil {
		return retryable(err)
	}

	p.logger.Debug().
		Str("sensor_code", sensor.SensorCode).
		Float64("value", msg.Value).
		Str("unit", msg.Unit).
		Msg("Stored telemetry")

	if mlType, ok := ml.MapReadingType(msg.ReadingType); ok {
		if err := p.scoreReading(ctx, sensor, telemetry, mlType); err != nil {
			return retryable(err)
		}
	}

	if err := p.db.UpdateSensorHeartbeat(ctx, sensor.ID, time.Now()); err != nil {
		return retryable(err)
	}

	p.window.Add(ctx, sensor.StructureID, msg)

	if thresholds.ShouldFlag(msg.ReadingType, msg.Value, msg.Metadata.IsAnomaly) {
		if err := p.storeRuleAnomaly(ctx, sensor, &msg); err != nil {
			return retryable(err)
		}
	}

	return processed()
}

// validateSensor is the validation gate: it looks up the sensor with its
// owning structure and decides accept or discard. A discard short-circuits
// all downstream processing and is never retried.
func (p *Processor) validateSensor(ctx context.Context, sensorCode string) (*models.Sensor, *Result) {
	sensor, err := p.db.GetSensorByCode(ctx, sensorCode)
	if err != nil {
		if errors.Is(err, db.ErrSensorNotFound) {
			r := discarded(reasonUnknownSensor)
			return nil, &r
		}

		r := retryable(err)

		return nil, &r
	}

	if !sensor.IsSubscribed {
		r := discarded(reasonNotSubscribed)
		return nil, &r
	}

	if !sensor.IsActive {
		r := discarded(reasonInactive)
		return nil, &r
	}

	return sensor, nil
}

// scoreReading runs per-reading anomaly inference and persists the result,
// anomalous or not. Inference failures are logged and swallowed so ML
// unavailability never blocks ingestion; only the persistence of a received
// result is retryable.
func (p *Processor) scoreReading(ctx context.Context, sensor *models.Sensor, telemetry *models.SensorTelemetry, mlType ml.MLType) error {
	resp, err := p.ml.DetectAnomalies(ctx, []ml.Reading{
		{Value: telemetry.Value, ReadingType: mlType},
	})
	if err != nil {
		metrics.MLRequests.WithLabelValues("anomaly_detect", "error").Inc()
		p.logger.Error().Err(err).
			Str("sensor_code", sensor.SensorCode).
			Msg("Anomaly scoring failed, continuing without ML result")

		return nil
	}

	metrics.MLRequests.WithLabelValues("anomaly_detect", "ok").Inc()

	if len(resp.Results) == 0 {
		p.logger.Warn().
			Str("sensor_code", sensor.SensorCode).
			Msg("Anomaly scoring returned no results")

		return nil
	}

	result := resp.Results[0]

	detection := &models.MLAnomalyDetection{
		TelemetryID:  telemetry.ID,
		SensorID:     sensor.ID,
		ReadingType:  telemetry.ReadingType,
		Value:        telemetry.Value,
		IsAnomaly:    result.IsAnomaly,
		AnomalyScore: result.AnomalyScore,
		ModelVersion: anomalyModelVersion,
		DetectedAt:   time.Now(),
	}

	return p.db.StoreMLAnomalyDetection(ctx, detection)
}

// storeRuleAnomaly derives type and severity for a flagged reading and
// persists the utility anomaly.
func (p *Processor) storeRuleAnomaly(ctx context.Context, sensor *models.Sensor, msg *models.TelemetryMessage) error {
	anomaly := &models.UtilityAnomaly{
		SensorID:      sensor.ID,
		AnomalyType:   thresholds.Classify(msg.ReadingType, msg.Value),
		Severity:      thresholds.Severity(msg.ReadingType, msg.Value),
		DetectedValue: msg.Value,
		ExpectedRange: thresholds.ExpectedRange(msg.ReadingType, msg.Unit),
		Latitude:      sensor.Latitude,
		Longitude:     sensor.Longitude,
		DetectedAt:    msg.Timestamp,
	}

	if err := p.db.StoreUtilityAnomaly(ctx, anomaly); err != nil {
		return err
	}

	metrics.UtilityAnomalies.WithLabelValues(string(anomaly.AnomalyType), string(anomaly.Severity)).Inc()

	p.logger.Warn().
		Str("sensor_code", sensor.SensorCode).
		Str("anomaly_type", string(anomaly.AnomalyType)).
		Str("severity", string(anomaly.Severity)).
		Float64("value", msg.Value).
		Str("expected_range", anomaly.ExpectedRange).
		Msg("Utility anomaly created")

	return nil
}

// flushBatch is the batching window's flush callback. Errors are handled
// here and never propagate: a failed flush loses its readings to failure
// prediction, while their individual telemetry rows remain untouched.
func (p *Processor) flushBatch(ctx context.Context, structureID string, readings []models.TelemetryMessage) {
	sequence := make([]ml.SequenceReading, 0, len(readings))

	for _, r := range readings {
		mlType, ok := ml.MapReadingType(r.ReadingType)
		if !ok {
			continue
		}

		sequence = append(sequence, ml.SequenceReading{
			Timestamp:   r.Timestamp.UTC().Format(time.RFC3339),
			SensorID:    r.SensorCode,
			ReadingType: mlType,
			Value:       r.Value,
		})
	}

	resp, err := p.ml.PredictFailure(ctx, sequence)
	if err != nil {
		if errors.Is(err, ml.ErrInsufficientReadings) {
			metrics.BatchFlushes.WithLabelValues("skipped").Inc()
			p.logger.Warn().Err(err).
				Str("structure_id", structureID).
				Msg("Skipping failure prediction")

			return
		}

		metrics.MLRequests.WithLabelValues("failure_predict", "error").Inc()
		metrics.BatchFlushes.WithLabelValues("error").Inc()
		p.logger.Error().Err(err).
			Str("structure_id", structureID).
			Msg("Failure prediction failed, batch dropped")

		return
	}

	metrics.MLRequests.WithLabelValues("failure_predict", "ok").Inc()

	if len(resp.Predictions) == 0 {
		metrics.BatchFlushes.WithLabelValues("skipped").Inc()
		p.logger.Warn().
			Str("structure_id", structureID).
			Msg("Failure prediction returned no predictions")

		return
	}

	prediction := resp.Predictions[0]
	now := time.Now()

	record := &models.MLFailurePrediction{
		StructureID:        structureID,
		FailureProbability: prediction.FailureProbability,
		FailureRisk:        coerceRisk(prediction.FailureRisk),
		FailureWithin24h:   prediction.PredictedFailure24h,
		Confidence:         defaultPredictionConfidence,
		ModelVersion:       predictionModelVersion,
		PredictedAt:        now,
		ValidUntil:         now.Add(predictionValidity),
	}

	if err := p.db.StoreMLFailurePrediction(ctx, record); err != nil {
		metrics.BatchFlushes.WithLabelValues("error").Inc()
		p.logger.Error().Err(err).
			Str("structure_id", structureID).
			Msg("Failed to store failure prediction, batch dropped")

		return
	}

	metrics.BatchFlushes.WithLabelValues("ok").Inc()

	p.logger.Info().
		Str("structure_id", structureID).
		Float64("failure_probability", record.FailureProbability).
		Str("failure_risk", string(record.FailureRisk)).
		Bool("failure_within_24h", record.FailureWithin24h).
		Msg("Stored failure prediction")
}

// coerceRisk maps the service's risk vocabulary onto severity levels.
// UNKNOWN (or anything unrecognized) is coerced to LOW.
func coerceRisk(risk string) models.Severity {
	switch models.Severity(risk) {
	case models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical:
		return models.Severity(risk)
	default:
		return models.SeverityLow
	}
}
