package telemetry

import (
	"errors"

	"github.com/civicworks/infrapulse/pkg/batch"
	"github.com/civicworks/infrapulse/pkg/logger"
	"github.com/civicworks/infrapulse/pkg/models"
)

var (
	ErrMissingListenAddr     = errors.New("listen_addr is required")
	ErrMissingNATSURL        = errors.New("nats_url is required")
	ErrMissingStreamName     = errors.New("stream_name is required")
	ErrMissingConsumerName   = errors.New("consumer_name is required")
	ErrMissingMLAPIURL       = errors.New("ml_api_url is required")
	ErrMissingDatabaseConfig = errors.New("database configuration is required")
)

// defaultSubjects are the four fixed telemetry topics, one per physical
// medium.
var defaultSubjects = []string{
	"iot.telemetry.water",
	"iot.telemetry.energy",
	"iot.telemetry.pressure",
	"iot.telemetry.vibration",
}

// ConsumerConfig configures the telemetry consumer service.
type ConsumerConfig struct {
	ListenAddr   string   `json:"listen_addr"`
	NATSURL      string   `json:"nats_url"`
	Domain       string   `json:"domain"`
	StreamName   string   `json:"stream_name"`
	ConsumerName string   `json:"consumer_name"`
	Subjects     []string `json:"subjects"`

	MLAPIURL            string `json:"ml_api_url"`
	MLRequestTimeoutSec int    `json:"ml_request_timeout_seconds"`

	BatchSize int `json:"batch_size"`

	Database models.Database `json:"database"`
	Logging  *logger.Config  `json:"logging"`
}

// Validate checks required fields and applies defaults for optional ones.
func (c *ConsumerConfig) Validate() error {
	var errs []error

	if c.ListenAddr == "" {
		errs = append(errs, ErrMissingListenAddr)
	}

	if c.NATSURL == "" {
		errs = append(errs, ErrMissingNATSURL)
	}

	if c.StreamName == "" {
		errs = append(errs, ErrMissingStreamName)
	}

	if c.ConsumerName == "" {
		errs = append(errs, ErrMissingConsumerName)
	}

	if c.MLAPIURL == "" {
		errs = append(errs, ErrMissingMLAPIURL)
	}

	if c.Database.Host == "" || c.Database.Name == "" {
		errs = append(errs, ErrMissingDatabaseConfig)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if len(c.Subjects) == 0 {
		c.Subjects = defaultSubjects
	}

	if c.BatchSize < 1 {
		c.BatchSize = batch.DefaultSize
	}

	return nil
}
