package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicworks/infrapulse/pkg/batch"
	"github.com/civicworks/infrapulse/pkg/models"
)

func validConfig() *ConsumerConfig {
	return &ConsumerConfig{
		ListenAddr:   ":8090",
		NATSURL:      "nats://localhost:4222",
		StreamName:   "IOT_TELEMETRY",
		ConsumerName: "telemetry-consumer",
		MLAPIURL:     "http://localhost:8000",
		Database: models.Database{
			Host: "localhost",
			Port: 5432,
			Name: "infrapulse",
		},
	}
}

func TestConsumerConfigValidateAppliesDefaults(t *testing.T) {
	cfg := validConfig()

	require.NoError(t, cfg.Validate())

	assert.Equal(t, defaultSubjects, cfg.Subjects)
	assert.Equal(t, batch.DefaultSize, cfg.BatchSize)
}

func TestConsumerConfigValidateKeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Subjects = []string{"iot.telemetry.water"}
	cfg.BatchSize = 12

	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"iot.telemetry.water"}, cfg.Subjects)
	assert.Equal(t, 12, cfg.BatchSize)
}

func TestConsumerConfigValidateMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConsumerConfig)
		wantErr error
	}{
		{
			name:    "missing listen addr",
			mutate:  func(c *ConsumerConfig) { c.ListenAddr = "" },
			wantErr: ErrMissingListenAddr,
		},
		{
			name:    "missing nats url",
			mutate:  func(c *ConsumerConfig) { c.NATSURL = "" },
			wantErr: ErrMissingNATSURL,
		},
		{
			name:    "missing stream name",
			mutate:  func(c *ConsumerConfig) { c.StreamName = "" },
			wantErr: ErrMissingStreamName,
		},
		{
			name:    "missing consumer name",
			mutate:  func(c *ConsumerConfig) { c.ConsumerName = "" },
			wantErr: ErrMissingConsumerName,
		},
		{
			name:    "missing ml api url",
			mutate:  func(c *ConsumerConfig) { c.MLAPIURL = "" },
			wantErr: ErrMissingMLAPIURL,
		},
		{
			name:    "missing database host",
			mutate:  func(c *ConsumerConfig) { c.Database.Host = "" },
			wantErr: ErrMissingDatabaseConfig,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestConsumerConfigValidateJoinsAllErrors(t *testing.T) {
	cfg := &ConsumerConfig{}

	err := cfg.Validate()
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrMissingListenAddr)
	assert.ErrorIs(t, err, ErrMissingNATSURL)
	assert.ErrorIs(t, err, ErrMissingStreamName)
	assert.ErrorIs(t, err, ErrMissingConsumerName)
	assert.ErrorIs(t, err, ErrMissingMLAPIURL)
	assert.ErrorIs(t, err, ErrMissingDatabaseConfig)
}
