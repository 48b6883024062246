package telemetry

import (
	"context"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/civicworks/infrapulse/pkg/db"
	"github.com/civicworks/infrapulse/pkg/lifecycle"
	"github.com/civicworks/infrapulse/pkg/logger"
	"github.com/civicworks/infrapulse/pkg/ml"
)

// Service ties the NATS connection, pull consumer, and processor together
// behind the lifecycle.Service contract.
type Service struct {
	cfg       *ConsumerConfig
	nc        *nats.Conn
	js        jetstream.JetStream
	consumer  *Consumer
	processor *Processor
	db        db.Service
	logger    logger.Logger
	wg        sync.WaitGroup
}

// NewService validates the config and assembles the consumer service.
func NewService(cfg *ConsumerConfig, dbService db.Service, mlService ml.Service, log logger.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Service{
		cfg:       cfg,
		processor: NewProcessor(dbService, mlService, cfg.BatchSize, log),
		db:        dbService,
		logger:    log,
	}, nil
}

// Start connects to NATS, resolves the stream, and launches the fetch loop.
func (s *Service) Start(ctx context.Context) error {
	nc, err := nats.Connect(s.cfg.NATSURL)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}

	s.nc = nc

	var js jetstream.JetStream
	if s.cfg.Domain != "" {
		js, err = jetstream.NewWithDomain(nc, s.cfg.Domain)
	} else {
		js, err = jetstream.New(nc)
	}

	if err != nil {
		nc.Close()
		return err
	}

	s.js = js

	stream, err := js.Stream(ctx, s.cfg.StreamName)
	if err != nil {
		nc.Close()
		return fmt.Errorf("failed to get stream %s: %w", s.cfg.StreamName, err)
	}

	if _, err = stream.Info(ctx); err != nil {
		nc.Close()
		return fmt.Errorf("failed to get stream info: %w", err)
	}

	s.consumer, err = NewConsumer(ctx, js, s.cfg.StreamName, s.cfg.ConsumerName, s.cfg.Subjects, s.logger)
	if err != nil {
		nc.Close()
		return err
	}

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		if err := s.consumer.ProcessMessages(ctx, s.processor); err != nil {
			s.logger.Error().Err(err).Msg("Consumer loop exited")
		}
	}()

	s.logger.Info().
		Str("stream", s.cfg.StreamName).
		Str("consumer", s.cfg.ConsumerName).
		Strs("subjects", s.cfg.Subjects).
		Msg("Telemetry consumer started")

	return nil
}

// Stop closes the NATS connection and waits for the fetch loop to drain.
// Partial batches in the processor's window are not flushed; their readings
// never reach failure prediction.
func (s *Service) Stop(_ context.Context) error {
	if s.db != nil {
		_ = s.db.Close()
	}

	if s.nc != nil {
		s.nc.Close()
	}

	s.wg.Wait()

	s.logger.Info().Msg("Telemetry consumer stopped")

	return nil
}

var _ lifecycle.Service = (*Service)(nil)
