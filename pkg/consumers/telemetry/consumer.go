package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/civicworks/infrapulse/pkg/logger"
	"github.com/civicworks/infrapulse/pkg/metrics"
)

const (
	defaultMaxPullMessages = 10
	defaultPullExpiry      = 30 * time.Second
	defaultAckWait         = 30 * time.Second
	defaultMaxRetries      = 3
	defaultMaxAckPending   = 1000
)

// pullConsumer is the slice of jetstream.Consumer the fetch loop needs.
type pullConsumer interface {
	Fetch(batch int, opts ...jetstream.FetchOpt) (jetstream.MessageBatch, error)
}

// Consumer wraps a durable JetStream pull consumer over the telemetry
// subjects. Messages are processed strictly sequentially, which preserves
// per-subject ordering and keeps the batching window race-free.
type Consumer struct {
	js           jetstream.JetStream
	streamName   string
	consumerName string
	consumer     pullConsumer
	logger       logger.Logger
}

// NewConsumer creates or retrieves the durable pull consumer for the given
// stream and subjects.
func NewConsumer(ctx context.Context, js jetstream.JetStream, streamName, consumerName string, subjects []string, log logger.Logger) (*Consumer, error) {
	consumer, err := js.Consumer(ctx, streamName, consumerName)
	if err != nil {
		cfg := jetstream.ConsumerConfig{
			Durable:       consumerName,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       defaultAckWait,
			MaxDeliver:    defaultMaxRetries,
			MaxAckPending: defaultMaxAckPending,
		}

		if len(subjects) == 1 {
			cfg.FilterSubject = subjects[0]
		} else if len(subjects) > 1 {
			cfg.FilterSubjects = subjects
		}

		consumer, err = js.CreateConsumer(ctx, streamName, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create consumer: %w", err)
		}

		log.Info().
			Str("stream", streamName).
			Str("consumer", consumerName).
			Strs("subjects", subjects).
			Msg("Created pull consumer")
	} else {
		log.Info().
			Str("stream", streamName).
			Str("consumer", consumerName).
			Msg("Using existing pull consumer")
	}

	return &Consumer{
		js:           js,
		streamName:   streamName,
		consumerName: consumerName,
		consumer:     consumer,
		logger:       log,
	}, nil
}

// handleMessage runs the processor and acks or naks based on its explicit
// outcome. After MaxDeliver attempts a retryable message is acked away so a
// poison message cannot wedge the stream.
func (c *Consumer) handleMessage(ctx context.Context, msg jetstream.Msg, processor *Processor) {
	metadata, _ := msg.Metadata()

	metrics.MessagesConsumed.WithLabelValues(msg.Subject()).Inc()

	start := time.Now()
	result := processor.Process(ctx, msg.Data())
	metrics.ProcessingDuration.Observe(time.Since(start).Seconds())

	switch result.Outcome {
	case OutcomeDiscarded:
		metrics.MessagesDiscarded.WithLabelValues(result.Reason).Inc()
		c.logger.Warn().
			Str("subject", msg.Subject()).
			Str("reason", result.Reason).
			Msg("Discarding message")

		_ = msg.Ack()
	case OutcomeRetry:
		c.logger.Error().Err(result.Err).
			Str("subject", msg.Subject()).
			Msg("Failed to process message")

		if metadata != nil && metadata.NumDelivered >= defaultMaxRetries {
			c.logger.Error().
				Str("subject", msg.Subject()).
				Uint64("deliveries", metadata.NumDelivered).
				Msg("Max retries reached, acknowledging message")

			_ = msg.Ack()

			return
		}

		metrics.MessagesRetried.Inc()

		_ = msg.Nak()
	default:
		_ = msg.Ack()
	}
}

// ProcessMessages continuously fetches and processes messages until the
// context is canceled or the connection is gone.
func (c *Consumer) ProcessMessages(ctx context.Context, processor *Processor) error {
	c.logger.Info().
		Str("stream", c.streamName).
		Str("consumer", c.consumerName).
		Msg("Starting pull consumer")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("Stopping message processing due to context cancellation")
			return nil
		default:
			msgs, err := c.consumer.Fetch(defaultMaxPullMessages, jetstream.FetchMaxWait(defaultPullExpiry))
			if err != nil {
				if errors.Is(err, nats.ErrConnectionClosed) || errors.Is(err, nats.ErrNoResponders) {
					return err
				}

				c.logger.Error().Err(err).Msg("Failed to fetch messages")
				time.Sleep(time.Second)

				continue
			}

			for msg := range msgs.Messages() {
				c.handleMessage(ctx, msg, processor)
			}

			if fetchErr := msgs.Error(); fetchErr != nil && !errors.Is(fetchErr, nats.ErrTimeout) {
				c.logger.Warn().Err(fetchErr).Msg("Fetch error")
			}
		}
	}
}
