package changefeed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// ChannelPrefix is prepended to the aggregate type to form the pub/sub
// channel name, e.g. changes:loan.
const ChannelPrefix = "changes:"

// Publisher defines the interface for publishing outbox events downstream.
type Publisher interface {
	Publish(ctx context.Context, event *domain.OutboxEvent) error
}

// Feed drains the transactional outbox and publishes each event to
// subscribers. Events survive crashes because they are written in the same
// transaction as the change they describe.
type Feed struct {
	outboxRepo usecase.OutboxRepository
	publisher  Publisher
	logger     zerolog.Logger
	batchSize  int
	interval   time.Duration
	retention  time.Duration
}

// Config for Feed.
type Config struct {
	OutboxRepo usecase.OutboxRepository
	Publisher  Publisher
	Logger     zerolog.Logger
	BatchSize  int           // Number of events to fetch per batch
	Interval   time.Duration // Polling interval
	Retention  time.Duration // How long published events are kept
}

// NewFeed creates a new Feed.
func NewFeed(cfg Config) *Feed {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.Interval == 0 {
		cfg.Interval = 1 * time.Second
	}
	if cfg.Retention == 0 {
		cfg.Retention = 24 * time.Hour
	}

	return &Feed{
		outboxRepo: cfg.OutboxRepo,
		publisher:  cfg.Publisher,
		logger:     cfg.Logger,
		batchSize:  cfg.BatchSize,
		interval:   cfg.Interval,
		retention:  cfg.Retention,
	}
}

// Start begins the changefeed worker.
// It runs continuously until the context is cancelled.
func (f *Feed) Start(ctx context.Context) error {
	f.logger.Info().
		Int("batch_size", f.batchSize).
		Dur("interval", f.interval).
		Msg("changefeed started")

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	// Process immediately on start
	if err := f.drain(ctx); err != nil {
		f.logger.Error().Err(err).Msg("error draining outbox on start")
	}

	for {
		select {
		case <-ctx.Done():
			f.logger.Info().Msg("changefeed shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := f.drain(ctx); err != nil {
				f.logger.Error().Err(err).Msg("error draining outbox")
			}
			if err := f.outboxRepo.DeletePublished(ctx, time.Now().Add(-f.retention)); err != nil {
				f.logger.Error().Err(err).Msg("error pruning published events")
			}
		}
	}
}

// drain fetches and publishes a batch of unpublished events.
func (f *Feed) drain(ctx context.Context) error {
	events, err := f.outboxRepo.GetUnpublished(ctx, f.batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	f.logger.Debug().Int("count", len(events)).Msg("publishing events")

	for _, event := range events {
		if err := f.publisher.Publish(ctx, event); err != nil {
			f.logger.Error().
				Err(err).
				Str("event_id", event.ID).
				Str("event_type", event.EventType).
				Msg("failed to publish event")
			// Continue processing other events even if one fails
			continue
		}

		// Mark as published
		if err := f.outboxRepo.MarkPublished(ctx, event.ID, time.Now()); err != nil {
			f.logger.Error().
				Err(err).
				Str("event_id", event.ID).
				Msg("failed to mark event as published")
			// Don't continue - we don't want to re-publish this event
		}
	}

	return nil
}

// envelope is the wire format delivered to subscribers.
type envelope struct {
	ID            string         `json:"id"`
	EventType     string         `json:"event_type"`
	AggregateType string         `json:"aggregate_type"`
	AggregateID   string         `json:"aggregate_id"`
	Payload       map[string]any `json:"payload"`
	CreatedAt     time.Time      `json:"created_at"`
}

// RedisPublisher publishes events to Redis pub/sub channels, one channel
// per aggregate type.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a new RedisPublisher.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Publish delivers the event to the changes:<aggregate_type> channel.
func (p *RedisPublisher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	data, err := json.Marshal(envelope{
		ID:            event.ID,
		EventType:     event.EventType,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		Payload:       event.Payload,
		CreatedAt:     event.CreatedAt,
	})
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, ChannelPrefix+event.AggregateType, data).Err()
}

// LogPublisher is a simple publisher that logs events. Useful when Redis
// is not configured.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event.
func (p *LogPublisher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}

	p.logger.Info().
		Str("event_id", event.ID).
		Str("event_type", event.EventType).
		Str("aggregate_type", event.AggregateType).
		Str("aggregate_id", event.AggregateID).
		RawJSON("payload", payload).
		Msg("event published")

	return nil
}
