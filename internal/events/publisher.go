// Package events publishes job lifecycle events.
//
// Publishing is best effort: a failed publish is logged and counted but
// never fails the invocation that triggered it.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"audio-summarizer-pipeline/internal/observability/metrics"
)

// Publisher publishes job lifecycle events to a single Kafka topic, keyed by
// job name. When disabled it runs in log-only mode.
type Publisher struct {
	writer    *kafka.Writer
	principal string
	topic     string
	enabled   bool
	metrics   *metrics.Metrics
}

// Config holds Kafka publisher configuration.
type Config struct {
	Brokers   []string
	Topic     string
	Principal string
	Enabled   bool
}

// New creates a lifecycle event publisher.
func New(cfg *Config) *Publisher {
	m := metrics.DefaultMetrics

	if cfg == nil || !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, lifecycle events in log-only mode")
		p := &Publisher{enabled: false, metrics: m}
		if cfg != nil {
			p.principal = cfg.Principal
			p.topic = cfg.Topic
		}
		return p
	}

	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    &kafka.Transport{Dial: dialer.DialFunc},
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.Topic).
		Str("principal", cfg.Principal).
		Msg("Kafka lifecycle publisher initialized")

	return &Publisher{
		writer:    writer,
		principal: cfg.Principal,
		topic:     cfg.Topic,
		enabled:   true,
		metrics:   m,
	}
}

// Publish emits one lifecycle event keyed by job name. eventType is carried
// as a message header and the metrics label.
func (p *Publisher) Publish(ctx context.Context, eventType, jobName string, event any) error {
	start := time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("eventType", eventType).Msg("Failed to marshal lifecycle event")
		return err
	}

	log.Debug().
		Str("principal", p.principal).
		Str("eventType", eventType).
		Str("jobName", jobName).
		RawJSON("payload", payload).
		Msg("Publishing lifecycle event")

	if !p.enabled || p.writer == nil {
		p.metrics.RecordPublish(eventType, nil, time.Since(start))
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(jobName),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(eventType)},
			{Key: "principal", Value: []byte(p.principal)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Error().
			Err(err).
			Str("eventType", eventType).
			Str("jobName", jobName).
			Msg("Failed to write lifecycle event to Kafka")
		p.metrics.RecordPublish(eventType, err, time.Since(start))
		return err
	}

	p.metrics.RecordPublish(eventType, nil, time.Since(start))
	return nil
}

// Close closes the Kafka writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
