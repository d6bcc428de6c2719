// Package events publishes sync-run events to Kafka for downstream
// consumers (dashboards, alerting). Publishing is best effort.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"stocksync/internal/logger"
)

type Event struct {
	Type        string    `json:"type"`
	RunID       string    `json:"run_id"`
	Target      string    `json:"target"`
	TotalOffers int       `json:"total_offers"`
	InStock     int       `json:"in_stock"`
	ItemErrors  int       `json:"item_errors"`
	Timestamp   time.Time `json:"timestamp"`
}

type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewPublisher(brokers, topic string, logger *logger.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: time.Second,
	}
	return &Publisher{
		writer: writer,
		logger: logger,
	}
}

// PublishRunCompleted emits one sync.completed event per target run.
func (p *Publisher) PublishRunCompleted(ctx context.Context, event Event) error {
	event.Type = "sync.completed"
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Target),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	p.logger.Debug("published %s event for %s", event.Type, event.Target)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
