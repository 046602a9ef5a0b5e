package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IBM/sarama"

	"parcel-marketplace/internal/domain"
)

// Producer publishes delivery lifecycle events, keyed by delivery id so that
// events of one delivery stay ordered within a partition.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer connects a synchronous producer.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	// без брокеров публикация выключена
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	// retries are done by the caller with backoff
	cfg.Producer.Retry.Max = 0

	p, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return NewProducerFrom(p, topic), nil
}

// NewProducerFrom wraps an existing sarama producer.
func NewProducerFrom(p sarama.SyncProducer, topic string) *Producer {
	return &Producer{producer: p, topic: topic}
}

// Publish sends one event and waits for the broker acknowledgement.
func (p *Producer) Publish(ctx context.Context, ev domain.DeliveryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := p.message(ev)
	if err != nil {
		return Permanent(ev.ID, err)
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send delivery event %s: %w", ev.ID, err)
	}
	return nil
}

func (p *Producer) message(ev domain.DeliveryEvent) (*sarama.ProducerMessage, error) {
	if strings.TrimSpace(ev.DeliveryID) == "" {
		return nil, fmt.Errorf("event %q has no delivery id", ev.ID)
	}
	b, err := json.Marshal(FromDomain(ev))
	if err != nil {
		return nil, fmt.Errorf("marshal delivery event: %w", err)
	}
	return &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.DeliveryID),
		Value: sarama.ByteEncoder(b),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte("delivery." + string(ev.To))},
		},
	}, nil
}

// Close flushes and closes the producer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
