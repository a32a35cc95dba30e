// Package eventbus publishes booking notifications to a Kafka topic.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/sommerhus-booking/internal/integrations/notifier"
)

// Header keys
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderRecipient = "recipient"
	HeaderSource    = "source"

	source = "sommerhus-booking"
)

// Config параметры продюсера
type Config struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// MessageWriter часть kafka.Writer, используемая продюсером
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher публикует события бронирований в Kafka
type Publisher struct {
	writer MessageWriter
	topic  string
	closed bool
	mu     sync.RWMutex
}

// NewPublisher создает продюсера для указанного топика
func NewPublisher(cfg Config) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("%w: at least one broker is required", ErrInvalidConfig)
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("%w: topic cannot be empty", ErrInvalidConfig)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{}, // события одного бронирования в одной партиции
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: cfg.WriteTimeout,
		MaxAttempts:  3,
	}

	return NewPublisherWithWriter(writer, cfg.Topic), nil
}

// NewPublisherWithWriter создает продюсера поверх готового writer
func NewPublisherWithWriter(writer MessageWriter, topic string) *Publisher {
	return &Publisher{writer: writer, topic: topic}
}

// Available возвращает false после закрытия продюсера
func (p *Publisher) Available() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.closed
}

// Notify публикует событие
func (p *Publisher) Notify(ctx context.Context, event notifier.Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	msg, err := BuildMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: topic=%s: %v", ErrPublish, p.topic, err)
	}
	return nil
}

// Close закрывает продюсера
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// BuildMessage превращает событие в сообщение Kafka с ключом по ID бронирования
func BuildMessage(event notifier.Event) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return kafka.Message{
		Key:   []byte(event.Booking.ID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.ID)},
			{Key: HeaderEventType, Value: []byte(event.Outcome)},
			{Key: HeaderRecipient, Value: []byte(event.Recipient)},
			{Key: HeaderSource, Value: []byte(source)},
		},
	}, nil
}
