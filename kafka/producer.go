package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"fetchrecipes/recipeslist"
)

// StateEvent is published whenever the recipe list state changes
type StateEvent struct {
	Phase       string    `json:"phase"`
	RequestID   string    `json:"request_id,omitempty"`
	RequestType string    `json:"request_type,omitempty"`
	Count       int       `json:"count"`
	InFlight    int       `json:"in_flight"`
	ErrorKind   string    `json:"error_kind,omitempty"`
	Error       string    `json:"error,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventFromState builds the event for a state snapshot
func EventFromState(s recipeslist.ListState) StateEvent {
	ev := StateEvent{
		Phase:       string(s.Phase),
		RequestID:   s.RequestID,
		RequestType: string(s.RequestType),
		Count:       s.Count(),
		InFlight:    s.InFlight,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.LastError != nil {
		ev.ErrorKind = s.LastError.Kind.String()
		ev.Error = s.LastError.Error()
	}
	return ev
}

// Publisher sends state events to a topic. Observe never blocks the caller;
// events are queued and sent by Run.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	queue    chan StateEvent
	log      *slog.Logger

	closeOnce sync.Once
}

// NewPublisher connects a synchronous producer to the brokers
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewPublisherWithProducer(producer, topic, logger), nil
}

// NewPublisherWithProducer wraps an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Publisher{
		producer: producer,
		topic:    topic,
		queue:    make(chan StateEvent, 64),
		log:      logger.With("component", "kafka-publisher", "topic", topic),
	}
}

// Observe queues an event for the state. Events are dropped when the queue is full.
func (p *Publisher) Observe(s recipeslist.ListState) {
	select {
	case p.queue <- EventFromState(s):
	default:
		p.log.Warn("event queue full, dropping state event", "phase", string(s.Phase))
	}
}

// Publish sends one event and waits for the broker ack
func (p *Publisher) Publish(ev StateEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.RequestID),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send event: %w", err)
	}
	p.log.Debug("state event published", "phase", ev.Phase, "partition", partition, "offset", offset)
	return nil
}

// Run drains the queue until ctx is done
func (p *Publisher) Run(ctx context.Context) {
	for {
		select {
		case ev := <-p.queue:
			if err := p.Publish(ev); err != nil {
				p.log.Error("failed to publish state event", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Close closes the producer
func (p *Publisher) Close() error {
	var err error
	p.closeOnce.Do(func() {
		err = p.producer.Close()
	})
	return err
}
