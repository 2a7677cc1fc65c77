// Package events publishes entity change notifications to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/segmentio/kafka-go"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes one change to a stored entity.
type Event struct {
	Entity  string
	Action  string
	ID      int
	Payload any
}

// Key renders the message key, e.g. "order-created-1".
func (e Event) Key() string {
	return fmt.Sprintf("%s-%s-%d", e.Entity, e.Action, e.ID)
}

// ParseKey splits a message key produced by Event.Key.
func ParseKey(key string) (entity, action string, id int, err error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return "", "", 0, fmt.Errorf("malformed event key %q", key)
	}
	id, err = strconv.Atoi(parts[2])
	if err != nil {
		return "", "", 0, fmt.Errorf("malformed event key %q: %w", key, err)
	}
	return parts[0], parts[1], id, nil
}

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher writes events as JSON messages.
type KafkaPublisher struct {
	writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(ev.Key()),
		Value: payload,
	}
	return p.writer.WriteMessages(ctx, msg)
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
