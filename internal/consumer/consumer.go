package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"shop-service/internal/events"
)

var retryDelay = 1 * time.Second

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Consumer reads entity events from Kafka and writes an audit log line per event.
type Consumer struct {
	reader MessageReader
}

func NewConsumer(reader MessageReader) *Consumer {
	return &Consumer{reader: reader}
}

// Start reads until ctx is cancelled, then closes the reader.
func (c *Consumer) Start(ctx context.Context) {
	defer func() {
		if err := c.reader.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing kafka reader")
		}
	}()

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			log.Error().Msgf("Error reading message: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryDelay):
			}
			continue
		}

		c.processMessage(msg)
	}
}

// processMessage logs one event; messages with unknown keys are skipped.
func (c *Consumer) processMessage(msg kafka.Message) bool {
	entity, action, id, err := events.ParseKey(string(msg.Key))
	if err != nil {
		log.Warn().Err(err).Int64("offset", msg.Offset).Msg("Skipping message")
		return false
	}

	switch action {
	case events.ActionCreated, events.ActionUpdated, events.ActionDeleted:
		ev := log.Info().
			Str("entity", entity).
			Str("action", action).
			Int("id", id)
		switch {
		case len(msg.Value) == 0:
			ev = ev.RawJSON("payload", []byte("null"))
		case json.Valid(msg.Value):
			ev = ev.RawJSON("payload", msg.Value)
		default:
			ev = ev.Bytes("payload", msg.Value)
		}
		ev.Msg("entity event")
		return true
	default:
		log.Error().Msgf("Unknown event action: %s", action)
		return false
	}
}
