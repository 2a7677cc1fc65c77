package consumer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withRetryDelay(t *testing.T, d time.Duration) {
	t.Helper()
	prev := retryDelay
	retryDelay = d
	t.Cleanup(func() { retryDelay = prev })
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

type fakeReader struct {
	msgs   []kafka.Message
	cancel context.CancelFunc
	closed bool
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	if msg.Key == nil {
		return kafka.Message{}, errors.New("transient")
	}
	return msg, nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

func TestProcessMessage(t *testing.T) {
	c := NewConsumer(nil)

	assert.True(t, c.processMessage(kafka.Message{Key: []byte("user-created-1"), Value: []byte(`{"id":1}`)}))
	assert.True(t, c.processMessage(kafka.Message{Key: []byte("task-deleted-4"), Value: []byte(`{}`)}))
	assert.False(t, c.processMessage(kafka.Message{Key: []byte("user-archived-1"), Value: []byte(`{}`)}))
	assert.False(t, c.processMessage(kafka.Message{Key: []byte("garbage")}))
}

func TestProcessMessagePayloadLogging(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
		want  any
	}{
		{"json", []byte(`{"id":1}`), map[string]any{"id": float64(1)}},
		{"empty", nil, nil},
		{"not json", []byte("plain text"), "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			ok := NewConsumer(nil).processMessage(kafka.Message{Key: []byte("product-updated-2"), Value: tt.value})
			require.True(t, ok)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
			assert.Equal(t, tt.want, line["payload"])
			assert.Equal(t, "product", line["entity"])
		})
	}
}

type failingReader struct {
	reads atomic.Int32
}

func (r *failingReader) ReadMessage(context.Context) (kafka.Message, error) {
	r.reads.Add(1)
	return kafka.Message{}, errors.New("broker down")
}

func (r *failingReader) Close() error { return nil }

func TestStartWaitsBetweenFailedReads(t *testing.T) {
	withRetryDelay(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	r := &failingReader{}

	done := make(chan struct{})
	go func() {
		NewConsumer(r).Start(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
	assert.Equal(t, int32(1), r.reads.Load())
}

func TestStartStopsOnCancel(t *testing.T) {
	withRetryDelay(t, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &fakeReader{
		cancel: cancel,
		msgs: []kafka.Message{
			{Key: []byte("order-created-1"), Value: []byte(`{"id":1}`)},
			{}, // read error, consumer keeps going
			{Key: []byte("order-updated-1"), Value: []byte(`{"id":1}`)},
		},
	}

	NewConsumer(r).Start(ctx)

	assert.Empty(t, r.msgs)
	assert.True(t, r.closed)
}
