package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/cloud-top-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestMapMessageToRawObservation(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("px-104"),
		Value:     []byte(`{"pixel_id":"px-104"}`),
		Topic:     "satellite-pixel-observations",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "scene", Value: []byte("msg-iodc")},
		},
	}

	raw := mapMessageToRawObservation(msg)

	assert.Equal(t, []byte("px-104"), raw.Key)
	assert.JSONEq(t, `{"pixel_id":"px-104"}`, string(raw.Value))
	assert.Equal(t, "satellite-pixel-observations", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "msg-iodc", raw.Headers["scene"])
	assert.Nil(t, raw.Commit)
}

func TestMapOutputToMessage(t *testing.T) {
	event := domain.OutputEvent{
		Key:   []byte("px-104-abcd"),
		Value: []byte(`{"id":"px-104-abcd"}`),
		Headers: map[string]string{
			"tier":         "high_precision",
			"processed_at": "2025-06-12T15:00:00Z",
		},
	}

	msg := mapOutputToMessage(event)

	assert.Equal(t, []byte("px-104-abcd"), msg.Key)
	assert.Equal(t, event.Value, msg.Value)
	// Headers come out sorted by key.
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "processed_at", msg.Headers[0].Key)
	assert.Equal(t, []byte("2025-06-12T15:00:00Z"), msg.Headers[0].Value)
	assert.Equal(t, "tier", msg.Headers[1].Key)
	assert.Equal(t, []byte("high_precision"), msg.Headers[1].Value)
}

func TestMapOutputToMessage_NoHeaders(t *testing.T) {
	msg := mapOutputToMessage(domain.OutputEvent{Key: []byte("k"), Value: []byte("v")})
	assert.Empty(t, msg.Headers)
}
