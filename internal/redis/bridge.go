package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"fuelform/internal/webapp"
)

// DefaultBridgeChannel is the Pub/Sub channel host events are published on.
const DefaultBridgeChannel = "webapp:events"

// Bridge event names.
const (
	EventExpand = "web_app_expand"
	EventData   = "web_app_data"
)

// BridgeEvent is the envelope published for every bridge call.
type BridgeEvent struct {
	ID      string    `json:"id"`
	Session string    `json:"session,omitempty"`
	Event   string    `json:"event"`
	Data    string    `json:"data,omitempty"`
	SentAt  time.Time `json:"sent_at"`
}

// Bridge is a webapp.Bridge that publishes events over Redis Pub/Sub.
// Publishing to a channel nobody listens on is not an error.
type Bridge struct {
	client  Publisher
	channel string
	now     func() time.Time
}

// NewBridge creates a new Bridge publishing on channel.
func NewBridge(client Publisher, channel string) *Bridge {
	if channel == "" {
		channel = DefaultBridgeChannel
	}
	return &Bridge{client: client, channel: channel, now: time.Now}
}

// Expand publishes a web_app_expand event.
func (b *Bridge) Expand(ctx context.Context) error {
	return b.publish(ctx, EventExpand, "")
}

// SendData publishes a web_app_data event carrying data.
func (b *Bridge) SendData(ctx context.Context, data string) error {
	return b.publish(ctx, EventData, data)
}

func (b *Bridge) publish(ctx context.Context, event, data string) error {
	payload, err := json.Marshal(BridgeEvent{
		ID:      uuid.New().String(),
		Session: webapp.SessionFrom(ctx),
		Event:   event,
		Data:    data,
		SentAt:  b.now().UTC(),
	})
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, b.channel, payload).Err()
}

// Publisher is the subset of *redis.Client used by Bridge.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}
