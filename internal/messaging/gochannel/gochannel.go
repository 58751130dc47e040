// Package gochannel adapts watermill's in-process Pub/Sub to the messaging
// ports. Events never leave the process; subscribers see exactly what this
// process published, which is all the storefront core needs.
package gochannel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/egannguyen/supplement-store/internal/messaging"
)

// Broker is an in-process message broker.
type Broker struct {
	pubSub *gochannel.GoChannel
}

// NewBroker creates a new in-process broker logging through the given slog
// logger.
func NewBroker(logger *slog.Logger) *Broker {
	return &Broker{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			watermill.NewSlogLogger(logger),
		),
	}
}

var _ messaging.Publisher = (*Broker)(nil)
var _ messaging.Subscriber = (*Broker)(nil)

// PublishEvent marshals the event and publishes it on the topic. The key is
// carried as message metadata for parity with keyed brokers.
func (b *Broker) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("key", key)
	msg.SetContext(ctx)

	if err := b.pubSub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Consume subscribes to the topic and runs the handler for each message until
// ctx is cancelled. Messages are acked even when the handler errs; there is
// no redelivery in-process, so a failed handler is logged and skipped.
func (b *Broker) Consume(ctx context.Context, topic string, handler func(ctx context.Context, payload []byte) error) error {
	messages, err := b.pubSub.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	go func() {
		for msg := range messages {
			if err := handler(ctx, msg.Payload); err != nil {
				slog.Error("Error handling message", "topic", topic, "err", err)
			}
			msg.Ack()
		}
	}()

	return nil
}

// Close shuts the broker down and closes all subscriber channels.
func (b *Broker) Close() error {
	return b.pubSub.Close()
}
