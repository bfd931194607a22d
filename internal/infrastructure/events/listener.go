// Package events consumes plan events published on the message broker.
package events

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/pkg/messaging"
)

// Listener logs every event received on its channels
type Listener struct {
	broker   messaging.Broker
	channels []string
	logger   *zap.Logger
}

// NewListener creates a listener for the given channels
func NewListener(broker messaging.Broker, logger *zap.Logger, channels ...string) *Listener {
	return &Listener{
		broker:   broker,
		channels: channels,
		logger:   logger,
	}
}

// Run subscribes to every channel and blocks until ctx is done or all
// subscriptions end.
func (l *Listener) Run(ctx context.Context) error {
	streams := make([]<-chan messaging.Message, 0, len(l.channels))
	for _, channel := range l.channels {
		stream, err := l.broker.Subscribe(ctx, channel)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", channel, err)
		}
		streams = append(streams, stream)
	}

	done := make(chan struct{}, len(streams))
	for _, stream := range streams {
		go func(stream <-chan messaging.Message) {
			defer func() { done <- struct{}{} }()
			for msg := range stream {
				l.handle(msg)
			}
		}(stream)
	}

	for range streams {
		<-done
	}
	return ctx.Err()
}

func (l *Listener) handle(msg messaging.Message) {
	var payload map[string]interface{}
	if err := msg.Decode(&payload); err != nil {
		l.logger.Warn("Dropping malformed event",
			zap.String("channel", msg.Channel),
			zap.ByteString("payload", msg.Payload),
			zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.String("channel", msg.Channel),
		zap.Time("received_at", msg.Time),
	}
	if userID, ok := payload["user_id"].(string); ok {
		fields = append(fields, zap.String("user_id", userID))
	}
	fields = append(fields, zap.ByteString("event", msg.Payload))

	l.logger.Info("Plan event", fields...)
}
