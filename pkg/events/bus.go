// Package events provides an in-process pub/sub event bus built on
// Watermill's gochannel transport.
//
// Delivery semantics: events are best-effort notifications inside a single
// process. A handler error is logged and the message acked — item lifecycle
// events describe state that is already durable in the repository, so
// redelivery would only duplicate log lines.
//
// OTel context propagation: trace context is injected into message metadata
// on Publish and extracted in Subscribe, so consumers continue the
// publisher's span tree.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/inventoryd/pkg/logger"
)

// Bus is an in-process pub/sub event bus.
type Bus struct {
	pubsub *gochannel.GoChannel
	log    logger.Logger
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewBus returns a Bus with a buffered gochannel transport.
func NewBus(log logger.Logger) *Bus {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		&slogAdapter{log: log},
	)
	return &Bus{pubsub: pubsub, log: log}
}

// NewJSONMessage marshals v into a Watermill message with a fresh UUID.
func NewJSONMessage(v any) (*message.Message, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	return message.NewMessage(watermill.NewUUID(), payload), nil
}

// Publish sends one or more messages to the given topic.
// OTel trace context from ctx is injected into each message's metadata.
func (b *Bus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
	if err := b.pubsub.Publish(topic, msgs...); err != nil {
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe registers handler to process messages from topic asynchronously.
// The handler receives a context with the publisher's OTel trace restored
// from message metadata. Handler errors are logged; the message is acked
// either way. All in-flight handlers complete before Close() returns.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) error {
	ch, err := b.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	propagator := otel.GetTextMapPropagator()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for msg := range ch {
			carrier := propagation.MapCarrier{}
			for k, v := range msg.Metadata {
				carrier[k] = v
			}
			msgCtx := propagator.Extract(ctx, carrier)

			if err := handler(msgCtx, msg); err != nil {
				b.log.ErrorContext(msgCtx, "events: handler failed",
					"topic", topic,
					"message_id", msg.UUID,
					"error", err,
				)
			}
			msg.Ack()
		}
	}()

	return nil
}

// Ping reports whether the bus is still open. Satisfies httpx.HealthChecker.
func (b *Bus) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return fmt.Errorf("events: bus closed")
	}
	return nil
}

// Close shuts the transport down and waits for in-flight handlers.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	err := b.pubsub.Close()
	b.wg.Wait()
	return err
}

// slogAdapter bridges Watermill's LoggerAdapter to the project Logger.
type slogAdapter struct {
	log    logger.Logger
	fields watermill.LogFields
}

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(a.args(fields), "error", err)...)
}

func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, a.args(fields)...)
}

func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, a.args(fields)...)
}

func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, a.args(fields)...)
}

func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log, fields: a.fields.Add(fields)}
}

func (a *slogAdapter) args(fields watermill.LogFields) []any {
	merged := a.fields.Add(fields)
	args := make([]any, 0, len(merged)*2)
	for k, v := range merged {
		args = append(args, k, v)
	}
	return args
}
