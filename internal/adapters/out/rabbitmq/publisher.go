// Package rabbitmq publishes parcel status changes to a topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"profast/internal/core/domain/model/parcel"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// StatusChangedMessage is the wire form of parcel.StatusChanged.
type StatusChangedMessage struct {
	ParcelID   string    `json:"parcel_id"`
	TrackingID string    `json:"tracking_id"`
	Kind       string    `json:"kind"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	Actor      string    `json:"actor"`
	At         time.Time `json:"at"`
}

// Publisher sends every event to exchange with routing key "parcel.<kind>".
type Publisher struct {
	ch       Channel
	exchange string
	logger   *slog.Logger
}

// NewPublisher declares the durable topic exchange and returns a publisher on it.
func NewPublisher(ch Channel, exchange string, logger *slog.Logger) (*Publisher, error) {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %q: %w", exchange, err)
	}
	return &Publisher{ch: ch, exchange: exchange, logger: logger.With("component", "RabbitMQPublisher")}, nil
}

// Publish sends the events one by one. It keeps going after a failed message and
// returns every failure joined.
func (p *Publisher) Publish(ctx context.Context, events ...parcel.StatusChanged) error {
	var errs []error
	for _, e := range events {
		body, err := json.Marshal(StatusChangedMessage{
			ParcelID:   e.ParcelID.String(),
			TrackingID: e.TrackingID,
			Kind:       string(e.Kind),
			From:       e.From,
			To:         e.To,
			Actor:      e.Actor.String(),
			At:         e.At.UTC(),
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}

		key := RoutingKey(e.Kind)
		err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.ParcelID.String() + ":" + string(e.Kind),
			Timestamp:    e.At,
			Body:         body,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", key, err))
			continue
		}
		p.logger.DebugContext(ctx, "parcel event published", "routing_key", key, "tracking_id", e.TrackingID)
	}
	return errors.Join(errs...)
}

func RoutingKey(kind parcel.EventKind) string {
	return "parcel." + string(kind)
}

// Connection owns the broker connection and the channel publishers share.
type Connection struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
}

// Dial connects to url and opens one channel.
func Dial(url string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return &Connection{Conn: conn, Channel: ch}, nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Channel.Close(), c.Conn.Close())
}
