package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

const defaultPublishTimeout = 5 * time.Second

// Publisher sends booking events to RabbitMQ.  It dials per message so a
// broker outage never leaves a stale connection behind; errors are
// logged and returned, never retried.
type Publisher struct {
	url     string
	timeout time.Duration
	logger  *slog.Logger
}

func NewPublisher(url string, logger *slog.Logger) *Publisher {
	return &Publisher{url: url, timeout: defaultPublishTimeout, logger: logger}
}

// NotifyBookingConfirmed publishes the event for b.  Failures are only
// logged; the booking has already been stored.
func (p *Publisher) NotifyBookingConfirmed(ctx context.Context, b model.Booking, m model.Movie) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.Publish(ctx, NewBookingConfirmedEvent(b, m)); err != nil {
		p.logger.WarnContext(ctx, "booking event not published",
			slog.String("booking_id", b.BookingID),
			slog.Any("err", err),
		)
	}
}

// Publish sends ev to the booking.confirmed queue as a persistent JSON
// message.
func (p *Publisher) Publish(ctx context.Context, ev BookingConfirmedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.timeout),
	})
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err = declareBookingQueue(ch); err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err = ch.PublishWithContext(ctx, "", BookingQueueName, false, false, pub); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

// NopNotifier discards booking events.  Used when the queue is disabled.
type NopNotifier struct{}

func (NopNotifier) NotifyBookingConfirmed(context.Context, model.Booking, model.Movie) {}

func declareBookingQueue(ch *amqp.Channel) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		BookingQueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return q, fmt.Errorf("queue declare: %w", err)
	}
	return q, nil
}
