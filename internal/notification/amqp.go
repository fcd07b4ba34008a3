package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const (
	KeyBookingConfirmed = "booking.confirmed"
	KeyPaymentRecorded  = "payment.recorded"

	publishTimeout = 5 * time.Second
)

type BookingConfirmedEvent struct {
	BookingID     string    `json:"bookingId"`
	UserEmail     string    `json:"userEmail"`
	ServiceID     string    `json:"serviceId"`
	ServiceName   string    `json:"serviceName"`
	Decorator     *string   `json:"decorator"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type PaymentRecordedEvent struct {
	PaymentID     string    `json:"paymentId"`
	BookingID     string    `json:"bookingId"`
	Email         string    `json:"email"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// Publisher sends JSON messages to a durable topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         b,
	})
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// EventNotifier turns booking notifications into broker events. A nil
// publisher disables it.
type EventNotifier struct {
	pub    EventPublisher
	logger logger.Logger
}

func NewEventNotifier(pub EventPublisher, logger logger.Logger) *EventNotifier {
	return &EventNotifier{pub: pub, logger: logger}
}

func (n *EventNotifier) NotifyBookingConfirmed(ctx context.Context, _ *domain.User, b *domain.Booking) {
	n.publish(ctx, KeyBookingConfirmed, BookingConfirmedEvent{
		BookingID:     b.ID.Hex(),
		UserEmail:     b.UserEmail,
		ServiceID:     b.ServiceID.Hex(),
		ServiceName:   b.ServiceName,
		Decorator:     b.Decorator,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		OccurredAt:    time.Now().UTC(),
	})
}

func (n *EventNotifier) NotifyPaymentRecorded(ctx context.Context, _ *domain.User, p *domain.Payment) {
	n.publish(ctx, KeyPaymentRecorded, PaymentRecordedEvent{
		PaymentID:     p.ID.Hex(),
		BookingID:     p.BookingID.Hex(),
		Email:         p.Email,
		Price:         p.Price,
		TransactionID: p.TransactionID,
		OccurredAt:    p.Date,
	})
}

func (n *EventNotifier) publish(ctx context.Context, key string, event any) {
	if n.pub == nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "event skipped (broker disabled)", logger.String("key", key))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := n.pub.PublishJSON(ctx, key, event); err != nil {
		n.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to publish event",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}
