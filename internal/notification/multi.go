package notification

import (
	"context"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
)

type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, booking *domain.Booking)
	NotifyPaymentRecorded(ctx context.Context, user *domain.User, payment *domain.Payment)
}

// Multi delivers every notification to each notifier in order.
type Multi []Notifier

func (m Multi) NotifyBookingConfirmed(ctx context.Context, user *domain.User, booking *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingConfirmed(ctx, user, booking)
	}
}

func (m Multi) NotifyPaymentRecorded(ctx context.Context, user *domain.User, payment *domain.Payment) {
	for _, n := range m {
		n.NotifyPaymentRecorded(ctx, user, payment)
	}
}
