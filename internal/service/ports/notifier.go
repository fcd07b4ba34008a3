package ports

import (
	"context"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, booking *domain.Booking)
	NotifyPaymentRecorded(ctx context.Context, user *domain.User, payment *domain.Payment)
}
