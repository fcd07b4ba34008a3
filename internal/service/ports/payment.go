package ports

import (
	"context"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	List(ctx context.Context, email string) ([]*domain.Payment, error)
}

// PaymentProvider creates card payment intents and returns the client secret
// the browser needs to finish the payment.
type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

// Transactor runs fn so that every repository write made with the passed
// context either commits together or not at all.
type Transactor interface {
	// Atomic reports whether WithinTransaction really rolls back on error.
	Atomic() bool
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
