package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/Sanjida-Parven-Alfe/Backend/internal/service")

type PaymentService struct {
	paymentRepo ports.PaymentRepo
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	provider    ports.PaymentProvider
	tx          ports.Transactor
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	provider ports.PaymentProvider,
	tx ports.Transactor,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		provider:    provider,
		tx:          tx,
		notifier:    notifier,
		logger:      logger,
	}
}

// CreateIntent opens a card payment for price and returns its client secret.
// The provider takes the amount in cents; fractions of a cent are dropped.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount, err := intentAmount(price)
	if err != nil {
		return "", err
	}

	secret, err := s.provider.CreatePaymentIntent(ctx, amount)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "create payment intent failed",
			logger.Int64("amount", amount),
			logger.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentProvider, err)
	}

	return secret, nil
}

// Record stores a payment and then marks its booking paid and confirmed.
//
// Unless the transactor runs a real transaction the two writes are
// independent: when the booking update fails the payment stays recorded and
// the booking is left as it was. The price is not checked against the
// booked service and repeated submissions are not deduplicated.
func (s *PaymentService) Record(ctx context.Context, input domain.RecordPaymentInput) (*domain.PaymentRecord, error) {
	ctx, span := tracer.Start(context.WithoutCancel(ctx), "PaymentService.Record")
	defer span.End()

	if err := validatePayment(input); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		ID:            primitive.NewObjectID(),
		BookingID:     input.BookingID,
		Email:         input.Email,
		Price:         input.Price,
		TransactionID: input.TransactionID,
		Date:          time.Now().UTC(),
	}
	span.SetAttributes(
		attribute.String("payment.id", payment.ID.Hex()),
		attribute.String("booking.id", payment.BookingID.Hex()),
	)

	var update domain.UpdateResult
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		res, err := s.bookingRepo.MarkPaid(ctx, payment.BookingID, payment.TransactionID)
		if err != nil {
			s.logger.LogAttrs(ctx, logger.ErrorLevel, markPaidFailureMessage(s.tx.Atomic()),
				logger.String("payment_id", payment.ID.Hex()),
				logger.String("booking_id", payment.BookingID.Hex()),
				logger.String("error", err.Error()),
			)
			return fmt.Errorf("mark booking paid: %w", err)
		}
		update = res

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "record payment")
		return nil, err
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "payment recorded",
		logger.String("payment_id", payment.ID.Hex()),
		logger.String("booking_id", payment.BookingID.Hex()),
		logger.String("transaction_id", payment.TransactionID),
		logger.Int64("bookings_modified", update.ModifiedCount),
	)

	go s.notifyRecorded(context.WithoutCancel(ctx), payment)

	return &domain.PaymentRecord{Payment: payment, Update: update}, nil
}

// ListByEmail returns the payments of email. Callers may only list their own.
func (s *PaymentService) ListByEmail(ctx context.Context, caller, email string) ([]*domain.Payment, error) {
	if caller != email {
		return nil, domain.ErrForbidden
	}

	payments, err := s.paymentRepo.List(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return payments, nil
}

func (s *PaymentService) notifyRecorded(ctx context.Context, payment *domain.Payment) {
	user, err := s.userRepo.GetByEmail(ctx, payment.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to get user for payment notification",
			logger.String("email", payment.Email),
			logger.String("error", err.Error()),
		)
	}

	s.notifier.NotifyPaymentRecorded(ctx, user, payment)
}

// intentAmount converts price to whole cents. Prices that round down to
// nothing or do not fit in int64 cents are rejected.
func intentAmount(price float64) (int64, error) {
	if math.IsNaN(price) || price <= 0 {
		return 0, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}

	cents := price * 100
	if cents >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: price is too large", domain.ErrValidation)
	}

	amount := int64(cents)
	if amount < 1 {
		return 0, fmt.Errorf("%w: price is below one cent", domain.ErrValidation)
	}

	return amount, nil
}

func markPaidFailureMessage(atomic bool) string {
	if atomic {
		return "booking not updated, payment insert rolled back"
	}
	return "booking not updated after payment insert, payment kept"
}

func validatePayment(input domain.RecordPaymentInput) error {
	switch {
	case input.BookingID.IsZero():
		return fmt.Errorf("%w: bookingId is required", domain.ErrValidation)
	case strings.TrimSpace(input.TransactionID) == "":
		return fmt.Errorf("%w: transactionId is required", domain.ErrValidation)
	case strings.TrimSpace(input.Email) == "":
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	case input.Price <= 0:
		return fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	return nil
}
