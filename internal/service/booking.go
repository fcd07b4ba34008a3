package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if strings.TrimSpace(input.UserEmail) == "" {
		return nil, fmt.Errorf("%w: userEmail is required", domain.ErrValidation)
	}
	if input.ServiceID.IsZero() {
		return nil, fmt.Errorf("%w: serviceId is required", domain.ErrValidation)
	}

	booking := &domain.Booking{
		ID:            primitive.NewObjectID(),
		UserEmail:     input.UserEmail,
		UserName:      input.UserName,
		ServiceID:     input.ServiceID,
		ServiceName:   input.ServiceName,
		Price:         input.Price,
		BookingDate:   input.BookingDate,
		Location:      input.Location,
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking created",
		logger.String("booking_id", booking.ID.Hex()),
		logger.String("service_id", booking.ServiceID.Hex()),
		logger.String("user_email", booking.UserEmail),
	)

	return booking, nil
}

// List returns the bookings of userEmail, or all bookings when it is empty.
// Callers are not restricted to their own bookings.
func (s *BookingService) List(ctx context.Context, userEmail string) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx, userEmail)
}

// Delete removes a booking by id without checking who owns it.
func (s *BookingService) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	res, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete booking: %w", err)
	}

	return res, nil
}

func (s *BookingService) Confirm(ctx context.Context, id primitive.ObjectID, decorator string) (domain.UpdateResult, error) {
	if strings.TrimSpace(decorator) == "" {
		return domain.UpdateResult{}, fmt.Errorf("%w: decoratorName is required", domain.ErrValidation)
	}

	res, err := s.bookingRepo.Confirm(ctx, id, decorator)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking confirmed",
		logger.String("booking_id", id.Hex()),
		logger.String("decorator", decorator),
		logger.Int64("modified", res.ModifiedCount),
	)

	if res.ModifiedCount > 0 {
		go s.notifyConfirmed(context.WithoutCancel(ctx), id)
	}

	return res, nil
}

func (s *BookingService) notifyConfirmed(ctx context.Context, id primitive.ObjectID) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to get booking for notification",
			logger.String("booking_id", id.Hex()),
			logger.String("error", err.Error()),
		)
		return
	}

	user, err := s.userRepo.GetByEmail(ctx, booking.UserEmail)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to get user for notification",
			logger.String("user_email", booking.UserEmail),
			logger.String("error", err.Error()),
		)
	}

	s.notifier.NotifyBookingConfirmed(ctx, user, booking)
}
