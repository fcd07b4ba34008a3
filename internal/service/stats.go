package service

import (
	"context"
	"fmt"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/service/ports"
	"go.opentelemetry.io/otel/codes"
)

type StatsService struct {
	userRepo    ports.UserRepo
	serviceRepo ports.ServiceRepo
	bookingRepo ports.BookingRepo
	paymentRepo ports.PaymentRepo
}

func NewStatsService(
	userRepo ports.UserRepo,
	serviceRepo ports.ServiceRepo,
	bookingRepo ports.BookingRepo,
	paymentRepo ports.PaymentRepo,
) *StatsService {
	return &StatsService{
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
	}
}

// Collect builds the admin dashboard numbers. Counts are the store's
// estimates; revenue covers every payment ever recorded.
func (s *StatsService) Collect(ctx context.Context) (*domain.AdminStats, error) {
	ctx, span := tracer.Start(ctx, "StatsService.Collect")
	defer span.End()

	stats, err := s.collect(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "collect stats")
		return nil, err
	}

	return stats, nil
}

func (s *StatsService) collect(ctx context.Context) (*domain.AdminStats, error) {
	var (
		stats domain.AdminStats
		err   error
	)

	if stats.Users, err = s.userRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.Services, err = s.serviceRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count services: %w", err)
	}
	if stats.Bookings, err = s.bookingRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	payments, err := s.paymentRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	stats.Revenue = revenue(payments)

	if stats.ServiceStats, err = s.bookingRepo.CountByServiceCategory(ctx); err != nil {
		return nil, fmt.Errorf("bookings by category: %w", err)
	}

	return &stats, nil
}

func revenue(payments []*domain.Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Price
	}
	return total
}
