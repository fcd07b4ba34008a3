package service

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// captureOutput runs fn with an error-level logger whose output, written to
// stdout or stderr, is returned.
func captureOutput(t *testing.T, fn func(log logger.Logger)) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout, stderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = w, w
	defer func() { os.Stdout, os.Stderr = stdout, stderr }()

	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	fn(log)

	os.Stdout, os.Stderr = stdout, stderr
	require.NoError(t, w.Close())
	return <-done
}

// waitFor blocks until done is closed by a background notification.
func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestBookingService_Create_PendingAndUnpaid(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, mocks.NewMockUserRepo(t), mocks.NewMockBookingNotifier(t), newTestLogger(t))

	serviceID := primitive.NewObjectID()
	bookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserEmail:   "a@x.com",
		UserName:    "Alice",
		ServiceID:   serviceID,
		ServiceName: "Stage",
		Price:       120,
		BookingDate: "2025-01-10",
		Location:    "Dhaka",
	})

	require.NoError(t, err)
	assert.False(t, booking.ID.IsZero())
	assert.Equal(t, serviceID, booking.ServiceID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.PaymentStatusUnpaid, booking.PaymentStatus)
	assert.Nil(t, booking.Decorator)
	assert.Nil(t, booking.TransactionID)
}

func TestBookingService_Create_Validation(t *testing.T) {
	svc := NewBookingService(mocks.NewMockBookingRepo(t), mocks.NewMockUserRepo(t), mocks.NewMockBookingNotifier(t), newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{ServiceID: primitive.NewObjectID()})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CreateBookingInput{UserEmail: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_RepoError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, mocks.NewMockUserRepo(t), mocks.NewMockBookingNotifier(t), newTestLogger(t))

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserEmail: "a@x.com",
		ServiceID: primitive.NewObjectID(),
	})

	assert.Error(t, err)
}

func TestBookingService_List_PassesFilter(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, mocks.NewMockUserRepo(t), mocks.NewMockBookingNotifier(t), newTestLogger(t))

	bookingRepo.EXPECT().List(mock.Anything, "").Return([]*domain.Booking{{}, {}}, nil)
	bookingRepo.EXPECT().List(mock.Anything, "a@x.com").Return([]*domain.Booking{{UserEmail: "a@x.com"}}, nil)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Len(t, own, 1)
}

func TestBookingService_Delete_NoOwnershipCheck(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, mocks.NewMockUserRepo(t), mocks.NewMockBookingNotifier(t), newTestLogger(t))

	id := primitive.NewObjectID()
	bookingRepo.EXPECT().Delete(mock.Anything, id).Return(domain.DeleteResult{DeletedCount: 1}, nil)

	res, err := svc.Delete(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)
}

func TestBookingService_Confirm_NotifiesOwner(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(bookingRepo, userRepo, notifier, newTestLogger(t))

	id := primitive.NewObjectID()
	decorator := "Rina"
	booking := &domain.Booking{ID: id, UserEmail: "a@x.com", Status: domain.BookingStatusConfirmed, Decorator: &decorator}
	user := &domain.User{Email: "a@x.com"}
	done := make(chan struct{})

	bookingRepo.EXPECT().Confirm(mock.Anything, id, "Rina").Return(domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, id).Return(booking, nil)
	userRepo.EXPECT().GetByEmail(mock.Anything, "a@x.com").Return(user, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, booking).
		Run(func(context.Context, *domain.User, *domain.Booking) { close(done) }).
		Return()

	res, err := svc.Confirm(context.Background(), id, "Rina")

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)
	waitFor(t, done)
}

func TestBookingService_Confirm_UnknownOwnerStillNotifies(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(bookingRepo, userRepo, notifier, newTestLogger(t))

	id := primitive.NewObjectID()
	booking := &domain.Booking{ID: id, UserEmail: "guest@x.com"}
	done := make(chan struct{})

	bookingRepo.EXPECT().Confirm(mock.Anything, id, "Rina").Return(domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, id).Return(booking, nil)
	userRepo.EXPECT().GetByEmail(mock.Anything, "guest@x.com").Return(nil, domain.ErrUserNotFound)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, (*domain.User)(nil), booking).
		Run(func(context.Context, *domain.User, *domain.Booking) { close(done) }).
		Return()

	_, err := svc.Confirm(context.Background(), id, "Rina")

	require.NoError(t, err)
	waitFor(t, done)
}

func TestBookingService_Confirm_NothingModifiedSkipsNotification(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, mocks.NewMockUserRepo(t), mocks.NewMockBookingNotifier(t), newTestLogger(t))

	id := primitive.NewObjectID()
	bookingRepo.EXPECT().Confirm(mock.Anything, id, "Rina").Return(domain.UpdateResult{}, nil)

	res, err := svc.Confirm(context.Background(), id, "Rina")

	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
}

func TestBookingService_Confirm_RequiresDecorator(t *testing.T) {
	svc := NewBookingService(mocks.NewMockBookingRepo(t), mocks.NewMockUserRepo(t), mocks.NewMockBookingNotifier(t), newTestLogger(t))

	_, err := svc.Confirm(context.Background(), primitive.NewObjectID(), "  ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
