package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type paymentMocks struct {
	payments *mocks.MockPaymentRepo
	bookings *mocks.MockBookingRepo
	users    *mocks.MockUserRepo
	provider *mocks.MockPaymentProvider
	tx       *mocks.MockTransactor
	notifier *mocks.MockBookingNotifier
}

func newPaymentService(t *testing.T) (*PaymentService, *paymentMocks) {
	t.Helper()
	m := &paymentMocks{
		payments: mocks.NewMockPaymentRepo(t),
		bookings: mocks.NewMockBookingRepo(t),
		users:    mocks.NewMockUserRepo(t),
		provider: mocks.NewMockPaymentProvider(t),
		tx:       mocks.NewMockTransactor(t),
		notifier: mocks.NewMockBookingNotifier(t),
	}
	svc := NewPaymentService(m.payments, m.bookings, m.users, m.provider, m.tx, m.notifier, newTestLogger(t))
	return svc, m
}

// passthrough runs the transaction body directly, as the non-transactional
// store does.
func (m *paymentMocks) passthrough() {
	m.tx.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestPaymentService_CreateIntent_AmountInCents(t *testing.T) {
	svc, m := newPaymentService(t)

	m.provider.EXPECT().CreatePaymentIntent(mock.Anything, int64(1250)).Return("pi_1_secret", nil)

	secret, err := svc.CreateIntent(context.Background(), 12.5)

	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", secret)
}

func TestPaymentService_CreateIntent_DropsFractionOfCent(t *testing.T) {
	svc, m := newPaymentService(t)

	m.provider.EXPECT().CreatePaymentIntent(mock.Anything, int64(1000)).Return("s", nil)

	_, err := svc.CreateIntent(context.Background(), 10.009)

	require.NoError(t, err)
}

func TestPaymentService_CreateIntent_ProviderFailure(t *testing.T) {
	svc, m := newPaymentService(t)

	m.provider.EXPECT().CreatePaymentIntent(mock.Anything, mock.Anything).Return("", errors.New("stripe: timeout"))

	_, err := svc.CreateIntent(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrPaymentProvider)
}

func TestPaymentService_CreateIntent_BelowOneCent(t *testing.T) {
	svc, _ := newPaymentService(t)

	_, err := svc.CreateIntent(context.Background(), 0.001)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrPaymentProvider)
}

func TestPaymentService_CreateIntent_TooLarge(t *testing.T) {
	svc, _ := newPaymentService(t)

	_, err := svc.CreateIntent(context.Background(), 1e300)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrPaymentProvider)
}

func TestIntentAmount(t *testing.T) {
	tests := []struct {
		price   float64
		want    int64
		wantErr bool
	}{
		{price: 0.01, want: 1},
		{price: 12.5, want: 1250},
		{price: 10.009, want: 1000},
		{price: 0.009, wantErr: true},
		{price: 0, wantErr: true},
		{price: -5, wantErr: true},
		{price: math.NaN(), wantErr: true},
		{price: math.Inf(1), wantErr: true},
		{price: 1e17, wantErr: true},
	}

	for _, tt := range tests {
		got, err := intentAmount(tt.price)
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrValidation, "price %v", tt.price)
			continue
		}
		require.NoError(t, err, "price %v", tt.price)
		assert.Equal(t, tt.want, got, "price %v", tt.price)
	}
}

func TestPaymentService_CreateIntent_NonPositive(t *testing.T) {
	svc, _ := newPaymentService(t)

	_, err := svc.CreateIntent(context.Background(), 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_Record_InsertsThenMarksPaid(t *testing.T) {
	svc, m := newPaymentService(t)
	m.passthrough()

	bookingID := primitive.NewObjectID()
	user := &domain.User{Email: "a@x.com"}
	done := make(chan struct{})
	var order []string

	m.payments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.BookingID == bookingID && p.TransactionID == "tx_1" && p.Price == 100
	})).RunAndReturn(func(context.Context, *domain.Payment) error {
		order = append(order, "insert")
		return nil
	})
	m.bookings.EXPECT().MarkPaid(mock.Anything, bookingID, "tx_1").
		RunAndReturn(func(context.Context, primitive.ObjectID, string) (domain.UpdateResult, error) {
			order = append(order, "update")
			return domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		})
	m.users.EXPECT().GetByEmail(mock.Anything, "a@x.com").Return(user, nil)
	m.notifier.EXPECT().NotifyPaymentRecorded(mock.Anything, user, mock.AnythingOfType("*domain.Payment")).
		Run(func(context.Context, *domain.User, *domain.Payment) { close(done) }).
		Return()

	rec, err := svc.Record(context.Background(), domain.RecordPaymentInput{
		BookingID:     bookingID,
		Email:         "a@x.com",
		Price:         100,
		TransactionID: "tx_1",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"insert", "update"}, order)
	assert.False(t, rec.Payment.ID.IsZero())
	assert.Equal(t, int64(1), rec.Update.ModifiedCount)
	waitFor(t, done)
}

func TestPaymentService_Record_UnknownBookingStillRecordsPayment(t *testing.T) {
	svc, m := newPaymentService(t)
	m.passthrough()

	bookingID := primitive.NewObjectID()
	done := make(chan struct{})

	m.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.bookings.EXPECT().MarkPaid(mock.Anything, bookingID, "tx_1").Return(domain.UpdateResult{}, nil)
	m.users.EXPECT().GetByEmail(mock.Anything, "a@x.com").Return(nil, domain.ErrUserNotFound)
	m.notifier.EXPECT().NotifyPaymentRecorded(mock.Anything, (*domain.User)(nil), mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Payment) { close(done) }).
		Return()

	rec, err := svc.Record(context.Background(), domain.RecordPaymentInput{
		BookingID:     bookingID,
		Email:         "a@x.com",
		Price:         100,
		TransactionID: "tx_1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.Update.MatchedCount)
	waitFor(t, done)
}

func TestPaymentService_Record_UpdateFailureLeavesPayment(t *testing.T) {
	svc, m := newPaymentService(t)
	m.passthrough()

	bookingID := primitive.NewObjectID()
	dbErr := errors.New("write conflict")

	m.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	m.bookings.EXPECT().MarkPaid(mock.Anything, bookingID, "tx_1").Return(domain.UpdateResult{}, dbErr)
	m.tx.EXPECT().Atomic().Return(false)

	rec, err := svc.Record(context.Background(), domain.RecordPaymentInput{
		BookingID:     bookingID,
		Email:         "a@x.com",
		Price:         100,
		TransactionID: "tx_1",
	})

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, rec)
	m.notifier.AssertNotCalled(t, "NotifyPaymentRecorded", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Record_TransactionalUpdateFailure(t *testing.T) {
	svc, m := newPaymentService(t)
	m.passthrough()

	dbErr := errors.New("write conflict")
	m.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.bookings.EXPECT().MarkPaid(mock.Anything, mock.Anything, mock.Anything).Return(domain.UpdateResult{}, dbErr)
	m.tx.EXPECT().Atomic().Return(true)

	_, err := svc.Record(context.Background(), domain.RecordPaymentInput{
		BookingID:     primitive.NewObjectID(),
		Email:         "a@x.com",
		Price:         100,
		TransactionID: "tx_1",
	})

	assert.ErrorIs(t, err, dbErr)
}

func TestMarkPaidFailureMessage(t *testing.T) {
	assert.Contains(t, markPaidFailureMessage(true), "rolled back")
	assert.Contains(t, markPaidFailureMessage(false), "payment kept")
}

func TestPaymentService_CreateIntent_LogsStructuredFields(t *testing.T) {
	out := captureOutput(t, func(log logger.Logger) {
		provider := mocks.NewMockPaymentProvider(t)
		provider.EXPECT().CreatePaymentIntent(mock.Anything, int64(1250)).Return("", errors.New("stripe: timeout"))

		svc := NewPaymentService(
			mocks.NewMockPaymentRepo(t), mocks.NewMockBookingRepo(t), mocks.NewMockUserRepo(t),
			provider, mocks.NewMockTransactor(t), mocks.NewMockBookingNotifier(t), log,
		)

		_, err := svc.CreateIntent(context.Background(), 12.5)
		assert.ErrorIs(t, err, domain.ErrPaymentProvider)
	})

	assert.Contains(t, out, "create payment intent failed")
	assert.Contains(t, out, "amount")
	assert.Contains(t, out, "stripe: timeout")
	assert.NotContains(t, out, "BADKEY")
}

func TestPaymentService_Record_InsertFailureSkipsUpdate(t *testing.T) {
	svc, m := newPaymentService(t)
	m.passthrough()

	m.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Record(context.Background(), domain.RecordPaymentInput{
		BookingID:     primitive.NewObjectID(),
		Email:         "a@x.com",
		Price:         100,
		TransactionID: "tx_1",
	})

	assert.Error(t, err)
	m.bookings.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Record_WritesIgnoreCallerCancel(t *testing.T) {
	svc, m := newPaymentService(t)
	done := make(chan struct{})

	m.tx.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fn(ctx)
		})
	m.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.bookings.EXPECT().MarkPaid(mock.Anything, mock.Anything, mock.Anything).Return(domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	m.users.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
	m.notifier.EXPECT().NotifyPaymentRecorded(mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Payment) { close(done) }).
		Return()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Record(ctx, domain.RecordPaymentInput{
		BookingID:     primitive.NewObjectID(),
		Email:         "a@x.com",
		Price:         100,
		TransactionID: "tx_1",
	})

	require.NoError(t, err)
	waitFor(t, done)
}

func TestPaymentService_Record_Validation(t *testing.T) {
	svc, _ := newPaymentService(t)

	valid := domain.RecordPaymentInput{
		BookingID:     primitive.NewObjectID(),
		Email:         "a@x.com",
		Price:         100,
		TransactionID: "tx_1",
	}

	tests := []struct {
		name   string
		mutate func(*domain.RecordPaymentInput)
	}{
		{"no booking", func(in *domain.RecordPaymentInput) { in.BookingID = primitive.NilObjectID }},
		{"no transaction", func(in *domain.RecordPaymentInput) { in.TransactionID = "" }},
		{"no email", func(in *domain.RecordPaymentInput) { in.Email = "" }},
		{"zero price", func(in *domain.RecordPaymentInput) { in.Price = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := svc.Record(context.Background(), in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPaymentService_ListByEmail(t *testing.T) {
	svc, m := newPaymentService(t)

	m.payments.EXPECT().List(mock.Anything, "a@x.com").Return([]*domain.Payment{{Email: "a@x.com"}}, nil)

	payments, err := svc.ListByEmail(context.Background(), "a@x.com", "a@x.com")

	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestPaymentService_ListByEmail_OtherEmailForbidden(t *testing.T) {
	svc, _ := newPaymentService(t)

	_, err := svc.ListByEmail(context.Background(), "a@x.com", "b@x.com")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
