package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/auth"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/handler/dto"
	hmocks "github.com/Sanjida-Parven-Alfe/Backend/internal/handler/mocks"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/middleware"
	mwmocks "github.com/Sanjida-Parven-Alfe/Backend/internal/middleware/mocks"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testEnv struct {
	users    *hmocks.MockUserSvc
	catalog  *hmocks.MockCatalogSvc
	bookings *hmocks.MockBookingSvc
	payments *hmocks.MockPaymentSvc
	stats    *hmocks.MockStatsSvc
	authz    *mwmocks.MockRoleAuthorizer
	tokens   *auth.Manager
	router   http.Handler
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	env := &testEnv{
		users:    hmocks.NewMockUserSvc(t),
		catalog:  hmocks.NewMockCatalogSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		payments: hmocks.NewMockPaymentSvc(t),
		stats:    hmocks.NewMockStatsSvc(t),
		authz:    mwmocks.NewMockRoleAuthorizer(t),
		tokens:   auth.NewManager("test-secret", time.Hour),
	}

	h := NewHandler(env.tokens, env.users, env.catalog, env.bookings, env.payments, env.stats)
	env.router = router.InitRouter("test", h, router.Guards{
		Auth:  middleware.RequireAuth(env.tokens),
		Admin: middleware.RequireRole(env.authz, domain.RoleAdmin, log),
	})

	return env
}

// do sends a JSON request; a non-empty email is sent as a bearer token.
func (e *testEnv) do(t *testing.T, method, path string, body any, email string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		token, err := e.tokens.Issue(email, "")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) admin(email string) {
	e.authz.EXPECT().Authorize(mock.Anything, email, domain.RoleAdmin).Return(nil)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

const adminEmail = "admin@x.com"

// --- Misc ---

func TestHandler_Liveness(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Style Decor Server is Running", w.Body.String())
}

func TestHandler_IssueToken_Success(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/jwt", dto.TokenRequest{Email: "a@x.com", Name: "A"}, "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.TokenResponse](t, w)
	claims, err := env.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestHandler_IssueToken_BadRequest(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/jwt", `{"name":"no email"}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Inserted(t *testing.T) {
	env := setupRouter(t)

	user := &domain.User{ID: primitive.NewObjectID(), Email: "a@x.com"}
	env.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{Email: "a@x.com"}).Return(user, true, nil)

	w := env.do(t, http.MethodPost, "/users", dto.CreateUserRequest{Email: "a@x.com"}, "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.InsertResponse](t, w)
	require.NotNil(t, resp.InsertedID)
	assert.Equal(t, user.ID.Hex(), *resp.InsertedID)
}

func TestHandler_CreateUser_AlreadyExists(t *testing.T) {
	env := setupRouter(t)

	existing := &domain.User{ID: primitive.NewObjectID(), Email: "a@x.com"}
	env.users.EXPECT().Create(mock.Anything, mock.Anything).Return(existing, false, nil)

	w := env.do(t, http.MethodPost, "/users", dto.CreateUserRequest{Email: "a@x.com"}, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"user already exists","insertedId":null}`, w.Body.String())
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/users", `{"email":"not-an-email"}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers_Admin(t *testing.T) {
	env := setupRouter(t)
	env.admin(adminEmail)

	env.users.EXPECT().List(mock.Anything).Return([]*domain.User{{Email: "a@x.com"}, {Email: "b@x.com"}}, nil)

	w := env.do(t, http.MethodGet, "/users", nil, adminEmail)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.User](t, w), 2)
}

func TestHandler_ListUsers_EmptyIsArray(t *testing.T) {
	env := setupRouter(t)
	env.admin(adminEmail)

	env.users.EXPECT().List(mock.Anything).Return(nil, nil)

	w := env.do(t, http.MethodGet, "/users", nil, adminEmail)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_DeleteUser_InvalidID(t *testing.T) {
	env := setupRouter(t)
	env.admin(adminEmail)

	w := env.do(t, http.MethodDelete, "/users/not-an-id", nil, adminEmail)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid id", decode[dto.ErrorResponse](t, w).Message)
}

func TestHandler_DeleteUser_Success(t *testing.T) {
	env := setupRouter(t)
	env.admin(adminEmail)

	id := primitive.NewObjectID()
	env.users.EXPECT().Delete(mock.Anything, id).Return(domain.DeleteResult{DeletedCount: 1}, nil)

	w := env.do(t, http.MethodDelete, "/users/"+id.Hex(), nil, adminEmail)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), decode[dto.DeleteResponse](t, w).DeletedCount)
}

func TestHandler_CheckAdmin_PassesCallerAndTarget(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().HasRole(mock.Anything, "self@x.com", "other@x.com", domain.RoleAdmin).Return(false, nil)

	w := env.do(t, http.MethodGet, "/users/admin/other@x.com", nil, "self@x.com")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())
}

func TestHandler_CheckDecorator_True(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().HasRole(mock.Anything, "deco@x.com", "deco@x.com", domain.RoleDecorator).Return(true, nil)

	w := env.do(t, http.MethodGet, "/users/decorator/deco@x.com", nil, "deco@x.com")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"decorator":true}`, w.Body.String())
}

func TestHandler_PromoteUser(t *testing.T) {
	env := setupRouter(t)
	env.admin(adminEmail)

	id := primitive.NewObjectID()
	env.users.EXPECT().Promote(mock.Anything, id).Return(domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	w := env.do(t, http.MethodPatch, "/users/admin/"+id.Hex(), nil, adminEmail)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1}`, w.Body.String())
}

// --- Services ---

func TestHandler_ListServices_Public(t *testing.T) {
	env := setupRouter(t)

	env.catalog.EXPECT().List(mock.Anything).Return([]*domain.Service{{Name: "Stage", Category: "Wedding"}}, nil)

	w := env.do(t, http.MethodGet, "/services", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Service](t, w), 1)
}

func TestHandler_GetService_NotFound(t *testing.T) {
	env := setupRouter(t)

	id := primitive.NewObjectID()
	env.catalog.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrServiceNotFound)

	w := env.do(t, http.MethodGet, "/services/"+id.Hex(), nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetService_InvalidID(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/services/xyz", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateService_Admin(t *testing.T) {
	env := setupRouter(t)
	env.admin(adminEmail)

	svc := &domain.Service{ID: primitive.NewObjectID(), Name: "Stage", Category: "Wedding", Price: 500}
	env.catalog.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateServiceInput) bool {
		return in.Name == "Stage" && in.Price == 500 && in.CreatedBy == adminEmail
	})).Return(svc, nil)

	w := env.do(t, http.MethodPost, "/services", `{"name":"Stage","category":"Wedding","price":500}`, adminEmail)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, svc.ID.Hex(), *decode[dto.InsertResponse](t, w).InsertedID)
}

func TestHandler_CreateService_MissingPrice(t *testing.T) {
	env := setupRouter(t)
	env.admin(adminEmail)

	w := env.do(t, http.MethodPost, "/services", `{"name":"Stage","category":"Wedding"}`, adminEmail)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Public(t *testing.T) {
	env := setupRouter(t)

	serviceID := primitive.NewObjectID()
	booking := &domain.Booking{ID: primitive.NewObjectID()}
	env.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.ServiceID == serviceID && in.UserEmail == "a@x.com"
	})).Return(booking, nil)

	w := env.do(t, http.MethodPost, "/bookings", dto.CreateBookingRequest{
		UserEmail: "a@x.com",
		ServiceID: serviceID.Hex(),
		Price:     120,
	}, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, booking.ID.Hex(), *decode[dto.InsertResponse](t, w).InsertedID)
}

func TestHandler_CreateBooking_InvalidServiceID(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/bookings", dto.CreateBookingRequest{
		UserEmail: "a@x.com",
		ServiceID: "not-an-object-id",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings_FilterByEmail(t *testing.T) {
	env := setupRouter(t)

	env.bookings.EXPECT().List(mock.Anything, "a@x.com").Return([]*domain.Booking{{UserEmail: "a@x.com"}}, nil)

	w := env.do(t, http.MethodGet, "/bookings?email=a@x.com", nil, "someone@x.com")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Booking](t, w), 1)
}

func TestHandler_DeleteBooking_AnyAuthenticatedCaller(t *testing.T) {
	env := setupRouter(t)

	id := primitive.NewObjectID()
	env.bookings.EXPECT().Delete(mock.Anything, id).Return(domain.DeleteResult{DeletedCount: 1}, nil)

	w := env.do(t, http.MethodDelete, "/bookings/"+id.Hex(), nil, "not-the-owner@x.com")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, w.Body.String())
}

func TestHandler_ConfirmBooking_Success(t *testing.T) {
	env := setupRouter(t)
	env.admin(adminEmail)

	id := primitive.NewObjectID()
	env.bookings.EXPECT().Confirm(mock.Anything, id, "Rina").Return(domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	w := env.do(t, http.MethodPatch, "/bookings/"+id.Hex(), dto.ConfirmBookingRequest{DecoratorName: "Rina"}, adminEmail)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), decode[dto.UpdateResponse](t, w).ModifiedCount)
}

func TestHandler_ConfirmBooking_MissingDecorator(t *testing.T) {
	env := setupRouter(t)
	env.admin(adminEmail)

	w := env.do(t, http.MethodPatch, "/bookings/"+primitive.NewObjectID().Hex(), `{}`, adminEmail)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Payments ---

func TestHandler_CreatePaymentIntent_Success(t *testing.T) {
	env := setupRouter(t)

	env.payments.EXPECT().CreateIntent(mock.Anything, 49.99).Return("pi_secret", nil)

	w := env.do(t, http.MethodPost, "/create-payment-intent", dto.PaymentIntentRequest{Price: 49.99}, "a@x.com")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_secret"}`, w.Body.String())
}

func TestHandler_CreatePaymentIntent_ProviderDown(t *testing.T) {
	env := setupRouter(t)

	env.payments.EXPECT().CreateIntent(mock.Anything, 10.0).Return("", domain.ErrPaymentProvider)

	w := env.do(t, http.MethodPost, "/create-payment-intent", dto.PaymentIntentRequest{Price: 10}, "a@x.com")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "payment provider unavailable", decode[dto.ErrorResponse](t, w).Message)
}

func TestHandler_RecordPayment_Success(t *testing.T) {
	env := setupRouter(t)

	bookingID := primitive.NewObjectID()
	payment := &domain.Payment{ID: primitive.NewObjectID(), BookingID: bookingID, TransactionID: "tx_1"}
	env.payments.EXPECT().Record(mock.Anything, domain.RecordPaymentInput{
		BookingID:     bookingID,
		Email:         "a@x.com",
		Price:         100,
		TransactionID: "tx_1",
	}).Return(&domain.PaymentRecord{
		Payment: payment,
		Update:  domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1},
	}, nil)

	w := env.do(t, http.MethodPost, "/payments", dto.RecordPaymentRequest{
		BookingID:     bookingID.Hex(),
		TransactionID: "tx_1",
		Price:         100,
		Email:         "a@x.com",
	}, "a@x.com")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.PaymentResponse](t, w)
	assert.Equal(t, payment.ID.Hex(), *resp.InsertResult.InsertedID)
	assert.Equal(t, int64(1), resp.UpdateResult.ModifiedCount)
}

func TestHandler_RecordPayment_BadBookingID(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/payments", `{"bookingId":"zzz","transactionId":"tx","price":1,"email":"a@x.com"}`, "a@x.com")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListPayments_OtherEmailForbidden(t *testing.T) {
	env := setupRouter(t)

	env.payments.EXPECT().ListByEmail(mock.Anything, "self@x.com", "other@x.com").Return(nil, domain.ErrForbidden)

	w := env.do(t, http.MethodGet, "/payments/other@x.com", nil, "self@x.com")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden access", decode[dto.ErrorResponse](t, w).Message)
}

// --- Stats ---

func TestHandler_AdminStats(t *testing.T) {
	env := setupRouter(t)
	env.admin(adminEmail)

	env.stats.EXPECT().Collect(mock.Anything).Return(&domain.AdminStats{
		Users:    3,
		Services: 2,
		Bookings: 3,
		Revenue:  350,
		ServiceStats: []domain.CategoryCount{
			{Category: "Wedding", Count: 2},
			{Category: "Birthday", Count: 1},
		},
	}, nil)

	w := env.do(t, http.MethodGet, "/admin-stats", nil, adminEmail)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"users": 3, "services": 2, "bookings": 3, "revenue": 350,
		"serviceStats": [{"category":"Wedding","count":2},{"category":"Birthday","count":1}]
	}`, w.Body.String())
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	env := setupRouter(t)
	env.admin(adminEmail)

	env.stats.EXPECT().Collect(mock.Anything).Return(nil, assert.AnError)

	w := env.do(t, http.MethodGet, "/admin-stats", nil, adminEmail)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decode[dto.ErrorResponse](t, w).Message)
}

// --- Access control ---

var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/users"},
	{http.MethodDelete, "/users/" + primitive.NewObjectID().Hex()},
	{http.MethodGet, "/users/admin/a@x.com"},
	{http.MethodGet, "/users/decorator/a@x.com"},
	{http.MethodPatch, "/users/admin/" + primitive.NewObjectID().Hex()},
	{http.MethodPost, "/services"},
	{http.MethodDelete, "/services/" + primitive.NewObjectID().Hex()},
	{http.MethodGet, "/bookings"},
	{http.MethodDelete, "/bookings/" + primitive.NewObjectID().Hex()},
	{http.MethodPatch, "/bookings/" + primitive.NewObjectID().Hex()},
	{http.MethodPost, "/create-payment-intent"},
	{http.MethodPost, "/payments"},
	{http.MethodGet, "/payments/a@x.com"},
	{http.MethodGet, "/admin-stats"},
}

var adminRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/users"},
	{http.MethodDelete, "/users/" + primitive.NewObjectID().Hex()},
	{http.MethodPatch, "/users/admin/" + primitive.NewObjectID().Hex()},
	{http.MethodPost, "/services"},
	{http.MethodDelete, "/services/" + primitive.NewObjectID().Hex()},
	{http.MethodPatch, "/bookings/" + primitive.NewObjectID().Hex()},
	{http.MethodGet, "/admin-stats"},
}

func TestHandler_ProtectedRoutes_RequireToken(t *testing.T) {
	for _, rt := range protectedRoutes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			// no expectations: any service call fails the test
			env := setupRouter(t)

			w := env.do(t, rt.method, rt.path, `{}`, "")

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "unauthorized access", decode[dto.ErrorResponse](t, w).Message)
		})
	}
}

func TestHandler_AdminRoutes_ForbiddenForNonAdmin(t *testing.T) {
	for _, rt := range adminRoutes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			env := setupRouter(t)
			env.authz.EXPECT().Authorize(mock.Anything, "user@x.com", domain.RoleAdmin).Return(domain.ErrForbidden)

			w := env.do(t, rt.method, rt.path, `{}`, "user@x.com")

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Equal(t, "forbidden access", decode[dto.ErrorResponse](t, w).Message)
		})
	}
}
