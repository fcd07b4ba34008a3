package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const livenessMessage = "Style Decor Server is Running"

type TokenIssuer interface {
	Issue(email, name string) (string, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, bool, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
	Promote(ctx context.Context, id primitive.ObjectID) (domain.UpdateResult, error)
	HasRole(ctx context.Context, caller, email string, role domain.Role) (bool, error)
}

type CatalogSvc interface {
	Create(ctx context.Context, input domain.CreateServiceInput) (*domain.Service, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context, userEmail string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
	Confirm(ctx context.Context, id primitive.ObjectID, decorator string) (domain.UpdateResult, error)
}

type PaymentSvc interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	Record(ctx context.Context, input domain.RecordPaymentInput) (*domain.PaymentRecord, error)
	ListByEmail(ctx context.Context, caller, email string) ([]*domain.Payment, error)
}

type StatsSvc interface {
	Collect(ctx context.Context) (*domain.AdminStats, error)
}

type Handler struct {
	tokens         TokenIssuer
	userService    UserSvc
	catalogService CatalogSvc
	bookingService BookingSvc
	paymentService PaymentSvc
	statsService   StatsSvc
}

func NewHandler(
	tokens TokenIssuer,
	userService UserSvc,
	catalogService CatalogSvc,
	bookingService BookingSvc,
	paymentService PaymentSvc,
	statsService StatsSvc,
) *Handler {
	return &Handler{
		tokens:         tokens,
		userService:    userService,
		catalogService: catalogService,
		bookingService: bookingService,
		paymentService: paymentService,
		statsService:   statsService,
	}
}

func (h *Handler) Liveness(c *ginext.Context) {
	c.String(http.StatusOK, livenessMessage)
}

func (h *Handler) IssueToken(c *ginext.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	token, err := h.tokens.Issue(req.Email, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Stats

func (h *Handler) AdminStats(c *ginext.Context) {
	stats, err := h.statsService.Collect(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

func (h *Handler) parseID(c *ginext.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: domain.ErrInvalidID.Error()})
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handler) badRequest(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: domain.ErrForbidden.Error()})

	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrPaymentProvider):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: domain.ErrPaymentProvider.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
	}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
