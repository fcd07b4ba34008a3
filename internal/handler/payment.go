package handler

import (
	"net/http"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/handler/dto"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/middleware"
	"github.com/wb-go/wbf/ginext"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) CreatePaymentIntent(c *ginext.Context) {
	var req dto.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	secret, err := h.paymentService.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentIntentResponse{ClientSecret: secret})
}

func (h *Handler) RecordPayment(c *ginext.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(req.BookingID)
	if err != nil {
		h.handleError(c, domain.ErrInvalidID)
		return
	}

	record, err := h.paymentService.Record(c.Request.Context(), domain.RecordPaymentInput{
		BookingID:     bookingID,
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(record))
}

func (h *Handler) ListPayments(c *ginext.Context) {
	payments, err := h.paymentService.ListByEmail(c.Request.Context(), middleware.CallerEmail(c), c.Param("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, orEmpty(payments))
}
