package handler

import (
	"net/http"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, orEmpty(bookings))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	serviceID, err := primitive.ObjectIDFromHex(req.ServiceID)
	if err != nil {
		h.handleError(c, domain.ErrInvalidID)
		return
	}

	input := domain.CreateBookingInput{
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
		ServiceID:   serviceID,
		ServiceName: req.ServiceName,
		Price:       req.Price,
		BookingDate: req.BookingDate,
		Location:    req.Location,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInsertResponse(booking.ID.Hex()))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	res, err := h.bookingService.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeleteResponse(res))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req dto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	res, err := h.bookingService.Confirm(c.Request.Context(), id, req.DecoratorName)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUpdateResponse(res))
}
