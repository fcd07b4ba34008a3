package handler

import (
	"net/http"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/handler/dto"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListServices(c *ginext.Context) {
	services, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, orEmpty(services))
}

func (h *Handler) GetService(c *ginext.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	svc, err := h.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *Handler) CreateService(c *ginext.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	input := domain.CreateServiceInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       *req.Price,
		Unit:        req.Unit,
		Description: req.Description,
		Image:       req.Image,
		CreatedBy:   middleware.CallerEmail(c),
	}

	svc, err := h.catalogService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInsertResponse(svc.ID.Hex()))
}

func (h *Handler) DeleteService(c *ginext.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	res, err := h.catalogService.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeleteResponse(res))
}
