package handler

import (
	"net/http"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/handler/dto"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	input := domain.CreateUserInput{
		Email:          req.Email,
		Name:           req.Name,
		PhotoURL:       req.PhotoURL,
		TelegramChatID: req.TelegramChatID,
	}

	user, created, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, dto.UserExistsResponse{Message: domain.ErrUserExists.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToInsertResponse(user.ID.Hex()))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, orEmpty(users))
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	res, err := h.userService.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeleteResponse(res))
}

func (h *Handler) CheckAdmin(c *ginext.Context) {
	isAdmin, err := h.userService.HasRole(c.Request.Context(), middleware.CallerEmail(c), c.Param("email"), domain.RoleAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminCheckResponse{Admin: isAdmin})
}

func (h *Handler) CheckDecorator(c *ginext.Context) {
	isDecorator, err := h.userService.HasRole(c.Request.Context(), middleware.CallerEmail(c), c.Param("email"), domain.RoleDecorator)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DecoratorCheckResponse{Decorator: isDecorator})
}

// PromoteUser serves PATCH /users/admin/:id, which grants the decorator role.
func (h *Handler) PromoteUser(c *ginext.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	res, err := h.userService.Promote(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUpdateResponse(res))
}
