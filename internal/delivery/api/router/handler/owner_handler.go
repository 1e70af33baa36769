package handler

import (
	"log/slog"
	"net/http"
	"time"

	"million/internal/delivery/api/response"
	"million/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OwnerHandlerParams holds dependencies for OwnerHandler, injected by Fx.
type OwnerHandlerParams struct {
	fx.In

	OwnerUC usecase.OwnerUsecase
	Logger  *slog.Logger
}

// OwnerHandler holds dependencies for owner-related handlers
type OwnerHandler struct {
	ownerUC usecase.OwnerUsecase
	logger  *slog.Logger
}

// NewOwnerHandler is the constructor for OwnerHandler
func NewOwnerHandler(params OwnerHandlerParams) *OwnerHandler {
	return &OwnerHandler{
		ownerUC: params.OwnerUC,
		logger:  params.Logger,
	}
}

// OwnerRequest represents the request body for creating or replacing an owner
type OwnerRequest struct {
	Name     string    `json:"name" validate:"required,max=200"`
	Address  string    `json:"address" validate:"required,max=300"`
	Photo    string    `json:"photo" validate:"omitempty,url"`
	Birthday time.Time `json:"birthday" validate:"required"`
}

// List handles retrieving all owners
func (h *OwnerHandler) List(c echo.Context) error {
	owners, err := h.ownerUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, owners)
}

// GetByID handles retrieving a single owner
func (h *OwnerHandler) GetByID(c echo.Context) error {
	owner, err := h.ownerUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, owner)
}

// Create handles creating a new owner profile
func (h *OwnerHandler) Create(c echo.Context) error {
	var req OwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	owner, err := h.ownerUC.Create(c.Request().Context(), &usecase.OwnerInput{
		Name:     req.Name,
		Address:  req.Address,
		Photo:    req.Photo,
		Birthday: req.Birthday,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, owner)
}

// Update handles replacing an owner profile
func (h *OwnerHandler) Update(c echo.Context) error {
	var req OwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.ownerUC.Update(c.Request().Context(), c.Param("id"), &usecase.OwnerInput{
		Name:     req.Name,
		Address:  req.Address,
		Photo:    req.Photo,
		Birthday: req.Birthday,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")})
}

// Delete handles removing an owner
func (h *OwnerHandler) Delete(c echo.Context) error {
	if err := h.ownerUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
