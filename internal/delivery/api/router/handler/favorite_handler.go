package handler

import (
	"log/slog"
	"net/http"

	"million/internal/delivery/api/middleware"
	"million/internal/delivery/api/response"
	"million/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for favorites handlers
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// Add handles saving a listing to the caller's favorites
func (h *FavoriteHandler) Add(c echo.Context) error {
	if err := h.favoriteUC.Add(c.Request().Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Remove handles dropping a listing from the caller's favorites
func (h *FavoriteHandler) Remove(c echo.Context) error {
	if err := h.favoriteUC.Remove(c.Request().Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// List handles retrieving the caller's favorite listing ids
func (h *FavoriteHandler) List(c echo.Context) error {
	ids, err := h.favoriteUC.List(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ids)
}
