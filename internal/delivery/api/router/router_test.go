package router

import (
	"log/slog"
	"net/http"
	"testing"

	"million/config"
	"million/internal/delivery/api/middleware"
	"million/internal/delivery/api/router/handler"
	mockservice "million/internal/mocks/service"
	mockusecase "million/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.Default()
	cfg := &config.Config{}
	cfg.Pagination.DefaultPageSize = 20
	cfg.Pagination.MaxPageSize = 100

	r := NewRouter(RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC: mockusecase.NewMockAuthUsecase(t),
			Logger: logger,
		}),
		PropertyHandler: handler.NewPropertyHandler(handler.PropertyHandlerParams{
			PropertyUC: mockusecase.NewMockPropertyUsecase(t),
			QRCodeUC:   mockusecase.NewMockListingShareUsecase(t),
			Config:     cfg,
			Logger:     logger,
		}),
		OwnerHandler: handler.NewOwnerHandler(handler.OwnerHandlerParams{
			OwnerUC: mockusecase.NewMockOwnerUsecase(t),
			Logger:  logger,
		}),
		ImageHandler: handler.NewImageHandler(handler.ImageHandlerParams{
			ImageUC:     mockusecase.NewMockPropertyImageUsecase(t),
			FileStorage: mockservice.NewMockFileStorage(t),
			Logger:      logger,
		}),
		TraceHandler: handler.NewTraceHandler(handler.TraceHandlerParams{
			TraceUC: mockusecase.NewMockPropertyTraceUsecase(t),
			Logger:  logger,
		}),
		FavoriteHandler: handler.NewFavoriteHandler(handler.FavoriteHandlerParams{
			FavoriteUC: mockusecase.NewMockFavoriteUsecase(t),
			Logger:     logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(mockservice.NewMockTokenService(t)),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return e
}

func TestRegisterRoutes_ListingSurface(t *testing.T) {
	e := newTestRouter(t)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		http.MethodGet + " /api/properties",
		http.MethodGet + " /api/properties/all",
		http.MethodGet + " /api/properties/:id",
		http.MethodGet + " /api/properties/:id/qr",
		http.MethodPost + " /api/properties",
		http.MethodPatch + " /api/properties/:id",
		http.MethodPut + " /api/properties/:id",
		http.MethodDelete + " /api/properties/:id",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
