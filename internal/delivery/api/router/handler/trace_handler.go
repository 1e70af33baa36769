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

// TraceHandlerParams holds dependencies for TraceHandler, injected by Fx.
type TraceHandlerParams struct {
	fx.In

	TraceUC usecase.PropertyTraceUsecase
	Logger  *slog.Logger
}

// TraceHandler holds dependencies for sales-history handlers
type TraceHandler struct {
	traceUC usecase.PropertyTraceUsecase
	logger  *slog.Logger
}

// NewTraceHandler is the constructor for TraceHandler
func NewTraceHandler(params TraceHandlerParams) *TraceHandler {
	return &TraceHandler{
		traceUC: params.TraceUC,
		logger:  params.Logger,
	}
}

// CreateTraceRequest represents the request body for recording a sale
type CreateTraceRequest struct {
	DateSale time.Time `json:"dateSale" validate:"required"`
	Name     string    `json:"name" validate:"required,max=200"`
	Value    float64   `json:"value" validate:"required,gt=0"`
	Tax      float64   `json:"tax" validate:"gte=0"`
}

// ListByProperty handles retrieving a listing's sale history
func (h *TraceHandler) ListByProperty(c echo.Context) error {
	traces, err := h.traceUC.ListByProperty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, traces)
}

// Create handles recording a sale event
func (h *TraceHandler) Create(c echo.Context) error {
	var req CreateTraceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trace input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	trace, err := h.traceUC.Create(c.Request().Context(), &usecase.CreateTraceInput{
		IDProperty: c.Param("id"),
		DateSale:   req.DateSale,
		Name:       req.Name,
		Value:      req.Value,
		Tax:        req.Tax,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, trace)
}
