// Package handler contains the HTTP handlers of the API delivery.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"million/config"
	"million/internal/delivery/api/middleware"
	"million/internal/delivery/api/response"
	"million/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PropertyHandlerParams holds dependencies for PropertyHandler, injected by Fx.
type PropertyHandlerParams struct {
	fx.In

	PropertyUC usecase.PropertyUsecase
	QRCodeUC   usecase.ListingShareUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// PropertyHandler holds dependencies for listing-related handlers
type PropertyHandler struct {
	propertyUC usecase.PropertyUsecase
	qrcodeUC   usecase.ListingShareUsecase
	config     *config.Config
	logger     *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler
func NewPropertyHandler(params PropertyHandlerParams) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: params.PropertyUC,
		qrcodeUC:   params.QRCodeUC,
		config:     params.Config,
		logger:     params.Logger,
	}
}

// CreatePropertyRequest represents the request body for publishing a listing
type CreatePropertyRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Address      string  `json:"address" validate:"required,max=300"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	CodeInternal string  `json:"codeInternal" validate:"required,max=50"`
	Year         int     `json:"year" validate:"required,gte=1800,lte=2100"`
	Description  string  `json:"description" validate:"max=2000"`
	IDOwner      string  `json:"idOwner" validate:"required"`
}

// UpdatePropertyRequest represents the request body for a partial update.
// Absent and null fields leave the stored value untouched.
type UpdatePropertyRequest struct {
	Name         usecase.Field[string]  `json:"name"`
	Address      usecase.Field[string]  `json:"address"`
	Price        usecase.Field[float64] `json:"price"`
	CodeInternal usecase.Field[string]  `json:"codeInternal"`
	Year         usecase.Field[int]     `json:"year"`
	Description  usecase.Field[string]  `json:"description"`
}

// fieldErrors applies the create-time rules to every field that is present.
// Absent fields carry no constraints since they are never staged.
func (r *UpdatePropertyRequest) fieldErrors() map[string]string {
	problems := make(map[string]string)
	if v, ok := r.Name.Get(); ok && (v == "" || len(v) > 200) {
		problems["name"] = "must be non-empty and at most 200 characters"
	}
	if v, ok := r.Address.Get(); ok && (v == "" || len(v) > 300) {
		problems["address"] = "must be non-empty and at most 300 characters"
	}
	if v, ok := r.Price.Get(); ok && v <= 0 {
		problems["price"] = "must be greater than zero"
	}
	if v, ok := r.CodeInternal.Get(); ok && (v == "" || len(v) > 50) {
		problems["codeInternal"] = "must be non-empty and at most 50 characters"
	}
	if v, ok := r.Year.Get(); ok && (v < 1800 || v > 2100) {
		problems["year"] = "must be between 1800 and 2100"
	}
	if v, ok := r.Description.Get(); ok && len(v) > 2000 {
		problems["description"] = "must be at most 2000 characters"
	}

	if len(problems) == 0 {
		return nil
	}

	return problems
}

// List handles the public listing query
func (h *PropertyHandler) List(c echo.Context) error {
	input := &usecase.ListPropertiesInput{
		Page:     1,
		PageSize: h.config.Pagination.DefaultPageSize,
	}

	if name := c.QueryParam("name"); name != "" {
		input.Name = &name
	}
	if address := c.QueryParam("address"); address != "" {
		input.Address = &address
	}
	if raw := c.QueryParam("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "minPrice must be a number")
		}
		input.MinPrice = &minPrice
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "maxPrice must be a number")
		}
		input.MaxPrice = &maxPrice
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return response.BadRequest(c, "INVALID_QUERY", "page must be a positive integer")
		}
		input.Page = page
	}
	if raw := c.QueryParam("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			return response.BadRequest(c, "INVALID_QUERY", "pageSize must be a positive integer")
		}
		if pageSize > h.config.Pagination.MaxPageSize {
			pageSize = h.config.Pagination.MaxPageSize
		}
		input.PageSize = pageSize
	}

	page, err := h.propertyUC.List(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// unfilteredPageSize is the default page size of the no-filter catalogue
// dump used by crawlers and the map view.
const unfilteredPageSize = 100

// ListAll handles the unfiltered catalogue query
func (h *PropertyHandler) ListAll(c echo.Context) error {
	input := &usecase.ListPropertiesInput{
		Page:     1,
		PageSize: unfilteredPageSize,
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return response.BadRequest(c, "INVALID_QUERY", "page must be a positive integer")
		}
		input.Page = page
	}
	if raw := c.QueryParam("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			return response.BadRequest(c, "INVALID_QUERY", "pageSize must be a positive integer")
		}
		if pageSize > unfilteredPageSize {
			pageSize = unfilteredPageSize
		}
		input.PageSize = pageSize
	}

	page, err := h.propertyUC.List(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetByID handles retrieving a single listing
func (h *PropertyHandler) GetByID(c echo.Context) error {
	property, err := h.propertyUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, property)
}

// Create handles publishing a new listing
func (h *PropertyHandler) Create(c echo.Context) error {
	var req CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreatePropertyInput{
		Name:         req.Name,
		Address:      req.Address,
		Price:        req.Price,
		CodeInternal: req.CodeInternal,
		Year:         req.Year,
		Description:  req.Description,
		IDOwner:      req.IDOwner,
	}

	property, err := h.propertyUC.Create(c.Request().Context(), input, middleware.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/properties/"+property.ID)

	return response.Success(c, http.StatusCreated, property)
}

// Update handles a partial listing update
func (h *PropertyHandler) Update(c echo.Context) error {
	var req UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}
	if problems := req.fieldErrors(); problems != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid property input", problems)
	}

	input := &usecase.UpdatePropertyInput{
		Name:         req.Name,
		Address:      req.Address,
		Price:        req.Price,
		CodeInternal: req.CodeInternal,
		Year:         req.Year,
		Description:  req.Description,
	}

	if err := h.propertyUC.Update(c.Request().Context(), c.Param("id"), input, middleware.GetUserID(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete handles removing a listing
func (h *PropertyHandler) Delete(c echo.Context) error {
	if err := h.propertyUC.Delete(c.Request().Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ShareQR renders the listing's public URL as a PNG QR code
func (h *PropertyHandler) ShareQR(c echo.Context) error {
	png, err := h.qrcodeUC.ListingQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
