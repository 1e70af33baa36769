package handler

import (
	"log/slog"
	"net/http"

	"million/internal/delivery/api/response"
	"million/internal/domain/service"
	"million/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageUC     usecase.PropertyImageUsecase
	FileStorage service.FileStorage
	Logger      *slog.Logger
}

// ImageHandler holds dependencies for image-related handlers
type ImageHandler struct {
	imageUC     usecase.PropertyImageUsecase
	fileStorage service.FileStorage
	logger      *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		imageUC:     params.ImageUC,
		fileStorage: params.FileStorage,
		logger:      params.Logger,
	}
}

// Upload handles a multipart image upload for a listing
func (h *ImageHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A 'file' form field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Cannot read uploaded file")
	}
	defer file.Close()

	image, err := h.imageUC.Upload(c.Request().Context(), c.Param("id"), &usecase.FileUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Content:     file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, image)
}

// ListByProperty handles retrieving the enabled images of a listing
func (h *ImageHandler) ListByProperty(c echo.Context) error {
	images, err := h.imageUC.ListByProperty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, images)
}

// Disable handles soft-deleting an image
func (h *ImageHandler) Disable(c echo.Context) error {
	if err := h.imageUC.Disable(c.Request().Context(), c.Param("imageId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ServeFile streams a stored image file back to the client. Local file
// buckets have no public URLs, so the API fronts them itself.
func (h *ImageHandler) ServeFile(c echo.Context) error {
	content, contentType, err := h.fileStorage.Open(c.Request().Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return response.NotFound(c, "NOT_FOUND", "File not found")
		}

		return response.HandleAppError(c, err)
	}
	defer content.Close()

	return c.Stream(http.StatusOK, contentType, content)
}
