package usecase

import (
	"context"
	"io"

	"million/internal/domain/entity"
)

// FileUpload carries one multipart file from the delivery layer.
type FileUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// PropertyImageUsecase defines the interface for listing image operations.
type PropertyImageUsecase interface {
	// Upload stores the file in the blob bucket and records an enabled image
	// for the property. Fails with ErrPropertyNotFound when the listing is
	// missing.
	Upload(ctx context.Context, propertyID string, upload *FileUpload) (*entity.PropertyImage, error)

	// ListByProperty returns the enabled images of a property in insertion order.
	ListByProperty(ctx context.Context, propertyID string) ([]*entity.PropertyImage, error)

	// Disable soft-deletes an image (enabled=false). Images are never removed.
	Disable(ctx context.Context, id string) error
}
