package repository

import (
	"context"
	"errors"

	"million/internal/domain/entity"
)

// ErrImageNotFound is a domain-specific error returned when an image is not found.
var ErrImageNotFound = errors.New("property image not found")

// PropertyImageRepository defines the standard operations for image persistence.
// Images are soft-deleted only: Disable flips the enabled flag, there is no
// hard delete.
type PropertyImageRepository interface {
	// FindEnabledByProperty retrieves the enabled images of a property in
	// insertion order.
	FindEnabledByProperty(ctx context.Context, propertyID string) ([]*entity.PropertyImage, error)

	// FindFirstEnabledByProperty retrieves the representative thumbnail: the
	// first enabled image by insertion order, or ErrImageNotFound.
	FindFirstEnabledByProperty(ctx context.Context, propertyID string) (*entity.PropertyImage, error)

	// Create persists a new image record and fills in the generated ID.
	Create(ctx context.Context, image *entity.PropertyImage) error

	// Disable sets enabled=false on the image.
	Disable(ctx context.Context, id string) error
}
