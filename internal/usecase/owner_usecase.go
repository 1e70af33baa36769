package usecase

import (
	"context"
	"time"

	"million/internal/domain/entity"
)

// OwnerInput defines the data for creating or replacing an owner profile.
type OwnerInput struct {
	Name     string
	Address  string
	Photo    string
	Birthday time.Time
}

// OwnerUsecase defines the interface for owner profile operations.
type OwnerUsecase interface {
	List(ctx context.Context) ([]*entity.Owner, error)

	// GetByID returns the owner or ErrOwnerNotFound.
	GetByID(ctx context.Context, id string) (*entity.Owner, error)

	Create(ctx context.Context, input *OwnerInput) (*entity.Owner, error)

	// Update replaces the profile fields of an existing owner.
	Update(ctx context.Context, id string, input *OwnerInput) error

	Delete(ctx context.Context, id string) error
}
