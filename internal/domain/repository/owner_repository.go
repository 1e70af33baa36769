package repository

import (
	"context"
	"errors"

	"million/internal/domain/entity"
)

// ErrOwnerNotFound is a domain-specific error returned when an owner is not found.
var ErrOwnerNotFound = errors.New("owner not found")

// OwnerRepository defines the standard operations for owner persistence.
type OwnerRepository interface {
	// FindAll retrieves every owner, sorted ascending by name.
	FindAll(ctx context.Context) ([]*entity.Owner, error)

	// FindByID retrieves a single owner by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.Owner, error)

	// Create persists a new owner. When the entity carries a preset ID (owner
	// provisioned for a registered user) that ID is kept; otherwise one is
	// generated and filled in.
	Create(ctx context.Context, owner *entity.Owner) error

	// Update replaces the owner document under the given ID.
	Update(ctx context.Context, id string, owner *entity.Owner) error

	// Delete removes the owner permanently.
	Delete(ctx context.Context, id string) error
}
