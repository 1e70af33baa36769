package repository

import (
	"context"
	"errors"

	"million/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when inserting a user whose email already
// exists (unique index violation).
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// Users are created once at registration and never updated by the domain
// services; owner profile changes go through the Owner entity.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Create persists a new user and fills in the generated ID.
	Create(ctx context.Context, user *entity.User) error
}
