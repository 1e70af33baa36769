// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"million/internal/domain/entity"
)

// ErrPropertyNotFound is a domain-specific error returned when a property is not found.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyFilter carries the optional listing filters. A nil field is omitted
// from the store query entirely; filters present are AND-combined.
type PropertyFilter struct {
	// Name matches as a case-insensitive substring.
	Name *string
	// Address matches as a case-insensitive substring.
	Address *string
	// MinPrice and MaxPrice are inclusive bounds.
	MinPrice *float64
	MaxPrice *float64
}

// Page describes the requested result window. Page is 1-based.
type Page struct {
	Page     int
	PageSize int
}

// Skip returns the number of documents to skip for this window.
func (p Page) Skip() int64 {
	return int64(p.Page-1) * int64(p.PageSize)
}

// PropertyUpdate holds the staged field-level set operations for a partial
// update. A nil field is left untouched in the store.
type PropertyUpdate struct {
	Name         *string
	Address      *string
	Price        *float64
	CodeInternal *string
	Year         *int
}

// IsEmpty reports whether no field was staged; an empty update must not reach
// the store.
func (u PropertyUpdate) IsEmpty() bool {
	return u.Name == nil && u.Address == nil && u.Price == nil &&
		u.CodeInternal == nil && u.Year == nil
}

// PropertyRepository defines the standard operations for property persistence.
type PropertyRepository interface {
	// FindPage retrieves one page of properties matching the filter, sorted
	// ascending by name, together with the total match count.
	FindPage(ctx context.Context, filter PropertyFilter, page Page) ([]*entity.Property, int64, error)

	// FindByID retrieves a single property by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Property, error)

	// Create persists a new property and fills in the generated ID.
	Create(ctx context.Context, property *entity.Property) error

	// Update applies the staged field sets as one combined store update.
	Update(ctx context.Context, id string, update PropertyUpdate) error

	// Delete removes the property permanently.
	Delete(ctx context.Context, id string) error
}
