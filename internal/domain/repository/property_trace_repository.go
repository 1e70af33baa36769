package repository

import (
	"context"

	"million/internal/domain/entity"
)

// PropertyTraceRepository defines the operations for sales-history persistence.
// Traces are append-only; there is no update or delete.
type PropertyTraceRepository interface {
	// FindByProperty retrieves the traces of a property sorted by sale date
	// descending (most recent first).
	FindByProperty(ctx context.Context, propertyID string) ([]*entity.PropertyTrace, error)

	// Create persists a new trace record and fills in the generated ID.
	Create(ctx context.Context, trace *entity.PropertyTrace) error
}
