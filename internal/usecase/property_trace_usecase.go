package usecase

import (
	"context"
	"time"

	"million/internal/domain/entity"
)

// CreateTraceInput defines the data for appending a sales-history record.
type CreateTraceInput struct {
	IDProperty string
	DateSale   time.Time
	Name       string
	Value      float64
	Tax        float64
}

// PropertyTraceUsecase defines the interface for sales-history operations.
type PropertyTraceUsecase interface {
	// ListByProperty returns the property's traces, most recent sale first.
	ListByProperty(ctx context.Context, propertyID string) ([]*entity.PropertyTrace, error)

	// Create appends a trace. Fails with ErrPropertyNotFound when the
	// referenced property is missing.
	Create(ctx context.Context, input *CreateTraceInput) (*entity.PropertyTrace, error)
}
