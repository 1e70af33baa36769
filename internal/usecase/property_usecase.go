// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// ListPropertiesInput defines the public listing query. Nil filters are
// omitted from the store query; Page is 1-based.
type ListPropertiesInput struct {
	Name     *string
	Address  *string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	PageSize int
}

// CreatePropertyInput defines the data required to publish a new listing.
type CreatePropertyInput struct {
	Name         string
	Address      string
	Price        float64
	CodeInternal string
	Year         int
	Description  string
	IDOwner      string
}

// UpdatePropertyInput carries the partial update for a listing. Unchanged
// fields are left untouched in the store. Description is accepted by the API
// but is not part of the staged update fields.
type UpdatePropertyInput struct {
	Name         Field[string]
	Address      Field[string]
	Price        Field[float64]
	CodeInternal Field[string]
	Year         Field[int]
	Description  Field[string]
}

// --- Output DTOs ---

// PropertyOutput is the transport shape of a listing, decorated with the
// representative thumbnail URL when one exists.
type PropertyOutput struct {
	ID           string  `json:"id"`
	IDOwner      string  `json:"idOwner"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	CodeInternal string  `json:"codeInternal"`
	Year         int     `json:"year"`
	Description  string  `json:"description"`
	Image        string  `json:"image,omitempty"`
}

// PagedProperties is one page of listings plus the total match count, from
// which callers derive the page count as ceil(total/pageSize).
type PagedProperties struct {
	Items    []*PropertyOutput `json:"items"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Total    int64             `json:"total"`
}

// PropertyUsecase defines the interface for listing business operations.
// This is the contract that the delivery layer depends on.
type PropertyUsecase interface {
	// List returns one page of listings matching the filters. Unmatched
	// filters and out-of-range pages yield an empty page, never an error.
	List(ctx context.Context, input *ListPropertiesInput) (*PagedProperties, error)

	// GetByID returns the decorated listing or ErrPropertyNotFound.
	GetByID(ctx context.Context, id string) (*PropertyOutput, error)

	// Create publishes a listing after checking that input.IDOwner exists
	// (ErrOwnerPrecondition otherwise). callerID is the authenticated subject;
	// it is recorded for audit logging but not cross-checked against IDOwner.
	Create(ctx context.Context, input *CreatePropertyInput, callerID string) (*PropertyOutput, error)

	// Update applies a partial update. Fails with ErrPropertyNotFound when the
	// listing is missing and ErrPropertyForbidden when callerOwnerID is not
	// the listing's owner — strictly in that order, before any field staging.
	Update(ctx context.Context, id string, input *UpdatePropertyInput, callerOwnerID string) error

	// Delete removes a listing under the same not-found/forbidden guard.
	Delete(ctx context.Context, id string, callerOwnerID string) error
}
