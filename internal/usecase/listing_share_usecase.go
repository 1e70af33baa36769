package usecase

import "context"

// ListingShareUsecase produces share artifacts for published listings.
type ListingShareUsecase interface {
	// ListingQR renders the listing's public URL as a PNG QR code. Fails with
	// ErrPropertyNotFound when the listing is missing.
	ListingQR(ctx context.Context, propertyID string) ([]byte, error)
}
