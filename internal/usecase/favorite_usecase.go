package usecase

import "context"

// FavoriteUsecase manages a user's saved listings. State lives behind the
// key-value port, scoped per user — never in process globals.
type FavoriteUsecase interface {
	Add(ctx context.Context, userID, propertyID string) error
	Remove(ctx context.Context, userID, propertyID string) error
	List(ctx context.Context, userID string) ([]string, error)
}
