package impl

import (
	"context"
	"log/slog"

	deliverycontext "million/internal/delivery/context"
	domainerrors "million/internal/domain/errors"
	"million/internal/domain/repository"
	"million/internal/domain/service"
	"million/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface on top of the
// key-value port. Each user's favorites live in their own set.
type favoriteService struct {
	store        service.KeyValueStore
	propertyRepo repository.PropertyRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	Store        service.KeyValueStore
	PropertyRepo repository.PropertyRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		store:        params.Store,
		propertyRepo: params.PropertyRepo,
		logger:       params.Logger,
	}
}

func favoritesKey(userID string) string {
	return "favorites:" + userID
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add saves a listing to the user's favorites. The listing must exist.
func (srv *favoriteService) Add(ctx context.Context, userID, propertyID string) error {
	if _, err := srv.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
		}

		return errors.Wrap(err, "failed to check property existence")
	}

	if err := srv.store.SetAdd(ctx, favoritesKey(userID), propertyID); err != nil {
		return errors.Wrap(err, "failed to add favorite")
	}

	srv.log(ctx).Debug("Favorite added",
		slog.String("userID", userID),
		slog.String("idProperty", propertyID),
	)

	return nil
}

// Remove drops a listing from the user's favorites. Removing an absent
// favorite is a no-op.
func (srv *favoriteService) Remove(ctx context.Context, userID, propertyID string) error {
	if err := srv.store.SetRemove(ctx, favoritesKey(userID), propertyID); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// List returns the property ids the user has favorited.
func (srv *favoriteService) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := srv.store.SetMembers(ctx, favoritesKey(userID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return ids, nil
}
