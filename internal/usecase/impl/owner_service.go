package impl

import (
	"context"
	"log/slog"

	deliverycontext "million/internal/delivery/context"
	"million/internal/domain/entity"
	domainerrors "million/internal/domain/errors"
	"million/internal/domain/repository"
	"million/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ownerService implements the OwnerUsecase interface.
type ownerService struct {
	ownerRepo repository.OwnerRepository
	logger    *slog.Logger
}

// OwnerServiceParams holds dependencies for ownerService, injected by Fx.
type OwnerServiceParams struct {
	fx.In

	OwnerRepo repository.OwnerRepository
	Logger    *slog.Logger
}

// NewOwnerService is the constructor for ownerService.
func NewOwnerService(params OwnerServiceParams) usecase.OwnerUsecase {
	return &ownerService{
		ownerRepo: params.OwnerRepo,
		logger:    params.Logger,
	}
}

func (srv *ownerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *ownerService) List(ctx context.Context) ([]*entity.Owner, error) {
	owners, err := srv.ownerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owners")
	}

	return owners, nil
}

func (srv *ownerService) GetByID(ctx context.Context, id string) (*entity.Owner, error) {
	owner, err := srv.ownerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOwnerNotFound, "owner not found")
		}

		return nil, errors.Wrap(err, "failed to find owner by id")
	}

	return owner, nil
}

func (srv *ownerService) Create(ctx context.Context, input *usecase.OwnerInput) (*entity.Owner, error) {
	owner := &entity.Owner{
		Name:     input.Name,
		Address:  input.Address,
		Photo:    input.Photo,
		Birthday: input.Birthday,
	}

	if err := srv.ownerRepo.Create(ctx, owner); err != nil {
		srv.log(ctx).Error("Failed to create owner", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create owner")
	}

	srv.log(ctx).Debug("Owner created", slog.String("id", owner.ID))

	return owner, nil
}

// Update replaces the profile fields of an existing owner.
func (srv *ownerService) Update(ctx context.Context, id string, input *usecase.OwnerInput) error {
	if _, err := srv.ownerRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return errors.Wrap(domainerrors.ErrOwnerNotFound, "owner not found")
		}

		return errors.Wrap(err, "failed to find owner by id")
	}

	owner := &entity.Owner{
		ID:       id,
		Name:     input.Name,
		Address:  input.Address,
		Photo:    input.Photo,
		Birthday: input.Birthday,
	}

	if err := srv.ownerRepo.Update(ctx, id, owner); err != nil {
		srv.log(ctx).Error("Failed to update owner", slog.String("id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to update owner")
	}

	return nil
}

func (srv *ownerService) Delete(ctx context.Context, id string) error {
	if _, err := srv.ownerRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return errors.Wrap(domainerrors.ErrOwnerNotFound, "owner not found")
		}

		return errors.Wrap(err, "failed to find owner by id")
	}

	if err := srv.ownerRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete owner", slog.String("id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete owner")
	}

	srv.log(ctx).Info("Owner deleted", slog.String("id", id))

	return nil
}
