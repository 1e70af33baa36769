// Package impl contains the implementation of the application's business logic.
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

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	propertyRepo repository.PropertyRepository
	ownerRepo    repository.OwnerRepository
	imageRepo    repository.PropertyImageRepository
	logger       *slog.Logger
}

// PropertyServiceParams holds dependencies for propertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	OwnerRepo    repository.OwnerRepository
	ImageRepo    repository.PropertyImageRepository
	Logger       *slog.Logger
}

// NewPropertyService is the constructor for propertyService. It receives all dependencies as interfaces.
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	return &propertyService{
		propertyRepo: params.PropertyRepo,
		ownerRepo:    params.OwnerRepo,
		imageRepo:    params.ImageRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of listings plus the total match count.
func (srv *propertyService) List(ctx context.Context, input *usecase.ListPropertiesInput) (*usecase.PagedProperties, error) {
	filter := repository.PropertyFilter{
		Name:     input.Name,
		Address:  input.Address,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
	}
	page := repository.Page{Page: input.Page, PageSize: input.PageSize}

	properties, total, err := srv.propertyRepo.FindPage(ctx, filter, page)
	if err != nil {
		srv.log(ctx).Error("Failed to list properties", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list properties")
	}

	items := make([]*usecase.PropertyOutput, 0, len(properties))
	for _, property := range properties {
		output, err := srv.decorate(ctx, property)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decorate property")
		}
		items = append(items, output)
	}

	return &usecase.PagedProperties{
		Items:    items,
		Page:     input.Page,
		PageSize: input.PageSize,
		Total:    total,
	}, nil
}

// GetByID returns the decorated listing or ErrPropertyNotFound.
func (srv *propertyService) GetByID(ctx context.Context, id string) (*usecase.PropertyOutput, error) {
	property, err := srv.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
		}

		return nil, errors.Wrap(err, "failed to find property by id")
	}

	output, err := srv.decorate(ctx, property)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decorate property")
	}

	return output, nil
}

// Create publishes a listing on behalf of input.IDOwner.
//
// The owner-existence check and the insert are two independent store
// operations; a concurrent owner deletion between them is possible and
// unguarded.
func (srv *propertyService) Create(ctx context.Context, input *usecase.CreatePropertyInput, callerID string) (*usecase.PropertyOutput, error) {
	srv.log(ctx).Info("Creating property",
		slog.String("idOwner", input.IDOwner),
		slog.String("caller", callerID),
	)

	if _, err := srv.ownerRepo.FindByID(ctx, input.IDOwner); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOwnerPrecondition, "owner referenced by idOwner does not exist")
		}

		return nil, errors.Wrap(err, "failed to check owner existence")
	}

	property := &entity.Property{
		IDOwner:      input.IDOwner,
		Name:         input.Name,
		Address:      input.Address,
		Price:        input.Price,
		CodeInternal: input.CodeInternal,
		Year:         input.Year,
		Description:  input.Description,
	}

	if err := srv.propertyRepo.Create(ctx, property); err != nil {
		srv.log(ctx).Error("Failed to create property", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create property")
	}

	srv.log(ctx).Debug("Property created", slog.String("id", property.ID))

	// A just-created property has no images; decoration yields no thumbnail.
	output, err := srv.decorate(ctx, property)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decorate property")
	}

	return output, nil
}

// Update applies a partial update under the ownership guard. The order of the
// checks is part of the contract: a missing listing is not-found for every
// caller, and a non-owner gets forbidden before any field is examined.
func (srv *propertyService) Update(ctx context.Context, id string, input *usecase.UpdatePropertyInput, callerOwnerID string) error {
	property, err := srv.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
		}

		return errors.Wrap(err, "failed to find property by id")
	}

	if property.IDOwner != callerOwnerID {
		srv.log(ctx).Warn("Rejected property update from non-owner",
			slog.String("id", id),
			slog.String("caller", callerOwnerID),
		)

		return errors.Wrap(domainerrors.ErrPropertyForbidden, "caller does not own this property")
	}

	update := repository.PropertyUpdate{
		Name:         input.Name.Ptr(),
		Address:      input.Address.Ptr(),
		Price:        input.Price.Ptr(),
		CodeInternal: input.CodeInternal.Ptr(),
		Year:         input.Year.Ptr(),
	}

	// An empty partial update is legal and must not touch the store.
	if update.IsEmpty() {
		return nil
	}

	if err := srv.propertyRepo.Update(ctx, id, update); err != nil {
		srv.log(ctx).Error("Failed to update property", slog.String("id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to update property")
	}

	return nil
}

// Delete removes a listing under the same not-found/forbidden guard as Update.
func (srv *propertyService) Delete(ctx context.Context, id string, callerOwnerID string) error {
	property, err := srv.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
		}

		return errors.Wrap(err, "failed to find property by id")
	}

	if property.IDOwner != callerOwnerID {
		srv.log(ctx).Warn("Rejected property delete from non-owner",
			slog.String("id", id),
			slog.String("caller", callerOwnerID),
		)

		return errors.Wrap(domainerrors.ErrPropertyForbidden, "caller does not own this property")
	}

	if err := srv.propertyRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete property", slog.String("id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete property")
	}

	srv.log(ctx).Info("Property deleted", slog.String("id", id))

	return nil
}

// decorate maps the entity to its transport shape and attaches the
// representative thumbnail: the first enabled image of the property, when one
// exists. Post-fetch enrichment, not a store-level join — image cardinality is
// small and the lookup hits an indexed equality filter.
func (srv *propertyService) decorate(ctx context.Context, property *entity.Property) (*usecase.PropertyOutput, error) {
	output := &usecase.PropertyOutput{
		ID:           property.ID,
		IDOwner:      property.IDOwner,
		Name:         property.Name,
		Address:      property.Address,
		Price:        property.Price,
		CodeInternal: property.CodeInternal,
		Year:         property.Year,
		Description:  property.Description,
	}

	image, err := srv.imageRepo.FindFirstEnabledByProperty(ctx, property.ID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return output, nil
		}

		return nil, errors.Wrap(err, "failed to load representative image")
	}
	output.Image = image.File

	return output, nil
}
