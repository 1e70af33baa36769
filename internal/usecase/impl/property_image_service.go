package impl

import (
	"context"
	"log/slog"

	deliverycontext "million/internal/delivery/context"
	"million/internal/domain/entity"
	domainerrors "million/internal/domain/errors"
	"million/internal/domain/repository"
	"million/internal/domain/service"
	"million/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// propertyImageService implements the PropertyImageUsecase interface.
type propertyImageService struct {
	imageRepo    repository.PropertyImageRepository
	propertyRepo repository.PropertyRepository
	fileStorage  service.FileStorage
	logger       *slog.Logger
}

// PropertyImageServiceParams holds dependencies for propertyImageService, injected by Fx.
type PropertyImageServiceParams struct {
	fx.In

	ImageRepo    repository.PropertyImageRepository
	PropertyRepo repository.PropertyRepository
	FileStorage  service.FileStorage
	Logger       *slog.Logger
}

// NewPropertyImageService is the constructor for propertyImageService.
func NewPropertyImageService(params PropertyImageServiceParams) usecase.PropertyImageUsecase {
	return &propertyImageService{
		imageRepo:    params.ImageRepo,
		propertyRepo: params.PropertyRepo,
		fileStorage:  params.FileStorage,
		logger:       params.Logger,
	}
}

func (srv *propertyImageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores the file bytes in the blob bucket, then records the image.
// The two writes are not atomic; an orphaned blob after a failed insert is
// garbage, not corruption.
func (srv *propertyImageService) Upload(ctx context.Context, propertyID string, upload *usecase.FileUpload) (*entity.PropertyImage, error) {
	if _, err := srv.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
		}

		return nil, errors.Wrap(err, "failed to check property existence")
	}

	key, err := srv.fileStorage.Save(ctx, upload.Filename, upload.ContentType, upload.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store image file",
			slog.String("idProperty", propertyID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, "failed to store image file")
	}

	fileURL, err := srv.fileStorage.URL(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve image url")
	}

	image := &entity.PropertyImage{
		IDProperty: propertyID,
		File:       fileURL,
		Enabled:    true,
	}

	if err := srv.imageRepo.Create(ctx, image); err != nil {
		srv.log(ctx).Error("Failed to record property image",
			slog.String("idProperty", propertyID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to record property image")
	}

	srv.log(ctx).Debug("Property image uploaded",
		slog.String("id", image.ID),
		slog.String("idProperty", propertyID),
	)

	return image, nil
}

// ListByProperty returns the enabled images of a property in insertion order.
func (srv *propertyImageService) ListByProperty(ctx context.Context, propertyID string) ([]*entity.PropertyImage, error) {
	images, err := srv.imageRepo.FindEnabledByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list property images")
	}

	return images, nil
}

// Disable soft-deletes an image.
func (srv *propertyImageService) Disable(ctx context.Context, id string) error {
	if err := srv.imageRepo.Disable(ctx, id); err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return errors.Wrap(domainerrors.ErrImageNotFound, "image not found")
		}

		return errors.Wrap(err, "failed to disable image")
	}

	srv.log(ctx).Info("Property image disabled", slog.String("id", id))

	return nil
}
