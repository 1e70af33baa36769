package impl

import (
	"context"
	"log/slog"

	domainerrors "million/internal/domain/errors"
	"million/internal/domain/repository"
	"million/internal/domain/service"
	"million/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listingShareService implements the ListingShareUsecase interface.
type listingShareService struct {
	propertyRepo repository.PropertyRepository
	qrcodeSvc    service.QRCodeService
	logger       *slog.Logger
}

// ListingShareServiceParams holds dependencies for listingShareService, injected by Fx.
type ListingShareServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	QRCodeSvc    service.QRCodeService
	Logger       *slog.Logger
}

// NewListingShareService is the constructor for listingShareService.
func NewListingShareService(params ListingShareServiceParams) usecase.ListingShareUsecase {
	return &listingShareService{
		propertyRepo: params.PropertyRepo,
		qrcodeSvc:    params.QRCodeSvc,
		logger:       params.Logger,
	}
}

// ListingQR renders the listing's public URL as a PNG QR code.
func (srv *listingShareService) ListingQR(ctx context.Context, propertyID string) ([]byte, error) {
	if _, err := srv.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
		}

		return nil, errors.Wrap(err, "failed to check property existence")
	}

	png, err := srv.qrcodeSvc.GenerateListingQR(propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR")
	}

	return png, nil
}
