package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"million/internal/domain/entity"
	domainerrors "million/internal/domain/errors"
	"million/internal/domain/repository"
	mockRepo "million/internal/mocks/repository"
	mockSvc "million/internal/mocks/service"
	"million/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestListingShareService(t *testing.T) (usecase.ListingShareUsecase, *mockRepo.MockPropertyRepository, *mockSvc.MockQRCodeService) {
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewListingShareService(ListingShareServiceParams{
		PropertyRepo: propertyRepo,
		QRCodeSvc:    qrcodeSvc,
		Logger:       logger,
	})

	return service, propertyRepo, qrcodeSvc
}

func TestListingShareService_ListingQR_Success(t *testing.T) {
	service, propertyRepo, qrcodeSvc := createTestListingShareService(t)
	ctx := context.Background()

	propertyRepo.On("FindByID", ctx, "p1").Return(&entity.Property{ID: "p1"}, nil)
	qrcodeSvc.On("GenerateListingQR", "p1").Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := service.ListingQR(ctx, "p1")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestListingShareService_ListingQR_PropertyNotFound(t *testing.T) {
	service, propertyRepo, qrcodeSvc := createTestListingShareService(t)
	ctx := context.Background()

	propertyRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrPropertyNotFound)

	_, err := service.ListingQR(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
	qrcodeSvc.AssertNotCalled(t, "GenerateListingQR", mock.Anything)
}
