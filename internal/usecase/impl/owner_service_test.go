package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"million/internal/domain/entity"
	domainerrors "million/internal/domain/errors"
	"million/internal/domain/repository"
	mockRepo "million/internal/mocks/repository"
	"million/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOwnerService(t *testing.T) (usecase.OwnerUsecase, *mockRepo.MockOwnerRepository) {
	ownerRepo := mockRepo.NewMockOwnerRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOwnerService(OwnerServiceParams{
		OwnerRepo: ownerRepo,
		Logger:    logger,
	})

	return service, ownerRepo
}

func TestOwnerService_List(t *testing.T) {
	service, ownerRepo := createTestOwnerService(t)
	ctx := context.Background()

	owners := []*entity.Owner{
		{ID: "o1", Name: "Ana"},
		{ID: "o2", Name: "Carlos"},
	}
	ownerRepo.On("FindAll", ctx).Return(owners, nil)

	result, err := service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, owners, result)
}

func TestOwnerService_GetByID_NotFound(t *testing.T) {
	service, ownerRepo := createTestOwnerService(t)
	ctx := context.Background()

	ownerRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrOwnerNotFound)

	_, err := service.GetByID(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrOwnerNotFound)
}

func TestOwnerService_Create(t *testing.T) {
	service, ownerRepo := createTestOwnerService(t)
	ctx := context.Background()

	birthday := time.Date(1985, 6, 15, 0, 0, 0, 0, time.UTC)

	ownerRepo.On("Create", ctx, mock.MatchedBy(func(owner *entity.Owner) bool {
		return owner.Name == "Ana" && owner.Birthday.Equal(birthday)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Owner).ID = "o1"
	}).Return(nil)

	owner, err := service.Create(ctx, &usecase.OwnerInput{
		Name:     "Ana",
		Address:  "Calle 10 #20-30",
		Birthday: birthday,
	})

	require.NoError(t, err)
	assert.Equal(t, "o1", owner.ID)
}

func TestOwnerService_Update_NotFound(t *testing.T) {
	service, ownerRepo := createTestOwnerService(t)
	ctx := context.Background()

	ownerRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrOwnerNotFound)

	err := service.Update(ctx, "missing", &usecase.OwnerInput{Name: "X"})

	assert.ErrorIs(t, err, domainerrors.ErrOwnerNotFound)
	ownerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestOwnerService_Update_ReplacesProfile(t *testing.T) {
	service, ownerRepo := createTestOwnerService(t)
	ctx := context.Background()

	ownerRepo.On("FindByID", ctx, "o1").Return(&entity.Owner{ID: "o1", Name: "Ana"}, nil)
	ownerRepo.On("Update", ctx, "o1", mock.MatchedBy(func(owner *entity.Owner) bool {
		return owner.ID == "o1" && owner.Name == "Ana María"
	})).Return(nil)

	err := service.Update(ctx, "o1", &usecase.OwnerInput{Name: "Ana María", Address: "Nueva 1"})

	require.NoError(t, err)
}

func TestOwnerService_Delete_NotFound(t *testing.T) {
	service, ownerRepo := createTestOwnerService(t)
	ctx := context.Background()

	ownerRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrOwnerNotFound)

	err := service.Delete(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrOwnerNotFound)
	ownerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
