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
	"million/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// propertyServiceFixtures holds all test dependencies for property service tests.
type propertyServiceFixtures struct {
	service      usecase.PropertyUsecase
	propertyRepo *mockRepo.MockPropertyRepository
	ownerRepo    *mockRepo.MockOwnerRepository
	imageRepo    *mockRepo.MockPropertyImageRepository
}

func createTestPropertyService(t *testing.T) propertyServiceFixtures {
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	ownerRepo := mockRepo.NewMockOwnerRepository(t)
	imageRepo := mockRepo.NewMockPropertyImageRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPropertyService(PropertyServiceParams{
		PropertyRepo: propertyRepo,
		OwnerRepo:    ownerRepo,
		ImageRepo:    imageRepo,
		Logger:       logger,
	})

	return propertyServiceFixtures{
		service:      service,
		propertyRepo: propertyRepo,
		ownerRepo:    ownerRepo,
		imageRepo:    imageRepo,
	}
}

func TestPropertyService_List_DecoratesThumbnails(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	withImage := &entity.Property{ID: "p1", IDOwner: "o1", Name: "Casa Norte", Price: 100000}
	withoutImage := &entity.Property{ID: "p2", IDOwner: "o1", Name: "Casa Sur", Price: 200000}

	fx.propertyRepo.On("FindPage", ctx, mock.Anything, repository.Page{Page: 1, PageSize: 20}).
		Return([]*entity.Property{withImage, withoutImage}, int64(2), nil)
	fx.imageRepo.On("FindFirstEnabledByProperty", ctx, "p1").
		Return(&entity.PropertyImage{ID: "i1", IDProperty: "p1", File: "https://cdn/casa.jpg", Enabled: true}, nil)
	fx.imageRepo.On("FindFirstEnabledByProperty", ctx, "p2").
		Return(nil, repository.ErrImageNotFound)

	page, err := fx.service.List(ctx, &usecase.ListPropertiesInput{Page: 1, PageSize: 20})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, "https://cdn/casa.jpg", page.Items[0].Image)
	assert.Empty(t, page.Items[1].Image)
}

func TestPropertyService_List_PassesFiltersThrough(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	name := "casa"
	minPrice := 50000.0
	maxPrice := 150000.0

	fx.propertyRepo.On("FindPage", ctx,
		repository.PropertyFilter{Name: &name, MinPrice: &minPrice, MaxPrice: &maxPrice},
		repository.Page{Page: 3, PageSize: 10}).
		Return([]*entity.Property{}, int64(0), nil)

	page, err := fx.service.List(ctx, &usecase.ListPropertiesInput{
		Name:     &name,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Page:     3,
		PageSize: 10,
	})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Total)
}

func TestPropertyService_List_RepositoryError(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.propertyRepo.On("FindPage", ctx, mock.Anything, mock.Anything).
		Return(nil, int64(0), errors.New("connection reset"))

	_, err := fx.service.List(ctx, &usecase.ListPropertiesInput{Page: 1, PageSize: 20})

	assert.Error(t, err)
}

func TestPropertyService_GetByID_Success(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.propertyRepo.On("FindByID", ctx, "p1").
		Return(&entity.Property{ID: "p1", IDOwner: "o1", Name: "Casa Norte"}, nil)
	fx.imageRepo.On("FindFirstEnabledByProperty", ctx, "p1").
		Return(nil, repository.ErrImageNotFound)

	property, err := fx.service.GetByID(ctx, "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", property.ID)
	assert.Empty(t, property.Image)
}

func TestPropertyService_GetByID_NotFound(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.propertyRepo.On("FindByID", ctx, "missing").
		Return(nil, repository.ErrPropertyNotFound)

	_, err := fx.service.GetByID(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestPropertyService_Create_Success(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	input := &usecase.CreatePropertyInput{
		Name:         "Casa Norte",
		Address:      "Calle 12 #34-56",
		Price:        250000,
		CodeInternal: "CN-001",
		Year:         2019,
		IDOwner:      "o1",
	}

	fx.ownerRepo.On("FindByID", ctx, "o1").
		Return(&entity.Owner{ID: "o1", Name: "Ana"}, nil)
	fx.propertyRepo.On("Create", ctx, mock.AnythingOfType("*entity.Property")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Property).ID = "p1"
		}).
		Return(nil)
	fx.imageRepo.On("FindFirstEnabledByProperty", ctx, "p1").
		Return(nil, repository.ErrImageNotFound)

	property, err := fx.service.Create(ctx, input, "u1")

	require.NoError(t, err)
	assert.Equal(t, "p1", property.ID)
	assert.Equal(t, "o1", property.IDOwner)
	assert.Equal(t, 250000.0, property.Price)
}

func TestPropertyService_Create_OwnerMissingFailsPrecondition(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.ownerRepo.On("FindByID", ctx, "ghost").
		Return(nil, repository.ErrOwnerNotFound)

	_, err := fx.service.Create(ctx, &usecase.CreatePropertyInput{IDOwner: "ghost"}, "u1")

	assert.ErrorIs(t, err, domainerrors.ErrOwnerPrecondition)
	fx.propertyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPropertyService_Update_StagesOnlySetFields(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.propertyRepo.On("FindByID", ctx, "p1").
		Return(&entity.Property{ID: "p1", IDOwner: "o1"}, nil)
	fx.propertyRepo.On("Update", ctx, "p1", mock.MatchedBy(func(u repository.PropertyUpdate) bool {
		return u.Price != nil && *u.Price == 300000 &&
			u.Name != nil && *u.Name == "Casa Renovada" &&
			u.Address == nil && u.CodeInternal == nil && u.Year == nil
	})).Return(nil)

	input := &usecase.UpdatePropertyInput{
		Name:  usecase.SetTo("Casa Renovada"),
		Price: usecase.SetTo(300000.0),
	}

	err := fx.service.Update(ctx, "p1", input, "o1")

	require.NoError(t, err)
}

func TestPropertyService_Update_DescriptionIsNeverStaged(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.propertyRepo.On("FindByID", ctx, "p1").
		Return(&entity.Property{ID: "p1", IDOwner: "o1"}, nil)

	// Only Description set: nothing to stage, so the store is untouched.
	input := &usecase.UpdatePropertyInput{
		Description: usecase.SetTo("remodelada en 2024"),
	}

	err := fx.service.Update(ctx, "p1", input, "o1")

	require.NoError(t, err)
	fx.propertyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestPropertyService_Update_EmptyUpdateIsNoOp(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.propertyRepo.On("FindByID", ctx, "p1").
		Return(&entity.Property{ID: "p1", IDOwner: "o1"}, nil)

	err := fx.service.Update(ctx, "p1", &usecase.UpdatePropertyInput{}, "o1")

	require.NoError(t, err)
	fx.propertyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestPropertyService_Update_NotFoundBeforeForbidden(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.propertyRepo.On("FindByID", ctx, "missing").
		Return(nil, repository.ErrPropertyNotFound)

	// Even a caller who owns nothing sees not-found, never forbidden.
	err := fx.service.Update(ctx, "missing", &usecase.UpdatePropertyInput{
		Name: usecase.SetTo("x"),
	}, "someone-else")

	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrPropertyForbidden)
}

func TestPropertyService_Update_ForbiddenForNonOwner(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.propertyRepo.On("FindByID", ctx, "p1").
		Return(&entity.Property{ID: "p1", IDOwner: "o1"}, nil)

	err := fx.service.Update(ctx, "p1", &usecase.UpdatePropertyInput{
		Price: usecase.SetTo(1.0),
	}, "o2")

	assert.ErrorIs(t, err, domainerrors.ErrPropertyForbidden)
	fx.propertyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestPropertyService_Delete_Success(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.propertyRepo.On("FindByID", ctx, "p1").
		Return(&entity.Property{ID: "p1", IDOwner: "o1"}, nil)
	fx.propertyRepo.On("Delete", ctx, "p1").Return(nil)

	err := fx.service.Delete(ctx, "p1", "o1")

	require.NoError(t, err)
}

func TestPropertyService_Delete_NotFound(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.propertyRepo.On("FindByID", ctx, "missing").
		Return(nil, repository.ErrPropertyNotFound)

	err := fx.service.Delete(ctx, "missing", "o1")

	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestPropertyService_Delete_ForbiddenForNonOwner(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()

	fx.propertyRepo.On("FindByID", ctx, "p1").
		Return(&entity.Property{ID: "p1", IDOwner: "o1"}, nil)

	err := fx.service.Delete(ctx, "p1", "o2")

	assert.ErrorIs(t, err, domainerrors.ErrPropertyForbidden)
	fx.propertyRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
