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

func createTestTraceService(t *testing.T) (usecase.PropertyTraceUsecase, *mockRepo.MockPropertyTraceRepository, *mockRepo.MockPropertyRepository) {
	traceRepo := mockRepo.NewMockPropertyTraceRepository(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPropertyTraceService(PropertyTraceServiceParams{
		TraceRepo:    traceRepo,
		PropertyRepo: propertyRepo,
		Logger:       logger,
	})

	return service, traceRepo, propertyRepo
}

func TestPropertyTraceService_ListByProperty(t *testing.T) {
	service, traceRepo, _ := createTestTraceService(t)
	ctx := context.Background()

	// Repository contract: most recent sale first.
	traces := []*entity.PropertyTrace{
		{ID: "t2", IDProperty: "p1", DateSale: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "t1", IDProperty: "p1", DateSale: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	traceRepo.On("FindByProperty", ctx, "p1").Return(traces, nil)

	result, err := service.ListByProperty(ctx, "p1")

	require.NoError(t, err)
	assert.Equal(t, traces, result)
}

func TestPropertyTraceService_Create_Success(t *testing.T) {
	service, traceRepo, propertyRepo := createTestTraceService(t)
	ctx := context.Background()

	dateSale := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	propertyRepo.On("FindByID", ctx, "p1").Return(&entity.Property{ID: "p1"}, nil)
	traceRepo.On("Create", ctx, mock.MatchedBy(func(trace *entity.PropertyTrace) bool {
		return trace.IDProperty == "p1" && trace.Value == 320000 && trace.Tax == 9600
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.PropertyTrace).ID = "t1"
	}).Return(nil)

	trace, err := service.Create(ctx, &usecase.CreateTraceInput{
		IDProperty: "p1",
		DateSale:   dateSale,
		Name:       "Venta 2024",
		Value:      320000,
		Tax:        9600,
	})

	require.NoError(t, err)
	assert.Equal(t, "t1", trace.ID)
}

func TestPropertyTraceService_Create_PropertyNotFound(t *testing.T) {
	service, traceRepo, propertyRepo := createTestTraceService(t)
	ctx := context.Background()

	propertyRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrPropertyNotFound)

	_, err := service.Create(ctx, &usecase.CreateTraceInput{IDProperty: "missing"})

	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
	traceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
