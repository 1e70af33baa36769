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

// propertyTraceService implements the PropertyTraceUsecase interface.
type propertyTraceService struct {
	traceRepo    repository.PropertyTraceRepository
	propertyRepo repository.PropertyRepository
	logger       *slog.Logger
}

// PropertyTraceServiceParams holds dependencies for propertyTraceService, injected by Fx.
type PropertyTraceServiceParams struct {
	fx.In

	TraceRepo    repository.PropertyTraceRepository
	PropertyRepo repository.PropertyRepository
	Logger       *slog.Logger
}

// NewPropertyTraceService is the constructor for propertyTraceService.
func NewPropertyTraceService(params PropertyTraceServiceParams) usecase.PropertyTraceUsecase {
	return &propertyTraceService{
		traceRepo:    params.TraceRepo,
		propertyRepo: params.PropertyRepo,
		logger:       params.Logger,
	}
}

func (srv *propertyTraceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListByProperty returns the sale history of a property, most recent sale first.
func (srv *propertyTraceService) ListByProperty(ctx context.Context, propertyID string) ([]*entity.PropertyTrace, error) {
	traces, err := srv.traceRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list property traces")
	}

	return traces, nil
}

// Create records a sale event. The referenced property must exist.
func (srv *propertyTraceService) Create(ctx context.Context, input *usecase.CreateTraceInput) (*entity.PropertyTrace, error) {
	if _, err := srv.propertyRepo.FindByID(ctx, input.IDProperty); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
		}

		return nil, errors.Wrap(err, "failed to check property existence")
	}

	trace := &entity.PropertyTrace{
		IDProperty: input.IDProperty,
		DateSale:   input.DateSale,
		Name:       input.Name,
		Value:      input.Value,
		Tax:        input.Tax,
	}

	if err := srv.traceRepo.Create(ctx, trace); err != nil {
		srv.log(ctx).Error("Failed to record property trace",
			slog.String("idProperty", input.IDProperty),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to record property trace")
	}

	srv.log(ctx).Debug("Property trace recorded",
		slog.String("id", trace.ID),
		slog.String("idProperty", input.IDProperty),
	)

	return trace, nil
}
