package main

import (
	"context"
	"log/slog"
	"os"

	"million/config"
	"million/internal/delivery"
	"million/internal/delivery/api"
	apimiddleware "million/internal/delivery/api/middleware"
	"million/internal/delivery/api/router/handler"
	"million/internal/domain/service"
	"million/internal/infra/auth"
	"million/internal/infra/kv"
	logs "million/internal/infra/log"
	"million/internal/infra/persistence/mongodb"
	"million/internal/infra/qrcode"
	"million/internal/infra/storage"
	"million/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewPropertyRepository,
			mongodb.NewOwnerRepository,
			mongodb.NewPropertyImageRepository,
			mongodb.NewPropertyTraceRepository,
			mongodb.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
			kv.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(cfg.App.BaseURL, 256, "M")
	}

	return qrcode.NewQRCodeService(cfg.App.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPropertyService,
			impl.NewOwnerService,
			impl.NewPropertyImageService,
			impl.NewPropertyTraceService,
			impl.NewAuthService,
			impl.NewFavoriteService,
			impl.NewListingShareService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPropertyHandler,
			handler.NewOwnerHandler,
			handler.NewImageHandler,
			handler.NewTraceHandler,
			handler.NewFavoriteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
