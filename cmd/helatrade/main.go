package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ushankamesh-devX/helatrade-sub000/config"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/delivery"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/http"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/http/middleware"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/http/router/handler"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/service"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/infra/auth"
	logs "github.com/ushankamesh-devX/helatrade-sub000/internal/infra/log"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/infra/persistence/postgres"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/infra/pubsub"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/infra/qrcode"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/infra/slug"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewConnectionRepository,
			postgres.NewCategoryRepository,
			postgres.NewSessionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasherFromConfig,
			auth.NewJWTService,
			slug.NewAllocator,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewConnectionService,
			impl.NewDirectoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewConnectionHandler,
			handler.NewDirectoryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
