package main

import (
	"context"
	"log/slog"
	"os"

	"feira/config"
	"feira/internal/delivery"
	"feira/internal/delivery/http"
	"feira/internal/delivery/http/middleware"
	"feira/internal/delivery/http/router/handler"
	"feira/internal/infra/auth"
	logs "feira/internal/infra/log"
	"feira/internal/infra/persistence/postgres"
	"feira/internal/infra/pubsub"
	"feira/internal/infra/storage"
	"feira/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
		storage.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewCredentialRepository,
			postgres.NewProductRepository,
			postgres.NewPurchaseRepository,
			postgres.NewTrackingRepository,
			postgres.NewReviewRepository,
			postgres.NewVehicleRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewTrackingService,
			impl.NewReviewService,
			impl.NewVehicleService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewMetricsMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewProfileHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewTrackingHandler,
			handler.NewReviewHandler,
			handler.NewVehicleHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
