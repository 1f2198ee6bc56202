package main

import (
	"context"
	"log/slog"
	"os"

	"rumbo/config"
	"rumbo/internal/delivery"
	"rumbo/internal/delivery/http"
	httpmw "rumbo/internal/delivery/http/middleware"
	"rumbo/internal/delivery/http/router/handler"
	deliverymw "rumbo/internal/delivery/middleware"
	logs "rumbo/internal/infra/log"
	"rumbo/internal/infra/persistence/mongodb"
	"rumbo/internal/infra/persistence/postgres"
	"rumbo/internal/usecase/impl"

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
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCustomerRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
			mongodb.NewTrackingRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderService,
			impl.NewTrackingService,
			impl.NewGeoService,
			impl.NewCustomerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmw.NewErrorMiddleware,
			deliverymw.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
			handler.NewTrackingHandler,
			handler.NewGeoHandler,
			handler.NewCustomerHandler,
			handler.NewSystemHandler,
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
