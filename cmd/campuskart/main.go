package main

import (
	"context"
	"log/slog"
	"os"

	"campuskart/config"
	"campuskart/internal/delivery"
	"campuskart/internal/delivery/http"
	"campuskart/internal/delivery/http/middleware"
	"campuskart/internal/delivery/http/router/handler"
	"campuskart/internal/domain/service"
	"campuskart/internal/infra/auth"
	logs "campuskart/internal/infra/log"
	"campuskart/internal/infra/mail"
	"campuskart/internal/infra/payment"
	"campuskart/internal/infra/persistence/postgres"
	"campuskart/internal/infra/pickup"
	"campuskart/internal/infra/pubsub"
	"campuskart/internal/infra/storage"
	"campuskart/internal/usecase/impl"

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
			postgres.NewBuyerRepository,
			postgres.NewAdminRepository,
			postgres.NewItemRepository,
			postgres.NewOrderRepository,
			postgres.NewPurchaseRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			newPickupCodeService,
			storage.New,
			mail.NewSMTPMailer,
			payment.NewStripeClient,
			pubsub.NewEventPublisher,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

// newPickupCodeService creates the pickup QR code service with dependency injection
func newPickupCodeService(cfg *config.Config) service.PickupCodeService {
	if cfg.PickupCode == nil {
		// Use default values if not configured
		return pickup.NewQRCodeService(256, "M")
	}

	return pickup.NewQRCodeService(cfg.PickupCode.Size, cfg.PickupCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewCheckoutService,
			impl.NewPurchasesService,
			impl.NewFulfillmentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewAdminHandler,
			handler.NewItemHandler,
			handler.NewOrderHandler,
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
