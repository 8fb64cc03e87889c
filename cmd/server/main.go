package main

import (
	"context"

	"github.com/joho/godotenv"

	"storefront_backend/internal/api"
	"storefront_backend/internal/app/router"
	orderadapters "storefront_backend/internal/feature/orders/adapters"
	orderhandler "storefront_backend/internal/feature/orders/transport/handler"
	orderusecase "storefront_backend/internal/feature/orders/usecase"
	productadapters "storefront_backend/internal/feature/products/adapters"
	producthandler "storefront_backend/internal/feature/products/transport/handler"
	productusecase "storefront_backend/internal/feature/products/usecase"
	useradapters "storefront_backend/internal/feature/users/adapters"
	userhandler "storefront_backend/internal/feature/users/transport/handler"
	userusecase "storefront_backend/internal/feature/users/usecase"
	"storefront_backend/internal/platform/config"
	"storefront_backend/internal/platform/db"
	jwtmw "storefront_backend/internal/platform/jwt"
	"storefront_backend/internal/platform/logger"
	"storefront_backend/internal/platform/password"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		// Logger options come from config, so bootstrap failures use a
		// default logger.
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("configuration invalid")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	if cfg.RunMigrations {
		if err := db.Migrate(gdb); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
	}

	hasher := password.NewHasher(cfg.PasswordPepper, cfg.SaltRounds)
	issuer := jwtmw.NewIssuer(cfg.TokenSecret)
	errs := api.ErrorWriter{Strict: cfg.StrictErrors}

	// Repositories
	userRepo := useradapters.NewUserPostgres(gdb)
	productRepo := productadapters.NewProductPostgres(gdb)
	orderRepo := orderadapters.NewOrderPostgres(gdb)

	// Usecases
	userUC := userusecase.NewUserUsecase(userRepo, hasher, issuer)
	productUC := productusecase.NewProductUsecase(productRepo)
	orderUC := orderusecase.NewOrderUsecase(orderRepo)

	// Handlers
	userH := userhandler.NewUserHandler(userUC, log, errs)
	productH := producthandler.NewProductHandler(productUC, log, errs)
	orderH := orderhandler.NewOrderHandler(orderUC, log, errs)

	r := router.NewRouter(userH, productH, orderH, issuer, log)

	log.Info().Str("port", cfg.Port).Msg("starting storefront API")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
