package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"barbershop-backend/internal/config"
	"barbershop-backend/internal/db"
	"barbershop-backend/internal/handler"
	"barbershop-backend/internal/repository"
	"barbershop-backend/internal/server"
	"barbershop-backend/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

var version = "dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			logger.Error("failed to migrate database", "err", err)
			os.Exit(1)
		}
	}

	pg, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	metrics := server.NewMetrics(prometheus.DefaultRegisterer)

	// repositories
	userRepo := repository.UserRepository{DB: pg}
	shopRepo := repository.ShopRepository{DB: pg}
	serviceRepo := repository.ServiceRepository{DB: pg}
	entryRepo := repository.EntryRepository{DB: pg}
	payLaterRepo := repository.PayLaterRepository{DB: pg}

	// services
	authSvc := service.AuthService{Secret: cfg.JWTSecret, TokenTTL: cfg.TokenTTL, Users: userRepo, Logger: logger}
	userSvc := service.UserService{Users: userRepo}
	shopSvc := service.ShopService{Shops: shopRepo}
	catalogSvc := service.CatalogService{Services: serviceRepo}
	entrySvc := service.EntryService{Entries: entryRepo, Users: userRepo, Events: metrics}
	payLaterSvc := service.PayLaterService{PayLater: payLaterRepo, Entries: entryRepo, PhoneRegion: cfg.PhoneRegion, Events: metrics}
	reportSvc := service.ReportService{Entries: entryRepo, PayLater: payLaterRepo}

	router := server.NewRouter(cfg, logger, metrics, authSvc,
		handler.HealthHandler{DB: pg},
		handler.DocsHandler{},
		handler.HomeHandler{Version: version},
		handler.AuthHandler{Service: authSvc},
		handler.UserHandler{Service: userSvc},
		handler.ShopHandler{Service: shopSvc},
		handler.ServiceHandler{Service: catalogSvc},
		handler.EntryHandler{Service: entrySvc},
		handler.PayLaterHandler{Service: payLaterSvc},
		handler.ReportHandler{Service: reportSvc},
	)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server stopped with error", "err", err)
		os.Exit(1)
	}
}
