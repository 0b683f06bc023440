package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"barbershop-backend/internal/db"
	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var defaultServices = []repository.SeedService{
	{Name: "Haircut", Price: decimal.NewFromInt(5)},
	{Name: "Beard Trim", Price: decimal.NewFromInt(3)},
	{Name: "Facial", Price: decimal.NewFromInt(10)},
	{Name: "Hair Wash", Price: decimal.NewFromInt(2)},
	{Name: "Hair Styling", Price: decimal.NewFromInt(7)},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	_ = godotenv.Load()

	dbURL := flag.String("database-url", os.Getenv("DATABASE_URL"), "postgres connection string")
	shopName := flag.String("shop", "Main Street Barbers", "name of the default shop; empty skips it")
	migrate := flag.Bool("migrate", true, "apply migrations before seeding")
	flag.Parse()

	if *dbURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	if *migrate {
		if err := db.Migrate(*dbURL); err != nil {
			logger.Error("failed to migrate", "err", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()
	pg, err := db.Connect(ctx, *dbURL)
	if err != nil {
		logger.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	if err := seed(ctx, pg, *shopName, logger); err != nil {
		logger.Error("seed failed", "err", err)
		os.Exit(1)
	}
	logger.Info("database seeded", "admin", "admin@barber.com", "staff", "john@barber.com")
}

func seed(ctx context.Context, pg *db.Postgres, shopName string, logger *slog.Logger) error {
	users := repository.UserRepository{DB: pg}
	shops := repository.ShopRepository{DB: pg}
	services := repository.ServiceRepository{DB: pg}

	var shopID *uuid.UUID
	if shopName != "" {
		id, err := shops.SeedShop(ctx, repository.ShopParams{Name: shopName, Address: "1 High Street"})
		if err != nil {
			return err
		}
		shopID = &id
		logger.Info("shop ready", "name", shopName, "id", id)
	}

	accounts := []struct {
		params   repository.CreateUserParams
		password string
	}{
		{repository.CreateUserParams{Name: "Admin User", Email: "admin@barber.com", Phone: "+44 1234 567890", Role: domain.RoleAdmin, Status: domain.StatusActive}, "admin123"},
		{repository.CreateUserParams{Name: "John Smith", Email: "john@barber.com", Phone: "+44 7890 123456", Role: domain.RoleStaff, Status: domain.StatusActive, ShopID: shopID}, "barber123"},
	}
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		a.params.PasswordHash = string(hash)
		created, err := users.SeedAccount(ctx, a.params)
		if err != nil {
			return err
		}
		logger.Info("user ready", "email", a.params.Email, "created", created)
	}

	if err := services.SeedDefaults(ctx, defaultServices); err != nil {
		return err
	}
	logger.Info("services ready", "count", len(defaultServices))
	return nil
}
