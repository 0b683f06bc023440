package server

import (
	"log/slog"
	"net/http"
	"time"

	"barbershop-backend/internal/config"
	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP routes and middleware.
func NewRouter(cfg config.Config,
	logger *slog.Logger,
	metrics *Metrics,
	identity IdentityResolver,
	health handler.HealthHandler,
	docs handler.DocsHandler,
	home handler.HomeHandler,
	auth handler.AuthHandler,
	users handler.UserHandler,
	shops handler.ShopHandler,
	services handler.ServiceHandler,
	entries handler.EntryHandler,
	payLater handler.PayLaterHandler,
	reports handler.ReportHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(cfg.RateLimit, 1*time.Minute))
	if metrics != nil {
		r.Use(metrics.Instrument)
	}

	health.RegisterRoutes(r)
	home.RegisterRoutes(r)
	docs.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(IdentifyMiddleware(identity))

		auth.RegisterRoutes(api)
		services.RegisterPublicRoutes(api)

		// any signed-in user; staff scope is applied by the services
		api.Group(func(pr chi.Router) {
			pr.Use(RequireAuthenticated)
			users.RegisterRoutes(pr)
			shops.RegisterRoutes(pr)
			entries.RegisterRoutes(pr)
			payLater.RegisterRoutes(pr)
		})
		// admin only
		api.Group(func(ar chi.Router) {
			ar.Use(RequireRole(domain.RoleAdmin))
			users.RegisterAdminRoutes(ar)
			shops.RegisterAdminRoutes(ar)
			services.RegisterAdminRoutes(ar)
			payLater.RegisterAdminRoutes(ar)
			reports.RegisterAdminRoutes(ar)
		})
	})

	return r
}
