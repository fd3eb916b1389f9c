package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/odemir/networth-tracker-backend/internal/api/handlers"
	custommiddleware "github.com/odemir/networth-tracker-backend/internal/api/middleware"
	"github.com/odemir/networth-tracker-backend/internal/config"
	"github.com/odemir/networth-tracker-backend/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System      *service.SystemService
	Asset       *service.AssetService
	Transaction *service.TransactionService
	Liability   *service.LiabilityService
	Performance *service.PerformanceService
	Symbol      *service.SymbolService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		// Reference symbol tables are shared data, no user scope.
		r.Route("/symbol", func(r chi.Router) {
			symbolHandler := handlers.NewSymbolHandler(svc.Symbol)
			r.Get("/{market}", symbolHandler.Search)
			r.Get("/{market}/{symbol}", symbolHandler.Lookup)
		})

		// Everything below is scoped to the caller's X-User-ID.
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.RequireUserID)

			r.Route("/asset", func(r chi.Router) {
				assetHandler := handlers.NewAssetHandler(svc.Asset)
				r.Get("/", assetHandler.ListAssets)
				r.Post("/", assetHandler.CreateAsset)
				r.Get("/summary", assetHandler.Summary)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", assetHandler.GetAsset)
					r.Put("/", assetHandler.UpdateAsset)
					r.Put("/price", assetHandler.UpdatePrice)
					r.Delete("/", assetHandler.DeleteAsset)
				})
			})

			r.Route("/transaction", func(r chi.Router) {
				transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
				r.Get("/", transactionHandler.ListTransactions)
				r.Post("/", transactionHandler.RecordTransaction)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", transactionHandler.GetTransaction)
				})
			})

			r.Route("/liability", func(r chi.Router) {
				liabilityHandler := handlers.NewLiabilityHandler(svc.Liability)
				r.Get("/", liabilityHandler.ListLiabilities)
				r.Post("/", liabilityHandler.CreateLiability)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", liabilityHandler.UpdateLiability)
					r.Delete("/", liabilityHandler.DeleteLiability)
				})
			})

			r.Route("/performance", func(r chi.Router) {
				performanceHandler := handlers.NewPerformanceHandler(svc.Performance)
				r.Get("/", performanceHandler.GetSeries)
				r.Post("/snapshot", performanceHandler.TriggerSnapshot)
			})
		})
	})

	return r
}
