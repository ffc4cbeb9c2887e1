package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pairchat/pairchat/internal/handler"
	"github.com/pairchat/pairchat/internal/middleware"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.AdminPasswordHeader},
		AllowCredentials: true,
	}))

	healthHandler := handler.NewHealthHandler(s.store, s.engine)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Chat WebSocket endpoint at root
	wsHandler := handler.NewWSHandler(s.engine)
	r.Get("/ws", wsHandler.Serve)

	reportHandler := handler.NewReportHandler(s.store)
	feedbackHandler := handler.NewFeedbackHandler(s.store)
	adminHandler := handler.NewAdminHandler(s.store)

	// Public API: submissions are rate limited per IP.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(s.rateLimiter))
		r.Post("/api/reports", reportHandler.Create)
		r.Post("/api/feedback", feedbackHandler.Create)
	})
	r.Get("/api/maintenance", adminHandler.Maintenance)

	// Admin API: everything but login is password-guarded.
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", adminHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(adminHandler.CheckPassword))

			r.Get("/reports", reportHandler.List)
			r.Get("/feedback", feedbackHandler.List)
			r.Post("/maintenance", adminHandler.UpdateMaintenance)
			r.Get("/maintenance/history", adminHandler.MaintenanceHistory)
			r.Get("/blacklist", adminHandler.Blacklist)
			r.Put("/blacklist", adminHandler.UpdateBlacklist)
		})
	})

	return r
}
