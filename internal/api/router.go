package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/devlinks/api/internal/api/handlers"
	mw "github.com/devlinks/api/internal/api/middleware"
	"github.com/devlinks/api/pkg/token"
)

type Dependencies struct {
	TokenIssuer    *token.Issuer
	CORSOrigin     string
	AuthHandler    *handlers.AuthHandler
	LinksHandler   *handlers.LinksHandler
	ProfileHandler *handlers.ProfileHandler
	// ReadyCheck is probed by /readyz; nil means always ready.
	ReadyCheck func(ctx context.Context) error
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS(dep.CORSOrigin))
	r.Use(chimid.Compress(5))

	// Health endpoints
	hh := handlers.NewHealthHandler(dep.ReadyCheck)
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	// Route paths mirror the frontend contract, all mounted under /api.
	r.Route("/api", func(api chi.Router) {
		// Public routes
		api.Post("/register", dep.AuthHandler.Register)
		api.Post("/signin", dep.AuthHandler.SignIn)
		api.Post("/logout", dep.AuthHandler.Logout)
		api.Get("/public-profile/{username}", dep.ProfileHandler.Public)

		// Protected routes
		api.Group(func(protected chi.Router) {
			protected.Use(mw.Auth(dep.TokenIssuer))

			protected.Get("/user/profile", dep.AuthHandler.Profile)
			protected.Post("/update-profile", dep.ProfileHandler.Update)

			protected.Post("/save-link", dep.LinksHandler.Save)
			protected.Get("/links/{id}", dep.LinksHandler.List)
			protected.Patch("/update/{id}", dep.LinksHandler.Update)
			protected.Delete("/delete/{id}", dep.LinksHandler.Delete)
		})
	})

	return r
}
