package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/recipebox/server/internal/api/handlers"
	mw "github.com/recipebox/server/internal/api/middleware"
	"github.com/recipebox/server/internal/models"
)

type Dependencies struct {
	Resolver           mw.TokenResolver
	AccountsHandler    *handlers.AccountsHandler
	MeHandler          *handlers.MeHandler
	TagsHandler        *handlers.AttributesHandler[models.Tag]
	IngredientsHandler *handlers.AttributesHandler[models.Ingredient]
	RecipesHandler     *handlers.RecipesHandler
	HealthHandler      *handlers.HealthHandler

	// Zero values fall back to the defaults below.
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(dep Dependencies) http.Handler {
	if dep.RateLimitRPS == 0 {
		dep.RateLimitRPS = 10
	}
	if dep.RateLimitBurst == 0 {
		dep.RateLimitBurst = 20
	}

	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.Metrics)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	r.Use(chimid.Compress(5))

	// Health endpoints
	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/readyz", dep.HealthHandler.Readiness)

	// Prometheus scrape endpoint
	r.Method(http.MethodGet, "/metrics", mw.MetricsHandler())

	r.Route("/api/v1", func(api chi.Router) {
		// Public routes
		api.Post("/accounts", dep.AccountsHandler.Register)
		api.Post("/accounts/token", dep.AccountsHandler.Token)

		// Protected routes
		api.Group(func(protected chi.Router) {
			protected.Use(mw.Auth(dep.Resolver))

			// Undefined methods on defined routes fall through to chi's
			// 405 handling, e.g. POST /me.
			protected.Route("/me", func(pr chi.Router) {
				pr.Get("/", dep.MeHandler.Get)
				pr.Patch("/", dep.MeHandler.Patch)
			})

			protected.Route("/tags", func(tr chi.Router) {
				tr.Get("/", dep.TagsHandler.List)
				tr.Post("/", dep.TagsHandler.Create)
			})

			protected.Route("/ingredients", func(ir chi.Router) {
				ir.Get("/", dep.IngredientsHandler.List)
				ir.Post("/", dep.IngredientsHandler.Create)
			})

			protected.Route("/recipes", func(rr chi.Router) {
				rr.Get("/", dep.RecipesHandler.List)
				rr.Post("/", dep.RecipesHandler.Create)
				rr.Get("/{id}", dep.RecipesHandler.Get)
				rr.Put("/{id}", dep.RecipesHandler.Put)
				rr.Patch("/{id}", dep.RecipesHandler.Patch)
				rr.Delete("/{id}", dep.RecipesHandler.Delete)
			})
		})
	})

	return r
}
