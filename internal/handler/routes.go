package handler

import (
	"doc-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler mounted under /api.
type Handlers struct {
	Generation  *GenerationHandler
	Collection  *CollectionHandler
	Performance *PerformanceHandler
	Auth        *AuthHandler
}

// RegisterRoutes mounts the API on app.
func RegisterRoutes(app fiber.Router, h Handlers, auth middleware.Authenticator) {
	api := app.Group("/api")
	protected := middleware.Protected(auth)

	api.Get("/catalog", h.Generation.GetCatalog)
	api.Post("/generate", middleware.OptionalAuth(auth), h.Generation.Generate)
	api.Get("/generations/:id", h.Generation.GetGeneration)

	authGroup := api.Group("/auth")
	authGroup.Post("/demo", h.Auth.DemoLogin)
	authGroup.Get("/google/login", h.Auth.GoogleLogin)
	authGroup.Get("/google/callback", h.Auth.GoogleCallback)

	api.Get("/users/me", protected, h.Auth.GetMe)

	api.Get("/collections", protected, h.Collection.ListCollections)
	api.Post("/collections", protected, h.Collection.CreateCollection)
	api.Get("/collections/:id", protected, h.Collection.GetCollection)

	api.Get("/performance", protected, h.Performance.GetPerformanceHistory)
	api.Post("/performance", protected, h.Performance.SubmitPerformance)
}
