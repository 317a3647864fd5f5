package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"chat-service/internal/handler"
	"chat-service/internal/middleware"
	"chat-service/pkg/cache"
)

func SetupRoutes(
	r chi.Router,
	h *handler.ChatHandler,
	auth *middleware.Auth,
	c *cache.Cache,
) chi.Router {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(api chi.Router) {
		// ---------------- Public ----------------
		api.Group(func(pub chi.Router) {
			pub.Get("/health", h.Health)
			pub.Get("/theme", h.HandleTheme)
		})

		// ---------------- Auth (throttled) ----------------
		api.Group(func(g chi.Router) {
			g.Use(middleware.RateLimit(c, 20, 30*time.Second, "auth"))
			g.Post("/auth/register", h.HandleRegister)
			g.Post("/auth/availability", h.HandleAvailability)
			g.Post("/auth/login", h.HandleLogin)
			g.Get("/auth/signup/ws", h.HandleSignupWS)
		})

		// ---------------- Authenticated ----------------
		api.Group(func(g chi.Router) {
			g.Use(auth.Require)
			g.Get("/chat/messages", h.HandleMessages)
			g.Post("/chat/messages", h.HandleSendMessage)
			g.Get("/chat/ws", h.HandleChatWS)
		})
	})

	return r
}
