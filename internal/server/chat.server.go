package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"chat-service/internal/config"
	"chat-service/internal/handler"
	"chat-service/internal/middleware"
	"chat-service/internal/repository"
	"chat-service/internal/router"
	"chat-service/internal/service/identity"
	"chat-service/internal/usecase"
	"chat-service/internal/ws"
	"chat-service/pkg/cache"
	"chat-service/pkg/jwtutil"
)

func NewServer(cfg config.AppConfig) *http.Server {
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	c := cache.NewCache(cfg.RedisAddr, cfg.RedisPass)
	signer := jwtutil.NewSigner(cfg.JWTSecret, cfg.SessionTTL)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(c, cfg.SessionTTL)
	identitySvc := identity.NewService(db)

	formUC := usecase.NewFormController(userRepo, usecase.DebounceDelay)
	loginUC := usecase.NewLoginUsecase(identitySvc, userRepo, signer, sessionRepo)
	chatUC := usecase.NewChatUsecase()

	hub := ws.NewHub()
	auth := middleware.NewAuth(signer, sessionRepo)

	chatHandler := handler.NewChatHandler(formUC, loginUC, chatUC, identitySvc, userRepo, hub)

	r := chi.NewRouter()
	router.SetupRoutes(r, chatHandler, auth, c)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
}
