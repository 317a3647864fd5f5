package handler

import (
	"net/http"

	"github.com/gorilla/websocket"

	"chat-service/internal/usecase"
	"chat-service/internal/ws"
	"chat-service/pkg/response"
)

type ChatHandler struct {
	form     *usecase.FormController
	login    *usecase.LoginUsecase
	chat     *usecase.ChatUsecase
	identity usecase.IdentityProvider
	store    usecase.DocumentStore
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

func NewChatHandler(
	form *usecase.FormController,
	login *usecase.LoginUsecase,
	chat *usecase.ChatUsecase,
	identity usecase.IdentityProvider,
	store usecase.DocumentStore,
	hub *ws.Hub,
) *ChatHandler {
	return &ChatHandler{
		form:     form,
		login:    login,
		chat:     chat,
		identity: identity,
		store:    store,
		hub:      hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *ChatHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"service": "chat-service", "health": "ok"})
}
