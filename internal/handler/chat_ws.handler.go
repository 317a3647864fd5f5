package handler

import (
	"log"
	"net/http"

	"chat-service/internal/middleware"
	"chat-service/internal/ws"
)

// HandleChatWS streams the chat screen: history on connect, then an echo of
// every accepted send to all of the user's open connections.
func (h *ChatHandler) HandleChatWS(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] chat ws upgrade failed for %s: %v", userID, err)
		return
	}
	conn := ws.NewConnection(raw)
	h.hub.Add(userID, conn)
	defer h.hub.Remove(userID, conn)

	for _, msg := range h.chat.Messages(userID) {
		if err := conn.Send(ws.Message{Type: ws.TypeMessage, Data: msg}); err != nil {
			return
		}
	}

	for {
		var msg ws.Message
		if err := conn.ReadMessage(&msg); err != nil {
			return
		}
		if msg.Type != ws.TypeMessage {
			continue
		}

		sent, ok := h.chat.Send(userID, msg.Text)
		if !ok {
			continue
		}
		h.hub.Send(userID, ws.Message{Type: ws.TypeMessage, Data: sent})
	}
}
