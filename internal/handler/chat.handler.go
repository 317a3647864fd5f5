package handler

import (
	"encoding/json"
	"net/http"

	"chat-service/internal/middleware"
	"chat-service/pkg/response"
	"chat-service/pkg/theme"
)

// HandleMessages returns the caller's in-memory conversation.
func (h *ChatHandler) HandleMessages(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	response.JSON(w, http.StatusOK, h.chat.Messages(userID))
}

// HandleSendMessage appends a message. Blank sends are ignored without error,
// matching the chat input's behavior.
func (h *ChatHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := middleware.UserID(r.Context())
	msg, sent := h.chat.Send(userID, req.Text)
	if !sent {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response.JSON(w, http.StatusCreated, msg)
}

// HandleTheme hands the client its palette. The theme is injected per request,
// never ambient server state.
func (h *ChatHandler) HandleTheme(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"mode":   modeOrDefault(mode),
		"colors": theme.Palette(mode),
	})
}

func modeOrDefault(mode string) string {
	if mode == "dark" {
		return "dark"
	}
	return "light"
}
