package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"chat-service/internal/usecase"
	"chat-service/internal/ws"
	"chat-service/pkg/xerrors"
)

// HandleSignupWS hosts one signup session per socket: the client streams field
// edits, the session debounces username checks and pushes inline errors back,
// and a submit event runs the full registration flow with toast/navigate
// frames as the collaborator signals.
func (h *ChatHandler) HandleSignupWS(w http.ResponseWriter, r *http.Request) {
	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] signup ws upgrade failed: %v", err)
		return
	}
	conn := ws.NewConnection(raw)
	defer conn.Close()

	form := usecase.NewFormController(h.store, usecase.DebounceDelay)
	form.SetResultHook(func(field, errMsg string) {
		_ = conn.Send(ws.Message{Type: ws.TypeFieldError, Field: field, Error: errMsg})
	})

	reg := usecase.NewRegisterUsecase(h.identity, h.store, connNotifier{conn}, connNavigator{conn})

	for {
		var msg ws.Message
		if err := conn.ReadMessage(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "input":
			if scheduled := form.SetValue(msg.Field, msg.Value); scheduled {
				_ = conn.Send(ws.Message{Type: ws.TypeChecking, Field: msg.Field})
			}

		case "submit":
			snap := form.Snapshot()
			go func() {
				res, err := reg.Submit(context.Background(), snap)
				if err != nil {
					if !errors.Is(err, xerrors.ErrSubmissionInFlight) {
						log.Printf("[WARN] signup submit failed: %v", err)
					}
					// In-flight re-submit is dropped, not queued.
					return
				}
				_ = conn.Send(ws.Message{Type: ws.TypeSubmission, Data: res})
			}()

		default:
			log.Printf("[WARN] signup ws: unknown event type %q", msg.Type)
		}
	}
}

// connNotifier pushes toast frames to a single signup socket.
type connNotifier struct{ conn *ws.Connection }

func (n connNotifier) Notify(text string) {
	_ = n.conn.Send(ws.Message{Type: ws.TypeToast, Text: text})
}

// connNavigator pushes the navigation signal to a single signup socket.
type connNavigator struct{ conn *ws.Connection }

func (n connNavigator) Navigate(route string) {
	_ = n.conn.Send(ws.Message{Type: ws.TypeNavigate, Route: route})
}
