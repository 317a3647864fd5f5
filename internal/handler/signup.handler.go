package handler

import (
	"encoding/json"
	"net/http"

	"chat-service/internal/domain"
	"chat-service/internal/usecase"
	"chat-service/pkg/response"
)

// HandleRegister is the one-shot REST submission path. Each request gets its
// own orchestrator; the toast and navigation signals it emits are folded into
// the JSON response.
func (h *ChatHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snap := domain.RegistrationSnapshot{
		Name:            req.Name,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}

	rec := &submitRecorder{}
	uc := usecase.NewRegisterUsecase(h.identity, h.store, rec, rec)

	res, err := uc.Submit(r.Context(), snap)
	if err != nil {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}

	if res.State != domain.SubmissionSucceeded {
		if len(res.FieldErrors) > 0 {
			response.FieldErrors(w, http.StatusBadRequest, "validation failed", res.FieldErrors)
			return
		}
		response.Error(w, http.StatusBadGateway, domain.MsgAccountCreateFail)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": domain.MsgAccountCreated,
		"route":   rec.route,
	})
}

// HandleAvailability answers a single uniqueness probe for username or email.
func (h *ChatHandler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Field != domain.FieldUsername && req.Field != domain.FieldEmail {
		response.Error(w, http.StatusBadRequest, "field must be username or email")
		return
	}
	if req.Value == "" {
		response.Error(w, http.StatusBadRequest, "value is required")
		return
	}

	available := h.form.CheckAvailability(r.Context(), req.Field, req.Value)
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"field":     req.Field,
		"value":     req.Value,
		"available": available,
	})
}

// submitRecorder captures the collaborator signals a REST submission produces.
type submitRecorder struct {
	notices []string
	route   string
}

func (r *submitRecorder) Notify(text string) {
	r.notices = append(r.notices, text)
}

func (r *submitRecorder) Navigate(route string) {
	r.route = route
}
