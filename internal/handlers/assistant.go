package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"nando-backend/internal/models"
)

// chatService is the slice of AssistantService the handler needs.
type chatService interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type AssistantHandler struct {
	service chatService // nil when the server has no API credential
}

// NewAssistantHandler accepts a nil service: a missing credential is a
// request-time configuration error, never a crash.
func NewAssistantHandler(service chatService) *AssistantHandler {
	return &AssistantHandler{service: service}
}

func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	// Legacy clients send {message, language}; newer ones send prompt plus
	// history. Prefer the richer shape.
	if req.Prompt == "" {
		req.Prompt = req.Message
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Bad Request: prompt and language are required.", r))
		return
	}
	if _, ok := models.ParseLanguage(req.Language); !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Bad Request: prompt and language are required.", r))
		return
	}

	if h.service == nil {
		// Logged with detail; the client only sees a generic message.
		log.Println("assistant request rejected: Gemini API credential is not configured")
		writeJSON(w, http.StatusInternalServerError, errorResp("CONFIG_ERROR", "Server configuration error.", r))
		return
	}

	reply, err := h.service.Chat(r.Context(), req)
	if err != nil {
		log.Printf("assistant upstream error: %v", err)
		handleServiceError(w, r, err, "Failed to get assistant response. Please try again later.")
		return
	}

	writeJSON(w, http.StatusOK, reply)
}
