package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nando-backend/internal/catalog"
	"nando-backend/internal/models"
)

// reservationService is the slice of ReservationService the handler needs.
type reservationService interface {
	Validate(req models.ReservationRequest, now time.Time, lang models.Language) map[string]string
	Submit(ctx context.Context, req models.ReservationRequest) error
	ConfirmationMessage(resType models.ReservationType, lang models.Language) string
}

type ReservationHandler struct {
	service reservationService
	now     func() time.Time
}

func NewReservationHandler(service reservationService) *ReservationHandler {
	return &ReservationHandler{service: service, now: time.Now}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	lang, ok := models.ParseLanguage(req.Language)
	if !ok {
		lang = models.LanguageES
	}
	if req.Type == "" {
		req.Type = models.ReservationDineIn
	}

	if fields := h.service.Validate(req, h.now(), lang); len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	if err := h.service.Submit(r.Context(), req); err != nil {
		log.Printf("reservation submission error: %v", err)
		handleServiceError(w, r, err, catalog.Content.Reservations.SubmitFailed.In(lang))
		return
	}

	writeJSON(w, http.StatusOK, models.ReservationResponse{
		Message: h.service.ConfirmationMessage(req.Type, lang),
	})
}
