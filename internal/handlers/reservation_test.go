package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nando-backend/internal/models"
	"nando-backend/internal/services"
)

type stubReservationService struct {
	fields    map[string]string
	submitErr error
	submitted *models.ReservationRequest
}

func (s *stubReservationService) Validate(req models.ReservationRequest, now time.Time, lang models.Language) map[string]string {
	return s.fields
}

func (s *stubReservationService) Submit(ctx context.Context, req models.ReservationRequest) error {
	s.submitted = &req
	return s.submitErr
}

func (s *stubReservationService) ConfirmationMessage(resType models.ReservationType, lang models.Language) string {
	return "confirmed: " + string(resType) + " (" + string(lang) + ")"
}

func postReservation(t *testing.T, h *ReservationHandler, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	return rr
}

func TestCreateReservation_Success(t *testing.T) {
	stub := &stubReservationService{}
	h := NewReservationHandler(stub)

	rr := postReservation(t, h, models.ReservationRequest{
		Name:     "María",
		Contact:  "+505 8470 9484",
		Date:     "2026-09-01",
		Time:     "19:00",
		Type:     models.ReservationTakeout,
		Language: "en",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if stub.submitted == nil {
		t.Fatal("Expected reservation to be forwarded")
	}

	var resp models.ReservationResponse
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp.Message != "confirmed: takeout (en)" {
		t.Errorf("Unexpected confirmation %q", resp.Message)
	}
}

func TestCreateReservation_DefaultsToDineInAndSpanish(t *testing.T) {
	stub := &stubReservationService{}
	h := NewReservationHandler(stub)

	rr := postReservation(t, h, map[string]string{"name": "María"})
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var resp models.ReservationResponse
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp.Message != "confirmed: dine-in (es)" {
		t.Errorf("Expected dine-in/Spanish defaults, got %q", resp.Message)
	}
}

func TestCreateReservation_ValidationErrors(t *testing.T) {
	stub := &stubReservationService{fields: map[string]string{
		"name": "Please enter your full name (at least 2 characters).",
		"time": "Our hours that day are 12:00 PM - 10:00 PM.",
	}}
	h := NewReservationHandler(stub)

	rr := postReservation(t, h, models.ReservationRequest{Language: "en"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rr.Code)
	}
	if stub.submitted != nil {
		t.Error("Invalid reservation must not be forwarded")
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected VALIDATION_ERROR, got %q", resp.Error.Code)
	}
	if len(resp.Error.Fields) != 2 {
		t.Errorf("Expected both field errors, got %v", resp.Error.Fields)
	}
}

func TestCreateReservation_MalformedBody(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{})

	rr := postReservation(t, h, "{oops")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestCreateReservation_TransportFailure(t *testing.T) {
	stub := &stubReservationService{submitErr: &services.TransportError{Message: "form endpoint returned status 502"}}
	h := NewReservationHandler(stub)

	rr := postReservation(t, h, models.ReservationRequest{Name: "María", Language: "en"})
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", rr.Code)
	}

	var resp models.ErrorResponse
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp.Error.Code != "SUBMISSION_FAILED" {
		t.Errorf("Expected SUBMISSION_FAILED, got %q", resp.Error.Code)
	}
	// Client sees the localized message, not the transport detail.
	if resp.Error.Message != "We could not send your request. Please try again." {
		t.Errorf("Unexpected client message %q", resp.Error.Message)
	}
}
