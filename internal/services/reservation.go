package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"nando-backend/internal/catalog"
	"nando-backend/internal/hours"
	"nando-backend/internal/models"
)

// formName is the fixed discriminator the static form backend keys on.
const formName = "reservations"

var (
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9()\s-]+$`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

var reservationMessages = struct {
	nameTooShort    models.Text
	contactRequired models.Text
	contactInvalid  models.Text
	dateRequired    models.Text
	dateInvalid     models.Text
	datePast        models.Text
	timeRequired    models.Text
	timeInvalid     models.Text
	closedDay       models.Text
	outsideHours    models.Text
	partyRequired   models.Text
}{
	nameTooShort:    models.Text{ES: "Ingresa tu nombre completo (mínimo 2 caracteres).", EN: "Please enter your full name (at least 2 characters)."},
	contactRequired: models.Text{ES: "Ingresa un teléfono o email de contacto.", EN: "Please enter a contact phone or email."},
	contactInvalid:  models.Text{ES: "Ingresa un teléfono o email válido.", EN: "Please enter a valid phone number or email."},
	dateRequired:    models.Text{ES: "Selecciona una fecha.", EN: "Please select a date."},
	dateInvalid:     models.Text{ES: "La fecha no es válida.", EN: "The date is not valid."},
	datePast:        models.Text{ES: "La fecha no puede ser en el pasado.", EN: "The date cannot be in the past."},
	timeRequired:    models.Text{ES: "Selecciona una hora.", EN: "Please select a time."},
	timeInvalid:     models.Text{ES: "La hora no es válida.", EN: "The time is not valid."},
	closedDay:       models.Text{ES: "Estamos cerrados los %s.", EN: "We are closed on %ss."},
	outsideHours:    models.Text{ES: "Ese día atendemos de %s.", EN: "Our hours that day are %s."},
	partyRequired:   models.Text{ES: "Indica cuántas personas asistirán (mínimo 1).", EN: "Please tell us how many guests are coming (at least 1)."},
}

// ReservationService validates reservation requests against the operating
// hours table and forwards valid ones to the external form endpoint.
// Reservations are not stored anywhere in this system.
type ReservationService struct {
	endpoint string
	client   *http.Client
}

func NewReservationService(endpoint string) *ReservationService {
	return &ReservationService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Validate checks a reservation draft against the form rules and the
// operating-hours table. It returns a map from field name to localized error
// message; an empty map means the draft is valid. Pure with respect to now.
func (s *ReservationService) Validate(req models.ReservationRequest, now time.Time, lang models.Language) map[string]string {
	fieldErrors := make(map[string]string)

	if len(strings.TrimSpace(req.Name)) < 2 {
		fieldErrors["name"] = reservationMessages.nameTooShort.In(lang)
	}

	contact := strings.TrimSpace(req.Contact)
	if contact == "" {
		fieldErrors["contact"] = reservationMessages.contactRequired.In(lang)
	} else if !validContact(contact) {
		fieldErrors["contact"] = reservationMessages.contactInvalid.In(lang)
	}

	var date time.Time
	dateOK := false
	if req.Date == "" {
		fieldErrors["date"] = reservationMessages.dateRequired.In(lang)
	} else if parsed, err := time.ParseInLocation("2006-01-02", req.Date, now.Location()); err != nil {
		fieldErrors["date"] = reservationMessages.dateInvalid.In(lang)
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if parsed.Before(today) {
			fieldErrors["date"] = reservationMessages.datePast.In(lang)
		} else {
			date = parsed
			dateOK = true
		}
	}

	hour := 0
	timeOK := false
	if req.Time == "" {
		fieldErrors["time"] = reservationMessages.timeRequired.In(lang)
	} else if parsed, err := time.Parse("15:04", req.Time); err != nil {
		fieldErrors["time"] = reservationMessages.timeInvalid.In(lang)
	} else {
		hour = parsed.Hour()
		timeOK = true
	}

	// Hours check only runs once date and time individually pass, and never
	// overwrites an error already attached to the same field.
	if dateOK && timeOK {
		entry, open := hours.EntryFor(date.Weekday())
		switch {
		case !open:
			if _, taken := fieldErrors["date"]; !taken {
				day := hours.DayName(date.Weekday()).In(lang)
				fieldErrors["date"] = fmt.Sprintf(reservationMessages.closedDay.In(lang), day)
			}
		case !entry.Contains(hour):
			if _, taken := fieldErrors["time"]; !taken {
				fieldErrors["time"] = fmt.Sprintf(reservationMessages.outsideHours.In(lang), entry.Display())
			}
		}
	}

	if req.Type == models.ReservationDineIn && req.PartySize < 1 {
		fieldErrors["partySize"] = reservationMessages.partyRequired.In(lang)
	}

	return fieldErrors
}

func validContact(contact string) bool {
	if emailRegex.MatchString(contact) {
		return true
	}
	// Phone: optional +, then digits/spaces/hyphens/parens with at least 6
	// digits overall.
	return phoneRegex.MatchString(contact) && len(digitRegex.FindAllString(contact, -1)) >= 6
}

// Submit URL-encodes the reservation and POSTs it to the form endpoint.
// partySize is omitted for takeout. Any transport failure or non-2xx status
// is terminal; the caller surfaces it and the user resubmits.
func (s *ReservationService) Submit(ctx context.Context, req models.ReservationRequest) error {
	form := url.Values{}
	form.Set("form-name", formName)
	form.Set("name", req.Name)
	form.Set("contact", req.Contact)
	form.Set("date", req.Date)
	form.Set("time", req.Time)
	form.Set("reservation-type", string(req.Type))
	if req.Type == models.ReservationDineIn {
		form.Set("partySize", strconv.Itoa(req.PartySize))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return &TransportError{Message: "failed to build submission request"}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return &TransportError{Message: "reservation submission failed"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{Message: fmt.Sprintf("form endpoint returned status %d", resp.StatusCode)}
	}
	return nil
}

// ConfirmationMessage builds the localized success message, substituting the
// dine-in or takeout phrasing into the template.
func (s *ReservationService) ConfirmationMessage(resType models.ReservationType, lang models.Language) string {
	res := catalog.Content.Reservations
	typeString := res.SuccessTypeDineIn.In(lang)
	if resType == models.ReservationTakeout {
		typeString = res.SuccessTypeTakeout.In(lang)
	}
	return strings.ReplaceAll(res.Success.In(lang), "{{type}}", typeString)
}
