package models

// ReservationType distinguishes dine-in bookings from takeout orders.
type ReservationType string

const (
	ReservationDineIn  ReservationType = "dine-in"
	ReservationTakeout ReservationType = "takeout"
)

// ReservationRequest is a reservation form submission. Date is "YYYY-MM-DD",
// Time is "HH:MM" (24h). PartySize of 0 means the field was left empty; it is
// only meaningful for dine-in requests.
type ReservationRequest struct {
	Name      string          `json:"name"`
	Contact   string          `json:"contact"`
	PartySize int             `json:"partySize"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Type      ReservationType `json:"type"`
	Language  string          `json:"language"`
}

// ReservationResponse confirms a forwarded reservation.
type ReservationResponse struct {
	Message string `json:"message"`
}
