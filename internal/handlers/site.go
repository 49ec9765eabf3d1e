package handlers

import (
	"net/http"
	"time"

	"nando-backend/internal/catalog"
	"nando-backend/internal/hours"
	"nando-backend/internal/models"
)

// SiteHandler serves the static catalog surfaces: menu, hours, restaurant
// facts, and the localized UI dictionary.
type SiteHandler struct {
	menu *catalog.MenuData
	now  func() time.Time
}

func NewSiteHandler(menu *catalog.MenuData) *SiteHandler {
	return &SiteHandler{menu: menu, now: time.Now}
}

func (h *SiteHandler) Menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.menu)
}

type hoursResponse struct {
	IsOpen bool          `json:"is_open"`
	Label  models.Text   `json:"label"`
	Week   []hours.Entry `json:"week"`
}

// Hours returns the live open/closed status plus the weekly table. The status
// is time-sensitive; clients re-poll at least once a minute.
func (h *SiteHandler) Hours(w http.ResponseWriter, r *http.Request) {
	status := hours.StatusAt(h.now())
	writeJSON(w, http.StatusOK, hoursResponse{
		IsOpen: status.IsOpen,
		Label:  status.Label,
		Week:   hours.Schedule,
	})
}

type contentResponse struct {
	Content    catalog.SiteContent    `json:"content"`
	Restaurant catalog.RestaurantInfo `json:"restaurant"`
}

func (h *SiteHandler) Content(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, contentResponse{
		Content:    catalog.Content,
		Restaurant: catalog.Restaurant,
	})
}
