package catalog

// RestaurantInfo holds the static facts about the restaurant used across the
// contact endpoint and the assistant's system instruction. Operating hours
// deliberately live in the hours package, which is the single source of truth
// for both the open-now indicator and reservation validation.
type RestaurantInfo struct {
	Name          string `json:"name"`
	Cuisine       string `json:"cuisine"`
	Address       string `json:"address"`
	GoogleMapsURL string `json:"google_maps_url"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Facebook      string `json:"facebook"`
	Instagram     string `json:"instagram"`
}

// Restaurant is the canonical restaurant record.
var Restaurant = RestaurantInfo{
	Name:          "Donde Nando Grill",
	Cuisine:       "Nicaraguan Grill/Steakhouse",
	Address:       "A 700 metros al norte de la Rotonda Los Encuentros, Chinandega, Nicaragua",
	GoogleMapsURL: "https://www.google.com/maps/place/Donde+Nando+Grill/@12.6392078,-87.1354388,17z",
	Phone:         "+505 8470 9484",
	Email:         "dondenando@gmail.com",
	Facebook:      "https://www.facebook.com/dondenandogrill",
	Instagram:     "https://www.instagram.com/dondenandogrill",
}
