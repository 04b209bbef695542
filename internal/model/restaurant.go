package model

// RestaurantInfo is the static metadata shown on the website.
type RestaurantInfo struct {
	Name         string            `json:"name"`
	Slogan       string            `json:"slogan"`
	Address      string            `json:"address"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	SocialMedia  map[string]string `json:"socialMedia"`
	OpeningHours map[string]string `json:"openingHours"`
	ClosureInfo  string            `json:"closureInfo"`
}

// DefaultRestaurantInfo returns the Café Comptoir details.
func DefaultRestaurantInfo() RestaurantInfo {
	return RestaurantInfo{
		Name:    "Café Comptoir",
		Slogan:  "Le rendez-vous des bons vivants à Montbrison",
		Address: "14 Boulevard de la Madeleine, 42600 Montbrison, France",
		Phone:   "+33 4 77 58 46 77",
		Email:   "cafecomptoirmontbrison@gmail.com",
		SocialMedia: map[string]string{
			"instagram": "@cafecomptoirmontbrison",
			"facebook":  "Café Comptoir Montbrison",
		},
		OpeningHours: map[string]string{
			"monday":    "12h00 - 14h00",
			"tuesday":   "12h00 - 14h00",
			"wednesday": "Fermé",
			"thursday":  "12h00 - 14h00",
			"friday":    "12h00 - 14h00 • 19h00 - 22h00",
			"saturday":  "12h00 - 14h00 • 19h00 - 22h00",
			"sunday":    "Fermé",
		},
		ClosureInfo: "Fermeture annuelle : du 17 août au 31 août 2025",
	}
}
