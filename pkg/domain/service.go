package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service is a bookable offering listed by a salon.
type Service struct {
	ID              uuid.UUID `json:"id"`
	SalonID         uuid.UUID `json:"salon_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Image           ImageRef  `json:"image,omitempty"`
	// Salon is populated by the client from the backend's nested salon
	// profile data on search/filter results.
	Salon     *SalonSummary `json:"salon,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// SalonSummary is the flattened salon info attached to search results.
type SalonSummary struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// FilterParams narrows a service query. Zero values mean "no constraint".
type FilterParams struct {
	Category string  `json:"category,omitempty"`
	City     string  `json:"city,omitempty"`
	MaxPrice float64 `json:"max_price,omitempty"`
}

// Valid service categories.
var Categories = []string{
	"Haircut",
	"Coloring",
	"Styling",
	"Barbering",
	"Nails",
	"Skincare",
	"Makeup",
	"Spa",
	"Massage",
	"Waxing",
}

var categorySet = func() map[string]bool {
	m := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		m[c] = true
	}
	return m
}()

// ValidCategory returns true if the given category is a known one.
func ValidCategory(c string) bool {
	return categorySet[c]
}
