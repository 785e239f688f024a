package models

// LocationType is the kind of healthcare provider
type LocationType string

const (
	LocationPharmacy LocationType = "pharmacy"
	LocationDoctor   LocationType = "doctor"
	LocationHospital LocationType = "hospital"
)

// LocationStatus is the opening status of a provider
type LocationStatus string

const (
	StatusOpen   LocationStatus = "open"
	StatusClosed LocationStatus = "closed"
	StatusAllDay LocationStatus = "24h"
)

// Location represents a nearby healthcare provider
type Location struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Type       LocationType   `json:"type"`
	Address    string         `json:"address"`
	Phone      string         `json:"phone"`
	DistanceKm float64        `json:"distance_km"`
	Status     LocationStatus `json:"status"`
	Rating     *float64       `json:"rating,omitempty"`
}

// IsOpen returns true if the provider can be visited right now
func (l Location) IsOpen() bool {
	return l.Status == StatusOpen || l.Status == StatusAllDay
}
