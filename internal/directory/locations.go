package directory

import (
	"github.com/samber/lo"

	"healthassist/internal/models"
)

// Default returns the directory of providers around the user
func Default() *Directory {
	return New(DefaultLocations())
}

// DefaultLocations lists the built-in providers
func DefaultLocations() []models.Location {
	return []models.Location{
		{
			ID:         1,
			Name:       "MedPlus Pharmacy",
			Type:       models.LocationPharmacy,
			Address:    "123 Main Street, Downtown",
			Phone:      "+1 234-567-8901",
			DistanceKm: 0.3,
			Status:     models.StatusOpen,
			Rating:     lo.ToPtr(4.5),
		},
		{
			ID:         2,
			Name:       "Dr. Sarah Johnson",
			Type:       models.LocationDoctor,
			Address:    "456 Health Avenue, Medical District",
			Phone:      "+1 234-567-8902",
			DistanceKm: 0.7,
			Status:     models.StatusOpen,
			Rating:     lo.ToPtr(4.8),
		},
		{
			ID:         3,
			Name:       "City General Hospital",
			Type:       models.LocationHospital,
			Address:    "789 Emergency Blvd, Hospital Zone",
			Phone:      "+1 234-567-8903",
			DistanceKm: 1.2,
			Status:     models.StatusAllDay,
			Rating:     lo.ToPtr(4.6),
		},
		{
			ID:         4,
			Name:       "QuickCare Clinic",
			Type:       models.LocationDoctor,
			Address:    "321 Wellness Street, Health Plaza",
			Phone:      "+1 234-567-8904",
			DistanceKm: 0.9,
			Status:     models.StatusOpen,
			Rating:     lo.ToPtr(4.3),
		},
		{
			ID:         5,
			Name:       "24/7 Pharmacy Plus",
			Type:       models.LocationPharmacy,
			Address:    "654 Night Avenue, Central Plaza",
			Phone:      "+1 234-567-8905",
			DistanceKm: 1.1,
			Status:     models.StatusAllDay,
			Rating:     lo.ToPtr(4.4),
		},
	}
}
