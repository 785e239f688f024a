package nearby

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"healthassist/internal/directory"
	"healthassist/internal/models"
	"healthassist/internal/tools"
)

// Finder looks up providers by type, closest first
type Finder interface {
	Nearest(locationType models.LocationType, limit int) []models.Location
}

// Config contains configuration for a nearby-help tool
type Config struct {
	Name         string
	LocationType models.LocationType
	// MinSeverity is the least serious matched condition that makes the tool applicable
	MinSeverity   models.Severity
	MaxResults    int
	WithEmergency bool
}

// NearbyTool suggests the closest providers of one type
type NearbyTool struct {
	config Config
	finder Finder
}

// NewNearbyTool creates a new nearby-help tool
func NewNearbyTool(config Config, finder Finder) *NearbyTool {
	if config.MaxResults == 0 {
		config.MaxResults = 3
	}

	if config.MinSeverity == "" {
		config.MinSeverity = models.SeverityLow
	}

	if config.Name == "" {
		config.Name = fmt.Sprintf("Nearby %s Finder", config.LocationType)
	}

	return &NearbyTool{
		config: config,
		finder: finder,
	}
}

// NewPharmacyFinder suggests pharmacies for any result, remedies are sold there
func NewPharmacyFinder(finder Finder) *NearbyTool {
	return NewNearbyTool(Config{
		Name:         "Pharmacy Finder",
		LocationType: models.LocationPharmacy,
		MinSeverity:  models.SeverityLow,
		MaxResults:   2,
	}, finder)
}

// NewDoctorFinder suggests doctors once a medium severity condition matched
func NewDoctorFinder(finder Finder) *NearbyTool {
	return NewNearbyTool(Config{
		Name:         "Doctor Finder",
		LocationType: models.LocationDoctor,
		MinSeverity:  models.SeverityMedium,
		MaxResults:   2,
	}, finder)
}

// NewHospitalFinder suggests hospitals and the emergency number for high severity conditions
func NewHospitalFinder(finder Finder) *NearbyTool {
	return NewNearbyTool(Config{
		Name:          "Hospital Finder",
		LocationType:  models.LocationHospital,
		MinSeverity:   models.SeverityHigh,
		MaxResults:    1,
		WithEmergency: true,
	}, finder)
}

// Name returns the name of the tool
func (t *NearbyTool) Name() string {
	return t.config.Name
}

// IsApplicable determines if this tool is applicable for the given symptom check
func (t *NearbyTool) IsApplicable(check *models.SymptomCheck) bool {
	if check == nil || len(check.Conditions) == 0 {
		return false
	}
	return check.HighestSeverity().AtLeast(t.config.MinSeverity)
}

// Execute finds the closest providers of the configured type
func (t *NearbyTool) Execute(ctx context.Context, check *models.SymptomCheck) (*tools.ToolResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	locations := t.finder.Nearest(t.config.LocationType, t.config.MaxResults)

	data := map[string]string{
		"location_type":    string(t.config.LocationType),
		"num_locations":    strconv.Itoa(len(locations)),
		"symptom_check":    check.ID.String(),
		"highest_severity": string(check.HighestSeverity()),
	}
	if len(locations) > 0 {
		data["call_url"] = directory.CallURL(locations[0])
		data["navigate_url"] = directory.NavigateURL(locations[0])
	}
	if t.config.WithEmergency {
		data["emergency_number"] = directory.EmergencyNumber
		data["emergency_call_url"] = directory.EmergencyCallURL()
	}

	return &tools.ToolResponse{
		ToolName:  t.Name(),
		Success:   len(locations) > 0,
		Message:   fmt.Sprintf("Found %d nearby %s locations", len(locations), t.config.LocationType),
		Locations: locations,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	}, nil
}
