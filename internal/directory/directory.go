package directory

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/samber/lo"

	"healthassist/internal/models"
)

// FilterAll selects every location type
const FilterAll = "all"

// EmergencyNumber is the number shown for emergencies
const EmergencyNumber = "911"

// ErrUnknownLocationType is returned when a filter names no known location type
var ErrUnknownLocationType = errors.New("unknown location type")

// Directory is a fixed list of nearby healthcare providers. It is read-only
// after construction and safe for concurrent use.
type Directory struct {
	locations []models.Location
}

// New creates a directory over a copy of the given locations
func New(locations []models.Location) *Directory {
	return &Directory{locations: lo.Map(locations, func(l models.Location, _ int) models.Location {
		return clone(l)
	})}
}

// List returns the locations of the given type in directory order.
// An empty filter or "all" returns every location.
func (d *Directory) List(filter string) ([]models.Location, error) {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" || filter == FilterAll {
		return d.all(), nil
	}

	locationType, err := ParseType(filter)
	if err != nil {
		return nil, err
	}

	return d.byType(locationType), nil
}

// Nearest returns up to limit locations of the given type, closest first.
// A limit of zero or less returns all of them.
func (d *Directory) Nearest(locationType models.LocationType, limit int) []models.Location {
	locations := d.byType(locationType)

	sort.SliceStable(locations, func(i, j int) bool {
		return locations[i].DistanceKm < locations[j].DistanceKm
	})

	if limit > 0 && len(locations) > limit {
		locations = locations[:limit]
	}

	return locations
}

func (d *Directory) all() []models.Location {
	return lo.Map(d.locations, func(l models.Location, _ int) models.Location {
		return clone(l)
	})
}

func (d *Directory) byType(locationType models.LocationType) []models.Location {
	return lo.FilterMap(d.locations, func(l models.Location, _ int) (models.Location, bool) {
		return clone(l), l.Type == locationType
	})
}

// ParseType converts a filter value such as "pharmacy" into a location type
func ParseType(value string) (models.LocationType, error) {
	switch t := models.LocationType(strings.ToLower(strings.TrimSpace(value))); t {
	case models.LocationPharmacy, models.LocationDoctor, models.LocationHospital:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLocationType, value)
	}
}

// CallURL returns the tel: link used by the "Call Now" action
func CallURL(l models.Location) string {
	return "tel:" + l.Phone
}

// NavigateURL returns the maps search link for the location's address
func NavigateURL(l models.Location) string {
	return "https://maps.google.com/search/" + url.PathEscape(l.Address)
}

// EmergencyCallURL returns the tel: link for the emergency number
func EmergencyCallURL() string {
	return "tel:" + EmergencyNumber
}

// FormatDistance renders a distance the way the directory shows it, e.g. "0.3 km"
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

// StatusLabel renders a status, showing round-the-clock providers as "24/7"
func StatusLabel(status models.LocationStatus) string {
	if status == models.StatusAllDay {
		return "24/7"
	}
	return string(status)
}

// TypeEmoji returns the icon shown next to each location type
func TypeEmoji(locationType models.LocationType) string {
	switch locationType {
	case models.LocationPharmacy:
		return "💊"
	case models.LocationDoctor:
		return "👨‍⚕️"
	case models.LocationHospital:
		return "🏥"
	default:
		return "📍"
	}
}

func clone(l models.Location) models.Location {
	if l.Rating != nil {
		l.Rating = lo.ToPtr(*l.Rating)
	}
	return l
}
