package nearby

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"healthassist/internal/directory"
	"healthassist/internal/models"
)

func checkWith(severities ...models.Severity) *models.SymptomCheck {
	check := models.NewSymptomCheck("test")
	for _, s := range severities {
		check.Conditions = append(check.Conditions, models.Condition{Name: string(s), Severity: s})
	}
	return check
}

func TestNearbyTool_IsApplicable(t *testing.T) {
	d := directory.Default()
	pharmacy := NewPharmacyFinder(d)
	doctor := NewDoctorFinder(d)
	hospital := NewHospitalFinder(d)

	tests := []struct {
		name     string
		check    *models.SymptomCheck
		expected [3]bool
	}{
		{name: "Nil check", check: nil, expected: [3]bool{false, false, false}},
		{name: "No conditions", check: checkWith(), expected: [3]bool{false, false, false}},
		{name: "Low", check: checkWith(models.SeverityLow), expected: [3]bool{true, false, false}},
		{name: "Low and medium", check: checkWith(models.SeverityLow, models.SeverityMedium), expected: [3]bool{true, true, false}},
		{name: "High", check: checkWith(models.SeverityHigh), expected: [3]bool{true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected[0], pharmacy.IsApplicable(tt.check))
			req.Equal(tt.expected[1], doctor.IsApplicable(tt.check))
			req.Equal(tt.expected[2], hospital.IsApplicable(tt.check))
		})
	}
}

func TestNearbyTool_Execute(t *testing.T) {
	req := require.New(t)
	check := checkWith(models.SeverityMedium)

	resp, err := NewDoctorFinder(directory.Default()).Execute(context.Background(), check)
	req.NoError(err)
	req.True(resp.Success)
	req.Equal("Doctor Finder", resp.ToolName)
	req.Equal("Found 2 nearby doctor locations", resp.Message)
	req.Len(resp.Locations, 2)
	req.Equal("Dr. Sarah Johnson", resp.Locations[0].Name)
	req.Equal("QuickCare Clinic", resp.Locations[1].Name)
	req.Equal("2", resp.Data["num_locations"])
	req.Equal("tel:+1 234-567-8902", resp.Data["call_url"])
	req.Equal(check.ID.String(), resp.Data["symptom_check"])
	req.NotContains(resp.Data, "emergency_number")
}

func TestNearbyTool_ExecuteHospital(t *testing.T) {
	req := require.New(t)

	resp, err := NewHospitalFinder(directory.Default()).Execute(context.Background(), checkWith(models.SeverityHigh))
	req.NoError(err)
	req.Len(resp.Locations, 1)
	req.Equal("911", resp.Data["emergency_number"])
	req.Equal("tel:911", resp.Data["emergency_call_url"])
}

func TestNearbyTool_ExecuteNoLocations(t *testing.T) {
	req := require.New(t)
	tool := NewNearbyTool(Config{LocationType: models.LocationHospital}, directory.New(nil))

	resp, err := tool.Execute(context.Background(), checkWith(models.SeverityLow))
	req.NoError(err)
	req.False(resp.Success)
	req.Empty(resp.Locations)
	req.Equal("Nearby hospital Finder", tool.Name())
}

func TestNearbyTool_ExecuteCanceled(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPharmacyFinder(directory.Default()).Execute(ctx, checkWith(models.SeverityLow))
	req.ErrorIs(err, context.Canceled)
}
