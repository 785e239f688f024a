package triage

import "healthassist/internal/models"

// DefaultRules returns the symptom rules in priority order
func DefaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"fever", "headache"},
			Condition: models.Condition{
				Name:               "Common Flu",
				ProbabilityPercent: 85,
				Description:        "Viral infection affecting the respiratory system",
				SuggestedRemedies:  []string{"Paracetamol", "Ibuprofen"},
				Severity:           models.SeverityMedium,
			},
		},
		{
			Keywords: []string{"cough", "sore throat"},
			Condition: models.Condition{
				Name:               "Common Cold",
				ProbabilityPercent: 75,
				Description:        "Mild upper respiratory tract infection",
				SuggestedRemedies:  []string{"Cough syrup", "Throat lozenges"},
				Severity:           models.SeverityLow,
			},
		},
		{
			Keywords: []string{"nausea", "stomach"},
			Condition: models.Condition{
				Name:               "Gastroenteritis",
				ProbabilityPercent: 70,
				Description:        "Inflammation of the stomach and intestines",
				SuggestedRemedies:  []string{"ORS", "Probiotics"},
				Severity:           models.SeverityMedium,
			},
		},
	}
}

// DefaultFallback is the condition reported when no rule matches
func DefaultFallback() models.Condition {
	return models.Condition{
		Name:               "General Discomfort",
		ProbabilityPercent: 60,
		Description:        "Various symptoms requiring medical evaluation",
		SuggestedRemedies:  []string{"Rest", "Hydration"},
		Severity:           models.SeverityLow,
	}
}

// CommonSymptoms are the quick-pick descriptions offered on the home screen
func CommonSymptoms() []string {
	return []string{
		"Fever, Headache",
		"Cough, Sore throat",
		"Nausea, Stomach pain",
		"Fatigue, Body aches",
	}
}
