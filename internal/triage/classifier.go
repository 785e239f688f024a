package triage

import (
	"healthassist/internal/models"
)

// Classifier defines the interface for symptom classification
type Classifier interface {
	// Classify maps a free-text symptom description to candidate conditions.
	// The result is never empty and always in the same order for the same input.
	Classify(symptoms string) []models.Condition
}

// Rule appends Condition when any of its keywords appears in the description
type Rule struct {
	Keywords  []string
	Condition models.Condition
}

// ClassifierConfig contains configuration options for the classifier
type ClassifierConfig struct {
	// Rules are tested in order. Empty means DefaultRules.
	Rules []Rule

	// Fallback is returned when no rule fires. Zero value means DefaultFallback.
	Fallback *models.Condition
}
