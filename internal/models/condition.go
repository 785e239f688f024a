package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Severity represents how serious a candidate condition is
type Severity string

const (
	// SeverityLow represents conditions that usually resolve with self-care
	SeverityLow Severity = "low"

	// SeverityMedium represents conditions worth a visit to a doctor if they persist
	SeverityMedium Severity = "medium"

	// SeverityHigh represents conditions that need prompt medical attention
	SeverityHigh Severity = "high"
)

// Rank orders severities from low (1) to high (3). Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether s is as serious as floor
func (s Severity) AtLeast(floor Severity) bool {
	return s.Rank() >= floor.Rank()
}

// Condition is a candidate health condition matched from a symptom description
type Condition struct {
	Name               string   `json:"name" validate:"required"`
	ProbabilityPercent int      `json:"probability_percent" validate:"min=0,max=100"`
	Description        string   `json:"description"`
	SuggestedRemedies  []string `json:"suggested_remedies"`
	Severity           Severity `json:"severity" validate:"oneof=low medium high"`
}

// Probability renders the probability the way the results screen shows it, e.g. "85%"
func (c Condition) Probability() string {
	return fmt.Sprintf("%d%%", c.ProbabilityPercent)
}

// Clone returns a copy that shares no memory with c
func (c Condition) Clone() Condition {
	out := c
	out.SuggestedRemedies = append([]string(nil), c.SuggestedRemedies...)
	return out
}

// SymptomCheck is a single classification request and its outcome
type SymptomCheck struct {
	ID         uuid.UUID   `json:"id"`
	Symptoms   string      `json:"symptoms"`
	Conditions []Condition `json:"conditions"`
	Timestamp  time.Time   `json:"timestamp"`
}

// NewSymptomCheck creates a new symptom check for the given description
func NewSymptomCheck(symptoms string) *SymptomCheck {
	return &SymptomCheck{
		ID:        uuid.New(),
		Symptoms:  symptoms,
		Timestamp: time.Now(),
	}
}

// HighestSeverity returns the most serious severity among the matched conditions
func (s *SymptomCheck) HighestSeverity() Severity {
	var highest Severity
	for _, c := range s.Conditions {
		if c.Severity.Rank() > highest.Rank() {
			highest = c.Severity
		}
	}
	return highest
}

// IsUrgent returns true if any matched condition is high severity
func (s *SymptomCheck) IsUrgent() bool {
	return s.HighestSeverity() == SeverityHigh
}
