//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package api

import (
	"context"

	"healthassist/internal/models"
	"healthassist/internal/tools"
)

// Classifier maps a symptom description to candidate conditions
type Classifier interface {
	Classify(symptoms string) []models.Condition
}

// Responder maps a chat message to the assistant's reply
type Responder interface {
	Respond(message string) string
}

// SummaryGenerator generates a readable summary of a symptom check
type SummaryGenerator interface {
	GenerateSummary(ctx context.Context, check *models.SymptomCheck, responses []*tools.ToolResponse) (string, error)
}
