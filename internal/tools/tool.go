package tools

import (
	"context"

	"healthassist/internal/models"
)

// ToolResponse represents the response from a next-step tool
type ToolResponse struct {
	ToolName  string            `json:"tool_name"`
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Locations []models.Location `json:"locations,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// Tool suggests what to do after a symptom check
type Tool interface {
	// Name returns the name of the tool
	Name() string

	// IsApplicable determines if this tool is applicable for the given symptom check
	IsApplicable(check *models.SymptomCheck) bool

	// Execute runs the tool's logic for the given symptom check
	Execute(ctx context.Context, check *models.SymptomCheck) (*ToolResponse, error)
}

// ToolRegistry maintains a registry of available tools
type ToolRegistry interface {
	// Register adds a tool to the registry
	Register(tool Tool) error

	// GetAll returns all registered tools
	GetAll() []Tool

	// GetApplicable returns tools applicable to the given symptom check
	GetApplicable(check *models.SymptomCheck) []Tool
}
