package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"healthassist/internal/models"
	"healthassist/internal/tools"
)

// Disclaimer is attached to every symptom report
const Disclaimer = "This is for informational purposes only. Consult a healthcare professional for proper diagnosis."

// ErrEmptySymptoms is returned when the symptom description is empty or only whitespace
var ErrEmptySymptoms = errors.New("symptom description is empty")

// SymptomCoordinator runs a symptom check: classification, next-step tools and summary
type SymptomCoordinator struct {
	log              *slog.Logger
	classifier       Classifier
	toolRegistry     tools.ToolRegistry
	summaryGenerator SummaryGenerator
	timeout          time.Duration
}

// CoordinatorConfig contains configuration for the symptom coordinator
type CoordinatorConfig struct {
	DefaultTimeout time.Duration
}

// NewSymptomCoordinator creates a new symptom coordinator
func NewSymptomCoordinator(
	log *slog.Logger,
	classifier Classifier,
	toolRegistry tools.ToolRegistry,
	summaryGenerator SummaryGenerator,
	config CoordinatorConfig,
) *SymptomCoordinator {
	if config.DefaultTimeout == 0 {
		config.DefaultTimeout = 30 * time.Second
	}

	return &SymptomCoordinator{
		log:              log,
		classifier:       classifier,
		toolRegistry:     toolRegistry,
		summaryGenerator: summaryGenerator,
		timeout:          config.DefaultTimeout,
	}
}

// SymptomReport is what the results screen renders
type SymptomReport struct {
	ID         uuid.UUID             `json:"id"`
	Symptoms   string                `json:"symptoms"`
	Conditions []models.Condition    `json:"conditions"`
	Disclaimer string                `json:"disclaimer"`
	Summary    string                `json:"summary"`
	Language   string                `json:"language,omitempty"`
	NextSteps  []*tools.ToolResponse `json:"next_steps,omitempty"`
	Timestamp  string                `json:"timestamp"`
}

// CheckSymptoms classifies the description and collects next steps
func (c *SymptomCoordinator) CheckSymptoms(ctx context.Context, symptoms string) (*SymptomReport, error) {
	if strings.TrimSpace(symptoms) == "" {
		return nil, ErrEmptySymptoms
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	check := models.NewSymptomCheck(symptoms)
	check.Conditions = c.classifier.Classify(symptoms)

	var toolResponses []*tools.ToolResponse
	for _, tool := range c.toolRegistry.GetApplicable(check) {
		resp, err := tool.Execute(ctx, check)
		if err != nil {
			// Log error but continue with other tools
			c.log.Warn("Tool failed", "tool", tool.Name(), "check", check.ID, "error", err)
			continue
		}
		toolResponses = append(toolResponses, resp)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("symptom check interrupted: %w", err)
	}

	summary, err := c.summaryGenerator.GenerateSummary(ctx, check, toolResponses)
	if err != nil {
		c.log.Warn("Summary generation failed", "check", check.ID, "error", err)
		summary = fmt.Sprintf("Possible conditions: %s", strings.Join(conditionNames(check.Conditions), ", "))
	}

	language := detectLanguage(symptoms)
	if language != "" && language != whatlanggo.Eng.Iso6391() {
		c.log.Debug("Symptoms are not in English, keywords may not match", "check", check.ID, "language", language)
	}

	c.log.Info("Symptom check completed",
		"check", check.ID,
		"conditions", len(check.Conditions),
		"highest_severity", check.HighestSeverity(),
		"next_steps", len(toolResponses),
	)

	return &SymptomReport{
		ID:         check.ID,
		Symptoms:   check.Symptoms,
		Conditions: check.Conditions,
		Disclaimer: Disclaimer,
		Summary:    summary,
		Language:   language,
		NextSteps:  toolResponses,
		Timestamp:  check.Timestamp.Format(time.RFC3339),
	}, nil
}

// detectLanguage returns the ISO 639-1 code of text, or "" when the guess is unreliable
func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}

func conditionNames(conditions []models.Condition) []string {
	return lo.Map(conditions, func(c models.Condition, _ int) string { return c.Name })
}

// DefaultSummaryGenerator implements a basic summary generator
type DefaultSummaryGenerator struct{}

// GenerateSummary generates a human-readable summary of the symptom check
func (g *DefaultSummaryGenerator) GenerateSummary(ctx context.Context, check *models.SymptomCheck, responses []*tools.ToolResponse) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "SYMPTOM CHECK: %s\n\n", getSeverityText(check.HighestSeverity()))
	fmt.Fprintf(&b, "Symptoms: %s\n", check.Symptoms)

	b.WriteString("\nPOSSIBLE CONDITIONS:\n")
	for _, c := range check.Conditions {
		fmt.Fprintf(&b, "- %s (%s, %s severity): %s\n", c.Name, c.Probability(), c.Severity, c.Description)
		if len(c.SuggestedRemedies) > 0 {
			fmt.Fprintf(&b, "  Suggested: %s\n", strings.Join(c.SuggestedRemedies, ", "))
		}
	}

	if len(responses) > 0 {
		b.WriteString("\nNEXT STEPS:\n")
		for _, r := range responses {
			fmt.Fprintf(&b, "- %s: %s\n", r.ToolName, r.Message)
		}
	}

	fmt.Fprintf(&b, "\nChecked at: %s\n", check.Timestamp.Format(time.RFC3339))

	return b.String(), nil
}

// getSeverityText returns a descriptive text for the severity level
func getSeverityText(severity models.Severity) string {
	switch severity {
	case models.SeverityHigh:
		return "SEEK MEDICAL ATTENTION PROMPTLY"
	case models.SeverityMedium:
		return "SEE A DOCTOR IF SYMPTOMS PERSIST"
	case models.SeverityLow:
		return "SELF-CARE USUALLY SUFFICIENT"
	default:
		return "UNCLASSIFIED"
	}
}
