package api

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"healthassist/internal/directory"
	"healthassist/internal/mocks"
	"healthassist/internal/models"
	"healthassist/internal/tools"
	"healthassist/internal/tools/nearby"
	"healthassist/internal/triage"
)

type failingTool struct{}

func (failingTool) Name() string { return "Broken Tool" }

func (failingTool) IsApplicable(*models.SymptomCheck) bool { return true }

func (failingTool) Execute(context.Context, *models.SymptomCheck) (*tools.ToolResponse, error) {
	return nil, errors.New("boom")
}

func newRegistry(t *testing.T, extra ...tools.Tool) *tools.DefaultToolRegistry {
	t.Helper()
	d := directory.Default()
	registry := tools.NewToolRegistry()
	for _, tool := range append([]tools.Tool{
		nearby.NewPharmacyFinder(d),
		nearby.NewDoctorFinder(d),
		nearby.NewHospitalFinder(d),
	}, extra...) {
		require.NoError(t, registry.Register(tool))
	}
	return registry
}

func TestSymptomCoordinator_CheckSymptoms(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	classifier, err := triage.NewRuleBasedClassifier(triage.ClassifierConfig{})
	req.NoError(err)

	coordinator := NewSymptomCoordinator(log, classifier, newRegistry(t), &DefaultSummaryGenerator{}, CoordinatorConfig{})

	report, err := coordinator.CheckSymptoms(context.Background(), "fever and cough")
	req.NoError(err)
	req.Equal("fever and cough", report.Symptoms)
	req.Equal(Disclaimer, report.Disclaimer)
	req.Len(report.Conditions, 2)
	req.Equal("Common Flu", report.Conditions[0].Name)
	req.Equal("Common Cold", report.Conditions[1].Name)

	// Medium severity: pharmacies and doctors, no hospital
	req.Len(report.NextSteps, 2)
	req.Equal("Pharmacy Finder", report.NextSteps[0].ToolName)
	req.Equal("Doctor Finder", report.NextSteps[1].ToolName)

	req.Contains(report.Summary, "SEE A DOCTOR IF SYMPTOMS PERSIST")
	req.Contains(report.Summary, "- Common Flu (85%, medium severity)")
	req.Contains(report.Summary, "Suggested: Cough syrup, Throat lozenges")
	req.Contains(report.Summary, "- Doctor Finder: Found 2 nearby doctor locations")
}

func TestSymptomCoordinator_EmptySymptoms(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	classifier := mocks.NewMockClassifier(ctrl)
	classifier.EXPECT().Classify(gomock.Any()).Times(0)

	coordinator := NewSymptomCoordinator(logs.GetLoggerFromLevel(slog.LevelDebug), classifier, tools.NewToolRegistry(), &DefaultSummaryGenerator{}, CoordinatorConfig{})

	for _, input := range []string{"", "   ", "\n"} {
		_, err := coordinator.CheckSymptoms(context.Background(), input)
		req.ErrorIs(err, ErrEmptySymptoms)
	}
}

func TestSymptomCoordinator_FailingToolIsSkipped(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	classifier := mocks.NewMockClassifier(ctrl)
	classifier.EXPECT().Classify("rash").Return([]models.Condition{
		{Name: "Allergy", ProbabilityPercent: 50, Severity: models.SeverityHigh},
	})

	coordinator := NewSymptomCoordinator(logs.GetLoggerFromLevel(slog.LevelDebug), classifier, newRegistry(t, failingTool{}), &DefaultSummaryGenerator{}, CoordinatorConfig{})

	report, err := coordinator.CheckSymptoms(context.Background(), "rash")
	req.NoError(err)
	req.Len(report.NextSteps, 3)
	req.Equal("Hospital Finder", report.NextSteps[2].ToolName)
	req.Equal("911", report.NextSteps[2].Data["emergency_number"])
	req.True(strings.HasPrefix(report.Summary, "SYMPTOM CHECK: SEEK MEDICAL ATTENTION PROMPTLY"))
}

func TestSymptomCoordinator_SummaryFallback(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	classifier := mocks.NewMockClassifier(ctrl)
	summary := mocks.NewMockSummaryGenerator(ctrl)

	classifier.EXPECT().Classify("nausea").Return([]models.Condition{
		{Name: "Gastroenteritis", ProbabilityPercent: 70, Severity: models.SeverityMedium},
	})
	summary.EXPECT().GenerateSummary(gomock.Any(), gomock.Any(), gomock.Len(2)).Return("", errors.New("unavailable"))

	coordinator := NewSymptomCoordinator(logs.GetLoggerFromLevel(slog.LevelDebug), classifier, newRegistry(t), summary, CoordinatorConfig{})

	report, err := coordinator.CheckSymptoms(context.Background(), "nausea")
	req.NoError(err)
	req.Equal("Possible conditions: Gastroenteritis", report.Summary)
}

func TestSymptomCoordinator_Canceled(t *testing.T) {
	req := require.New(t)
	classifier, err := triage.NewRuleBasedClassifier(triage.ClassifierConfig{})
	req.NoError(err)

	coordinator := NewSymptomCoordinator(logs.GetLoggerFromLevel(slog.LevelDebug), classifier, newRegistry(t), &DefaultSummaryGenerator{}, CoordinatorConfig{DefaultTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = coordinator.CheckSymptoms(ctx, "fever")
	req.ErrorIs(err, context.Canceled)
}

func TestDetectLanguage(t *testing.T) {
	req := require.New(t)
	req.Equal("", detectLanguage(""))
	req.Contains([]string{"", "fr"}, detectLanguage("J'ai de la fièvre et mal à la tête depuis hier soir"))
}
