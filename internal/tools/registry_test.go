package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"healthassist/internal/models"
)

type stubTool struct {
	name       string
	applicable bool
}

func (s stubTool) Name() string { return s.name }

func (s stubTool) IsApplicable(*models.SymptomCheck) bool { return s.applicable }

func (s stubTool) Execute(context.Context, *models.SymptomCheck) (*ToolResponse, error) {
	return &ToolResponse{ToolName: s.name, Success: true}, nil
}

func TestDefaultToolRegistry(t *testing.T) {
	req := require.New(t)
	r := NewToolRegistry()

	req.NoError(r.Register(stubTool{name: "a", applicable: true}))
	req.NoError(r.Register(stubTool{name: "b", applicable: false}))
	req.NoError(r.Register(stubTool{name: "c", applicable: true}))

	req.ErrorIs(r.Register(stubTool{name: "a"}), ErrDuplicateTool)
	req.ErrorIs(r.Register(nil), ErrNilTool)

	req.Len(r.GetAll(), 3)

	applicable := r.GetApplicable(models.NewSymptomCheck("fever"))
	req.Len(applicable, 2)
	req.Equal("a", applicable[0].Name())
	req.Equal("c", applicable[1].Name())
}
