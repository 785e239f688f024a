package tools

import (
	"errors"
	"fmt"
	"sync"

	"github.com/samber/lo"

	"healthassist/internal/models"
)

var (
	// ErrNilTool is returned when registering a nil tool
	ErrNilTool = errors.New("tool is nil")

	// ErrDuplicateTool is returned when a tool with the same name is already registered
	ErrDuplicateTool = errors.New("tool already registered")
)

// DefaultToolRegistry implements the ToolRegistry interface.
// Tools are kept in registration order.
type DefaultToolRegistry struct {
	tools []Tool
	mu    sync.RWMutex
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry() *DefaultToolRegistry {
	return &DefaultToolRegistry{
		tools: make([]Tool, 0),
	}
}

// Register adds a tool to the registry
func (r *DefaultToolRegistry) Register(tool Tool) error {
	if tool == nil {
		return ErrNilTool
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if lo.ContainsBy(r.tools, func(t Tool) bool { return t.Name() == tool.Name() }) {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name())
	}

	r.tools = append(r.tools, tool)
	return nil
}

// GetAll returns all registered tools
func (r *DefaultToolRegistry) GetAll() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to avoid race conditions
	result := make([]Tool, len(r.tools))
	copy(result, r.tools)

	return result
}

// GetApplicable returns tools applicable to the given symptom check
func (r *DefaultToolRegistry) GetApplicable(check *models.SymptomCheck) []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(r.tools, func(t Tool, _ int) bool {
		return t.IsApplicable(check)
	})
}
