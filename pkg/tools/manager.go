package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navicore/fragment-bridge/pkg/tools/core"
)

// ToolManager handles tool execution and permissions
type ToolManager struct {
	mu           sync.RWMutex
	registry     *Registry
	toolsEnabled bool
	logger       *zap.Logger
}

// NewToolManager creates a new tool manager with default settings
func NewToolManager(logger *zap.Logger) *ToolManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ToolManager{
		registry:     NewRegistry(),
		toolsEnabled: true, // Enabled by default
		logger:       logger,
	}
}

// Registry returns the underlying tool registry
func (tm *ToolManager) Registry() *Registry {
	return tm.registry
}

// EnableTools enables or disables all tools
func (tm *ToolManager) EnableTools(enabled bool) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.toolsEnabled = enabled
}

// IsToolsEnabled returns whether tools are enabled
func (tm *ToolManager) IsToolsEnabled() bool {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	return tm.toolsEnabled
}

// EnableCategory enables or disables a specific tool category
func (tm *ToolManager) EnableCategory(categoryID string, enabled bool) error {
	return tm.registry.SetCategoryEnabled(categoryID, enabled)
}

// EnableCategories parses a comma-separated list of category IDs and enables
// only those
func (tm *ToolManager) EnableCategories(categoriesStr string) error {
	if categoriesStr == "" {
		return nil
	}

	tm.registry.SetAllCategoriesEnabled(false)
	for _, catID := range strings.Split(categoriesStr, ",") {
		if err := tm.EnableCategory(strings.TrimSpace(catID), true); err != nil {
			return err
		}
	}
	return nil
}

// GetTools returns tool definitions for all enabled tools
func (tm *ToolManager) GetTools() []core.ToolDefinition {
	if !tm.IsToolsEnabled() {
		return nil
	}

	return tm.registry.GetEnabledTools()
}

// ListTools returns every registered tool with its enabled state
func (tm *ToolManager) ListTools() []ToolInfo {
	return tm.registry.ListTools()
}

// HandleToolUse processes a tool use request
func (tm *ToolManager) HandleToolUse(ctx context.Context, toolUse *core.ToolUse) (*core.ToolResult, error) {
	if !tm.IsToolsEnabled() {
		return nil, fmt.Errorf("tool use is disabled")
	}

	if toolUse == nil {
		return nil, fmt.Errorf("no tool use request provided")
	}

	callID := toolUse.ID
	if callID == "" {
		callID = uuid.NewString()
	}
	logger := tm.logger.With(zap.String("tool", toolUse.Name), zap.String("call_id", callID))

	tool, err := tm.registry.GetTool(toolUse.Name)
	if err != nil {
		logger.Warn("tool not found", zap.Error(err))
		return nil, fmt.Errorf("error finding tool %s: %w", toolUse.Name, err)
	}

	start := time.Now()
	result, err := tool.Execute(ctx, toolUse.Input)
	if err != nil {
		logger.Error("tool execution failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("error executing tool %s: %w", toolUse.Name, err)
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("error marshaling tool result: %w", err)
	}

	logger.Info("tool executed",
		zap.Duration("duration", time.Since(start)),
		zap.Int("result_bytes", len(resultJSON)))

	return &core.ToolResult{
		ID:     callID,
		Name:   toolUse.Name,
		Result: resultJSON,
	}, nil
}

// RegisterTool registers a new tool with the manager
func (tm *ToolManager) RegisterTool(categoryID string, tool core.Tool) error {
	return tm.registry.RegisterTool(categoryID, tool)
}
