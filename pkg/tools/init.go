package tools

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/navicore/fragment-bridge/pkg/fragments"
	"github.com/navicore/fragment-bridge/pkg/tools/categories/bridge"
)

// InitializeTools registers all tools with the registry
func InitializeTools(registry *Registry, loaders fragments.Provider, opts ...bridge.Option) error {
	if err := registerFragmentTools(registry, loaders, opts...); err != nil {
		return fmt.Errorf("failed to register fragment tools: %w", err)
	}

	return nil
}

// Initialize creates a fully initialized tool manager with all tools registered
func Initialize(logger *zap.Logger, loaders fragments.Provider, opts ...bridge.Option) (*ToolManager, error) {
	manager := NewToolManager(logger)

	if err := InitializeTools(manager.registry, loaders, append([]bridge.Option{bridge.WithLogger(manager.logger)}, opts...)...); err != nil {
		return nil, fmt.Errorf("failed to initialize tools: %w", err)
	}

	return manager, nil
}
