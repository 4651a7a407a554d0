package bridge

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/navicore/fragment-bridge/pkg/fragments"
	"github.com/navicore/fragment-bridge/pkg/tools/core"
)

// Register registers one tool per bridge table entry in the fragments
// category
func Register(registry core.ToolRegistrar, loaders fragments.Provider, opts ...Option) error {
	o := buildOptions(opts)

	for _, entry := range entries {
		if o.onlyAvailable && !loaders.Has(entry.Scheme) {
			o.logger.Info("skipping tool, fragment loader not installed",
				zap.String("tool", entry.ToolName),
				zap.String("scheme", entry.Scheme),
				zap.String("plugin", entry.Plugin))
			continue
		}

		if err := registry.RegisterTool("fragments", NewFragmentTool(entry, loaders, opts...)); err != nil {
			return fmt.Errorf("failed to register %s: %w", entry.ToolName, err)
		}
	}

	return nil
}
