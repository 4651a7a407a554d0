package tools

import (
	"github.com/navicore/fragment-bridge/pkg/fragments"
	"github.com/navicore/fragment-bridge/pkg/tools/categories/bridge"
)

// registerFragmentTools registers the tools that wrap fragment loaders
func registerFragmentTools(registry *Registry, loaders fragments.Provider, opts ...bridge.Option) error {
	return bridge.Register(registry, loaders, opts...)
}
