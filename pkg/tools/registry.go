package tools

import (
	"fmt"
	"sort"
	"sync"

	"github.com/navicore/fragment-bridge/pkg/tools/core"
)

// FragmentsCategory holds the tools that bridge fragment loaders
const FragmentsCategory = "fragments"

// Category represents a group of related tools
type Category struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Permission  core.PermissionLevel
	Tools       []core.Tool
}

// ToolInfo describes a registered tool and whether it is currently offered
type ToolInfo struct {
	Name        string
	Description string
	Category    string
	Enabled     bool
}

// Registry manages all tool categories and their tools
// It implements the core.ToolRegistrar interface
type Registry struct {
	mu         sync.RWMutex
	Categories map[string]*Category
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	r := &Registry{
		Categories: make(map[string]*Category),
	}

	r.RegisterCategory(&Category{
		ID:          FragmentsCategory,
		Name:        "Fragment Tools",
		Description: "Tools that load YouTube transcripts, GitHub repositories and PDF text through fragment loaders",
		Enabled:     true,
		Permission:  core.PermissionNetwork,
		Tools:       []core.Tool{},
	})

	return r
}

// RegisterCategory adds a new category to the registry
func (r *Registry) RegisterCategory(cat *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.Categories[cat.ID]; exists {
		return fmt.Errorf("category with ID %s already exists", cat.ID)
	}

	r.Categories[cat.ID] = cat
	return nil
}

// RegisterTool adds a tool to a specific category. Tool names are unique
// across the whole registry.
func (r *Registry) RegisterTool(categoryID string, tool core.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, exists := r.Categories[categoryID]
	if !exists {
		return fmt.Errorf("category with ID %s does not exist", categoryID)
	}

	for _, other := range r.Categories {
		for _, existingTool := range other.Tools {
			if existingTool.Name() == tool.Name() {
				return fmt.Errorf("tool with name %s already exists in category %s", tool.Name(), other.ID)
			}
		}
	}

	cat.Tools = append(cat.Tools, tool)
	return nil
}

// GetEnabledTools returns definitions for all tools in enabled categories
func (r *Registry) GetEnabledTools() []core.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []core.ToolDefinition

	for _, cat := range r.sortedCategories() {
		if !cat.Enabled {
			continue
		}

		for _, tool := range cat.Tools {
			result = append(result, core.ToolDefinition{
				Name:        tool.Name(),
				Description: tool.Description(),
				InputSchema: tool.InputSchema(),
			})
		}
	}

	return result
}

// ListTools returns every registered tool, enabled or not
func (r *Registry) ListTools() []ToolInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []ToolInfo
	for _, cat := range r.sortedCategories() {
		for _, tool := range cat.Tools {
			result = append(result, ToolInfo{
				Name:        tool.Name(),
				Description: tool.Description(),
				Category:    cat.ID,
				Enabled:     cat.Enabled,
			})
		}
	}
	return result
}

// GetTool finds a tool by name across all enabled categories
func (r *Registry) GetTool(name string) (core.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cat := range r.Categories {
		if !cat.Enabled {
			continue
		}

		for _, tool := range cat.Tools {
			if tool.Name() == name {
				return tool, nil
			}
		}
	}

	return nil, fmt.Errorf("tool %s not found or not enabled", name)
}

// SetCategoryEnabled enables or disables an entire category
func (r *Registry) SetCategoryEnabled(categoryID string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, exists := r.Categories[categoryID]
	if !exists {
		return fmt.Errorf("category with ID %s does not exist", categoryID)
	}

	cat.Enabled = enabled
	return nil
}

// SetAllCategoriesEnabled enables or disables all categories
func (r *Registry) SetAllCategoriesEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cat := range r.Categories {
		cat.Enabled = enabled
	}
}

// sortedCategories must be called with r.mu held
func (r *Registry) sortedCategories() []*Category {
	cats := make([]*Category, 0, len(r.Categories))
	for _, cat := range r.Categories {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].ID < cats[j].ID })
	return cats
}
