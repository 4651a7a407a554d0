// Package ui formats tool listings and tool output for the terminal.
package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Style definitions
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	availableStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#43BF6D")).
			Padding(0, 1)

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// ToolRow is one line of the tool listing
type ToolRow struct {
	Name      string
	Scheme    string
	Plugin    string
	Enabled   bool
	Available bool
}

func (r ToolRow) status() string {
	switch {
	case !r.Enabled:
		return "disabled"
	case r.Available:
		return "available"
	default:
		return "missing loader"
	}
}

// ToolTable renders tool rows as a bordered table
func ToolTable(rows []ToolRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("TOOL", "SCHEME", "PLUGIN", "STATUS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 3 && row >= 0 && row < len(rows) {
				if rows[row].Enabled && rows[row].Available {
					return availableStyle
				}
				return missingStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		t.Row(r.Name, r.Scheme, r.Plugin, r.status())
	}

	return t.Render()
}

// RenderMarkdown renders text as terminal markdown wrapped at width columns
func RenderMarkdown(text string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// CopyToClipboard copies text to the system clipboard
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}
