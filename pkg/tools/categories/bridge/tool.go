package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/navicore/fragment-bridge/pkg/fragments"
	"github.com/navicore/fragment-bridge/pkg/tools/core"
)

// Input is the single parameter every bridge tool accepts. Argument is a
// pointer so an absent key can be told apart from an empty string.
type Input struct {
	Argument *string `json:"argument"`
}

const (
	noiseNote      = "Noise files (lock files, node_modules, vendor dirs, build artifacts) are filtered out automatically. "
	truncationNote = "Large outputs are truncated to ~%d chars after filtering. A [Protection: ...] header indicates if filtering/truncation occurred."
)

// FragmentTool wraps the loader registered for one scheme
type FragmentTool struct {
	core.BaseToolImpl
	entry   Entry
	loaders fragments.Provider
	opts    *options
}

// NewFragmentTool creates the tool for entry. The loader is resolved from
// loaders on every call, not at construction.
func NewFragmentTool(entry Entry, loaders fragments.Provider, opts ...Option) *FragmentTool {
	tool := &FragmentTool{
		entry:   entry,
		loaders: loaders,
		opts:    buildOptions(opts),
	}
	tool.BaseToolImpl = *core.NewBaseTool(
		entry.ToolName,
		describe(entry, tool.opts),
		"fragments",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"argument": map[string]interface{}{
					"type":        "string",
					"description": fmt.Sprintf("Reference passed to the %s fragment loader", entry.Scheme),
				},
			},
			"required": []string{"argument"},
		},
	)
	return tool
}

// Entry returns the bridge table entry this tool was built from
func (t *FragmentTool) Entry() Entry {
	return t.entry
}

// Execute decodes the tool input and calls the loader
func (t *FragmentTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var params Input
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid input for %s tool: %w", t.Name(), err)
	}

	if params.Argument == nil {
		return nil, fmt.Errorf("argument parameter is required")
	}

	return t.Call(ctx, *params.Argument)
}

// describe returns the entry's description, extended with how protected
// output reads when protection is enabled
func describe(entry Entry, opts *options) string {
	if !opts.protect {
		return entry.Description
	}
	note := counts.Sprintf(truncationNote, opts.maxContentChars)
	if entry.Scheme == "github" {
		note = noiseNote + note
	}
	return entry.Description + "\n\n" + note
}

// Call hands argument to the scheme's loader and returns its text. Loader
// errors are returned as-is.
func (t *FragmentTool) Call(ctx context.Context, argument string) (string, error) {
	loader, err := t.loaders.Get(t.entry.Scheme)
	if err != nil {
		if errors.Is(err, fragments.ErrLoaderNotFound) {
			return "", &fragments.LoaderNotRegisteredError{Scheme: t.entry.Scheme, Plugin: t.entry.Plugin}
		}
		return "", err
	}

	loaderArg := argument
	if t.opts.downloadPDF && t.entry.Scheme == "pdf" && isRemote(argument) {
		path, err := downloadToTemp(ctx, t.opts.httpClient, argument, ".pdf")
		if err != nil {
			return "", fmt.Errorf("downloading PDF from %s: %w", argument, err)
		}
		defer func() {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				t.opts.logger.Warn("failed to remove staged PDF", zap.String("path", path), zap.Error(err))
			}
		}()
		loaderArg = path
	}

	text, err := loader.Load(ctx, loaderArg)
	if err != nil {
		return "", err
	}

	if t.opts.protect {
		text = protect(t.entry.Scheme, text, t.opts.maxContentChars)
	}
	return text, nil
}
