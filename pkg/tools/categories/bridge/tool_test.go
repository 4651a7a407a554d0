package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navicore/fragment-bridge/pkg/fragments"
	"github.com/navicore/fragment-bridge/pkg/tools/core"
)

// recordingLoader remembers every argument it receives
type recordingLoader struct {
	calls  []string
	output string
	err    error
}

func (l *recordingLoader) Load(ctx context.Context, argument string) (string, error) {
	l.calls = append(l.calls, argument)
	return l.output, l.err
}

func mustEntry(t *testing.T, toolName string) Entry {
	t.Helper()
	entry, ok := Lookup(toolName)
	require.True(t, ok, "no bridge entry for %s", toolName)
	return entry
}

func TestTableHasThreeTools(t *testing.T) {
	var names, schemes []string
	for _, e := range Entries() {
		names = append(names, e.ToolName)
		schemes = append(schemes, e.Scheme)
		assert.NotEmpty(t, e.Plugin)
		assert.NotEmpty(t, e.Description)
	}
	assert.Equal(t, []string{"load_yt", "load_github", "load_pdf"}, names)
	assert.Equal(t, []string{"yt", "github", "pdf"}, schemes)

	_, ok := Lookup("load_docs")
	assert.False(t, ok)
}

func TestDescriptionsMentionSource(t *testing.T) {
	assert.Contains(t, mustEntry(t, "load_yt").Description, "YouTube")
	assert.Contains(t, mustEntry(t, "load_github").Description, "GitHub")
	assert.Contains(t, mustEntry(t, "load_pdf").Description, "PDF")
}

func TestToolDelegatesToMatchingScheme(t *testing.T) {
	testCases := []struct {
		toolName string
		argument string
	}{
		{toolName: "load_yt", argument: "dQw4w9WgXcQ"},
		{toolName: "load_github", argument: "  simonw/llm "},
		{toolName: "load_pdf", argument: "https://example.com/report.pdf"},
	}

	for _, tc := range testCases {
		t.Run(tc.toolName, func(t *testing.T) {
			registry := fragments.NewRegistry()
			loaders := map[string]*recordingLoader{}
			for _, e := range Entries() {
				loaders[e.Scheme] = &recordingLoader{output: "text from " + e.Scheme}
				require.NoError(t, registry.Register(e.Scheme, loaders[e.Scheme]))
			}

			entry := mustEntry(t, tc.toolName)
			tool := NewFragmentTool(entry, registry)

			out, err := tool.Call(context.Background(), tc.argument)
			require.NoError(t, err)
			assert.Equal(t, "text from "+entry.Scheme, out)

			for scheme, l := range loaders {
				if scheme == entry.Scheme {
					assert.Equal(t, []string{tc.argument}, l.calls)
				} else {
					assert.Empty(t, l.calls)
				}
			}
		})
	}
}

func TestOutputIsVerbatim(t *testing.T) {
	big := strings.Repeat("--- Source: node_modules/x.js ---\nline\n", 20000)
	registry := fragments.NewRegistry()
	require.NoError(t, registry.Register("github", &recordingLoader{output: big}))

	out, err := NewFragmentTool(mustEntry(t, "load_github"), registry).Call(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, big, out)
}

func TestMissingLoaderNamesPlugin(t *testing.T) {
	registry := fragments.NewRegistry()
	tool := NewFragmentTool(mustEntry(t, "load_yt"), registry)

	_, err := tool.Call(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fragments.ErrLoaderNotFound))
	assert.Contains(t, err.Error(), "llm-fragments-youtube-transcript")

	var notRegistered *fragments.LoaderNotRegisteredError
	require.True(t, errors.As(err, &notRegistered))
	assert.Equal(t, "yt", notRegistered.Scheme)
}

func TestLoaderResolvedAtCallTime(t *testing.T) {
	registry := fragments.NewRegistry()
	tool := NewFragmentTool(mustEntry(t, "load_pdf"), registry)

	_, err := tool.Call(context.Background(), "doc.pdf")
	require.ErrorIs(t, err, fragments.ErrLoaderNotFound)

	require.NoError(t, registry.Register("pdf", &recordingLoader{output: "# Title"}))
	out, err := tool.Call(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "# Title", out)
}

func TestLoaderErrorPropagatedUnchanged(t *testing.T) {
	loaderErr := errors.New("video unavailable")
	registry := fragments.NewRegistry()
	require.NoError(t, registry.Register("yt", &recordingLoader{err: loaderErr}))

	_, err := NewFragmentTool(mustEntry(t, "load_yt"), registry).Call(context.Background(), "x")
	assert.Same(t, loaderErr, err)
}

func TestExecuteInput(t *testing.T) {
	registry := fragments.NewRegistry()
	loader := &recordingLoader{output: "ok"}
	require.NoError(t, registry.Register("github", loader))
	tool := NewFragmentTool(mustEntry(t, "load_github"), registry)

	testCases := []struct {
		name        string
		input       string
		expectError bool
	}{
		{name: "Valid input", input: `{"argument":"simonw/llm"}`},
		{name: "Empty argument", input: `{"argument":""}`},
		{name: "Missing argument", input: `{}`, expectError: true},
		{name: "Null argument", input: `{"argument":null}`, expectError: true},
		{name: "Malformed JSON", input: `{"argument":`, expectError: true},
		{name: "Wrong type", input: `{"argument":42}`, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tool.Execute(context.Background(), json.RawMessage(tc.input))
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok", result)
		})
	}
	assert.Equal(t, []string{"simonw/llm", ""}, loader.calls)
}

func TestExecuteEmptyArgumentMissingLoader(t *testing.T) {
	tool := NewFragmentTool(mustEntry(t, "load_yt"), fragments.NewRegistry())

	_, err := tool.Execute(context.Background(), json.RawMessage(`{"argument":""}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, fragments.ErrLoaderNotFound)
	assert.Contains(t, err.Error(), "llm-fragments-youtube-transcript")
}

func TestDescriptionWithProtection(t *testing.T) {
	registry := fragments.NewRegistry()

	plain := NewFragmentTool(mustEntry(t, "load_github"), registry)
	assert.Equal(t, mustEntry(t, "load_github").Description, plain.Description())
	assert.NotContains(t, plain.Description(), "[Protection")

	github := NewFragmentTool(mustEntry(t, "load_github"), registry, WithProtection(0))
	assert.True(t, strings.HasPrefix(github.Description(), mustEntry(t, "load_github").Description))
	assert.Contains(t, github.Description(), "Noise files (lock files, node_modules, vendor dirs, build artifacts)")
	assert.Contains(t, github.Description(), "~150,000 chars")
	assert.Contains(t, github.Description(), "[Protection: ...] header")

	yt := NewFragmentTool(mustEntry(t, "load_yt"), registry, WithProtection(5000))
	assert.Contains(t, yt.Description(), "~5,000 chars")
	assert.Contains(t, yt.Description(), "[Protection: ...] header")
	assert.NotContains(t, yt.Description(), "Noise files")
}

func TestInputSchema(t *testing.T) {
	tool := NewFragmentTool(mustEntry(t, "load_yt"), fragments.NewRegistry())
	schema := tool.InputSchema()

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{"argument"}, schema["required"])
	assert.Equal(t, "fragments", tool.Category())
	assert.Equal(t, "load_yt", tool.Name())
}

func TestProtectionOption(t *testing.T) {
	content := "--- Source: README.md ---\nhello\n--- Source: yarn.lock ---\nnoise\n"
	registry := fragments.NewRegistry()
	require.NoError(t, registry.Register("github", &recordingLoader{output: content}))

	tool := NewFragmentTool(mustEntry(t, "load_github"), registry, WithProtection(0))
	out, err := tool.Call(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Contains(t, out, "[Protection: Filtered 1 noise files")
	assert.Contains(t, out, "README.md")
	assert.NotContains(t, out, "yarn.lock")
}

func TestRemotePDFDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.pdf" {
			http.NotFound(w, r)
			return
		}
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer server.Close()

	var stagedPath string
	var stagedContent []byte
	registry := fragments.NewRegistry()
	require.NoError(t, registry.Register("pdf", fragments.LoaderFunc(func(ctx context.Context, argument string) (string, error) {
		stagedPath = argument
		data, err := os.ReadFile(argument)
		stagedContent = data
		return "extracted", err
	})))

	tool := NewFragmentTool(mustEntry(t, "load_pdf"), registry, WithRemotePDFDownload(server.Client()))

	out, err := tool.Call(context.Background(), server.URL+"/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "extracted", out)
	assert.Equal(t, "%PDF-1.4 fake", string(stagedContent))
	_, statErr := os.Stat(stagedPath)
	assert.True(t, os.IsNotExist(statErr), "staged file should be removed")

	_, err = tool.Call(context.Background(), server.URL+"/missing.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "downloading PDF from")

	// Local paths go straight to the loader
	_, err = tool.Call(context.Background(), "/tmp/does-not-exist.pdf")
	require.Error(t, err)
	assert.Equal(t, "/tmp/does-not-exist.pdf", stagedPath)
}

func TestRegister(t *testing.T) {
	registry := fragments.NewRegistry()
	require.NoError(t, registry.Register("github", &recordingLoader{}))

	t.Run("All tools", func(t *testing.T) {
		reg := &captureRegistrar{}
		require.NoError(t, Register(reg, registry))
		assert.Equal(t, []string{"load_yt", "load_github", "load_pdf"}, reg.names())
		for _, c := range reg.categories {
			assert.Equal(t, "fragments", c)
		}
	})

	t.Run("Only available", func(t *testing.T) {
		reg := &captureRegistrar{}
		require.NoError(t, Register(reg, registry, OnlyAvailable()))
		assert.Equal(t, []string{"load_github"}, reg.names())
	})

	t.Run("Registrar error", func(t *testing.T) {
		reg := &captureRegistrar{fail: errors.New("full")}
		err := Register(reg, registry)
		assert.ErrorContains(t, err, "load_yt")
	})
}

type captureRegistrar struct {
	tools      []core.Tool
	categories []string
	fail       error
}

func (c *captureRegistrar) RegisterTool(categoryID string, tool core.Tool) error {
	if c.fail != nil {
		return c.fail
	}
	c.tools = append(c.tools, tool)
	c.categories = append(c.categories, categoryID)
	return nil
}

func (c *captureRegistrar) names() []string {
	var names []string
	for _, tool := range c.tools {
		names = append(names, tool.Name())
	}
	return names
}
