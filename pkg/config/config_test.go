package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config should be written")
}

func TestLoadConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "loaders": {"yt": {"command": "echo", "args": ["{argument}"], "timeout": "5s"}},
  "bridge": {"protection": true, "max_content_chars": 1000}
}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Bridge.Protection)
	assert.Equal(t, 1000, cfg.Bridge.MaxContentChars)
	assert.Equal(t, "60s", cfg.Bridge.DownloadTimeout, "unset fields keep defaults")
	assert.Equal(t, "echo", cfg.Loaders["yt"].Command)
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
loaders:
  github:
    command: sh
    args: ["-c", "printf 'repo %s' \"$0\"", "{argument}"]
bridge:
  only_available: true
  download_timeout: 10s
app:
  log_format: json
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Bridge.OnlyAvailable)
	assert.Equal(t, 10*time.Second, cfg.DownloadTimeoutDuration())
	assert.Equal(t, "json", cfg.App.LogFormat)

	loaders, err := cfg.BuildLoaders()
	require.NoError(t, err)
	assert.Equal(t, []string{"github"}, loaders.Schemes())

	loader, err := loaders.Get("github")
	require.NoError(t, err)
	out, err := loader.Load(context.Background(), "simonw/llm")
	require.NoError(t, err)
	assert.Equal(t, "repo simonw/llm", out)
}

func TestLoadConfigInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		content string
	}{
		{name: "Malformed JSON", file: "c.json", content: `{"loaders":`},
		{name: "Missing command", file: "c.json", content: `{"loaders": {"yt": {}}}`},
		{name: "Bad timeout", file: "c.yml", content: "loaders:\n  yt:\n    command: echo\n    timeout: soon\n"},
		{name: "Bad download timeout", file: "c.json", content: `{"bridge": {"download_timeout": "x"}}`},
		{name: "Negative limit", file: "c.json", content: `{"bridge": {"max_content_chars": -1}}`},
		{name: "Unknown log format", file: "c.json", content: `{"app": {"log_format": "xml"}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveConfigRoundTripYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Loaders["pdf"] = LoaderConfig{Command: "pdftotext", Args: []string{"{argument}", "-"}}
	cfg.App.Debug = true

	require.NoError(t, SaveConfig(cfg, path))
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
