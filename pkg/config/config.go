package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/navicore/fragment-bridge/pkg/fragments"
	"github.com/navicore/fragment-bridge/pkg/tools/categories/bridge"
)

// Config represents the application configuration
type Config struct {
	// Fragment loaders keyed by scheme
	Loaders map[string]LoaderConfig `json:"loaders" yaml:"loaders"`

	// Bridge settings
	Bridge BridgeConfig `json:"bridge" yaml:"bridge"`

	// App settings
	App AppConfig `json:"app" yaml:"app"`
}

// LoaderConfig describes an external command that produces a fragment
type LoaderConfig struct {
	// Program to run
	Command string `json:"command" yaml:"command"`

	// Arguments; "{argument}" is replaced by the reference string
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`

	// Working directory for the command
	WorkingDir string `json:"working_dir,omitempty" yaml:"working_dir,omitempty"`

	// Maximum run time, e.g. "90s"
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// BridgeConfig controls how fragment loaders are exposed as tools
type BridgeConfig struct {
	// Register only tools whose loader is configured
	OnlyAvailable bool `json:"only_available" yaml:"only_available"`

	// Filter GitHub noise files and truncate long output
	Protection bool `json:"protection" yaml:"protection"`

	// Truncation limit when protection is on
	MaxContentChars int `json:"max_content_chars" yaml:"max_content_chars"`

	// Download http(s) PDF arguments before calling the pdf loader
	DownloadRemotePDF bool `json:"download_remote_pdf" yaml:"download_remote_pdf"`

	// HTTP timeout for PDF downloads, e.g. "60s"
	DownloadTimeout string `json:"download_timeout" yaml:"download_timeout"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	// Debug mode
	Debug bool `json:"debug" yaml:"debug"`

	// Log file; empty logs to stderr
	LogFile string `json:"log_file" yaml:"log_file"`

	// Log encoding: console or json
	LogFormat string `json:"log_format" yaml:"log_format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Loaders: map[string]LoaderConfig{},
		Bridge: BridgeConfig{
			OnlyAvailable:     false,
			Protection:        false,
			MaxContentChars:   bridge.DefaultMaxContentChars,
			DownloadRemotePDF: false,
			DownloadTimeout:   "60s",
		},
		App: AppConfig{
			Debug:     false,
			LogFile:   "",
			LogFormat: "console",
		},
	}
}

// DefaultPath returns ~/.config/fragment-bridge/config.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".config", "fragment-bridge", "config.json"), nil
}

// LoadConfig loads the configuration from the specified file. A missing file
// is created with the defaults.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		path, err := DefaultPath()
		if err != nil {
			return config, err
		}
		configPath = path
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return config, fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := SaveConfig(config, configPath); err != nil {
			return config, fmt.Errorf("failed to save default config: %w", err)
		}

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	if isYAML(configPath) {
		err = yaml.Unmarshal(data, &config)
	} else {
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified file
func SaveConfig(config Config, configPath string) error {
	var data []byte
	var err error
	if isYAML(configPath) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks loader commands and durations
func (c *Config) Validate() error {
	for scheme, lc := range c.Loaders {
		if strings.TrimSpace(scheme) == "" {
			return fmt.Errorf("loader with empty scheme")
		}
		if lc.Command == "" {
			return fmt.Errorf("loader %s: command is required", scheme)
		}
		if _, err := parseDuration(lc.Timeout); err != nil {
			return fmt.Errorf("loader %s: invalid timeout %q: %w", scheme, lc.Timeout, err)
		}
	}
	if _, err := parseDuration(c.Bridge.DownloadTimeout); err != nil {
		return fmt.Errorf("bridge: invalid download_timeout %q: %w", c.Bridge.DownloadTimeout, err)
	}
	if c.Bridge.MaxContentChars < 0 {
		return fmt.Errorf("bridge: max_content_chars must not be negative")
	}
	switch c.App.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("app: unknown log_format %q", c.App.LogFormat)
	}
	return nil
}

// BuildLoaders registers a command loader for every configured scheme
func (c *Config) BuildLoaders() (*fragments.Registry, error) {
	registry := fragments.NewRegistry()

	schemes := make([]string, 0, len(c.Loaders))
	for scheme := range c.Loaders {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)

	for _, scheme := range schemes {
		lc := c.Loaders[scheme]
		timeout, err := parseDuration(lc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("loader %s: %w", scheme, err)
		}
		loader, err := fragments.NewCommandLoader(scheme, fragments.CommandSpec{
			Command:    lc.Command,
			Args:       lc.Args,
			WorkingDir: lc.WorkingDir,
			Timeout:    timeout,
		})
		if err != nil {
			return nil, err
		}
		if err := registry.Register(scheme, loader); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// DownloadTimeoutDuration returns the parsed PDF download timeout
func (c *Config) DownloadTimeoutDuration() time.Duration {
	d, _ := parseDuration(c.Bridge.DownloadTimeout)
	return d
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
