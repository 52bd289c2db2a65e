// Package config provides configuration loading and merging for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Paths
	Resume    string `json:"resume,omitempty"`    // Path to the resume YAML/JSON file
	OutputDir string `json:"output_dir,omitempty"` // Directory for rendered files
	Schema    string `json:"schema,omitempty"`    // Path overriding the embedded JSON schema
	Templates string `json:"templates,omitempty"` // Directory overriding the embedded themes

	// Rendering
	Formats []string `json:"formats,omitempty"` // Formats built when none are requested
	Theme   string   `json:"theme,omitempty"`   // Theme applied to every format

	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	PDFBackend     string `json:"pdf_backend,omitempty"`     // "direct", "chrome", or "none"
	EnhanceTimeout int    `json:"enhance_timeout,omitempty"` // Per-call LLM timeout in seconds
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed build information
}

// Load reads a configuration file. A missing path returns an error; use
// LoadOptional when the file may not exist.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// LoadOptional reads a configuration file if it exists, returning an empty
// config when it does not
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return Load(path)
}

// Validate checks field values that can be wrong independent of flags
func (c *Config) Validate() error {
	switch c.PDFBackend {
	case "", "direct", "chrome", "none":
	default:
		return fmt.Errorf("config error: 'pdf_backend' must be direct, chrome, or none (got %q)", c.PDFBackend)
	}

	if c.EnhanceTimeout < 0 {
		return fmt.Errorf("config error: 'enhance_timeout' must be non-negative")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Schema != "" {
		if _, err := os.Stat(c.Schema); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.Schema)
		}
	}
	return nil
}

// MergeWithDefaults returns a copy with empty fields filled from defaults.
// Config file values act as defaults for CLI flags; boolean flags always
// win because unset and false are indistinguishable here.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Schema == "" {
		result.Schema = defaults.Schema
	}
	if result.Templates == "" {
		result.Templates = defaults.Templates
	}
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.PDFBackend == "" {
		result.PDFBackend = defaults.PDFBackend
	}
	if len(result.Formats) == 0 {
		result.Formats = defaults.Formats
	}
	if result.EnhanceTimeout == 0 {
		result.EnhanceTimeout = defaults.EnhanceTimeout
	}

	return result
}
