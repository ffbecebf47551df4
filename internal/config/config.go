// Package config provides configuration loading and validation for the
// service. Values come from an optional JSON config file, environment
// variables, and defaults, in that order of precedence from lowest to
// highest for env, with CLI flags overriding both.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Defaults applied when neither file, env, nor flags provide a value.
const (
	DefaultPort        = 3000
	DefaultOutputDir   = "out"
	DefaultTemplateDir = "templates"
	DefaultFontPath    = "fonts/NotoSans-Regular.ttf"
)

// Config holds the service configuration.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // Model name override
	OutputDir   string `json:"output_dir,omitempty"`   // Root for generated documents and metadata
	TemplateDir string `json:"template_dir,omitempty"` // Directory holding organizational templates
	FontPath    string `json:"font,omitempty"`         // Unicode TTF for PDF rendering
	BaseURL     string `json:"base_url,omitempty"`     // Base for absolute download links
}

// Load builds the effective configuration from an optional JSON file and the
// environment. path may be empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile loads configuration from a JSON file.
func loadFile(path string) (*Config, error) {
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

// applyEnv overrides file values with environment variables when set.
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("REQDOC_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("REQDOC_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("REQDOC_TEMPLATE_DIR"); v != "" {
		c.TemplateDir = v
	}
	if v := os.Getenv("REQDOC_FONT"); v != "" {
		c.FontPath = v
	}
	if v := os.Getenv("REQDOC_BASE_URL"); v != "" {
		c.BaseURL = v
	}
}

// applyDefaults fills remaining zero values.
func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.TemplateDir == "" {
		c.TemplateDir = DefaultTemplateDir
	}
	if c.FontPath == "" {
		c.FontPath = DefaultFontPath
	}
}

// Validate checks that the configuration has usable values. The API key is
// checked by the caller that actually needs the model, so one-shot commands
// against a stub stay possible.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config error: output directory is empty")
	}
	return nil
}
