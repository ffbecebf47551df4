// Package llm provides the language-model client abstraction used to impose
// structure on free-text requirement notes.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Temperature is the fixed sampling temperature for structuring calls.
// Low on purpose: the output feeds renderers and version history, so
// consistency matters more than creativity.
const Temperature = 0.2

// Config holds the model configuration for the client
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
	}
}

// GetModel returns the configured model name, falling back to the default.
func (c *Config) GetModel() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel
}
