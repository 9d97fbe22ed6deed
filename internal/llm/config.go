// Package llm wraps the Gemini API behind a small client interface with
// tiered model selection, so generation code picks a capability level
// rather than a model name.
package llm

import "os"

// ModelTier selects a capability level for a generation call.
type ModelTier string

const (
	// TierLite covers cheap transformations such as bullet rewrites.
	TierLite ModelTier = "lite"
	// TierStandard covers cover letter generation.
	TierStandard ModelTier = "standard"
	// TierAdvanced covers full resume generation.
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies an LLM backend.
type Provider string

// ProviderGemini is the only backend currently wired.
const ProviderGemini Provider = "gemini"

// Config maps tiers to concrete model names for one provider.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the Gemini configuration. Each tier's model can be
// overridden with GEMINI_MODEL_LITE, GEMINI_MODEL_STANDARD, or
// GEMINI_MODEL_ADVANCED.
func DefaultConfig() *Config {
	models := map[ModelTier]string{
		TierLite:     "gemini-2.5-flash-lite",
		TierStandard: "gemini-2.5-flash",
		TierAdvanced: "gemini-2.5-pro",
	}
	overrides := map[ModelTier]string{
		TierLite:     os.Getenv("GEMINI_MODEL_LITE"),
		TierStandard: os.Getenv("GEMINI_MODEL_STANDARD"),
		TierAdvanced: os.Getenv("GEMINI_MODEL_ADVANCED"),
	}
	for tier, model := range overrides {
		if model != "" {
			models[tier] = model
		}
	}
	return &Config{Provider: ProviderGemini, Models: models}
}

// GetModel resolves the model for a tier, degrading to standard and then
// lite when the requested tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of the config with one tier's model replaced.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models))
	for t, m := range c.Models {
		models[t] = m
	}
	models[tier] = model
	return &Config{Provider: c.Provider, Models: models}
}
