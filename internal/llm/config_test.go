package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_TierModels(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestDefaultConfig_EnvOverride(t *testing.T) {
	t.Setenv("GEMINI_MODEL_ADVANCED", "gemini-experimental")

	config := DefaultConfig()
	assert.Equal(t, "gemini-experimental", config.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
}

func TestGetModel_DegradesThroughTiers(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "only-model"},
	}

	assert.Equal(t, "only-model", config.GetModel(TierAdvanced))
	assert.Equal(t, "only-model", config.GetModel("unknown"))
}

func TestGetModel_NoModelsConfigured(t *testing.T) {
	config := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}

	assert.Equal(t, "", config.GetModel(TierAdvanced))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	config := DefaultConfig()
	custom := config.WithModel(TierAdvanced, "custom-model")

	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
	assert.Equal(t, "custom-model", custom.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-flash-lite", custom.GetModel(TierLite))
}
