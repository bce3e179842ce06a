package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"portal/backend/internal/service/ai"
)

func TestGetRollUpPrompt_OutputContract(t *testing.T) {
	prompt := ai.GetRollUpPrompt()
	require.Contains(t, prompt, "\"subjects\"")
	require.Contains(t, prompt, "\"themes\"")
	require.Contains(t, prompt, "NEVER invent facts")
	require.Contains(t, prompt, "summary_md")
}

func TestGetRollUpUserPrompt_WrapsCorpus(t *testing.T) {
	prompt := ai.GetRollUpUserPrompt("2025-08-18", "2025-08-24", false, "User: A (#1)")
	require.Contains(t, prompt, "2025-08-18 to 2025-08-24")
	require.Contains(t, prompt, "=== DATA START ===")
	require.Contains(t, prompt, "User: A (#1)")
	require.Contains(t, prompt, "=== DATA END ===")
	require.NotContains(t, prompt, "themes")
}

func TestGetRollUpUserPrompt_ThemesRequested(t *testing.T) {
	prompt := ai.GetRollUpUserPrompt("2025-08-18", "2025-08-24", true, "")
	require.Contains(t, prompt, "3-7 short cross-cutting team themes")
}

func TestRollUpSchema(t *testing.T) {
	schema := ai.RollUpSchema()
	require.Equal(t, "weekly_roll_up", schema.Name)
	require.Equal(t, []string{"subjects"}, schema.Schema["required"])
}

func TestNewProvider_Validation(t *testing.T) {
	_, err := ai.NewProvider(ai.Config{Provider: ai.ProviderOpenAI, Model: "gpt-4o"})
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)

	_, err = ai.NewProvider(ai.Config{Provider: ai.ProviderOpenAI, APIKey: "k"})
	require.ErrorIs(t, err, ai.ErrMissingModel)

	_, err = ai.NewProvider(ai.Config{Provider: ai.ProviderCompatible, APIKey: "k", Model: "m"})
	require.ErrorIs(t, err, ai.ErrMissingBaseURL)

	_, err = ai.NewProvider(ai.Config{Provider: "bogus", APIKey: "k", Model: "m"})
	require.ErrorIs(t, err, ai.ErrInvalidProvider)
}

func TestAnthropicProvider_StructuredUnsupported(t *testing.T) {
	provider, err := ai.NewAnthropicProvider("key", "", "claude-sonnet-4-5")
	require.NoError(t, err)
	require.Equal(t, ai.ProviderAnthropic, provider.Name())

	_, err = provider.CompleteStructured(t.Context(), "", "", ai.RollUpSchema())
	require.ErrorIs(t, err, ai.ErrStructuredUnsupported)
}

func TestOpenAIProvider_Name(t *testing.T) {
	provider, err := ai.NewOpenAIProvider("key", "", "gpt-4o")
	require.NoError(t, err)
	require.Equal(t, ai.ProviderOpenAI, provider.Name())
}
