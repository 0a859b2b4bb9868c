package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCompletionDirectJSON(t *testing.T) {
	cv, err := DecodeCompletion(`{"name": "Alice"}`)

	require.NoError(t, err)
	assert.Equal(t, "Alice", cv["name"])
}

func TestDecodeCompletionJSONFencedBlock(t *testing.T) {
	cv, err := DecodeCompletion("```json\n{\"name\": \"Alice\"}\n```")

	require.NoError(t, err)
	assert.Equal(t, "Alice", cv["name"])
}

func TestDecodeCompletionGenericFencedBlock(t *testing.T) {
	cv, err := DecodeCompletion("```\n{\"name\": \"Alice\"}\n```")

	require.NoError(t, err)
	assert.Equal(t, "Alice", cv["name"])
}

func TestDecodeCompletionGreedyBraces(t *testing.T) {
	cv, err := DecodeCompletion(`Sure, here: {"name": "Bob"}`)

	require.NoError(t, err)
	assert.Equal(t, "Bob", cv["name"])
}

func TestDecodeCompletionFencedBlockWithSurroundingText(t *testing.T) {
	raw := "Here is the extracted CV:\n```json\n{\"name\": \"Carol\", \"skills\": [\"Go\"]}\n```\nLet me know if you need anything else."
	cv, err := DecodeCompletion(raw)

	require.NoError(t, err)
	assert.Equal(t, "Carol", cv["name"])
	assert.Equal(t, []any{"Go"}, cv["skills"])
}

func TestDecodeCompletionNestedStructure(t *testing.T) {
	cv, err := DecodeCompletion(`{"contact": {"email": "a@b.c"}, "years": 5}`)

	require.NoError(t, err)
	contact, ok := cv["contact"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@b.c", contact["email"])
	assert.Equal(t, float64(5), cv["years"])
}

func TestDecodeCompletionNoJSON(t *testing.T) {
	cv, err := DecodeCompletion("I could not find any structured information in this document.")

	require.Error(t, err)
	assert.Nil(t, cv)
	assert.Contains(t, err.Error(), "failed to parse LLM response as JSON")
}

func TestDecodeCompletionEmptyInput(t *testing.T) {
	_, err := DecodeCompletion("")

	require.Error(t, err)
}

func TestBuildCVParserPromptContainsText(t *testing.T) {
	prompt := BuildCVParserPrompt("Jane Doe, Software Engineer")

	assert.Contains(t, prompt, "Jane Doe, Software Engineer")
	assert.Contains(t, prompt, "ONLY valid JSON")
}
