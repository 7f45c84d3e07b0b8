package llm

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageParams(t *testing.T) {
	params := messageParams("claude-sonnet-4-20250514", []Message{
		SystemMessage("be terse"),
		UserMessage("generate"),
		UserMessage("also this"),
	})

	assert.Equal(t, anthropic.Model("claude-sonnet-4-20250514"), params.Model)
	assert.Equal(t, int64(4000), params.MaxTokens)

	require.Len(t, params.System, 1)
	assert.Equal(t, "be terse", params.System[0].Text)

	require.Len(t, params.Messages, 1)
	assert.Equal(t, anthropic.MessageParamRoleUser, params.Messages[0].Role)
	require.Len(t, params.Messages[0].Content, 2)
	assert.Equal(t, "generate", params.Messages[0].Content[0].OfText.Text)
	assert.Equal(t, "also this", params.Messages[0].Content[1].OfText.Text)
}

func TestMessageParams_AssistantSplitsTurns(t *testing.T) {
	params := messageParams("m", []Message{
		UserMessage("a"),
		{Role: RoleAssistant, Content: "b"},
		UserMessage("c"),
	})

	require.Len(t, params.Messages, 3)
	assert.Equal(t, anthropic.MessageParamRoleAssistant, params.Messages[1].Role)
	assert.Empty(t, params.System)
}
