// Package llm talks to chat-completion providers and retries failed calls.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Role tags a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged chat message.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage returns a system message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage returns a user message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// ChatCompleter issues a single chat completion and returns the text of
// the first choice.
type ChatCompleter interface {
	Chat(ctx context.Context, model string, messages []Message) (string, error)
}

// Request limits shared by all providers.
const (
	maxTokens   = 4000
	temperature = 0.8
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ProviderConfig selects and configures a provider.
type ProviderConfig struct {
	Provider     string
	OpenAIKey    string
	OpenAIBase   string
	AnthropicKey string
}

// NewCompleter builds the ChatCompleter named by cfg.Provider.
func NewCompleter(cfg ProviderConfig) (ChatCompleter, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI, "":
		return NewOpenAIClient(OpenAIConfig{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.OpenAIBase,
		}), nil
	case ProviderAnthropic:
		return NewAnthropicClient(AnthropicConfig{
			APIKey: cfg.AnthropicKey,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
