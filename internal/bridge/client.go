package bridge

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// #region messages

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    Role
	Content string
}

// #endregion messages

// #region chat-client

// ChatClient abstracts the completion call so the agent can be tested
// without a live model endpoint.
type ChatClient interface {
	Complete(ctx context.Context, msgs []Message, temperature float64) (string, error)
}

// #endregion chat-client

// #region openai-client

// openAIClient talks to any OpenAI-compatible endpoint (OpenAI itself, or a
// local server such as Ollama or LM Studio).
type openAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient builds a ChatClient from the config's endpoint settings.
func NewOpenAIClient(cfg Config) ChatClient {
	return &openAIClient{
		client: openai.NewClient(
			option.WithBaseURL(cfg.BaseURL),
			option.WithAPIKey(cfg.APIKey),
		),
		model: cfg.Model,
	}
}

// Complete sends the conversation and returns the assistant text.
func (c *openAIClient) Complete(ctx context.Context, msgs []Message, temperature float64) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs)),
		Temperature: openai.Float(temperature),
	}
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// #endregion openai-client
