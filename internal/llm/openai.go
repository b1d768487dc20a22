package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

// openAIChat talks to any OpenAI-compatible chat endpoint, Ollama by default.
type openAIChat struct {
	cfg    config.LLMConfig
	logger logger.Logger

	once   sync.Once
	client *openai.Client
}

func newOpenAI(cfg config.LLMConfig, log logger.Logger) *openAIChat {
	return &openAIChat{cfg: cfg, logger: log}
}

func (o *openAIChat) getClient(ctx context.Context) *openai.Client {
	o.once.Do(func() {
		clientCfg := openai.DefaultConfig(o.cfg.OpenAI.APIKey)
		if o.cfg.OpenAI.BaseURL != "" {
			clientCfg.BaseURL = o.cfg.OpenAI.BaseURL
		}
		o.client = openai.NewClientWithConfig(clientCfg)
		o.logger.Info(ctx, "LLM client ready: %s model=%s", clientCfg.BaseURL, o.cfg.OpenAI.Model)
	})
	return o.client
}

func (o *openAIChat) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.cfg.OpenAI.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: o.cfg.Temperature,
		TopP:        o.cfg.TopP,
	}

	resp, err := o.getClient(ctx).CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
