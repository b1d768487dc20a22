package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

type gemini struct {
	cfg    config.LLMConfig
	logger logger.Logger

	mu         sync.Mutex
	currentKey int
	clients    map[string]*genai.Client
}

func newGemini(cfg config.LLMConfig, log logger.Logger) *gemini {
	return &gemini{
		cfg:     cfg,
		logger:  log,
		clients: make(map[string]*genai.Client),
	}
}

// Generate calls Gemini, rotating API keys on 429 / quota errors.
func (g *gemini) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	genCfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
		Temperature:     genai.Ptr(g.cfg.Temperature),
		TopP:            genai.Ptr(g.cfg.TopP),
	}

	var lastErr error
	for range g.cfg.Gemini.APIKeys {
		client, err := g.client(ctx)
		if err != nil {
			lastErr = err
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.cfg.Gemini.Model, genai.Text(prompt), genCfg)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			return "", ErrEmptyResponse
		}
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// client returns the cached client for the current key, creating it on first use.
// A failed creation is not cached.
func (g *gemini) client(ctx context.Context) (*genai.Client, error) {
	key := g.cfg.Gemini.APIKeys[g.currentKey]
	if c, ok := g.clients[key]; ok {
		return c, nil
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	}
	if g.cfg.Gemini.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = g.cfg.Gemini.BaseURL
	}

	c, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	g.clients[key] = c
	return c, nil
}

func (g *gemini) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.cfg.Gemini.APIKeys)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
