package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"agentic-ai-be/pkg/llm"
)

// GatewayProvider talks to a unified multi-provider LLM gateway that routes
// one credential to OpenAI, Anthropic and Gemini models. The gateway speaks
// the OpenAI chat-completions wire format with the target provider carried
// alongside the model name.
type GatewayProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client

	defaultProvider string
	defaultModel    string
}

var _ llm.LLMProvider = &GatewayProvider{}

func NewGatewayProvider(apiKey, baseURL, defaultProvider, defaultModel string) *GatewayProvider {
	return &GatewayProvider{
		apiKey:          apiKey,
		baseURL:         baseURL,
		defaultProvider: defaultProvider,
		defaultModel:    defaultModel,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type gatewayChatRequest struct {
	Provider       string        `json:"provider"`
	Model          string        `json:"model"`
	ConversationId string        `json:"conversation_id,omitempty"`
	Messages       []llm.Message `json:"messages"`
	MaxTokens      int           `json:"max_tokens,omitempty"`
	Temperature    float64       `json:"temperature,omitempty"`
	Stream         bool          `json:"stream"`
}

type gatewayChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// --- Interface Implementation ---

func (p *GatewayProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := &llm.Options{
		Provider:    p.defaultProvider,
		Model:       p.defaultModel,
		Temperature: 0.7,
	}
	for _, o := range options {
		o(opts)
	}

	reqPayload := gatewayChatRequest{
		Provider:       opts.Provider,
		Model:          opts.Model,
		ConversationId: opts.ConversationId,
		Messages:       history,
		MaxTokens:      opts.MaxTokens,
		Temperature:    opts.Temperature,
		Stream:         false,
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := p.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var gatewayResp gatewayChatResponse
	if err := json.Unmarshal(bodyBytes, &gatewayResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if gatewayResp.Error != nil {
		return "", fmt.Errorf("gateway returned error: %s", gatewayResp.Error.Message)
	}

	if len(gatewayResp.Choices) == 0 {
		return "", fmt.Errorf("empty choices from gateway")
	}

	return gatewayResp.Choices[0].Message.Content, nil
}

func (p *GatewayProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	// Reuse Chat for simplicity as most new LLMs are chat-optimized
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}
