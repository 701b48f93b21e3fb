package factory

import (
	"agentic-ai-be/internal/config"
	"agentic-ai-be/pkg/llm"
	"agentic-ai-be/pkg/llm/gateway"
)

// NewLLMProvider builds the gateway client from configuration. A missing
// credential is not an error here: the orchestrators check for it per
// request so the server still boots and serves non-AI endpoints.
func NewLLMProvider(cfg config.LlmConfig) llm.LLMProvider {
	return gateway.NewGatewayProvider(
		cfg.ApiKey,
		cfg.GatewayBaseURL,
		cfg.DefaultProvider,
		cfg.DefaultModel,
	)
}
