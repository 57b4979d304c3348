package factory

import (
	"fmt"

	"pm-intel-be/pkg/llm"
	"pm-intel-be/pkg/llm/gemini"
	"pm-intel-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, apiKey, modelName string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewOpenAIProvider(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
