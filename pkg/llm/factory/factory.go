package factory

import (
	"fmt"

	"alpacapc-be/pkg/llm"
	"alpacapc-be/pkg/llm/gemini"
	"alpacapc-be/pkg/llm/ollama"
)

func NewProvider(providerType, modelName, baseURL, geminiKey string) (llm.Provider, error) {
	switch providerType {
	case "gemini":
		if geminiKey == "" {
			return nil, fmt.Errorf("gemini provider requires GOOGLE_GEMINI_API_KEY")
		}
		return gemini.NewGeminiProvider(geminiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
