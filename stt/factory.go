package stt

import (
	"fmt"
	"log"
	"strings"

	"renthub/config"
)

// CreateProvider creates an STT provider based on the loaded configuration
func CreateProvider(cfg *config.Config) (Provider, error) {
	providerName := strings.ToLower(cfg.Transcription.Provider)

	// Default to Gemini if not specified
	if providerName == "" {
		providerName = "gemini"
		log.Printf("[STT Factory] transcription provider not set, defaulting to 'gemini'")
	}

	switch providerName {
	case "gemini":
		log.Printf("[STT Factory] Creating Gemini STT provider")
		return NewGeminiProvider(cfg.Gemini.ApiKey)
	case "whisper":
		log.Printf("[STT Factory] Creating Whisper STT provider")
		return NewWhisperProvider(cfg.Openai.ApiKey)
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s. Supported: gemini, whisper", providerName)
	}
}
