package stt

import "context"

// Provider defines the interface for speech-to-text providers
type Provider interface {
	// Transcribe converts recorded media into spoken text
	Transcribe(ctx context.Context, media []byte, mimeType string) (*Result, error)

	// Name returns the name of the provider (e.g., "gemini", "whisper")
	Name() string
}
