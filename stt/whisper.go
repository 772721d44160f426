package stt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// WhisperProvider transcribes recordings through the OpenAI Whisper API
type WhisperProvider struct {
	client *openai.Client
}

// NewWhisperProvider creates a Whisper STT provider
func NewWhisperProvider(apiKey string) (*WhisperProvider, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is not set")
	}
	return &WhisperProvider{client: openai.NewClient(apiKey)}, nil
}

// Name returns the provider name
func (p *WhisperProvider) Name() string {
	return "whisper"
}

// Transcribe uploads the media bytes to the Whisper endpoint
func (p *WhisperProvider) Transcribe(ctx context.Context, media []byte, mimeType string) (*Result, error) {
	req := openai.AudioRequest{
		Model: openai.Whisper1,
		// Whisper infers the container format from the file name extension
		FilePath: "answer" + extensionForMimeType(mimeType),
		Reader:   bytes.NewReader(media),
	}

	resp, err := p.client.CreateTranscription(ctx, req)
	if err != nil {
		log.Printf("Whisper transcription error: %v", err)
		return nil, fmt.Errorf("whisper transcription failed: %w", err)
	}

	transcript := strings.TrimSpace(resp.Text)
	if transcript == "" {
		return nil, errors.New("whisper returned an empty transcript")
	}

	return &Result{Transcript: transcript, Provider: p.Name()}, nil
}

// extensionForMimeType maps a declared media type to a file extension
func extensionForMimeType(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "video/webm", "audio/webm":
		return ".webm"
	case "video/mp4":
		return ".mp4"
	case "audio/mp3", "audio/mpeg":
		return ".mp3"
	case "audio/wav", "audio/x-wav":
		return ".wav"
	case "audio/mp4", "audio/m4a", "audio/x-m4a":
		return ".m4a"
	case "audio/ogg":
		return ".ogg"
	default:
		return ".webm"
	}
}
