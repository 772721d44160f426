package stt

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

const geminiTranscribePrompt = `Transcribe the spoken answer in this recording word for word. ` +
	`Return only the transcript text, with normal punctuation. ` +
	`Do not add speaker labels, timestamps or commentary.`

// GeminiProvider transcribes recordings through the Gemini multimodal API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a Gemini STT provider
func NewGeminiProvider(apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is not set")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Transcribe sends the raw media bytes to Gemini and extracts the transcript
func (p *GeminiProvider) Transcribe(ctx context.Context, media []byte, mimeType string) (*Result, error) {
	model := p.client.GenerativeModel(geminiModel)

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: media},
		genai.Text(geminiTranscribePrompt),
	)
	if err != nil {
		log.Printf("Gemini transcription error: %v", err)
		return nil, fmt.Errorf("gemini transcription failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("gemini returned no transcript")
	}

	var transcript strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			transcript.WriteString(string(text))
		}
	}

	cleaned := strings.TrimSpace(transcript.String())
	if cleaned == "" {
		return nil, errors.New("gemini returned an empty transcript")
	}

	return &Result{Transcript: cleaned, Provider: p.Name()}, nil
}
