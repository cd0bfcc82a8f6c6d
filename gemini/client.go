// Package gemini implements speech synthesis and summarization on top of
// the Google Gemini API.
package gemini

import (
	"context"

	"github.com/ghulammustafashad/medical"
	"google.golang.org/genai"
)

// NewClient creates a Gemini API client. baseURL overrides the API
// endpoint and is empty in production.
func NewClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, medical.Errorf(medical.EINVALID, "gemini API key required")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: baseURL,
		},
	})
}
