package vision

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini is the alternate provider behind the same Client boundary. The SDK
// client is created per request because it is bound to the request context.
type Gemini struct {
	apiKey string
	model  string
}

func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{apiKey: apiKey, model: model}
}

func (g *Gemini) Name() string     { return "gemini" }
func (g *Gemini) Model() string    { return g.model }
func (g *Gemini) Configured() bool { return g.apiKey != "" }

func (g *Gemini) Complete(ctx context.Context, img Image) (string, error) {
	if !g.Configured() {
		return "", fmt.Errorf("gemini: credentials not configured")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(strings.TrimSpace(g.model))
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:     ptrFloat32(0.1),
		MaxOutputTokens: ptrInt32(1000),
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := m.GenerateContent(ctx,
		genai.Text(userPrompt),
		&genai.Blob{MIMEType: img.ContentType, Data: img.Data},
	)
	if err != nil {
		return "", err
	}

	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini: unexpected response format: no text candidates")
	}
	return text, nil
}

func (g *Gemini) DebugInfo() map[string]interface{} {
	return map[string]interface{}{
		"gemini_api_key_set":    g.apiKey != "",
		"gemini_api_key_length": len(g.apiKey),
		"gemini_model":          g.model,
	}
}

func firstText(resp *genai.GenerateContentResponse) string {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok && string(t) != "" {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
func ptrInt32(v int32) *int32       { return &v }
