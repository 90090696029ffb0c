package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"go-coin-analyzer/internal/logger"
)

const azureAPIVersion = "2024-02-15-preview"

// AzureOpenAI calls a chat-completions deployment on Azure OpenAI with the
// coin image inlined as a base64 data URL.
type AzureOpenAI struct {
	apiKey     string
	endpoint   string
	deployment string
	httpc      *http.Client
}

// NewAzureOpenAI creates a client for the given deployment. Credentials may
// be empty; Configured reports that and Complete refuses to send.
func NewAzureOpenAI(apiKey, endpoint, deployment string) *AzureOpenAI {
	return &AzureOpenAI{
		apiKey:     apiKey,
		endpoint:   strings.TrimRight(endpoint, "/"),
		deployment: deployment,
		// The request deadline comes from the caller's context, so the
		// client itself carries no timeout.
		httpc: &http.Client{},
	}
}

func (c *AzureOpenAI) Name() string  { return "azure_openai" }
func (c *AzureOpenAI) Model() string { return c.deployment }

func (c *AzureOpenAI) Configured() bool {
	return c.apiKey != "" && c.endpoint != ""
}

func (c *AzureOpenAI) requestURL() string {
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, azureAPIVersion)
}

type chatMessage struct {
	Role string `json:"role"`
	// Content is a plain string for the system turn and a part list for the
	// user turn, so it stays untyped.
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *AzureOpenAI) Complete(ctx context.Context, img Image) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("azure openai: credentials not configured")
	}

	dataURL := "data:" + img.ContentType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)

	payload, err := json.Marshal(chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: userPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
			}},
		},
		MaxTokens:   1000,
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("azure openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("azure openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Azure-OpenAI-Image-Encoding", "base64")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		// The raw upstream body is logged but never surfaced to the caller.
		logger.WithFields(logrus.Fields{
			"status":     resp.StatusCode,
			"deployment": c.deployment,
			"body":       strings.TrimSpace(string(body)),
		}).Error("Azure OpenAI returned non-success status")
		return "", fmt.Errorf("azure openai: status %d", resp.StatusCode)
	}

	var envelope chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("azure openai: decode response: %w", err)
	}
	if len(envelope.Choices) == 0 {
		return "", fmt.Errorf("azure openai: unexpected response format: no choices")
	}
	return envelope.Choices[0].Message.Content, nil
}

func (c *AzureOpenAI) DebugInfo() map[string]interface{} {
	return map[string]interface{}{
		"azure_openai_api_key_set":     c.apiKey != "",
		"azure_openai_api_key_length":  len(c.apiKey),
		"azure_openai_endpoint_set":    c.endpoint != "",
		"azure_openai_endpoint":        c.endpoint,
		"azure_openai_deployment_name": c.deployment,
		"api_url":                      c.requestURL(),
	}
}
