package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pmtrec/portofolio/config"
	"github.com/pmtrec/portofolio/errs"
)

const (
	defaultMistralBaseURL = "https://api.mistral.ai/v1"
	defaultMistralModel   = "mistral-small"

	// Kept small for fast answers; the assistant is meant for short replies.
	completionMaxTokens   = 300
	completionTemperature = 0.7
)

// Message is one role-tagged entry of a chat completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompleter is the remote chat-completion collaborator.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type mistralClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewMistralClient builds a client for the Mistral chat-completions endpoint.
// MISTRAL_API_KEY must be set; base URL and model have defaults.
func NewMistralClient(cfg map[string]string) ChatCompleter {
	return &mistralClient{
		baseURL: config.GetString(cfg, "MISTRAL_BASE_URL", defaultMistralBaseURL),
		apiKey:  config.GetString(cfg, "MISTRAL_API_KEY", ""),
		model:   config.GetString(cfg, "MISTRAL_MODEL", defaultMistralModel),
		client:  &http.Client{},
	}
}

func (c *mistralClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", errs.NewConfigError("MISTRAL_API_KEY")
	}

	reqBody := chatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	}
	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call chat api: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat api response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat api returned non-200 status: %s, body: %s", resp.Status, string(bodyBytes))
	}

	var completion chatResponse
	if err := json.Unmarshal(bodyBytes, &completion); err != nil {
		return "", fmt.Errorf("failed to decode chat api response: %w", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", errs.ErrEmptyCompletion
	}
	return completion.Choices[0].Message.Content, nil
}
