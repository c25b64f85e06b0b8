package aigateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/agron-app/agron/internal/config"
)

// Upstream failure classes the caller may want to distinguish.
var (
	// ErrRateLimited maps the gateway's 429 response.
	ErrRateLimited = errors.New("ai gateway rate limited")
	// ErrPaymentRequired maps the gateway's 402 quota/billing response.
	ErrPaymentRequired = errors.New("ai gateway quota exhausted")
)

// Message is one chat-completions turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client exposes the chat completion operation against an OpenAI-compatible
// gateway.
type Client interface {
	CreateChatCompletion(ctx context.Context, messages []Message) (string, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	model      string
	maxTokens  int
}

// NewClient builds a gateway client using the provided configuration.
func NewClient(cfg config.AssistantConfig) *APIClient {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
	}
}

type completionRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateChatCompletion sends the full conversation and returns the model's
// reply text.
func (c *APIClient) CreateChatCompletion(ctx context.Context, messages []Message) (string, error) {
	result := new(completionResponse)
	errBody := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(completionRequest{
			Model:     c.model,
			Messages:  messages,
			MaxTokens: c.maxTokens,
		}).
		SetResult(result).
		SetError(errBody).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("ai gateway call: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusTooManyRequests:
		return "", ErrRateLimited
	case resp.StatusCode() == http.StatusPaymentRequired:
		return "", ErrPaymentRequired
	case resp.StatusCode() >= http.StatusBadRequest:
		return "", fmt.Errorf("ai gateway error: status=%d message=%s", resp.StatusCode(), errBody.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", errors.New("empty response from ai gateway")
	}

	return result.Choices[0].Message.Content, nil
}
