package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"health-assistant-api/internal/model"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Config holds the chat-completion client configuration. Model, MaxTokens
// and Temperature are fixed deployment settings, not user-tunable.
type Config struct {
	APIKey      string  `envconfig:"API_KEY"`
	BaseURL     string  `envconfig:"BASE_URL"`
	Model       string  `envconfig:"MODEL" default:"gpt-4o-mini"`
	MaxTokens   int     `envconfig:"MAX_TOKENS" default:"200"`
	Temperature float64 `envconfig:"TEMPERATURE" default:"0.5"`
	Timeout     time.Duration
}

type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 200
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type chatCompletionRequest struct {
	Model       string           `json:"model"`
	Messages    []model.ChatTurn `json:"messages"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateChatCompletion sends the ordered turn list to the chat-completion
// API and returns the single reply text. Every failure comes back as an
// *Error with a classified Kind; the credential is checked at call time so
// a missing key surfaces as a configuration error, not a crash.
func (c *Client) CreateChatCompletion(ctx context.Context, turns []model.ChatTurn) (string, error) {
	if c.cfg.APIKey == "" {
		return "", &Error{Kind: KindConfig, Message: "API key not configured"}
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    turns,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", &Error{Kind: KindUnexpected, Message: "failed to encode request", Err: err}
	}

	reqURL := c.cfg.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Kind: KindUnexpected, Message: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", &Error{Kind: KindTimeout, Message: "request timed out", Err: err}
		}
		return "", &Error{Kind: KindService, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindService, Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, respBody)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", &Error{Kind: KindUnexpected, Message: "failed to decode response", Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &Error{Kind: KindUnexpected, Message: "response contained no choices"}
	}

	return completion.Choices[0].Message.Content, nil
}

func classifyStatus(status int, body []byte) *Error {
	msg := apiErrorMessage(body)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{Kind: KindAuth, Message: msg}
	case status == http.StatusTooManyRequests:
		return &Error{Kind: KindQuota, Message: msg}
	case status >= 500:
		return &Error{Kind: KindService, Message: msg}
	default:
		return &Error{Kind: KindService, Message: fmt.Sprintf("HTTP %d: %s", status, msg)}
	}
}

func apiErrorMessage(body []byte) string {
	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != nil {
		return parsed.Error.Message
	}
	return string(body)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
