package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/taskdeck/taskdeck/internal/config"
)

// ChatMessage is one transcript entry in the upstream wire format.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body POSTed to the inference endpoint.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// ChatResponse is the non-streaming reply shape of /api/chat.
type ChatResponse struct {
	Model     string      `json:"model"`
	CreatedAt string      `json:"created_at"`
	Message   ChatMessage `json:"message"`
	Done      bool        `json:"done"`
}

// OllamaClient is the HTTP client for the external inference endpoint.
type OllamaClient struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewOllamaClient builds the client from config. A zero timeout means no
// client-side deadline: a hung upstream blocks only its own request.
func NewOllamaClient(cfg *config.Config, log *zap.Logger) *OllamaClient {
	return &OllamaClient{
		BaseURL: cfg.Ollama.BaseURL,
		Model:   cfg.Ollama.Model,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Ollama.TimeoutSec) * time.Second,
		},
		Logger: log,
	}
}

// Chat forwards an ordered message history and returns the parsed reply
// plus the raw response body. The call is synchronous; there is no
// cancellation beyond ctx.
func (c *OllamaClient) Chat(ctx context.Context, messages []ChatMessage, stream bool) (*ChatResponse, []byte, error) {
	endpoint := fmt.Sprintf("%s/api/chat", c.BaseURL)

	body, err := sonic.Marshal(ChatRequest{
		Model:    c.Model,
		Messages: messages,
		Stream:   stream,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Logger.Error("chat request failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, respBody, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// An unparseable 2xx body is not a failure: the caller substitutes a
	// placeholder reply instead of dropping the request.
	var result ChatResponse
	if err := sonic.Unmarshal(respBody, &result); err != nil {
		c.Logger.Warn("chat response not parseable", zap.Error(err))
		return &ChatResponse{}, respBody, nil
	}

	return &result, respBody, nil
}
