// Package llm talks to an OpenAI-compatible chat and embedding endpoint
// (Gemini's compatibility layer by default).
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"estimate_agent/internal/config"
	"estimate_agent/internal/infrastructure/metrics"
	"estimate_agent/internal/usecase/interfaces"
	"estimate_agent/pkg/logger"

	"github.com/cenkalti/backoff/v4"
	"github.com/sashabaranov/go-openai"
)

const (
	opEmbed    = "embed"
	opComplete = "complete"
)

var (
	ErrEmptyCompletion = errors.New("llm returned no choices")
	ErrEmbeddingCount  = errors.New("llm returned an unexpected number of embeddings")
)

// RetryConfig holds retry configuration for provider calls.
type RetryConfig struct {
	MaxAttempts int
	BackoffBase time.Duration
	MaxBackoff  time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BackoffBase: 500 * time.Millisecond,
		MaxBackoff:  10 * time.Second,
	}
}

type Client struct {
	api            *openai.Client
	chatModel      string
	embeddingModel string
	dimension      int
	retry          RetryConfig
	metrics        *metrics.Metrics
	httpClient     *http.Client
}

var _ interfaces.ILLMClient = (*Client)(nil)

type ClientOption func(*Client)

func WithRetryConfig(cfg RetryConfig) ClientOption {
	return func(c *Client) { c.retry = cfg }
}

func WithMetrics(m *metrics.Metrics) ClientOption {
	return func(c *Client) { c.metrics = m }
}

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a client from config. BaseURL may carry a trailing slash.
func NewClient(cfg config.LLMConfig, opts ...ClientOption) *Client {
	c := &Client{
		chatModel:      cfg.ChatModel,
		embeddingModel: cfg.EmbeddingModel,
		dimension:      cfg.EmbeddingDimension,
		retry:          DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if c.httpClient != nil {
		oc.HTTPClient = c.httpClient
	}
	c.api = openai.NewClientWithConfig(oc)
	return c
}

// Embed returns one vector per text, in input order.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	var vectors [][]float32
	err := c.observe(ctx, opEmbed, func() error {
		resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Input:      texts,
			Model:      openai.EmbeddingModel(c.embeddingModel),
			Dimensions: c.dimension,
		})
		if err != nil {
			return err
		}
		if len(resp.Data) != len(texts) {
			return backoff.Permanent(fmt.Errorf("%w: got %d, want %d", ErrEmbeddingCount, len(resp.Data), len(texts)))
		}

		data := resp.Data
		sort.SliceStable(data, func(i, j int) bool { return data[i].Index < data[j].Index })
		vectors = make([][]float32, 0, len(data))
		for _, d := range data {
			vectors = append(vectors, d.Embedding)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vectors, nil
}

// Complete sends a system instruction plus one user message and returns the
// first choice.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if strings.TrimSpace(system) != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})

	var answer string
	err := c.observe(ctx, opComplete, func() error {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    c.chatModel,
			Messages: messages,
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return backoff.Permanent(ErrEmptyCompletion)
		}
		answer = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}
	return answer, nil
}

// observe runs call with retries and records the outcome.
func (c *Client) observe(ctx context.Context, operation string, call func() error) error {
	start := time.Now()
	err := c.withRetry(ctx, operation, call)
	if c.metrics != nil {
		c.metrics.LLMRequests.WithLabelValues(operation, metrics.Outcome(err)).Inc()
		c.metrics.LLMDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return fmt.Errorf("llm %s: %w", operation, err)
	}
	return nil
}

func (c *Client) withRetry(ctx context.Context, operation string, call func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = c.retry.BackoffBase
	eb.MaxInterval = c.retry.MaxBackoff
	eb.MaxElapsedTime = 0

	attempts := c.retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(attempts-1)), ctx)

	op := func() error {
		err := call()
		if err != nil && !IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		logger.Debug(ctx, "llm request failed, retrying", "operation", operation, "backoff", wait, "error", err)
	}
	return backoff.RetryNotify(op, policy, notify)
}

// IsTransient reports whether a provider error is worth retrying: rate limits,
// 5xx responses and transport failures.
func IsTransient(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return transientStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return transientStatus(reqErr.HTTPStatusCode)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return false
	}
	// network errors surface without a status code
	return true
}

func transientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError || code == 0
}
