// Package ai wraps the single outbound call to an OpenAI-compatible
// chat-completion endpoint.
package ai

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/yourhome24/expose/internal/config"
)

// Fixed decoding configuration: one request, one response, no retry.
const (
	temperature = 0.7
	maxTokens   = 400
)

// Client issues chat-completion requests against a configured endpoint.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient validates the model configuration and builds a client.
// httpClient may be nil; tests inject a stubbed transport through it.
func NewClient(cfg config.ModelConfig, httpClient *http.Client) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(strings.TrimSuffix(cfg.BaseURL, "/") + "/v1/"),
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	client := openai.NewClient(opts...)
	return &Client{client: &client, model: cfg.Name}, nil
}

// Generate sends the system and user instructions and returns the first
// choice's content, trimmed. An unparseable response body degrades to an
// empty description; transport failures and non-success statuses surface
// as UpstreamError.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(system),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(user),
					},
				},
			},
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{StatusCode: apiErr.StatusCode, Detail: upstreamDetail(apiErr)}
		}
		var netErr *url.Error
		if errors.As(err, &netErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", &UpstreamError{Detail: err.Error()}
		}
		// The provider answered 2xx but the body could not be decoded.
		return "", nil
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func upstreamDetail(apiErr *openai.Error) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return apiErr.Error()
}
