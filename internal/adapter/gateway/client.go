// Package gateway talks to the OpenAI-compatible chat-completion gateway.
package gateway

import (
	"context"
	"errors"
	"net/http"

	"med-estudia/internal/config"
	"med-estudia/internal/domain"
	"med-estudia/internal/logger"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Temperature is fixed for every call.
const Temperature float32 = 0.7

// Client implements domain.ChatGateway.
type Client struct {
	client *openai.Client
	model  string
	hasKey bool
}

// NewClient builds a client from cfg. A missing API key is not an error
// here; Complete fails with a configuration error before any network call.
// httpClient may be nil.
func NewClient(cfg config.GatewayConfig, httpClient *http.Client) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	clientConfig.HTTPClient = httpClient

	model := cfg.Model
	if model == "" {
		model = config.DefaultGatewayModel
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		hasKey: cfg.APIKey != "",
	}
}

func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (*domain.ProviderResponse, error) {
	l := logger.Get()

	if !c.hasKey {
		l.Error("AI gateway API key is not configured")
		return nil, domain.NewConfigurationError(domain.MsgMissingCredential)
	}

	l.Debug("Calling AI gateway", zap.String("model", c.model))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: Temperature,
	})
	if err != nil {
		classified := classify(err)
		l.Error("AI gateway error",
			zap.String("code", string(classified.Code)),
			zap.Any("status", classified.Context["status"]),
			zap.Any("body", classified.Context["body"]),
			zap.Error(err))
		return nil, classified
	}

	out := &domain.ProviderResponse{
		ID:      resp.ID,
		Model:   resp.Model,
		Choices: make([]domain.ProviderChoice, 0, len(resp.Choices)),
	}
	for _, choice := range resp.Choices {
		out.Choices = append(out.Choices, domain.ProviderChoice{
			Content:      choice.Message.Content,
			FinishReason: string(choice.FinishReason),
		})
	}

	l.Debug("AI gateway response received", zap.String("id", out.ID), zap.Int("choices", len(out.Choices)))
	return out, nil
}

// classify maps a go-openai error onto the gateway error taxonomy. Context
// errors and transport failures carry status 0.
func classify(err error) *domain.DomainError {
	status, body := 0, ""

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status, body = apiErr.HTTPStatusCode, apiErr.Message
	case errors.As(err, &reqErr):
		status, body = reqErr.HTTPStatusCode, reqErr.Error()
	}

	switch status {
	case http.StatusTooManyRequests:
		return domain.NewRateLimitedError(err).WithContext("status", status).WithContext("body", body)
	case http.StatusPaymentRequired:
		return domain.NewPaymentRequiredError(err).WithContext("status", status).WithContext("body", body)
	default:
		return domain.NewUpstreamError(status, body, err)
	}
}

// Status returns the upstream HTTP status attached to a gateway error, or 0.
func Status(err error) int {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		return 0
	}
	status, _ := domainErr.Context["status"].(int)
	return status
}
