package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

var _ Client = (*GatewayClient)(nil)

type GatewayConfig struct {
	URL       string
	APIKey    string
	FromEmail string
	Timeout   time.Duration
	Retries   int
}

// GatewayClient talks to an HTTP messaging gateway exposing POST /v1/email
// and POST /v1/sms.
type GatewayClient struct {
	client    *resty.Client
	fromEmail string
}

func NewGatewayClient(cfg GatewayConfig) *GatewayClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Content-Type", "application/json")

	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &GatewayClient{client: client, fromEmail: cfg.FromEmail}
}

func (c *GatewayClient) SendEmail(ctx context.Context, email Email) error {
	if email.From == "" {
		email.From = c.fromEmail
	}

	return c.post(ctx, "/v1/email", email.To, email)
}

func (c *GatewayClient) SendSMS(ctx context.Context, sms SMS) error {
	return c.post(ctx, "/v1/sms", sms.To, sms)
}

func (c *GatewayClient) post(ctx context.Context, path, recipient string, body any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("%w: calling %s: %w", ErrDeliveryFailed, path, err)
	}

	if resp.IsError() {
		return fmt.Errorf("%w: %s answered %d", ErrDeliveryFailed, path, resp.StatusCode())
	}

	slog.Debug("notification sent", slog.String("path", path), slog.String("to", recipient))
	return nil
}
