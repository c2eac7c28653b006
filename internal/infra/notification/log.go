package notification

import (
	"context"
	"log/slog"
)

var _ Client = (*LogClient)(nil)

// LogClient only logs. It stands in when no gateway is configured.
type LogClient struct{}

func NewLogClient() *LogClient {
	return &LogClient{}
}

func (LogClient) SendEmail(_ context.Context, email Email) error {
	slog.Info("email notification",
		slog.String("to", email.To),
		slog.String("subject", email.Subject))
	return nil
}

func (LogClient) SendSMS(_ context.Context, sms SMS) error {
	slog.Info("sms notification",
		slog.String("to", sms.To),
		slog.String("message", sms.Message))
	return nil
}
