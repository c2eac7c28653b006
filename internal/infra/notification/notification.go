package notification

import (
	"context"
	"errors"
)

//go:generate mockgen -source=notification.go -destination=../../../test/unit/doubles/infra/notification/notification_mock.go -package=notification

var ErrDeliveryFailed = errors.New("notification delivery failed")

type Email struct {
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type SMS struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type Client interface {
	SendEmail(ctx context.Context, email Email) error
	SendSMS(ctx context.Context, sms SMS) error
}
