package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"green-link/internal/infra/async"
	"green-link/internal/infra/notification"
	"green-link/internal/infra/utils"
	inventoryDomain "green-link/internal/inventory/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type LowStockAlertConfig struct {
	AlertEmail string
	Threshold  int
}

func NewLowStockAlertWorker(
	broker async.InternalBroker,
	client notification.Client,
	config LowStockAlertConfig,
) (*LowStockAlertWorker, error) {
	if config.Threshold <= 0 {
		config.Threshold = inventoryDomain.DefaultLowStockThreshold
	}
	if config.AlertEmail != "" {
		if err := utils.ValidateEmail(config.AlertEmail); err != nil {
			return nil, fmt.Errorf("alert recipient: %w", err)
		}
	}

	counter, err := otel.Meter("green_link").Int64Counter(
		"green_link.low_stock_alerts.total",
		metric.WithDescription("Low stock alerts handled, by status"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating low stock counter: %w", err)
	}

	return &LowStockAlertWorker{
		broker:  broker,
		client:  client,
		config:  config,
		counter: counter,
	}, nil
}

var _ async.Worker = (*LowStockAlertWorker)(nil)

// LowStockAlertWorker emails the farm owner whenever an item drops below the
// stock threshold.
type LowStockAlertWorker struct {
	broker  async.InternalBroker
	client  notification.Client
	config  LowStockAlertConfig
	counter metric.Int64Counter
}

func (w *LowStockAlertWorker) Run(ctx context.Context, done func()) {
	defer done()

	subscription, err := w.broker.Subscribe(InventoryTopic)
	if err != nil {
		slog.Error("subscribing to inventory topic", slog.String("error", err.Error()))
		return
	}
	defer w.broker.Unsubscribe(InventoryTopic, subscription)

	slog.Info("low stock alert worker started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("low stock alert worker cancelled")
			return
		case msg, ok := <-subscription.Receiver:
			if !ok {
				slog.Info("inventory topic closed")
				return
			}
			w.handle(ctx, msg)
		}
	}
}

func (w *LowStockAlertWorker) handle(ctx context.Context, msg async.BrokerMessage) {
	if msg.Event != StockLowEvent {
		return
	}

	item, ok := msg.Value.(inventoryDomain.Item)
	if !ok {
		slog.Warn("unexpected low stock payload", slog.String("type", fmt.Sprintf("%T", msg.Value)))
		return
	}

	if err := w.Alert(ctx, item); err != nil {
		slog.Error("sending low stock alert", slog.String("item_id", item.ItemID), slog.String("error", err.Error()))
	}
}

// Alert sends the low stock email for item. Without a recipient it only
// records the alert.
func (w *LowStockAlertWorker) Alert(ctx context.Context, item inventoryDomain.Item) error {
	if w.config.AlertEmail == "" {
		slog.Warn("low stock alert without recipient", slog.String("item_id", item.ItemID))
		w.record(ctx, "skipped")
		return nil
	}

	err := w.client.SendEmail(ctx, notification.Email{
		To:      w.config.AlertEmail,
		Subject: fmt.Sprintf("Low stock: %s", item.ItemName),
		Body: fmt.Sprintf("%s (%s, item %s) is down to %d units, below the threshold of %d.",
			item.ItemName, item.ItemBrand, item.ItemID, item.StockCount, w.config.Threshold),
	})
	if err != nil {
		w.record(ctx, "failed")
		return fmt.Errorf("emailing low stock alert: %w", err)
	}

	w.record(ctx, "sent")
	return nil
}

func (w *LowStockAlertWorker) record(ctx context.Context, status string) {
	w.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

func (w *LowStockAlertWorker) Shutdown() {
	slog.Info("low stock alert worker shutdown")
}
