package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	cropsDomain "green-link/internal/crops/domain"
	"green-link/internal/infra/async"
	"green-link/internal/infra/notification"
	"green-link/internal/infra/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	_defaultReminderSchedule = "0 7 * * *"
	_defaultDaysBefore       = 3
)

type HarvestReminderConfig struct {
	Schedule   string
	DaysBefore int
}

func NewHarvestReminderWorker(
	ticker *time.Ticker,
	repository CropRepository,
	client notification.Client,
	clock utils.Clock,
	config HarvestReminderConfig,
) (*HarvestReminderWorker, error) {
	expression := config.Schedule
	if expression == "" {
		expression = _defaultReminderSchedule
	}
	daysBefore := config.DaysBefore
	if daysBefore <= 0 {
		daysBefore = _defaultDaysBefore
	}

	schedule, err := async.NewSchedule(expression, clock.Now())
	if err != nil {
		return nil, fmt.Errorf("creating reminder schedule: %w", err)
	}

	counter, err := otel.Meter("green_link").Int64Counter(
		"green_link.harvest_reminders.total",
		metric.WithDescription("Harvest reminders sent, by status"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reminder counter: %w", err)
	}

	return &HarvestReminderWorker{
		ticker:     ticker,
		repository: repository,
		client:     client,
		clock:      clock,
		schedule:   schedule,
		daysBefore: daysBefore,
		counter:    counter,
	}, nil
}

var _ async.Worker = (*HarvestReminderWorker)(nil)

// HarvestReminderWorker texts the farmer of every crop whose harvest is due
// within the configured number of days.
type HarvestReminderWorker struct {
	ticker     *time.Ticker
	repository CropRepository
	client     notification.Client
	clock      utils.Clock
	schedule   *async.Schedule
	daysBefore int
	counter    metric.Int64Counter
}

func (w *HarvestReminderWorker) Run(ctx context.Context, done func()) {
	slog.Info("harvest reminder worker started", slog.Time("next", w.schedule.Next()))
	defer done()
	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			slog.Info("harvest reminder worker cancelled")
			wg.Wait()
			return
		case <-w.ticker.C:
			if !w.schedule.Due(w.clock.Now()) {
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := w.SendReminders(ctx); err != nil {
					slog.Error("sending harvest reminders", slog.String("error", err.Error()))
				}
			}()
		}
	}
}

// SendReminders returns how many reminders went out.
func (w *HarvestReminderWorker) SendReminders(ctx context.Context) (int, error) {
	now := w.clock.Now()
	// Harvest dates are stored at midnight, so today's crops sit before now.
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	crops, err := w.repository.FindHarvestingBetween(ctx, startOfDay, now.AddDate(0, 0, w.daysBefore))
	if err != nil {
		return 0, fmt.Errorf("finding crops near harvest: %w", err)
	}

	slog.Debug("crops near harvest", slog.Int("count", len(crops)))

	sent := 0
	for _, crop := range crops {
		if crop.Phone == nil {
			continue
		}

		err := w.client.SendSMS(ctx, notification.SMS{To: *crop.Phone, Message: reminderMessage(crop)})
		if err != nil {
			slog.Error("sending harvest reminder",
				slog.String("crop_id", crop.ID.String()),
				slog.String("error", err.Error()))
			w.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "failed")))
			continue
		}

		w.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "sent")))
		sent++
	}

	return sent, nil
}

func (w *HarvestReminderWorker) Shutdown() {
	w.ticker.Stop()
	slog.Info("harvest reminder worker shutdown")
}

func reminderMessage(crop cropsDomain.Crop) string {
	return fmt.Sprintf("Green Link: %s is expected to be ready for harvest on %s.",
		crop.Name, crop.ExpectedHarvestDate.Format(time.DateOnly))
}
