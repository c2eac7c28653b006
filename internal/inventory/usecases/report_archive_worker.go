package usecases

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"green-link/internal/infra/async"
	"green-link/internal/infra/blob"
	"green-link/internal/infra/utils"
	"green-link/internal/shared_kernel/report"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const _defaultArchiveSchedule = "0 0 * * *"

type ReportArchiveConfig struct {
	Schedule string
}

func NewReportArchiveWorker(
	ticker *time.Ticker,
	service ItemService,
	store blob.Store,
	clock utils.Clock,
	config ReportArchiveConfig,
) (*ReportArchiveWorker, error) {
	if config.Schedule == "" {
		config.Schedule = _defaultArchiveSchedule
	}

	schedule, err := async.NewSchedule(config.Schedule, clock.Now())
	if err != nil {
		return nil, fmt.Errorf("creating archive schedule: %w", err)
	}

	counter, err := otel.Meter("green_link").Int64Counter(
		"green_link.report_archives.total",
		metric.WithDescription("Inventory snapshots archived, by status"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating archive counter: %w", err)
	}

	return &ReportArchiveWorker{
		ticker:   ticker,
		service:  service,
		store:    store,
		clock:    clock,
		schedule: schedule,
		counter:  counter,
	}, nil
}

var _ async.Worker = (*ReportArchiveWorker)(nil)

// ReportArchiveWorker stores a dated XLSX snapshot of the inventory.
type ReportArchiveWorker struct {
	ticker   *time.Ticker
	service  ItemService
	store    blob.Store
	clock    utils.Clock
	schedule *async.Schedule
	counter  metric.Int64Counter
}

func (w *ReportArchiveWorker) Run(ctx context.Context, done func()) {
	slog.Info("report archive worker started", slog.Time("next", w.schedule.Next()))
	defer done()
	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			slog.Info("report archive worker cancelled")
			wg.Wait()
			return
		case <-w.ticker.C:
			if !w.schedule.Due(w.clock.Now()) {
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := w.Archive(ctx); err != nil {
					slog.Error("archiving inventory report", slog.String("error", err.Error()))
				}
			}()
		}
	}
}

// Archive renders and stores the snapshot, returning its key.
func (w *ReportArchiveWorker) Archive(ctx context.Context) (string, error) {
	key := fmt.Sprintf("inventory/%s.%s", w.clock.Now().Format(time.DateOnly), report.FormatXLSX)

	var buf bytes.Buffer
	if err := w.service.ExportItems(ctx, &buf, report.FormatXLSX); err != nil {
		w.record(ctx, "failed")
		return "", fmt.Errorf("rendering snapshot: %w", err)
	}

	if err := w.store.Put(ctx, key, buf.Bytes(), report.FormatXLSX.ContentType()); err != nil {
		w.record(ctx, "failed")
		return "", fmt.Errorf("storing snapshot: %w", err)
	}

	w.record(ctx, "stored")
	slog.Info("inventory snapshot archived", slog.String("key", key), slog.Int("size", buf.Len()))
	return key, nil
}

func (w *ReportArchiveWorker) record(ctx context.Context, status string) {
	w.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

func (w *ReportArchiveWorker) Shutdown() {
	w.ticker.Stop()
	slog.Info("report archive worker shutdown")
}
