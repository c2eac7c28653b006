package wire

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"green-link/cmd/config"
	cropsUsecases "green-link/internal/crops/usecases"
	"green-link/internal/infra/blob"
	"green-link/internal/infra/notification"
	"green-link/internal/infra/pubsub"
	"green-link/internal/infra/sql"
	"green-link/internal/infra/utils"
	inventoryUsecases "green-link/internal/inventory/usecases"
)

const _workerTick = 30 * time.Second

var (
	databaseOnce     sync.Once
	databaseInstance sql.ORM

	pubSubOnce     sync.Once
	pubSubInstance *pubsub.Factory
)

func environment() string {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		env = "production"
	}
	return env
}

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

// provideDatabase shares one handle across injectors so every repository
// sees the same rows, the in-memory database included.
func provideDatabase(config config.AppConfig) sql.ORM {
	databaseOnce.Do(func() {
		if environment() == "local" {
			orm, err := sql.NewMemoryORM()
			if err != nil {
				panic(err)
			}
			databaseInstance = orm
			return
		}

		db := sql.NewPostgreDatabase(config.Postgresql.DSN)
		if err := db.Open(context.Background()); err != nil {
			panic(err)
		}

		orm, err := sql.NewPostgreORM(db)
		if err != nil {
			panic(err)
		}
		databaseInstance = orm
	})

	return databaseInstance
}

func providePubSubFactory(config config.AppConfig) *pubsub.Factory {
	pubSubOnce.Do(func() {
		pubSubInstance = pubsub.NewFactory(pubsub.FactoryOptions{
			Environment:  environment(),
			KafkaBrokers: config.Kafka.Brokers,
		})
	})

	return pubSubInstance
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideClock() utils.Clock {
	return utils.NewSystemClock()
}

func provideTicker() *time.Ticker {
	return time.NewTicker(_workerTick)
}

func provideNotificationClient(config config.AppConfig) notification.Client {
	if config.Notification.GatewayURL == "" {
		slog.Warn("notification gateway not configured, notifications are only logged")
		return notification.NewLogClient()
	}

	return notification.NewGatewayClient(notification.GatewayConfig{
		URL:       config.Notification.GatewayURL,
		APIKey:    config.Notification.APIKey,
		FromEmail: config.Notification.FromEmail,
		Timeout:   config.Notification.Timeout,
		Retries:   config.Notification.Retries,
	})
}

func provideBlobStore(config config.AppConfig) (blob.Store, error) {
	s3Config := config.Reports.S3
	if s3Config.Bucket == "" {
		slog.Warn("report bucket not configured, snapshots are kept in memory")
		return blob.NewMemoryStore(), nil
	}

	return blob.NewS3Store(context.Background(), blob.S3Config{
		Bucket:    s3Config.Bucket,
		Region:    s3Config.Region,
		Endpoint:  s3Config.Endpoint,
		PathStyle: s3Config.PathStyle,
		Prefix:    s3Config.Prefix,
	})
}

func provideItemServiceConfig(config config.AppConfig) inventoryUsecases.ItemServiceConfig {
	return inventoryUsecases.ItemServiceConfig{
		LowStockThreshold:    config.Inventory.LowStockThreshold,
		LockBrandAndCategory: config.Inventory.LockBrandAndCategory,
	}
}

func provideLowStockAlertConfig(config config.AppConfig) inventoryUsecases.LowStockAlertConfig {
	return inventoryUsecases.LowStockAlertConfig{
		AlertEmail: config.Notification.AlertEmail,
		Threshold:  config.Inventory.LowStockThreshold,
	}
}

func provideReportArchiveConfig(config config.AppConfig) inventoryUsecases.ReportArchiveConfig {
	return inventoryUsecases.ReportArchiveConfig{Schedule: config.Reports.Schedule}
}

func provideHarvestReminderConfig(config config.AppConfig) cropsUsecases.HarvestReminderConfig {
	return cropsUsecases.HarvestReminderConfig{
		Schedule:   config.Reminders.Schedule,
		DaysBefore: config.Reminders.DaysBefore,
	}
}
