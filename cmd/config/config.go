package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			slog.Debug("no .env file loaded", slog.String("reason", err.Error()))
		}

		config, err := readConfig()
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = config
	})

	return configInstance
}

func readConfig() (AppConfig, error) {
	viper.SetEnvPrefix("green_link")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetConfigName("server")
	viper.AddConfigPath("config")
	viper.AddConfigPath("/config")
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
		slog.Warn("config file not found, using defaults and environment")
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel: viper.GetString("general.log_level"),
			LogFile:  viper.GetString("general.log_file"),
			Port:     viper.GetInt("general.port"),
		},
		Telemetry: TelemetryConfig{
			Enabled:  viper.GetBool("telemetry.enabled"),
			Endpoint: viper.GetString("telemetry.endpoint"),
			Interval: viper.GetDuration("telemetry.interval"),
		},
		Postgresql: PostgresqlConfig{
			DSN: viper.GetString("database.dsn"),
		},
		Kafka: KafkaConfig{
			Brokers: viper.GetStringSlice("kafka.brokers"),
		},
		Inventory: InventoryConfig{
			LowStockThreshold:    viper.GetInt("inventory.low_stock_threshold"),
			LockBrandAndCategory: viper.GetBool("inventory.lock_brand_and_category"),
		},
		Reminders: RemindersConfig{
			Schedule:   viper.GetString("reminders.schedule"),
			DaysBefore: viper.GetInt("reminders.days_before"),
		},
		Notification: NotificationConfig{
			GatewayURL: viper.GetString("notification.gateway_url"),
			APIKey:     viper.GetString("notification.api_key"),
			FromEmail:  viper.GetString("notification.from_email"),
			AlertEmail: viper.GetString("notification.alert_email"),
			Timeout:    viper.GetDuration("notification.timeout"),
			Retries:    viper.GetInt("notification.retries"),
		},
		Reports: ReportsConfig{
			Schedule: viper.GetString("reports.schedule"),
			S3: S3Config{
				Bucket:    viper.GetString("reports.s3.bucket"),
				Region:    viper.GetString("reports.s3.region"),
				Endpoint:  viper.GetString("reports.s3.endpoint"),
				PathStyle: viper.GetBool("reports.s3.path_style"),
				Prefix:    viper.GetString("reports.s3.prefix"),
			},
		},
	}, nil
}

func setDefaults() {
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("general.port", 3000)
	viper.SetDefault("telemetry.enabled", true)
	viper.SetDefault("telemetry.endpoint", "localhost:4317")
	viper.SetDefault("telemetry.interval", 30*time.Second)
	viper.SetDefault("inventory.low_stock_threshold", 5)
	viper.SetDefault("inventory.lock_brand_and_category", false)
	viper.SetDefault("reminders.schedule", "0 7 * * *")
	viper.SetDefault("reminders.days_before", 3)
	viper.SetDefault("notification.timeout", 10*time.Second)
	viper.SetDefault("notification.retries", 3)
	viper.SetDefault("reports.schedule", "0 0 * * *")
}

type AppConfig struct {
	General      GeneralConfig
	Telemetry    TelemetryConfig
	Kafka        KafkaConfig
	Postgresql   PostgresqlConfig
	Inventory    InventoryConfig
	Reminders    RemindersConfig
	Notification NotificationConfig
	Reports      ReportsConfig
}

type GeneralConfig struct {
	LogLevel string
	LogFile  string
	Port     int
}

// TelemetryConfig points the OTLP exporters at a collector.
type TelemetryConfig struct {
	Enabled  bool
	Endpoint string
	Interval time.Duration
}

type KafkaConfig struct {
	Brokers []string
}

type PostgresqlConfig struct {
	DSN string
}

type InventoryConfig struct {
	LowStockThreshold    int
	LockBrandAndCategory bool
}

type RemindersConfig struct {
	Schedule   string
	DaysBefore int
}

type NotificationConfig struct {
	GatewayURL string
	APIKey     string
	FromEmail  string
	AlertEmail string
	Timeout    time.Duration
	Retries    int
}

type ReportsConfig struct {
	Schedule string
	S3       S3Config
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	PathStyle bool
	Prefix    string
}
