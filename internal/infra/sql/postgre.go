package sql

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	maxRetries    = 10
	_retryBackoff = 5 * time.Second
	_queryTimeout = 5 * time.Second
)

type PostgreDatabase struct {
	url  string
	Conn *pgxpool.Pool
}

var (
	postgreInstance *PostgreDatabase
	postgreOnce     sync.Once
)

// NewPostgreDatabase returns the process wide connection pool holder.
func NewPostgreDatabase(url string) *PostgreDatabase {
	postgreOnce.Do(func() {
		postgreInstance = &PostgreDatabase{url: withPassword(url)}
	})

	return postgreInstance
}

func withPassword(url string) string {
	if pass, ok := os.LookupEnv("GREEN_LINK_POSTGRES_PASSWORD"); ok {
		return fmt.Sprintf("%s password=%s", url, pass)
	}
	return url
}

func (d *PostgreDatabase) Open(ctx context.Context) error {
	if d.Conn != nil {
		return nil
	}

	for range maxRetries {
		conn, err := pgxpool.New(ctx, d.url)
		if err == nil {
			err = conn.Ping(ctx)
		}
		if err == nil {
			d.Conn = conn
			return nil
		}

		slog.Warn("connecting to postgres", slog.String("error", err.Error()))
		time.Sleep(_retryBackoff)
	}

	return fmt.Errorf("imposible to connect to database after %d retries", maxRetries)
}

func (d *PostgreDatabase) Close() {
	if d.Conn != nil {
		d.Conn.Close()
	}
}

// NewPostgreORM builds the gorm handle on top of the pgx pool so both share
// connections.
func NewPostgreORM(db *PostgreDatabase) (*DB, error) {
	if db.Conn == nil {
		return nil, fmt.Errorf("postgres pool is not open")
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: stdlib.OpenDBFromPool(db.Conn),
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("opening gorm over pgx: %w", err)
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              _queryTimeout,
		system:               "postgresql",
	}, nil
}
