package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

// Таблица версий демо-данных отдельная, чтобы seed не смешивался со схемой.
const seedVersionTable = "goose_seed_version"

// New подключается к postgres, повторяя попытки пока база поднимается.
func New(ctx context.Context, cfg config.Postgres) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	var db *sqlx.DB
	err := utils.Retry(ctx, utils.RetryConfig{
		MaxAttempts:  cfg.ConnectAttempts,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     5 * time.Second,
	}, func() error {
		var err error
		db, err = sqlx.ConnectContext(ctx, "postgres", dsn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// NewMigrator собирает goose provider для схемы.
func NewMigrator(db *sqlx.DB, fsys fs.FS) (*goose.Provider, error) {
	return goose.NewProvider(goose.DialectPostgres, db.DB, fsys)
}

// NewSeeder собирает goose provider для демо-данных со своей таблицей версий.
func NewSeeder(db *sqlx.DB, fsys fs.FS) (*goose.Provider, error) {
	store, err := database.NewStore(goose.DialectPostgres, seedVersionTable)
	if err != nil {
		return nil, fmt.Errorf("failed to create seed store: %w", err)
	}
	return goose.NewProvider("", db.DB, fsys, goose.WithStore(store))
}

// Migrate применяет недостающие миграции provider'а.
func Migrate(ctx context.Context, logger *slog.Logger, p *goose.Provider) error {
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.Duration("took", r.Duration),
		)
	}
	return nil
}
