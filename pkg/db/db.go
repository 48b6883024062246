package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/civicworks/infrapulse/pkg/logger"
	"github.com/civicworks/infrapulse/pkg/models"
)

// DB is the pgx-backed implementation of Service.
type DB struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

// New connects to the database, bootstraps the schema, and returns a Service.
func New(ctx context.Context, cfg *models.Database, log logger.Logger) (Service, error) {
	pool, err := newPool(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	database := &DB{pool: pool, logger: log}

	if err := database.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return database, nil
}

// Close releases the connection pool.
func (db *DB) Close() error {
	db.pool.Close()
	return nil
}
