package db

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/civicworks/infrapulse/pkg/logger"
	"github.com/civicworks/infrapulse/pkg/models"
)

const defaultPostgresPort = 5432

// newPool dials the configured Postgres cluster and returns a pgx pool.
func newPool(ctx context.Context, cfg *models.Database, log logger.Logger) (*pgxpool.Pool, error) {
	database := *cfg
	if database.Port == 0 {
		database.Port = defaultPostgresPort
	}

	connURL := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", database.Host, database.Port),
		Path:   "/" + database.Name,
	}

	if database.Username != "" {
		if database.Password != "" {
			connURL.User = url.UserPassword(database.Username, database.Password)
		} else {
			connURL.User = url.User(database.Username)
		}
	}

	query := connURL.Query()

	sslMode := database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	query.Set("sslmode", sslMode)

	if database.ApplicationName != "" {
		query.Set("application_name", database.ApplicationName)
	}

	connURL.RawQuery = query.Encode()

	poolConfig, err := pgxpool.ParseConfig(connURL.String())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse connection string: %w", ErrFailedOpenDB, err)
	}

	if database.MaxConnections > 0 {
		poolConfig.MaxConns = database.MaxConnections
	}

	if database.MinConnections > 0 {
		poolConfig.MinConns = database.MinConnections
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: ping failed: %w", ErrFailedOpenDB, err)
	}

	log.Info().
		Str("host", database.Host).
		Str("database", database.Name).
		Msg("Connected to Postgres")

	return pool, nil
}
