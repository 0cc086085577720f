package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/andrasnagy-data/bloglist/internal/shared/config"
	"github.com/andrasnagy-data/bloglist/internal/shared/store"
	"github.com/andrasnagy-data/bloglist/internal/shared/store/memstore"
	"github.com/andrasnagy-data/bloglist/internal/shared/store/mongostore"
	"github.com/andrasnagy-data/bloglist/internal/shared/store/pgstore"
)

const connectTimeout = 10 * time.Second

// preparer is implemented by backends that need indexes or tables before serving.
type preparer interface {
	prepare(ctx context.Context) error
}

type (
	mongoBackend struct{ *mongostore.Store }
	pgBackend    struct{ *pgstore.Store }
)

func (b mongoBackend) prepare(ctx context.Context) error { return b.EnsureIndexes(ctx) }
func (b pgBackend) prepare(ctx context.Context) error    { return b.EnsureSchema(ctx) }

// NewStore opens the backend named by the DATABASE_URL scheme and ties it to the fx lifecycle.
// When the database is unreachable at startup the process refuses to start in prod; elsewhere the
// failure is logged and the server keeps running with a failing health check.
func NewStore(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (store.Store, error) {
	logger = logger.With().Str("component", "database").Logger()

	st, err := Open(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, connectTimeout)
			defer cancel()

			if err := Prepare(ctx, st); err != nil {
				if cfg.IsEnvProd() {
					logger.Error().Err(err).Msg("Cannot connect to database")
					return err
				}
				logger.Error().Err(err).Msg("Cannot connect to database, continuing without it")
				return nil
			}
			logger.Info().Msg("Connected to database")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Closing database connection")
			return st.Close(ctx)
		},
	})

	return st, nil
}

// Open builds the store for cfg.DatabaseURL without touching the network beyond what the
// driver does on construction.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (store.Store, error) {
	u, err := url.Parse(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		logger.Debug().Str("database", cfg.DatabaseName).Msg("Using MongoDB store")
		st, err := mongostore.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			return nil, err
		}
		return mongoBackend{st}, nil
	case "postgres", "postgresql":
		logger.Debug().Msg("Using PostgreSQL store")
		pool, err := NewPgxPool(cfg, logger)
		if err != nil {
			return nil, err
		}
		return pgBackend{pgstore.New(pool)}, nil
	case "memory":
		logger.Warn().Msg("Using in-memory store, data is lost on restart")
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}

// Prepare pings the store and creates indexes or tables where the backend needs them.
func Prepare(ctx context.Context, st store.Store) error {
	if err := st.Ping(ctx); err != nil {
		return err
	}
	if p, ok := st.(preparer); ok {
		return p.prepare(ctx)
	}
	return nil
}

// NewPgxPool creates a PostgreSQL connection pool with production-ready settings.
// Pool settings: max 10 connections, min 2 connections, 1-hour max lifetime, 30-min idle timeout.
func NewPgxPool(cfg *config.Config, logger zerolog.Logger) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse database URL")
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = time.Minute * 30

	logger.Debug().
		Int32("max_conns", config.MaxConns).
		Int32("min_conns", config.MinConns).
		Dur("max_conns_lifetime", config.MaxConnLifetime).
		Dur("max_conns_idletime", config.MaxConnIdleTime).
		Msg("Database connection pool configuration")

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create database connection pool")
		return nil, err
	}

	logger.Debug().Msg("Database connection pool created successfully")
	return pool, nil
}
