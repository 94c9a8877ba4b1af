package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/taskpad/internal/config"
)

// NewPool creates a connection pool sized and timed from cfg and verifies
// connectivity with a ping. The caller owns the pool and must Close it.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MaxConnIdleTime = cfg.IdleTimeout
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if logger != nil {
		logger.Info("database connection pool established",
			slog.String("url", MaskDatabaseURL(cfg.URL)),
			slog.Int("max_conns", int(cfg.MaxConns)),
			slog.Duration("connect_timeout", cfg.ConnectTimeout),
			slog.Duration("idle_timeout", cfg.IdleTimeout))
	}

	return pool, nil
}

// MaskDatabaseURL masks the password in a database URL for safe logging.
func MaskDatabaseURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}

	if parsedURL.User == nil {
		return parsedURL.String()
	}
	if _, hasPassword := parsedURL.User.Password(); !hasPassword {
		return parsedURL.String()
	}

	// url.UserPassword would percent-encode the mask, so splice it in after
	// formatting the URL without credentials.
	user := url.User(parsedURL.User.Username()).String()
	parsedURL.User = nil
	masked := parsedURL.String()
	prefix := parsedURL.Scheme + "://"
	if !strings.HasPrefix(masked, prefix) {
		return "invalid-url"
	}
	return prefix + user + ":****@" + strings.TrimPrefix(masked, prefix)
}
