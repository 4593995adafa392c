// Package database wraps a PostgreSQL *sql.DB (pgx stdlib driver) with bounded
// per-call deadlines and a circuit breaker.
//
// Every call made through Do or WithTx runs under Options.Timeout. Failures are
// classified before they are returned:
//   - deadline expiry             → wraps ErrTimeout
//   - connectivity / open breaker → wraps ErrUnavailable
//   - everything else             → returned unchanged (sql.ErrNoRows, *pgconn.PgError, callback errors)
package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sony/gobreaker"

	"github.com/ghuser/blogs/pkg/logger"
)

var (
	// ErrUnavailable indicates the store could not be reached or the breaker is open.
	ErrUnavailable = errors.New("store unavailable")

	// ErrTimeout indicates a store call did not complete within its deadline.
	ErrTimeout = errors.New("store timeout")
)

// Options tunes the connection pool, per-call deadline and breaker.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Timeout         time.Duration
	// BreakerFailures is the number of consecutive connectivity failures that
	// opens the breaker. Zero disables tripping.
	BreakerFailures uint32
	BreakerCooldown time.Duration
}

// DefaultOptions mirrors the config defaults.
func DefaultOptions() Options {
	return Options{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 15 * time.Minute,
		Timeout:         5 * time.Second,
		BreakerFailures: 5,
		BreakerCooldown: 30 * time.Second,
	}
}

// Database is the shared PostgreSQL handle used by all repositories.
type Database struct {
	db      *sql.DB
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
	log     logger.Logger
}

// NewPool opens a pgx-backed *sql.DB, applies pool settings and verifies
// connectivity with a ping bounded by opts.Timeout.
func NewPool(ctx context.Context, url string, opts Options, log logger.Logger) (*Database, error) {
	sqlDB, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)

	d := New(sqlDB, opts, log)
	if err := d.Ping(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return d, nil
}

// New wraps an existing *sql.DB. Used directly by tests with go-sqlmock.
func New(sqlDB *sql.DB, opts Options, log logger.Logger) *Database {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	failures := opts.BreakerFailures
	return &Database{
		db:      sqlDB,
		timeout: opts.Timeout,
		log:     log,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "postgres",
			MaxRequests: 1,
			Timeout:     opts.BreakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return failures > 0 && counts.ConsecutiveFailures >= failures
			},
			IsSuccessful: func(err error) bool {
				return err == nil || !isInfraFailure(err)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn("database: breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

// DB returns the underlying *sql.DB.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Do runs fn through the breaker with a bounded deadline and classifies its error.
func (d *Database) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	_, err := d.breaker.Execute(func() (interface{}, error) {
		return nil, fn(ctx)
	})
	return classify(err)
}

// WithTx runs fn inside a transaction. The transaction is rolled back if fn
// returns an error and committed otherwise.
func (d *Database) WithTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return d.Do(ctx, func(ctx context.Context) error {
		tx, err := d.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		if err := fn(ctx, tx); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		return nil
	})
}

// Ping checks the database connection health.
func (d *Database) Ping(ctx context.Context) error {
	return d.Do(ctx, func(ctx context.Context) error {
		if err := d.db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}
		return nil
	})
}

// Close closes the connection pool.
func (d *Database) Close() {
	if err := d.db.Close(); err != nil {
		d.log.Error("database: close failed", "error", err)
	}
}

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case isConnectivityFailure(err):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return err
	}
}

// isInfraFailure reports whether err says something about the health of the
// database rather than about the request. Only these trip the breaker.
func isInfraFailure(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || isConnectivityFailure(err)
}

func isConnectivityFailure(err error) bool {
	var connectErr *pgconn.ConnectError
	var netErr net.Error
	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.As(err, &connectErr) ||
		errors.As(err, &netErr)
}
