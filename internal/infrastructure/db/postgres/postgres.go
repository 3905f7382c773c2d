package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// DB is the subset of pgxpool.Pool the repositories use. Declared as an
// interface so tests can substitute a pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Connect establishes a pgx connection pool and verifies connectivity with a
// ping.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pool, err := pgxpool.New(connectCtx, url)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return pool, nil
}

// mapError translates driver failures into domain errors. Unique-constraint
// violations become ErrEmailTaken; timeouts and connection failures become
// the retryable ErrStorageUnavailable. Everything else is wrapped as-is.
func mapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return domain.ErrEmailTaken
		case pgerrcode.ConnectionException, pgerrcode.ConnectionFailure,
			pgerrcode.CannotConnectNow, pgerrcode.TooManyConnections:
			return fmt.Errorf("%s: %w", op, domain.ErrStorageUnavailable)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrStorageUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
