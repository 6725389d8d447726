package transaction

//go:generate go run go.uber.org/mock/mockgen -source=./transaction.go -destination=./mocks/transaction_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxRetries = 3
	retryStep  = 100 * time.Millisecond

	pqErrorCodeSerializationFailure = "40001"
	pqErrorCodeDeadlockDetected     = "40P01"
)

var ErrMaxRetriesExceeded = errors.New("transaction failed after max retries")

// Manager runs a unit of work inside a single database transaction.
type Manager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error
}

type managerImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Manager {
	return &managerImpl{
		db:   db,
		otel: otel,
	}
}

// WithinTx commits when fn returns nil and rolls back otherwise. Serialization failures and
// deadlocks are retried with a linear backoff.
func (m *managerImpl) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".WithinTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for attempt := range maxRetries + 1 {
		err = m.run(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}

		if attempt == maxRetries {
			break
		}

		wait := time.Duration(attempt+1) * retryStep
		log.Warn().Err(err).Int("attempt", attempt+1).Dur("wait", wait).Msg("retrying transaction")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, err)
}

func (m *managerImpl) run(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) (err error) {
	tx, err := m.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Warn().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch string(pqErr.Code) {
	case pqErrorCodeSerializationFailure, pqErrorCodeDeadlockDetected:
		return true
	default:
		return false
	}
}
