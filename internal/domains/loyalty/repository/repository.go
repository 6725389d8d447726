package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/loyalty/model"
	gDto "hotelbook/shared/dto"
	gRepo "hotelbook/shared/repository"

	"github.com/jmoiron/sqlx"
)

const sumQuery = `SELECT COALESCE(SUM(delta), 0) FROM loyalty_ledger WHERE user_id = $1`

type Ledger interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.LedgerEntry) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.LedgerEntry, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Sum(ctx context.Context, userID string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.LedgerEntry]
}

func New(db *postgres.Connection, otel otel.Otel) Ledger {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.LedgerEntry](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Sum totals every ledger movement of the user.
func (r *repositoryImpl) Sum(ctx context.Context, userID string) (int64, error) {
	var total int64

	err := r.Scalar(ctx, "Sum", &total, sumQuery, userID)

	return total, err //nolint:wrapcheck
}
