package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/inventory/model"
	"hotelbook/shared/daterange"
	gDto "hotelbook/shared/dto"
	gRepo "hotelbook/shared/repository"
	"hotelbook/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	upsertRangeQuery = `
		INSERT INTO inventories (room_type_id, date, allotment, booked, created_at, modified_at, created_by, modified_by)
		SELECT $1, d::date, $2, 0, $3, $3, $4, $4 FROM unnest($5::date[]) AS d
		ON CONFLICT (room_type_id, date) DO UPDATE
		SET allotment = EXCLUDED.allotment, modified_at = EXCLUDED.modified_at, modified_by = EXCLUDED.modified_by`

	incrementBookedQuery = `
		UPDATE inventories SET booked = booked + $1, modified_at = $2
		WHERE room_type_id = $3 AND date = ANY($4::date[])`

	decrementBookedQuery = `
		UPDATE inventories SET booked = GREATEST(booked + $1, 0), modified_at = $2
		WHERE room_type_id = $3 AND date = ANY($4::date[])`
)

type Inventory interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Inventory, error)
	GetRange(ctx context.Context, roomTypeIDs []string, from time.Time, to time.Time) ([]model.Inventory, error)
	UpsertRange(ctx context.Context, roomTypeID string, dates []time.Time, allotment int, user string) (int64, error)
	IncrementBookedTx(ctx context.Context, sqltx *sqlx.Tx, roomTypeID string, dates []time.Time, delta int) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Inventory]
}

func New(db *postgres.Connection, otel otel.Otel) Inventory {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Inventory](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// GetRange returns rows for the room types on dates in [from, to), ordered by room type then date.
func (r *repositoryImpl) GetRange(ctx context.Context, roomTypeIDs []string, from time.Time, to time.Time) ([]model.Inventory, error) {
	if len(roomTypeIDs) == 0 {
		return []model.Inventory{}, nil
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE room_type_id = ANY($1) AND date >= $2 AND date < $3 ORDER BY room_type_id, date",
		r.SelectColumns(), model.TableName,
	)

	return r.Select(ctx, "GetRange", query, pq.StringArray(roomTypeIDs), daterange.Format(from), daterange.Format(to)) //nolint:wrapcheck
}

// UpsertRange sets the allotment on every date, creating missing rows with nothing booked.
func (r *repositoryImpl) UpsertRange(ctx context.Context, roomTypeID string, dates []time.Time, allotment int, user string) (int64, error) {
	return r.Exec(ctx, "UpsertRange", upsertRangeQuery, //nolint:wrapcheck
		roomTypeID, allotment, timezone.Now(), user, pq.StringArray(daterange.Strings(dates)))
}

// IncrementBookedTx shifts booked by delta on every listed date. Decrements stop at zero.
// It returns the number of rows touched so callers can detect missing inventory.
func (r *repositoryImpl) IncrementBookedTx(ctx context.Context, sqltx *sqlx.Tx, roomTypeID string, dates []time.Time, delta int) (int64, error) {
	query := incrementBookedQuery
	if delta < 0 {
		query = decrementBookedQuery
	}

	return r.ExecTx(ctx, sqltx, "IncrementBookedTx", query, //nolint:wrapcheck
		delta, timezone.Now(), roomTypeID, pq.StringArray(daterange.Strings(dates)))
}
