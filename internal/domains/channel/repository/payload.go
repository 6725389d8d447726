package repository

//go:generate go run go.uber.org/mock/mockgen -source=./payload.go -destination=../mocks/payload_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"time"

	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/channel/model"
	gDto "hotelbook/shared/dto"
	gRepo "hotelbook/shared/repository"
)

const lastSuccessQuery = `
	SELECT MAX(created_at) FROM provider_payloads
	WHERE provider = $1 AND operation = $2 AND success = TRUE`

type Payload interface {
	Insert(ctx context.Context, model model.Payload) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payload, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	// LastSuccess reports when the operation last succeeded for the provider.
	LastSuccess(ctx context.Context, provider, operation string) (time.Time, bool, error)
}

type payloadRepositoryImpl struct {
	gRepo.Repository[model.Payload]
}

func NewPayload(db *postgres.Connection, otel otel.Otel) Payload {
	return &payloadRepositoryImpl{
		Repository: gRepo.NewRepository[model.Payload](model.PayloadEntityName, model.PayloadTableName, model.FieldID, db, otel),
	}
}

func (r *payloadRepositoryImpl) LastSuccess(ctx context.Context, provider, operation string) (time.Time, bool, error) {
	var last sql.NullTime

	if err := r.Scalar(ctx, "LastSuccess", &last, lastSuccessQuery, provider, operation); err != nil {
		return time.Time{}, false, err //nolint:wrapcheck
	}

	return last.Time, last.Valid, nil
}
