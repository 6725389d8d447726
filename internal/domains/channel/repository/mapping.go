package repository

//go:generate go run go.uber.org/mock/mockgen -source=./mapping.go -destination=../mocks/mapping_mock.go -package=mocks

import (
	"context"

	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/channel/model"
	gDto "hotelbook/shared/dto"
	gRepo "hotelbook/shared/repository"
)

type Mapping interface {
	Insert(ctx context.Context, model model.Mapping) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Mapping, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Mapping, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type mappingRepositoryImpl struct {
	gRepo.Repository[model.Mapping]
	db   *postgres.Connection
	otel otel.Otel
}

func NewMapping(db *postgres.Connection, otel otel.Otel) Mapping {
	return &mappingRepositoryImpl{
		Repository: gRepo.NewRepository[model.Mapping](model.MappingEntityName, model.MappingTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
