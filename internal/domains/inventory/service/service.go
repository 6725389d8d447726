package service

import (
	"context"
	"fmt"
	"time"

	"hotelbook/infras/otel"
	"hotelbook/internal/domains/inventory/model"
	"hotelbook/internal/domains/inventory/model/dto"
	"hotelbook/internal/domains/inventory/repository"
	roomTypeModel "hotelbook/internal/domains/roomtype/model"
	roomTypeRepo "hotelbook/internal/domains/roomtype/repository"
	"hotelbook/shared"
	"hotelbook/shared/cache"
	"hotelbook/shared/constant"
	"hotelbook/shared/daterange"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"

	"github.com/rs/zerolog/log"
)

type Inventory interface {
	Upsert(ctx context.Context, req dto.UpsertInventoryRequest) (dto.UpsertInventoryResponse, error)
	GetAll(ctx context.Context, req dto.GetInventoryRequest) ([]dto.InventoryResponse, error)
}

type serviceImpl struct {
	repo         repository.Inventory
	roomTypeRepo roomTypeRepo.RoomType
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Inventory, roomTypeRepo roomTypeRepo.RoomType, cache cache.RedisCache, otel otel.Otel) Inventory {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		cache:        cache,
		otel:         otel,
	}
}

// Upsert sets the allotment for every date in the inclusive range.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertInventoryRequest) (res dto.UpsertInventoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		return res, err
	}

	if to.Before(from) {
		return res, failure.BadRequestFromString("to must not be before from") //nolint:wrapcheck
	}

	dates := daterange.Nights(from, to.AddDate(0, 0, 1))
	if len(dates) > dto.MaxUpsertDays {
		return res, failure.BadRequestFromString(fmt.Sprintf("range must not exceed %d days", dto.MaxUpsertDays)) //nolint:wrapcheck
	}

	exist, err := s.roomTypeRepo.Exist(ctx, shared.FilterByID(req.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", req.RoomTypeID).Msg("failed to check room type")

		return res, fmt.Errorf("failed to check room type: %w", err)
	}

	if !exist {
		return res, failure.NotFound("room type not found") //nolint:wrapcheck
	}

	if _, err = s.repo.UpsertRange(ctx, req.RoomTypeID, dates, req.Allotment, user); err != nil {
		log.Error().Err(err).Str("room_type_id", req.RoomTypeID).Msg("failed to upsert inventory")

		return res, fmt.Errorf("failed to upsert inventory: %w", err)
	}

	go func() {
		shared.BumpGeneration(context.WithoutCancel(ctx), s.cache, constant.CacheAvailabilityGeneration, constant.CacheAvailabilitySearch)
	}()

	log.Info().
		Str("room_type_id", req.RoomTypeID).
		Str("from", req.From).
		Str("to", req.To).
		Int("allotment", req.Allotment).
		Msg("inventory updated")

	return dto.UpsertInventoryResponse{
		RoomTypeID: req.RoomTypeID,
		From:       req.From,
		To:         req.To,
		Days:       len(dates),
	}, nil
}

// GetAll lists inventory rows for the inclusive range, optionally for a single room type.
func (s *serviceImpl) GetAll(ctx context.Context, req dto.GetInventoryRequest) (res []dto.InventoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{ArgName: "date_from", Field: model.FieldDate, Value: daterange.Format(from), Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			gDto.Filter{ArgName: "date_to", Field: model.FieldDate, Value: daterange.Format(to), Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
		},
	}

	if req.RoomTypeID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldRoomTypeID,
			Value:    req.RoomTypeID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{SortBy: model.FieldDate, SortDir: gDto.SortDirAsc}

	rows, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list inventory")

		return res, fmt.Errorf("failed to list inventory: %w", err)
	}

	return dto.FromModels(rows), nil
}

func parseRange(fromValue, toValue string) (from, to time.Time, err error) {
	if from, err = daterange.Parse(fromValue); err != nil {
		return from, to, failure.BadRequest(err) //nolint:wrapcheck
	}

	if to, err = daterange.Parse(toValue); err != nil {
		return from, to, failure.BadRequest(err) //nolint:wrapcheck
	}

	return from, to, nil
}
