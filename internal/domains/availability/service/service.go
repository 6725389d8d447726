package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"hotelbook/config"
	"hotelbook/infras/otel"
	"hotelbook/internal/domains/availability"
	"hotelbook/internal/domains/availability/model"
	"hotelbook/internal/domains/availability/model/dto"
	inventoryModel "hotelbook/internal/domains/inventory/model"
	inventoryRepo "hotelbook/internal/domains/inventory/repository"
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

const defaultSearchTTLSeconds = 60

type Availability interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
	Check(ctx context.Context, roomType roomTypeModel.RoomType, checkIn, checkOut time.Time, guests int) (model.AvailableRoom, bool, error)
}

type serviceImpl struct {
	roomTypeRepo  roomTypeRepo.RoomType
	inventoryRepo inventoryRepo.Inventory
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(roomTypeRepo roomTypeRepo.RoomType, inventoryRepo inventoryRepo.Inventory, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		roomTypeRepo:  roomTypeRepo,
		inventoryRepo: inventoryRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// Search lists active room types sellable for the stay, cheapest first.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, err := daterange.Parse(req.CheckIn)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	checkOut, err := daterange.Parse(req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	if err = daterange.Validate(checkIn, checkOut); err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	// The generation is read before inventory, so a result computed from stale rows is saved under a key
	// that the next invalidation has already retired.
	generation, genErr := shared.CacheGeneration(ctx, s.cache, constant.CacheAvailabilityGeneration)
	if genErr != nil {
		log.Warn().Err(genErr).Msg("availability search cache bypassed")
	}

	cacheKey := shared.BuildCacheKey(constant.CacheAvailabilitySearch, generation, req.CheckIn, req.CheckOut, strconv.Itoa(req.Guests))

	if genErr == nil {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for availability search")

			return res, nil
		}
	}

	candidates, err := s.roomTypeRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: roomTypeModel.FieldBaseRate, SortDir: gDto.SortDirAsc},
		shared.FilterByFields(roomTypeModel.TableName, map[string]any{roomTypeModel.FieldActive: true}),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load room types for search")

		return res, fmt.Errorf("failed to load room types: %w", err)
	}

	rooms, err := s.calculate(ctx, candidates, checkIn, checkOut, req.Guests)
	if err != nil {
		return res, err
	}

	res = dto.SearchResponse{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Guests:   req.Guests,
		Nights:   len(daterange.Nights(checkIn, checkOut)),
	}
	res.FromModels(rooms)

	if genErr != nil {
		return res, nil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.ttl()); err != nil {
			log.Error().Err(err).Msg("failed to save availability search to cache")
		}
	}()

	return res, nil
}

// Check evaluates a single room type, always against fresh inventory.
func (s *serviceImpl) Check(ctx context.Context, roomType roomTypeModel.RoomType, checkIn, checkOut time.Time, guests int) (room model.AvailableRoom, ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Check")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.calculate(ctx, []roomTypeModel.RoomType{roomType}, checkIn, checkOut, guests)
	if err != nil {
		return room, false, err
	}

	if len(rooms) == 0 {
		return room, false, nil
	}

	return rooms[0], true, nil
}

func (s *serviceImpl) calculate(ctx context.Context, candidates []roomTypeModel.RoomType, checkIn, checkOut time.Time, guests int) ([]model.AvailableRoom, error) {
	ids := make([]string, len(candidates))
	for i, candidate := range candidates {
		ids[i] = candidate.ID
	}

	rows, err := s.inventoryRepo.GetRange(ctx, ids, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to load inventory for search")

		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	inventory := make(map[string][]inventoryModel.Inventory, len(candidates))
	for _, row := range rows {
		inventory[row.RoomTypeID] = append(inventory[row.RoomTypeID], row)
	}

	return availability.Calculate(candidates, inventory, checkIn, checkOut, guests) //nolint:wrapcheck
}

func (s *serviceImpl) ttl() int {
	if s.cfg.Cache.TTL > 0 && s.cfg.Cache.TTL < defaultSearchTTLSeconds {
		return s.cfg.Cache.TTL
	}

	return defaultSearchTTLSeconds
}
