package service

import (
	"context"
	"fmt"

	"hotelbook/infras/otel"
	"hotelbook/internal/domains/rateplan/model"
	"hotelbook/internal/domains/rateplan/model/dto"
	"hotelbook/internal/domains/rateplan/repository"
	roomTypeModel "hotelbook/internal/domains/roomtype/model"
	roomTypeRepo "hotelbook/internal/domains/roomtype/repository"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"

	"github.com/rs/zerolog/log"
)

const errNotFound = "rate plan not found"

type RatePlan interface {
	Create(ctx context.Context, req dto.CreateRatePlanRequest) (dto.RatePlanResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRatePlansResponse, error)
	Get(ctx context.Context, id string) (dto.RatePlanResponse, error)
	Update(ctx context.Context, req dto.UpdateRatePlanRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.RatePlan
	roomTypeRepo roomTypeRepo.RoomType
	otel         otel.Otel
}

func New(repo repository.RatePlan, roomTypeRepo roomTypeRepo.RoomType, otel otel.Otel) RatePlan {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRatePlanRequest) (res dto.RatePlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ratePlan.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.roomTypeRepo.Exist(ctx, shared.FilterByID(req.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type")

		return res, fmt.Errorf("failed to check room type: %w", err)
	}

	if !exist {
		return res, failure.NotFound("room type not found") //nolint:wrapcheck
	}

	ratePlan := req.ToModel(user)

	if err = s.repo.Insert(ctx, ratePlan); err != nil {
		log.Error().Err(err).Msg("failed to create rate plan")

		return res, fmt.Errorf("failed to create rate plan: %w", err)
	}

	res.FromModel(ratePlan)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRatePlansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ratePlan.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rate plans")

		return res, fmt.Errorf("failed to count rate plans: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate plans")

		return res, fmt.Errorf("failed to get rate plans: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RatePlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ratePlan.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ratePlan, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate plan")

		return res, fmt.Errorf("failed to get rate plan: %w", err)
	}

	if ratePlan.ID == constant.Empty {
		return res, failure.NotFound(errNotFound) //nolint:wrapcheck
	}

	res.FromModel(ratePlan)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRatePlanRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ratePlan.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check rate plan: %w", err)
	}

	if !exist {
		return failure.NotFound(errNotFound) //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update rate plan")

		return fmt.Errorf("failed to update rate plan: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ratePlan.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check rate plan: %w", err)
	}

	if !exist {
		return failure.NotFound(errNotFound) //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete rate plan")

		return fmt.Errorf("failed to delete rate plan: %w", err)
	}

	return nil
}
