// Package service orchestrates data exchange between the hotel and its distribution channels.
package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hotelbook/config"
	"hotelbook/infras/otel"
	bookingModel "hotelbook/internal/domains/booking/model"
	bookingDto "hotelbook/internal/domains/booking/model/dto"
	bookingService "hotelbook/internal/domains/booking/service"
	"hotelbook/internal/domains/channel/model"
	"hotelbook/internal/domains/channel/model/dto"
	"hotelbook/internal/domains/channel/provider"
	"hotelbook/internal/domains/channel/repository"
	inventoryModel "hotelbook/internal/domains/inventory/model"
	inventoryRepo "hotelbook/internal/domains/inventory/repository"
	roomTypeModel "hotelbook/internal/domains/roomtype/model"
	roomTypeRepo "hotelbook/internal/domains/roomtype/repository"
	"hotelbook/shared"
	"hotelbook/shared/clock"
	"hotelbook/shared/constant"
	"hotelbook/shared/daterange"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
	gRepo "hotelbook/shared/repository"

	"github.com/cenkalti/backoff/v5"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	defaultMaxRetries     = 3
	defaultRetryInitial   = 500 * time.Millisecond
	defaultRetryMax       = 10 * time.Second
	defaultPushWindowDays = 90
	defaultLookbackHours  = 24
	defaultCurrency       = "INR"

	errMappingNotFound = "channel mapping not found"
	errMappingExists   = "room type is already mapped for this provider"
	errUnknownProvider = "provider not found"
	errRoomTypeMissing = "room type not found"
)

type Channel interface {
	Providers(ctx context.Context) []dto.ProviderResponse
	TestConnection(ctx context.Context, name string) (dto.SyncResponse, error)
	// PushAvailability pushes [from, to) for the provider's mapped room types, or only roomTypeIDs when given.
	PushAvailability(ctx context.Context, name string, from, to time.Time, roomTypeIDs ...string) (dto.SyncResponse, error)
	PushRates(ctx context.Context, name string, from, to time.Time) (dto.SyncResponse, error)
	PullBookings(ctx context.Context, name string) (dto.SyncResponse, error)
	Trigger(ctx context.Context, name string, req dto.TriggerRequest) (dto.SyncResponse, error)
	// SyncAll runs operation against every enabled provider. Failures are reported per provider.
	SyncAll(ctx context.Context, operation string) []dto.SyncResponse
	HandleBookingEvent(ctx context.Context, event bookingModel.Event) error

	CreateMapping(ctx context.Context, req dto.CreateMappingRequest) (dto.MappingResponse, error)
	UpdateMapping(ctx context.Context, req dto.UpdateMappingRequest, id string) error
	DeleteMapping(ctx context.Context, id string) error
	GetMappings(ctx context.Context, params gDto.QueryParams, req dto.GetMappingsRequest) (dto.GetMappingsResponse, error)
	GetSyncLogs(ctx context.Context, params gDto.QueryParams, req dto.GetSyncLogsRequest) (dto.GetSyncLogsResponse, error)
}

type serviceImpl struct {
	registry      *provider.Registry
	mappingRepo   repository.Mapping
	payloadRepo   repository.Payload
	inventoryRepo inventoryRepo.Inventory
	roomTypeRepo  roomTypeRepo.RoomType
	booking       bookingService.Booking
	clock         clock.Clock
	cfg           *config.Config
	otel          otel.Otel
}

func New(
	registry *provider.Registry,
	mappingRepo repository.Mapping,
	payloadRepo repository.Payload,
	inventoryRepo inventoryRepo.Inventory,
	roomTypeRepo roomTypeRepo.RoomType,
	booking bookingService.Booking,
	clock clock.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Channel {
	return &serviceImpl{
		registry:      registry,
		mappingRepo:   mappingRepo,
		payloadRepo:   payloadRepo,
		inventoryRepo: inventoryRepo,
		roomTypeRepo:  roomTypeRepo,
		booking:       booking,
		clock:         clock,
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *serviceImpl) Providers(_ context.Context) []dto.ProviderResponse {
	names := s.registry.Enabled()

	res := make([]dto.ProviderResponse, len(names))
	for i, name := range names {
		res[i].Name = name
	}

	return res
}

func (s *serviceImpl) TestConnection(ctx context.Context, name string) (res dto.SyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.TestConnection")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p, err := s.provider(name)
	if err != nil {
		return res, err
	}

	result := provider.Succeeded(0)
	if !p.TestConnection(ctx) {
		result = provider.SyncResult{Errors: []string{"connection test failed"}}
	}

	res.FromResult(name, model.OperationTestConnection, 1, result)

	return res, nil
}

func (s *serviceImpl) PushAvailability(ctx context.Context, name string, from, to time.Time, roomTypeIDs ...string) (res dto.SyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.PushAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p, err := s.provider(name)
	if err != nil {
		return res, err
	}

	if err = daterange.Validate(from, to); err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	mappings, err := s.activeMappings(ctx, name, roomTypeIDs...)
	if err != nil {
		return res, err
	}

	if len(mappings) == 0 {
		res.FromResult(name, model.OperationPushAvailability, 0, provider.Succeeded(0))

		return res, nil
	}

	rows, err := s.inventoryRepo.GetRange(ctx, roomTypeIDsOf(mappings), from, to)
	if err != nil {
		log.Error().Err(err).Str("provider", name).Msg("failed to get inventory for push")

		return res, fmt.Errorf("failed to get inventory: %w", err)
	}

	updates := availabilityUpdates(mappings, rows, daterange.Nights(from, to))

	result, attempts := retry(ctx, s, func(ctx context.Context) provider.SyncResult {
		return p.PushAvailability(ctx, updates)
	})

	res.FromResult(name, model.OperationPushAvailability, attempts, result)
	s.logOutcome(res)

	return res, nil
}

func (s *serviceImpl) PushRates(ctx context.Context, name string, from, to time.Time) (res dto.SyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.PushRates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p, err := s.provider(name)
	if err != nil {
		return res, err
	}

	if err = daterange.Validate(from, to); err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	mappings, err := s.activeMappings(ctx, name)
	if err != nil {
		return res, err
	}

	if len(mappings) == 0 {
		res.FromResult(name, model.OperationPushRates, 0, provider.Succeeded(0))

		return res, nil
	}

	roomTypes, err := s.roomTypeRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomTypeModel.FieldID,
				Value:    roomTypeIDsOf(mappings),
				Operator: gDto.FilterOperatorIn,
				Table:    roomTypeModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("provider", name).Msg("failed to get room types for rate push")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	updates := rateUpdates(mappings, roomTypes, daterange.Nights(from, to), s.currency())

	result, attempts := retry(ctx, s, func(ctx context.Context) provider.SyncResult {
		return p.PushRates(ctx, updates)
	})

	res.FromResult(name, model.OperationPushRates, attempts, result)
	s.logOutcome(res)

	return res, nil
}

// PullBookings imports reservations created or changed since the last pull that applied cleanly.
// Imports are idempotent so overlapping windows are harmless; a pull with any failed booking
// leaves the cursor where it was and the reservations are offered again next time.
func (s *serviceImpl) PullBookings(ctx context.Context, name string) (res dto.SyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.PullBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p, err := s.provider(name)
	if err != nil {
		return res, err
	}

	since, err := s.pullSince(ctx, name)
	if err != nil {
		return res, err
	}

	mappings, err := s.activeMappings(ctx, name)
	if err != nil {
		return res, err
	}

	roomTypeByCode := make(map[string]string, len(mappings))
	for _, m := range mappings {
		roomTypeByCode[m.ExternalCode] = m.RoomTypeID
	}

	start := s.clock.Now()

	pulled, attempts := retry(ctx, s, func(ctx context.Context) provider.PullResult {
		return p.PullBookings(ctx, since)
	})

	res.FromResult(name, model.OperationPullBookings, attempts, pulled.SyncResult)

	if !pulled.Success {
		s.logOutcome(res)

		return res, nil
	}

	for _, booking := range pulled.Bookings {
		s.applyExternal(ctx, name, booking, roomTypeByCode, &res)
	}

	res.Success = len(res.Errors) == 0

	s.recordApplied(ctx, since, start, res)

	event := log.Info()
	if !res.Success {
		event = log.Warn().Strs("errors", res.Errors)
	}

	event.
		Str("provider", name).
		Int("imported", res.Imported).
		Int("cancelled", res.Cancelled).
		Int("skipped", res.Skipped).
		Msg("channel bookings pulled")

	return res, nil
}

// recordApplied stores the local outcome of a pull. Only clean runs move the cursor.
func (s *serviceImpl) recordApplied(ctx context.Context, since, start time.Time, res dto.SyncResponse) {
	request, _ := json.Marshal(map[string]time.Time{"since": since}) //nolint:errchkjson
	response, _ := json.Marshal(res)                                 //nolint:errchkjson

	payload := model.Payload{
		ID:         uuid.NewString(),
		Provider:   res.Provider,
		Operation:  model.OperationApplyBookings,
		Direction:  model.DirectionInbound,
		Request:    request,
		Response:   response,
		Success:    res.Success,
		DurationMs: s.clock.Now().Sub(start).Milliseconds(),
		CreatedAt:  start,
	}

	if !res.Success {
		msg := strings.Join(res.Errors, "; ")
		payload.Error = &msg
	}

	if err := s.payloadRepo.Insert(context.WithoutCancel(ctx), payload); err != nil {
		log.Error().Err(err).Str("provider", res.Provider).Msg("failed to record applied channel bookings")
	}
}

// roomMappings fetches the provider's own room list without changing local mappings.
func (s *serviceImpl) roomMappings(ctx context.Context, name string) (res dto.SyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.RoomMappings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p, err := s.provider(name)
	if err != nil {
		return res, err
	}

	result, attempts := retry(ctx, s, func(ctx context.Context) provider.MappingResult {
		return p.GetRoomMappings(ctx)
	})

	res.FromResult(name, model.OperationGetRoomMappings, attempts, result.SyncResult)
	res.Mappings = result.Mappings
	s.logOutcome(res)

	return res, nil
}

func (s *serviceImpl) applyExternal(ctx context.Context, name string, booking provider.ExternalBooking, roomTypeByCode map[string]string, res *dto.SyncResponse) {
	switch booking.Status {
	case provider.BookingStatusCancelled:
		cancelled, err := s.booking.CancelChannelBooking(ctx, name, booking.ExternalID)
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %s", booking.ExternalID, err.Error()))

			return
		}

		if cancelled {
			res.Cancelled++
		} else {
			res.Skipped++
		}
	case provider.BookingStatusConfirmed:
		roomTypeID, ok := roomTypeByCode[booking.ExternalRoomCode]
		if !ok {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unmapped room code %q", booking.ExternalID, booking.ExternalRoomCode))

			return
		}

		imported, err := s.booking.ImportChannelBooking(ctx, bookingDto.ImportBookingRequest{
			Source:            name,
			ExternalBookingID: booking.ExternalID,
			RoomTypeID:        roomTypeID,
			CheckIn:           booking.CheckIn,
			CheckOut:          booking.CheckOut,
			Guests:            booking.Guests,
			GuestName:         booking.Guest.Name,
			GuestEmail:        booking.Guest.Email,
			GuestPhone:        booking.Guest.Phone,
			TotalAmount:       booking.TotalAmount,
		})
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %s", booking.ExternalID, err.Error()))

			return
		}

		if imported.Created {
			res.Imported++
		} else {
			res.Skipped++
		}
	default:
		res.Skipped++
	}
}

func (s *serviceImpl) Trigger(ctx context.Context, name string, req dto.TriggerRequest) (res dto.SyncResponse, err error) {
	switch req.Operation {
	case model.OperationTestConnection:
		return s.TestConnection(ctx, name)
	case model.OperationPullBookings:
		return s.PullBookings(ctx, name)
	case model.OperationGetRoomMappings:
		return s.roomMappings(ctx, name)
	case model.OperationPushAvailability, model.OperationPushRates:
	default:
		return res, failure.BadRequestFromString(fmt.Sprintf("unsupported operation %q", req.Operation)) //nolint:wrapcheck
	}

	from, to, err := s.window(req.From, req.To)
	if err != nil {
		return res, err
	}

	if req.Operation == model.OperationPushRates {
		return s.PushRates(ctx, name, from, to)
	}

	return s.PushAvailability(ctx, name, from, to)
}

func (s *serviceImpl) SyncAll(ctx context.Context, operation string) []dto.SyncResponse {
	names := s.registry.Enabled()
	results := make([]dto.SyncResponse, 0, len(names))

	for _, name := range names {
		res, err := s.Trigger(ctx, name, dto.TriggerRequest{Operation: operation})
		if err != nil {
			log.Error().Err(err).Str("provider", name).Str("operation", operation).Msg("channel sync failed")

			res = dto.SyncResponse{Provider: name, Operation: operation, Errors: []string{err.Error()}}
		}

		results = append(results, res)
	}

	return results
}

// HandleBookingEvent pushes fresh availability for the booked room type and nights to every enabled provider.
func (s *serviceImpl) HandleBookingEvent(ctx context.Context, event bookingModel.Event) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.HandleBookingEvent")
	defer scope.End()

	checkIn, err := daterange.Parse(event.CheckIn)
	if err != nil {
		return fmt.Errorf("invalid check_in in booking event %s: %w", event.BookingID, err)
	}

	checkOut, err := daterange.Parse(event.CheckOut)
	if err != nil {
		return fmt.Errorf("invalid check_out in booking event %s: %w", event.BookingID, err)
	}

	var errs error

	for _, name := range s.registry.Enabled() {
		res, pushErr := s.PushAvailability(ctx, name, checkIn, checkOut, event.RoomTypeID)
		if pushErr != nil {
			errs = errors.CombineErrors(errs, errors.Wrapf(pushErr, "push availability to %s", name))

			continue
		}

		if !res.Success {
			errs = errors.CombineErrors(errs, errors.Newf("push availability to %s: %s", name, strings.Join(res.Errors, "; ")))
		}
	}

	scope.TraceIfError(errs)

	return errs
}

func (s *serviceImpl) CreateMapping(ctx context.Context, req dto.CreateMappingRequest) (res dto.MappingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.CreateMapping")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.provider(req.Provider); err != nil {
		return res, err
	}

	exist, err := s.roomTypeRepo.Exist(ctx, shared.FilterByID(req.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", req.RoomTypeID).Msg("failed to check room type")

		return res, fmt.Errorf("failed to check room type: %w", err)
	}

	if !exist {
		return res, failure.NotFound(errRoomTypeMissing) //nolint:wrapcheck
	}

	mapping := req.ToModel(user)

	if err = s.mappingRepo.Insert(ctx, mapping); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict(errMappingExists) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create channel mapping")

		return res, fmt.Errorf("failed to create channel mapping: %w", err)
	}

	res.FromModel(mapping)

	return res, nil
}

func (s *serviceImpl) UpdateMapping(ctx context.Context, req dto.UpdateMappingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.UpdateMapping")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.findMapping(ctx, id); err != nil {
		return err
	}

	if err = s.mappingRepo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.MappingTableName)); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return failure.Conflict(errMappingExists) //nolint:wrapcheck
		}

		log.Error().Err(err).Str("id", id).Msg("failed to update channel mapping")

		return fmt.Errorf("failed to update channel mapping: %w", err)
	}

	return nil
}

func (s *serviceImpl) DeleteMapping(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.DeleteMapping")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.findMapping(ctx, id); err != nil {
		return err
	}

	if err = s.mappingRepo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.MappingTableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete channel mapping")

		return fmt.Errorf("failed to delete channel mapping: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetMappings(ctx context.Context, params gDto.QueryParams, req dto.GetMappingsRequest) (res dto.GetMappingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.GetMappings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByFields(model.MappingTableName, map[string]any{
		model.FieldProvider:   req.Provider,
		model.FieldRoomTypeID: req.RoomTypeID,
	})

	total, err := s.mappingRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count channel mappings")

		return res, fmt.Errorf("failed to count channel mappings: %w", err)
	}

	mappings, err := s.mappingRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get channel mappings")

		return res, fmt.Errorf("failed to get channel mappings: %w", err)
	}

	res.FromModels(mappings, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) GetSyncLogs(ctx context.Context, params gDto.QueryParams, req dto.GetSyncLogsRequest) (res dto.GetSyncLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.GetSyncLogs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	fields := map[string]any{
		model.FieldProvider:  req.Provider,
		model.FieldOperation: req.Operation,
	}
	if req.Success != nil {
		fields[model.FieldSuccess] = *req.Success
	}

	filter := shared.FilterByFields(model.PayloadTableName, fields)

	if params.SortBy == constant.Empty {
		params.SortBy = model.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	total, err := s.payloadRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sync logs")

		return res, fmt.Errorf("failed to count sync logs: %w", err)
	}

	logs, err := s.payloadRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sync logs")

		return res, fmt.Errorf("failed to get sync logs: %w", err)
	}

	res.FromModels(logs, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) provider(name string) (provider.Provider, error) {
	p, err := s.registry.Get(name)
	if err == nil {
		return p, nil
	}

	if errors.Is(err, provider.ErrDisabled) {
		return nil, failure.BadRequest(err) //nolint:wrapcheck
	}

	return nil, failure.NotFound(errUnknownProvider) //nolint:wrapcheck
}

func (s *serviceImpl) findMapping(ctx context.Context, id string) error {
	mapping, err := s.mappingRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.MappingTableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get channel mapping")

		return fmt.Errorf("failed to get channel mapping: %w", err)
	}

	if mapping.ID == constant.Empty {
		return failure.NotFound(errMappingNotFound) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) activeMappings(ctx context.Context, name string, roomTypeIDs ...string) ([]model.Mapping, error) {
	filter := shared.FilterByFields(model.MappingTableName, map[string]any{
		model.FieldProvider: name,
		model.FieldActive:   true,
	})

	if len(roomTypeIDs) > 0 {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldRoomTypeID,
			Value:    roomTypeIDs,
			Operator: gDto.FilterOperatorIn,
			Table:    model.MappingTableName,
		})
	}

	mappings, err := s.mappingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("provider", name).Msg("failed to get channel mappings")

		return nil, fmt.Errorf("failed to get channel mappings: %w", err)
	}

	return mappings, nil
}

func (s *serviceImpl) pullSince(ctx context.Context, name string) (time.Time, error) {
	last, ok, err := s.payloadRepo.LastSuccess(ctx, name, model.OperationApplyBookings)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last pull: %w", err)
	}

	if ok {
		return last, nil
	}

	hours := s.cfg.Channel.PullLookbackHours
	if hours <= 0 {
		hours = defaultLookbackHours
	}

	return s.clock.Now().Add(-time.Duration(hours) * time.Hour), nil
}

// window defaults to today through the configured push horizon.
func (s *serviceImpl) window(fromValue, toValue string) (time.Time, time.Time, error) {
	from := daterange.Day(s.clock.Now())

	if fromValue != constant.Empty {
		parsed, err := daterange.Parse(fromValue)
		if err != nil {
			return from, from, failure.BadRequest(err) //nolint:wrapcheck
		}

		from = parsed
	}

	days := s.cfg.Channel.PushWindowDays
	if days <= 0 {
		days = defaultPushWindowDays
	}

	to := from.AddDate(0, 0, days)

	if toValue != constant.Empty {
		parsed, err := daterange.Parse(toValue)
		if err != nil {
			return from, to, failure.BadRequest(err) //nolint:wrapcheck
		}

		to = parsed
	}

	return from, to, nil
}

func (s *serviceImpl) logOutcome(res dto.SyncResponse) {
	event := log.Info()
	if !res.Success {
		event = log.Warn().Strs("errors", res.Errors)
	}

	event.
		Str("provider", res.Provider).
		Str("operation", res.Operation).
		Int("attempts", res.Attempts).
		Int("items", res.ItemsProcessed).
		Msg("channel sync finished")
}

func (s *serviceImpl) currency() string {
	if s.cfg.Booking.Currency == constant.Empty {
		return defaultCurrency
	}

	return s.cfg.Booking.Currency
}

// retry repeats op with exponential backoff while its result is a retryable failure.
// It returns the last result and the number of attempts made.
func retry[T provider.Outcome](ctx context.Context, s *serviceImpl, op func(ctx context.Context) T) (T, int) {
	maxRetries := s.cfg.Channel.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = defaultRetryInitial
	policy.MaxInterval = defaultRetryMax

	if s.cfg.Channel.RetryInitialMillis > 0 {
		policy.InitialInterval = time.Duration(s.cfg.Channel.RetryInitialMillis) * time.Millisecond
	}

	var (
		last     T
		attempts int
	)

	// The last result carries the failure, so the returned error adds nothing.
	_, _ = backoff.Retry(ctx, func() (struct{}, error) {
		attempts++
		last = op(ctx)

		outcome := last.Outcome()
		if outcome.Success {
			return struct{}{}, nil
		}

		failed := errors.Newf("%s", strings.Join(outcome.Errors, "; "))
		if !outcome.Retryable {
			return struct{}{}, backoff.Permanent(failed)
		}

		return struct{}{}, failed
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(maxRetries+1)), //nolint:gosec
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn().Err(err).Int("attempt", attempts).Dur("next", next).Msg("retrying channel call")
		}),
	)

	return last, attempts
}

func roomTypeIDsOf(mappings []model.Mapping) []string {
	ids := make([]string, len(mappings))
	for i, m := range mappings {
		ids[i] = m.RoomTypeID
	}

	return ids
}

// availabilityUpdates emits one update per mapping and night. Nights without inventory are pushed as closed.
func availabilityUpdates(mappings []model.Mapping, rows []inventoryModel.Inventory, nights []time.Time) []provider.AvailabilityUpdate {
	byKey := make(map[string]inventoryModel.Inventory, len(rows))
	for _, row := range rows {
		byKey[row.RoomTypeID+"|"+daterange.Format(row.Date)] = row
	}

	updates := make([]provider.AvailabilityUpdate, 0, len(mappings)*len(nights))

	for _, m := range mappings {
		for _, night := range nights {
			available := 0
			if row, ok := byKey[m.RoomTypeID+"|"+daterange.Format(night)]; ok {
				available = row.Available()
			}

			updates = append(updates, provider.AvailabilityUpdate{
				RoomTypeID:       m.RoomTypeID,
				ExternalRoomCode: m.ExternalCode,
				Date:             night,
				Available:        available,
			})
		}
	}

	return updates
}

func rateUpdates(mappings []model.Mapping, roomTypes []roomTypeModel.RoomType, nights []time.Time, currency string) []provider.RateUpdate {
	rates := make(map[string]int64, len(roomTypes))
	for _, rt := range roomTypes {
		if rt.Active {
			rates[rt.ID] = rt.BaseRate
		}
	}

	updates := make([]provider.RateUpdate, 0, len(mappings)*len(nights))

	for _, m := range mappings {
		rate, ok := rates[m.RoomTypeID]
		if !ok {
			continue
		}

		for _, night := range nights {
			updates = append(updates, provider.RateUpdate{
				RoomTypeID:       m.RoomTypeID,
				ExternalRoomCode: m.ExternalCode,
				Date:             night,
				Amount:           rate,
				Currency:         currency,
			})
		}
	}

	return updates
}
