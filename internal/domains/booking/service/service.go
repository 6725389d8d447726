package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hotelbook/config"
	"hotelbook/infras/kafka"
	"hotelbook/infras/otel"
	"hotelbook/infras/razorpay"
	availabilityService "hotelbook/internal/domains/availability/service"
	"hotelbook/internal/domains/booking/model"
	"hotelbook/internal/domains/booking/model/dto"
	"hotelbook/internal/domains/booking/repository"
	inventoryRepo "hotelbook/internal/domains/inventory/repository"
	loyaltyService "hotelbook/internal/domains/loyalty/service"
	"hotelbook/internal/domains/pricing"
	roomTypeModel "hotelbook/internal/domains/roomtype/model"
	roomTypeRepo "hotelbook/internal/domains/roomtype/repository"
	"hotelbook/shared"
	"hotelbook/shared/cache"
	"hotelbook/shared/clock"
	"hotelbook/shared/constant"
	"hotelbook/shared/daterange"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
	gRepo "hotelbook/shared/repository"
	"hotelbook/shared/timezone"
	"hotelbook/shared/transaction"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	defaultEarnDivisor = 10000
	defaultCheckInHour = 14

	topicConfirmed = "booking.confirmed"
	topicCancelled = "booking.cancelled"

	errBookingNotFound  = "booking not found"
	errRoomTypeNotFound = "room type not found"
	errAlreadyCancelled = "booking is already cancelled"
	errSoldOut          = "room type is sold out for the selected dates"
	errInactiveRoomType = "room type is not available for booking"
	errOrderIDRequired  = "order_id is required"
	errExternalRequired = "source and external booking id are required"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	ConfirmPayment(ctx context.Context, orderID, paymentID string) (dto.BookingResponse, error)
	HandlePaymentWebhook(ctx context.Context, body []byte, signature string) (dto.WebhookResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, req dto.GetBookingsRequest) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	ImportChannelBooking(ctx context.Context, req dto.ImportBookingRequest) (dto.ImportBookingResponse, error)
	CancelChannelBooking(ctx context.Context, source, externalID string) (bool, error)
}

type serviceImpl struct {
	repo          repository.Booking
	roomTypeRepo  roomTypeRepo.RoomType
	inventoryRepo inventoryRepo.Inventory
	availability  availabilityService.Availability
	loyalty       loyaltyService.Loyalty
	gateway       razorpay.Gateway
	txManager     transaction.Manager
	kafka         kafka.Client
	clock         clock.Clock
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Booking,
	roomTypeRepo roomTypeRepo.RoomType,
	inventoryRepo inventoryRepo.Inventory,
	availability availabilityService.Availability,
	loyalty loyaltyService.Loyalty,
	gateway razorpay.Gateway,
	txManager transaction.Manager,
	kafka kafka.Client,
	clock clock.Clock,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		roomTypeRepo:  roomTypeRepo,
		inventoryRepo: inventoryRepo,
		availability:  availability,
		loyalty:       loyalty,
		gateway:       gateway,
		txManager:     txManager,
		kafka:         kafka,
		clock:         clock,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	if err = daterange.Validate(checkIn, checkOut); err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	roomType, err := s.getRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return res, err
	}

	if !roomType.Active {
		return res, failure.BadRequestFromString(errInactiveRoomType) //nolint:wrapcheck
	}

	if req.Guests > roomType.Capacity {
		return res, failure.BadRequestFromString(fmt.Sprintf("guests must not exceed the room capacity of %d", roomType.Capacity)) //nolint:wrapcheck
	}

	breakdown, err := pricing.Compute(roomType.BaseRate, len(daterange.Nights(checkIn, checkOut)))
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	_, ok, err := s.availability.Check(ctx, roomType, checkIn, checkOut, req.Guests)
	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomType.ID).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	if !ok {
		return res, failure.Conflict(errSoldOut) //nolint:wrapcheck
	}

	id := uuid.NewString()

	order, err := s.gateway.CreateOrder(ctx, breakdown.Total, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to create payment order")

		return res, err //nolint:wrapcheck
	}

	booking := req.ToModel(id, actor(ctx), checkIn, checkOut, breakdown)
	booking.PaymentOrderID = &order.ID

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Str("booking_id", id).Str("order_id", order.ID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().Str("booking_id", id).Str("order_id", order.ID).Int64("total", breakdown.Total).Msg("booking created")

	res.Booking.FromModel(booking)
	res.PaymentOrder.FromOrder(order)

	return res, nil
}

func (s *serviceImpl) ConfirmPayment(ctx context.Context, orderID, paymentID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ConfirmPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(orderID) == constant.Empty {
		return res, failure.BadRequestFromString(errOrderIDRequired) //nolint:wrapcheck
	}

	var (
		booking model.Booking
		changed bool
	)

	filter := shared.FilterByID(orderID, model.FieldPaymentOrderID, model.TableName)

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var txErr error

		booking, txErr = s.repo.GetForUpdateTx(ctx, tx, filter)
		if txErr != nil {
			log.Error().Err(txErr).Str("order_id", orderID).Msg("failed to lock booking")

			return fmt.Errorf("failed to lock booking: %w", txErr)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound(errBookingNotFound) //nolint:wrapcheck
		}

		switch booking.Status {
		case model.StatusPaid:
			log.Info().Str("booking_id", booking.ID).Msg("payment already confirmed")

			return nil
		case model.StatusCancelled:
			return failure.Conflict("booking was cancelled before payment was confirmed") //nolint:wrapcheck
		}

		if txErr = s.markPaid(ctx, tx, &booking, paymentID); txErr != nil {
			return txErr
		}

		changed = true

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if changed {
		s.afterCommit(ctx, booking, s.topic(s.cfg.Kafka.Topics.BookingConfirmed, topicConfirmed))
	}

	res.FromModel(booking)

	return res, nil
}

// markPaid moves the booking to PAID, awards points and books the inventory, all on tx.
func (s *serviceImpl) markPaid(ctx context.Context, tx *sqlx.Tx, booking *model.Booking, paymentID string) error {
	update := shared.TransformFields(struct {
		Status    model.Status `db:"status"`
		PaymentID string       `db:"payment_id"`
	}{model.StatusPaid, paymentID}, actor(ctx))

	if err := s.repo.UpdateTx(ctx, tx, update, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to mark booking paid")

		return fmt.Errorf("failed to mark booking paid: %w", err)
	}

	booking.Status = model.StatusPaid
	booking.PaymentID = &paymentID

	if booking.UserID != nil {
		points := booking.TotalAmount / s.earnDivisor()

		if err := s.loyalty.EarnTx(ctx, tx, *booking.UserID, booking.ID, points); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to award loyalty points")

			return fmt.Errorf("failed to award loyalty points: %w", err)
		}
	}

	return s.shiftInventory(ctx, tx, *booking, 1)
}

func (s *serviceImpl) shiftInventory(ctx context.Context, tx *sqlx.Tx, booking model.Booking, delta int) error {
	nights := booking.Nights()

	affected, err := s.inventoryRepo.IncrementBookedTx(ctx, tx, booking.RoomTypeID, nights, delta)
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Int("delta", delta).Msg("failed to update inventory")

		return fmt.Errorf("failed to update inventory: %w", err)
	}

	if affected < int64(len(nights)) {
		log.Warn().Str("booking_id", booking.ID).Int64("rows", affected).Int("nights", len(nights)).
			Msg("inventory rows missing for booked dates")
	}

	return nil
}

func (s *serviceImpl) HandlePaymentWebhook(ctx context.Context, body []byte, signature string) (res dto.WebhookResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.HandlePaymentWebhook")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.gateway.VerifyWebhookSignature(body, signature); err != nil {
		log.Warn().Err(err).Msg("rejected payment webhook")

		return res, err //nolint:wrapcheck
	}

	var event razorpay.WebhookEvent
	if err = json.Unmarshal(body, &event); err != nil {
		return res, failure.BadRequestFromString("invalid webhook payload") //nolint:wrapcheck
	}

	if event.Event != razorpay.EventPaymentCaptured {
		log.Info().Str("event", event.Event).Msg("ignoring payment webhook event")

		return dto.WebhookResponse{Status: dto.WebhookStatusIgnored}, nil
	}

	payment := event.Payload.Payment.Entity

	if strings.TrimSpace(payment.OrderID) == constant.Empty {
		log.Warn().Str("payment_id", payment.ID).Msg("captured payment without order id")

		return dto.WebhookResponse{Status: dto.WebhookStatusIgnored}, nil
	}

	booking, err := s.ConfirmPayment(ctx, payment.OrderID, payment.ID)
	if err != nil {
		if failure.IsCode(err, http.StatusConflict) {
			log.Warn().Str("order_id", payment.OrderID).Msg("payment captured for a cancelled booking")

			return dto.WebhookResponse{Status: dto.WebhookStatusIgnored}, nil
		}

		return res, err
	}

	res = dto.WebhookResponse{Status: dto.WebhookStatusConfirmed, BookingID: booking.ID}

	if payment.Amount != booking.Pricing.Total {
		log.Warn().Str("booking_id", booking.ID).Str("payment_id", payment.ID).
			Int64("captured", payment.Amount).Int64("expected", booking.Pricing.Total).
			Msg("captured amount differs from booking total")

		res.AmountMismatch = true
	}

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var booking model.Booking

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var txErr error

		booking, txErr = s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if txErr != nil {
			log.Error().Err(txErr).Str("booking_id", id).Msg("failed to lock booking")

			return fmt.Errorf("failed to lock booking: %w", txErr)
		}

		if booking.ID == constant.Empty || !visible(ctx, booking) {
			return failure.NotFound(errBookingNotFound) //nolint:wrapcheck
		}

		checkInAt := timezone.At(booking.CheckIn, s.checkInHour())
		refund := model.RefundAmount(booking.TotalAmount, s.clock.Now(), checkInAt)

		return s.cancel(ctx, tx, &booking, refund)
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.afterCommit(ctx, booking, s.topic(s.cfg.Kafka.Topics.BookingCancelled, topicCancelled))

	res.FromModel(booking)

	return res, nil
}

// cancel marks the locked booking cancelled and releases its inventory when it had been paid.
func (s *serviceImpl) cancel(ctx context.Context, tx *sqlx.Tx, booking *model.Booking, refund int64) error {
	if !booking.Status.CanTransitionTo(model.StatusCancelled) {
		return failure.Conflict(errAlreadyCancelled) //nolint:wrapcheck
	}

	wasPaid := booking.Status == model.StatusPaid
	now := s.clock.Now()

	update := shared.TransformFields(struct {
		Status      model.Status `db:"status"`
		CancelledAt time.Time    `db:"cancelled_at"`
	}{model.StatusCancelled, now}, actor(ctx))
	update[model.FieldRefundAmount] = refund

	if err := s.repo.UpdateTx(ctx, tx, update, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = model.StatusCancelled
	booking.RefundAmount = &refund
	booking.CancelledAt = &now

	if wasPaid {
		return s.shiftInventory(ctx, tx, *booking, -1)
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || !visible(ctx, booking) {
		return res, failure.NotFound(errBookingNotFound) //nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, req dto.GetBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByFields(model.TableName, map[string]any{
		model.FieldStatus:     req.Status,
		model.FieldRoomTypeID: req.RoomTypeID,
		model.FieldSource:     req.Source,
	})

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("login required") //nolint:wrapcheck
	}

	return s.list(ctx, params, shared.FilterByFields(model.TableName, map[string]any{model.FieldUserID: userID}))
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	if params.SortBy == constant.Empty {
		params.SortBy = model.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

// ImportChannelBooking stores a confirmed channel reservation once per (source, external id).
func (s *serviceImpl) ImportChannelBooking(ctx context.Context, req dto.ImportBookingRequest) (res dto.ImportBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ImportChannelBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := externalFilter(req.Source, req.ExternalBookingID)
	if err != nil {
		return res, err
	}

	existing, err := s.repo.Get(ctx, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Str("external_id", req.ExternalBookingID).Msg("failed to look up channel booking")

		return res, fmt.Errorf("failed to look up channel booking: %w", err)
	}

	if existing.ID != constant.Empty {
		return dto.ImportBookingResponse{BookingID: existing.ID}, nil
	}

	if err = daterange.Validate(req.CheckIn, req.CheckOut); err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	roomType, err := s.getRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return res, err
	}

	breakdown, err := pricing.Compute(roomType.BaseRate, len(daterange.Nights(req.CheckIn, req.CheckOut)))
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	booking := req.ToModel(uuid.NewString(), breakdown)

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if txErr := s.repo.InsertTx(ctx, tx, booking); txErr != nil {
			return txErr //nolint:wrapcheck
		}

		return s.shiftInventory(ctx, tx, booking, 1)
	})
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			log.Info().Str("external_id", req.ExternalBookingID).Msg("channel booking imported concurrently")

			existing, err = s.repo.Get(ctx, filter, model.FieldID)
			if err != nil {
				return res, fmt.Errorf("failed to look up channel booking: %w", err)
			}

			return dto.ImportBookingResponse{BookingID: existing.ID}, nil
		}

		log.Error().Err(err).Str("external_id", req.ExternalBookingID).Msg("failed to import channel booking")

		return res, fmt.Errorf("failed to import channel booking: %w", err)
	}

	log.Info().Str("booking_id", booking.ID).Str("source", req.Source).Str("external_id", req.ExternalBookingID).
		Msg("channel booking imported")

	s.afterCommit(ctx, booking, s.topic(s.cfg.Kafka.Topics.BookingConfirmed, topicConfirmed))

	return dto.ImportBookingResponse{BookingID: booking.ID, Created: true}, nil
}

// CancelChannelBooking reports false when the booking is unknown or already cancelled.
func (s *serviceImpl) CancelChannelBooking(ctx context.Context, source, externalID string) (cancelled bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CancelChannelBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := externalFilter(source, externalID)
	if err != nil {
		return false, err
	}

	var booking model.Booking

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var txErr error

		booking, txErr = s.repo.GetForUpdateTx(ctx, tx, filter)
		if txErr != nil {
			return fmt.Errorf("failed to lock channel booking: %w", txErr)
		}

		if booking.ID == constant.Empty || booking.Status == model.StatusCancelled {
			return nil
		}

		if txErr = s.cancel(ctx, tx, &booking, 0); txErr != nil {
			return txErr
		}

		cancelled = true

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("source", source).Str("external_id", externalID).Msg("failed to cancel channel booking")

		return false, err //nolint:wrapcheck
	}

	if cancelled {
		s.afterCommit(ctx, booking, s.topic(s.cfg.Kafka.Topics.BookingCancelled, topicCancelled))
	}

	return cancelled, nil
}

func (s *serviceImpl) getRoomType(ctx context.Context, id string) (roomTypeModel.RoomType, error) {
	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(id, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", id).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return roomType, failure.NotFound(errRoomTypeNotFound) //nolint:wrapcheck
	}

	return roomType, nil
}

// afterCommit drops cached availability and publishes the booking event. Failures are logged only.
func (s *serviceImpl) afterCommit(ctx context.Context, booking model.Booking, topic string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.BumpGeneration(c, s.cache, constant.CacheAvailabilityGeneration, constant.CacheAvailabilitySearch)
	}()

	msg := kafka.Message{Key: booking.ID, Value: booking.ToEvent(s.clock.Now())}

	if err := s.kafka.SendMessages(ctx, topic, msg); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Str("topic", topic).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) topic(configured, fallback string) string {
	if configured != constant.Empty {
		return configured
	}

	return fallback
}

func (s *serviceImpl) earnDivisor() int64 {
	if s.cfg.Loyalty.EarnDivisor > 0 {
		return s.cfg.Loyalty.EarnDivisor
	}

	return defaultEarnDivisor
}

func (s *serviceImpl) checkInHour() int {
	if s.cfg.Booking.CheckInHour > 0 {
		return s.cfg.Booking.CheckInHour
	}

	return defaultCheckInHour
}

// externalFilter matches exactly one channel booking; both keys are mandatory.
func externalFilter(source, externalID string) (gDto.FilterGroup, error) {
	if strings.TrimSpace(source) == constant.Empty || strings.TrimSpace(externalID) == constant.Empty {
		return gDto.FilterGroup{}, failure.BadRequestFromString(errExternalRequired) //nolint:wrapcheck
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldSource, Value: source, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldExternalBookingID, Value: externalID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}, nil
}

func actor(ctx context.Context) string {
	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != constant.Empty {
		return user
	}

	return constant.ContextGuest
}

// visible hides other guests' bookings from users without an administrative role.
func visible(ctx context.Context, booking model.Booking) bool {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleUser {
		return true
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return booking.OwnedBy(userID)
}
