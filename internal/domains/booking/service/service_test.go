package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelbook/config"
	kafkaMocks "hotelbook/infras/kafka/mocks"
	otelMocks "hotelbook/infras/otel/mocks"
	"hotelbook/infras/razorpay"
	razorpayMocks "hotelbook/infras/razorpay/mocks"
	availabilityMocks "hotelbook/internal/domains/availability/mocks"
	availabilityModel "hotelbook/internal/domains/availability/model"
	"hotelbook/internal/domains/booking/mocks"
	"hotelbook/internal/domains/booking/model"
	"hotelbook/internal/domains/booking/model/dto"
	"hotelbook/internal/domains/booking/service"
	inventoryMocks "hotelbook/internal/domains/inventory/mocks"
	loyaltyMocks "hotelbook/internal/domains/loyalty/mocks"
	roomTypeMocks "hotelbook/internal/domains/roomtype/mocks"
	roomTypeModel "hotelbook/internal/domains/roomtype/model"
	cacheMocks "hotelbook/shared/cache/mocks"
	"hotelbook/shared/clock"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
	"hotelbook/shared/timezone"
	txMocks "hotelbook/shared/transaction/mocks"
)

var (
	checkIn  = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	repo         *mocks.MockBooking
	roomTypes    *roomTypeMocks.MockRoomType
	inventory    *inventoryMocks.MockInventory
	availability *availabilityMocks.MockAvailability
	loyalty      *loyaltyMocks.MockLoyalty
	gateway      *razorpayMocks.MockGateway
	tx           *txMocks.MockManager
	kafka        *kafkaMocks.MockClient
	cache        *cacheMocks.MockRedisCache
	clock        *clock.Mock
	svc          service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:         mocks.NewMockBooking(ctrl),
		roomTypes:    roomTypeMocks.NewMockRoomType(ctrl),
		inventory:    inventoryMocks.NewMockInventory(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		loyalty:      loyaltyMocks.NewMockLoyalty(ctrl),
		gateway:      razorpayMocks.NewMockGateway(ctrl),
		tx:           txMocks.NewMockManager(ctrl),
		kafka:        kafkaMocks.NewMockClient(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
		clock:        clock.NewMock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
	}

	f.cache.EXPECT().Increment(gomock.Any(), "availability:generation", gomock.Any()).Return(int64(1), nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.roomTypes, f.inventory, f.availability, f.loyalty, f.gateway,
		f.tx, f.kafka, f.clock, &config.Config{}, f.cache, otelMocks.NewOtel())

	return f
}

func (f *fixture) expectTx() {
	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, *sqlx.Tx) error) error {
			return fn(ctx, nil)
		})
}

func suite() roomTypeModel.RoomType {
	return roomTypeModel.RoomType{ID: "rt-1", Name: "Deluxe", BaseRate: 500000, Capacity: 2, Active: true}
}

func userCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)
}

func pendingBooking() model.Booking {
	userID := "user-1"
	orderID := "order_1"

	return model.Booking{
		ID:             "booking-1",
		UserID:         &userID,
		RoomTypeID:     "rt-1",
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Guests:         2,
		TotalAmount:    1238000,
		Status:         model.StatusPending,
		PaymentOrderID: &orderID,
		Source:         model.SourceDirect,
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomTypeID: "rt-1",
		CheckIn:    "2026-03-10",
		CheckOut:   "2026-03-12",
		Guests:     2,
		GuestName:  "Asha",
		GuestEmail: "asha@example.com",
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("creates pending booking with payment order", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite(), nil)
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any(), checkIn, checkOut, 2).
			Return(availabilityModel.AvailableRoom{Available: 1}, true, nil)
		f.gateway.EXPECT().CreateOrder(gomock.Any(), int64(1238000), gomock.Any()).
			Return(razorpay.Order{ID: "order_1", Amount: 1238000, Currency: "INR"}, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b model.Booking) error {
				assert.Equal(t, model.StatusPending, b.Status)
				require.NotNil(t, b.PaymentOrderID)
				assert.Equal(t, "order_1", *b.PaymentOrderID)
				require.NotNil(t, b.UserID)
				assert.Equal(t, "user-1", *b.UserID)
				assert.Equal(t, int64(1000000), b.RoomTotal)
				assert.Equal(t, int64(100000), b.ServiceCharge)
				assert.Equal(t, int64(120000), b.TaxOnRoom)
				assert.Equal(t, int64(18000), b.TaxOnService)
				assert.Equal(t, int64(1238000), b.TotalAmount)

				return nil
			})

		res, err := f.svc.Create(userCtx("user-1"), createRequest())
		require.NoError(t, err)
		assert.Equal(t, "PENDING", res.Booking.Status)
		assert.Equal(t, "order_1", res.PaymentOrder.ID)
		assert.Equal(t, 2, res.Booking.Pricing.Nights)
	})

	t.Run("check out before check in", func(t *testing.T) {
		f := newFixture(t)

		req := createRequest()
		req.CheckOut = "2026-03-10"

		_, err := f.svc.Create(context.Background(), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, "check_out must be after check_in")
	})

	t.Run("too many guests", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite(), nil)

		req := createRequest()
		req.Guests = 3

		_, err := f.svc.Create(context.Background(), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("inactive room type", func(t *testing.T) {
		f := newFixture(t)

		inactive := suite()
		inactive.Active = false
		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)

		_, err := f.svc.Create(context.Background(), createRequest())
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown room type", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{}, nil)

		_, err := f.svc.Create(context.Background(), createRequest())
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("sold out skips the gateway", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite(), nil)
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(availabilityModel.AvailableRoom{}, false, nil)

		_, err := f.svc.Create(context.Background(), createRequest())
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("gateway failure persists nothing", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite(), nil)
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(availabilityModel.AvailableRoom{Available: 1}, true, nil)
		f.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(razorpay.Order{}, failure.ExternalService("payment gateway unavailable"))

		_, err := f.svc.Create(context.Background(), createRequest())
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}

func TestBookingService_ConfirmPayment(t *testing.T) {
	t.Run("marks paid, awards points and books every night", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (model.Booking, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, map[string]any{model.FieldPaymentOrderID: "order_1"}, args)

				return pendingBooking(), nil
			})
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusPaid, req[model.FieldStatus])
				assert.Equal(t, "pay_1", req[model.FieldPaymentID])

				return nil
			})
		f.loyalty.EXPECT().EarnTx(gomock.Any(), gomock.Any(), "user-1", "booking-1", int64(123)).Return(nil)
		f.inventory.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), "rt-1", gomock.Len(2), 1).Return(int64(2), nil)
		f.kafka.EXPECT().SendMessages(gomock.Any(), "booking.confirmed", gomock.Any()).Return(nil)

		res, err := f.svc.ConfirmPayment(context.Background(), "order_1", "pay_1")
		require.NoError(t, err)
		assert.Equal(t, "PAID", res.Status)
		require.NotNil(t, res.PaymentID)
		assert.Equal(t, "pay_1", *res.PaymentID)
	})

	t.Run("already paid is a no-op", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		paid := pendingBooking()
		paid.Status = model.StatusPaid
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(paid, nil)

		res, err := f.svc.ConfirmPayment(context.Background(), "order_1", "pay_1")
		require.NoError(t, err)
		assert.Equal(t, "PAID", res.Status)
	})

	t.Run("cancelled booking conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		cancelled := pendingBooking()
		cancelled.Status = model.StatusCancelled
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cancelled, nil)

		_, err := f.svc.ConfirmPayment(context.Background(), "order_1", "pay_1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.ConfirmPayment(context.Background(), "order_x", "pay_1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("blank order id is rejected before any lookup", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ConfirmPayment(context.Background(), " ", "pay_1")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("inventory failure rolls back", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.loyalty.EXPECT().EarnTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.inventory.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("db down"))

		_, err := f.svc.ConfirmPayment(context.Background(), "order_1", "pay_1")
		assert.Error(t, err)
	})

	t.Run("guest checkout earns nothing", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		guest := pendingBooking()
		guest.UserID = nil
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(guest, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.inventory.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 1).Return(int64(2), nil)
		f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := f.svc.ConfirmPayment(context.Background(), "order_1", "pay_1")
		assert.NoError(t, err)
	})
}

func webhookBody(t *testing.T, event string) []byte {
	t.Helper()

	return capturedBody(t, event, "order_1", 1238000)
}

func capturedBody(t *testing.T, event, orderID string, amount int64) []byte {
	t.Helper()

	var payload razorpay.WebhookEvent
	payload.Event = event
	payload.Payload.Payment.Entity.ID = "pay_1"
	payload.Payload.Payment.Entity.OrderID = orderID
	payload.Payload.Payment.Entity.Amount = amount

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return body
}

func TestBookingService_HandlePaymentWebhook(t *testing.T) {
	t.Run("bad signature", func(t *testing.T) {
		f := newFixture(t)

		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), "bad").Return(failure.Unauthorized("invalid webhook signature"))

		_, err := f.svc.HandlePaymentWebhook(context.Background(), webhookBody(t, razorpay.EventPaymentCaptured), "bad")
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("other events are ignored", func(t *testing.T) {
		f := newFixture(t)

		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.HandlePaymentWebhook(context.Background(), webhookBody(t, "payment.failed"), "sig")
		require.NoError(t, err)
		assert.Equal(t, dto.WebhookStatusIgnored, res.Status)
	})

	t.Run("captured payment confirms booking", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.loyalty.EXPECT().EarnTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.inventory.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 1).Return(int64(2), nil)
		f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.HandlePaymentWebhook(context.Background(), webhookBody(t, razorpay.EventPaymentCaptured), "sig")
		require.NoError(t, err)
		assert.Equal(t, dto.WebhookResponse{Status: dto.WebhookStatusConfirmed, BookingID: "booking-1"}, res)
	})

	t.Run("captured payment without order id is ignored", func(t *testing.T) {
		f := newFixture(t)

		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.HandlePaymentWebhook(context.Background(), capturedBody(t, razorpay.EventPaymentCaptured, "", 1238000), "sig")
		require.NoError(t, err)
		assert.Equal(t, dto.WebhookResponse{Status: dto.WebhookStatusIgnored}, res)
	})

	t.Run("captured amount differing from the total is flagged", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.loyalty.EXPECT().EarnTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.inventory.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 1).Return(int64(2), nil)
		f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.HandlePaymentWebhook(context.Background(), capturedBody(t, razorpay.EventPaymentCaptured, "order_1", 100000), "sig")
		require.NoError(t, err)
		assert.Equal(t, dto.WebhookResponse{Status: dto.WebhookStatusConfirmed, BookingID: "booking-1", AmountMismatch: true}, res)
	})

	t.Run("captured payment for cancelled booking is acknowledged", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		cancelled := pendingBooking()
		cancelled.Status = model.StatusCancelled

		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cancelled, nil)

		res, err := f.svc.HandlePaymentWebhook(context.Background(), webhookBody(t, razorpay.EventPaymentCaptured), "sig")
		require.NoError(t, err)
		assert.Equal(t, dto.WebhookStatusIgnored, res.Status)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	checkInAt := timezone.At(checkIn, 14)

	tests := []struct {
		name       string
		now        time.Time
		status     model.Status
		wantRefund int64
	}{
		{"full refund exactly 24h before", checkInAt.Add(-24 * time.Hour), model.StatusPaid, 1238000},
		{"half refund at 23h59m", checkInAt.Add(-23*time.Hour - 59*time.Minute), model.StatusPaid, 619000},
		{"no refund after check-in", checkInAt.Add(time.Minute), model.StatusPaid, 0},
		{"pending booking cancels without releasing inventory", checkInAt.Add(-48 * time.Hour), model.StatusPending, 1238000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectTx()
			f.clock.Set(tt.now)

			booking := pendingBooking()
			booking.Status = tt.status

			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)
			f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, model.StatusCancelled, req[model.FieldStatus])
					assert.Equal(t, tt.wantRefund, req[model.FieldRefundAmount])

					return nil
				})

			if tt.status == model.StatusPaid {
				f.inventory.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), "rt-1", gomock.Len(2), -1).Return(int64(2), nil)
			}

			f.kafka.EXPECT().SendMessages(gomock.Any(), "booking.cancelled", gomock.Any()).Return(nil)

			res, err := f.svc.Cancel(userCtx("user-1"), "booking-1")
			require.NoError(t, err)
			assert.Equal(t, "CANCELLED", res.Status)
			require.NotNil(t, res.RefundAmount)
			assert.Equal(t, tt.wantRefund, *res.RefundAmount)
		})
	}
}

func TestBookingService_Cancel_Rejections(t *testing.T) {
	t.Run("already cancelled", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		cancelled := pendingBooking()
		cancelled.Status = model.StatusCancelled
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cancelled, nil)

		_, err := f.svc.Cancel(context.Background(), "booking-1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Cancel(context.Background(), "booking-x")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("another guest's booking", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)

		_, err := f.svc.Cancel(userCtx("user-2"), "booking-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil).Times(2)

	res, err := f.svc.Get(userCtx("user-1"), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, "booking-1", res.ID)

	_, err = f.svc.Get(userCtx("user-2"), "booking-1")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_GetMine(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{pendingBooking()}, nil)

	res, err := f.svc.GetMine(userCtx("user-1"), gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.Bookings, 1)

	_, err = f.svc.GetMine(context.Background(), gDto.QueryParams{})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func importRequest() dto.ImportBookingRequest {
	return dto.ImportBookingRequest{
		Source:            "makemytrip",
		ExternalBookingID: "MMT-1",
		RoomTypeID:        "rt-1",
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		Guests:            2,
		GuestName:         "Ravi",
		GuestEmail:        "ravi@example.com",
		TotalAmount:       1100000,
	}
}

func TestBookingService_ImportChannelBooking(t *testing.T) {
	t.Run("imports unseen booking as paid", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.Booking{}, nil)
		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite(), nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, b model.Booking) error {
				assert.Equal(t, model.StatusPaid, b.Status)
				assert.Equal(t, "makemytrip", b.Source)
				require.NotNil(t, b.ExternalBookingID)
				assert.Equal(t, "MMT-1", *b.ExternalBookingID)
				assert.Equal(t, int64(1100000), b.TotalAmount)
				assert.Nil(t, b.UserID)

				return nil
			})
		f.inventory.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), "rt-1", gomock.Len(2), 1).Return(int64(2), nil)
		f.kafka.EXPECT().SendMessages(gomock.Any(), "booking.confirmed", gomock.Any()).Return(nil)

		res, err := f.svc.ImportChannelBooking(context.Background(), importRequest())
		require.NoError(t, err)
		assert.True(t, res.Created)
		assert.NotEmpty(t, res.BookingID)
	})

	t.Run("known booking is skipped", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.Booking{ID: "booking-9"}, nil)

		res, err := f.svc.ImportChannelBooking(context.Background(), importRequest())
		require.NoError(t, err)
		assert.Equal(t, dto.ImportBookingResponse{BookingID: "booking-9"}, res)
	})

	t.Run("missing external id is rejected", func(t *testing.T) {
		f := newFixture(t)

		req := importRequest()
		req.ExternalBookingID = ""

		_, err := f.svc.ImportChannelBooking(context.Background(), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("concurrent import resolves to the stored booking", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		gomock.InOrder(
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.Booking{}, nil),
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.Booking{ID: "booking-7"}, nil),
		)
		f.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite(), nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})

		res, err := f.svc.ImportChannelBooking(context.Background(), importRequest())
		require.NoError(t, err)
		assert.False(t, res.Created)
		assert.Equal(t, "booking-7", res.BookingID)
	})
}

func TestBookingService_CancelChannelBooking(t *testing.T) {
	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		cancelled, err := f.svc.CancelChannelBooking(context.Background(), "makemytrip", "MMT-1")
		require.NoError(t, err)
		assert.False(t, cancelled)
	})

	t.Run("missing external id never matches another booking", func(t *testing.T) {
		f := newFixture(t)

		cancelled, err := f.svc.CancelChannelBooking(context.Background(), "makemytrip", "")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.False(t, cancelled)
	})

	t.Run("lookup matches both source and external id", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (model.Booking, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, map[string]any{model.FieldSource: "makemytrip", model.FieldExternalBookingID: "MMT-1"}, args)

				return model.Booking{}, nil
			})

		_, err := f.svc.CancelChannelBooking(context.Background(), "makemytrip", "MMT-1")
		require.NoError(t, err)
	})

	t.Run("paid channel booking restores inventory", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()

		booking := pendingBooking()
		booking.Status = model.StatusPaid
		booking.UserID = nil

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.inventory.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), "rt-1", gomock.Any(), -1).Return(int64(2), nil)
		f.kafka.EXPECT().SendMessages(gomock.Any(), "booking.cancelled", gomock.Any()).Return(nil)

		cancelled, err := f.svc.CancelChannelBooking(context.Background(), "makemytrip", "MMT-1")
		require.NoError(t, err)
		assert.True(t, cancelled)
	})
}
