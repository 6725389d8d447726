//go:build integration

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelbook/config"
	kafkaMocks "hotelbook/infras/kafka/mocks"
	otelMocks "hotelbook/infras/otel/mocks"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/booking/model"
	bookingRepository "hotelbook/internal/domains/booking/repository"
	"hotelbook/internal/domains/booking/service"
	inventoryRepository "hotelbook/internal/domains/inventory/repository"
	loyaltyModel "hotelbook/internal/domains/loyalty/model"
	loyaltyRepository "hotelbook/internal/domains/loyalty/repository"
	loyaltyService "hotelbook/internal/domains/loyalty/service"
	"hotelbook/internal/domains/pricing"
	roomTypeModel "hotelbook/internal/domains/roomtype/model"
	roomTypeRepository "hotelbook/internal/domains/roomtype/repository"
	userModel "hotelbook/internal/domains/user/model"
	userRepository "hotelbook/internal/domains/user/repository"
	"hotelbook/shared"
	cacheMocks "hotelbook/shared/cache/mocks"
	"hotelbook/shared/clock"
	"hotelbook/shared/daterange"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/testdb"
	"hotelbook/shared/transaction"
)

var errInventoryDown = errors.New("inventory unavailable")

// brokenInventory books the nights and then fails, so the transaction must undo everything.
type brokenInventory struct {
	inventoryRepository.Inventory
}

func (b brokenInventory) IncrementBookedTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, dates []time.Time, delta int) (int64, error) {
	if _, err := b.Inventory.IncrementBookedTx(ctx, tx, roomTypeID, dates, delta); err != nil {
		return 0, err
	}

	return 0, errInventoryDown
}

type stay struct {
	db        *postgres.Connection
	bookings  bookingRepository.Booking
	inventory inventoryRepository.Inventory
	users     userRepository.User
	ledger    loyaltyRepository.Ledger
	roomType  roomTypeModel.RoomType
	user      userModel.User
	from, to  time.Time
	cleared   chan struct{}
}

func newStay(t *testing.T) *stay {
	t.Helper()

	ctx := context.Background()
	otel := otelMocks.NewOtel()
	db := testdb.New(t)
	now := time.Now()

	s := &stay{
		db:        db,
		bookings:  bookingRepository.New(db, otel),
		inventory: inventoryRepository.New(db, otel),
		users:     userRepository.New(db, otel),
		ledger:    loyaltyRepository.New(db, otel),
		from:      time.Date(2026, 12, 10, 0, 0, 0, 0, time.UTC),
		to:        time.Date(2026, 12, 12, 0, 0, 0, 0, time.UTC),
		cleared:   make(chan struct{}, 4),
	}

	s.roomType = roomTypeModel.RoomType{
		ID: uuid.NewString(), Name: "Deluxe", BaseRate: 500000, Capacity: 2, Active: true,
		Metadata: gModel.NewMetadata(now, "test"),
	}
	require.NoError(t, roomTypeRepository.New(db, otel).Insert(ctx, s.roomType))

	_, err := s.inventory.UpsertRange(ctx, s.roomType.ID, daterange.Nights(s.from, s.to), 1, "test")
	require.NoError(t, err)

	s.user = userModel.User{
		ID: uuid.NewString(), Email: "asha@example.com", Password: "hash", Level: "user",
		Tier: userModel.DefaultTier, Active: true, Metadata: gModel.NewMetadata(now, "test"),
	}
	require.NoError(t, s.users.Insert(ctx, s.user))

	return s
}

func (s *stay) service(t *testing.T, inventory inventoryRepository.Inventory) service.Booking {
	t.Helper()

	ctrl := gomock.NewController(t)
	otel := otelMocks.NewOtel()
	cfg := &config.Config{}

	kafka := kafkaMocks.NewMockClient(ctrl)
	kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) error {
		s.cleared <- struct{}{}

		return nil
	}).AnyTimes()

	txManager := transaction.New(s.db, otel)
	loyalty := loyaltyService.New(s.ledger, s.users, txManager, cfg, otel)

	return service.New(s.bookings, roomTypeRepository.New(s.db, otel), inventory, nil, loyalty, nil,
		txManager, kafka, clock.New(), cfg, cache, otel)
}

func (s *stay) pending(t *testing.T) model.Booking {
	t.Helper()

	breakdown, err := pricing.Compute(s.roomType.BaseRate, 2)
	require.NoError(t, err)

	orderID := "order_" + uuid.NewString()
	booking := model.Booking{
		ID:             uuid.NewString(),
		UserID:         &s.user.ID,
		RoomTypeID:     s.roomType.ID,
		CheckIn:        s.from,
		CheckOut:       s.to,
		Guests:         2,
		Status:         model.StatusPending,
		GuestName:      "Asha",
		GuestEmail:     "asha@example.com",
		PaymentOrderID: &orderID,
		Source:         model.SourceDirect,
		Metadata:       gModel.NewMetadata(time.Now(), s.user.ID),
	}
	booking.ApplyPricing(breakdown)

	require.NoError(t, s.bookings.Insert(context.Background(), booking))

	return booking
}

func (s *stay) booked(t *testing.T) []int {
	t.Helper()

	rows, err := s.inventory.GetRange(context.Background(), []string{s.roomType.ID}, s.from, s.to)
	require.NoError(t, err)

	booked := make([]int, len(rows))
	for i, row := range rows {
		booked[i] = row.Booked
	}

	return booked
}

func (s *stay) points(t *testing.T) (int64, int) {
	t.Helper()

	ctx := context.Background()

	user, err := s.users.Get(ctx, shared.FilterByID(s.user.ID, userModel.FieldID, userModel.TableName))
	require.NoError(t, err)

	entries, err := s.ledger.Count(ctx, shared.FilterByID(s.user.ID, loyaltyModel.FieldUserID, loyaltyModel.TableName))
	require.NoError(t, err)

	return user.PointsBalance, entries
}

func (s *stay) status(t *testing.T, id string) model.Status {
	t.Helper()

	booking, err := s.bookings.Get(context.Background(), shared.FilterByID(id, model.FieldID, model.TableName))
	require.NoError(t, err)

	return booking.Status
}

func TestConfirmPayment_Postgres(t *testing.T) {
	s := newStay(t)
	ctx := context.Background()

	t.Run("inventory failure leaves nothing behind", func(t *testing.T) {
		booking := s.pending(t)

		_, err := s.service(t, brokenInventory{s.inventory}).ConfirmPayment(ctx, *booking.PaymentOrderID, "pay_broken")
		require.ErrorIs(t, err, errInventoryDown)

		assert.Equal(t, model.StatusPending, s.status(t, booking.ID))
		assert.Equal(t, []int{0, 0}, s.booked(t))

		balance, entries := s.points(t)
		assert.Zero(t, balance)
		assert.Zero(t, entries)
	})

	t.Run("pays, books both nights and earns points once", func(t *testing.T) {
		svc := s.service(t, s.inventory)
		booking := s.pending(t)

		res, err := svc.ConfirmPayment(ctx, *booking.PaymentOrderID, "pay_1")
		require.NoError(t, err)
		assert.Equal(t, "PAID", res.Status)
		assert.Equal(t, int64(1238000), res.Pricing.Total)

		select {
		case <-s.cleared:
		case <-time.After(5 * time.Second):
			t.Fatal("availability cache was not invalidated")
		}

		assert.Equal(t, model.StatusPaid, s.status(t, booking.ID))
		assert.Equal(t, []int{1, 1}, s.booked(t))

		balance, entries := s.points(t)
		assert.Equal(t, int64(123), balance)
		assert.Equal(t, 1, entries)

		again, err := svc.ConfirmPayment(ctx, *booking.PaymentOrderID, "pay_1")
		require.NoError(t, err)
		assert.Equal(t, "PAID", again.Status)

		assert.Equal(t, []int{1, 1}, s.booked(t))

		balance, entries = s.points(t)
		assert.Equal(t, int64(123), balance)
		assert.Equal(t, 1, entries)
	})
}
