package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"hotelbook/config"
	otelMocks "hotelbook/infras/otel/mocks"
	bookingMocks "hotelbook/internal/domains/booking/mocks"
	bookingModel "hotelbook/internal/domains/booking/model"
	bookingDto "hotelbook/internal/domains/booking/model/dto"
	"hotelbook/internal/domains/channel/mocks"
	"hotelbook/internal/domains/channel/model"
	"hotelbook/internal/domains/channel/model/dto"
	"hotelbook/internal/domains/channel/provider"
	providerMocks "hotelbook/internal/domains/channel/provider/mocks"
	"hotelbook/internal/domains/channel/service"
	inventoryMocks "hotelbook/internal/domains/inventory/mocks"
	inventoryModel "hotelbook/internal/domains/inventory/model"
	roomTypeMocks "hotelbook/internal/domains/roomtype/mocks"
	roomTypeModel "hotelbook/internal/domains/roomtype/model"
	"hotelbook/shared/clock"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
)

const providerName = "makemytrip"

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

type ChannelServiceSuite struct {
	suite.Suite

	provider  *providerMocks.MockProvider
	mappings  *mocks.MockMapping
	payloads  *mocks.MockPayload
	inventory *inventoryMocks.MockInventory
	roomTypes *roomTypeMocks.MockRoomType
	booking   *bookingMocks.MockBookingService
	clock     *clock.Mock
	cfg       *config.Config
	svc       service.Channel
}

func TestChannelServiceSuite(t *testing.T) {
	suite.Run(t, new(ChannelServiceSuite))
}

func (s *ChannelServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.provider = providerMocks.NewMockProvider(ctrl)
	s.mappings = mocks.NewMockMapping(ctrl)
	s.payloads = mocks.NewMockPayload(ctrl)
	s.inventory = inventoryMocks.NewMockInventory(ctrl)
	s.roomTypes = roomTypeMocks.NewMockRoomType(ctrl)
	s.booking = bookingMocks.NewMockBookingService(ctrl)
	s.clock = clock.NewMock(time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC))

	s.cfg = &config.Config{}
	s.cfg.Booking.Currency = "INR"
	s.cfg.Channel.MaxRetries = 2
	s.cfg.Channel.RetryInitialMillis = 1

	s.provider.EXPECT().Name().Return(providerName).AnyTimes()

	s.svc = s.newService(nil)
}

func (s *ChannelServiceSuite) newService(enabled []string) service.Channel {
	registry := provider.NewRegistry(enabled, s.provider)

	return service.New(registry, s.mappings, s.payloads, s.inventory, s.roomTypes, s.booking, s.clock, s.cfg, otelMocks.NewOtel())
}

func (s *ChannelServiceSuite) mapped(mappings ...model.Mapping) {
	s.mappings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(mappings, nil)
}

func mapping(roomTypeID, code string) model.Mapping {
	return model.Mapping{ID: "map-" + roomTypeID, RoomTypeID: roomTypeID, Provider: providerName, ExternalCode: code, Active: true}
}

func transient(msg string) provider.SyncResult {
	return provider.SyncResult{Errors: []string{msg}, Retryable: true}
}

func (s *ChannelServiceSuite) TestProviders() {
	res := s.svc.Providers(context.Background())

	s.Equal([]dto.ProviderResponse{{Name: providerName}}, res)
}

func (s *ChannelServiceSuite) TestUnknownProvider() {
	_, err := s.svc.PushAvailability(context.Background(), "booking-com", day(1), day(3))

	s.Equal(http.StatusNotFound, failure.GetCode(err))
}

func (s *ChannelServiceSuite) TestDisabledProvider() {
	svc := s.newService([]string{"booking-com"})

	_, err := svc.PullBookings(context.Background(), providerName)

	s.Equal(http.StatusBadRequest, failure.GetCode(err))
}

func (s *ChannelServiceSuite) TestPushAvailability_BuildsUpdatesPerNight() {
	s.mapped(mapping("rt-1", "DLX"), mapping("rt-2", "STD"))
	s.inventory.EXPECT().GetRange(gomock.Any(), []string{"rt-1", "rt-2"}, day(1), day(3)).Return([]inventoryModel.Inventory{
		{RoomTypeID: "rt-1", Date: day(1), Allotment: 5, Booked: 2},
		{RoomTypeID: "rt-1", Date: day(2), Allotment: 5, Booked: 7},
		{RoomTypeID: "rt-2", Date: day(1), Allotment: 3, Booked: 0},
	}, nil)

	var sent []provider.AvailabilityUpdate

	s.provider.EXPECT().PushAvailability(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updates []provider.AvailabilityUpdate) provider.SyncResult {
			sent = updates

			return provider.Succeeded(len(updates))
		})

	res, err := s.svc.PushAvailability(context.Background(), providerName, day(1), day(3))

	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal(1, res.Attempts)
	s.Equal(4, res.ItemsProcessed)

	want := []provider.AvailabilityUpdate{
		{RoomTypeID: "rt-1", ExternalRoomCode: "DLX", Date: day(1), Available: 3},
		{RoomTypeID: "rt-1", ExternalRoomCode: "DLX", Date: day(2), Available: 0},
		{RoomTypeID: "rt-2", ExternalRoomCode: "STD", Date: day(1), Available: 3},
		{RoomTypeID: "rt-2", ExternalRoomCode: "STD", Date: day(2), Available: 0},
	}
	s.Empty(cmp.Diff(want, sent))
}

func (s *ChannelServiceSuite) TestPushAvailability_NoMappings() {
	s.mapped()

	res, err := s.svc.PushAvailability(context.Background(), providerName, day(1), day(3))

	s.Require().NoError(err)
	s.True(res.Success)
	s.Zero(res.Attempts)
}

func (s *ChannelServiceSuite) TestPushAvailability_InvalidRange() {
	_, err := s.svc.PushAvailability(context.Background(), providerName, day(3), day(3))

	s.Equal(http.StatusBadRequest, failure.GetCode(err))
}

func (s *ChannelServiceSuite) TestPushAvailability_RetriesTransientFailures() {
	s.mapped(mapping("rt-1", "DLX"))
	s.inventory.EXPECT().GetRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	gomock.InOrder(
		s.provider.EXPECT().PushAvailability(gomock.Any(), gomock.Any()).Return(transient("HTTP 503")),
		s.provider.EXPECT().PushAvailability(gomock.Any(), gomock.Any()).Return(provider.Succeeded(2)),
	)

	res, err := s.svc.PushAvailability(context.Background(), providerName, day(1), day(3))

	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal(2, res.Attempts)
	s.Empty(res.Errors)
}

func (s *ChannelServiceSuite) TestPushAvailability_GivesUpAfterMaxRetries() {
	s.mapped(mapping("rt-1", "DLX"))
	s.inventory.EXPECT().GetRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.provider.EXPECT().PushAvailability(gomock.Any(), gomock.Any()).Return(transient("HTTP 502")).Times(3)

	res, err := s.svc.PushAvailability(context.Background(), providerName, day(1), day(3))

	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(3, res.Attempts)
	s.Equal([]string{"HTTP 502"}, res.Errors)
}

func (s *ChannelServiceSuite) TestPushAvailability_PermanentFailureIsNotRetried() {
	s.mapped(mapping("rt-1", "DLX"))
	s.inventory.EXPECT().GetRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.provider.EXPECT().PushAvailability(gomock.Any(), gomock.Any()).
		Return(provider.SyncResult{Errors: []string{"HTTP 400"}}).Times(1)

	res, err := s.svc.PushAvailability(context.Background(), providerName, day(1), day(3))

	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(1, res.Attempts)
}

func (s *ChannelServiceSuite) TestPushRates_SkipsInactiveRoomTypes() {
	s.mapped(mapping("rt-1", "DLX"), mapping("rt-2", "STD"))
	s.roomTypes.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomTypeModel.RoomType{
		{ID: "rt-1", BaseRate: 500000, Active: true},
		{ID: "rt-2", BaseRate: 300000, Active: false},
	}, nil)

	var sent []provider.RateUpdate

	s.provider.EXPECT().PushRates(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updates []provider.RateUpdate) provider.SyncResult {
			sent = updates

			return provider.Succeeded(len(updates))
		})

	res, err := s.svc.PushRates(context.Background(), providerName, day(1), day(3))

	s.Require().NoError(err)
	s.True(res.Success)

	want := []provider.RateUpdate{
		{RoomTypeID: "rt-1", ExternalRoomCode: "DLX", Date: day(1), Amount: 500000, Currency: "INR"},
		{RoomTypeID: "rt-1", ExternalRoomCode: "DLX", Date: day(2), Amount: 500000, Currency: "INR"},
	}
	s.Empty(cmp.Diff(want, sent))
}

func (s *ChannelServiceSuite) TestPullBookings_ImportsAndCancels() {
	last := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	phone := "+919800000000"

	s.payloads.EXPECT().LastSuccess(gomock.Any(), providerName, model.OperationApplyBookings).Return(last, true, nil)
	s.mapped(mapping("rt-1", "DLX"))

	s.provider.EXPECT().PullBookings(gomock.Any(), last).Return(provider.PullResult{
		SyncResult: provider.Succeeded(4),
		Bookings: []provider.ExternalBooking{
			{
				ExternalID: "MMT-1", ExternalRoomCode: "DLX", CheckIn: day(10), CheckOut: day(12), Guests: 2,
				Guest: provider.GuestContact{Name: "Asha", Email: "asha@example.com", Phone: &phone},
				TotalAmount: 1238000, Status: provider.BookingStatusConfirmed,
			},
			{ExternalID: "MMT-2", ExternalRoomCode: "DLX", CheckIn: day(10), CheckOut: day(11), Guests: 1, Status: provider.BookingStatusConfirmed},
			{ExternalID: "MMT-3", ExternalRoomCode: "PENT", CheckIn: day(10), CheckOut: day(11), Guests: 1, Status: provider.BookingStatusConfirmed},
			{ExternalID: "MMT-4", Status: provider.BookingStatusCancelled},
		},
	})

	s.booking.EXPECT().ImportChannelBooking(gomock.Any(), bookingDto.ImportBookingRequest{
		Source:            providerName,
		ExternalBookingID: "MMT-1",
		RoomTypeID:        "rt-1",
		CheckIn:           day(10),
		CheckOut:          day(12),
		Guests:            2,
		GuestName:         "Asha",
		GuestEmail:        "asha@example.com",
		GuestPhone:        &phone,
		TotalAmount:       1238000,
	}).Return(bookingDto.ImportBookingResponse{BookingID: "b-1", Created: true}, nil)

	s.booking.EXPECT().ImportChannelBooking(gomock.Any(), gomock.Any()).
		Return(bookingDto.ImportBookingResponse{BookingID: "b-2", Created: false}, nil)

	s.booking.EXPECT().CancelChannelBooking(gomock.Any(), providerName, "MMT-4").Return(true, nil)

	s.payloads.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p model.Payload) error {
		s.Equal(model.OperationApplyBookings, p.Operation)
		s.Equal(providerName, p.Provider)
		s.False(p.Success)
		s.Require().NotNil(p.Error)
		s.Contains(*p.Error, "PENT")
		s.Equal(s.clock.Now(), p.CreatedAt)

		return nil
	})

	res, err := s.svc.PullBookings(context.Background(), providerName)

	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(1, res.Imported)
	s.Equal(1, res.Cancelled)
	s.Equal(2, res.Skipped)
	s.Require().Len(res.Errors, 1)
	s.Contains(res.Errors[0], "PENT")
}

func (s *ChannelServiceSuite) TestPullBookings_DefaultLookback() {
	s.payloads.EXPECT().LastSuccess(gomock.Any(), providerName, model.OperationApplyBookings).Return(time.Time{}, false, nil)
	s.mapped()
	s.provider.EXPECT().PullBookings(gomock.Any(), s.clock.Now().Add(-24*time.Hour)).
		Return(provider.PullResult{SyncResult: provider.Succeeded(0)})
	s.payloads.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p model.Payload) error {
		s.True(p.Success)
		s.Nil(p.Error)

		return nil
	})

	res, err := s.svc.PullBookings(context.Background(), providerName)

	s.Require().NoError(err)
	s.True(res.Success)
}

func (s *ChannelServiceSuite) TestPullBookings_FailureSkipsImport() {
	s.payloads.EXPECT().LastSuccess(gomock.Any(), gomock.Any(), gomock.Any()).Return(time.Time{}, false, nil)
	s.mapped(mapping("rt-1", "DLX"))
	s.provider.EXPECT().PullBookings(gomock.Any(), gomock.Any()).
		Return(provider.PullResult{SyncResult: provider.SyncResult{Errors: []string{"HTTP 401"}}})

	res, err := s.svc.PullBookings(context.Background(), providerName)

	s.Require().NoError(err)
	s.False(res.Success)
	s.Zero(res.Imported)
}

// cursor keeps apply_bookings records in memory so successive pulls see each other.
type cursor struct {
	records []model.Payload
}

func (c *cursor) insert(_ context.Context, p model.Payload) error {
	c.records = append(c.records, p)

	return nil
}

func (c *cursor) lastSuccess(_ context.Context, _, operation string) (time.Time, bool, error) {
	var (
		last  time.Time
		found bool
	)

	for _, r := range c.records {
		if r.Operation == operation && r.Success && r.CreatedAt.After(last) {
			last, found = r.CreatedAt, true
		}
	}

	return last, found, nil
}

func (s *ChannelServiceSuite) TestPullBookings_FailedImportIsOfferedAgain() {
	lastClean := s.clock.Now().Add(-time.Hour)
	store := &cursor{records: []model.Payload{{Operation: model.OperationApplyBookings, Success: true, CreatedAt: lastClean}}}
	s.payloads.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(store.insert).AnyTimes()
	s.payloads.EXPECT().LastSuccess(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(store.lastSuccess).AnyTimes()
	s.mappings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Mapping{mapping("rt-1", "DLX")}, nil).AnyTimes()

	reservation := provider.ExternalBooking{
		ExternalID: "MMT-9", ExternalRoomCode: "DLX", CheckIn: day(10), CheckOut: day(12), Guests: 2,
		Status: provider.BookingStatusConfirmed,
	}
	// The channel only reports reservations modified after the requested time.
	s.provider.EXPECT().PullBookings(gomock.Any(), lastClean).
		Return(provider.PullResult{SyncResult: provider.Succeeded(1), Bookings: []provider.ExternalBooking{reservation}}).Times(2)

	gomock.InOrder(
		s.booking.EXPECT().ImportChannelBooking(gomock.Any(), gomock.Any()).
			Return(bookingDto.ImportBookingResponse{}, errors.New("connection reset")),
		s.booking.EXPECT().ImportChannelBooking(gomock.Any(), gomock.Any()).
			Return(bookingDto.ImportBookingResponse{BookingID: "b-9", Created: true}, nil),
	)

	first, err := s.svc.PullBookings(context.Background(), providerName)
	s.Require().NoError(err)
	s.False(first.Success)
	s.Require().Len(first.Errors, 1)
	s.Contains(first.Errors[0], "MMT-9")

	s.clock.Set(s.clock.Now().Add(5 * time.Minute))

	second, err := s.svc.PullBookings(context.Background(), providerName)
	s.Require().NoError(err)
	s.True(second.Success)
	s.Equal(1, second.Imported)

	s.Require().Len(store.records, 3)
	s.False(store.records[1].Success)
	s.Require().NotNil(store.records[1].Error)
	s.Contains(*store.records[1].Error, "connection reset")
	s.True(store.records[2].Success)
}

func (s *ChannelServiceSuite) TestTrigger_RoomMappings() {
	s.provider.EXPECT().GetRoomMappings(gomock.Any()).Return(provider.MappingResult{
		SyncResult: provider.Succeeded(1),
		Mappings:   map[string]string{"rt-1": "DLX"},
	})

	res, err := s.svc.Trigger(context.Background(), providerName, dto.TriggerRequest{Operation: model.OperationGetRoomMappings})

	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal(model.OperationGetRoomMappings, res.Operation)
	s.Equal(map[string]string{"rt-1": "DLX"}, res.Mappings)
}

func (s *ChannelServiceSuite) TestTrigger_RoomMappingsFailure() {
	s.provider.EXPECT().GetRoomMappings(gomock.Any()).
		Return(provider.MappingResult{SyncResult: provider.SyncResult{Errors: []string{"HTTP 403"}}})

	res, err := s.svc.Trigger(context.Background(), providerName, dto.TriggerRequest{Operation: model.OperationGetRoomMappings})

	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(1, res.Attempts)
	s.Nil(res.Mappings)
}

func (s *ChannelServiceSuite) TestTrigger_DefaultWindow() {
	s.mapped(mapping("rt-1", "DLX"))
	s.inventory.EXPECT().GetRange(gomock.Any(), []string{"rt-1"}, day(1), day(1).AddDate(0, 0, 90)).Return(nil, nil)
	s.provider.EXPECT().PushAvailability(gomock.Any(), gomock.Len(90)).Return(provider.Succeeded(90))

	res, err := s.svc.Trigger(context.Background(), providerName, dto.TriggerRequest{Operation: model.OperationPushAvailability})

	s.Require().NoError(err)
	s.Equal(90, res.ItemsProcessed)
}

func (s *ChannelServiceSuite) TestTrigger_TestConnection() {
	s.provider.EXPECT().TestConnection(gomock.Any()).Return(false)

	res, err := s.svc.Trigger(context.Background(), providerName, dto.TriggerRequest{Operation: model.OperationTestConnection})

	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(model.OperationTestConnection, res.Operation)
}

func (s *ChannelServiceSuite) TestSyncAll_ReportsEveryProvider() {
	s.provider.EXPECT().TestConnection(gomock.Any()).Return(true)

	results := s.svc.SyncAll(context.Background(), model.OperationTestConnection)

	s.Require().Len(results, 1)
	s.True(results[0].Success)
	s.Equal(providerName, results[0].Provider)
}

func (s *ChannelServiceSuite) TestHandleBookingEvent() {
	s.mapped(mapping("rt-1", "DLX"))
	s.inventory.EXPECT().GetRange(gomock.Any(), []string{"rt-1"}, day(10), day(12)).Return(nil, nil)
	s.provider.EXPECT().PushAvailability(gomock.Any(), gomock.Len(2)).Return(provider.Succeeded(2))

	err := s.svc.HandleBookingEvent(context.Background(), bookingModel.Event{
		BookingID:  "b-1",
		RoomTypeID: "rt-1",
		CheckIn:    "2026-03-10",
		CheckOut:   "2026-03-12",
	})

	s.NoError(err)
}

func (s *ChannelServiceSuite) TestHandleBookingEvent_ReportsFailedPush() {
	s.mapped(mapping("rt-1", "DLX"))
	s.inventory.EXPECT().GetRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.provider.EXPECT().PushAvailability(gomock.Any(), gomock.Any()).Return(provider.SyncResult{Errors: []string{"HTTP 400"}})

	err := s.svc.HandleBookingEvent(context.Background(), bookingModel.Event{RoomTypeID: "rt-1", CheckIn: "2026-03-10", CheckOut: "2026-03-11"})

	s.ErrorContains(err, "HTTP 400")
}

func (s *ChannelServiceSuite) TestHandleBookingEvent_InvalidDates() {
	err := s.svc.HandleBookingEvent(context.Background(), bookingModel.Event{RoomTypeID: "rt-1", CheckIn: "soon", CheckOut: "2026-03-11"})

	s.Error(err)
}

func (s *ChannelServiceSuite) TestCreateMapping() {
	s.roomTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	s.mappings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.svc.CreateMapping(context.Background(), dto.CreateMappingRequest{
		RoomTypeID: "5b0b5c1e-8a55-4c1d-a1a5-0f3c8f7e9d11", Provider: providerName, ExternalCode: "DLX",
	})

	s.Require().NoError(err)
	s.NotEmpty(res.ID)
	s.True(res.Active)
	s.Equal("DLX", res.ExternalCode)
}

func (s *ChannelServiceSuite) TestCreateMapping_Duplicate() {
	s.roomTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	s.mappings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})

	_, err := s.svc.CreateMapping(context.Background(), dto.CreateMappingRequest{RoomTypeID: "rt-1", Provider: providerName, ExternalCode: "DLX"})

	s.Equal(http.StatusConflict, failure.GetCode(err))
}

func (s *ChannelServiceSuite) TestCreateMapping_UnknownRoomType() {
	s.roomTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := s.svc.CreateMapping(context.Background(), dto.CreateMappingRequest{RoomTypeID: "rt-9", Provider: providerName, ExternalCode: "DLX"})

	s.Equal(http.StatusNotFound, failure.GetCode(err))
}

func (s *ChannelServiceSuite) TestDeleteMapping_NotFound() {
	s.mappings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Mapping{}, nil)

	err := s.svc.DeleteMapping(context.Background(), "map-9")

	s.Equal(http.StatusNotFound, failure.GetCode(err))
}

func (s *ChannelServiceSuite) TestUpdateMapping() {
	active := false

	s.mappings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(mapping("rt-1", "DLX"), nil)
	s.mappings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			s.Equal(false, fields[model.FieldActive])

			return nil
		})

	s.NoError(s.svc.UpdateMapping(context.Background(), dto.UpdateMappingRequest{Active: &active}, "map-rt-1"))
}

func (s *ChannelServiceSuite) TestGetSyncLogs_DefaultsToNewestFirst() {
	s.payloads.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	s.payloads.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Payload, error) {
			s.Equal(model.FieldCreatedAt, params.SortBy)
			s.Equal(gDto.SortDirDesc, params.SortDir)

			return []model.Payload{{ID: "p-1", Provider: providerName, Operation: model.OperationPushRates, Success: true}}, nil
		})

	res, err := s.svc.GetSyncLogs(context.Background(), gDto.QueryParams{Limit: 10}, dto.GetSyncLogsRequest{Provider: providerName})

	s.Require().NoError(err)
	s.Equal(1, res.TotalData)
	s.Require().Len(res.Logs, 1)
	s.Equal("p-1", res.Logs[0].ID)
}
