package provider_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	channelMocks "hotelbook/internal/domains/channel/mocks"
	"hotelbook/internal/domains/channel/model"
	"hotelbook/internal/domains/channel/provider"
	"hotelbook/internal/domains/channel/provider/mocks"
	"hotelbook/shared/clock"
)

func namedProvider(ctrl *gomock.Controller, name string) *mocks.MockProvider {
	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().Name().Return(name).AnyTimes()

	return p
}

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)

	registry := provider.NewRegistry([]string{"makemytrip"},
		namedProvider(ctrl, "makemytrip"), namedProvider(ctrl, "booking"))

	p, err := registry.Get("makemytrip")
	require.NoError(t, err)
	assert.Equal(t, "makemytrip", p.Name())

	_, err = registry.Get("booking")
	assert.True(t, errors.Is(err, provider.ErrDisabled))

	_, err = registry.Get("expedia")
	assert.True(t, errors.Is(err, provider.ErrUnknownProvider))

	assert.Equal(t, []string{"makemytrip"}, registry.Enabled())
}

func TestRegistry_EmptyListEnablesAll(t *testing.T) {
	ctrl := gomock.NewController(t)

	registry := provider.NewRegistry(nil, namedProvider(ctrl, "b"), namedProvider(ctrl, "a"))

	assert.Equal(t, []string{"a", "b"}, registry.Enabled())
}

func TestTransient(t *testing.T) {
	base := errors.New("503 service unavailable")
	wrapped := fmt.Errorf("push failed: %w", provider.Transient(base))

	assert.True(t, provider.IsTransient(wrapped))
	assert.False(t, provider.IsTransient(base))
	assert.NoError(t, provider.Transient(nil))

	res := provider.Failed(wrapped)
	assert.False(t, res.Success)
	assert.True(t, res.Retryable)
	assert.Equal(t, []string{"push failed: 503 service unavailable"}, res.Errors)

	assert.False(t, provider.Failed(errors.New("400 bad request")).Retryable)
}

func TestAudited_RecordsEveryCall(t *testing.T) {
	ctrl := gomock.NewController(t)

	next := namedProvider(ctrl, "makemytrip")
	recorder := channelMocks.NewMockPayload(ctrl)
	clk := clock.NewMock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	audited := provider.Audited(next, recorder, clk)

	updates := []provider.AvailabilityUpdate{{RoomTypeID: "rt-1", ExternalRoomCode: "DLX", Available: 3}}

	next.EXPECT().PushAvailability(gomock.Any(), updates).
		DoAndReturn(func(context.Context, []provider.AvailabilityUpdate) provider.SyncResult {
			clk.Add(250 * time.Millisecond)

			return provider.SyncResult{Errors: []string{"HTTP 503"}, Retryable: true}
		})

	recorder.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload model.Payload) error {
			assert.Equal(t, "makemytrip", payload.Provider)
			assert.Equal(t, model.OperationPushAvailability, payload.Operation)
			assert.Equal(t, model.DirectionOutbound, payload.Direction)
			assert.False(t, payload.Success)
			require.NotNil(t, payload.Error)
			assert.Equal(t, "HTTP 503", *payload.Error)
			assert.Equal(t, int64(250), payload.DurationMs)

			var request []provider.AvailabilityUpdate
			require.NoError(t, json.Unmarshal(payload.Request, &request))
			assert.Equal(t, "DLX", request[0].ExternalRoomCode)

			return nil
		})

	res := audited.PushAvailability(context.Background(), updates)
	assert.True(t, res.Retryable)
}

func TestAudited_RecorderFailureDoesNotFailCall(t *testing.T) {
	ctrl := gomock.NewController(t)

	next := namedProvider(ctrl, "makemytrip")
	recorder := channelMocks.NewMockPayload(ctrl)

	audited := provider.Audited(next, recorder, clock.New())

	next.EXPECT().PullBookings(gomock.Any(), gomock.Any()).
		Return(provider.PullResult{SyncResult: provider.Succeeded(1), Bookings: []provider.ExternalBooking{{ExternalID: "MMT-1"}}})
	next.EXPECT().TestConnection(gomock.Any()).Return(true)
	recorder.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(2)

	res := audited.PullBookings(context.Background(), time.Now())
	assert.True(t, res.Success)
	assert.Len(t, res.Bookings, 1)
	assert.True(t, audited.TestConnection(context.Background()))
}
