package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotelbook/infras/otel/mocks"
	inventoryMocks "hotelbook/internal/domains/inventory/mocks"
	"hotelbook/internal/domains/inventory/model"
	"hotelbook/internal/domains/inventory/model/dto"
	"hotelbook/internal/domains/inventory/service"
	roomTypeMocks "hotelbook/internal/domains/roomtype/mocks"
	cacheMocks "hotelbook/shared/cache/mocks"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInventoryService_Upsert(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	tests := []struct {
		name      string
		req       dto.UpsertInventoryRequest
		setupMock func(repo *inventoryMocks.MockInventory, roomTypes *roomTypeMocks.MockRoomType)
		wantCode  int
		wantDays  int
	}{
		{
			name: "inclusive range",
			req:  dto.UpsertInventoryRequest{RoomTypeID: "rt-deluxe", From: "2026-03-01", To: "2026-03-03", Allotment: 5},
			setupMock: func(repo *inventoryMocks.MockInventory, roomTypes *roomTypeMocks.MockRoomType) {
				roomTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().
					UpsertRange(gomock.Any(), "rt-deluxe", gomock.Any(), 5, "admin-1").
					DoAndReturn(func(_ context.Context, _ string, dates []time.Time, _ int, _ string) (int64, error) {
						assert.Equal(t, []time.Time{
							time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
							time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
							time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
						}, dates)

						return 3, nil
					})
			},
			wantDays: 3,
		},
		{
			name:      "reversed range",
			req:       dto.UpsertInventoryRequest{RoomTypeID: "rt-deluxe", From: "2026-03-03", To: "2026-03-01", Allotment: 5},
			setupMock: func(_ *inventoryMocks.MockInventory, _ *roomTypeMocks.MockRoomType) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "range too long",
			req:       dto.UpsertInventoryRequest{RoomTypeID: "rt-deluxe", From: "2026-01-01", To: "2027-06-01", Allotment: 5},
			setupMock: func(_ *inventoryMocks.MockInventory, _ *roomTypeMocks.MockRoomType) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "bad date",
			req:       dto.UpsertInventoryRequest{RoomTypeID: "rt-deluxe", From: "03/01/2026", To: "2026-03-01", Allotment: 5},
			setupMock: func(_ *inventoryMocks.MockInventory, _ *roomTypeMocks.MockRoomType) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown room type",
			req:  dto.UpsertInventoryRequest{RoomTypeID: "missing", From: "2026-03-01", To: "2026-03-01", Allotment: 5},
			setupMock: func(_ *inventoryMocks.MockInventory, roomTypes *roomTypeMocks.MockRoomType) {
				roomTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			req:  dto.UpsertInventoryRequest{RoomTypeID: "rt-deluxe", From: "2026-03-01", To: "2026-03-01", Allotment: 5},
			setupMock: func(repo *inventoryMocks.MockInventory, roomTypes *roomTypeMocks.MockRoomType) {
				roomTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().UpsertRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := inventoryMocks.NewMockInventory(ctrl)
			roomTypes := roomTypeMocks.NewMockRoomType(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockCache.EXPECT().Increment(gomock.Any(), "availability:generation", gomock.Any()).Return(int64(1), nil).AnyTimes()
			mockCache.EXPECT().Clear(gomock.Any(), "availability:search:*").Return(nil).AnyTimes()

			tt.setupMock(repo, roomTypes)

			svc := service.New(repo, roomTypes, mockCache, mocks.NewOtel())

			res, err := svc.Upsert(ctx, tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, res.Days)
		})
	}
}

func TestInventoryService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := inventoryMocks.NewMockInventory(ctrl)
	svc := service.New(repo, roomTypeMocks.NewMockRoomType(ctrl), cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Inventory, error) {
			assert.Equal(t, model.FieldDate, params.SortBy)
			assert.Len(t, filter.Filters, 3)

			return []model.Inventory{
				{RoomTypeID: "rt-deluxe", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Allotment: 5, Booked: 2},
				{RoomTypeID: "rt-deluxe", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Allotment: 3, Booked: 4},
			}, nil
		})

	res, err := svc.GetAll(context.Background(), dto.GetInventoryRequest{RoomTypeID: "rt-deluxe", From: "2026-03-01", To: "2026-03-02"})

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, dto.InventoryResponse{RoomTypeID: "rt-deluxe", Date: "2026-03-01", Allotment: 5, Booked: 2, Available: 3}, res[0])
	assert.Equal(t, 0, res[1].Available)
}
