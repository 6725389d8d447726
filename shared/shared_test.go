package shared_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"hotelbook/shared"
	"hotelbook/shared/cache"
	cacheMocks "hotelbook/shared/cache/mocks"
	"hotelbook/shared/constant"
	"hotelbook/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("maybe"))

	if got := shared.ConvertStringToBool("true"); assert.NotNil(t, got) {
		assert.True(t, *got)
	}

	if got := shared.ConvertStringToBool("0"); assert.NotNil(t, got) {
		assert.False(t, *got)
	}
}

func TestConvertStringToInt(t *testing.T) {
	got, err := shared.ConvertStringToInt(" 4 ")
	assert.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = shared.ConvertStringToInt("four")
	assert.Error(t, err)

	rate, err := shared.ConvertStringToInt64("500000")
	assert.NoError(t, err)
	assert.Equal(t, int64(500000), rate)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 1},
		{10, 0, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestTransformFields(t *testing.T) {
	type updateRoomType struct {
		Name     string `db:"name"`
		BaseRate *int64 `db:"base_rate"`
		Capacity *int   `db:"capacity"`
		Active   *bool  `db:"active"`
		Image    string `db:"-"`
		Note     string
	}

	rate := int64(450000)
	inactive := false

	result := shared.TransformFields(updateRoomType{
		Name:     "Deluxe King",
		BaseRate: &rate,
		Active:   &inactive,
		Image:    "ignored",
		Note:     "ignored",
	}, "admin-1")

	assert.Equal(t, "Deluxe King", result["name"])
	assert.Equal(t, int64(450000), result["base_rate"])
	assert.Equal(t, false, result["active"])
	assert.NotContains(t, result, "capacity")
	assert.NotContains(t, result, "-")
	assert.Equal(t, "admin-1", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("bk-1", "id", "bookings")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, "bk-1", args["id"])
}

func TestFilterByFields(t *testing.T) {
	group := shared.FilterByFields("bookings", map[string]any{
		"status":       "PAID",
		"room_type_id": "",
		"source":       nil,
	})

	assert.Equal(t, dto.FilterGroupOperatorAnd, group.Operator)
	assert.Len(t, group.Filters, 1)

	where, _ := group.GetWhereClause()
	assert.Equal(t, "(bookings.status = :status)", where)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room_type:get:deluxe", shared.BuildCacheKey("room_type:get", "deluxe"))
	assert.Equal(t, "availability:search", shared.BuildCacheKey("availability:search"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	paid := shared.FilterByFields("bookings", map[string]any{"status": "PAID"})
	cancelled := shared.FilterByFields("bookings", map[string]any{"status": "CANCELLED"})

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, paid)

	assert.Equal(t, first, shared.BuildCacheKeyWithQuery("booking:gets", params, paid))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("booking:gets", params, cancelled))
	assert.Contains(t, first, "booking:gets:")
}

func TestCacheGeneration(t *testing.T) {
	ctx := context.Background()

	t.Run("never bumped", func(t *testing.T) {
		mockCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		mockCache.EXPECT().Get(gomock.Any(), "availability:generation", gomock.Any()).
			Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))

		generation, err := shared.CacheGeneration(ctx, mockCache, "availability:generation")

		require.NoError(t, err)
		assert.Equal(t, "0", generation)
	})

	t.Run("redis down", func(t *testing.T) {
		mockCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		mockCache.EXPECT().Get(gomock.Any(), "availability:generation", gomock.Any()).Return(errors.New("connection refused"))

		_, err := shared.CacheGeneration(ctx, mockCache, "availability:generation")

		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestBumpGeneration(t *testing.T) {
	mockCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	gomock.InOrder(
		mockCache.EXPECT().Increment(gomock.Any(), "availability:generation", 30*24*60*60).Return(int64(4), nil),
		mockCache.EXPECT().Clear(gomock.Any(), "availability:search:*").Return(nil),
	)

	shared.BumpGeneration(context.Background(), mockCache, "availability:generation", "availability:search")
}
