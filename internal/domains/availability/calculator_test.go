package availability_test

import (
	"net/http"
	"testing"
	"time"

	"hotelbook/internal/domains/availability"
	inventoryModel "hotelbook/internal/domains/inventory/model"
	roomTypeModel "hotelbook/internal/domains/roomtype/model"
	"hotelbook/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	checkIn  = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
)

func night(day int, allotment, booked int) inventoryModel.Inventory {
	return inventoryModel.Inventory{
		Date:      time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
		Allotment: allotment,
		Booked:    booked,
	}
}

func roomType(id string, capacity int, active bool) roomTypeModel.RoomType {
	return roomTypeModel.RoomType{ID: id, Name: id, BaseRate: 500000, Capacity: capacity, Active: active}
}

func TestCalculate(t *testing.T) {
	candidates := []roomTypeModel.RoomType{
		roomType("suite", 4, true),
		roomType("single", 1, true),
		roomType("deluxe", 2, true),
		roomType("closed", 2, false),
		roomType("sold-out", 2, true),
		roomType("gap", 2, true),
	}

	inventory := map[string][]inventoryModel.Inventory{
		"suite":    {night(1, 2, 0), night(2, 2, 1)},
		"single":   {night(1, 5, 0), night(2, 5, 0)},
		"deluxe":   {night(2, 4, 0), night(1, 5, 2)},
		"closed":   {night(1, 5, 0), night(2, 5, 0)},
		"sold-out": {night(1, 5, 0), night(2, 3, 3)},
		"gap":      {night(1, 5, 0)},
	}

	rooms, err := availability.Calculate(candidates, inventory, checkIn, checkOut, 2)

	require.NoError(t, err)
	require.Len(t, rooms, 2)

	assert.Equal(t, "suite", rooms[0].RoomType.ID)
	assert.Equal(t, 1, rooms[0].Available)

	assert.Equal(t, "deluxe", rooms[1].RoomType.ID)
	assert.Equal(t, 3, rooms[1].Available)
	assert.Equal(t, 2, rooms[1].Pricing.Nights)
	assert.Equal(t, int64(1238000), rooms[1].Pricing.Total)
}

func TestCalculate_PreservesInputOrder(t *testing.T) {
	inventory := map[string][]inventoryModel.Inventory{
		"a": {night(1, 1, 0), night(2, 1, 0)},
		"b": {night(1, 9, 0), night(2, 9, 0)},
		"c": {night(1, 5, 0), night(2, 5, 0)},
	}

	for _, order := range [][]string{{"a", "b", "c"}, {"c", "a", "b"}, {"b", "c", "a"}} {
		candidates := make([]roomTypeModel.RoomType, len(order))
		for i, id := range order {
			candidates[i] = roomType(id, 2, true)
		}

		rooms, err := availability.Calculate(candidates, inventory, checkIn, checkOut, 1)
		require.NoError(t, err)

		got := make([]string, len(rooms))
		for i, room := range rooms {
			got[i] = room.RoomType.ID
		}

		assert.Equal(t, order, got)
	}
}

func TestCalculate_OverbookedRowIsExcluded(t *testing.T) {
	inventory := map[string][]inventoryModel.Inventory{
		"deluxe": {night(1, 2, 3), night(2, 5, 0)},
	}

	rooms, err := availability.Calculate([]roomTypeModel.RoomType{roomType("deluxe", 2, true)}, inventory, checkIn, checkOut, 1)

	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestCalculate_InvalidInput(t *testing.T) {
	candidates := []roomTypeModel.RoomType{roomType("deluxe", 2, true)}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		guests   int
		message  string
	}{
		{"zero nights", checkIn, checkIn, 1, "check_out must be after check_in"},
		{"reversed", checkOut, checkIn, 1, "check_out must be after check_in"},
		{"no guests", checkIn, checkOut, 0, "guests must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := availability.Calculate(candidates, nil, tt.checkIn, tt.checkOut, tt.guests)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}
