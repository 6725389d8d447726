//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "hotelbook/infras/otel/mocks"
	"hotelbook/internal/domains/channel/model"
	"hotelbook/internal/domains/channel/repository"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/testdb"
)

func TestPayloadRepository_LastSuccess(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPayload(testdb.New(t), otelMocks.NewOtel())

	_, found, err := repo.LastSuccess(ctx, "makemytrip", model.OperationApplyBookings)
	require.NoError(t, err)
	assert.False(t, found)

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	failure := "timeout"

	payloads := []model.Payload{
		{Operation: model.OperationApplyBookings, Success: true, CreatedAt: base},
		{Operation: model.OperationApplyBookings, Success: true, CreatedAt: base.Add(time.Hour)},
		{Operation: model.OperationApplyBookings, Success: false, Error: &failure, CreatedAt: base.Add(2 * time.Hour)},
		{Operation: model.OperationPushRates, Success: true, CreatedAt: base.Add(3 * time.Hour)},
	}

	for _, p := range payloads {
		p.ID = uuid.NewString()
		p.Provider = "makemytrip"
		p.Direction = model.DirectionInbound
		p.Request = types.JSONText(`{"since":"2026-10-01"}`)
		p.Response = types.JSONText(`{}`)

		require.NoError(t, repo.Insert(ctx, p))
	}

	last, found, err := repo.LastSuccess(ctx, "makemytrip", model.OperationApplyBookings)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, last.Equal(base.Add(time.Hour)), "got %s", last)

	count, err := repo.Count(ctx, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
