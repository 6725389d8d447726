package provider

import (
	"context"
	"encoding/json"
	"time"

	"hotelbook/internal/domains/channel/model"
	"hotelbook/shared/clock"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Recorder persists provider exchanges.
type Recorder interface {
	Insert(ctx context.Context, payload model.Payload) error
}

type audited struct {
	next     Provider
	recorder Recorder
	clock    clock.Clock
}

// Audited records every call to next, successful or not.
func Audited(next Provider, recorder Recorder, clock clock.Clock) Provider {
	return &audited{next: next, recorder: recorder, clock: clock}
}

func (a *audited) Name() string {
	return a.next.Name()
}

func (a *audited) TestConnection(ctx context.Context) bool {
	start := a.clock.Now()
	ok := a.next.TestConnection(ctx)

	result := Succeeded(0)
	if !ok {
		result = SyncResult{Errors: []string{"connection test failed"}}
	}

	a.record(ctx, model.OperationTestConnection, model.DirectionOutbound, nil, result, result, start)

	return ok
}

func (a *audited) PushAvailability(ctx context.Context, updates []AvailabilityUpdate) SyncResult {
	start := a.clock.Now()
	res := a.next.PushAvailability(ctx, updates)
	a.record(ctx, model.OperationPushAvailability, model.DirectionOutbound, updates, res, res, start)

	return res
}

func (a *audited) PushRates(ctx context.Context, updates []RateUpdate) SyncResult {
	start := a.clock.Now()
	res := a.next.PushRates(ctx, updates)
	a.record(ctx, model.OperationPushRates, model.DirectionOutbound, updates, res, res, start)

	return res
}

func (a *audited) PullBookings(ctx context.Context, since time.Time) PullResult {
	start := a.clock.Now()
	res := a.next.PullBookings(ctx, since)
	a.record(ctx, model.OperationPullBookings, model.DirectionInbound, map[string]time.Time{"since": since}, res, res.SyncResult, start)

	return res
}

func (a *audited) GetRoomMappings(ctx context.Context) MappingResult {
	start := a.clock.Now()
	res := a.next.GetRoomMappings(ctx)
	a.record(ctx, model.OperationGetRoomMappings, model.DirectionInbound, nil, res, res.SyncResult, start)

	return res
}

func (a *audited) record(ctx context.Context, operation, direction string, request, response any, result SyncResult, start time.Time) {
	payload := model.Payload{
		ID:         uuid.NewString(),
		Provider:   a.next.Name(),
		Operation:  operation,
		Direction:  direction,
		Request:    marshal(request),
		Response:   marshal(response),
		Success:    result.Success,
		DurationMs: a.clock.Now().Sub(start).Milliseconds(),
		CreatedAt:  start,
	}

	if !result.Success && len(result.Errors) > 0 {
		msg := result.Errors[0]
		payload.Error = &msg
	}

	if err := a.recorder.Insert(context.WithoutCancel(ctx), payload); err != nil {
		log.Error().Err(err).Str("provider", payload.Provider).Str("operation", operation).Msg("failed to record provider payload")
	}
}

func marshal(v any) []byte {
	if v == nil {
		return []byte("null")
	}

	raw, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal provider payload")

		return []byte("null")
	}

	return raw
}
