package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelbook/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "booking.Create")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"booking.total":    int64(1238000),
		"booking.check_in": time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		"booking.nights":   2,
	})
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("gateway timeout"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	attrs := spans[0].Attributes()
	assert.Contains(t, attrs, attribute.Int64("booking.total", 1238000))
	assert.Contains(t, attrs, attribute.String("booking.check_in", "2026-11-01T00:00:00Z"))
	assert.Contains(t, attrs, attribute.Int("booking.nights", 2))
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "gateway timeout", spans[0].Status().Description)
}
