package channel_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotelbook/infras/otel/mocks"
	"hotelbook/internal/domains/channel/mocks"
	"hotelbook/internal/domains/channel/model/dto"
	"hotelbook/internal/handlers/channel"
	"hotelbook/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*mocks.MockChannel, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockChannel(ctrl)
	handler := channel.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return service, router
}

func TestHandler_TriggerSync(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		setup  func(service *mocks.MockChannel)
		status int
	}{
		{
			name: "success",
			body: `{"operation":"push_availability","from":"2026-11-01","to":"2026-11-30"}`,
			setup: func(service *mocks.MockChannel) {
				service.EXPECT().
					Trigger(gomock.Any(), "makemytrip", dto.TriggerRequest{Operation: "push_availability", From: "2026-11-01", To: "2026-11-30"}).
					Return(dto.SyncResponse{Provider: "makemytrip", Operation: "push_availability", Success: true, Attempts: 1, ItemsProcessed: 30}, nil)
			},
			status: http.StatusOK,
		},
		{
			name: "provider failure after retries",
			body: `{"operation":"pull_bookings"}`,
			setup: func(service *mocks.MockChannel) {
				service.EXPECT().
					Trigger(gomock.Any(), "makemytrip", gomock.Any()).
					Return(dto.SyncResponse{Provider: "makemytrip", Operation: "pull_bookings", Attempts: 3, Errors: []string{"timeout"}}, nil)
			},
			status: http.StatusBadGateway,
		},
		{
			name:   "unknown operation",
			body:   `{"operation":"push_everything"}`,
			status: http.StatusBadRequest,
		},
		{
			name: "unknown provider",
			body: `{"operation":"test_connection"}`,
			setup: func(service *mocks.MockChannel) {
				service.EXPECT().
					Trigger(gomock.Any(), "makemytrip", gomock.Any()).
					Return(dto.SyncResponse{}, failure.NotFound("provider makemytrip is not enabled"))
			},
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := newRouter(t)
			if tt.setup != nil {
				tt.setup(service)
			}

			req := httptest.NewRequestWithContext(context.Background(), http.MethodPost, "/channels/makemytrip/sync", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandler_TriggerSync_FailureBody(t *testing.T) {
	service, router := newRouter(t)
	service.EXPECT().
		Trigger(gomock.Any(), "makemytrip", gomock.Any()).
		Return(dto.SyncResponse{Provider: "makemytrip", Operation: "push_rates", Attempts: 3, Errors: []string{"503 from provider"}}, nil)

	req := httptest.NewRequestWithContext(context.Background(), http.MethodPost, "/channels/makemytrip/sync", strings.NewReader(`{"operation":"push_rates"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var body struct {
		Data dto.SyncResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Data.Success)
	assert.Equal(t, 3, body.Data.Attempts)
	assert.Equal(t, []string{"503 from provider"}, body.Data.Errors)
}

func TestHandler_GetProviders(t *testing.T) {
	service, router := newRouter(t)
	service.EXPECT().Providers(gomock.Any()).Return([]dto.ProviderResponse{{Name: "makemytrip"}})

	req := httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/channels/providers", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[{"name":"makemytrip"}]}`, rec.Body.String())
}
