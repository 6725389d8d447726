package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotelbook/infras/otel/mocks"
	"hotelbook/internal/domains/booking/mocks"
	"hotelbook/internal/domains/booking/model/dto"
	"hotelbook/internal/handlers/booking"
	"hotelbook/shared/constant"
	"hotelbook/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const webhookBody = `{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`

func TestHandler_PaymentWebhook(t *testing.T) {
	tests := []struct {
		name   string
		result dto.WebhookResponse
		err    error
		status int
	}{
		{
			name:   "captured",
			result: dto.WebhookResponse{Status: "processed", BookingID: "b-1"},
			status: http.StatusOK,
		},
		{
			name:   "bad signature",
			err:    failure.Unauthorized("invalid webhook signature"),
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockBookingService(ctrl)
			handler := booking.New(service, otelMocks.NewOtel())

			router := chi.NewRouter()
			handler.Router(router)

			service.EXPECT().
				HandlePaymentWebhook(gomock.Any(), []byte(webhookBody), "sig-123").
				Return(tt.result, tt.err)

			req := httptest.NewRequestWithContext(context.Background(), http.MethodPost, "/payments/webhook", strings.NewReader(webhookBody))
			req.Header.Set(constant.RequestHeaderWebhookSignature, "sig-123")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandler_CreateBooking_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := booking.New(mocks.NewMockBookingService(ctrl), otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	req := httptest.NewRequestWithContext(context.Background(), http.MethodPost, "/bookings", strings.NewReader(`{"room_type_id":`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
