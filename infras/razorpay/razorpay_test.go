package razorpay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelbook/config"
	"hotelbook/infras/otel/mocks"
	"hotelbook/infras/razorpay"
	"hotelbook/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Booking.Currency = "INR"
	cfg.External.Razorpay.BaseURL = baseURL
	cfg.External.Razorpay.KeyID = "rzp_test_key"
	cfg.External.Razorpay.KeySecret = "rzp_test_secret"
	cfg.External.Razorpay.WebhookSecret = "whsec"

	return cfg
}

func TestGateway_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "rzp_test_secret", pass)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 1238000, body["amount"])
		assert.Equal(t, "INR", body["currency"])
		assert.Equal(t, "booking-1", body["receipt"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_123","amount":1238000,"currency":"INR","receipt":"booking-1","status":"created"}`))
	}))
	defer server.Close()

	gateway := razorpay.New(newConfig(server.URL), mocks.NewOtel())

	order, err := gateway.CreateOrder(context.Background(), 1238000, "booking-1")

	require.NoError(t, err)
	assert.Equal(t, "order_123", order.ID)
	assert.Equal(t, int64(1238000), order.Amount)
}

func TestGateway_CreateOrder_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "bad credentials",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR"}}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not-json`))
			},
		},
		{
			name: "missing order id",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"amount":100}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			gateway := razorpay.New(newConfig(server.URL), mocks.NewOtel())

			_, err := gateway.CreateOrder(context.Background(), 100, "booking-1")

			require.Error(t, err)
			assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
		})
	}
}

func TestGateway_CreateOrder_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	gateway := razorpay.New(newConfig(url), mocks.NewOtel())

	_, err := gateway.CreateOrder(context.Background(), 100, "booking-1")

	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestGateway_VerifyWebhookSignature(t *testing.T) {
	gateway := razorpay.New(newConfig("http://localhost"), mocks.NewOtel())
	body := []byte(`{"event":"payment.captured"}`)

	tests := []struct {
		name      string
		body      []byte
		signature string
		wantErr   bool
	}{
		{"valid", body, razorpay.Sign("whsec", body), false},
		{"wrong secret", body, razorpay.Sign("other", body), true},
		{"tampered body", []byte(`{"event":"payment.failed"}`), razorpay.Sign("whsec", body), true},
		{"not hex", body, "zz-not-hex", true},
		{"empty", body, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gateway.VerifyWebhookSignature(tt.body, tt.signature)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
		})
	}
}
