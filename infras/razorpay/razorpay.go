package razorpay

//go:generate go run go.uber.org/mock/mockgen -source=./razorpay.go -destination=./mocks/razorpay_mock.go -package=mocks

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hotelbook/config"
	"hotelbook/infras/otel"
	"hotelbook/shared/constant"
	"hotelbook/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	ordersPath        = "/v1/orders"
	defaultCurrency   = "INR"
	defaultTimeout    = 10 * time.Second
	maxErrorBodyBytes = 4 << 10

	EventPaymentCaptured = "payment.captured"
)

const (
	errGatewayUnavailable = "payment gateway unavailable"
	errInvalidSignature   = "invalid webhook signature"
)

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// WebhookEvent is the subset of a webhook payload needed to confirm a payment.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Amount  int64  `json:"amount"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, receipt string) (Order, error)
	VerifyWebhookSignature(body []byte, signature string) error
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type gatewayImpl struct {
	client        *http.Client
	baseURL       string
	keyID         string
	keySecret     string
	webhookSecret string
	currency      string
	otel          otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Gateway {
	return NewWithClient(cfg, otel, nil)
}

// NewWithClient uses the given client, or a client with the configured timeout when nil.
func NewWithClient(cfg *config.Config, otel otel.Otel, client *http.Client) Gateway {
	rp := cfg.External.Razorpay

	if client == nil {
		timeout := defaultTimeout
		if rp.TimeoutSeconds > 0 {
			timeout = time.Duration(rp.TimeoutSeconds) * time.Second
		}

		client = &http.Client{Timeout: timeout}
	}

	currency := cfg.Booking.Currency
	if currency == constant.Empty {
		currency = defaultCurrency
	}

	return &gatewayImpl{
		client:        client,
		baseURL:       strings.TrimSuffix(rp.BaseURL, "/"),
		keyID:         rp.KeyID,
		keySecret:     rp.KeySecret,
		webhookSecret: rp.WebhookSecret,
		currency:      currency,
		otel:          otel,
	}
}

func (g *gatewayImpl) CreateOrder(ctx context.Context, amount int64, receipt string) (order Order, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".CreateOrder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("receipt", receipt)
	scope.SetAttribute("amount", amount)

	body, err := json.Marshal(createOrderRequest{Amount: amount, Currency: g.currency, Receipt: receipt})
	if err != nil {
		return order, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+ordersPath, bytes.NewReader(body))
	if err != nil {
		return order, fmt.Errorf("failed to build order request: %w", err)
	}

	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("receipt", receipt).Msg("payment gateway request failed")

		return order, failure.ExternalService(errGatewayUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		log.Error().
			Int("status", resp.StatusCode).
			Str("receipt", receipt).
			Str("body", string(raw)).
			Msg("payment gateway rejected order")

		return order, failure.ExternalService(errGatewayUnavailable)
	}

	if err = json.NewDecoder(resp.Body).Decode(&order); err != nil {
		log.Error().Err(err).Str("receipt", receipt).Msg("failed to decode payment gateway order")

		return order, failure.ExternalService(errGatewayUnavailable)
	}

	if order.ID == constant.Empty {
		log.Error().Str("receipt", receipt).Msg("payment gateway returned an order without id")

		return order, failure.ExternalService(errGatewayUnavailable)
	}

	return order, nil
}

// VerifyWebhookSignature checks the hex HMAC-SHA256 of the raw body against the webhook secret.
func (g *gatewayImpl) VerifyWebhookSignature(body []byte, signature string) error {
	if signature == constant.Empty || g.webhookSecret == constant.Empty {
		return failure.Unauthorized(errInvalidSignature)
	}

	expected, err := hex.DecodeString(signature)
	if err != nil {
		return failure.Unauthorized(errInvalidSignature)
	}

	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write(body)

	if !hmac.Equal(mac.Sum(nil), expected) {
		return failure.Unauthorized(errInvalidSignature)
	}

	return nil
}

// Sign returns the signature the gateway would send for body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}
