// Package makemytrip adapts the MakeMyTrip connectivity API to the provider contract.
package makemytrip

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hotelbook/config"
	"hotelbook/infras/otel"
	"hotelbook/internal/domains/channel/provider"
	"hotelbook/shared/constant"
	"hotelbook/shared/daterange"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

const (
	Name = "makemytrip"

	headerAPIKey      = "X-Api-Key"
	defaultTimeout    = 10 * time.Second
	maxErrorBodyBytes = 4 << 10

	statusConfirmed = "CONFIRMED"
	statusCancelled = "CANCELLED"
)

type inventoryItem struct {
	RoomCode  string `json:"room_code"`
	Date      string `json:"date"`
	Available int    `json:"available"`
}

type inventoryRequest struct {
	HotelCode string          `json:"hotel_code"`
	Inventory []inventoryItem `json:"inventory"`
}

type tariffItem struct {
	RoomCode    string `json:"room_code"`
	Date        string `json:"date"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
}

type tariffRequest struct {
	HotelCode string       `json:"hotel_code"`
	Tariffs   []tariffItem `json:"tariffs"`
}

type updateResponse struct {
	Updated int `json:"updated"`
}

type reservation struct {
	ReservationID string `json:"reservation_id"`
	RoomCode      string `json:"room_code"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	Guest         struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"guest"`
	AmountMinor int64     `json:"amount_minor"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type reservationsResponse struct {
	Reservations []reservation `json:"reservations"`
}

type roomsResponse struct {
	Rooms []struct {
		RoomCode      string `json:"room_code"`
		PartnerRoomID string `json:"partner_room_id"`
	} `json:"rooms"`
}

type adapter struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	hotelCode string
	otel      otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) provider.Provider {
	return NewWithClient(cfg, otel, nil)
}

// NewWithClient uses the given client, or a client with the configured timeout when nil.
func NewWithClient(cfg *config.Config, otel otel.Otel, client *http.Client) provider.Provider {
	mmt := cfg.Channel.MakeMyTrip

	if client == nil {
		timeout := defaultTimeout
		if mmt.TimeoutSeconds > 0 {
			timeout = time.Duration(mmt.TimeoutSeconds) * time.Second
		}

		client = &http.Client{Timeout: timeout}
	}

	return &adapter{
		client:    client,
		baseURL:   strings.TrimSuffix(mmt.BaseURL, "/"),
		apiKey:    mmt.APIKey,
		hotelCode: mmt.HotelCode,
		otel:      otel,
	}
}

func (a *adapter) Name() string {
	return Name
}

func (a *adapter) TestConnection(ctx context.Context) bool {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelChannelScopeName, constant.OtelChannelScopeName+".makemytrip.TestConnection")
	defer scope.End()

	if err := a.do(ctx, http.MethodGet, a.hotelPath("ping"), nil, nil); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("makemytrip connection test failed")

		return false
	}

	return true
}

func (a *adapter) PushAvailability(ctx context.Context, updates []provider.AvailabilityUpdate) provider.SyncResult {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelChannelScopeName, constant.OtelChannelScopeName+".makemytrip.PushAvailability")
	defer scope.End()

	if len(updates) == 0 {
		return provider.Succeeded(0)
	}

	body := inventoryRequest{HotelCode: a.hotelCode, Inventory: make([]inventoryItem, len(updates))}
	for i, u := range updates {
		body.Inventory[i] = inventoryItem{RoomCode: u.ExternalRoomCode, Date: daterange.Format(u.Date), Available: u.Available}
	}

	var resp updateResponse
	if err := a.do(ctx, http.MethodPost, a.hotelPath("inventory"), body, &resp); err != nil {
		scope.TraceError(err)

		return provider.Failed(err)
	}

	return provider.Succeeded(resp.Updated)
}

func (a *adapter) PushRates(ctx context.Context, updates []provider.RateUpdate) provider.SyncResult {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelChannelScopeName, constant.OtelChannelScopeName+".makemytrip.PushRates")
	defer scope.End()

	if len(updates) == 0 {
		return provider.Succeeded(0)
	}

	body := tariffRequest{HotelCode: a.hotelCode, Tariffs: make([]tariffItem, len(updates))}
	for i, u := range updates {
		body.Tariffs[i] = tariffItem{RoomCode: u.ExternalRoomCode, Date: daterange.Format(u.Date), AmountMinor: u.Amount, Currency: u.Currency}
	}

	var resp updateResponse
	if err := a.do(ctx, http.MethodPost, a.hotelPath("tariffs"), body, &resp); err != nil {
		scope.TraceError(err)

		return provider.Failed(err)
	}

	return provider.Succeeded(resp.Updated)
}

func (a *adapter) PullBookings(ctx context.Context, since time.Time) provider.PullResult {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelChannelScopeName, constant.OtelChannelScopeName+".makemytrip.PullBookings")
	defer scope.End()

	path := a.hotelPath("reservations") + "?" + url.Values{"modified_since": {since.UTC().Format(time.RFC3339)}}.Encode()

	var resp reservationsResponse
	if err := a.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		scope.TraceError(err)

		return provider.PullResult{SyncResult: provider.Failed(err)}
	}

	result := provider.PullResult{Bookings: make([]provider.ExternalBooking, 0, len(resp.Reservations))}

	for _, r := range resp.Reservations {
		booking, err := r.toExternal()
		if err != nil {
			result.Errors = append(result.Errors, err.Error())

			continue
		}

		result.Bookings = append(result.Bookings, booking)
	}

	result.Success = true
	result.ItemsProcessed = len(result.Bookings)

	return result
}

func (a *adapter) GetRoomMappings(ctx context.Context) provider.MappingResult {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelChannelScopeName, constant.OtelChannelScopeName+".makemytrip.GetRoomMappings")
	defer scope.End()

	var resp roomsResponse
	if err := a.do(ctx, http.MethodGet, a.hotelPath("rooms"), nil, &resp); err != nil {
		scope.TraceError(err)

		return provider.MappingResult{SyncResult: provider.Failed(err)}
	}

	mappings := make(map[string]string, len(resp.Rooms))

	for _, room := range resp.Rooms {
		if room.PartnerRoomID == constant.Empty {
			continue
		}

		mappings[room.PartnerRoomID] = room.RoomCode
	}

	return provider.MappingResult{SyncResult: provider.Succeeded(len(mappings)), Mappings: mappings}
}

func (r reservation) toExternal() (provider.ExternalBooking, error) {
	if strings.TrimSpace(r.ReservationID) == constant.Empty {
		return provider.ExternalBooking{}, errors.Newf("reservation without reservation_id (room %s, check_in %s)", r.RoomCode, r.CheckIn)
	}

	checkIn, err := daterange.Parse(r.CheckIn)
	if err != nil {
		return provider.ExternalBooking{}, errors.Wrapf(err, "reservation %s: invalid check_in", r.ReservationID)
	}

	checkOut, err := daterange.Parse(r.CheckOut)
	if err != nil {
		return provider.ExternalBooking{}, errors.Wrapf(err, "reservation %s: invalid check_out", r.ReservationID)
	}

	var status string

	switch strings.ToUpper(r.Status) {
	case statusConfirmed:
		status = provider.BookingStatusConfirmed
	case statusCancelled:
		status = provider.BookingStatusCancelled
	default:
		return provider.ExternalBooking{}, errors.Newf("reservation %s: unsupported status %q", r.ReservationID, r.Status)
	}

	booking := provider.ExternalBooking{
		ExternalID:       r.ReservationID,
		ExternalRoomCode: r.RoomCode,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           r.Adults + r.Children,
		Guest:            provider.GuestContact{Name: r.Guest.Name, Email: r.Guest.Email},
		TotalAmount:      r.AmountMinor,
		Status:           status,
		CreatedAt:        r.CreatedAt,
	}

	if r.Guest.Phone != constant.Empty {
		phone := r.Guest.Phone
		booking.Guest.Phone = &phone
	}

	return booking, nil
}

func (a *adapter) hotelPath(resource string) string {
	return fmt.Sprintf("%s/v1/hotels/%s/%s", a.baseURL, url.PathEscape(a.hotelCode), resource)
}

// do sends body as JSON and decodes the response into out. Network errors, 429 and 5xx are transient.
func (a *adapter) do(ctx context.Context, method, target string, body, out any) error {
	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal makemytrip request")
		}

		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errors.Wrap(err, "build makemytrip request")
	}

	req.Header.Set(headerAPIKey, a.apiKey)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := a.client.Do(req)
	if err != nil {
		return provider.Transient(errors.Wrap(err, "makemytrip request failed"))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		statusErr := errors.Newf("makemytrip returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return provider.Transient(statusErr)
		}

		return statusErr
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode makemytrip response")
	}

	return nil
}
