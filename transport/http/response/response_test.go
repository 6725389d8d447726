package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelbook/shared/constant"
	"hotelbook/shared/failure"
	"hotelbook/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation keeps its message", failure.BadRequestFromString("check_out must be after check_in"), http.StatusBadRequest, "check_out must be after check_in"},
		{"conflict keeps its message", failure.Conflict("room type is sold out"), http.StatusConflict, "room type is sold out"},
		{"gateway failure is hidden", failure.ExternalService("razorpay: 503 service unavailable"), http.StatusBadGateway, constant.ResponseErrorTryAgain},
		{"unexpected error is hidden", errors.New("pq: connection refused"), http.StatusInternalServerError, constant.ResponseErrorTryAgain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
			assert.Equal(t, tt.message, decodeError(t, rec))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]int{"total": 1238000})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"total":1238000}}`, rec.Body.String())
}
