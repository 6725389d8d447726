package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotelbook/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "check_out must be after check_in",
	}

	if f.Error() != "check_out must be after check_in" {
		t.Errorf("unexpected error message %q", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"bad request", failure.BadRequestFromString("guests exceeds capacity"), http.StatusBadRequest, "guests exceeds capacity"},
		{"bad request from error", failure.BadRequest(errors.New("invalid date")), http.StatusBadRequest, "invalid date"},
		{"unauthorized", failure.Unauthorized("invalid webhook signature"), http.StatusUnauthorized, "invalid webhook signature"},
		{"internal", failure.InternalError(errors.New("db down")), http.StatusInternalServerError, "db down"},
		{"not found", failure.NotFound("booking not found"), http.StatusNotFound, "booking not found"},
		{"conflict", failure.Conflict("booking already cancelled"), http.StatusConflict, "booking already cancelled"},
		{"insufficient balance", failure.InsufficientBalance("not enough points"), http.StatusUnprocessableEntity, "not enough points"},
		{"external service", failure.ExternalService("payment gateway unavailable"), http.StatusBadGateway, "payment gateway unavailable"},
		{"forbidden", failure.Forbidden("admins only"), http.StatusForbidden, "admins only"},
		{"unimplemented", failure.Unimplemented("PushRates"), http.StatusNotImplemented, "PushRates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) should be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) should be nil")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{"failure", failure.NotFound("room type not found"), http.StatusNotFound},
		{"wrapped failure", fmt.Errorf("confirm payment: %w", failure.Conflict("cancelled")), http.StatusConflict},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.input); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("redeem: %w", failure.InsufficientBalance("not enough points"))

	if !failure.IsCode(err, http.StatusUnprocessableEntity) {
		t.Error("expected wrapped insufficient balance failure to match")
	}

	if failure.IsCode(errors.New("plain"), http.StatusUnprocessableEntity) {
		t.Error("plain error must not match")
	}
}
