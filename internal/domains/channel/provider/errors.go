package provider

import (
	"github.com/cockroachdb/errors"
)

// ErrTransient marks failures worth retrying: network errors, 5xx and 429 responses.
var ErrTransient = errors.New("transient provider failure")

var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrDisabled        = errors.New("provider is not enabled")
)

// Transient marks err as retryable while keeping its message and cause.
func Transient(err error) error {
	if err == nil {
		return nil
	}

	return errors.Mark(err, ErrTransient)
}

func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

// Failed converts an adapter error into a result.
func Failed(err error) SyncResult {
	return SyncResult{
		Success:   false,
		Errors:    []string{err.Error()},
		Retryable: IsTransient(err),
	}
}
