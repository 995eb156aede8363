package geocoder

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAddress is returned when a lookup is requested for a blank address.
	ErrEmptyAddress = errors.New("geocoder: address cannot be empty")
	// ErrNoResults is returned when the provider answers OK without any result.
	ErrNoResults = errors.New("geocoder: no results")
)

// ProviderError describes a failed call to the geocoding provider.
type ProviderError struct {
	Status     string // provider status, e.g. REQUEST_DENIED
	StatusCode int    // HTTP status code, 0 on transport failure
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("geocoder: provider error (http %d, status %q)", e.StatusCode, e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
