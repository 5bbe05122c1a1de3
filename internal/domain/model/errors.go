package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork matches any NetworkError
	ErrNetwork = errors.New("network error")
	// ErrPositionUnavailable matches any PositionUnavailableError
	ErrPositionUnavailable = errors.New("position unavailable")
	// ErrStorageParse matches any StorageParseError
	ErrStorageParse = errors.New("stored value could not be parsed")
	// ErrCityExists is returned when adding a city whose id is already stored
	ErrCityExists = errors.New("city already exists")
	// ErrCityNotFound is returned when removing an id that is not stored
	ErrCityNotFound = errors.New("city not found")
	// ErrInvalidWidgetConfig matches configuration errors from widget attributes
	ErrInvalidWidgetConfig = errors.New("invalid widget configuration")
)

// NetworkError is returned when a provider call fails at the transport level
// or answers with a non-success status. StatusCode is 0 for transport failures.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: provider responded with status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// PositionUnavailableError is returned when the current position cannot be resolved.
type PositionUnavailableError struct {
	Reason string
	Err    error
}

func (e *PositionUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("position unavailable: %s: %v", e.Reason, e.Err)
	}
	return "position unavailable: " + e.Reason
}

func (e *PositionUnavailableError) Unwrap() error { return e.Err }

func (e *PositionUnavailableError) Is(target error) bool { return target == ErrPositionUnavailable }

// StorageParseError describes a stored value that could not be decoded.
// Stores log it and hand it to a handler; it is never returned to callers.
type StorageParseError struct {
	Key string
	Err error
}

func (e *StorageParseError) Error() string {
	return fmt.Sprintf("failed to parse stored value under key %q: %v", e.Key, e.Err)
}

func (e *StorageParseError) Unwrap() error { return e.Err }

func (e *StorageParseError) Is(target error) bool { return target == ErrStorageParse }
