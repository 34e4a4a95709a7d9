package handler

import "fmt"

// MissingBodyError is returned when the request carries no JSON document.
type MissingBodyError struct{}

func (m *MissingBodyError) Error() string {
	return "missing request body"
}

// InvalidPayloadError is returned when the request body cannot be decoded.
type InvalidPayloadError struct {
	Cause error
}

func (m *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid request body: %v", m.Cause)
}

func (m *InvalidPayloadError) Unwrap() error {
	return m.Cause
}
