package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity ErrorSeverity
		want     string
	}{
		{SeverityInfo, "INFO"},
		{SeverityWarning, "WARNING"},
		{SeverityError, "ERROR"},
		{SeverityCritical, "CRITICAL"},
		{ErrorSeverity(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.severity.String())
	}
}

func TestInvalidParameterError(t *testing.T) {
	err := NewInvalidParameter("level", 31.5, "range [0, 30]")

	assert.Equal(t, "level", err.Parameter)
	assert.Equal(t, 31.5, err.Value)
	assert.Equal(t, SeverityWarning, err.Severity)
	assert.Equal(t, 1, err.Code)
	assert.Contains(t, err.Error(), "level")
	assert.Contains(t, err.Error(), "range [0, 30]")
}

func TestTransportErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError("dial", cause, "10.0.0.5:5025")

	assert.Equal(t, SeverityError, err.Severity)
	assert.Equal(t, 2, err.Code)
	assert.Contains(t, err.Error(), "10.0.0.5:5025")
	assert.ErrorIs(t, err, cause)
}

func TestDeviceErrorCarriesInstrumentFault(t *testing.T) {
	err := NewDeviceError(":CURR 31", 30, "Invalid character")

	assert.Equal(t, 30, err.DeviceCode)
	assert.Equal(t, "Invalid character", err.Message)
	assert.Equal(t, 3, err.Code)
	assert.Contains(t, err.Error(), "Invalid character")
}

func TestErrorsAsMatching(t *testing.T) {
	wrapped := fmt.Errorf("setting level: %w", NewInvalidParameter("level", 31, "range [0, 30]"))

	var invalid *InvalidParameterError
	require.ErrorAs(t, wrapped, &invalid)
	assert.Equal(t, "level", invalid.Parameter)

	var transport *TransportError
	assert.False(t, errors.As(wrapped, &transport))
}
