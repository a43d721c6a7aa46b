package errors

import (
	"fmt"
)

// ErrorSeverity defines the severity level of an error
type ErrorSeverity int

const (
	SeverityInfo ErrorSeverity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

// String returns the string representation of the severity
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// DriverError is the base error type for all driver errors
type DriverError struct {
	Op       string        // Operation that failed
	Err      error         // Underlying error
	Severity ErrorSeverity // Error severity
	Code     int           // Diagnostic code for telemetry
}

// Error implements the error interface
func (e *DriverError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Severity, e.Op, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Severity, e.Op)
}

// Unwrap returns the underlying error
func (e *DriverError) Unwrap() error {
	return e.Err
}

// InvalidParameterError reports a value rejected by a local range or enum
// check. The value never reaches the instrument.
type InvalidParameterError struct {
	DriverError
	Parameter  string
	Value      interface{}
	Constraint string
}

// NewInvalidParameter creates a new invalid parameter error
func NewInvalidParameter(parameter string, value interface{}, constraint string) *InvalidParameterError {
	return &InvalidParameterError{
		DriverError: DriverError{
			Op:       "validate " + parameter,
			Severity: SeverityWarning,
			Code:     1, // Validation error diagnostic code
		},
		Parameter:  parameter,
		Value:      value,
		Constraint: constraint,
	}
}

// Error implements the error interface
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("[%s] Parameter '%s': value %v not allowed, expected %s",
		e.Severity, e.Parameter, e.Value, e.Constraint)
}

// TransportError represents a connection, read or write failure on the
// instrument bus
type TransportError struct {
	DriverError
	Addr string
}

// NewTransportError creates a new transport error
func NewTransportError(op string, err error, addr string) *TransportError {
	return &TransportError{
		DriverError: DriverError{
			Op:       op,
			Err:      err,
			Severity: SeverityError,
			Code:     2, // Transport error diagnostic code
		},
		Addr: addr,
	}
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.Addr != "" {
		return fmt.Sprintf("[%s] Transport %s: %s: %v", e.Severity, e.Addr, e.Op, e.Err)
	}
	return fmt.Sprintf("[%s] Transport: %s: %v", e.Severity, e.Op, e.Err)
}

// DeviceError represents a fault reported by the instrument through its
// standard event register after a command executed
type DeviceError struct {
	DriverError
	DeviceCode int    // Instrument-reported error code
	Message    string // Instrument-reported error message
}

// NewDeviceError creates a new device error
func NewDeviceError(op string, deviceCode int, message string) *DeviceError {
	return &DeviceError{
		DriverError: DriverError{
			Op:       op,
			Severity: SeverityError,
			Code:     3, // Device error diagnostic code
		},
		DeviceCode: deviceCode,
		Message:    message,
	}
}

// Error implements the error interface
func (e *DeviceError) Error() string {
	return fmt.Sprintf("[%s] Instrument fault %d (%s): %s",
		e.Severity, e.DeviceCode, e.Message, e.Op)
}
