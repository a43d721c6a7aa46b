// Package validate holds the per-command constraint tables of the SDL1000X
// and the rule kinds used to check values before they reach the instrument.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	sdlerr "github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/errors"
)

// Range validates a float against [Min, Max] and formats the accepted value
// with Places decimals for the wire
type Range struct {
	Min    float64
	Max    float64
	Places int
}

// Validate checks v against the range and returns the formatted SCPI argument
func (r Range) Validate(parameter string, v float64) (string, error) {
	if v < r.Min || v > r.Max {
		return "", sdlerr.NewInvalidParameter(parameter, v,
			fmt.Sprintf("range [%g, %g]", r.Min, r.Max))
	}
	return strconv.FormatFloat(v, 'f', r.Places, 64), nil
}

// IntRange validates an integer against [Min, Max]
type IntRange struct {
	Min int
	Max int
}

// Validate checks v against the range and returns the formatted SCPI argument
func (r IntRange) Validate(parameter string, v int) (string, error) {
	if v < r.Min || v > r.Max {
		return "", sdlerr.NewInvalidParameter(parameter, v,
			fmt.Sprintf("range [%d, %d]", r.Min, r.Max))
	}
	return strconv.Itoa(v), nil
}

// Enum validates a string against a discrete allowed set, case-insensitively
type Enum struct {
	Allowed []string
}

// Validate checks s against the allowed set and returns the canonical
// uppercase token
func (e Enum) Validate(parameter, s string) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	for _, a := range e.Allowed {
		if v == a {
			return a, nil
		}
	}
	return "", sdlerr.NewInvalidParameter(parameter, s,
		"one of "+strings.Join(e.Allowed, "|"))
}

// IntEnum validates an integer against a discrete allowed set
type IntEnum struct {
	Allowed []int
}

// Validate checks v against the allowed set and returns the formatted SCPI
// argument
func (e IntEnum) Validate(parameter string, v int) (string, error) {
	for _, a := range e.Allowed {
		if v == a {
			return strconv.Itoa(v), nil
		}
	}
	allowed := make([]string, 0, len(e.Allowed))
	for _, a := range e.Allowed {
		allowed = append(allowed, strconv.Itoa(a))
	}
	return "", sdlerr.NewInvalidParameter(parameter, v,
		"one of "+strings.Join(allowed, "|"))
}

// OnOff formats a boolean as the instrument's ON|OFF token. Booleans need no
// validation, only formatting.
func OnOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
