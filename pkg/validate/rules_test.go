package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdlerr "github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/errors"
)

func TestRangeValidate(t *testing.T) {
	r := Range{Min: 0, Max: 30, Places: 3}

	tests := []struct {
		name  string
		value float64
		want  string
		ok    bool
	}{
		{"min boundary", 0, "0.000", true},
		{"max boundary", 30, "30.000", true},
		{"interior", 2.5, "2.500", true},
		{"below min", -0.001, "", false},
		{"above max", 30.001, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Validate("current", tt.value)
			if !tt.ok {
				var invalid *sdlerr.InvalidParameterError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, "current", invalid.Parameter)
				assert.Equal(t, tt.value, invalid.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangeFormatsPlaces(t *testing.T) {
	got, err := Range{Min: 0, Max: 999, Places: 6}.Validate("width", 0.00002)
	require.NoError(t, err)
	assert.Equal(t, "0.000020", got)
}

func TestIntRangeValidate(t *testing.T) {
	r := IntRange{Min: 0, Max: 255}

	tests := []struct {
		name  string
		value int
		ok    bool
	}{
		{"min boundary", 0, true},
		{"max boundary", 255, true},
		{"below min", -1, false},
		{"above max", 256, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Validate("mask", tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestEnumValidateCanonicalizes(t *testing.T) {
	e := Enum{Allowed: []string{"LOW", "MIDDLE", "HIGH", "UPPER"}}

	for _, member := range e.Allowed {
		got, err := e.Validate("resistance_range", member)
		require.NoError(t, err)
		assert.Equal(t, member, got)
	}

	got, err := e.Validate("resistance_range", " middle ")
	require.NoError(t, err)
	assert.Equal(t, "MIDDLE", got)

	_, err = e.Validate("resistance_range", "MEDIUM")
	var invalid *sdlerr.InvalidParameterError
	assert.ErrorAs(t, err, &invalid)
}

func TestIntEnumValidate(t *testing.T) {
	e := IntEnum{Allowed: []int{5, 30}}

	for _, member := range e.Allowed {
		_, err := e.Validate("current_range", member)
		assert.NoError(t, err)
	}
	_, err := e.Validate("current_range", 10)
	assert.Error(t, err)
}

func TestOnOff(t *testing.T) {
	assert.Equal(t, "ON", OnOff(true))
	assert.Equal(t, "OFF", OnOff(false))
}
