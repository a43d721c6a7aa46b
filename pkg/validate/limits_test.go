package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLimits(t *testing.T) {
	tests := []struct {
		name      string
		idn       string
		highPower bool
	}{
		{"standard model", "Siglent Technologies,SDL1020X,SDL13GCC6R0001,1.1.1.21", false},
		{"economy model", "Siglent Technologies,SDL1020X-E,SDL13GCC6R0002,1.1.1.21", false},
		{"high power", "Siglent Technologies,SDL1030X,SDL13GCC6R0003,1.1.1.21", true},
		{"high power economy", "Siglent Technologies,SDL1030X-E,SDL13GCC6R0004,1.1.1.21", true},
		{"model with spaces", "Siglent Technologies, SDL1030X ,SDL13GCC6R0005,1.1.1.21", true},
		{"malformed reply", "garbage", false},
		{"empty reply", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.highPower, DetectLimits(tt.idn).HighPower)
		})
	}
}

func TestPowerLimitDependsOnModel(t *testing.T) {
	_, err := Limits{}.Power().Validate("power", 200)
	assert.NoError(t, err)
	_, err = Limits{}.Power().Validate("power", 200.01)
	assert.Error(t, err)

	_, err = Limits{HighPower: true}.Power().Validate("power", 300)
	assert.NoError(t, err)
	_, err = Limits{HighPower: true}.Power().Validate("power", 300.01)
	assert.Error(t, err)
}

func TestFunctionEnums(t *testing.T) {
	l := Limits{}

	// Full and abbreviated SCPI forms are both accepted
	for _, fn := range []string{"CURRENT", "CURR", "VOLTAGE", "VOLT", "POWER", "POW", "RESISTANCE", "RES", "LED"} {
		_, err := l.StaticFunction().Validate("function", fn)
		assert.NoError(t, err, fn)
	}

	// LED has no transient variant
	_, err := l.TransientFunction().Validate("function", "LED")
	assert.Error(t, err)
	_, err = l.TransientFunction().Validate("function", "RES")
	assert.NoError(t, err)
}

func TestResistanceRangeMembers(t *testing.T) {
	l := Limits{}
	for _, rr := range []string{"LOW", "MIDDLE", "HIGH", "UPPER"} {
		_, err := l.ResistanceRange().Validate("resistance_range", rr)
		assert.NoError(t, err, rr)
	}
	_, err := l.ResistanceRange().Validate("resistance_range", "MAX")
	assert.Error(t, err)
}

func TestSlewBounds(t *testing.T) {
	l := Limits{}
	_, err := l.Slew().Validate("slew", 0.001)
	assert.NoError(t, err)
	_, err = l.Slew().Validate("slew", 2.5)
	assert.NoError(t, err)
	_, err = l.Slew().Validate("slew", 2.501)
	assert.Error(t, err)
}

func TestBatteryLevelRuleBySubMode(t *testing.T) {
	tl := TestLimits{}

	tests := []struct {
		mode string
		max  float64
	}{
		{"CURRENT", 30},
		{"CURR", 30},
		{"VOLTAGE", 150},
		{"RESISTANCE", 10000},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			rule := tl.BatteryLevel(tt.mode)
			_, err := rule.Validate("level", tt.max)
			require.NoError(t, err)
			_, err = rule.Validate("level", tt.max+1)
			assert.Error(t, err)
		})
	}
}

func TestProgramLevelLEDUsesVoltageRule(t *testing.T) {
	tl := TestLimits{}
	_, err := tl.ProgramLevel("LED").Validate("level", 150)
	assert.NoError(t, err)
	_, err = tl.ProgramLevel("LED").Validate("level", 151)
	assert.Error(t, err)
}

func TestStepMinMaxOppositeQuantity(t *testing.T) {
	tl := TestLimits{}

	// Voltage steps are judged on current
	_, err := tl.StepMinMax("VOLTAGE").Validate("max", 30)
	assert.NoError(t, err)
	_, err = tl.StepMinMax("VOLTAGE").Validate("max", 31)
	assert.Error(t, err)

	// Everything else is judged on voltage
	_, err = tl.StepMinMax("CURRENT").Validate("max", 150)
	assert.NoError(t, err)
	_, err = tl.StepMinMax("CURRENT").Validate("max", 151)
	assert.Error(t, err)
}

func TestStepRules(t *testing.T) {
	tl := TestLimits{}

	_, err := tl.StepIndex().Validate("step", 100)
	assert.NoError(t, err)
	_, err = tl.StepIndex().Validate("step", 101)
	assert.Error(t, err)

	_, err = tl.StepTime().Validate("time", 0.01)
	assert.NoError(t, err)
	_, err = tl.StepTime().Validate("time", 0.009)
	assert.Error(t, err)

	_, err = tl.StepDelay().Validate("delay", 999)
	assert.NoError(t, err)
	_, err = tl.StepDelay().Validate("delay", 999.5)
	assert.Error(t, err)
}
