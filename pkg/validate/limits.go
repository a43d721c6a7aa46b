package validate

import "strings"

// Function tokens accepted by the :FUNC family of commands. Both the full
// and the abbreviated SCPI form are accepted; the instrument takes either.
var (
	staticFunctions    = []string{"CURRENT", "CURR", "VOLTAGE", "VOLT", "POWER", "POW", "RESISTANCE", "RES", "LED"}
	transientFunctions = []string{"CURRENT", "CURR", "VOLTAGE", "VOLT", "POWER", "POW", "RESISTANCE", "RES"}
	pulseModes         = []string{"CONTINUOUS", "CONT", "PULSE", "PULS", "TOGGLE", "TOGG"}
	resistanceRanges   = []string{"LOW", "MIDDLE", "HIGH", "UPPER"}
	batteryModes       = []string{"CURRENT", "CURR", "VOLTAGE", "VOLT", "RESISTANCE", "RES"}
)

// Limits is the static constraint table for one instrument. The power bound
// depends on the model: SDL1030X and SDL1030X-E sink up to 300 W, the rest
// up to 200 W.
type Limits struct {
	HighPower bool
}

// highPowerModels are the 300 W members of the SDL1000X series
var highPowerModels = []string{"SDL1030X", "SDL1030X-E"}

// DetectLimits derives the limit table from a *IDN? reply
// ("Siglent Technologies,<model>,<serial>,<firmware>")
func DetectLimits(idn string) Limits {
	fields := strings.Split(idn, ",")
	if len(fields) < 2 {
		return Limits{}
	}
	model := strings.TrimSpace(fields[1])
	for _, m := range highPowerModels {
		if model == m {
			return Limits{HighPower: true}
		}
	}
	return Limits{}
}

// Current returns the sink current rule in amperes
func (l Limits) Current() Range {
	return Range{Min: 0, Max: 30, Places: 3}
}

// Voltage returns the voltage rule in volts
func (l Limits) Voltage() Range {
	return Range{Min: 0, Max: 150, Places: 3}
}

// Power returns the sink power rule in watts, model dependent
func (l Limits) Power() Range {
	if l.HighPower {
		return Range{Min: 0, Max: 300, Places: 2}
	}
	return Range{Min: 0, Max: 200, Places: 2}
}

// Resistance returns the resistance rule in ohms
func (l Limits) Resistance() Range {
	return Range{Min: 0.03, Max: 10000, Places: 3}
}

// Slew returns the slew rate rule in A/us
func (l Limits) Slew() Range {
	return Range{Min: 0.001, Max: 2.5, Places: 3}
}

// PulseWidth returns the transient pulse width rule in seconds
func (l Limits) PulseWidth() Range {
	return Range{Min: 0.00002, Max: 999, Places: 6}
}

// CurrentRange returns the selectable current range rule in amperes
func (l Limits) CurrentRange() IntEnum {
	return IntEnum{Allowed: []int{5, 30}}
}

// VoltageRange returns the selectable voltage range rule in volts
func (l Limits) VoltageRange() IntEnum {
	return IntEnum{Allowed: []int{36, 150}}
}

// ResistanceRange returns the selectable resistance range rule
func (l Limits) ResistanceRange() Enum {
	return Enum{Allowed: resistanceRanges}
}

// StaticFunction returns the rule for the :FUNC command
func (l Limits) StaticFunction() Enum {
	return Enum{Allowed: staticFunctions}
}

// TransientFunction returns the rule for the :FUNC:TRAN command
func (l Limits) TransientFunction() Enum {
	return Enum{Allowed: transientFunctions}
}

// PulseMode returns the rule for the transient pulse mode
func (l Limits) PulseMode() Enum {
	return Enum{Allowed: pulseModes}
}

// Register8 returns the rule for 8-bit enable register masks
func (l Limits) Register8() IntRange {
	return IntRange{Min: 0, Max: 255}
}

// Register16 returns the rule for 16-bit register values
func (l Limits) Register16() IntRange {
	return IntRange{Min: 0, Max: 65535}
}

// Preset returns the rule for setup memory slots (*SAV / *RCL)
func (l Limits) Preset() IntRange {
	return IntRange{Min: 0, Max: 9}
}
