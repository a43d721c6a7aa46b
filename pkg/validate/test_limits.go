package validate

import "strings"

// TestLimits extends Limits with the rules specific to the auxiliary test
// modes (battery, LED, list, program, OCP/OPP, timer).
//
// The level rules depend on the sub-mode currently configured on the
// instrument; callers query that mode first and pass the reply in. The
// instrument is re-queried on every validation rather than cached, so a
// front-panel change between calls cannot make a stale bound pass.
type TestLimits struct {
	Limits
}

// BatteryMode returns the rule for the :BATT:MODE command
func (t TestLimits) BatteryMode() Enum {
	return Enum{Allowed: batteryModes}
}

// BatteryLevel returns the discharge level rule for the given battery
// sub-mode
func (t TestLimits) BatteryLevel(mode string) Range {
	switch canonicalFunction(mode) {
	case "CURR":
		return t.Current()
	case "VOLT":
		return t.Voltage()
	default:
		return t.Resistance()
	}
}

// ListLevel returns the step level rule for the given list sub-mode
func (t TestLimits) ListLevel(mode string) Range {
	switch canonicalFunction(mode) {
	case "CURR":
		return t.Current()
	case "VOLT":
		return t.Voltage()
	case "RES":
		return t.Resistance()
	default:
		return t.Power()
	}
}

// ProgramLevel returns the step level rule for the given program sub-mode
func (t TestLimits) ProgramLevel(mode string) Range {
	switch canonicalFunction(mode) {
	case "CURR":
		return t.Current()
	case "VOLT", "LED":
		return t.Voltage()
	case "RES":
		return t.Resistance()
	default:
		return t.Power()
	}
}

// StepMinMax returns the rule for the program step pass/fail bounds: the
// checked quantity is current when stepping voltage and voltage otherwise
func (t TestLimits) StepMinMax(mode string) Range {
	if canonicalFunction(mode) == "VOLT" {
		return t.Current()
	}
	return t.Voltage()
}

// Capacity returns the battery capacity stop rule in mAh
func (t TestLimits) Capacity() IntRange {
	return IntRange{Min: 0, Max: 999999}
}

// BatteryTimer returns the battery timer stop rule in seconds
func (t TestLimits) BatteryTimer() IntRange {
	return IntRange{Min: 0, Max: 86400}
}

// ListCount returns the list repeat count rule
func (t TestLimits) ListCount() IntRange {
	return IntRange{Min: 0, Max: 255}
}

// StepIndex returns the rule for step-addressed commands
func (t TestLimits) StepIndex() IntRange {
	return IntRange{Min: 0, Max: 100}
}

// StepTime returns the per-step time rule in seconds
func (t TestLimits) StepTime() Range {
	return Range{Min: 0.01, Max: 100, Places: 3}
}

// StepDelay returns the OCP/OPP step delay rule in seconds
func (t TestLimits) StepDelay() Range {
	return Range{Min: 0.001, Max: 999, Places: 3}
}

// LEDRco returns the LED operating point coefficient rule
func (t TestLimits) LEDRco() Range {
	return Range{Min: 0, Max: 1, Places: 2}
}

// canonicalFunction reduces a function token reply to its abbreviated SCPI
// form for comparison ("CURRENT" -> "CURR")
func canonicalFunction(mode string) string {
	m := strings.ToUpper(strings.TrimSpace(mode))
	switch {
	case strings.HasPrefix(m, "CURR"):
		return "CURR"
	case strings.HasPrefix(m, "VOLT"):
		return "VOLT"
	case strings.HasPrefix(m, "POW"):
		return "POW"
	case strings.HasPrefix(m, "RES"):
		return "RES"
	case strings.HasPrefix(m, "LED"):
		return "LED"
	default:
		return m
	}
}
