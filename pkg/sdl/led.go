package sdl

import (
	"context"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// ModeLED is the LED simulation mode: the load models an LED string with a
// programmed forward voltage, current and operating point coefficient.
type ModeLED struct {
	cmd    *Command
	input  *Input
	limits validate.TestLimits
}

func newModeLED(cmd *Command, input *Input, limits validate.TestLimits) *ModeLED {
	return &ModeLED{cmd: cmd, input: input, limits: limits}
}

// Enable arms LED mode on the instrument
func (m *ModeLED) Enable(ctx context.Context) error {
	return m.cmd.Set(ctx, ":FUNC", "LED")
}

// Enabled reports whether LED mode is the one armed
func (m *ModeLED) Enabled(ctx context.Context) (bool, error) {
	fn, err := m.cmd.QueryEnum(ctx, ":FUNC?")
	if err != nil {
		return false, err
	}
	return fn == "LED", nil
}

// On arms LED mode and then turns the input on. The input step does not
// execute if arming fails.
func (m *ModeLED) On(ctx context.Context) error {
	if err := m.Enable(ctx); err != nil {
		return err
	}
	return m.input.On(ctx)
}

// Voltage returns the programmed LED string voltage in volts
func (m *ModeLED) Voltage(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":LED:VOLT?")
}

// SetVoltage programs the LED string voltage
func (m *ModeLED) SetVoltage(ctx context.Context, v float64) error {
	arg, err := m.limits.Voltage().Validate("voltage", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LED:VOLT", arg)
}

// Current returns the programmed LED string current in amperes
func (m *ModeLED) Current(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":LED:CURR?")
}

// SetCurrent programs the LED string current
func (m *ModeLED) SetCurrent(ctx context.Context, v float64) error {
	arg, err := m.limits.Current().Validate("current", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LED:CURR", arg)
}

// CurrentRange returns the selected current range in amperes
func (m *ModeLED) CurrentRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":LED:IRANG?")
}

// SetCurrentRange selects the current range
func (m *ModeLED) SetCurrentRange(ctx context.Context, v int) error {
	arg, err := m.limits.CurrentRange().Validate("current_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LED:IRANG", arg)
}

// VoltageRange returns the selected voltage range in volts
func (m *ModeLED) VoltageRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":LED:VRANG?")
}

// SetVoltageRange selects the voltage range
func (m *ModeLED) SetVoltageRange(ctx context.Context, v int) error {
	arg, err := m.limits.VoltageRange().Validate("voltage_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LED:VRANG", arg)
}

// Rco returns the LED operating point coefficient
func (m *ModeLED) Rco(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":LED:RCO?")
}

// SetRco programs the LED operating point coefficient
func (m *ModeLED) SetRco(ctx context.Context, v float64) error {
	arg, err := m.limits.LEDRco().Validate("rco", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LED:RCO", arg)
}

// Values returns a fresh snapshot of the input and LED mode settings
func (m *ModeLED) Values(ctx context.Context) (Snapshot, error) {
	fn, err := m.cmd.QueryEnum(ctx, ":FUNC?")
	if err != nil {
		return Snapshot{}, err
	}
	input, err := m.input.values(ctx, "STATIC "+fn)
	if err != nil {
		return Snapshot{}, err
	}
	mode, err := m.cmd.queryValues(ctx, map[string]string{
		"voltage":       ":LED:VOLT?",
		"current":       ":LED:CURR?",
		"current_range": ":LED:IRANG?",
		"voltage_range": ":LED:VRANG?",
		"rco":           ":LED:RCO?",
	})
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Input: input, Mode: mode}, nil
}
