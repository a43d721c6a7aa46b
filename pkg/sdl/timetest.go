package sdl

import (
	"context"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// ModeTime is the voltage transition time test: the instrument measures the
// rise and fall time of the source voltage between two programmed
// thresholds.
type ModeTime struct {
	cmd    *Command
	input  *Input
	limits validate.TestLimits
}

func newModeTime(cmd *Command, input *Input, limits validate.TestLimits) *ModeTime {
	return &ModeTime{cmd: cmd, input: input, limits: limits}
}

// Enable arms the time test on the instrument
func (m *ModeTime) Enable(ctx context.Context) error {
	return m.cmd.Set(ctx, ":TIME:STAT", "ON")
}

// Disable disarms the time test
func (m *ModeTime) Disable(ctx context.Context) error {
	return m.cmd.Set(ctx, ":TIME:STAT", "OFF")
}

// Enabled reports whether the time test is armed
func (m *ModeTime) Enabled(ctx context.Context) (bool, error) {
	return m.cmd.QueryBool(ctx, ":TIME:STAT?")
}

// On arms the time test and then turns the input on. The input step does
// not execute if arming fails.
func (m *ModeTime) On(ctx context.Context) error {
	if err := m.Enable(ctx); err != nil {
		return err
	}
	return m.input.On(ctx)
}

// VoltageLow returns the lower trigger threshold in volts
func (m *ModeTime) VoltageLow(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":TIME:TEST:VOLT:LOW?")
}

// SetVoltageLow programs the lower trigger threshold
func (m *ModeTime) SetVoltageLow(ctx context.Context, v float64) error {
	arg, err := m.limits.Voltage().Validate("voltage_low", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":TIME:TEST:VOLT:LOW", arg)
}

// VoltageHigh returns the upper trigger threshold in volts
func (m *ModeTime) VoltageHigh(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":TIME:TEST:VOLT:HIGH?")
}

// SetVoltageHigh programs the upper trigger threshold
func (m *ModeTime) SetVoltageHigh(ctx context.Context, v float64) error {
	arg, err := m.limits.Voltage().Validate("voltage_high", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":TIME:TEST:VOLT:HIGH", arg)
}

// RiseTime returns the measured rise time in seconds
func (m *ModeTime) RiseTime(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":TIME:TEST:RISE?")
}

// FallTime returns the measured fall time in seconds
func (m *ModeTime) FallTime(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":TIME:TEST:FALL?")
}

// Values returns a fresh snapshot of the input and time test settings
func (m *ModeTime) Values(ctx context.Context) (Snapshot, error) {
	input, err := m.input.values(ctx, "TIME")
	if err != nil {
		return Snapshot{}, err
	}
	mode, err := m.cmd.queryValues(ctx, map[string]string{
		"enable":       ":TIME:STAT?",
		"voltage_low":  ":TIME:TEST:VOLT:LOW?",
		"voltage_high": ":TIME:TEST:VOLT:HIGH?",
		"rise_time":    ":TIME:TEST:RISE?",
		"fall_time":    ":TIME:TEST:FALL?",
	})
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Input: input, Mode: mode}, nil
}
