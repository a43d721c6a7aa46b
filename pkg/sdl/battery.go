package sdl

import (
	"context"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// ModeBattery is the battery discharge test mode. The discharge level rule
// depends on the battery sub-mode (current, voltage or resistance), so the
// sub-mode is queried from the instrument before every level validation.
type ModeBattery struct {
	cmd    *Command
	input  *Input
	limits validate.TestLimits
}

func newModeBattery(cmd *Command, input *Input, limits validate.TestLimits) *ModeBattery {
	return &ModeBattery{cmd: cmd, input: input, limits: limits}
}

// Enable arms the battery test on the instrument
func (m *ModeBattery) Enable(ctx context.Context) error {
	return m.cmd.Exec(ctx, ":BATT:FUNC")
}

// Enabled reports whether the battery test is armed
func (m *ModeBattery) Enabled(ctx context.Context) (bool, error) {
	return m.cmd.QueryBool(ctx, ":BATT:FUNC?")
}

// On arms the battery test and then turns the input on. The input step does
// not execute if arming fails.
func (m *ModeBattery) On(ctx context.Context) error {
	if err := m.Enable(ctx); err != nil {
		return err
	}
	return m.input.On(ctx)
}

// Mode returns the battery discharge sub-mode token
func (m *ModeBattery) Mode(ctx context.Context) (string, error) {
	return m.cmd.QueryEnum(ctx, ":BATT:MODE?")
}

// SetMode selects the battery discharge sub-mode
func (m *ModeBattery) SetMode(ctx context.Context, mode string) error {
	arg, err := m.limits.BatteryMode().Validate("batt_mode", mode)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":BATT:MODE", arg)
}

// Level returns the programmed discharge level
func (m *ModeBattery) Level(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":BATT:LEV?")
}

// SetLevel programs the discharge level. The bound depends on the sub-mode
// configured on the instrument, which is queried first.
func (m *ModeBattery) SetLevel(ctx context.Context, v float64) error {
	mode, err := m.Mode(ctx)
	if err != nil {
		return err
	}
	arg, err := m.limits.BatteryLevel(mode).Validate("level", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":BATT:LEV", arg)
}

// VStop returns the discharge stop voltage in volts
func (m *ModeBattery) VStop(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":BATT:VOLT?")
}

// SetVStop programs the discharge stop voltage
func (m *ModeBattery) SetVStop(ctx context.Context, v float64) error {
	arg, err := m.limits.Voltage().Validate("v_stop", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":BATT:VOLT", arg)
}

// CStop returns the discharge stop capacity in mAh
func (m *ModeBattery) CStop(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":BATT:CAP?")
}

// SetCStop programs the discharge stop capacity
func (m *ModeBattery) SetCStop(ctx context.Context, v int) error {
	arg, err := m.limits.Capacity().Validate("c_stop", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":BATT:CAP", arg)
}

// TStop returns the discharge stop time in seconds
func (m *ModeBattery) TStop(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":BATT:TIM?")
}

// SetTStop programs the discharge stop time
func (m *ModeBattery) SetTStop(ctx context.Context, v int) error {
	arg, err := m.limits.BatteryTimer().Validate("t_stop", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":BATT:TIM", arg)
}

// VStopEnabled reports whether the voltage stop condition is armed
func (m *ModeBattery) VStopEnabled(ctx context.Context) (bool, error) {
	return m.cmd.QueryBool(ctx, ":BATT:VOLT:STAT?")
}

// SetVStopEnabled arms or disarms the voltage stop condition
func (m *ModeBattery) SetVStopEnabled(ctx context.Context, on bool) error {
	return m.cmd.Set(ctx, ":BATT:VOLT:STAT", validate.OnOff(on))
}

// CStopEnabled reports whether the capacity stop condition is armed
func (m *ModeBattery) CStopEnabled(ctx context.Context) (bool, error) {
	return m.cmd.QueryBool(ctx, ":BATT:CAP:STAT?")
}

// SetCStopEnabled arms or disarms the capacity stop condition
func (m *ModeBattery) SetCStopEnabled(ctx context.Context, on bool) error {
	return m.cmd.Set(ctx, ":BATT:CAP:STAT", validate.OnOff(on))
}

// TStopEnabled reports whether the timer stop condition is armed
func (m *ModeBattery) TStopEnabled(ctx context.Context) (bool, error) {
	return m.cmd.QueryBool(ctx, ":BATT:TIM:STAT?")
}

// SetTStopEnabled arms or disarms the timer stop condition
func (m *ModeBattery) SetTStopEnabled(ctx context.Context, on bool) error {
	return m.cmd.Set(ctx, ":BATT:TIM:STAT", validate.OnOff(on))
}

// CurrentRange returns the selected current range in amperes
func (m *ModeBattery) CurrentRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":BATT:IRANG?")
}

// SetCurrentRange selects the current range
func (m *ModeBattery) SetCurrentRange(ctx context.Context, v int) error {
	arg, err := m.limits.CurrentRange().Validate("current_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":BATT:IRANG", arg)
}

// VoltageRange returns the selected voltage range in volts
func (m *ModeBattery) VoltageRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":BATT:VRANG?")
}

// SetVoltageRange selects the voltage range
func (m *ModeBattery) SetVoltageRange(ctx context.Context, v int) error {
	arg, err := m.limits.VoltageRange().Validate("voltage_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":BATT:VRANG", arg)
}

// ResistanceRange returns the selected resistance range
func (m *ModeBattery) ResistanceRange(ctx context.Context) (string, error) {
	return m.cmd.QueryEnum(ctx, ":BATT:RRANG?")
}

// SetResistanceRange selects the resistance range
func (m *ModeBattery) SetResistanceRange(ctx context.Context, v string) error {
	arg, err := m.limits.ResistanceRange().Validate("resistance_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":BATT:RRANG", arg)
}

// DischargedCapacity returns the capacity discharged so far in mAh
func (m *ModeBattery) DischargedCapacity(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":BATT:DISCHA:CAP?")
}

// DischargeTime returns the elapsed discharge time in seconds
func (m *ModeBattery) DischargeTime(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":BATT:DISCHA:TIM?")
}

// Values returns a fresh snapshot of the input and battery test settings
func (m *ModeBattery) Values(ctx context.Context) (Snapshot, error) {
	input, err := m.input.values(ctx, "BATTERY")
	if err != nil {
		return Snapshot{}, err
	}
	mode, err := m.cmd.queryValues(ctx, map[string]string{
		"enable":           ":BATT:FUNC?",
		"batt_mode":        ":BATT:MODE?",
		"level":            ":BATT:LEV?",
		"v_stop":           ":BATT:VOLT?",
		"c_stop":           ":BATT:CAP?",
		"t_stop":           ":BATT:TIM?",
		"v_stop_state":     ":BATT:VOLT:STAT?",
		"c_stop_state":     ":BATT:CAP:STAT?",
		"t_stop_state":     ":BATT:TIM:STAT?",
		"current_range":    ":BATT:IRANG?",
		"voltage_range":    ":BATT:VRANG?",
		"resistance_range": ":BATT:RRANG?",
	})
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Input: input, Mode: mode}, nil
}
