package sdl

import (
	"context"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// ModeOPP is the overpower protection test: the load ramps the sink power
// from start to end in steps and records where the supply's protection
// trips.
type ModeOPP struct {
	cmd    *Command
	input  *Input
	limits validate.TestLimits
}

func newModeOPP(cmd *Command, input *Input, limits validate.TestLimits) *ModeOPP {
	return &ModeOPP{cmd: cmd, input: input, limits: limits}
}

// Enable arms the OPP test on the instrument
func (m *ModeOPP) Enable(ctx context.Context) error {
	return m.cmd.Exec(ctx, ":OPP:FUNC")
}

// Enabled reports whether the OPP test is armed
func (m *ModeOPP) Enabled(ctx context.Context) (bool, error) {
	return m.cmd.QueryBool(ctx, ":OPP:FUNC?")
}

// On arms the OPP test and then turns the input on. The input step does not
// execute if arming fails.
func (m *ModeOPP) On(ctx context.Context) error {
	if err := m.Enable(ctx); err != nil {
		return err
	}
	return m.input.On(ctx)
}

// StartPower returns the ramp start power in watts
func (m *ModeOPP) StartPower(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OPP:STAR?")
}

// SetStartPower programs the ramp start power
func (m *ModeOPP) SetStartPower(ctx context.Context, v float64) error {
	return m.setPower(ctx, ":OPP:STAR", "start_power", v)
}

// StepPower returns the ramp step power in watts
func (m *ModeOPP) StepPower(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OPP:STEP?")
}

// SetStepPower programs the ramp step power
func (m *ModeOPP) SetStepPower(ctx context.Context, v float64) error {
	return m.setPower(ctx, ":OPP:STEP", "step_power", v)
}

// EndPower returns the ramp end power in watts
func (m *ModeOPP) EndPower(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OPP:END?")
}

// SetEndPower programs the ramp end power
func (m *ModeOPP) SetEndPower(ctx context.Context, v float64) error {
	return m.setPower(ctx, ":OPP:END", "end_power", v)
}

// MinPower returns the pass/fail lower bound in watts
func (m *ModeOPP) MinPower(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OPP:MIN?")
}

// SetMinPower programs the pass/fail lower bound
func (m *ModeOPP) SetMinPower(ctx context.Context, v float64) error {
	return m.setPower(ctx, ":OPP:MIN", "min_power", v)
}

// MaxPower returns the pass/fail upper bound in watts
func (m *ModeOPP) MaxPower(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OPP:MAX?")
}

// SetMaxPower programs the pass/fail upper bound
func (m *ModeOPP) SetMaxPower(ctx context.Context, v float64) error {
	return m.setPower(ctx, ":OPP:MAX", "max_power", v)
}

func (m *ModeOPP) setPower(ctx context.Context, write, parameter string, v float64) error {
	arg, err := m.limits.Power().Validate(parameter, v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, write, arg)
}

// VoltageLimit returns the protection voltage in volts
func (m *ModeOPP) VoltageLimit(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OPP:VOLT?")
}

// SetVoltageLimit programs the protection voltage
func (m *ModeOPP) SetVoltageLimit(ctx context.Context, v float64) error {
	arg, err := m.limits.Voltage().Validate("voltage_limit", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":OPP:VOLT", arg)
}

// StepDelay returns the dwell time per ramp step in seconds
func (m *ModeOPP) StepDelay(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OPP:DEL?")
}

// SetStepDelay programs the dwell time per ramp step
func (m *ModeOPP) SetStepDelay(ctx context.Context, v float64) error {
	arg, err := m.limits.StepDelay().Validate("step_delay", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":OPP:DEL", arg)
}

// CurrentRange returns the selected current range in amperes
func (m *ModeOPP) CurrentRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":OPP:IRANG?")
}

// SetCurrentRange selects the current range
func (m *ModeOPP) SetCurrentRange(ctx context.Context, v int) error {
	arg, err := m.limits.CurrentRange().Validate("current_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":OPP:IRANG", arg)
}

// VoltageRange returns the selected voltage range in volts
func (m *ModeOPP) VoltageRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":OPP:VRANG?")
}

// SetVoltageRange selects the voltage range
func (m *ModeOPP) SetVoltageRange(ctx context.Context, v int) error {
	arg, err := m.limits.VoltageRange().Validate("voltage_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":OPP:VRANG", arg)
}

// Values returns a fresh snapshot of the input and OPP test settings
func (m *ModeOPP) Values(ctx context.Context) (Snapshot, error) {
	input, err := m.input.values(ctx, "OPP")
	if err != nil {
		return Snapshot{}, err
	}
	mode, err := m.cmd.queryValues(ctx, map[string]string{
		"enable":        ":OPP:FUNC?",
		"start_power":   ":OPP:STAR?",
		"step_power":    ":OPP:STEP?",
		"end_power":     ":OPP:END?",
		"min_power":     ":OPP:MIN?",
		"max_power":     ":OPP:MAX?",
		"voltage_limit": ":OPP:VOLT?",
		"step_delay":    ":OPP:DEL?",
		"current_range": ":OPP:IRANG?",
		"voltage_range": ":OPP:VRANG?",
	})
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Input: input, Mode: mode}, nil
}
