package sdl

import (
	"context"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// ModeOCP is the overcurrent protection test: the load ramps the sink
// current from start to end in steps and records where the supply's
// protection trips.
type ModeOCP struct {
	cmd    *Command
	input  *Input
	limits validate.TestLimits
}

func newModeOCP(cmd *Command, input *Input, limits validate.TestLimits) *ModeOCP {
	return &ModeOCP{cmd: cmd, input: input, limits: limits}
}

// Enable arms the OCP test on the instrument
func (m *ModeOCP) Enable(ctx context.Context) error {
	return m.cmd.Exec(ctx, ":OCP:FUNC")
}

// Enabled reports whether the OCP test is armed
func (m *ModeOCP) Enabled(ctx context.Context) (bool, error) {
	return m.cmd.QueryBool(ctx, ":OCP:FUNC?")
}

// On arms the OCP test and then turns the input on. The input step does not
// execute if arming fails.
func (m *ModeOCP) On(ctx context.Context) error {
	if err := m.Enable(ctx); err != nil {
		return err
	}
	return m.input.On(ctx)
}

// StartCurrent returns the ramp start current in amperes
func (m *ModeOCP) StartCurrent(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OCP:STAR?")
}

// SetStartCurrent programs the ramp start current
func (m *ModeOCP) SetStartCurrent(ctx context.Context, v float64) error {
	return m.setCurrent(ctx, ":OCP:STAR", "start_current", v)
}

// StepCurrent returns the ramp step current in amperes
func (m *ModeOCP) StepCurrent(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OCP:STEP?")
}

// SetStepCurrent programs the ramp step current
func (m *ModeOCP) SetStepCurrent(ctx context.Context, v float64) error {
	return m.setCurrent(ctx, ":OCP:STEP", "step_current", v)
}

// EndCurrent returns the ramp end current in amperes
func (m *ModeOCP) EndCurrent(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OCP:END?")
}

// SetEndCurrent programs the ramp end current
func (m *ModeOCP) SetEndCurrent(ctx context.Context, v float64) error {
	return m.setCurrent(ctx, ":OCP:END", "end_current", v)
}

// MinCurrent returns the pass/fail lower bound in amperes
func (m *ModeOCP) MinCurrent(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OCP:MIN?")
}

// SetMinCurrent programs the pass/fail lower bound
func (m *ModeOCP) SetMinCurrent(ctx context.Context, v float64) error {
	return m.setCurrent(ctx, ":OCP:MIN", "min_current", v)
}

// MaxCurrent returns the pass/fail upper bound in amperes
func (m *ModeOCP) MaxCurrent(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OCP:MAX?")
}

// SetMaxCurrent programs the pass/fail upper bound
func (m *ModeOCP) SetMaxCurrent(ctx context.Context, v float64) error {
	return m.setCurrent(ctx, ":OCP:MAX", "max_current", v)
}

func (m *ModeOCP) setCurrent(ctx context.Context, write, parameter string, v float64) error {
	arg, err := m.limits.Current().Validate(parameter, v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, write, arg)
}

// VoltageLimit returns the protection voltage in volts
func (m *ModeOCP) VoltageLimit(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OCP:VOLT?")
}

// SetVoltageLimit programs the protection voltage
func (m *ModeOCP) SetVoltageLimit(ctx context.Context, v float64) error {
	arg, err := m.limits.Voltage().Validate("voltage_limit", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":OCP:VOLT", arg)
}

// StepDelay returns the dwell time per ramp step in seconds
func (m *ModeOCP) StepDelay(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":OCP:DEL?")
}

// SetStepDelay programs the dwell time per ramp step
func (m *ModeOCP) SetStepDelay(ctx context.Context, v float64) error {
	arg, err := m.limits.StepDelay().Validate("step_delay", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":OCP:DEL", arg)
}

// CurrentRange returns the selected current range in amperes
func (m *ModeOCP) CurrentRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":OCP:IRANG?")
}

// SetCurrentRange selects the current range
func (m *ModeOCP) SetCurrentRange(ctx context.Context, v int) error {
	arg, err := m.limits.CurrentRange().Validate("current_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":OCP:IRANG", arg)
}

// VoltageRange returns the selected voltage range in volts
func (m *ModeOCP) VoltageRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":OCP:VRANG?")
}

// SetVoltageRange selects the voltage range
func (m *ModeOCP) SetVoltageRange(ctx context.Context, v int) error {
	arg, err := m.limits.VoltageRange().Validate("voltage_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":OCP:VRANG", arg)
}

// Values returns a fresh snapshot of the input and OCP test settings
func (m *ModeOCP) Values(ctx context.Context) (Snapshot, error) {
	input, err := m.input.values(ctx, "OCP")
	if err != nil {
		return Snapshot{}, err
	}
	mode, err := m.cmd.queryValues(ctx, map[string]string{
		"enable":        ":OCP:FUNC?",
		"start_current": ":OCP:STAR?",
		"step_current":  ":OCP:STEP?",
		"end_current":   ":OCP:END?",
		"min_current":   ":OCP:MIN?",
		"max_current":   ":OCP:MAX?",
		"voltage_limit": ":OCP:VOLT?",
		"step_delay":    ":OCP:DEL?",
		"current_range": ":OCP:IRANG?",
		"voltage_range": ":OCP:VRANG?",
	})
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Input: input, Mode: mode}, nil
}
