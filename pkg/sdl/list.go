package sdl

import (
	"context"
	"strconv"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// ModeList is the list sequencing test mode: up to 100 steps, each with its
// own level, slew and dwell width. Step-addressed commands carry the step
// index as the first SCPI argument.
type ModeList struct {
	cmd    *Command
	input  *Input
	limits validate.TestLimits
}

func newModeList(cmd *Command, input *Input, limits validate.TestLimits) *ModeList {
	return &ModeList{cmd: cmd, input: input, limits: limits}
}

// Enable starts list operation on the instrument
func (m *ModeList) Enable(ctx context.Context) error {
	return m.cmd.Exec(ctx, ":LIST:STAT:ON")
}

// Enabled reports whether list operation is running
func (m *ModeList) Enabled(ctx context.Context) (bool, error) {
	return m.cmd.QueryBool(ctx, ":LIST:STAT?")
}

// On starts list operation and then turns the input on. The input step does
// not execute if starting fails.
func (m *ModeList) On(ctx context.Context) error {
	if err := m.Enable(ctx); err != nil {
		return err
	}
	return m.input.On(ctx)
}

// Mode returns the list sub-mode token
func (m *ModeList) Mode(ctx context.Context) (string, error) {
	return m.cmd.QueryEnum(ctx, ":LIST:MODE?")
}

// SetMode selects the list sub-mode (current, voltage, power or resistance)
func (m *ModeList) SetMode(ctx context.Context, mode string) error {
	arg, err := m.limits.TransientFunction().Validate("list_mode", mode)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LIST:MODE", arg)
}

// Level returns the programmed level of one step
func (m *ModeList) Level(ctx context.Context, step int) (float64, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryFloat(ctx, ":LIST:LEV? "+s)
}

// SetLevel programs the level of one step. The bound depends on the list
// sub-mode configured on the instrument, which is queried first.
func (m *ModeList) SetLevel(ctx context.Context, step int, v float64) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	mode, err := m.Mode(ctx)
	if err != nil {
		return err
	}
	arg, err := m.limits.ListLevel(mode).Validate("level", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LIST:LEV", s+","+arg)
}

// Slew returns the programmed slew rate of one step
func (m *ModeList) Slew(ctx context.Context, step int) (float64, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryFloat(ctx, ":LIST:SLEW? "+s)
}

// SetSlew programs the slew rate of one step
func (m *ModeList) SetSlew(ctx context.Context, step int, v float64) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	arg, err := m.limits.Slew().Validate("slew", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LIST:SLEW", s+","+arg)
}

// Width returns the programmed dwell width of one step in seconds
func (m *ModeList) Width(ctx context.Context, step int) (float64, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryFloat(ctx, ":LIST:WID? "+s)
}

// SetWidth programs the dwell width of one step
func (m *ModeList) SetWidth(ctx context.Context, step int, v float64) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	arg, err := m.limits.PulseWidth().Validate("width", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LIST:WID", s+","+arg)
}

// Count returns the programmed repeat count
func (m *ModeList) Count(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":LIST:COUN?")
}

// SetCount programs the repeat count (0 repeats forever)
func (m *ModeList) SetCount(ctx context.Context, v int) error {
	arg, err := m.limits.ListCount().Validate("count", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LIST:COUN", arg)
}

// Step returns the programmed number of steps
func (m *ModeList) Step(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":LIST:STEP?")
}

// SetStep programs the number of steps
func (m *ModeList) SetStep(ctx context.Context, v int) error {
	arg, err := m.limits.StepIndex().Validate("step", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LIST:STEP", arg)
}

// CurrentRange returns the selected current range in amperes
func (m *ModeList) CurrentRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":LIST:IRANG?")
}

// SetCurrentRange selects the current range
func (m *ModeList) SetCurrentRange(ctx context.Context, v int) error {
	arg, err := m.limits.CurrentRange().Validate("current_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LIST:IRANG", arg)
}

// VoltageRange returns the selected voltage range in volts
func (m *ModeList) VoltageRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":LIST:VRANG?")
}

// SetVoltageRange selects the voltage range
func (m *ModeList) SetVoltageRange(ctx context.Context, v int) error {
	arg, err := m.limits.VoltageRange().Validate("voltage_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LIST:VRANG", arg)
}

// ResistanceRange returns the selected resistance range
func (m *ModeList) ResistanceRange(ctx context.Context) (string, error) {
	return m.cmd.QueryEnum(ctx, ":LIST:RRANG?")
}

// SetResistanceRange selects the resistance range
func (m *ModeList) SetResistanceRange(ctx context.Context, v string) error {
	arg, err := m.limits.ResistanceRange().Validate("resistance_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":LIST:RRANG", arg)
}

// Values returns a fresh snapshot of the input and list test settings. The
// step-addressed entries report step 1.
func (m *ModeList) Values(ctx context.Context) (Snapshot, error) {
	input, err := m.input.values(ctx, "LIST")
	if err != nil {
		return Snapshot{}, err
	}
	mode, err := m.cmd.queryValues(ctx, map[string]string{
		"enable":           ":LIST:STAT?",
		"list_mode":        ":LIST:MODE?",
		"level":            ":LIST:LEV? 1",
		"count":            ":LIST:COUN?",
		"step":             ":LIST:STEP?",
		"slew":             ":LIST:SLEW? 1",
		"width":            ":LIST:WID? 1",
		"current_range":    ":LIST:IRANG?",
		"voltage_range":    ":LIST:VRANG?",
		"resistance_range": ":LIST:RRANG?",
	})
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Input: input, Mode: mode}, nil
}

// stepArg validates a step index and returns its wire form
func stepArg(limits validate.TestLimits, step int) (string, error) {
	if _, err := limits.StepIndex().Validate("step", step); err != nil {
		return "", err
	}
	return strconv.Itoa(step), nil
}
