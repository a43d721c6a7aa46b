package sdl

import (
	"context"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// ModeProgram is the auto-test program mode: up to 100 steps, each carrying
// its own operating mode, level, ranges, timing and pass/fail window. All
// per-step commands carry the step index as the first SCPI argument.
type ModeProgram struct {
	cmd    *Command
	input  *Input
	limits validate.TestLimits
}

func newModeProgram(cmd *Command, input *Input, limits validate.TestLimits) *ModeProgram {
	return &ModeProgram{cmd: cmd, input: input, limits: limits}
}

// Enable starts program execution on the instrument
func (m *ModeProgram) Enable(ctx context.Context) error {
	return m.cmd.Exec(ctx, ":PROG:STAT:ON")
}

// Enabled reports whether a program is running
func (m *ModeProgram) Enabled(ctx context.Context) (bool, error) {
	return m.cmd.QueryBool(ctx, ":PROG:STAT?")
}

// On starts program execution and then turns the input on. The input step
// does not execute if starting fails.
func (m *ModeProgram) On(ctx context.Context) error {
	if err := m.Enable(ctx); err != nil {
		return err
	}
	return m.input.On(ctx)
}

// StepMode returns the operating mode token of one step
func (m *ModeProgram) StepMode(ctx context.Context, step int) (string, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return "", err
	}
	return m.cmd.QueryEnum(ctx, ":PROG:MODE? "+s)
}

// SetStepMode programs the operating mode of one step
func (m *ModeProgram) SetStepMode(ctx context.Context, step int, mode string) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	arg, err := m.limits.StaticFunction().Validate("step_mode", mode)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":PROG:MODE", s+","+arg)
}

// Steps returns the programmed number of steps
func (m *ModeProgram) Steps(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, ":PROG:STEP?")
}

// SetSteps programs the number of steps
func (m *ModeProgram) SetSteps(ctx context.Context, v int) error {
	arg, err := m.limits.StepIndex().Validate("step", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":PROG:STEP", arg)
}

// Level returns the programmed level of one step
func (m *ModeProgram) Level(ctx context.Context, step int) (float64, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryFloat(ctx, ":PROG:LEV? "+s)
}

// SetLevel programs the level of one step. The bound depends on the step's
// operating mode, which is queried from the instrument first.
func (m *ModeProgram) SetLevel(ctx context.Context, step int, v float64) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	mode, err := m.cmd.QueryEnum(ctx, ":PROG:MODE? "+s)
	if err != nil {
		return err
	}
	arg, err := m.limits.ProgramLevel(mode).Validate("level", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":PROG:LEV", s+","+arg)
}

// CurrentRange returns the selected current range of one step
func (m *ModeProgram) CurrentRange(ctx context.Context, step int) (int, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryInt(ctx, ":PROG:IRANG? "+s)
}

// SetCurrentRange selects the current range of one step
func (m *ModeProgram) SetCurrentRange(ctx context.Context, step, v int) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	arg, err := m.limits.CurrentRange().Validate("current_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":PROG:IRANG", s+","+arg)
}

// VoltageRange returns the selected voltage range of one step
func (m *ModeProgram) VoltageRange(ctx context.Context, step int) (int, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryInt(ctx, ":PROG:VRANG? "+s)
}

// SetVoltageRange selects the voltage range of one step
func (m *ModeProgram) SetVoltageRange(ctx context.Context, step, v int) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	arg, err := m.limits.VoltageRange().Validate("voltage_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":PROG:VRANG", s+","+arg)
}

// ResistanceRange returns the selected resistance range of one step
func (m *ModeProgram) ResistanceRange(ctx context.Context, step int) (string, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return "", err
	}
	return m.cmd.QueryEnum(ctx, ":PROG:RRANG? "+s)
}

// SetResistanceRange selects the resistance range of one step
func (m *ModeProgram) SetResistanceRange(ctx context.Context, step int, v string) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	arg, err := m.limits.ResistanceRange().Validate("resistance_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":PROG:RRANG", s+","+arg)
}

// Short reports whether one step shorts the input
func (m *ModeProgram) Short(ctx context.Context, step int) (bool, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return false, err
	}
	return m.cmd.QueryBool(ctx, ":PROG:SHOR? "+s)
}

// SetShort selects whether one step shorts the input
func (m *ModeProgram) SetShort(ctx context.Context, step int, on bool) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":PROG:SHOR", s+","+validate.OnOff(on))
}

// Pause reports whether execution pauses after one step
func (m *ModeProgram) Pause(ctx context.Context, step int) (bool, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return false, err
	}
	return m.cmd.QueryBool(ctx, ":PROG:PAUSE? "+s)
}

// SetPause selects whether execution pauses after one step
func (m *ModeProgram) SetPause(ctx context.Context, step int, on bool) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":PROG:PAUSE", s+","+validate.OnOff(on))
}

// TimeOn returns the load-on time of one step in seconds
func (m *ModeProgram) TimeOn(ctx context.Context, step int) (float64, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryFloat(ctx, ":PROG:TIME:ON? "+s)
}

// SetTimeOn programs the load-on time of one step
func (m *ModeProgram) SetTimeOn(ctx context.Context, step int, v float64) error {
	return m.setStepTime(ctx, ":PROG:TIME:ON", "time_on", step, v)
}

// TimeOff returns the load-off time of one step in seconds
func (m *ModeProgram) TimeOff(ctx context.Context, step int) (float64, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryFloat(ctx, ":PROG:TIME:OFF? "+s)
}

// SetTimeOff programs the load-off time of one step
func (m *ModeProgram) SetTimeOff(ctx context.Context, step int, v float64) error {
	return m.setStepTime(ctx, ":PROG:TIME:OFF", "time_off", step, v)
}

// TimeDelay returns the measurement delay of one step in seconds
func (m *ModeProgram) TimeDelay(ctx context.Context, step int) (float64, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryFloat(ctx, ":PROG:TIME:DEL? "+s)
}

// SetTimeDelay programs the measurement delay of one step
func (m *ModeProgram) SetTimeDelay(ctx context.Context, step int, v float64) error {
	return m.setStepTime(ctx, ":PROG:TIME:DEL", "time_delay", step, v)
}

// setStepTime validates and programs one per-step time value
func (m *ModeProgram) setStepTime(ctx context.Context, write, parameter string, step int, v float64) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	arg, err := m.limits.StepTime().Validate(parameter, v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, write, s+","+arg)
}

// Max returns the pass/fail upper bound of one step
func (m *ModeProgram) Max(ctx context.Context, step int) (float64, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryFloat(ctx, ":PROG:MAX? "+s)
}

// SetMax programs the pass/fail upper bound of one step. The checked
// quantity depends on the step's operating mode, which is queried first.
func (m *ModeProgram) SetMax(ctx context.Context, step int, v float64) error {
	return m.setStepMinMax(ctx, ":PROG:MAX", "max", step, v)
}

// Min returns the pass/fail lower bound of one step
func (m *ModeProgram) Min(ctx context.Context, step int) (float64, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryFloat(ctx, ":PROG:MIN? "+s)
}

// SetMin programs the pass/fail lower bound of one step
func (m *ModeProgram) SetMin(ctx context.Context, step int, v float64) error {
	return m.setStepMinMax(ctx, ":PROG:MIN", "min", step, v)
}

// setStepMinMax validates one pass/fail bound against the step's mode
func (m *ModeProgram) setStepMinMax(ctx context.Context, write, parameter string, step int, v float64) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	mode, err := m.cmd.QueryEnum(ctx, ":PROG:MODE? "+s)
	if err != nil {
		return err
	}
	arg, err := m.limits.StepMinMax(mode).Validate(parameter, v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, write, s+","+arg)
}

// LEDCurrent returns the LED current of one step
func (m *ModeProgram) LEDCurrent(ctx context.Context, step int) (float64, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryFloat(ctx, ":PROG:LED:CURR? "+s)
}

// SetLEDCurrent programs the LED current of one step
func (m *ModeProgram) SetLEDCurrent(ctx context.Context, step int, v float64) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	arg, err := m.limits.Current().Validate("led_current", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":PROG:LED:CURR", s+","+arg)
}

// LEDRco returns the LED operating point coefficient of one step
func (m *ModeProgram) LEDRco(ctx context.Context, step int) (float64, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryFloat(ctx, ":PROG:LED:RCO? "+s)
}

// SetLEDRco programs the LED operating point coefficient of one step
func (m *ModeProgram) SetLEDRco(ctx context.Context, step int, v float64) error {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return err
	}
	arg, err := m.limits.LEDRco().Validate("led_rco", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":PROG:LED:RCO", s+","+arg)
}

// Test returns the test result of one step
func (m *ModeProgram) Test(ctx context.Context, step int) (float64, error) {
	s, err := stepArg(m.limits, step)
	if err != nil {
		return 0, err
	}
	return m.cmd.QueryFloat(ctx, ":PROG:TEST? "+s)
}

// SetTest programs the test time of one step
func (m *ModeProgram) SetTest(ctx context.Context, step int, v float64) error {
	return m.setStepTime(ctx, ":PROG:TEST", "test", step, v)
}

// Values returns a fresh snapshot of the input and program settings. The
// step-addressed entries report step 1.
func (m *ModeProgram) Values(ctx context.Context) (Snapshot, error) {
	input, err := m.input.values(ctx, "PROGRAM")
	if err != nil {
		return Snapshot{}, err
	}
	mode, err := m.cmd.queryValues(ctx, map[string]string{
		"enable":           ":PROG:STAT?",
		"step_mode":        ":PROG:MODE? 1",
		"step":             ":PROG:STEP?",
		"level":            ":PROG:LEV? 1",
		"current_range":    ":PROG:IRANG? 1",
		"voltage_range":    ":PROG:VRANG? 1",
		"resistance_range": ":PROG:RRANG? 1",
		"step_short":       ":PROG:SHOR? 1",
		"pause":            ":PROG:PAUSE? 1",
		"time_on":          ":PROG:TIME:ON? 1",
		"time_off":         ":PROG:TIME:OFF? 1",
		"time_delay":       ":PROG:TIME:DEL? 1",
		"max":              ":PROG:MAX? 1",
		"min":              ":PROG:MIN? 1",
		"test":             ":PROG:TEST? 1",
		"led_current":      ":PROG:LED:CURR? 1",
		"led_rco_set":      ":PROG:LED:RCO? 1",
	})
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Input: input, Mode: mode}, nil
}
