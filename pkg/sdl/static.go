package sdl

import (
	"context"
	"strings"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// staticMode is the shared base of the four static operating modes. Each
// mode owns a fixed :FUNC token and command subsystem prefix; everything
// else dispatches through the hub.
type staticMode struct {
	cmd    *Command
	input  *Input
	limits validate.Limits
	fn     string // abbreviated function token, e.g. "CURR"
	prefix string // command subsystem prefix, e.g. ":CURR"
	level  validate.Range
}

// Enable arms this mode on the instrument
func (m *staticMode) Enable(ctx context.Context) error {
	return m.cmd.Set(ctx, ":FUNC", m.fn)
}

// Enabled reports whether this mode is the one armed
func (m *staticMode) Enabled(ctx context.Context) (bool, error) {
	fn, err := m.cmd.QueryEnum(ctx, ":FUNC?")
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(fn, m.fn), nil
}

// On arms this mode and then turns the input on. The input step does not
// execute if arming fails.
func (m *staticMode) On(ctx context.Context) error {
	if err := m.Enable(ctx); err != nil {
		return err
	}
	return m.input.On(ctx)
}

// Level returns the programmed sink level
func (m *staticMode) Level(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, m.prefix+"?")
}

// SetLevel programs the sink level
func (m *staticMode) SetLevel(ctx context.Context, v float64) error {
	arg, err := m.level.Validate("level", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, m.prefix, arg)
}

// CurrentRange returns the selected current range in amperes
func (m *staticMode) CurrentRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, m.prefix+":IRANG?")
}

// SetCurrentRange selects the current range
func (m *staticMode) SetCurrentRange(ctx context.Context, v int) error {
	arg, err := m.limits.CurrentRange().Validate("current_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, m.prefix+":IRANG", arg)
}

// VoltageRange returns the selected voltage range in volts
func (m *staticMode) VoltageRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, m.prefix+":VRANG?")
}

// SetVoltageRange selects the voltage range
func (m *staticMode) SetVoltageRange(ctx context.Context, v int) error {
	arg, err := m.limits.VoltageRange().Validate("voltage_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, m.prefix+":VRANG", arg)
}

// modeLabel builds the input snapshot mode string
func (m *staticMode) modeLabel(ctx context.Context) (string, error) {
	fn, err := m.cmd.QueryEnum(ctx, ":FUNC?")
	if err != nil {
		return "", err
	}
	return "STATIC " + fn, nil
}

// snapshot assembles a Snapshot from the per-mode query set
func (m *staticMode) snapshot(ctx context.Context, queries map[string]string) (Snapshot, error) {
	label, err := m.modeLabel(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	input, err := m.input.values(ctx, label)
	if err != nil {
		return Snapshot{}, err
	}
	mode, err := m.cmd.queryValues(ctx, queries)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Input: input, Mode: mode}, nil
}

// ModeCC is the static constant current mode
type ModeCC struct {
	staticMode
	Dyn *ModeDynamicCC
}

func newModeCC(cmd *Command, input *Input, limits validate.Limits) *ModeCC {
	return &ModeCC{
		staticMode: staticMode{
			cmd:    cmd,
			input:  input,
			limits: limits,
			fn:     "CURR",
			prefix: ":CURR",
			level:  limits.Current(),
		},
		Dyn: newModeDynamicCC(cmd, input, limits),
	}
}

// SlewPos returns the positive slew rate in A/us
func (m *ModeCC) SlewPos(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":CURR:SLEW:POS?")
}

// SetSlewPos programs the positive slew rate
func (m *ModeCC) SetSlewPos(ctx context.Context, v float64) error {
	arg, err := m.limits.Slew().Validate("slew_pos", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":CURR:SLEW:POS", arg)
}

// SlewNeg returns the negative slew rate in A/us
func (m *ModeCC) SlewNeg(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":CURR:SLEW:NEG?")
}

// SetSlewNeg programs the negative slew rate
func (m *ModeCC) SetSlewNeg(ctx context.Context, v float64) error {
	arg, err := m.limits.Slew().Validate("slew_neg", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":CURR:SLEW:NEG", arg)
}

// SetSlewBoth programs both slew rates to the same value, aborting on the
// first failure
func (m *ModeCC) SetSlewBoth(ctx context.Context, v float64) error {
	if err := m.SetSlewPos(ctx, v); err != nil {
		return err
	}
	return m.SetSlewNeg(ctx, v)
}

// Values returns a fresh snapshot of the input and static CC settings
func (m *ModeCC) Values(ctx context.Context) (Snapshot, error) {
	return m.snapshot(ctx, map[string]string{
		"level":         ":CURR?",
		"current_range": ":CURR:IRANG?",
		"voltage_range": ":CURR:VRANG?",
		"slew_pos":      ":CURR:SLEW:POS?",
		"slew_neg":      ":CURR:SLEW:NEG?",
	})
}

// ModeCV is the static constant voltage mode
type ModeCV struct {
	staticMode
	Dyn *ModeDynamicCV
}

func newModeCV(cmd *Command, input *Input, limits validate.Limits) *ModeCV {
	return &ModeCV{
		staticMode: staticMode{
			cmd:    cmd,
			input:  input,
			limits: limits,
			fn:     "VOLT",
			prefix: ":VOLT",
			level:  limits.Voltage(),
		},
		Dyn: newModeDynamicCV(cmd, input, limits),
	}
}

// Values returns a fresh snapshot of the input and static CV settings
func (m *ModeCV) Values(ctx context.Context) (Snapshot, error) {
	return m.snapshot(ctx, map[string]string{
		"level":         ":VOLT?",
		"current_range": ":VOLT:IRANG?",
		"voltage_range": ":VOLT:VRANG?",
	})
}

// ModeCP is the static constant power mode
type ModeCP struct {
	staticMode
	Dyn *ModeDynamicCP
}

func newModeCP(cmd *Command, input *Input, limits validate.Limits) *ModeCP {
	return &ModeCP{
		staticMode: staticMode{
			cmd:    cmd,
			input:  input,
			limits: limits,
			fn:     "POW",
			prefix: ":POW",
			level:  limits.Power(),
		},
		Dyn: newModeDynamicCP(cmd, input, limits),
	}
}

// Values returns a fresh snapshot of the input and static CP settings
func (m *ModeCP) Values(ctx context.Context) (Snapshot, error) {
	return m.snapshot(ctx, map[string]string{
		"level":         ":POW?",
		"current_range": ":POW:IRANG?",
		"voltage_range": ":POW:VRANG?",
	})
}

// ModeCR is the static constant resistance mode
type ModeCR struct {
	staticMode
	Dyn *ModeDynamicCR
}

func newModeCR(cmd *Command, input *Input, limits validate.Limits) *ModeCR {
	return &ModeCR{
		staticMode: staticMode{
			cmd:    cmd,
			input:  input,
			limits: limits,
			fn:     "RES",
			prefix: ":RES",
			level:  limits.Resistance(),
		},
		Dyn: newModeDynamicCR(cmd, input, limits),
	}
}

// ResistanceRange returns the selected resistance range
func (m *ModeCR) ResistanceRange(ctx context.Context) (string, error) {
	return m.cmd.QueryEnum(ctx, ":RES:RRANG?")
}

// SetResistanceRange selects the resistance range
func (m *ModeCR) SetResistanceRange(ctx context.Context, v string) error {
	arg, err := m.limits.ResistanceRange().Validate("resistance_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":RES:RRANG", arg)
}

// Values returns a fresh snapshot of the input and static CR settings
func (m *ModeCR) Values(ctx context.Context) (Snapshot, error) {
	return m.snapshot(ctx, map[string]string{
		"level":            ":RES?",
		"current_range":    ":RES:IRANG?",
		"voltage_range":    ":RES:VRANG?",
		"resistance_range": ":RES:RRANG?",
	})
}
