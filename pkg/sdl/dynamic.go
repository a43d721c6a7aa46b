package sdl

import (
	"context"
	"strings"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// dynamicMode is the shared base of the transient mode variants. A dynamic
// mode alternates between the programmed a/b levels at the programmed
// widths.
type dynamicMode struct {
	cmd    *Command
	input  *Input
	limits validate.Limits
	fn     string // abbreviated function token, e.g. "CURR"
	prefix string // transient subsystem prefix, e.g. ":CURR:TRAN"
	level  validate.Range
}

// Enable arms this transient mode on the instrument
func (m *dynamicMode) Enable(ctx context.Context) error {
	return m.cmd.Set(ctx, ":FUNC:TRAN", m.fn)
}

// Enabled reports whether this transient mode is the one armed
func (m *dynamicMode) Enabled(ctx context.Context) (bool, error) {
	fn, err := m.cmd.QueryEnum(ctx, ":FUNC:TRAN?")
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(fn, m.fn), nil
}

// On arms this transient mode and then turns the input on. The input step
// does not execute if arming fails.
func (m *dynamicMode) On(ctx context.Context) error {
	if err := m.Enable(ctx); err != nil {
		return err
	}
	return m.input.On(ctx)
}

// PulseMode returns the transient pulse mode token
func (m *dynamicMode) PulseMode(ctx context.Context) (string, error) {
	return m.cmd.QueryEnum(ctx, m.prefix+":MODE?")
}

// SetPulseMode selects continuous, pulse or toggle operation
func (m *dynamicMode) SetPulseMode(ctx context.Context, mode string) error {
	arg, err := m.limits.PulseMode().Validate("pulse_mode", mode)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, m.prefix+":MODE", arg)
}

// ALevel returns the programmed a level
func (m *dynamicMode) ALevel(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, m.prefix+":ALEV?")
}

// SetALevel programs the a level
func (m *dynamicMode) SetALevel(ctx context.Context, v float64) error {
	arg, err := m.level.Validate("a_level", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, m.prefix+":ALEV", arg)
}

// BLevel returns the programmed b level
func (m *dynamicMode) BLevel(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, m.prefix+":BLEV?")
}

// SetBLevel programs the b level
func (m *dynamicMode) SetBLevel(ctx context.Context, v float64) error {
	arg, err := m.level.Validate("b_level", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, m.prefix+":BLEV", arg)
}

// AWidth returns the programmed a width in seconds
func (m *dynamicMode) AWidth(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, m.prefix+":AWID?")
}

// SetAWidth programs the a width
func (m *dynamicMode) SetAWidth(ctx context.Context, v float64) error {
	arg, err := m.limits.PulseWidth().Validate("a_width", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, m.prefix+":AWID", arg)
}

// BWidth returns the programmed b width in seconds
func (m *dynamicMode) BWidth(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, m.prefix+":BWID?")
}

// SetBWidth programs the b width
func (m *dynamicMode) SetBWidth(ctx context.Context, v float64) error {
	arg, err := m.limits.PulseWidth().Validate("b_width", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, m.prefix+":BWID", arg)
}

// SetAAndB programs both levels and both widths in one call. The four set
// operations run in order and the call aborts on the first failure.
func (m *dynamicMode) SetAAndB(ctx context.Context, aLevel, bLevel, aWidth, bWidth float64) error {
	if err := m.SetALevel(ctx, aLevel); err != nil {
		return err
	}
	if err := m.SetBLevel(ctx, bLevel); err != nil {
		return err
	}
	if err := m.SetAWidth(ctx, aWidth); err != nil {
		return err
	}
	return m.SetBWidth(ctx, bWidth)
}

// CurrentRange returns the selected current range in amperes
func (m *dynamicMode) CurrentRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, m.prefix+":IRANG?")
}

// SetCurrentRange selects the current range
func (m *dynamicMode) SetCurrentRange(ctx context.Context, v int) error {
	arg, err := m.limits.CurrentRange().Validate("current_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, m.prefix+":IRANG", arg)
}

// VoltageRange returns the selected voltage range in volts
func (m *dynamicMode) VoltageRange(ctx context.Context) (int, error) {
	return m.cmd.QueryInt(ctx, m.prefix+":VRANG?")
}

// SetVoltageRange selects the voltage range
func (m *dynamicMode) SetVoltageRange(ctx context.Context, v int) error {
	arg, err := m.limits.VoltageRange().Validate("voltage_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, m.prefix+":VRANG", arg)
}

// snapshot assembles a Snapshot from the per-mode query set
func (m *dynamicMode) snapshot(ctx context.Context, queries map[string]string) (Snapshot, error) {
	fn, err := m.cmd.QueryEnum(ctx, ":FUNC:TRAN?")
	if err != nil {
		return Snapshot{}, err
	}
	input, err := m.input.values(ctx, "DYNAMIC "+fn)
	if err != nil {
		return Snapshot{}, err
	}
	mode, err := m.cmd.queryValues(ctx, queries)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Input: input, Mode: mode}, nil
}

// baseQueries is the snapshot query set shared by all dynamic modes
func (m *dynamicMode) baseQueries() map[string]string {
	return map[string]string{
		"pulse_mode":    m.prefix + ":MODE?",
		"a_level":       m.prefix + ":ALEV?",
		"b_level":       m.prefix + ":BLEV?",
		"a_width":       m.prefix + ":AWID?",
		"b_width":       m.prefix + ":BWID?",
		"current_range": m.prefix + ":IRANG?",
		"voltage_range": m.prefix + ":VRANG?",
	}
}

// ModeDynamicCC is the transient constant current mode
type ModeDynamicCC struct {
	dynamicMode
}

func newModeDynamicCC(cmd *Command, input *Input, limits validate.Limits) *ModeDynamicCC {
	return &ModeDynamicCC{dynamicMode{
		cmd:    cmd,
		input:  input,
		limits: limits,
		fn:     "CURR",
		prefix: ":CURR:TRAN",
		level:  limits.Current(),
	}}
}

// SlewPos returns the positive slew rate in A/us
func (m *ModeDynamicCC) SlewPos(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":CURR:TRAN:SLEW:POS?")
}

// SetSlewPos programs the positive slew rate
func (m *ModeDynamicCC) SetSlewPos(ctx context.Context, v float64) error {
	arg, err := m.limits.Slew().Validate("slew_pos", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":CURR:TRAN:SLEW:POS", arg)
}

// SlewNeg returns the negative slew rate in A/us
func (m *ModeDynamicCC) SlewNeg(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, ":CURR:TRAN:SLEW:NEG?")
}

// SetSlewNeg programs the negative slew rate
func (m *ModeDynamicCC) SetSlewNeg(ctx context.Context, v float64) error {
	arg, err := m.limits.Slew().Validate("slew_neg", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":CURR:TRAN:SLEW:NEG", arg)
}

// SetSlewBoth programs both slew rates to the same value, aborting on the
// first failure
func (m *ModeDynamicCC) SetSlewBoth(ctx context.Context, v float64) error {
	if err := m.SetSlewPos(ctx, v); err != nil {
		return err
	}
	return m.SetSlewNeg(ctx, v)
}

// Values returns a fresh snapshot of the input and dynamic CC settings
func (m *ModeDynamicCC) Values(ctx context.Context) (Snapshot, error) {
	queries := m.baseQueries()
	queries["slew_pos"] = ":CURR:TRAN:SLEW:POS?"
	queries["slew_neg"] = ":CURR:TRAN:SLEW:NEG?"
	return m.snapshot(ctx, queries)
}

// ModeDynamicCV is the transient constant voltage mode
type ModeDynamicCV struct {
	dynamicMode
}

func newModeDynamicCV(cmd *Command, input *Input, limits validate.Limits) *ModeDynamicCV {
	return &ModeDynamicCV{dynamicMode{
		cmd:    cmd,
		input:  input,
		limits: limits,
		fn:     "VOLT",
		prefix: ":VOLT:TRAN",
		level:  limits.Voltage(),
	}}
}

// Values returns a fresh snapshot of the input and dynamic CV settings
func (m *ModeDynamicCV) Values(ctx context.Context) (Snapshot, error) {
	return m.snapshot(ctx, m.baseQueries())
}

// ModeDynamicCP is the transient constant power mode
type ModeDynamicCP struct {
	dynamicMode
}

func newModeDynamicCP(cmd *Command, input *Input, limits validate.Limits) *ModeDynamicCP {
	return &ModeDynamicCP{dynamicMode{
		cmd:    cmd,
		input:  input,
		limits: limits,
		fn:     "POW",
		prefix: ":POW:TRAN",
		level:  limits.Power(),
	}}
}

// Values returns a fresh snapshot of the input and dynamic CP settings
func (m *ModeDynamicCP) Values(ctx context.Context) (Snapshot, error) {
	return m.snapshot(ctx, m.baseQueries())
}

// ModeDynamicCR is the transient constant resistance mode
type ModeDynamicCR struct {
	dynamicMode
}

func newModeDynamicCR(cmd *Command, input *Input, limits validate.Limits) *ModeDynamicCR {
	return &ModeDynamicCR{dynamicMode{
		cmd:    cmd,
		input:  input,
		limits: limits,
		fn:     "RES",
		prefix: ":RES:TRAN",
		level:  limits.Resistance(),
	}}
}

// ResistanceRange returns the selected resistance range
func (m *ModeDynamicCR) ResistanceRange(ctx context.Context) (string, error) {
	return m.cmd.QueryEnum(ctx, ":RES:TRAN:RRANG?")
}

// SetResistanceRange selects the resistance range
func (m *ModeDynamicCR) SetResistanceRange(ctx context.Context, v string) error {
	arg, err := m.limits.ResistanceRange().Validate("resistance_range", v)
	if err != nil {
		return err
	}
	return m.cmd.Set(ctx, ":RES:TRAN:RRANG", arg)
}

// Values returns a fresh snapshot of the input and dynamic CR settings
func (m *ModeDynamicCR) Values(ctx context.Context) (Snapshot, error) {
	queries := m.baseQueries()
	queries["resistance_range"] = ":RES:TRAN:RRANG?"
	return m.snapshot(ctx, queries)
}
