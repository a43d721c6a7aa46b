package sdl

import (
	"context"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// Protection programs the soft overcurrent and overpower protection: the
// trip level, the arm switch and the trip delay of each.
type Protection struct {
	cmd    *Command
	limits validate.Limits
}

// NewProtection creates the protection facade
func NewProtection(cmd *Command, limits validate.Limits) *Protection {
	return &Protection{cmd: cmd, limits: limits}
}

// Clear resets a tripped protection so the input can be re-enabled
func (p *Protection) Clear(ctx context.Context) error {
	return p.cmd.Exec(ctx, ":PROT:CLE")
}

// CurrentLevel returns the overcurrent protection trip level in amperes
func (p *Protection) CurrentLevel(ctx context.Context) (float64, error) {
	return p.cmd.QueryFloat(ctx, ":CURR:PROT:LEV?")
}

// SetCurrentLevel programs the overcurrent protection trip level
func (p *Protection) SetCurrentLevel(ctx context.Context, v float64) error {
	arg, err := p.limits.Current().Validate("protection_current", v)
	if err != nil {
		return err
	}
	return p.cmd.Set(ctx, ":CURR:PROT:LEV", arg)
}

// CurrentState reports whether overcurrent protection is armed
func (p *Protection) CurrentState(ctx context.Context) (bool, error) {
	return p.cmd.QueryBool(ctx, ":CURR:PROT:STAT?")
}

// SetCurrentState arms or disarms overcurrent protection
func (p *Protection) SetCurrentState(ctx context.Context, on bool) error {
	return p.cmd.Set(ctx, ":CURR:PROT:STAT", validate.OnOff(on))
}

// CurrentDelay returns the overcurrent protection trip delay in seconds
func (p *Protection) CurrentDelay(ctx context.Context) (float64, error) {
	return p.cmd.QueryFloat(ctx, ":CURR:PROT:DEL?")
}

// SetCurrentDelay programs the overcurrent protection trip delay
func (p *Protection) SetCurrentDelay(ctx context.Context, v float64) error {
	arg, err := (validate.Range{Min: 0, Max: 60, Places: 3}).Validate("protection_delay", v)
	if err != nil {
		return err
	}
	return p.cmd.Set(ctx, ":CURR:PROT:DEL", arg)
}

// PowerLevel returns the overpower protection trip level in watts
func (p *Protection) PowerLevel(ctx context.Context) (float64, error) {
	return p.cmd.QueryFloat(ctx, ":POW:PROT:LEV?")
}

// SetPowerLevel programs the overpower protection trip level
func (p *Protection) SetPowerLevel(ctx context.Context, v float64) error {
	arg, err := p.limits.Power().Validate("protection_power", v)
	if err != nil {
		return err
	}
	return p.cmd.Set(ctx, ":POW:PROT:LEV", arg)
}

// PowerState reports whether overpower protection is armed
func (p *Protection) PowerState(ctx context.Context) (bool, error) {
	return p.cmd.QueryBool(ctx, ":POW:PROT:STAT?")
}

// SetPowerState arms or disarms overpower protection
func (p *Protection) SetPowerState(ctx context.Context, on bool) error {
	return p.cmd.Set(ctx, ":POW:PROT:STAT", validate.OnOff(on))
}

// PowerDelay returns the overpower protection trip delay in seconds
func (p *Protection) PowerDelay(ctx context.Context) (float64, error) {
	return p.cmd.QueryFloat(ctx, ":POW:PROT:DEL?")
}

// SetPowerDelay programs the overpower protection trip delay
func (p *Protection) SetPowerDelay(ctx context.Context, v float64) error {
	arg, err := (validate.Range{Min: 0, Max: 60, Places: 3}).Validate("protection_delay", v)
	if err != nil {
		return err
	}
	return p.cmd.Set(ctx, ":POW:PROT:DEL", arg)
}

// Values returns the protection settings
func (p *Protection) Values(ctx context.Context) (map[string]string, error) {
	return p.cmd.queryValues(ctx, map[string]string{
		"current_level": ":CURR:PROT:LEV?",
		"current_state": ":CURR:PROT:STAT?",
		"current_delay": ":CURR:PROT:DEL?",
		"power_level":   ":POW:PROT:LEV?",
		"power_state":   ":POW:PROT:STAT?",
		"power_delay":   ":POW:PROT:DEL?",
	})
}
