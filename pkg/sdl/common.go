package sdl

import (
	"context"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// Common exposes the IEEE 488.2 common commands: identification, the status
// and event registers, setup memory and synchronization.
type Common struct {
	cmd    *Command
	limits validate.Limits
}

// NewCommon creates the common command facade
func NewCommon(cmd *Command, limits validate.Limits) *Common {
	return &Common{cmd: cmd, limits: limits}
}

// Cls clears the event registers and the error queue
func (c *Common) Cls(ctx context.Context) error {
	return c.cmd.Exec(ctx, "*CLS")
}

// Idn returns the instrument identification string
func (c *Common) Idn(ctx context.Context) (string, error) {
	return c.cmd.Query(ctx, "*IDN?")
}

// Ese returns the standard event enable register
func (c *Common) Ese(ctx context.Context) (int, error) {
	return c.cmd.QueryInt(ctx, "*ESE?")
}

// SetEse programs the standard event enable register
func (c *Common) SetEse(ctx context.Context, mask int) error {
	arg, err := c.limits.Register8().Validate("ese", mask)
	if err != nil {
		return err
	}
	return c.cmd.Set(ctx, "*ESE", arg)
}

// Esr reads and clears the standard event register
func (c *Common) Esr(ctx context.Context) (int, error) {
	return c.cmd.QueryInt(ctx, "*ESR?")
}

// Opc returns 1 once all pending operations have completed
func (c *Common) Opc(ctx context.Context) (int, error) {
	return c.cmd.QueryInt(ctx, "*OPC?")
}

// SetOpc sets the operation complete bit once pending operations finish
func (c *Common) SetOpc(ctx context.Context) error {
	return c.cmd.Exec(ctx, "*OPC")
}

// Rcl restores the setup saved in the given memory slot
func (c *Common) Rcl(ctx context.Context, slot int) error {
	arg, err := c.limits.Preset().Validate("preset", slot)
	if err != nil {
		return err
	}
	return c.cmd.Set(ctx, "*RCL", arg)
}

// Sav saves the present setup into the given memory slot
func (c *Common) Sav(ctx context.Context, slot int) error {
	arg, err := c.limits.Preset().Validate("preset", slot)
	if err != nil {
		return err
	}
	return c.cmd.Set(ctx, "*SAV", arg)
}

// Rst restores the *RST default conditions and clears the event registers
func (c *Common) Rst(ctx context.Context) error {
	if err := c.cmd.Exec(ctx, "*RST"); err != nil {
		return err
	}
	return c.Cls(ctx)
}

// Sre returns the service request enable register
func (c *Common) Sre(ctx context.Context) (int, error) {
	return c.cmd.QueryInt(ctx, "*SRE?")
}

// SetSre programs the service request enable register
func (c *Common) SetSre(ctx context.Context, mask int) error {
	arg, err := c.limits.Register8().Validate("sre", mask)
	if err != nil {
		return err
	}
	return c.cmd.Set(ctx, "*SRE", arg)
}

// Stb returns the status byte register
func (c *Common) Stb(ctx context.Context) (int, error) {
	return c.cmd.QueryInt(ctx, "*STB?")
}

// Trg issues a bus trigger
func (c *Common) Trg(ctx context.Context) error {
	return c.cmd.Exec(ctx, "*TRG")
}

// Wai blocks further commands until all previous commands are executed
func (c *Common) Wai(ctx context.Context) error {
	return c.cmd.Exec(ctx, "*WAI")
}

// Tst runs the instrument self test and returns its result code
func (c *Common) Tst(ctx context.Context) (int, error) {
	return c.cmd.QueryInt(ctx, "*TST?")
}
