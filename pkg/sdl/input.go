package sdl

import (
	"context"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// Input controls the load input sink and short circuit switches. The input
// state is shared by all operating modes.
type Input struct {
	cmd *Command
}

// NewInput creates the input control facade
func NewInput(cmd *Command) *Input {
	return &Input{cmd: cmd}
}

// State reports whether the input sink is on
func (i *Input) State(ctx context.Context) (bool, error) {
	return i.cmd.QueryBool(ctx, ":INP?")
}

// SetState turns the input sink on or off
func (i *Input) SetState(ctx context.Context, on bool) error {
	return i.cmd.Set(ctx, ":INP", validate.OnOff(on))
}

// On turns the input sink on
func (i *Input) On(ctx context.Context) error {
	return i.SetState(ctx, true)
}

// Off turns the input sink off
func (i *Input) Off(ctx context.Context) error {
	return i.SetState(ctx, false)
}

// Short reports whether the short circuit switch is on
func (i *Input) Short(ctx context.Context) (bool, error) {
	return i.cmd.QueryBool(ctx, ":SHOR?")
}

// SetShort turns the short circuit switch on or off
func (i *Input) SetShort(ctx context.Context, on bool) error {
	return i.cmd.Set(ctx, ":SHOR", validate.OnOff(on))
}

// values collects the input part of a mode snapshot
func (i *Input) values(ctx context.Context, mode string) (map[string]string, error) {
	on, err := i.cmd.Query(ctx, ":INP?")
	if err != nil {
		return nil, err
	}
	short, err := i.cmd.Query(ctx, ":SHOR?")
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"input_on": on,
		"short_on": short,
		"mode":     mode,
	}, nil
}
