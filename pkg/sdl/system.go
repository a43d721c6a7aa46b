package sdl

import (
	"context"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// System controls the instrument-wide switches: remote sense, the analog
// monitor outputs, and the stop-on-fail behavior of the step tests.
type System struct {
	cmd *Command
}

// NewSystem creates the system configuration facade
func NewSystem(cmd *Command) *System {
	return &System{cmd: cmd}
}

// ExternalSense reports whether remote voltage sense is on
func (s *System) ExternalSense(ctx context.Context) (bool, error) {
	return s.cmd.QueryBool(ctx, ":SYST:SENS?")
}

// SetExternalSense turns remote voltage sense on or off
func (s *System) SetExternalSense(ctx context.Context, on bool) error {
	return s.cmd.Set(ctx, ":SYST:SENS", validate.OnOff(on))
}

// VMonitor reports whether the analog voltage monitor output is on
func (s *System) VMonitor(ctx context.Context) (bool, error) {
	return s.cmd.QueryBool(ctx, ":SYST:VMONI?")
}

// SetVMonitor turns the analog voltage monitor output on or off
func (s *System) SetVMonitor(ctx context.Context, on bool) error {
	return s.cmd.Set(ctx, ":SYST:VMONI", validate.OnOff(on))
}

// IMonitor reports whether the analog current monitor output is on
func (s *System) IMonitor(ctx context.Context) (bool, error) {
	return s.cmd.QueryBool(ctx, ":SYST:IMONI?")
}

// SetIMonitor turns the analog current monitor output on or off
func (s *System) SetIMonitor(ctx context.Context, on bool) error {
	return s.cmd.Set(ctx, ":SYST:IMONI", validate.OnOff(on))
}

// StopOnFail reports whether a failing step aborts a running step test
func (s *System) StopOnFail(ctx context.Context) (bool, error) {
	return s.cmd.QueryBool(ctx, ":STOP:ON:FAIL?")
}

// SetStopOnFail selects whether a failing step aborts a running step test
func (s *System) SetStopOnFail(ctx context.Context, on bool) error {
	return s.cmd.Set(ctx, ":STOP:ON:FAIL", validate.OnOff(on))
}

// Values returns the instrument-wide switch settings
func (s *System) Values(ctx context.Context) (map[string]string, error) {
	return s.cmd.queryValues(ctx, map[string]string{
		"external_sense": ":SYST:SENS?",
		"v_monitor":      ":SYST:VMONI?",
		"i_monitor":      ":SYST:IMONI?",
		"stop_on_fail":   ":STOP:ON:FAIL?",
	})
}
