package sdl

import "context"

// Measure exposes the instrument's measurement queries. All accessors are
// read-only; the waveform queries return the instrument's fixed 200-sample
// capture buffer.
type Measure struct {
	cmd *Command
}

// NewMeasure creates the measurement facade
func NewMeasure(cmd *Command) *Measure {
	return &Measure{cmd: cmd}
}

// Voltage returns the measured input voltage in volts
func (m *Measure) Voltage(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, "MEAS:VOLT?")
}

// Current returns the measured sink current in amperes
func (m *Measure) Current(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, "MEAS:CURR?")
}

// Power returns the measured sink power in watts
func (m *Measure) Power(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, "MEAS:POW?")
}

// Resistance returns the measured resistance in ohms
func (m *Measure) Resistance(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, "MEAS:RES?")
}

// External returns the measurement on the external input
func (m *Measure) External(ctx context.Context) (float64, error) {
	return m.cmd.QueryFloat(ctx, "MEAS:EXT?")
}

// wave retrieves the capture buffer for one measurement source
func (m *Measure) wave(ctx context.Context, source string) ([]float64, error) {
	return m.cmd.QueryWave(ctx, "MEAS:WAVE? "+source)
}

// WaveVoltage returns the 200-sample voltage capture buffer
func (m *Measure) WaveVoltage(ctx context.Context) ([]float64, error) {
	return m.wave(ctx, "VOLT")
}

// WaveCurrent returns the 200-sample current capture buffer
func (m *Measure) WaveCurrent(ctx context.Context) ([]float64, error) {
	return m.wave(ctx, "CURR")
}

// WavePower returns the 200-sample power capture buffer
func (m *Measure) WavePower(ctx context.Context) ([]float64, error) {
	return m.wave(ctx, "POW")
}

// WaveResistance returns the 200-sample resistance capture buffer
func (m *Measure) WaveResistance(ctx context.Context) ([]float64, error) {
	return m.wave(ctx, "RES")
}
