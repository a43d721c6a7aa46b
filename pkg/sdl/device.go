package sdl

import (
	"context"
	"strings"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/logger"
	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/scpi"
	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"
)

// Device is one SDL1000X electronic load. Each operating mode gets its own
// facade; all of them dispatch through a single Command hub over a single
// connection, so a Device must be owned by one goroutine at a time.
type Device struct {
	// Model is the instrument model from the *IDN? reply, e.g. "SDL1020X"
	Model string

	Input *Input
	CC    *ModeCC
	CV    *ModeCV
	CP    *ModeCP
	CR    *ModeCR
	Test  *TestFunctions
	Meas  *Measure
	Sys   *System
	Prot  *Protection
	Com   *Common

	cmd *Command
	t   scpi.Transport
}

// Option configures a Device
type Option func(*deviceOptions)

type deviceOptions struct {
	log  *logger.Logger
	dial []scpi.Option
}

// WithLogger sets the logger used by the dispatch hub
func WithLogger(l *logger.Logger) Option {
	return func(o *deviceOptions) {
		o.log = l
	}
}

// WithDialOptions forwards options to the transport dial
func WithDialOptions(opts ...scpi.Option) Option {
	return func(o *deviceOptions) {
		o.dial = append(o.dial, opts...)
	}
}

// Open dials the instrument at addr (host or host:port), identifies the
// model and builds the mode facades with the model's limits.
func Open(ctx context.Context, addr string, opts ...Option) (*Device, error) {
	o := applyOptions(opts)

	t, err := scpi.Dial(ctx, addr, o.dial...)
	if err != nil {
		return nil, err
	}

	dev, err := newDevice(ctx, t, o)
	if err != nil {
		t.Close()
		return nil, err
	}
	return dev, nil
}

// NewDevice builds a Device over an already-open transport. Intended for
// transports other than TCP and for tests injecting a simulated instrument.
func NewDevice(ctx context.Context, t scpi.Transport, opts ...Option) (*Device, error) {
	return newDevice(ctx, t, applyOptions(opts))
}

func applyOptions(opts []Option) *deviceOptions {
	o := &deviceOptions{log: logger.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func newDevice(ctx context.Context, t scpi.Transport, o *deviceOptions) (*Device, error) {
	cmd := NewCommand(t, o.log)

	idn, err := cmd.Query(ctx, "*IDN?")
	if err != nil {
		return nil, err
	}
	limits := validate.TestLimits{Limits: validate.DetectLimits(idn)}

	model := ""
	if fields := strings.Split(idn, ","); len(fields) >= 2 {
		model = strings.TrimSpace(fields[1])
	}
	o.log.Info("connected to %s", idn)

	input := NewInput(cmd)
	return &Device{
		Model: model,
		Input: input,
		CC:    newModeCC(cmd, input, limits.Limits),
		CV:    newModeCV(cmd, input, limits.Limits),
		CP:    newModeCP(cmd, input, limits.Limits),
		CR:    newModeCR(cmd, input, limits.Limits),
		Test:  newTestFunctions(cmd, input, limits),
		Meas:  NewMeasure(cmd),
		Sys:   NewSystem(cmd),
		Prot:  NewProtection(cmd, limits.Limits),
		Com:   NewCommon(cmd, limits.Limits),
		cmd:   cmd,
		t:     t,
	}, nil
}

// Close releases the transport
func (d *Device) Close() error {
	return d.t.Close()
}
