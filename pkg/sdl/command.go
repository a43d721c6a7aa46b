// Package sdl drives a Siglent SDL1000X series DC electronic load over its
// SCPI command set. The Device type exposes one facade per operating mode;
// every facade dispatches through the Command hub, which validates
// parameters, talks to the transport and checks the instrument's standard
// event register after each exchange.
package sdl

import (
	"context"
	"strconv"
	"strings"

	sdlerr "github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/errors"
	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/logger"
	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/scpi"
)

// WaveSamples is the fixed length of a MEAS:WAVE? reply
const WaveSamples = 200

// esrFaultMask selects the standard event register fault bits: query error,
// device dependent error, execution error, command error
const esrFaultMask = 0x3C

// Command is the dispatch hub: it sends SCPI strings over the transport,
// parses replies, and raises a DeviceError when the instrument reports a
// fault after a command. One command is in flight at a time.
type Command struct {
	t   scpi.Transport
	log *logger.Logger
}

// NewCommand creates a dispatch hub over the given transport
func NewCommand(t scpi.Transport, log *logger.Logger) *Command {
	return &Command{t: t, log: log}
}

// Query sends a query command and returns the trimmed reply after checking
// the instrument status
func (c *Command) Query(ctx context.Context, query string) (string, error) {
	c.log.Trace("query %s", query)
	resp, err := c.t.Query(ctx, query)
	if err != nil {
		return "", err
	}
	if err := c.checkStatus(ctx, query); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp), nil
}

// QueryFloat sends a query and converts the numeric reply
func (c *Command) QueryFloat(ctx context.Context, query string) (float64, error) {
	resp, err := c.Query(ctx, query)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(resp, 64)
	if err != nil {
		return 0, sdlerr.NewDeviceError("parse numeric reply to "+query, 0,
			"malformed reply "+strconv.Quote(resp))
	}
	return v, nil
}

// QueryInt sends a query and converts the integer reply
func (c *Command) QueryInt(ctx context.Context, query string) (int, error) {
	v, err := c.QueryFloat(ctx, query)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// QueryBool sends a query and interprets a 0|1|ON|OFF reply
func (c *Command) QueryBool(ctx context.Context, query string) (bool, error) {
	resp, err := c.Query(ctx, query)
	if err != nil {
		return false, err
	}
	switch strings.ToUpper(resp) {
	case "1", "ON":
		return true, nil
	case "0", "OFF":
		return false, nil
	default:
		return false, sdlerr.NewDeviceError("parse boolean reply to "+query, 0,
			"malformed reply "+strconv.Quote(resp))
	}
}

// QueryEnum sends a query and returns the reply as an uppercase token
func (c *Command) QueryEnum(ctx context.Context, query string) (string, error) {
	resp, err := c.Query(ctx, query)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(resp), nil
}

// QueryWave sends a waveform query and parses the comma-separated block of
// exactly WaveSamples numeric samples
func (c *Command) QueryWave(ctx context.Context, query string) ([]float64, error) {
	resp, err := c.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	// The block ends with a trailing separator
	fields := strings.Split(resp, ",")
	samples := make([]float64, 0, WaveSamples)
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, sdlerr.NewDeviceError("parse waveform reply to "+query, 0,
				"malformed sample "+strconv.Quote(f))
		}
		samples = append(samples, v)
	}
	if len(samples) != WaveSamples {
		return nil, sdlerr.NewDeviceError("parse waveform reply to "+query, 0,
			"expected "+strconv.Itoa(WaveSamples)+" samples, got "+strconv.Itoa(len(samples)))
	}
	return samples, nil
}

// Set sends a write command carrying a validated argument
func (c *Command) Set(ctx context.Context, write, arg string) error {
	return c.Exec(ctx, write+" "+arg)
}

// Exec sends a bare write command
func (c *Command) Exec(ctx context.Context, write string) error {
	c.log.Trace("write %s", write)
	if err := c.t.Write(ctx, write); err != nil {
		return err
	}
	return c.checkStatus(ctx, write)
}

// checkStatus reads the standard event register and, if a fault bit is set,
// drains the error queue and fails with the instrument-reported code and
// message. The register queries bypass the status check to avoid recursion.
func (c *Command) checkStatus(ctx context.Context, op string) error {
	resp, err := c.t.Query(ctx, "*ESR?")
	if err != nil {
		return err
	}
	esr, err := strconv.Atoi(strings.TrimSpace(resp))
	if err != nil {
		return sdlerr.NewDeviceError(op, 0, "malformed *ESR? reply "+strconv.Quote(resp))
	}
	if esr&esrFaultMask == 0 {
		return nil
	}

	code, message := c.drainError(ctx)
	c.log.Warn("instrument fault after %s: %d %s", op, code, message)
	return sdlerr.NewDeviceError(op, code, message)
}

// drainError reads one entry from the instrument error queue
func (c *Command) drainError(ctx context.Context) (int, string) {
	resp, err := c.t.Query(ctx, "SYST:ERR?")
	if err != nil {
		return 0, "error queue unavailable"
	}
	// Reply shape: <code>,"<message>"
	code := 0
	message := strings.TrimSpace(resp)
	if i := strings.Index(resp, ","); i >= 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(resp[:i])); err == nil {
			code = n
		}
		message = strings.Trim(strings.TrimSpace(resp[i+1:]), `"`)
	}
	return code, message
}
