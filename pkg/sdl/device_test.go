package sdl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdlerr "github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/errors"
)

func newTestDevice(t *testing.T, sim *simInstrument) *Device {
	t.Helper()
	dev, err := NewDevice(context.Background(), sim)
	require.NoError(t, err)
	return dev
}

func TestNewDeviceIdentifiesModel(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)
	assert.Equal(t, "SDL1020X", dev.Model)
}

func TestNewDeviceHighPowerModel(t *testing.T) {
	sim := newSimInstrument()
	sim.idn = "Siglent Technologies,SDL1030X,SDL13GCC6R0002,1.1.1.21"
	dev := newTestDevice(t, sim)

	ctx := context.Background()
	assert.NoError(t, dev.CP.SetLevel(ctx, 300))
	assert.Error(t, dev.CP.SetLevel(ctx, 300.01))
}

func TestStandardModelPowerLimit(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)

	ctx := context.Background()
	assert.NoError(t, dev.CP.SetLevel(ctx, 200))

	err := dev.CP.SetLevel(ctx, 250)
	var invalid *sdlerr.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "level", invalid.Parameter)
}

func TestStaticLevelRoundTrip(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)
	ctx := context.Background()

	require.NoError(t, dev.CC.SetLevel(ctx, 2.5))
	assert.Equal(t, "2.500", sim.settings[":CURR"])

	level, err := dev.CC.Level(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.5, level)
}

func TestInvalidLevelNeverReachesInstrument(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)

	err := dev.CC.SetLevel(context.Background(), 30.001)
	var invalid *sdlerr.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.False(t, sim.wroteCommand(":CURR"))
}

func TestOnArmsBeforeEnablingInput(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)

	require.NoError(t, dev.CC.On(context.Background()))
	require.Len(t, sim.writes, 2)
	assert.Equal(t, ":FUNC CURR", sim.writes[0])
	assert.Equal(t, ":INP ON", sim.writes[1])
}

func TestOnSkipsInputWhenArmingFails(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)

	sim.failNext = sdlerr.NewTransportError("write", errors.New("broken pipe"), "sim")
	err := dev.CV.On(context.Background())

	var transport *sdlerr.TransportError
	require.ErrorAs(t, err, &transport)
	assert.False(t, sim.wroteCommand(":INP"))
}

func TestDynamicSetAAndBAbortsOnFirstFailure(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)

	// b level exceeds the current bound, so only the a level is written
	err := dev.CC.Dyn.SetAAndB(context.Background(), 1.0, 31.0, 0.5, 0.5)
	var invalid *sdlerr.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "b_level", invalid.Parameter)
	assert.True(t, sim.wroteCommand(":CURR:TRAN:ALEV"))
	assert.False(t, sim.wroteCommand(":CURR:TRAN:BLEV"))
	assert.False(t, sim.wroteCommand(":CURR:TRAN:AWID"))
}

func TestDynamicPulseModeEnum(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)
	ctx := context.Background()

	for _, mode := range []string{"CONTINUOUS", "cont", "Pulse", "TOGGLE"} {
		assert.NoError(t, dev.CP.Dyn.SetPulseMode(ctx, mode), mode)
	}
	assert.Error(t, dev.CP.Dyn.SetPulseMode(ctx, "RAMP"))
}

func TestStaticValuesSnapshotKeys(t *testing.T) {
	sim := newSimInstrument()
	sim.settings[":FUNC"] = "CURRENT"
	sim.settings[":INP"] = "1"
	dev := newTestDevice(t, sim)

	snap, err := dev.CC.Values(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"input_on": "1",
		"short_on": "0",
		"mode":     "STATIC CURRENT",
	}, snap.Input)

	for _, key := range []string{"level", "current_range", "voltage_range", "slew_pos", "slew_neg"} {
		assert.Contains(t, snap.Mode, key)
	}
	assert.Len(t, snap.Mode, 5)
}

func TestDynamicValuesSnapshotKeys(t *testing.T) {
	sim := newSimInstrument()
	sim.settings[":FUNC:TRAN"] = "RESISTANCE"
	dev := newTestDevice(t, sim)

	snap, err := dev.CR.Dyn.Values(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "DYNAMIC RESISTANCE", snap.Input["mode"])
	for _, key := range []string{"pulse_mode", "a_level", "b_level", "a_width", "b_width",
		"current_range", "voltage_range", "resistance_range"} {
		assert.Contains(t, snap.Mode, key)
	}
	assert.Len(t, snap.Mode, 8)
}

func TestDeviceFaultSurfacesThenClears(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)
	ctx := context.Background()

	sim.esr = 0x20 // execution error bit
	sim.lastError = `30,"Invalid character"`

	err := dev.Input.On(ctx)
	var device *sdlerr.DeviceError
	require.ErrorAs(t, err, &device)
	assert.Equal(t, 30, device.DeviceCode)
	assert.Equal(t, "Invalid character", device.Message)

	// The register was read-and-cleared, so the next dispatch is clean
	assert.NoError(t, dev.Input.On(ctx))
}

func TestOperationCompleteBitIgnored(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)

	sim.esr = 0x01 // OPC is not a fault bit
	assert.NoError(t, dev.Input.Off(context.Background()))
}

func TestMeasureWaveLength(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)

	wave, err := dev.Meas.WaveCurrent(context.Background())
	require.NoError(t, err)
	assert.Len(t, wave, WaveSamples)
	assert.Equal(t, 0.123, wave[0])
}

func TestMeasureWaveShortBlock(t *testing.T) {
	sim := newSimInstrument()
	sim.waveSamples = WaveSamples - 1
	dev := newTestDevice(t, sim)

	_, err := dev.Meas.WaveVoltage(context.Background())
	var device *sdlerr.DeviceError
	require.ErrorAs(t, err, &device)
}

func TestCommonRegisterBounds(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)
	ctx := context.Background()

	assert.NoError(t, dev.Com.SetEse(ctx, 0))
	assert.NoError(t, dev.Com.SetEse(ctx, 255))
	assert.Error(t, dev.Com.SetEse(ctx, 256))
	assert.Error(t, dev.Com.SetEse(ctx, -1))

	assert.NoError(t, dev.Com.Sav(ctx, 9))
	assert.Error(t, dev.Com.Rcl(ctx, 10))
}

func TestRstAlsoClearsEventRegisters(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)

	require.NoError(t, dev.Com.Rst(context.Background()))
	assert.Equal(t, []string{"*RST", "*CLS"}, sim.writes)
}

func TestCloseReleasesTransport(t *testing.T) {
	sim := newSimInstrument()
	dev := newTestDevice(t, sim)

	require.NoError(t, dev.Close())
	assert.True(t, sim.closed)
}
