package sdl

import (
	"context"
	"fmt"
	"strings"
)

// simInstrument is an in-memory SDL1000X stand-in implementing
// scpi.Transport. Writes of the form "CMD arg" are stored under CMD;
// step-addressed writes "CMD step,arg" are stored under "CMD step".
// Queries look the stored value back up, so every set/get pair round-trips.
type simInstrument struct {
	idn      string
	settings map[string]string
	writes   []string

	esr       int    // returned (and cleared) by the next *ESR? query
	lastError string // returned by SYST:ERR?

	waveSamples int
	failNext    error // returned by the next transport operation

	closed bool
}

func newSimInstrument() *simInstrument {
	return &simInstrument{
		idn:         "Siglent Technologies,SDL1020X,SDL13GCC6R0001,1.1.1.21",
		settings:    map[string]string{},
		waveSamples: WaveSamples,
	}
}

func (s *simInstrument) Write(ctx context.Context, cmd string) error {
	if err := s.takeFailure(); err != nil {
		return err
	}
	s.writes = append(s.writes, cmd)

	key, arg, found := strings.Cut(cmd, " ")
	if !found {
		// Bare action commands arm their mode
		switch cmd {
		case ":BATT:FUNC":
			s.settings[":BATT:FUNC"] = "1"
		case ":OCP:FUNC":
			s.settings[":OCP:FUNC"] = "1"
		case ":OPP:FUNC":
			s.settings[":OPP:FUNC"] = "1"
		case ":LIST:STAT:ON":
			s.settings[":LIST:STAT"] = "1"
		case ":PROG:STAT:ON":
			s.settings[":PROG:STAT"] = "1"
		}
		return nil
	}

	if step, value, stepped := strings.Cut(arg, ","); stepped {
		s.settings[key+" "+step] = value
		return nil
	}
	s.settings[key] = arg
	return nil
}

func (s *simInstrument) Query(ctx context.Context, cmd string) (string, error) {
	if err := s.takeFailure(); err != nil {
		return "", err
	}

	switch {
	case cmd == "*IDN?":
		return s.idn, nil
	case cmd == "*ESR?":
		esr := s.esr
		s.esr = 0
		return fmt.Sprintf("%d", esr), nil
	case cmd == "SYST:ERR?":
		if s.lastError == "" {
			return `0,"No error"`, nil
		}
		e := s.lastError
		s.lastError = ""
		return e, nil
	case strings.HasPrefix(cmd, "MEAS:WAVE?"):
		samples := make([]string, s.waveSamples)
		for i := range samples {
			samples[i] = "0.123"
		}
		return strings.Join(samples, ",") + ",", nil
	}

	key := strings.Replace(cmd, "?", "", 1)
	if v, ok := s.settings[key]; ok {
		return v, nil
	}
	return "0", nil
}

func (s *simInstrument) Close() error {
	s.closed = true
	return nil
}

func (s *simInstrument) takeFailure() error {
	if s.failNext == nil {
		return nil
	}
	err := s.failNext
	s.failNext = nil
	return err
}

// wroteCommand reports whether any write starts with the given prefix
func (s *simInstrument) wroteCommand(prefix string) bool {
	for _, w := range s.writes {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}
