package scpi

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdlerr "github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/errors"
)

// startResponder runs a loopback SCPI endpoint answering every query line
// from the replies map; write commands get no reply.
func startResponder(t *testing.T, replies map[string]string) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				r := bufio.NewReader(conn)
				for {
					line, err := r.ReadString('\n')
					if err != nil {
						return
					}
					cmd := strings.TrimRight(line, "\r\n")
					if reply, ok := replies[cmd]; ok {
						conn.Write([]byte(reply + "\n"))
					}
				}
			}(conn)
		}
	}()

	return ln.Addr().String()
}

func TestQueryRoundTrip(t *testing.T) {
	addr := startResponder(t, map[string]string{
		"*IDN?":  "Siglent Technologies,SDL1020X,SDL13GCC6R0001,1.1.1.21",
		":CURR?": "2.500\r",
	})

	conn, err := Dial(context.Background(), addr)
	require.NoError(t, err)
	defer conn.Close()

	idn, err := conn.Query(context.Background(), "*IDN?")
	require.NoError(t, err)
	assert.Equal(t, "Siglent Technologies,SDL1020X,SDL13GCC6R0001,1.1.1.21", idn)

	// Carriage returns are stripped from the reply
	level, err := conn.Query(context.Background(), ":CURR?")
	require.NoError(t, err)
	assert.Equal(t, "2.500", level)
}

func TestWriteSendsNewlineTerminatedCommand(t *testing.T) {
	received := make(chan string, 1)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		line, _ := bufio.NewReader(conn).ReadString('\n')
		received <- line
	}()

	conn, err := Dial(context.Background(), ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Write(context.Background(), ":INP ON"))

	select {
	case line := <-received:
		assert.Equal(t, ":INP ON\n", line)
	case <-time.After(2 * time.Second):
		t.Fatal("command never arrived")
	}
}

func TestDialFailureIsTransportError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	_, err = Dial(context.Background(), addr)
	var transport *sdlerr.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, addr, transport.Addr)
}

func TestQueryTimeoutIsTransportError(t *testing.T) {
	// Responder that never answers
	addr := startResponder(t, nil)

	conn, err := Dial(context.Background(), addr, WithTimeout(100*time.Millisecond))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Query(context.Background(), "*IDN?")
	var transport *sdlerr.TransportError
	assert.ErrorAs(t, err, &transport)
}

func TestContextDeadlineBoundsQuery(t *testing.T) {
	addr := startResponder(t, nil)

	conn, err := Dial(context.Background(), addr, WithTimeout(time.Minute))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = conn.Query(ctx, "*IDN?")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDialAppendsDefaultPort(t *testing.T) {
	// A bare host must get the instrument's raw-socket port appended; the
	// connection itself fails fast against a closed local port.
	_, err := Dial(context.Background(), "127.0.0.1")
	var transport *sdlerr.TransportError
	require.ErrorAs(t, err, &transport)
	assert.True(t, strings.HasSuffix(transport.Addr, ":"+DefaultPort))
}
