package scpi

import (
	"bufio"
	"context"
	"net"
	"strings"
	"time"

	sdlerr "github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/errors"
)

const (
	// DefaultPort is the raw-socket SCPI port of the SDL1000X
	DefaultPort = "5025"

	defaultDialTimeout = 5 * time.Second
	defaultIOTimeout   = 5 * time.Second
)

// Conn is a TCP transport speaking newline-terminated SCPI
type Conn struct {
	addr    string
	conn    net.Conn
	reader  *bufio.Reader
	timeout time.Duration
}

// Option configures a Conn
type Option func(*Conn)

// WithTimeout sets the per-operation I/O timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Conn) {
		c.timeout = d
	}
}

// Dial opens a SCPI connection to the instrument. If addr carries no port,
// the SDL1000X default raw-socket port is used.
func Dial(ctx context.Context, addr string, opts ...Option) (*Conn, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, DefaultPort)
	}

	c := &Conn{
		addr:    addr,
		timeout: defaultIOTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	dialer := net.Dialer{Timeout: defaultDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, sdlerr.NewTransportError("dial", err, addr)
	}

	c.conn = conn
	c.reader = bufio.NewReader(conn)
	return c, nil
}

// deadline picks the earlier of the context deadline and the configured
// I/O timeout
func (c *Conn) deadline(ctx context.Context) time.Time {
	d := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(d) {
		return ctxDeadline
	}
	return d
}

// Write sends one command line
func (c *Conn) Write(ctx context.Context, cmd string) error {
	if err := c.conn.SetWriteDeadline(c.deadline(ctx)); err != nil {
		return sdlerr.NewTransportError("set write deadline", err, c.addr)
	}
	if _, err := c.conn.Write([]byte(cmd + "\n")); err != nil {
		return sdlerr.NewTransportError("write "+cmd, err, c.addr)
	}
	return nil
}

// Query sends one command line and reads one newline-terminated reply
func (c *Conn) Query(ctx context.Context, cmd string) (string, error) {
	if err := c.Write(ctx, cmd); err != nil {
		return "", err
	}
	if err := c.conn.SetReadDeadline(c.deadline(ctx)); err != nil {
		return "", sdlerr.NewTransportError("set read deadline", err, c.addr)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return "", sdlerr.NewTransportError("read reply to "+cmd, err, c.addr)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close closes the underlying connection
func (c *Conn) Close() error {
	if err := c.conn.Close(); err != nil {
		return sdlerr.NewTransportError("close", err, c.addr)
	}
	return nil
}
