package live

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Default tuning values, applied by Config.withDefaults.
const (
	DefaultReadTimeout       = 60 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultHeartbeatInterval = 30 * time.Second
	DefaultMaxSessions       = 1000
	DefaultSendBuffer        = 64
	DefaultEventBuffer       = 256
)

// Config tunes a Server. The zero value is usable; unset fields take
// the package defaults.
type Config struct {
	// Logger receives structured server logs. Defaults to slog.Default().
	Logger *slog.Logger

	// ReadTimeout bounds how long a session may stay silent; the
	// heartbeat keeps healthy connections inside it.
	ReadTimeout time.Duration

	// WriteTimeout bounds a single WebSocket write.
	WriteTimeout time.Duration

	// HeartbeatInterval is the ping cadence.
	HeartbeatInterval time.Duration

	// MaxSessions caps concurrent viewers; further handshakes answer
	// ServerBusy.
	MaxSessions int

	// SendBuffer is the per-session outbound frame queue. A session
	// that cannot drain it is closed rather than allowed to stall the
	// broadcast.
	SendBuffer int

	// EventBuffer is the event loop's inbox size.
	EventBuffer int

	// Registry receives the server's Prometheus metrics. Defaults to
	// prometheus.DefaultRegisterer; set to nil-safe custom registries
	// in tests to avoid duplicate registration.
	Registry prometheus.Registerer
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = DefaultMaxSessions
	}
	if c.SendBuffer <= 0 {
		c.SendBuffer = DefaultSendBuffer
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = DefaultEventBuffer
	}
	if c.Registry == nil {
		c.Registry = prometheus.DefaultRegisterer
	}
	return c
}
