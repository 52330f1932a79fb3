package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	// AppName is reported to postgres as application_name
	AppName string

	PG PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot knobs, zero means default
	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

func (c PGConfig) retries() int {
	if c.ConnectRetries > 0 {
		return c.ConnectRetries
	}
	return 20
}

func (c PGConfig) pingTimeout() time.Duration {
	if c.PingTimeout > 0 {
		return c.PingTimeout
	}
	return 3 * time.Second
}
