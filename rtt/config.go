// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rtt

import (
	"errors"
	"time"
)

// Port is the default real-time telemetry port of a Tacview server.
const Port = 42674

// configuration ranges
const (
	// connection establishment timeout range [1, 255]s default 30s
	ConnectTimeoutMin = 1 * time.Second
	ConnectTimeoutMax = 255 * time.Second

	// handshake completion timeout range [1, 255]s default 15s
	HandshakeTimeoutMin = 1 * time.Second
	HandshakeTimeoutMax = 255 * time.Second
)

// Config defines a real-time telemetry session configuration.
// The default is applied for each unspecified value.
type Config struct {
	// Username presented to the server during the handshake.
	Username string

	// Password proven to the server as a digest; never sent in clear.
	Password string

	// The maximum timeout period for tcp connection establishment,
	// range [1, 255]s, default 30s.
	ConnectTimeout time.Duration

	// The deadline covering the whole banner exchange, applied to the
	// socket until the handshake completes, range [1, 255]s,
	// default 15s. Stream reads after the handshake have no deadline:
	// TCP flow control is the only backpressure.
	HandshakeTimeout time.Duration
}

// Valid applies the default for each unspecified value.
func (sf *Config) Valid() error {
	if sf == nil {
		return errors.New("invalid pointer")
	}

	if sf.ConnectTimeout == 0 {
		sf.ConnectTimeout = 30 * time.Second
	} else if sf.ConnectTimeout < ConnectTimeoutMin || sf.ConnectTimeout > ConnectTimeoutMax {
		return errors.New("ConnectTimeout not in [1, 255]s")
	}

	if sf.HandshakeTimeout == 0 {
		sf.HandshakeTimeout = 15 * time.Second
	} else if sf.HandshakeTimeout < HandshakeTimeoutMin || sf.HandshakeTimeout > HandshakeTimeoutMax {
		return errors.New("HandshakeTimeout not in [1, 255]s")
	}

	return nil
}

// DefaultConfig default config
func DefaultConfig() Config {
	return Config{
		"",
		"",
		30 * time.Second,
		15 * time.Second,
	}
}
