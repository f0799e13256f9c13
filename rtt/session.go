// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package rtt opens real-time telemetry sessions against a Tacview
// server: TCP connect, banner handshake with the password digest, then
// the typed record stream of package acmi.
package rtt

import (
	"bufio"
	"fmt"
	"net"
	"time"

	"github.com/rs/xid"

	"github.com/rob-gra/go-tacview/acmi"
	"github.com/rob-gra/go-tacview/clog"
)

// Session is one established telemetry session. It owns the socket
// exclusively and is receive-only after the handshake. A Session
// belongs to a single goroutine; Next is not re-entrant. There is no
// reconnection: after a connection failure the only recovery is a new
// session.
type Session struct {
	clog.Clog

	id     string
	conn   net.Conn
	reader *acmi.Reader
}

// Connect dials addr and performs the handshake with the default
// configuration.
func Connect(addr, username, password string) (*Session, error) {
	cfg := DefaultConfig()
	cfg.Username = username
	cfg.Password = password
	return ConnectWith(addr, cfg)
}

// ConnectWith dials addr and performs the handshake with cfg.
func ConnectWith(addr string, cfg Config) (*Session, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	conn, err := net.DialTimeout("tcp", addr, cfg.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	return FromConn(conn, cfg)
}

// FromConn performs the handshake on an already established
// connection and takes ownership of it. The connection is closed on
// any setup failure.
func FromConn(conn net.Conn, cfg Config) (*Session, error) {
	if err := cfg.Valid(); err != nil {
		conn.Close()
		return nil, err
	}

	sf := &Session{
		Clog: clog.NewLogger("rtt "),
		id:   xid.New().String(),
		conn: conn,
	}

	rw := bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn))
	_ = conn.SetDeadline(time.Now().Add(cfg.HandshakeTimeout))
	if err := handshake(rw, cfg.Username, cfg.Password, sf.Clog); err != nil {
		conn.Close()
		return nil, err
	}
	_ = conn.SetDeadline(time.Time{})

	// the buffered reader is handed over so the stream prefix already
	// read from the kernel is not lost
	reader, err := acmi.NewReader(rw.Reader)
	if err != nil {
		conn.Close()
		return nil, err
	}
	sf.reader = reader
	sf.Debug("session %s established: %s %s",
		sf.id, reader.Header.FileType, reader.Header.FileVersion)
	return sf, nil
}

// ID returns the locally generated session id used in log lines.
func (sf *Session) ID() string { return sf.id }

// Header returns the validated ACMI preamble of the session.
func (sf *Session) Header() acmi.Header { return sf.reader.Header }

// Next returns the next record. It blocks until the server delivers a
// full logical line. Errors are terminal to the call; the session does
// not recover, and after a decode error the stream stays positioned
// after the offending line.
func (sf *Session) Next() (acmi.Record, error) {
	return sf.reader.Next()
}

// Close releases the connection. A blocked Next unblocks with an
// error; the session must not be used afterwards.
func (sf *Session) Close() error {
	return sf.conn.Close()
}
