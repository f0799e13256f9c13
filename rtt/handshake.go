// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rtt

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rob-gra/go-tacview/clog"
)

// banner strings of the real-time telemetry handshake. Both sides send
// the same pair; the server's copy must match bit-exactly.
const (
	streamProtocol = "XtraLib.Stream.0"
	streamVersion  = "Tacview.RealTimeTelemetry.0"

	// the server terminates its header block with a single NUL
	endOfHeader byte = 0x00
)

// handshake runs the banner/credential exchange on a fresh buffered
// connection. On return the read side is positioned at the first byte
// of the ACMI stream.
//
// Server to client: protocol line, version line, hostname line, NUL.
// Client to server: protocol line, version line, username line, then
// the password digest terminated by NUL instead of a newline.
func handshake(rw *bufio.ReadWriter, username, password string, log clog.Clog) error {
	// protocol header
	line, err := rw.ReadString('\n')
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	if line != streamProtocol+"\n" {
		return fmt.Errorf("%w: %q", ErrHeaderProtocol, line)
	}

	// version header
	line, err = rw.ReadString('\n')
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	if line != streamVersion+"\n" {
		return fmt.Errorf("%w: %q", ErrHeaderVersion, line)
	}

	// hostname, free text, retained only for logging
	line, err = rw.ReadString('\n')
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	log.Debug("server hostname: %s", strings.TrimSuffix(line, "\n"))

	eoh, err := rw.ReadByte()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	if eoh != endOfHeader {
		return fmt.Errorf("%w: 0x%02x", ErrEndOfHeader, eoh)
	}

	for _, s := range []string{
		streamProtocol + "\n",
		streamVersion + "\n",
		username + "\n",
		hashPassword(password) + "\x00",
	} {
		if _, err := rw.WriteString(s); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	if err := rw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
