// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package acmi decodes the ACMI 2.2 flat-text telemetry grammar into
// typed records. The Reader works against any line-oriented byte
// source; the realtime TCP session of package rtt is one of them.
package acmi

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rob-gra/go-tacview/clog"
)

// ACMI stream preamble, read once before any record.
const (
	fileTypeLine      = "FileType=text/acmi/tacview"
	fileVersionPrefix = "FileVersion=2.2"
)

// Header is the validated stream preamble.
type Header struct {
	FileType    string
	FileVersion string
}

// Reader decodes records from a line-oriented byte source. It is owned
// by a single goroutine; Next is not re-entrant.
type Reader struct {
	clog.Clog

	// Header is the validated preamble, set at construction.
	Header Header

	rd *bufio.Reader
}

// NewReader validates the two preamble lines of r and returns a Reader
// positioned at the first record. An existing *bufio.Reader is used as
// is, so buffered bytes are not lost.
func NewReader(r io.Reader) (*Reader, error) {
	rd, ok := r.(*bufio.Reader)
	if !ok {
		rd = bufio.NewReader(r)
	}
	sf := &Reader{
		Clog: clog.NewLogger("acmi "),
		rd:   rd,
	}

	// file type
	line, err := sf.readLine()
	if err != nil {
		return nil, err
	}
	if line != fileTypeLine {
		return nil, fmt.Errorf("%w: %q", ErrBadFileType, line)
	}
	sf.Header.FileType = strings.TrimPrefix(line, "FileType=")

	// file version
	line, err = sf.readLine()
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(line, fileVersionPrefix) {
		return nil, fmt.Errorf("%w: %q", ErrBadFileVersion, line)
	}
	sf.Header.FileVersion = strings.TrimPrefix(line, "FileVersion=")

	return sf, nil
}

// readLine reads one physical line with the trailing '\n' stripped.
func (sf *Reader) readLine() (string, error) {
	line, err := sf.rd.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// Next returns the next record of the stream. It blocks until a full
// logical line is available, skips comment lines, and joins
// '\'-continuations with a literal newline at the join point. Errors
// are terminal to the call but the reader stays positioned after the
// offending line; callers that need resilience must reconnect.
func (sf *Reader) Next() (Record, error) {
	var buf strings.Builder
	cont := false
	for {
		line, err := sf.readLine()
		if err != nil {
			return Record{}, err
		}
		if !cont && strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasSuffix(line, `\`) {
			buf.WriteString(line[:len(line)-1])
			buf.WriteByte('\n')
			cont = true
			continue
		}
		buf.WriteString(line)
		logical := buf.String()
		sf.Debug("parsing line: %s", logical)
		return parseRecord(logical)
	}
}
