// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rtt

import "errors"

// error defined
var (
	// ErrConnect TCP session establishment failed.
	ErrConnect = errors.New("rtt: connect failed")
	// ErrRead socket read failed during the handshake.
	ErrRead = errors.New("rtt: read failed")
	// ErrWrite socket write failed during the handshake.
	ErrWrite = errors.New("rtt: write failed")
	// ErrHeaderProtocol the server's stream protocol banner mismatched.
	ErrHeaderProtocol = errors.New("rtt: bad stream protocol header")
	// ErrHeaderVersion the server's telemetry version banner mismatched.
	ErrHeaderVersion = errors.New("rtt: bad stream version header")
	// ErrEndOfHeader the header terminator byte was not NUL; the
	// wrapped message carries the byte.
	ErrEndOfHeader = errors.New("rtt: bad end-of-header byte")
)
