// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package acmi

import "errors"

// error defined
var (
	// ErrRead reading from the underlying line source failed. The
	// wrapped cause carries the I/O error; end-of-stream wraps io.EOF so
	// callers can tell a closed stream from a broken one.
	ErrRead = errors.New("acmi: read failed")
	// ErrBadFileType the FileType preamble line doesn't declare an ACMI
	// flat-text stream.
	ErrBadFileType = errors.New("acmi: bad file type header")
	// ErrBadFileVersion the FileVersion preamble line doesn't declare
	// the 2.2 line.
	ErrBadFileVersion = errors.New("acmi: bad file version header")
	// ErrMissingDelimiter a record line lacks the comma separating the
	// object id from its fields.
	ErrMissingDelimiter = errors.New("acmi: unexpected end of record line")

	ErrParseInt   = errors.New("acmi: parse integer")
	ErrParseFloat = errors.New("acmi: parse float")
	ErrParseTime  = errors.New("acmi: parse timestamp")

	ErrMalformedEvent          = errors.New("acmi: malformed event")
	ErrMalformedGlobalProperty = errors.New("acmi: malformed global property")
	ErrMalformedObjectProperty = errors.New("acmi: malformed object property")
	ErrMalformedCoords         = errors.New("acmi: malformed coordinates")
)
