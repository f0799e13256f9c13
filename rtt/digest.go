// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rtt

import (
	"encoding/binary"
	"hash/crc32"
	"strconv"
	"unicode/utf16"
)

// hashPassword computes the server-facing password proof: CRC-32
// (ISO-HDLC polynomial, the stdlib IEEE table) over the UTF-16
// little-endian serialization of the password, formatted as lowercase
// hexadecimal without leading zeros. The empty password digests the
// empty byte string, yielding "0".
func hashPassword(password string) string {
	units := utf16.Encode([]rune(password))
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
	}
	return strconv.FormatUint(uint64(crc32.ChecksumIEEE(buf)), 16)
}
