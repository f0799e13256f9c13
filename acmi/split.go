// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package acmi

import "strings"

// splitEscaped splits line on delim while honoring backslash escapes:
// a delimiter immediately preceded by '\' is demoted to a data
// character and the backslash is dropped. Backslashes not followed by
// the delimiter pass through verbatim. A single empty trailing field
// (delimiter at end of line) is not emitted.
func splitEscaped(line string, delim byte) []string {
	fields := splitEscapedAll(line, delim)
	if n := len(fields); n > 0 && fields[n-1] == "" {
		fields = fields[:n-1]
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// splitEscapedAll is splitEscaped keeping the empty trailing field.
// The positional coordinate grammar needs exact arity, so empty tail
// positions must survive.
func splitEscapedAll(line string, delim byte) []string {
	var out []string
	var buf strings.Builder
	for _, tok := range strings.Split(line, string(delim)) {
		buf.WriteString(tok)
		s := buf.String()
		if strings.HasSuffix(s, `\`) {
			// escaped delimiter, keep accumulating
			buf.Reset()
			buf.WriteString(s[:len(s)-1])
			buf.WriteByte(delim)
			continue
		}
		out = append(out, s)
		buf.Reset()
	}
	if buf.Len() > 0 {
		// line ended on a dangling escape, emit it as-is
		s := buf.String()
		out = append(out, s[:len(s)-1]+`\`)
	}
	return out
}
