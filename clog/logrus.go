// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package clog

import (
	"github.com/sirupsen/logrus"
)

// LogrusProvider adapts a logrus logger to the LogProvider interface.
// logrus has no CRITICAL level, those messages are logged at ERROR.
type LogrusProvider struct {
	*logrus.Logger
}

var _ LogProvider = LogrusProvider{}

// NewLogrusProvider wraps the given logrus logger. A nil logger uses
// the logrus standard logger.
func NewLogrusProvider(l *logrus.Logger) LogrusProvider {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return LogrusProvider{l}
}

// Critical Log CRITICAL level message.
func (sf LogrusProvider) Critical(format string, v ...interface{}) {
	sf.Logger.Errorf(format, v...)
}

// Error Log ERROR level message.
func (sf LogrusProvider) Error(format string, v ...interface{}) {
	sf.Logger.Errorf(format, v...)
}

// Warn Log WARN level message.
func (sf LogrusProvider) Warn(format string, v ...interface{}) {
	sf.Logger.Warnf(format, v...)
}

// Debug Log DEBUG level message.
func (sf LogrusProvider) Debug(format string, v ...interface{}) {
	sf.Logger.Debugf(format, v...)
}
