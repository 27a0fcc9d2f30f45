/*
Copyright 2019 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log wraps glog. Structured output through slog is used instead
// when --log-fmt is given on the command line.
package log

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

// Flush writes out buffered log lines
var Flush = glog.Flush

var (
	logFormat string
	logLevel  string
)

// RegisterFlags adds the logging flags to a flag set
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&logFormat, "log-fmt", "json", "structured log output: json or logfmt")
	fs.StringVar(&logLevel, "log-level", "info", "minimum structured log level: debug, info, warn or error")
}

// Infof logs a formatted message at info level
func Infof(format string, args ...any) {
	logS(levelInfo, 0, fmt.Sprintf(format, args...))
}

// Warningf logs a formatted message at warning level
func Warningf(format string, args ...any) {
	logS(levelWarn, 0, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at error level
func Errorf(format string, args ...any) {
	logS(levelError, 0, fmt.Sprintf(format, args...))
}

// Exitf logs at error level, flushes and exits with status 1
func Exitf(format string, args ...any) {
	if structuredLoggingEnabled.Load() {
		logS(levelError, 0, fmt.Sprintf(format, args...))
		exit(1)
		return
	}
	glog.ExitDepth(1, fmt.Sprintf(format, args...))
}

// V reports whether verbose logging at a level is on. Only consulted when
// logging through glog.
func V(level glog.Level) bool {
	if structuredLoggingEnabled.Load() {
		return Enabled(levelDebug)
	}
	return bool(glog.V(level))
}
