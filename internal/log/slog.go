/*
Copyright 2026 The Vitess Authors.

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

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

const (
	levelDebug = slog.LevelDebug
	levelInfo  = slog.LevelInfo
	levelWarn  = slog.LevelWarn
	levelError = slog.LevelError
)

var structuredLoggingEnabled atomic.Bool

var exit = os.Exit

// Init switches to slog if --log-fmt was set on fs. Output goes to stderr.
func Init(fs *pflag.FlagSet) error {
	return initTo(fs, os.Stderr)
}

func initTo(fs *pflag.FlagSet, w io.Writer) error {
	if fs == nil {
		return nil
	}

	formatFlag := fs.Lookup("log-fmt")
	if formatFlag == nil || !formatFlag.Changed {
		return nil
	}

	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{AddSource: true, Level: level}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(logFormat)) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "logfmt":
		handler = slog.NewTextHandler(w, opts)
	default:
		return fmt.Errorf("invalid log-fmt %q: expected json or logfmt", logFormat)
	}

	slog.SetDefault(slog.New(handler))
	structuredLoggingEnabled.Store(true)

	return nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug, nil
	case "info":
		return levelInfo, nil
	case "warn":
		return levelWarn, nil
	case "error":
		return levelError, nil
	}
	return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn or error", level)
}

// Enabled reports whether a message at level would be written. Debug goes
// through glog's -v when slog is off.
func Enabled(level slog.Level) bool {
	if structuredLoggingEnabled.Load() {
		return slog.Default().Enabled(context.Background(), level)
	}

	if level < levelInfo {
		return bool(glog.V(1))
	}

	return true
}

func logS(level slog.Level, depth int, msg string, args ...any) {
	if !structuredLoggingEnabled.Load() {
		logGlog(level, depth, msg, args...)
		return
	}

	logger := slog.Default()
	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}

	// Skip runtime.Callers, logS and the exported wrapper
	var pcs [1]uintptr
	runtime.Callers(depth+3, pcs[:])

	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)

	_ = logger.Handler().Handle(ctx, record)
}

func logGlog(level slog.Level, depth int, msg string, args ...any) {
	depth += 3
	args = append([]any{msg}, args...)

	switch level {
	case levelDebug:
		if glog.V(1) {
			glog.InfoDepth(depth, args...)
		}
	case levelWarn:
		glog.WarningDepth(depth, args...)
	case levelError:
		glog.ErrorDepth(depth, args...)
	default:
		glog.InfoDepth(depth, args...)
	}
}

// InfoS logs msg with key value pairs at info level
func InfoS(msg string, args ...any) {
	logS(levelInfo, 0, msg, args...)
}

// WarnS logs msg with key value pairs at warn level
func WarnS(msg string, args ...any) {
	logS(levelWarn, 0, msg, args...)
}

// DebugS logs msg with key value pairs at debug level
func DebugS(msg string, args ...any) {
	logS(levelDebug, 0, msg, args...)
}

// ErrorS logs msg with key value pairs at error level
func ErrorS(msg string, args ...any) {
	logS(levelError, 0, msg, args...)
}

// SetLogger makes logger the structured logger until the returned function
// is called. Used by tests.
func SetLogger(logger *slog.Logger) func() {
	if logger == nil {
		return func() {}
	}

	previousEnabled := structuredLoggingEnabled.Load()
	previousDefault := slog.Default()

	slog.SetDefault(logger)
	structuredLoggingEnabled.Store(true)

	return func() {
		slog.SetDefault(previousDefault)
		structuredLoggingEnabled.Store(previousEnabled)
	}
}
