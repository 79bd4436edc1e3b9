// Copyright (c) 2026 The Stacks PoX developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"log/slog"
	"os"
)

// Logger is the logger handed out to packages.
type Logger = *slog.Logger

var root = &swapHandler{}

var rootLogger = slog.New(root)

func init() {
	root.swap(DiscardHandler())
}

// Root returns the root logger.
func Root() Logger {
	return rootLogger
}

// WithContext returns a logger carrying the given context attributes.
// Loggers derived before SetDefault still honor the installed handler.
func WithContext(ctx ...any) Logger {
	return rootLogger.With(ctx...)
}

// SetDefault installs the handler backing the root logger and all loggers
// derived from it.
func SetDefault(h slog.Handler) {
	root.swap(h)
}

// Verbosity maps an integer verbosity (0=error .. 3=debug and up) to a
// slog level var suitable for the handlers in this package.
func Verbosity(v int) *slog.LevelVar {
	lvl := new(slog.LevelVar)
	switch v {
	case 0:
		lvl.Set(slog.LevelError)
	case 1:
		lvl.Set(slog.LevelWarn)
	case 2:
		lvl.Set(slog.LevelInfo)
	default:
		lvl.Set(slog.LevelDebug)
	}
	return lvl
}

// Convenience wrappers over the root logger.

func Debug(msg string, ctx ...any) { rootLogger.Debug(msg, ctx...) }
func Info(msg string, ctx ...any)  { rootLogger.Info(msg, ctx...) }
func Warn(msg string, ctx ...any)  { rootLogger.Warn(msg, ctx...) }
func Error(msg string, ctx ...any) { rootLogger.Error(msg, ctx...) }

// StderrHandler is a terminal handler writing to stderr at full verbosity,
// for tools that skip explicit log configuration.
func StderrHandler(useColor bool) slog.Handler {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelDebug)
	return NewTerminalHandler(os.Stderr, lvl, useColor)
}
