// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package logging builds the hclog loggers used by the command-line wrapper
// and its tests.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// EnvLogLevel is the env var to set with the log level.
const EnvLogLevel = "DECLFLAG_LOG_LEVEL"

// DefaultLevel is used when EnvLogLevel is unset or not a level name.
const DefaultLevel = hclog.Warn

// New returns a logger named name that writes to w at the level taken from
// the environment.
func New(name string, w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: w,
		Level:  LevelFromEnv(),
	})
}

// LevelFromEnv reads EnvLogLevel. Level names are matched case-insensitively.
func LevelFromEnv() hclog.Level {
	return ParseLevel(os.Getenv(EnvLogLevel))
}

// ParseLevel maps a level name to an hclog level, falling back to
// DefaultLevel.
func ParseLevel(s string) hclog.Level {
	if l := hclog.LevelFromString(strings.TrimSpace(s)); l != hclog.NoLevel {
		return l
	}
	return DefaultLevel
}

type testWriter struct {
	log func(args ...interface{})
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// NewTestLogger returns a trace level logger suitable for use with the go
// testing.T log function.
func NewTestLogger(log func(args ...interface{})) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Output: &testWriter{log: log},
		Level:  hclog.Trace,
	})
}
