// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, custom, Logger(New(context.Background(), custom)))
	assert.Same(t, DefaultLogger, Logger(New(context.Background(), nil)))
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
	}{
		{name: "context without logger", ctx: context.Background()},
		{name: "context with nil logger value", ctx: context.WithValue(context.Background(), loggerKey{}, nil)},
		{name: "context with wrong type value", ctx: context.WithValue(context.Background(), loggerKey{}, "not a logger")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, DefaultLogger, Logger(tt.ctx))
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := New(context.Background(), logger)

	tests := []struct {
		name     string
		logFunc  func(context.Context, string, ...any)
		message  string
		expected string
	}{
		{name: "debug", logFunc: Debug, message: "resolving version", expected: "level=DEBUG"},
		{name: "info", logFunc: Info, message: "building package", expected: "level=INFO"},
		{name: "warn", logFunc: Warn, message: "nuspec ignored", expected: "level=WARN"},
		{name: "error", logFunc: Error, message: "build failed", expected: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, tt.message, "module", "Custom.Module")

			assert.Contains(t, buf.String(), tt.expected)
			assert.Contains(t, buf.String(), tt.message)
			assert.Contains(t, buf.String(), "module=Custom.Module")
		})
	}
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{value: "DEBUG", want: slog.LevelDebug},
		{value: "debug", want: slog.LevelDebug},
		{value: "INFO", want: slog.LevelInfo},
		{value: "WARN", want: slog.LevelWarn},
		{value: " ERROR ", want: slog.LevelError},
		{value: "INVALID", want: slog.LevelWarn},
		{value: "", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, levelFromString(tt.value))
		})
	}
}

func TestEnableDebug(t *testing.T) {
	original := LevelVar.Level()
	defer LevelVar.Set(original)

	LevelVar.Set(slog.LevelError)
	EnableDebug()
	assert.Equal(t, slog.LevelDebug, LevelVar.Level())
	assert.True(t, DefaultLogger.Enabled(context.Background(), slog.LevelDebug))

	LevelVar.Set(slog.LevelDebug - 4)
	EnableDebug()
	assert.Equal(t, slog.LevelDebug-4, LevelVar.Level(), "a lower level is kept")
}
