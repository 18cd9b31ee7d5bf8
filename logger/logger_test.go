/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevel_String 测试日志级别的字符串表示
func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{OFF, "OFF"},
		{Level(999), "UNKNOWN"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected Level
		wantErr  bool
	}{
		{"debug", DEBUG, false},
		{"INFO", INFO, false},
		{"", INFO, false},
		{"warning", WARN, false},
		{" error ", ERROR, false},
		{"off", OFF, false},
		{"verbose", INFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

// TestDefaultLogger_LevelFiltering 测试级别过滤
func TestDefaultLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WARN, &buf)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	output := buf.String()
	assert.NotContains(t, output, "debug 1")
	assert.NotContains(t, output, "info 2")
	assert.Contains(t, output, "[WARN] warn 3")
	assert.Contains(t, output, "[ERROR] error 4")

	buf.Reset()
	l.SetLevel(OFF)
	l.Error("hidden")
	assert.Empty(t, buf.String())
}

func TestDiscardLogger(t *testing.T) {
	l := NewDiscardLogger()
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
		l.SetLevel(DEBUG)
	})
}

func TestGlobalLoggerRestore(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewLogger(DEBUG, &buf))
	Info("render %s", "abc")
	Debug("bucket %d", 3)

	output := buf.String()
	assert.Contains(t, output, "render abc")
	assert.Contains(t, output, "bucket 3")
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogLogger(handler, INFO, slog.String("component", "axis"))

	l.Debug("dropped")
	l.Warn("formula failed for %v", 12)
	output := buf.String()
	assert.NotContains(t, output, "dropped")
	assert.Contains(t, output, "formula failed for 12")
	assert.Contains(t, output, "component=axis")

	buf.Reset()
	tagged := With(l, slog.String("render", "r-1"))
	tagged.Error("boom")
	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "render=r-1")
	assert.Contains(t, line, "component=axis")
	assert.Contains(t, line, "level=ERROR")

	// non slog loggers are returned unchanged
	plain := NewDiscardLogger()
	assert.Same(t, plain, With(plain, slog.String("k", "v")))
}

func TestDevLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewDevLogger(&buf, DEBUG)
	l.Info("resolved %d datasets", 2)
	assert.Contains(t, buf.String(), "resolved 2 datasets")
}
