package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARNING", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestParseTimeFormat(t *testing.T) {
	assert.Equal(t, "", parseTimeFormat("unix"))
	assert.Equal(t, "2006-01-02", parseTimeFormat("2006-01-02"))
	assert.NotEmpty(t, parseTimeFormat("nonsense"))
}

func TestNewLoggerFromConfigWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cyberui.log")
	logger := NewLoggerFromConfig(&Config{
		Level:  "info",
		Format: "json",
		Output: path,
		Fields: map[string]any{"service": "cyberui"},
	})
	logger.Info().Str("component_id", "card").Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "cyberui", entry["service"])
	assert.Equal(t, "card", entry["component_id"])
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	ctx = WithComponent(ctx, "glitch-text")
	ctx = WithOperation(ctx, "show")
	FromContext(ctx).Info().Msg("ctx")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "glitch-text", entry["component_id"])
	assert.Equal(t, "show", entry["operation"])
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, Default(), FromContext(context.Background()))
	//nolint:staticcheck // nil context is part of the contract
	assert.Same(t, Default(), FromContext(nil))
}

func TestConfigureReplacesDefault(t *testing.T) {
	prev := *Default()
	t.Cleanup(func() {
		SetDefault(prev)
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})

	Configure(&Config{Level: "warn", Format: "json", Output: "discard"})
	assert.Equal(t, zerolog.WarnLevel, Default().GetLevel())
	assert.Equal(t, zerolog.WarnLevel, FromContext(context.Background()).GetLevel())
}

func TestWithLoggerNilContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	//nolint:staticcheck // nil context is tolerated
	ctx := WithField(WithLogger(nil, &logger), "request_id", "r1")
	FromContext(ctx).Error().Msg("x")
	assert.Contains(t, buf.String(), `"request_id":"r1"`)
}
