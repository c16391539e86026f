package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"":        zapcore.InfoLevel,
		" INFO ":  zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"nope":    zapcore.InfoLevel,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	require.Equal(t, FormatJSON, ParseFormat("JSON"))
	require.Equal(t, FormatText, ParseFormat("text"))
	require.Equal(t, FormatText, ParseFormat(""))
}

func TestNew_RespectsLevel(t *testing.T) {
	l, err := New(Options{Level: zapcore.WarnLevel, Format: FormatJSON, App: "test"})
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Core().Enabled(zapcore.ErrorLevel))
}
