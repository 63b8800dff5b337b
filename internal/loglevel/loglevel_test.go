package loglevel

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		desc  string
		input string
		want  slog.Level
	}{
		{desc: "Error", input: "error", want: slog.LevelError},
		{desc: "Warn", input: "warn", want: slog.LevelWarn},
		{desc: "Warning", input: "warning", want: slog.LevelWarn},
		{desc: "Info", input: "INFO", want: slog.LevelInfo},
		{desc: "Debug", input: "Debug", want: slog.LevelDebug},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			got, err := GetLevel(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetLevelUnknown(t *testing.T) {
	t.Parallel()

	_, err := GetLevel("verbose")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLevel))
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	got, err := GetFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, got)

	got, err = GetFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, got)
}

func TestGetFormatUnknown(t *testing.T) {
	t.Parallel()

	_, err := GetFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestCreateHandlerFromStringsJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := CreateHandlerFromStrings(&buf, "info", "json")
	require.NoError(t, err)

	slog.New(h).Info("hello")
	assert.True(t, strings.Contains(buf.String(), `"msg":"hello"`))
}

func TestCreateHandlerFromStringsPropagatesErrors(t *testing.T) {
	t.Parallel()

	_, err := CreateHandlerFromStrings(&bytes.Buffer{}, "bogus", "text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLevel))

	_, err = CreateHandlerFromStrings(&bytes.Buffer{}, "info", "bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
