package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	assert.Equal(t, -1, cfg.Indent)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestFormatCommandWritesFormattedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.json5")
	out := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(in, []byte(`{a: 1, b: [2, 3]}`), 0o644))

	cfg := NewConfig()
	cfg.Output = out
	cfg.Indent = -1

	root := NewRootCommand(cfg)
	root.SetArgs([]string{"format", in})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1,\"b\":[2,3]}\n", string(data))
}

func TestFormatCommandRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "bad.json5")
	require.NoError(t, os.WriteFile(in, []byte(`{a:`), 0o644))

	cfg := NewConfig()
	root := NewRootCommand(cfg)
	root.SetArgs([]string{"format", in})
	assert.Error(t, root.Execute())
}

func TestValidateCommandAcceptsValidInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "good.json5")
	require.NoError(t, os.WriteFile(in, []byte(`{a: 1}`), 0o644))

	cfg := NewConfig()
	root := NewRootCommand(cfg)
	root.SetArgs([]string{"validate", in})
	assert.NoError(t, root.Execute())
}

func TestValidateCommandRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "bad.json5")
	require.NoError(t, os.WriteFile(in, []byte(`[1, 2`), 0o644))

	cfg := NewConfig()
	root := NewRootCommand(cfg)
	root.SetArgs([]string{"validate", in})
	assert.Error(t, root.Execute())
}

func TestRequiresExactlyOneArg(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	root := NewRootCommand(cfg)
	root.SetArgs([]string{"format"})
	assert.Error(t, root.Execute())
}
