package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubeturn"
)

// isolate points the user config directory and working directory at empty
// temporary directories so no real cubeturn.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	chdir(t, dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, StyleColor, c.Display.Style)
	assert.Equal(t, cubeturn.DefaultDelimiter, c.Display.Delimiter)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)

	moves, err := c.Moves()
	require.NoError(t, err)
	assert.Equal(t, cubeturn.ChallengeSequence, moves)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	content := "display:\n  style: plain\n  delimiter: \",\"\nsequence: \"R U R' U'\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, StylePlain, c.Display.Style)
	assert.Equal(t, ",", c.Display.Delimiter)
	moves, err := c.Moves()
	require.NoError(t, err)
	assert.Equal(t, cubeturn.SexyMove, moves)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cubeturn.yaml"), []byte("display:\n  style: letters\n"), 0o644))

	c, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, StyleLetters, c.Display.Style)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := Load(nil, filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cubeturn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  style: plain\n"), 0o644))
	t.Setenv("CUBETURN_DISPLAY_STYLE", "letters")

	c, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, StyleLetters, c.Display.Style)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CUBETURN_DISPLAY_STYLE", "letters")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("style", "", "")
	cmd.Flags().String("log-level", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--style", "plain"}))

	c, err := Load(cmd, "")
	require.NoError(t, err)
	assert.Equal(t, StylePlain, c.Display.Style)
	// Unchanged flags do not clobber defaults.
	assert.Equal(t, "warn", c.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Display: Display{Style: StylePlain}, Sequence: "F R'"}, false},
		{"empty sequence", Config{Display: Display{Style: StyleColor}}, false},
		{"unknown style", Config{Display: Display{Style: "neon"}}, true},
		{"half turn", Config{Display: Display{Style: StylePlain}, Sequence: "F2"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// chdir changes the working directory to dir and restores it when the test
// finishes (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
