// Package config loads cubeturn settings with Viper: built-in defaults,
// then an optional cubeturn.yaml, then CUBETURN_* environment variables,
// then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/cubeturn"
)

const (
	configFileName = "cubeturn"
	configFileType = "yaml"
	envPrefix      = "cubeturn"

	// Config keys.
	KeyStyle     = "display.style"
	KeyDelimiter = "display.delimiter"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeySequence  = "sequence"
)

// Display styles.
const (
	StylePlain   = "plain"
	StyleLetters = "letters"
	StyleColor   = "color"
)

// Config is the resolved configuration.
type Config struct {
	Display  Display `mapstructure:"display"`
	Log      Log     `mapstructure:"log"`
	Sequence string  `mapstructure:"sequence"`
}

// Display controls how cubes are printed.
type Display struct {
	Style     string `mapstructure:"style"`
	Delimiter string `mapstructure:"delimiter"`
}

// Log controls the process logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		KeyStyle:     StyleColor,
		KeyDelimiter: cubeturn.DefaultDelimiter,
		KeyLogLevel:  "warn",
		KeyLogFormat: "text",
		KeySequence:  cubeturn.FormatMoves(cubeturn.ChallengeSequence),
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"style":      KeyStyle,
	"delimiter":  KeyDelimiter,
	"log-level":  KeyLogLevel,
	"log-format": KeyLogFormat,
}

// Load resolves the configuration. If path is empty the user config
// directory and the working directory are searched for cubeturn.yaml and a
// missing file is not an error; an explicit path must exist. Flags of cmd
// that were set on the command line override everything else.
func Load(cmd *cobra.Command, path string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return c, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// DefaultDir returns the per-user directory searched for cubeturn.yaml.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "cubeturn"), nil
}

// Validate checks values that would otherwise fail later.
func (c Config) Validate() error {
	switch c.Display.Style {
	case StylePlain, StyleLetters, StyleColor:
	default:
		return fmt.Errorf("display.style %q: must be %s, %s or %s", c.Display.Style, StylePlain, StyleLetters, StyleColor)
	}
	if _, err := c.Moves(); err != nil {
		return fmt.Errorf("sequence: %w", err)
	}
	return nil
}

// Moves parses the configured default sequence.
func (c Config) Moves() ([]cubeturn.Move, error) {
	return cubeturn.ParseMoves(c.Sequence)
}
