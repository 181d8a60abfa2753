// Package cli implements the command-line interface for cubeturn.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeturn"
	"github.com/SeamusWaldron/cubeturn/internal/config"
	"github.com/SeamusWaldron/cubeturn/internal/logging"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	verbose    bool

	// cfg is resolved by PersistentPreRunE before any subcommand runs.
	cfg    config.Config
	logger *log.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubeturn",
	Short: "Turn the faces of a 3x3x3 cube",
	Long: `cubeturn - A small tool for turning the faces of a 3x3x3 cube.

Apply quarter turns in standard notation (F R U B L D, with ' for
anticlockwise), print faces or the unfolded cube, and play with the
cube interactively in the terminal.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cmd, configPath)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Log.Level = "debug"
		}
		if err := logging.Configure(loaded.Log.Level, loaded.Log.Format); err != nil {
			return err
		}
		cfg = loaded
		logging.SetOutput(cmd.ErrOrStderr())
		logger = logging.ForComponent("cli")
		logger.Debug("config loaded", "style", cfg.Display.Style, "sequence", cfg.Sequence)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: search <user config dir>/cubeturn and .)")
	rootCmd.PersistentFlags().String("style", config.StyleColor, "Output style: plain, letters or color")
	rootCmd.PersistentFlags().String("delimiter", cubeturn.DefaultDelimiter, "Cell delimiter for plain output")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text, json, logfmt")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
