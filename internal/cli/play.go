package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeturn"
	"github.com/SeamusWaldron/cubeturn/internal/logging"
	"github.com/SeamusWaldron/cubeturn/internal/render"
	"github.com/SeamusWaldron/cubeturn/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the cube interactively",
	Long: `Open an interactive view of the unfolded cube.

Keys:
  f r u b l d   - turn that face clockwise
  F R U B L D   - turn that face anticlockwise
  z             - undo the last turn
  x             - reset to a new cube
  ?             - toggle full help
  q/Esc         - quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	model := tui.New(cubeturn.NewTracker(), render.New(cmd.OutOrStdout()), logging.ForComponent("tui"))
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Moves: %s\n", cubeturn.FormatMoves(model.Tracker().Moves()))
	return nil
}
