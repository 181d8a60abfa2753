package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeturn"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate [moves...]",
	Short: "Apply a sequence of quarter turns and print the cube",
	Long: `Apply quarter turns to a new cube and print the result.

Moves use standard notation: F R U B L D turn a face clockwise, a trailing
' turns it anticlockwise. With no arguments the configured sequence is used.

Usage:
  cubeturn rotate F "R'" U
  cubeturn rotate "F R' U B' L D'"
  cubeturn rotate --style plain --delimiter ", " F`,
	RunE: runRotate,
}

func init() {
	rootCmd.AddCommand(rotateCmd)
}

func runRotate(cmd *cobra.Command, args []string) error {
	var (
		moves []cubeturn.Move
		err   error
	)
	if len(args) > 0 {
		moves, err = cubeturn.ParseMoves(strings.Join(args, " "))
	} else {
		moves, err = cfg.Moves()
	}
	if err != nil {
		return err
	}

	c, err := applySequence(moves)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Moves: %s\n\n", cubeturn.FormatMoves(moves))
	printCube(out, c)
	return nil
}
