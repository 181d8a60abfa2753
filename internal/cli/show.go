package cli

import (
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeturn"
)

var showCmd = &cobra.Command{
	Use:   "show [face]",
	Short: "Print one face or the whole cube",
	Long: `Print a face (Front, Right, Up, Back, Left, Down or F R U B L D) of a new
cube, or the whole unfolded cube when no face is given. Use --moves to turn
the cube first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var showMoves string

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showMoves, "moves", "m", "", "Moves to apply before printing")
}

func runShow(cmd *cobra.Command, args []string) error {
	moves, err := cubeturn.ParseMoves(showMoves)
	if err != nil {
		return err
	}
	c, err := applySequence(moves)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		printCube(out, c)
		return nil
	}

	face, err := cubeturn.ParseFace(args[0])
	if err != nil {
		return err
	}
	return printFace(out, c, face)
}
