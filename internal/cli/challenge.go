package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeturn"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Turn every face once and print each face",
	Long: `Run the fixed challenge sequence F R' U B' L D' on a new cube and print
every face in turn.`,
	Args: cobra.NoArgs,
	RunE: runChallenge,
}

func init() {
	rootCmd.AddCommand(challengeCmd)
}

func runChallenge(cmd *cobra.Command, args []string) error {
	c, err := applySequence(cubeturn.ChallengeSequence)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Moves: %s\n", cubeturn.FormatMoves(cubeturn.ChallengeSequence))
	for _, face := range cubeturn.AllFaces() {
		fmt.Fprintln(out)
		if err := printFace(out, c, face); err != nil {
			return err
		}
	}
	return nil
}
