package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeturn/internal/geometry"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the rotation tables against a 3D model",
	Long: `Trace every sticker through all twelve quarter turns and compare where
the rotation tables put it with an independent 3D coordinate model.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	mismatches, err := geometry.Check()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(mismatches) == 0 {
		fmt.Fprintln(out, "OK: all 12 rotation rules agree with the 3D model")
		return nil
	}

	for _, m := range mismatches {
		fmt.Fprintln(out, m.String())
		logger.Warn("rotation mismatch", "move", m.Move.String(), "sticker", m.Sticker.String())
	}
	return fmt.Errorf("%d sticker movements disagree with the 3D model", len(mismatches))
}
