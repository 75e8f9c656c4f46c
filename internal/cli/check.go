package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	rubiks "github.com/riteshydv05/rubics-cube-sub000"
)

var checkCmd = &cobra.Command{
	Use:   "check [state.json]",
	Short: "Validate a cube state",
	Long: `Validate a cube state against the geometry of a physical cube.

Runs the color-count, edge, corner and uniqueness checks, and the parity
(solvability) checks on complete, structurally clean states. Reads the
state from the given file, or from stdin when no file is given.

Exits non-zero when the state is invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cube, err := loadState(args)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Cube state"))
	fmt.Print(renderNet(cube))
	fmt.Println()

	report := rubiks.Diagnose(cube)
	printReport(report)

	if !report.IsValid {
		return fmt.Errorf("state is invalid: %d violations", len(report.Violations))
	}
	return nil
}
