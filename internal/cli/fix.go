package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rubiks "github.com/riteshydv05/rubics-cube-sub000"
)

var fixOutput string

var fixCmd = &cobra.Command{
	Use:   "fix [state.json]",
	Short: "Auto-repair recolorable violations in a cube state",
	Long: `Repeatedly diagnose and repair a cube state until it is clean or a
repair fails. Color-count, edge and corner violations are repaired by
repainting single facelets; parity violations cannot be repaired by
recoloring and stop the run.

The repaired state is printed as JSON, or written to --output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)
	fixCmd.Flags().StringVarP(&fixOutput, "output", "o", "", "Write the repaired state to a file")
}

func runFix(cmd *cobra.Command, args []string) error {
	cube, err := loadState(args)
	if err != nil {
		return err
	}

	fixed, applied, clean := rubiks.AutoFixAll(cube)

	for _, desc := range applied {
		fmt.Println(okStyle.Render("fixed: ") + desc)
	}
	if len(applied) == 0 {
		fmt.Println(dimStyle.Render("nothing to repair"))
	}

	if !clean {
		report := rubiks.Diagnose(fixed)
		fmt.Println(warningStyle.Render("state could not be fully repaired:"))
		printReport(report)
	}

	data, err := json.MarshalIndent(fixed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode repaired state: %w", err)
	}
	data = append(data, '\n')

	if fixOutput != "" {
		if err := os.WriteFile(fixOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write repaired state: %w", err)
		}
		fmt.Printf("repaired state written to %s\n", fixOutput)
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}
