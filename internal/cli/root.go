// Package cli implements the command-line interface for cubectl.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	rubiks "github.com/riteshydv05/rubics-cube-sub000"
	"github.com/riteshydv05/rubics-cube-sub000/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	verbose    bool
	configPath string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubectl",
	Short: "Cube state checker and solver",
	Long: `cubectl - validate and solve 3x3 Rubik's cube states.

Feed it a facelet state (JSON keyed by face, nine color names per face)
and it will tell you whether the state corresponds to a physically
realizable, solvable cube, repair recolorable mistakes, and compute a
move sequence to the solved state.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubectl/cubectl.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Solver config file (YAML)")
}

// openDB opens the history database from the flag or default path.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}

// loadState reads a cube state from the file named by args[0], or from
// stdin when no argument is given.
func loadState(args []string) (*rubiks.Cube, error) {
	var data []byte
	var err error
	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read state file: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read state from stdin: %w", err)
		}
	}

	cube := &rubiks.Cube{}
	if err := json.Unmarshal(data, cube); err != nil {
		return nil, err
	}
	return cube, nil
}
