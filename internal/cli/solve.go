package cli

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	rubiks "github.com/riteshydv05/rubics-cube-sub000"
	"github.com/riteshydv05/rubics-cube-sub000/internal/storage"
	"github.com/riteshydv05/rubics-cube-sub000/solver"
)

var (
	solveTimeout  time.Duration
	solveSeed     int64
	solveScramble string
	solveNoStore  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [state.json]",
	Short: "Compute a move sequence to the solved state",
	Long: `Validate a cube state and compute a move sequence that solves it.

Strategies are tried in order: bounded iterative-deepening search,
heuristic hill-climbing with canned algorithms, randomized restarts.
If no strategy finishes within its budget the best attempt is shown and
the command exits non-zero.

With --scramble the state is built by applying the given scramble to a
solved cube instead of reading a file. Results are stored in the history
database unless --no-store is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Overall solve budget (overrides config)")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Seed for the randomized strategies (0 = time-based)")
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Solve the state reached by this scramble instead of reading a file")
	solveCmd.Flags().BoolVar(&solveNoStore, "no-store", false, "Do not record the solve in the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cube, err := solveInput(args)
	if err != nil {
		return err
	}

	report := rubiks.Diagnose(cube)
	if !report.IsValid {
		printReport(report)
		return fmt.Errorf("state failed validation; fix it before solving")
	}
	if cube.IsSolved() {
		fmt.Println(okStyle.Render("Cube is already solved."))
		return nil
	}

	cfg, err := loadSolverConfig()
	if err != nil {
		return err
	}
	opts := cfg.options()
	if solveTimeout > 0 {
		opts = append(opts, solver.WithTimeout(solveTimeout))
	}
	if solveSeed != 0 {
		opts = append(opts, solver.WithRand(rand.New(rand.NewSource(solveSeed))))
	}

	started := time.Now()
	sol := solver.New(opts...).Solve(cmd.Context(), cube)
	elapsed := time.Since(started)

	if sol.Solved {
		fmt.Println(titleStyle.Render("Solution") + fmt.Sprintf(" (%d moves, %s strategy, %s)", sol.Length, sol.Strategy, elapsed.Round(time.Millisecond)))
		fmt.Println(sol.Notation)
	} else {
		fmt.Println(warningStyle.Render("No complete solution within budget; best attempt:"))
		fmt.Println(sol.Notation)
	}

	if verbose {
		for i, m := range sol.Moves {
			fmt.Printf("  %2d. %-3s %s\n", i+1, m.Notation(), dimStyle.Render(m.Description()))
		}
	}

	if !solveNoStore {
		if err := storeSolve(cube, sol, elapsed); err != nil {
			fmt.Println(dimStyle.Render("history not recorded: " + err.Error()))
		}
	}

	if !sol.Solved {
		return fmt.Errorf("solver exhausted its budget without a complete solution")
	}
	return nil
}

// solveInput builds the cube either from --scramble or from the state file.
func solveInput(args []string) (*rubiks.Cube, error) {
	if solveScramble == "" {
		return loadState(args)
	}
	moves, err := rubiks.ParseMoves(solveScramble)
	if err != nil {
		return nil, err
	}
	return rubiks.New().ApplySequence(moves), nil
}

func storeSolve(cube *rubiks.Cube, sol solver.Solution, elapsed time.Duration) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateJSON, err := json.Marshal(cube)
	if err != nil {
		return err
	}

	repo := storage.NewSolveRepository(db)
	id, err := repo.Create(string(stateJSON), solveScramble, sol.Notation, sol.Strategy, sol.Length, sol.Solved, elapsed)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Println(dimStyle.Render("recorded solve " + id))
	}
	return nil
}
