package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/riteshydv05/rubics-cube-sub000/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent solves",
	Long:  `Display recent solve attempts recorded by the solve command.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		fmt.Println(dimStyle.Render("No solves recorded yet. Run 'cubectl solve' first."))
		return nil
	}

	fmt.Printf("%-10s %-20s %6s %-15s %-8s %s\n", "ID", "WHEN", "MOVES", "STRATEGY", "SOLVED", "TIME")
	for _, s := range solves {
		status := okStyle.Render("yes")
		if !s.Solved {
			status = warningStyle.Render("no")
		}
		fmt.Printf("%-10s %-20s %6d %-15s %-8s %s\n",
			s.SolveID[:8],
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.MoveCount,
			s.Strategy,
			status,
			(time.Duration(s.DurationMs) * time.Millisecond).String(),
		)
	}
	return nil
}
