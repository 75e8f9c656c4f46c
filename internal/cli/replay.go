package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	rubiks "github.com/riteshydv05/rubics-cube-sub000"
	"github.com/riteshydv05/rubics-cube-sub000/solver"
)

var (
	replaySolution string
	replaySpeed    float64
)

var replayCmd = &cobra.Command{
	Use:   "replay [state.json]",
	Short: "Step through a solution move by move",
	Long: `Replay a solution interactively, rendering the cube after each move.

If --solution is not given the state is solved first and the resulting
sequence replayed.

Keys:
  space       - play/pause
  right/l     - step forward
  left/h      - step back
  r           - back to the start
  q/Esc       - quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVar(&replaySolution, "solution", "", "Move sequence to replay (default: solve the state first)")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 1.0, "Playback speed multiplier")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cube, err := loadState(args)
	if err != nil {
		return err
	}

	var moves []rubiks.Move
	if replaySolution != "" {
		moves, err = rubiks.ParseMoves(replaySolution)
		if err != nil {
			return err
		}
	} else {
		report := rubiks.Diagnose(cube)
		if !report.IsValid {
			printReport(report)
			return fmt.Errorf("state failed validation; nothing to replay")
		}
		cfg, err := loadSolverConfig()
		if err != nil {
			return err
		}
		sol := solver.New(cfg.options()...).Solve(cmd.Context(), cube)
		if !sol.Solved {
			return fmt.Errorf("no complete solution found; nothing to replay")
		}
		moves = sol.Moves
	}

	model := newReplayModel(cube, moves, replaySpeed)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

// Messages
type replayTickMsg time.Time

// replayModel steps through the precomputed states of a solution.
type replayModel struct {
	states []*rubiks.Cube // states[i] is the cube after i moves
	moves  []rubiks.Move
	step   int
	speed  float64

	playing  bool
	quitting bool
}

func newReplayModel(start *rubiks.Cube, moves []rubiks.Move, speed float64) *replayModel {
	states := make([]*rubiks.Cube, len(moves)+1)
	states[0] = start
	for i, m := range moves {
		states[i+1] = states[i].Apply(m)
	}
	if speed <= 0 {
		speed = 1.0
	}
	return &replayModel{states: states, moves: moves, speed: speed}
}

func (m *replayModel) Init() tea.Cmd {
	return nil
}

func (m *replayModel) tickCmd() tea.Cmd {
	interval := time.Duration(float64(800*time.Millisecond) / m.speed)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return replayTickMsg(t)
	})
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
			if m.playing {
				return m, m.tickCmd()
			}
		case "right", "l":
			m.playing = false
			if m.step < len(m.moves) {
				m.step++
			}
		case "left", "h":
			m.playing = false
			if m.step > 0 {
				m.step--
			}
		case "r":
			m.playing = false
			m.step = 0
		}

	case replayTickMsg:
		if !m.playing {
			return m, nil
		}
		if m.step < len(m.moves) {
			m.step++
		}
		if m.step >= len(m.moves) {
			m.playing = false
			return m, nil
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Solution replay") + "\n\n")
	sb.WriteString(renderNet(m.states[m.step]))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Move %d/%d", m.step, len(m.moves)))
	if m.step > 0 {
		sb.WriteString("  last: " + okStyle.Render(m.moves[m.step-1].Notation()))
	}
	if m.step < len(m.moves) {
		sb.WriteString("  next: " + infoStyle.Render(m.moves[m.step].Notation()))
	}
	sb.WriteString("\n\n")

	// Move strip with the cursor on the next move.
	var strip []string
	for i, mv := range m.moves {
		n := mv.Notation()
		if i == m.step {
			n = okStyle.Render("[" + n + "]")
		}
		strip = append(strip, n)
	}
	sb.WriteString(strings.Join(strip, " ") + "\n\n")

	if m.states[m.step].IsSolved() {
		sb.WriteString(okStyle.Render("Solved!") + "\n\n")
	}
	sb.WriteString(dimStyle.Render("space play/pause · left/right step · r reset · q quit") + "\n")
	return sb.String()
}
