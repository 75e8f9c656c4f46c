package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	rubiks "github.com/riteshydv05/rubics-cube-sub000"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	criticalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// faceletStyles maps each color to a colored block.
var faceletStyles = map[rubiks.Color]lipgloss.Style{
	rubiks.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	rubiks.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
	rubiks.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("0")),
	rubiks.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("15")),
	rubiks.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("15")),
	rubiks.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	rubiks.Unset:  lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("15")),
}

func faceletBlock(c rubiks.Color) string {
	return faceletStyles[c].Render(" " + c.String() + " ")
}

// renderNet draws the cube as a colored unfolded net.
func renderNet(c *rubiks.Cube) string {
	var sb strings.Builder
	indent := strings.Repeat(" ", 9)

	faceRow := func(f rubiks.Face, row int) string {
		var parts []string
		for col := 0; col < 3; col++ {
			parts = append(parts, faceletBlock(c.Facelets[f][row*3+col]))
		}
		return strings.Join(parts, "")
	}

	for row := 0; row < 3; row++ {
		sb.WriteString(indent + faceRow(rubiks.FaceU, row) + "\n")
	}
	for row := 0; row < 3; row++ {
		for _, f := range []rubiks.Face{rubiks.FaceL, rubiks.FaceF, rubiks.FaceR, rubiks.FaceB} {
			sb.WriteString(faceRow(f, row))
		}
		sb.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		sb.WriteString(indent + faceRow(rubiks.FaceD, row) + "\n")
	}

	return sb.String()
}

func severityStyle(s rubiks.Severity) lipgloss.Style {
	switch s {
	case rubiks.SeverityCritical:
		return criticalStyle
	case rubiks.SeverityWarning:
		return warningStyle
	default:
		return infoStyle
	}
}

// printReport prints all violations with severity coloring, then the
// progress line.
func printReport(report *rubiks.Report) {
	for _, v := range report.Violations {
		fmt.Printf("%s %s: %s\n",
			severityStyle(v.Severity).Render(fmt.Sprintf("[%s]", v.Severity)),
			v.Category, v.Message)
		if len(v.Positions) > 0 {
			positions := make([]string, len(v.Positions))
			for i, p := range v.Positions {
				positions[i] = p.String()
			}
			fmt.Printf("  %s\n", dimStyle.Render("at "+strings.Join(positions, ", ")))
		}
		if verbose {
			for _, step := range v.FixSteps {
				fmt.Printf("  %s\n", dimStyle.Render("- "+step))
			}
		}
	}

	if report.IsValid {
		fmt.Println(okStyle.Render("State is valid and solvable."))
	} else {
		fmt.Printf("Progress: %d%% (%d violations)\n", report.Progress, len(report.Violations))
	}
}
