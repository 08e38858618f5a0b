package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/xformstack/pkg/affine"
	xio "github.com/matzehuels/xformstack/pkg/io"
	"github.com/matzehuels/xformstack/pkg/xform"
)

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success, cached
	colorYellow = lipgloss.Color("220") // warnings
	colorBlue   = lipgloss.Color("75")  // commands
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // muted
)

var (
	// StyleTitle renders headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	// StyleHighlight renders emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleValue renders data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
	// StyleWarning renders warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleLabel       = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder      = lipgloss.NewStyle().Foreground(colorDim)
)

// status is a one-character marker printed before a message.
type status struct {
	icon  string
	style lipgloss.Style
}

var (
	statusSuccess = status{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	statusWarning = status{"!", lipgloss.NewStyle().Foreground(colorYellow)}
	statusInfo    = status{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

func (s status) print(msg string) {
	fmt.Println(s.style.Render(s.icon) + " " + msg)
}

func printSuccess(format string, args ...any) {
	statusSuccess.print(fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	statusWarning.print(StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	statusInfo.print(fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints "N transforms · formats · cached|fresh".
func printStats(entryCount int, formats []string, cached bool) {
	var parts []string
	if entryCount > 0 {
		parts = append(parts, fmt.Sprintf("%d transforms", entryCount))
	}
	if len(formats) > 0 {
		parts = append(parts, strings.Join(formats, ", "))
	}
	state := statusInfo.style.Render("fresh")
	if cached {
		state = statusSuccess.style.Render("cached")
	}
	sep := StyleDim.Render(" · ")
	line := StyleDim.Render(strings.Join(parts, " · "))
	if len(parts) > 0 {
		line += sep
	}
	fmt.Println("  " + line + state)
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}

// renderMatrix draws m as a bordered 4×4 grid.
func renderMatrix(m affine.Matrix, prec int) string {
	rows := make([][]string, 4)
	for i, line := range m.Rows(prec) {
		rows[i] = strings.Fields(line)
	}
	cell := lipgloss.NewStyle().Foreground(colorWhite).Align(lipgloss.Right).Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Rows(rows...).
		StyleFunc(func(int, int) lipgloss.Style { return cell }).
		Render()
}

// renderEntries draws one row per chain entry with its parameters and the
// translation part of its composed matrix. Row highlight is emphasized.
func renderEntries(entries []xform.EntryInfo[affine.Matrix], highlight int) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		c := e.Composed
		rows[i] = []string{
			fmt.Sprint(i),
			e.Name,
			xio.Describe(e.Transformation),
			fmt.Sprintf("(%.3g, %.3g, %.3g)", c[3][0], c[3][1], c[3][2]),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("#", "Name", "Transform", "Origin").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case row == highlight:
				return StyleHighlight.Bold(true)
			case col == 0:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}
