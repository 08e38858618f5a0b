package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/xformstack/pkg/affine"
	"github.com/matzehuels/xformstack/pkg/pipeline"
	"github.com/matzehuels/xformstack/pkg/xform"
)

var (
	exploreHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	exploreStatusStyle = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	nudgeOffset = 0.5
	nudgeAngle  = math.Pi / 12
	nudgeScale  = 1.1
)

// exploreCommand creates the explore command: an interactive session that
// pushes, pops, edits and bookmarks entries on a scene's stack.
func (c *CLI) exploreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore <file>",
		Short: "Interactively edit a scene's transformation stack",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: completeDocuments,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := pipeline.NewRunner(nil, nil, loggerFromContext(cmd.Context()))
			res, err := runner.Evaluate(cmd.Context(), pipeline.Options{Path: args[0]})
			if err != nil {
				return err
			}
			defer res.Scene.Release()

			stack := res.Scene.Stack()
			if stack == nil {
				stack = affine.NewStack()
				stack.SetLabel(res.Scene.Label())
				stack.Push(res.Scene.Label(), res.Scene.Root)
				defer stack.Release()
			}

			_, err = tea.NewProgram(newExploreModel(stack), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	return cmd
}

// exploreModel is the bubbletea model for the explore command.
type exploreModel struct {
	stack     *xform.Stack[affine.Matrix]
	bookmarks []*xform.Bookmark[affine.Matrix]
	cursor    int // chain position
	pushed    int
	status    string
}

func newExploreModel(s *xform.Stack[affine.Matrix]) *exploreModel {
	return &exploreModel{stack: s, cursor: s.Len() - 1}
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.stack.Len()-1 {
			m.cursor++
		}
	case "t":
		m.push("translate", affine.NewTranslate(nudgeOffset, 0, 0))
	case "r":
		m.push("rotate", affine.NewRotate(affine.AxisZ, nudgeAngle))
	case "s":
		m.push("scale", affine.NewScale(nudgeScale, nudgeScale, nudgeScale))
	case "p", "backspace":
		if _, err := m.stack.Pop(); err != nil {
			m.status = "stack is empty"
		}
	case "b":
		m.bookmarks = append(m.bookmarks, m.stack.Bookmark())
		m.status = fmt.Sprintf("bookmark %d at depth %d", len(m.bookmarks), m.stack.Len())
	case "u":
		if len(m.bookmarks) == 0 {
			m.status = "no bookmark to recall"
			break
		}
		last := m.bookmarks[len(m.bookmarks)-1]
		m.bookmarks = m.bookmarks[:len(m.bookmarks)-1]
		popped := last.Recall()
		last.Release()
		m.status = fmt.Sprintf("recalled bookmark, popped %d", popped)
	case "+", "=":
		m.nudge(1)
	case "-":
		m.nudge(-1)
	}

	if m.cursor >= m.stack.Len() {
		m.cursor = m.stack.Len() - 1
	}
	return m, nil
}

func (m *exploreModel) push(kind string, t affine.Transformation) {
	m.pushed++
	m.stack.Push(fmt.Sprintf("%s-%d", kind, m.pushed), t)
	m.cursor = m.stack.Len() - 1
}

// nudge edits the parameters of the selected entry in place.
func (m *exploreModel) nudge(dir float64) {
	if m.cursor < 0 {
		return
	}
	switch t := m.stack.At(m.stack.Len() - 1 - m.cursor).(type) {
	case *affine.Translate:
		x, y, z := t.Offset()
		t.SetOffset(x+dir*nudgeOffset, y, z)
	case *affine.Rotate:
		t.SetAngle(t.Angle() + dir*nudgeAngle)
	case *affine.Scale:
		f := nudgeScale
		if dir < 0 {
			f = 1 / nudgeScale
		}
		x, y, z := t.Factors()
		t.SetFactors(x*f, y*f, z*f)
	default:
		m.status = "selected entry has no parameters to edit"
	}
}

func (m *exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore " + m.stack.Label()))
	b.WriteString("\n")
	b.WriteString(exploreHelpStyle.Render("↑/↓ select  t/r/s push  p pop  +/- edit  b bookmark  u recall  q quit"))
	b.WriteString("\n\n")

	if m.stack.Len() == 0 {
		b.WriteString(StyleDim.Render("  (empty stack)"))
		b.WriteString("\n")
	} else {
		b.WriteString(renderEntries(m.stack.Snapshot(), m.cursor))
		b.WriteString("\n")
	}

	b.WriteString(StyleHighlight.Render("Composed"))
	b.WriteString("\n")
	b.WriteString(renderMatrix(m.stack.Operand(), 3))
	b.WriteString("\n")

	b.WriteString(StyleDim.Render(fmt.Sprintf("  depth %d · %d bookmark(s)", m.stack.Len(), len(m.bookmarks))))
	if m.status != "" {
		b.WriteString("  " + exploreStatusStyle.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}
