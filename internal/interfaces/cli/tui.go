package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/liftlab/swole/internal/program"
)

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui <program.yaml>",
		Short: "Browse a program interactively",
		Long:  "Browse the sessions of a program and inspect their sets.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := program.LoadFile(args[0])
			if err != nil {
				return err
			}
			return runTUI(p, TrainingMax, RoundTo)
		},
	}
}

func init() {
	rootCmd.AddCommand(newTUICommand())
}

func runTUI(p *program.Program, tm, rounding float64) error {
	model := NewBrowser(p, tm, rounding)
	prog := tea.NewProgram(model)
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running session browser: %w", err)
	}
	return nil
}

// Browser is the interactive session list: cursor on the left pane,
// the selected session's sets on the right.
type Browser struct {
	Program  *program.Program
	Sessions []program.FlatSession
	Cursor   int
	TM       float64
	Rounding float64
	Width    int
	Height   int
}

func NewBrowser(p *program.Program, tm, rounding float64) Browser {
	return Browser{
		Program:  p,
		Sessions: p.Flatten(),
		TM:       tm,
		Rounding: rounding,
	}
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.Width = msg.Width
		b.Height = msg.Height
		return b, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return b, tea.Quit
		case "up", "k":
			if b.Cursor > 0 {
				b.Cursor--
			}
		case "down", "j":
			if b.Cursor < len(b.Sessions)-1 {
				b.Cursor++
			}
		case "g":
			b.Cursor = 0
		case "G":
			b.Cursor = len(b.Sessions) - 1
		}
	}
	return b, nil
}

func (b Browser) View() string {
	if len(b.Sessions) == 0 {
		return HelpStyle.Render("no sessions") + "\n"
	}

	var list strings.Builder
	for i, flat := range b.Sessions {
		line := "  " + flat.QualifiedName()
		if i == b.Cursor {
			line = SelectedStyle.Render("> " + flat.QualifiedName())
		}
		list.WriteString(line)
		list.WriteString("\n")
	}

	selected := b.Sessions[b.Cursor]
	etm := selected.Meso.EffectiveTM(b.TM)

	var detail strings.Builder
	title := strings.ToUpper(selected.QualifiedName())
	if b.TM != 0 {
		title += fmt.Sprintf(" [TM: %g]", etm)
	}
	detail.WriteString(PaneTitleStyle.Render(title))
	detail.WriteString("\n")
	for _, ws := range selected.Session.Sets {
		detail.WriteString(ws.Stringify(etm, b.Rounding))
		detail.WriteString("\n")
	}

	var view strings.Builder
	view.WriteString(PaneTitleStyle.Render(b.Program.Name))
	view.WriteString("\n\n")
	view.WriteString(list.String())
	view.WriteString("\n")
	view.WriteString(detail.String())
	view.WriteString("\n")
	view.WriteString(HelpStyle.Render("j/k move · g/G first/last · q quit"))
	view.WriteString("\n")
	return view.String()
}
