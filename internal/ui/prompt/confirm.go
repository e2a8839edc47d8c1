package prompt

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/kiria-f/noita-saves/internal/ui/styles"
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.confirmed = true
	case "n", "N", "enter":
	case "ctrl+c", "esc":
		m.cancelled = true
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

// View keeps the question and the answer on screen once answered.
func (m confirmModel) View() tea.View {
	line := m.prompt + " " + styles.MutedStyle.Render("[y/N]") + " "
	if !m.done {
		return tea.NewView(line)
	}
	switch {
	case m.cancelled:
		line += styles.MutedStyle.Render("cancelled")
	case m.confirmed:
		line += styles.AccentStyle.Render("yes")
	default:
		line += "no"
	}
	return tea.NewView(line + "\n")
}

// Confirm asks a yes/no question on stderr. Enter answers no.
func Confirm(prompt string) (ConfirmResult, error) {
	p := tea.NewProgram(confirmModel{prompt: prompt}, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	m := final.(confirmModel)
	return ConfirmResult{Confirmed: m.confirmed, Cancelled: m.cancelled}, nil
}
