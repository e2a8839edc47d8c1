package prompt

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/kiria-f/noita-saves/internal/ui/styles"
)

// TextInputResult holds the result of a text input prompt.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	textInput textinput.Model
	prompt    string
	validate  func(string) error
	err       error
	done      bool
	cancelled bool
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.textInput.Value()); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	m.err = nil
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	view := fmt.Sprintf("%s\n%s", m.prompt, m.textInput.View())
	if m.err != nil {
		view += "\n" + styles.ErrorStyle.Render(m.err.Error())
	}
	return tea.NewView(view)
}

func newTextInputModel(prompt, placeholder string, validate func(string) error) textInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = styles.Arrow + " "
	ti.Focus()
	ti.CharLimit = 156
	ti.SetWidth(50)

	return textInputModel{
		textInput: ti,
		prompt:    prompt,
		validate:  validate,
	}
}

// TextInput shows a text input prompt and returns the user's input.
// Enter is refused while validate (if non-nil) rejects the value; the error
// is shown below the input.
func TextInput(prompt, placeholder string, validate func(string) error) (TextInputResult, error) {
	model := newTextInputModel(prompt, placeholder, validate)
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return TextInputResult{}, err
	}
	m := finalModel.(textInputModel)
	return TextInputResult{
		Value:     m.textInput.Value(),
		Cancelled: m.cancelled,
	}, nil
}
