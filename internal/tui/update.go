package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kurobon/gitflowsim/internal/git"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+t":
			m.record(git.TeammateInput, git.SimulateTeammatePush(m.ctx, m.session))
			return m, nil

		case "enter":
			line := strings.TrimSpace(m.textInput.Value())
			m.textInput.SetValue("")
			switch line {
			case "":
				return m, nil
			case "exit", "quit":
				m.quitting = true
				return m, tea.Quit
			case "clear":
				// The transcript goes along with the histories.
				out := git.Execute(m.ctx, m.session, line)
				m.transcript = nil
				m.record(line, out)
				return m, nil
			}
			m.record(line, git.Execute(m.ctx, m.session, line))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}
