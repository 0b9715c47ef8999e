// Package tui is the interactive terminal front-end of the simulator.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/kurobon/gitflowsim/internal/git"
)

// maxTranscript is how many command/feedback pairs stay on screen.
const maxTranscript = 8

type entry struct {
	command  string
	feedback string
}

type Model struct {
	ctx        context.Context
	session    *git.Session
	textInput  textinput.Model
	transcript []entry
	quitting   bool
}

// NewModel builds a model driving the given session.
func NewModel(ctx context.Context, session *git.Session) Model {
	ti := textinput.New()
	ti.Placeholder = `git commit "message"`
	ti.Prompt = "$ "
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	return Model{
		ctx:       ctx,
		session:   session,
		textInput: ti,
	}
}

func (m *Model) record(command, feedback string) {
	m.transcript = append(m.transcript, entry{command: command, feedback: feedback})
	if len(m.transcript) > maxTranscript {
		m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
	}
}
