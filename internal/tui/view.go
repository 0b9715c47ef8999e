package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("GitFlowSim"))
	b.WriteString("  " + infoStyle.Render("enter: run | ctrl+t: teammate push | esc: quit"))
	b.WriteString("\n\n")

	local := panelStyle.Render(renderHistory("Local Repository", st.Local, true))
	remote := remotePanelStyle.Render(renderHistory("origin/main", st.Remote, false))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, local, " ", remote))
	b.WriteString("\n\n")

	for _, e := range m.transcript {
		b.WriteString(infoStyle.Render("$ "+e.command) + "\n")
		b.WriteString(FeedbackStyle(e.feedback).Render(e.feedback) + "\n")
	}
	if len(m.transcript) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(branchStyle.Render("("+st.Branch+")") + " " + m.textInput.View())
	return appStyle.Render(b.String())
}

// FeedbackStyle colors a feedback line: red for failures, green otherwise.
func FeedbackStyle(feedback string) lipgloss.Style {
	if git.IsErrorFeedback(feedback) {
		return errorStyle
	}
	return successStyle
}

func renderHistory(title string, h state.History, local bool) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(fmt.Sprintf("%s (%d commits)", title, h.CommitCount())))
	b.WriteString("\n")

	if len(h) == 0 {
		if local {
			b.WriteString(infoStyle.Render("No commits yet"))
		} else {
			b.WriteString(infoStyle.Render("Nothing pushed yet"))
		}
		return b.String()
	}

	for i := len(h) - 1; i >= 0; i-- {
		b.WriteString(renderOperation(h[i]) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderOperation(op state.Operation) string {
	switch op.Kind {
	case state.KindCommit:
		line := fmt.Sprintf("● %s %s", shortHash(op.Hash), op.Arg)
		switch {
		case strings.Contains(op.Input, "revert"):
			return revertStyle.Render(line)
		case strings.Contains(op.Input, "Teammate"):
			return teammateStyle.Render(line)
		}
		return line
	case state.KindMerge:
		return fmt.Sprintf("◆ merge %s", op.Arg)
	case state.KindBranch:
		return infoStyle.Render("⎇ branch " + op.Arg)
	case state.KindCheckout:
		return infoStyle.Render("→ checkout " + op.Arg)
	default:
		return infoStyle.Render(op.Input)
	}
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}
