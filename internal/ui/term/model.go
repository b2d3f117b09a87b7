// Package term is the terminal front-end: a one-line status indicator that
// takes key presses as activation and activity signals.
package term

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/session"
)

// Actions are the handlers key presses are routed to. Each runs in a tea.Cmd,
// off the program's event loop.
type Actions struct {
	Activation func()
	Activity   func()
	Start      func()
	Stop       func()
}

var (
	workStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	restStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	noticeStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

const helpText = "space: pause/resume · double space: restart · s: start · x: stop · q: quit"

type model struct {
	actions  Actions
	status   string
	emphasis session.Emphasis
	notice   string
	noticeID int
	confirm  *confirmMsg
}

func initialModel(actions Actions) model {
	return model{actions: actions, emphasis: session.EmphasisWork}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = msg.Text
		m.emphasis = msg.Emphasis

	case noticeMsg:
		m.noticeID++
		m.notice = msg.Text
		id := m.noticeID
		return m, tea.Tick(msg.Duration, func(time.Time) tea.Msg {
			return noticeExpiredMsg{ID: id}
		})

	case noticeExpiredMsg:
		if msg.ID == m.noticeID {
			m.notice = ""
		}

	case confirmMsg:
		if m.confirm != nil {
			m.confirm.Reply <- false
		}
		request := msg
		m.confirm = &request

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.answer(false)
		return m, tea.Quit
	}

	if m.confirm != nil {
		switch key {
		case "y", "Y", "enter":
			m.answer(true)
		case "n", "N", "esc":
			m.answer(false)
		}
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case " ", "space", "enter":
		return m, run(m.actions.Activation)
	case "s":
		return m, run(m.actions.Start)
	case "x":
		return m, run(m.actions.Stop)
	default:
		return m, run(m.actions.Activity)
	}
}

func (m *model) answer(value bool) {
	if m.confirm == nil {
		return
	}
	m.confirm.Reply <- value
	m.confirm = nil
}

func (m model) View() string {
	var b strings.Builder

	style := workStyle
	if m.emphasis == session.EmphasisRest {
		style = restStyle
	}
	b.WriteString(style.Render(m.status))
	b.WriteString("\n")

	switch {
	case m.confirm != nil:
		b.WriteString(promptStyle.Render(m.confirm.Prompt + " (y/n)"))
	case m.notice != "":
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText))
	b.WriteString("\n")
	return b.String()
}

func run(action func()) tea.Cmd {
	if action == nil {
		return nil
	}
	return func() tea.Msg {
		action()
		return nil
	}
}
