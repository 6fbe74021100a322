package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/johnamet/lng-1/internal/debug"
	"github.com/johnamet/lng-1/internal/ingress"
	"github.com/johnamet/lng-1/internal/wizard"
)

// revealTickMsg is one tick of the field-reveal timer. The token was
// captured when the timer was started; ticks from a timer that outlived
// its step are dropped by the controller.
type revealTickMsg struct {
	token wizard.RevealToken
}

// submitDoneMsg carries the outcome of the outbound generation call.
type submitDoneMsg struct {
	res *ingress.Result
	err error
}

type rendererReadyMsg struct {
	renderer *glamour.TermRenderer
}

func createRendererCmd(width int) tea.Cmd {
	return func() tea.Msg {
		wrap := max(width-4, 40)
		renderer, _ := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wrap),
		)
		return rendererReadyMsg{renderer: renderer}
	}
}

// revealCmd schedules the next field-reveal tick, tagged with the current
// reveal token.
func (m Model) revealCmd() tea.Cmd {
	tok := m.ctrl.RevealToken()
	return tea.Tick(m.revealInterval, func(time.Time) tea.Msg {
		return revealTickMsg{token: tok}
	})
}

// submitCmd runs the blocking generation call off the update loop.
func (m Model) submitCmd(sub ingress.Submission) tea.Cmd {
	return func() tea.Msg {
		res, err := m.client.GenerateNotes(context.Background(), sub)
		return submitDoneMsg{res: res, err: err}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.revealCmd(), tea.WindowSize())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.ready = true
			cmds = append(cmds, createRendererCmd(msg.Width))
		}

	case rendererReadyMsg:
		m.renderer = msg.renderer

	case revealTickMsg:
		if m.ctrl.AdvanceReveal(msg.token) {
			if m.ctrl.VisibleFields() == 1 {
				m.setFocus(0)
			}
			if m.ctrl.VisibleFields() < wizard.StepFieldCount(m.ctrl.Step()) {
				cmds = append(cmds, m.revealCmd())
			}
		}

	case submitDoneMsg:
		debug.Logf("tui: submission done err=%v", msg.err)
		m.ctrl.FinishSubmit(msg.res, msg.err)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		cmds = append(cmds, m.updateFocusedInput(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.ctrl.Notification() != nil {
			m.ctrl.DismissNotification()
			return m, nil
		}
		return m, tea.Quit

	case "enter":
		if m.ctrl.Notification() != nil {
			m.ctrl.DismissNotification()
			return m, nil
		}
		if m.ctrl.Loading() {
			return m, nil
		}
		if m.focus < m.focusables()-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m, m.advance()

	case "tab", "down":
		if n := m.focusables(); n > 0 {
			m.setFocus((m.focus + 1) % n)
		}
		return m, nil

	case "shift+tab", "up":
		if n := m.focusables(); n > 0 {
			m.setFocus((m.focus - 1 + n) % n)
		}
		return m, nil

	case "ctrl+p":
		if m.ctrl.Loading() {
			return m, nil
		}
		return m, m.goPrevious()

	case "ctrl+a":
		if m.ctrl.Step() == 3 {
			m.ctrl.AddClass()
			m.rebuildInputs()
			m.setFocus((len(m.roster) - 1) * 2)
		}
		return m, nil

	case "ctrl+x":
		if m.ctrl.Step() == 3 && m.ctrl.RemoveClass(m.focus/2) {
			m.rebuildInputs()
			m.setFocus(0)
		}
		return m, nil
	}

	return m, m.updateFocusedInput(msg)
}

// advance moves the wizard forward: Next on steps 1-4, submission on the
// final step.
func (m *Model) advance() tea.Cmd {
	if m.ctrl.Step() == wizard.TotalSteps {
		sub, ok := m.ctrl.BeginSubmit()
		if !ok {
			return nil
		}
		return m.submitCmd(sub)
	}
	if !m.ctrl.Next() {
		return nil
	}
	m.rebuildInputs()
	return m.revealCmd()
}

func (m *Model) goPrevious() tea.Cmd {
	before := m.ctrl.Step()
	m.ctrl.Previous()
	if m.ctrl.Step() == before {
		return nil
	}
	m.rebuildInputs()
	return m.revealCmd()
}

// updateFocusedInput forwards a message to the focused widget and merges
// its new value into the controller.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	n := m.focusables()
	if n == 0 || m.focus >= n {
		return nil
	}

	var cmd tea.Cmd
	if m.ctrl.Step() == 3 {
		row := m.focus / 2
		if m.focus%2 == 0 {
			m.roster[row].name, cmd = m.roster[row].name.Update(msg)
			m.ctrl.EditField(wizard.Patch{Class: &wizard.ClassPatch{Index: row, Name: wizard.Set(m.roster[row].name.Value())}})
		} else {
			m.roster[row].size, cmd = m.roster[row].size.Update(msg)
			m.ctrl.EditField(wizard.Patch{Class: &wizard.ClassPatch{Index: row, Size: wizard.Set(m.roster[row].size.Value())}})
		}
		return cmd
	}

	spec := stepFields[m.ctrl.Step()][m.focus]
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.ctrl.EditField(fieldPatch(spec.key, m.inputs[m.focus].Value()))
	return cmd
}
