package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnamet/lng-1/internal/ingress"
	"github.com/johnamet/lng-1/internal/wizard"
)

func newTestModel() Model {
	return NewModel(ingress.NewClient("http://localhost:3000", 0), 10*time.Millisecond)
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	mm, cmd := m.Update(msg)
	return mm.(Model), cmd
}

func TestNewModelBuildsStepOneInputs(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, 1, m.ctrl.Step())
	assert.Len(t, m.inputs, 3)
	assert.Empty(t, m.roster)
	assert.Equal(t, 0, m.focusables(), "nothing focusable before the first reveal")
}

func TestRevealTickAdvancesAndReschedules(t *testing.T) {
	m := newTestModel()
	tok := m.ctrl.RevealToken()

	var cmd tea.Cmd
	for i := 1; i <= 3; i++ {
		m, cmd = update(m, revealTickMsg{token: tok})
		assert.Equal(t, i, m.ctrl.VisibleFields())
	}
	// All three fields are out; the last tick does not reschedule.
	assert.Nil(t, cmd)

	m, _ = update(m, revealTickMsg{token: tok})
	assert.Equal(t, 3, m.ctrl.VisibleFields())
}

func TestStaleRevealTickIgnoredAfterTransition(t *testing.T) {
	m := newTestModel()
	stale := m.ctrl.RevealToken()
	m, _ = update(m, revealTickMsg{token: stale})

	m.ctrl.EditField(wizard.Patch{Subject: wizard.Set("Math"), ClassLevel: wizard.Set("B8"), Topic: wizard.Set("Angles")})
	require.NotNil(t, (&m).advance())

	require.Equal(t, 2, m.ctrl.Step())
	m, _ = update(m, revealTickMsg{token: stale})
	assert.Equal(t, 0, m.ctrl.VisibleFields(), "tick from the previous step must not reveal anything")
}

func TestTypingSyncsFieldToController(t *testing.T) {
	m := newTestModel()
	m, _ = update(m, revealTickMsg{token: m.ctrl.RevealToken()})
	require.Equal(t, 1, m.focusables())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Math")})

	assert.Equal(t, "Math", m.ctrl.Values().Subject)
}

func TestEnterOnInvalidStepShowsErrors(t *testing.T) {
	m := newTestModel()
	m.width, m.height = 80, 24
	m, _ = update(m, revealTickMsg{token: m.ctrl.RevealToken()})

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, m.ctrl.Step())
	assert.Contains(t, m.View(), "Subject is required")
}

func TestAdvanceRebuildsInputsForNextStep(t *testing.T) {
	m := newTestModel()
	m.ctrl.EditField(wizard.Patch{Subject: wizard.Set("Math"), ClassLevel: wizard.Set("B8"), Topic: wizard.Set("Angles")})

	cmd := (&m).advance()

	require.NotNil(t, cmd, "transition schedules a fresh reveal run")
	assert.Equal(t, 2, m.ctrl.Step())
	assert.Len(t, m.inputs, 4)
	assert.Equal(t, 0, m.focus)
}

func TestRosterAddRemoveKeys(t *testing.T) {
	m := newTestModel()
	m.ctrl.EditField(wizard.Patch{Subject: wizard.Set("s"), ClassLevel: wizard.Set("c"), Topic: wizard.Set("t")})
	require.NotNil(t, (&m).advance())
	m.ctrl.EditField(wizard.Patch{WeekEnding: wizard.Set("w"), Duration: wizard.Set("d"), Days: wizard.Set("d"), Week: wizard.Set("1")})
	require.NotNil(t, (&m).advance())
	require.Equal(t, 3, m.ctrl.Step())
	require.Len(t, m.roster, 1)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyCtrlA})
	assert.Len(t, m.roster, 2)
	assert.Len(t, m.ctrl.Values().Classes, 2)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Len(t, m.roster, 1)

	// The floor of one entry holds.
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Len(t, m.roster, 1)
}

func TestSubmitDoneBuildsNotificationView(t *testing.T) {
	m := newTestModel()
	m.width, m.height = 80, 24
	m.ctrl = controllerOnFinalStep(t)

	_, ok := m.ctrl.BeginSubmit()
	require.True(t, ok)
	m, _ = update(m, submitDoneMsg{res: &ingress.Result{FileURL: "http://files.example/notes.pdf"}})

	assert.False(t, m.ctrl.Loading())
	view := m.View()
	assert.Contains(t, view, "Success")
	assert.Contains(t, view, "http://files.example/notes.pdf")
	assert.Contains(t, view, "enter: dismiss")
}

func TestEnterDismissesNotification(t *testing.T) {
	m := newTestModel()
	m.ctrl = controllerOnFinalStep(t)
	m.ctrl.BeginSubmit()
	m, _ = update(m, submitDoneMsg{err: &ingress.APIError{StatusCode: 500, Message: "boom"}})
	require.NotNil(t, m.ctrl.Notification())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.ctrl.Notification())
}

func TestViewShowsStepHeader(t *testing.T) {
	m := newTestModel()
	m.width, m.height = 80, 24

	assert.Contains(t, m.View(), "Step 1/5: Lesson")
}

func TestSummaryMarkdown(t *testing.T) {
	v := wizard.FieldValues{
		Subject:     "Math",
		ClassLevel:  "Basic Eight",
		Topic:       "Angles",
		Classes:     []wizard.ClassEntry{{Name: "Class A", Size: "25"}},
		PhoneNumber: "+233123456789",
	}

	md := summaryMarkdown(v)

	assert.Contains(t, md, "**Subject:** Math")
	assert.Contains(t, md, "Class A: 25")
	assert.NotContains(t, md, "Email", "empty email is left out of the summary")
}

func controllerOnFinalStep(t *testing.T) *wizard.Controller {
	t.Helper()
	c := wizard.NewController()
	c.EditField(wizard.Patch{Subject: wizard.Set("Math"), ClassLevel: wizard.Set("B8"), Topic: wizard.Set("Angles")})
	require.True(t, c.Next())
	c.EditField(wizard.Patch{WeekEnding: wizard.Set("16th May, 2025"), Duration: wizard.Set("4 periods"), Days: wizard.Set("Mon-Fri"), Week: wizard.Set("3")})
	require.True(t, c.Next())
	c.EditField(wizard.Patch{Class: &wizard.ClassPatch{Index: 0, Name: wizard.Set("Class A"), Size: wizard.Set("25")}})
	require.True(t, c.Next())
	c.EditField(wizard.Patch{PhoneNumber: wizard.Set("+233123456789")})
	require.True(t, c.Next())
	require.Equal(t, wizard.TotalSteps, c.Step())
	return c
}
