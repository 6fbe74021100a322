package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/johnamet/lng-1/internal/ingress"
	"github.com/johnamet/lng-1/internal/wizard"
)

// fieldSpec describes one progressively revealed input of a step.
type fieldSpec struct {
	key         string // matches validation error keys
	label       string
	placeholder string
	limit       int // textinput char limit, 0 = none
}

var stepTitles = [wizard.TotalSteps + 1]string{
	"", "Lesson", "Schedule", "Class roster", "Contact", "Review & submit",
}

// stepFields lists the inputs per step. Step 3 is absent: the class
// roster editor reveals as one unit and is handled separately.
var stepFields = map[int][]fieldSpec{
	1: {
		{key: "subject", label: "Subject", placeholder: "Mathematics"},
		{key: "class_level", label: "Class level", placeholder: "Basic Eight"},
		{key: "topic", label: "Topic", placeholder: "Angles"},
	},
	2: {
		{key: "week_ending", label: "Week ending", placeholder: "16th May, 2025"},
		{key: "duration", label: "Duration", placeholder: "4 periods per class"},
		{key: "days", label: "Days", placeholder: "Monday - Friday"},
		{key: "week", label: "Week", placeholder: "3"},
	},
	4: {
		{key: "phone_number", label: "Phone number", placeholder: "+233123456789", limit: wizard.PhoneLength},
		{key: "email", label: "Email (optional)", placeholder: "name@example.com"},
	},
	5: {
		{key: "custom_instructions", label: "Custom instructions (optional)", placeholder: "Focus on practical examples", limit: wizard.MaxCustomInstructions},
	},
}

// rosterRow holds the paired inputs of one class roster entry.
type rosterRow struct {
	name textinput.Model
	size textinput.Model
}

// Model is the bubbletea model wrapping the wizard controller. All wizard
// state lives in the controller; the model only keeps widgets and layout.
type Model struct {
	ctrl           *wizard.Controller
	client         *ingress.Client
	revealInterval time.Duration

	inputs []textinput.Model
	roster []rosterRow
	focus  int

	spinner  spinner.Model
	renderer *glamour.TermRenderer
	width    int
	height   int
	ready    bool
}

// NewModel creates the wizard TUI model.
func NewModel(client *ingress.Client, revealInterval time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		ctrl:           wizard.NewController(),
		client:         client,
		revealInterval: revealInterval,
		spinner:        s,
	}
	m.rebuildInputs()
	return m
}

// rebuildInputs recreates the widgets for the current step, prefilled from
// the controller's field values. Called on every step transition and after
// roster add/remove.
func (m *Model) rebuildInputs() {
	m.inputs = nil
	m.roster = nil
	m.focus = 0
	v := m.ctrl.Values()

	if m.ctrl.Step() == 3 {
		for _, entry := range v.Classes {
			m.roster = append(m.roster, newRosterRow(entry))
		}
		return
	}

	for _, spec := range stepFields[m.ctrl.Step()] {
		ti := textinput.New()
		ti.Placeholder = spec.placeholder
		if spec.limit > 0 {
			ti.CharLimit = spec.limit
		}
		ti.SetValue(fieldValue(v, spec.key))
		m.inputs = append(m.inputs, ti)
	}
}

func newRosterRow(entry wizard.ClassEntry) rosterRow {
	name := textinput.New()
	name.Placeholder = "Class A"
	name.SetValue(entry.Name)
	size := textinput.New()
	size.Placeholder = "25"
	size.SetValue(entry.Size)
	return rosterRow{name: name, size: size}
}

// fieldValue reads one field from the value store by its wire key.
func fieldValue(v wizard.FieldValues, key string) string {
	switch key {
	case "subject":
		return v.Subject
	case "class_level":
		return v.ClassLevel
	case "topic":
		return v.Topic
	case "week_ending":
		return v.WeekEnding
	case "duration":
		return v.Duration
	case "days":
		return v.Days
	case "week":
		return v.Week
	case "phone_number":
		return v.PhoneNumber
	case "email":
		return v.Email
	case "custom_instructions":
		return v.CustomInstructions
	default:
		return ""
	}
}

// fieldPatch builds the merge patch for one field edit.
func fieldPatch(key, value string) wizard.Patch {
	switch key {
	case "subject":
		return wizard.Patch{Subject: wizard.Set(value)}
	case "class_level":
		return wizard.Patch{ClassLevel: wizard.Set(value)}
	case "topic":
		return wizard.Patch{Topic: wizard.Set(value)}
	case "week_ending":
		return wizard.Patch{WeekEnding: wizard.Set(value)}
	case "duration":
		return wizard.Patch{Duration: wizard.Set(value)}
	case "days":
		return wizard.Patch{Days: wizard.Set(value)}
	case "week":
		return wizard.Patch{Week: wizard.Set(value)}
	case "phone_number":
		return wizard.Patch{PhoneNumber: wizard.Set(value)}
	case "email":
		return wizard.Patch{Email: wizard.Set(value)}
	case "custom_instructions":
		return wizard.Patch{CustomInstructions: wizard.Set(value)}
	default:
		return wizard.Patch{}
	}
}

// focusables returns how many widgets can take focus right now. Hidden
// (not yet revealed) fields are not focusable.
func (m Model) focusables() int {
	if m.ctrl.Step() == 3 {
		if m.ctrl.VisibleFields() == 0 {
			return 0
		}
		return len(m.roster) * 2
	}
	n := m.ctrl.VisibleFields()
	if n > len(m.inputs) {
		n = len(m.inputs)
	}
	return n
}

// setFocus moves focus to widget i, blurring everything else.
func (m *Model) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	for j := range m.roster {
		m.roster[j].name.Blur()
		m.roster[j].size.Blur()
	}
	if m.ctrl.Step() == 3 && i >= 0 && i < len(m.roster)*2 {
		row := i / 2
		if i%2 == 0 {
			m.roster[row].name.Focus()
		} else {
			m.roster[row].size.Focus()
		}
	}
}
