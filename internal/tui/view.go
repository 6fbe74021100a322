package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/johnamet/lng-1/internal/wizard"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("LESSON NOTES"))
	b.WriteString("\n")
	b.WriteString(m.renderStepHeader())
	b.WriteString("\n\n")

	if m.ctrl.Step() == 3 {
		b.WriteString(m.renderRoster())
	} else {
		b.WriteString(m.renderFields())
	}

	if m.ctrl.Step() == wizard.TotalSteps {
		b.WriteString("\n")
		b.WriteString(m.renderSummary())
	}

	if m.ctrl.Loading() {
		b.WriteString("\n")
		b.WriteString(loadingStyle.Render(m.spinner.View() + " Submitting..."))
		b.WriteString("\n")
	}

	if n := m.ctrl.Notification(); n != nil {
		b.WriteString("\n")
		b.WriteString(renderNotification(n))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderStepHeader() string {
	step := m.ctrl.Step()

	var dots []string
	for i := 1; i <= wizard.TotalSteps; i++ {
		if i <= step {
			dots = append(dots, dotDoneStyle.Render("*"))
		} else {
			dots = append(dots, dotTodoStyle.Render("."))
		}
	}

	header := stepStyle.Render(fmt.Sprintf("Step %d/%d: %s", step, wizard.TotalSteps, stepTitles[step]))
	return header + "  " + strings.Join(dots, " ")
}

func (m Model) renderFields() string {
	var b strings.Builder
	errs := m.ctrl.Errors()
	specs := stepFields[m.ctrl.Step()]

	for i := 0; i < m.ctrl.VisibleFields() && i < len(specs); i++ {
		spec := specs[i]
		b.WriteString(labelStyle.Render(spec.label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := errs[spec.key]; ok {
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
		if spec.key == "custom_instructions" {
			left := wizard.MaxCustomInstructions - len([]rune(m.ctrl.Values().CustomInstructions))
			b.WriteString(labelStyle.Render(fmt.Sprintf("%d characters left", left)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderRoster() string {
	if m.ctrl.VisibleFields() == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Classes"))
	b.WriteString("\n")
	for _, row := range m.roster {
		b.WriteString(row.name.View())
		b.WriteString("  ")
		b.WriteString(row.size.View())
		b.WriteString("\n")
	}
	if msg, ok := m.ctrl.Errors()["classes"]; ok {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// renderSummary shows everything collected so far as markdown, so the
// user can review before submitting.
func (m Model) renderSummary() string {
	md := summaryMarkdown(m.ctrl.Values())
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(md); err == nil {
			return strings.TrimSpace(rendered) + "\n"
		}
	}
	return md + "\n"
}

func summaryMarkdown(v wizard.FieldValues) string {
	var classes []string
	for _, entry := range v.Classes {
		if entry.Name == "" && entry.Size == "" {
			continue
		}
		classes = append(classes, fmt.Sprintf("%s: %s", entry.Name, entry.Size))
	}
	sort.Strings(classes)

	var b strings.Builder
	b.WriteString("## Review\n\n")
	fmt.Fprintf(&b, "- **Subject:** %s\n", v.Subject)
	fmt.Fprintf(&b, "- **Class level:** %s\n", v.ClassLevel)
	fmt.Fprintf(&b, "- **Topic:** %s\n", v.Topic)
	fmt.Fprintf(&b, "- **Week ending:** %s\n", v.WeekEnding)
	fmt.Fprintf(&b, "- **Duration:** %s\n", v.Duration)
	fmt.Fprintf(&b, "- **Days:** %s\n", v.Days)
	fmt.Fprintf(&b, "- **Week:** %s\n", v.Week)
	fmt.Fprintf(&b, "- **Classes:** %s\n", strings.Join(classes, ", "))
	fmt.Fprintf(&b, "- **Phone:** %s\n", v.PhoneNumber)
	if v.Email != "" {
		fmt.Fprintf(&b, "- **Email:** %s\n", v.Email)
	}
	return b.String()
}

func renderNotification(n *wizard.Notification) string {
	var b strings.Builder
	if n.Kind == wizard.KindSuccess {
		b.WriteString(dotDoneStyle.Render("Success"))
	} else {
		b.WriteString(errorStyle.Render("Error"))
	}
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(n.Message))
	if n.FileURL != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("File: "))
		b.WriteString(valueStyle.Render(n.FileURL))
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("enter: dismiss"))

	if n.Kind == wizard.KindSuccess {
		return successBoxStyle.Render(b.String())
	}
	return errorBoxStyle.Render(b.String())
}

func (m Model) renderHelp() string {
	if m.ctrl.Loading() {
		return helpStyle.Render("submitting, please wait")
	}

	parts := []string{"enter: next", "tab: fields"}
	if m.ctrl.Step() > 1 {
		parts = append(parts, "ctrl+p: back")
	}
	if m.ctrl.Step() == 3 {
		parts = append(parts, "ctrl+a: add class", "ctrl+x: remove class")
	}
	if m.ctrl.Step() == wizard.TotalSteps {
		parts[0] = "enter: submit"
	}
	parts = append(parts, "esc: quit")

	return helpStyle.Render(strings.Join(parts, " | "))
}
