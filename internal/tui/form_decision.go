package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	approveFieldDate = iota
	approveFieldNotes
	approveFieldKey
)

// decisionForm holds the inputs of the approve or reject form.
type decisionForm struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newApproveForm(defaultDate string) decisionForm {
	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 12
	date.SetValue(defaultDate)
	date.Focus()

	notes := textinput.New()
	notes.Placeholder = "optional"
	notes.CharLimit = 500
	notes.Width = 50

	key := textinput.New()
	key.Placeholder = "leave empty to generate"
	key.CharLimit = 64
	key.Width = 30

	return decisionForm{
		labels: []string{"Expires", "Notes", "Activation key"},
		inputs: []textinput.Model{date, notes, key},
	}
}

func newRejectForm() decisionForm {
	reason := textinput.New()
	reason.Placeholder = "reason shown to the requester"
	reason.CharLimit = 500
	reason.Width = 50
	reason.Focus()

	return decisionForm{
		labels: []string{"Reason"},
		inputs: []textinput.Model{reason},
	}
}

func (f decisionForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *decisionForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *decisionForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *decisionForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f decisionForm) View() string {
	width := 0
	for _, l := range f.labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(f.labels[i])
		b.WriteString(strings.Repeat(" ", width-len(f.labels[i])))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
