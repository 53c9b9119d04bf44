package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paynex/paynex/internal/wizard"
)

// onboardingView is the cursor and inline editor over the wizard's fields.
type onboardingView struct {
	focus   int
	editing bool
	input   textinput.Model
}

func newOnboardingView() onboardingView {
	in := textinput.New()
	in.Prompt = "› "
	in.CharLimit = 120
	return onboardingView{input: in}
}

func (v *onboardingView) reset() {
	v.focus = 0
	v.editing = false
	v.input.Blur()
	v.input.SetValue("")
}

func (a *App) stepFields() []wizard.Field {
	step, ok := a.wizard.Step(a.wizard.Current())
	if !ok {
		return nil
	}
	return step.Fields
}

func (a *App) focusedField() (wizard.Field, bool) {
	fields := a.stepFields()
	if a.onboarding.focus < 0 || a.onboarding.focus >= len(fields) {
		return wizard.Field{}, false
	}
	return fields[a.onboarding.focus], true
}

func (a *App) updateOnboarding(m tea.KeyMsg) tea.Cmd {
	v := &a.onboarding
	if v.editing {
		switch m.Type {
		case tea.KeyEsc:
			v.editing = false
			v.input.Blur()
			return nil
		case tea.KeyEnter:
			a.commitField()
			return nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(m)
		return cmd
	}

	f, hasField := a.focusedField()
	switch {
	case key.Matches(m, keys.Up):
		if v.focus > 0 {
			v.focus--
		}
	case key.Matches(m, keys.Down):
		if v.focus < len(a.stepFields())-1 {
			v.focus++
		}
	case key.Matches(m, keys.Left):
		if hasField && f.Kind == wizard.Select {
			a.wizard.CycleOption(f.ID, -1)
		}
	case key.Matches(m, keys.Right):
		if hasField && f.Kind == wizard.Select {
			a.wizard.CycleOption(f.ID, 1)
		}
	case key.Matches(m, keys.Enter, keys.Toggle):
		if hasField {
			return a.activateField(f)
		}
	case key.Matches(m, keys.Next):
		a.nextStep()
	case key.Matches(m, keys.Previous):
		if a.wizard.CanPrevious() {
			a.wizard.Previous()
			v.focus = 0
		}
	case key.Matches(m, keys.Submit):
		a.submit()
	}
	return nil
}

// activateField toggles checkboxes, cycles selects and opens the inline
// editor for text and file inputs.
func (a *App) activateField(f wizard.Field) tea.Cmd {
	switch f.Kind {
	case wizard.Checkbox:
		a.wizard.SetChecked(f.ID, !a.wizard.Value(f.ID).Checked)
		return nil
	case wizard.Select:
		a.wizard.CycleOption(f.ID, 1)
		return nil
	}
	v := &a.onboarding
	val := a.wizard.Value(f.ID)
	if f.Kind == wizard.File {
		v.input.Placeholder = "file names, comma separated"
		v.input.SetValue(strings.Join(val.Files, ", "))
	} else {
		v.input.Placeholder = f.Label
		v.input.SetValue(val.Text)
	}
	v.input.CursorEnd()
	v.editing = true
	return v.input.Focus()
}

func (a *App) commitField() {
	v := &a.onboarding
	v.editing = false
	v.input.Blur()
	f, ok := a.focusedField()
	if !ok {
		return
	}
	if f.Kind == wizard.File {
		a.wizard.SetFiles(f.ID, strings.Split(v.input.Value(), ",")...)
		return
	}
	a.wizard.SetText(f.ID, v.input.Value())
}

func (a *App) nextStep() {
	if !a.wizard.CanNext() {
		return
	}
	step := a.wizard.Current()
	if err := a.wizard.Next(); err != nil {
		a.deps.Metrics.ValidationFailed(strconv.Itoa(step))
		a.log.Debug("wizard blocked", "step", step)
		a.showMessage("Onboarding", capitalize(err.Error()))
		return
	}
	a.onboarding.focus = 0
}

func (a *App) submit() {
	if !a.wizard.CanSubmit() {
		return
	}
	app, err := a.wizard.Submit()
	if err != nil {
		a.deps.Metrics.ValidationFailed(strconv.Itoa(a.wizard.Current()))
		a.showMessage("Onboarding", capitalize(err.Error()))
		return
	}
	a.deps.Metrics.Submitted()
	a.log.Info("onboarding submitted", "reference", app.Reference)
	a.onboarding.focus = 0
	a.showMessage("Application submitted",
		fmt.Sprintf("Application submitted successfully! Your application is under review. You will receive an email confirmation shortly.\n\nReference: %s", app.Reference))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (a *App) renderOnboarding() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Merchant Onboarding"))
	b.WriteString("\n")
	b.WriteString(a.renderProgress())
	b.WriteString("\n\n")

	step, _ := a.wizard.Step(a.wizard.Current())
	b.WriteString(headerStyle.Render(fmt.Sprintf("Step %d of %d: %s", step.Number, a.wizard.Total(), step.Title)))
	b.WriteString("\n\n")

	if a.wizard.CanSubmit() {
		for _, e := range a.wizard.Review().Entries() {
			b.WriteString(cardLabelStyle.Render(fit(e[0], 18)) + e[1] + "\n")
		}
		b.WriteString("\n" + a.terms + "\n\n")
	}

	for i, f := range step.Fields {
		b.WriteString(a.renderField(i, f))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	bindings := []key.Binding{keys.Up, keys.Down, keys.Enter}
	if a.wizard.CanPrevious() {
		bindings = append(bindings, keys.Previous)
	}
	if a.wizard.CanNext() {
		bindings = append(bindings, keys.Next)
	}
	if a.wizard.CanSubmit() {
		bindings = append(bindings, keys.Submit)
	}
	b.WriteString(helpLine(bindings...))
	return b.String()
}

func (a *App) renderProgress() string {
	parts := make([]string, 0, a.wizard.Total())
	for n := 1; n <= a.wizard.Total(); n++ {
		step, _ := a.wizard.Step(n)
		label := fmt.Sprintf("%d %s", n, step.Title)
		switch a.wizard.Progress(n) {
		case wizard.Completed:
			parts = append(parts, stepCompletedStyle.Render("✓ "+label))
		case wizard.Active:
			parts = append(parts, stepActiveStyle.Render("● "+label))
		default:
			parts = append(parts, stepPendingStyle.Render("○ "+label))
		}
	}
	return strings.Join(parts, mutedStyle.Render(" ─ "))
}

func (a *App) renderField(i int, f wizard.Field) string {
	focused := i == a.onboarding.focus
	marker := "  "
	if focused {
		marker = fieldFocusStyle.Render("▶ ")
	}
	label := f.Label
	if f.Required {
		label += " *"
	}
	switch {
	case a.wizard.Flagged(f.ID):
		label = fieldFlaggedStyle.Render(label)
	case focused:
		label = fieldFocusStyle.Render(label)
	}

	val := a.wizard.Value(f.ID)
	var shown string
	switch f.Kind {
	case wizard.Checkbox:
		box := "[ ]"
		if val.Checked {
			box = "[x]"
		}
		return marker + box + " " + label
	case wizard.Select:
		shown = a.wizard.OptionLabel(f.ID)
		if shown == "" {
			shown = mutedStyle.Render("Select...")
		}
		shown = "‹ " + shown + " ›"
	case wizard.File:
		shown = a.wizard.FileLabel(f.ID)
		if shown == "" {
			shown = mutedStyle.Render("No file chosen")
		}
	default:
		shown = val.Text
	}
	if focused && a.onboarding.editing {
		shown = a.onboarding.input.View()
	}
	line := marker + fit(label, 34) + " " + shown
	if a.wizard.Flagged(f.ID) {
		line += " " + errorStyle.Render("required")
	}
	return line
}
