// Package wizard implements a linear multi-step form with validation-gated
// transitions, a review summary and a presentation-only reset.
package wizard

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrIncomplete       = errors.New("please fill in all required fields")
	ErrTermsNotAccepted = errors.New("please complete all required fields and accept the terms")
	ErrNotFinalStep     = errors.New("submit is only available on the final step")
)

type Kind int

const (
	Text Kind = iota
	Email
	Select
	Checkbox
	File
)

type Option struct {
	Value string
	Label string
}

type Field struct {
	ID       string
	Label    string
	Kind     Kind
	Required bool
	// Multiple applies to File fields.
	Multiple bool
	Options  []Option
}

type Step struct {
	Number int
	Title  string
	Fields []Field
}

// Value is the current input of one field. Only the member matching the
// field kind is meaningful.
type Value struct {
	Text    string
	Checked bool
	Files   []string
}

type Progress int

const (
	Pending Progress = iota
	Active
	Completed
)

func (p Progress) ClassName() string {
	switch p {
	case Active:
		return "progress-step active"
	case Completed:
		return "progress-step completed"
	default:
		return "progress-step"
	}
}

// Application is returned by a successful Submit.
type Application struct {
	Reference   string
	SubmittedAt time.Time
	Review      Review
}

type Wizard struct {
	steps   []Step
	fields  map[string]Field
	values  map[string]Value
	flagged map[string]bool
	current int
	review  Review
	now     func() time.Time
}

func New(steps []Step) *Wizard {
	w := &Wizard{
		steps:   steps,
		fields:  make(map[string]Field),
		values:  make(map[string]Value),
		flagged: make(map[string]bool),
		current: 1,
		now:     time.Now,
	}
	for _, s := range steps {
		for _, f := range s.Fields {
			w.fields[f.ID] = f
		}
	}
	return w
}

func (w *Wizard) Current() int { return w.current }
func (w *Wizard) Total() int   { return len(w.steps) }

func (w *Wizard) CanPrevious() bool { return w.current > 1 }
func (w *Wizard) CanNext() bool     { return w.current < len(w.steps) }
func (w *Wizard) CanSubmit() bool   { return w.current == len(w.steps) }

// Step returns the definition of step n (1-based).
func (w *Wizard) Step(n int) (Step, bool) {
	if n < 1 || n > len(w.steps) {
		return Step{}, false
	}
	return w.steps[n-1], true
}

func (w *Wizard) Field(id string) (Field, bool) {
	f, ok := w.fields[id]
	return f, ok
}

func (w *Wizard) Value(id string) Value {
	return w.values[id]
}

// Set stores a field value. Unknown ids are ignored.
func (w *Wizard) Set(id string, v Value) {
	if _, ok := w.fields[id]; !ok {
		return
	}
	w.values[id] = v
}

func (w *Wizard) SetText(id, text string) {
	v := w.values[id]
	v.Text = text
	w.Set(id, v)
}

func (w *Wizard) SetChecked(id string, checked bool) {
	v := w.values[id]
	v.Checked = checked
	w.Set(id, v)
}

// SetFiles records selected file names. Single-file inputs keep the first.
func (w *Wizard) SetFiles(id string, names ...string) {
	f, ok := w.fields[id]
	if !ok {
		return
	}
	var files []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			files = append(files, n)
		}
	}
	if !f.Multiple && len(files) > 1 {
		files = files[:1]
	}
	v := w.values[id]
	v.Files = files
	w.values[id] = v
}

func (w *Wizard) Flagged(id string) bool {
	return w.flagged[id]
}

// Validate checks every required field of step n, flags the failing ones and
// clears the flag on the passing ones.
func (w *Wizard) Validate(n int) bool {
	step, ok := w.Step(n)
	if !ok {
		return false
	}
	valid := true
	for _, f := range step.Fields {
		if !f.Required {
			continue
		}
		if satisfied(f, w.values[f.ID]) {
			delete(w.flagged, f.ID)
			continue
		}
		w.flagged[f.ID] = true
		valid = false
	}
	return valid
}

func satisfied(f Field, v Value) bool {
	switch f.Kind {
	case Checkbox:
		return v.Checked
	case File:
		return len(v.Files) > 0
	default:
		return strings.TrimSpace(v.Text) != ""
	}
}

// Next advances one step when the current step validates. Entering the
// final step refreshes the review summary.
func (w *Wizard) Next() error {
	if !w.Validate(w.current) {
		return ErrIncomplete
	}
	if w.current >= len(w.steps) {
		return nil
	}
	w.current++
	if w.current == len(w.steps) {
		w.review = w.buildReview()
	}
	return nil
}

func (w *Wizard) Previous() {
	if w.current > 1 {
		w.current--
	}
}

// Submit validates the final step. On success the controller returns to
// step 1; field values are kept.
func (w *Wizard) Submit() (Application, error) {
	if !w.CanSubmit() {
		return Application{}, ErrNotFinalStep
	}
	if !w.Validate(w.current) {
		return Application{}, ErrTermsNotAccepted
	}
	app := Application{
		Reference:   "APP-" + strings.ToUpper(uuid.NewString()[:8]),
		SubmittedAt: w.now(),
		Review:      w.review,
	}
	w.Reset()
	return app, nil
}

// Reset returns to step 1 without touching field values.
func (w *Wizard) Reset() {
	w.current = 1
}

// Activate is wired to the router's activation event for the wizard page.
func (w *Wizard) Activate() {
	w.Reset()
}

// Progress reports the indicator state of step n relative to the current step.
func (w *Wizard) Progress(n int) Progress {
	switch {
	case n < w.current:
		return Completed
	case n == w.current:
		return Active
	default:
		return Pending
	}
}

func (w *Wizard) Review() Review {
	return w.review
}

// FileLabel is the caption shown next to a file input.
func (w *Wizard) FileLabel(id string) string {
	f, ok := w.fields[id]
	if !ok || f.Kind != File {
		return ""
	}
	files := w.values[id].Files
	switch {
	case len(files) == 0:
		return ""
	case f.Multiple:
		return fmtFileCount(len(files))
	default:
		return files[0]
	}
}

// OptionLabel resolves the display label of a select field's current value.
func (w *Wizard) OptionLabel(id string) string {
	f, ok := w.fields[id]
	if !ok {
		return ""
	}
	val := w.values[id].Text
	for _, o := range f.Options {
		if o.Value == val {
			return o.Label
		}
	}
	return ""
}

// CycleOption moves a select field to its next (delta=1) or previous
// (delta=-1) option.
func (w *Wizard) CycleOption(id string, delta int) {
	f, ok := w.fields[id]
	if !ok || len(f.Options) == 0 {
		return
	}
	idx := -1
	cur := w.values[id].Text
	for i, o := range f.Options {
		if o.Value == cur {
			idx = i
			break
		}
	}
	n := len(f.Options)
	switch {
	case idx < 0 && delta < 0:
		idx = n - 1
	case idx < 0:
		idx = 0
	default:
		idx = ((idx+delta)%n + n) % n
	}
	w.SetText(id, f.Options[idx].Value)
}
