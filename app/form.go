package app

import (
	"errors"

	"motogarage-api/utils"
)

// Phase is where a form sits in its submit lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEditing
	PhaseSubmitting
	PhaseSuccess
	PhaseError
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not resolved; the submit control is disabled in this phase.
var ErrSubmitInFlight = errors.New("submission already in flight")

// ErrValidationFailed is returned when the rule set rejects the form; no
// gateway call is made.
var ErrValidationFailed = errors.New("validation failed")

// Form is a per-screen state container: current field values, per-field
// error flags, the in-flight flag and the top-level banner.
type Form struct {
	rules       []utils.Rule
	values      utils.FieldValues
	fieldErrors map[string]string
	phase       Phase
	banner      string
}

func NewForm(rules []utils.Rule) *Form {
	return &Form{
		rules:       rules,
		values:      make(utils.FieldValues),
		fieldErrors: make(map[string]string),
		phase:       PhaseIdle,
	}
}

// Set records a keystroke. The edited field's error clears immediately,
// independent of the banner, so the user sees the flag drop while typing.
func (f *Form) Set(field, value string) {
	f.values[field] = value
	delete(f.fieldErrors, field)
	f.banner = ""
	if f.phase == PhaseIdle || f.phase == PhaseSuccess || f.phase == PhaseError {
		f.phase = PhaseEditing
	}
}

// Value returns the current raw value of a field.
func (f *Form) Value(field string) string {
	return f.values[field]
}

// FieldError returns the inline error for a field, empty when valid.
func (f *Form) FieldError(field string) string {
	return f.fieldErrors[field]
}

// Banner returns the top-level error message, empty when none.
func (f *Form) Banner() string {
	return f.banner
}

func (f *Form) Phase() Phase {
	return f.phase
}

// Submitting reports whether the submit control should be disabled and show
// its busy label.
func (f *Form) Submitting() bool {
	return f.phase == PhaseSubmitting
}

// Submit validates and, when the form is clean, runs the gateway call. A
// validation failure never reaches the network. A gateway failure keeps the
// entered values so the user can correct and resubmit.
func (f *Form) Submit(send func(utils.FieldValues) error) error {
	if f.phase == PhaseSubmitting {
		return ErrSubmitInFlight
	}

	f.fieldErrors = utils.Validate(f.rules, f.values)
	if len(f.fieldErrors) > 0 {
		f.banner = utils.FirstError(f.rules, f.values)
		f.phase = PhaseEditing
		return ErrValidationFailed
	}

	f.phase = PhaseSubmitting
	f.banner = ""

	if err := f.send(send); err != nil {
		// Backend errors are shown verbatim; values stay for retry.
		f.banner = err.Error()
		f.phase = PhaseError
		return err
	}

	f.values = make(utils.FieldValues)
	f.phase = PhaseSuccess
	return nil
}

func (f *Form) send(send func(utils.FieldValues) error) error {
	snapshot := make(utils.FieldValues, len(f.values))
	for k, v := range f.values {
		snapshot[k] = v
	}
	return send(snapshot)
}

// Reset returns the form to idle with fields and errors cleared. Called
// after the dependent list has been reloaded on success, or to abandon an
// edit.
func (f *Form) Reset() {
	f.values = make(utils.FieldValues)
	f.fieldErrors = make(map[string]string)
	f.banner = ""
	f.phase = PhaseIdle
}
