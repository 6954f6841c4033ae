// Package forms holds the client-side state for the login form and the
// registration wizards: field values, per-field errors, touched tracking,
// and the step/submission state machine.
package forms

import "github.com/hbridge/careconnect-cli/internal/validation"

// Form tracks one flow's field values, the errors of currently-invalid
// fields, and which fields have been blurred at least once. It is created
// empty on flow entry and discarded on successful submission.
type Form struct {
	values  map[string]string
	errors  map[string]string
	touched map[string]bool
}

func NewForm() *Form {
	return &Form{
		values:  make(map[string]string),
		errors:  make(map[string]string),
		touched: make(map[string]bool),
	}
}

// SetValue records a keystroke-level change and clears the field's error;
// the field is not revalidated until the next Blur.
func (f *Form) SetValue(name, value string) {
	f.values[name] = value
	delete(f.errors, name)
}

// Blur marks the field touched and validates it immediately.
func (f *Form) Blur(name string) {
	f.touched[name] = true
	if msg := validation.Field(name, f.values[name], f.values); msg != "" {
		f.errors[name] = msg
	} else {
		delete(f.errors, name)
	}
}

func (f *Form) Value(name string) string {
	return f.values[name]
}

// Values returns a copy of the current values.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Error returns the field's current error message, or "".
func (f *Form) Error(name string) string {
	return f.errors[name]
}

// Errors returns a copy of the current error set.
func (f *Form) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form) Touched(name string) bool {
	return f.touched[name]
}

// Valid reports whether no field currently carries an error.
func (f *Form) Valid() bool {
	return len(f.errors) == 0
}

// setErrors replaces the error set, keeping the map owned by the form.
func (f *Form) setErrors(errs map[string]string) {
	f.errors = make(map[string]string, len(errs))
	for k, v := range errs {
		f.errors[k] = v
	}
}
