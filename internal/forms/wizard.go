package forms

import (
	"context"
	"sync"

	"github.com/hbridge/careconnect-cli/internal/validation"
)

// Phase is the wizard's submission state. Steps themselves are tracked
// separately as a 1-based index.
type Phase int

const (
	// PhaseEditing: the user is on a step filling in fields.
	PhaseEditing Phase = iota
	// PhaseSubmitting: a submission is in flight.
	PhaseSubmitting
	// PhaseFailed: the last submission failed; the user is back on the
	// final step and may retry indefinitely.
	PhaseFailed
	// PhaseSucceeded: terminal; the flow navigates away.
	PhaseSucceeded
)

// Wizard drives a multi-step form. Forward navigation is gated by step
// validation; backward navigation is always allowed and clears nothing.
// Submission holds a single-slot in-flight lock (a second submit while one
// is running is rejected, double-clicks included) and applies its result
// through a generation check so a response landing after the wizard was
// abandoned mutates nothing.
type Wizard struct {
	mu       sync.Mutex
	form     *Form
	steps    [][]string
	step     int
	phase    Phase
	errMsg   string
	inFlight bool
	gen      uint64
}

// NewWizard starts at step 1 with an empty form. steps lists the field
// names belonging to each step, in order.
func NewWizard(steps [][]string) *Wizard {
	return &Wizard{form: NewForm(), steps: steps, step: 1}
}

func (w *Wizard) Form() *Form {
	return w.form
}

// Step returns the current 1-based step.
func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Steps returns the total step count.
func (w *Wizard) Steps() int {
	return len(w.steps)
}

// Progress returns completion as a percentage of steps entered.
func (w *Wizard) Progress() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step * 100 / len(w.steps)
}

func (w *Wizard) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// SubmitError returns the top-level error from the last failed
// submission, or "".
func (w *Wizard) SubmitError() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

// CurrentFields returns the field names of the current step.
func (w *Wizard) CurrentFields() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.steps[w.step-1]
}

// validateCurrent validates the current step's fields and installs the
// resulting error set on the form. Caller holds the lock.
func (w *Wizard) validateCurrent() bool {
	errs := validation.Step(w.steps[w.step-1], w.form.values)
	w.form.setErrors(errs)
	return len(errs) == 0
}

// Next validates the current step and advances on success. Returns whether
// the step was advanced; on failure the form carries the field errors.
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase != PhaseEditing && w.phase != PhaseFailed {
		return false
	}
	if !w.validateCurrent() {
		return false
	}
	if w.step < len(w.steps) {
		w.step++
		return true
	}
	return false
}

// Back moves one step back, never clearing entered data. Moving back from
// step 1 is a no-op.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > 1 {
		w.step--
		w.phase = PhaseEditing
		w.errMsg = ""
	}
}

// Submit validates the final step and runs do while holding the in-flight
// slot. It returns true when the submission was applied and succeeded.
// Rejected calls (wrong step, validation failure, already submitting or
// already succeeded) return false without invoking do. A result arriving
// after Abandon mutates no state.
func (w *Wizard) Submit(ctx context.Context, do func(ctx context.Context) error) bool {
	w.mu.Lock()
	if w.phase == PhaseSucceeded || w.phase == PhaseSubmitting || w.inFlight {
		w.mu.Unlock()
		return false
	}
	if w.step != len(w.steps) {
		w.mu.Unlock()
		return false
	}
	if !w.validateCurrent() {
		w.mu.Unlock()
		return false
	}
	w.inFlight = true
	w.phase = PhaseSubmitting
	w.errMsg = ""
	gen := w.gen
	w.mu.Unlock()

	err := do(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false
	if gen != w.gen {
		// The wizard was abandoned while the request was in flight; the
		// late result is a no-op.
		return false
	}
	if err != nil {
		w.phase = PhaseFailed
		w.errMsg = err.Error()
		return false
	}
	w.phase = PhaseSucceeded
	return true
}

// Abandon marks the wizard as navigated-away: any submission still in
// flight will discard its result instead of mutating state.
func (w *Wizard) Abandon() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen++
}
