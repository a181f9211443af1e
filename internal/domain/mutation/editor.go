package mutation

import (
	"time"

	"github.com/solrange/fitsim/internal/domain/shared"
)

// LiveResult is what a debounced validation reports back to the caller.
type LiveResult struct {
	AttributeID int64
	Multiplier  float64
	Err         error
}

// Editor is one edit session over a module's mutation overlay. It debounces
// live validation against rapid input, commits validated values into the
// overlay and decides whether the resulting override map differs from what
// is already persisted, so no-op edits never force a recompute.
type Editor struct {
	mutation  *Mutation
	persisted map[int64]float64
	debouncer *Debouncer
}

// NewEditor opens an edit session. persisted is the override map currently
// held by the external store (nil when the module is unmutated there).
func NewEditor(m *Mutation, persisted map[int64]float64, clock shared.Clock) *Editor {
	return NewEditorWithDelay(m, persisted, DefaultDebounceDelay, clock)
}

// NewEditorWithDelay opens an edit session with a custom debounce delay.
func NewEditorWithDelay(m *Mutation, persisted map[int64]float64, delay time.Duration, clock shared.Clock) *Editor {
	return &Editor{
		mutation:  m,
		persisted: persisted,
		debouncer: NewDebouncer(delay, clock),
	}
}

// Mutation returns the overlay under edit.
func (e *Editor) Mutation() *Mutation {
	return e.mutation
}

// ValidateLive schedules a debounced validation of the input text. Each new
// keystroke cancels the previous pending validation; nothing is committed.
func (e *Editor) ValidateLive(attrID int64, text string, report func(LiveResult)) {
	e.debouncer.Trigger(func() {
		attr := e.mutation.Attribute(attrID)
		if attr == nil {
			report(LiveResult{AttributeID: attrID, Err: NewUnknownAttributeError(attrID)})
			return
		}
		multiplier, err := ValidateInput(attr, text)
		report(LiveResult{AttributeID: attrID, Multiplier: multiplier, Err: err})
	})
}

// Commit validates the input text immediately and writes the multiplier
// into the attribute. Validation failure leaves the overlay unchanged.
func (e *Editor) Commit(attrID int64, text string) error {
	attr := e.mutation.Attribute(attrID)
	if attr == nil {
		return NewUnknownAttributeError(attrID)
	}
	multiplier, err := ValidateInput(attr, text)
	if err != nil {
		return err
	}
	return e.mutation.SetValue(attrID, multiplier)
}

// ClearValue removes an attribute's committed value.
func (e *Editor) ClearValue(attrID int64) {
	e.mutation.ClearValue(attrID)
}

// Result returns the override map to hand to the external store and whether
// it differs from the persisted one. changed=false means the store must not
// trigger a recomputation.
func (e *Editor) Result() (overrides map[int64]float64, changed bool) {
	overrides = e.mutation.Overrides()
	return overrides, !overridesEqual(overrides, e.persisted)
}

// Close ends the edit session. Pending live validations are canceled and
// will not fire afterwards.
func (e *Editor) Close() {
	e.debouncer.Close()
}

func overridesEqual(a, b map[int64]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for id, v := range a {
		if bv, ok := b[id]; !ok || bv != v {
			return false
		}
	}
	return true
}
