package mutation

// State is the explicit mutation lifecycle of a module. Keeping this a
// tagged value instead of inferring it from map emptiness is what prevents
// a Staged module from ever being mistaken for Applied by a persistence
// layer.
type State int

const (
	// StateUnmutated means no mutaplasmid is selected.
	StateUnmutated State = iota

	// StateStaged means a mutaplasmid is selected but no attribute value
	// has been set. Staged must never be persisted as applied.
	StateStaged

	// StateApplied means at least one attribute carries a set value.
	StateApplied
)

func (s State) String() string {
	switch s {
	case StateStaged:
		return "STAGED"
	case StateApplied:
		return "APPLIED"
	default:
		return "UNMUTATED"
	}
}

// Attribute is one mutation-eligible attribute with its mutaplasmid bounds.
// Bounds are raw multipliers (1.0 = unmutated), not percentages.
type Attribute struct {
	ID          int64
	DisplayName string
	Icon        string
	MinValue    float64
	MaxValue    float64
	HighIsGood  bool

	// Value is the user-chosen multiplier, nil until set.
	Value *float64
}

// IsSet reports whether the user has chosen a value for this attribute.
func (a *Attribute) IsSet() bool {
	return a.Value != nil
}

// Mutation tracks the mutation overlay of a single module:
// Unmutated → Staged (mutaplasmid chosen) → Applied (≥1 value set).
type Mutation struct {
	state         State
	mutaplasmidID int64
	attributes    []*Attribute
	byID          map[int64]*Attribute
}

// NewMutation creates an unmutated overlay.
func NewMutation() *Mutation {
	return &Mutation{byID: make(map[int64]*Attribute)}
}

// State returns the current lifecycle state.
func (m *Mutation) State() State {
	return m.state
}

// MutaplasmidID returns the selected mutaplasmid, 0 when unmutated.
func (m *Mutation) MutaplasmidID() int64 {
	return m.mutaplasmidID
}

// Attributes returns the mutation-eligible attributes in the order the
// bounds table provided them.
func (m *Mutation) Attributes() []*Attribute {
	return m.attributes
}

// Attribute returns the attribute with the given id, nil when unknown.
func (m *Mutation) Attribute(attrID int64) *Attribute {
	return m.byID[attrID]
}

// SelectMutaplasmid transitions to Staged with the given bounds table.
// Any previously set values are discarded.
func (m *Mutation) SelectMutaplasmid(mutaplasmidID int64, attributes []*Attribute) {
	m.mutaplasmidID = mutaplasmidID
	m.attributes = attributes
	m.byID = make(map[int64]*Attribute, len(attributes))
	for _, attr := range attributes {
		attr.Value = nil
		m.byID[attr.ID] = attr
	}
	m.state = StateStaged
}

// Clear drops the mutaplasmid selection and all values, returning to
// Unmutated. The caller must also clear any externally persisted overrides.
func (m *Mutation) Clear() {
	m.state = StateUnmutated
	m.mutaplasmidID = 0
	m.attributes = nil
	m.byID = make(map[int64]*Attribute)
}

// SetValue stores a validated multiplier for an attribute and advances the
// state to Applied. The multiplier must already be range-checked; out of
// bounds here is a programming error reported as OutOfRange, never clamped.
func (m *Mutation) SetValue(attrID int64, multiplier float64) error {
	if m.state == StateUnmutated {
		return NewNoMutaplasmidError()
	}
	attr, ok := m.byID[attrID]
	if !ok {
		return NewUnknownAttributeError(attrID)
	}
	if multiplier < attr.MinValue || multiplier > attr.MaxValue {
		return NewOutOfRangeError(attrID, multiplier, attr.MinValue, attr.MaxValue)
	}
	v := multiplier
	attr.Value = &v
	m.state = StateApplied
	return nil
}

// ClearValue removes an attribute's value. When the last value goes, the
// state falls back to Staged.
func (m *Mutation) ClearValue(attrID int64) {
	attr, ok := m.byID[attrID]
	if !ok {
		return
	}
	attr.Value = nil
	if m.state == StateApplied && !m.anyValueSet() {
		m.state = StateStaged
	}
}

// Overrides builds the attribute→multiplier map from all set values.
// Empty (but non-nil) when nothing is set.
func (m *Mutation) Overrides() map[int64]float64 {
	overrides := make(map[int64]float64)
	for _, attr := range m.attributes {
		if attr.Value != nil {
			overrides[attr.ID] = *attr.Value
		}
	}
	return overrides
}

// IsApplied reports whether the module counts as mutated for persistence
// and recomputation purposes.
func (m *Mutation) IsApplied() bool {
	return m.state == StateApplied
}

func (m *Mutation) anyValueSet() bool {
	for _, attr := range m.attributes {
		if attr.Value != nil {
			return true
		}
	}
	return false
}
