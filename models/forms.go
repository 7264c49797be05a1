package models

// FieldKind identifies the input element type of a form field
type FieldKind string

const (
	FieldKindText       FieldKind = "text"
	FieldKindSelect     FieldKind = "select"
	FieldKindDatePicker FieldKind = "datepicker"
)

// SelectOption represents a single dropdown option as a (label, value) pair.
// The value is the machine value submitted back to us, not the display label.
type SelectOption struct {
	Label string
	Value string
}

// FieldSpec describes one input block of a form
type FieldSpec struct {
	BlockID     string
	ActionID    string
	Label       string
	Placeholder string
	Kind        FieldKind
	Options     []SelectOption // only set for FieldKindSelect
	Required    bool
}

// FormDefinition is an immutable description of a modal form, defined at
// process start. Block IDs are unique within a definition.
type FormDefinition struct {
	CallbackID string
	Title      string
	Fields     []FieldSpec
}

// SubmissionState maps block ID to the raw submitted value, flattened from
// Slack's state.values[blockID][actionID] nesting
type SubmissionState map[string]string
