package grid

// Params is the context handed to a validator.
type Params struct {
	// Column is the column of the cell under edit.
	Column *Column
	// Row is the row of the cell under edit.
	Row *Row
	// Value is the proposed value. It has not been written to any cell.
	Value Value
	// AllCells is a snapshot of the grid, including the cell under edit in
	// its pre-edit state.
	AllCells []Cell
}

// Result is the outcome of a single validator.
type Result struct {
	Valid bool `json:"valid"`
	// Message explains a failure. It is only meaningful when Valid is false
	// and may be empty.
	Message string `json:"message,omitempty"`
}

// ValidateFunc checks a proposed value. Implementations must be pure: no
// hidden state, no side effects, no I/O, and a result for every input.
type ValidateFunc func(Params) Result

// Validator is a named validation rule.
type Validator struct {
	// Name identifies the rule in reports. Optional.
	Name string
	// IgnoreViolation marks the rule as advisory. Failures are still
	// reported; whether they block an edit is the caller's decision.
	IgnoreViolation bool
	// Validate performs the check.
	Validate ValidateFunc
}

// WithName returns a copy of v with the given name.
func (v *Validator) WithName(name string) *Validator {
	c := *v
	c.Name = name
	return &c
}

// Advisory returns a copy of v with IgnoreViolation set.
func (v *Validator) Advisory() *Validator {
	c := *v
	c.IgnoreViolation = true
	return &c
}
