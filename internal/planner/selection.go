package planner

// SelectionState holds the only mutable state in the core: two independent
// boolean maps recording which courses the student plans to take and which
// they have completed. A code may be true in both maps at once — completed
// courses are not auto-cleared from the plan; that overlap is intentional
// UI state and both maps are exposed as-is.
//
// None of the mutators validate codes against the catalog. Selections on
// unknown codes are legal and inert: they contribute nothing to credit or
// progress totals.
type SelectionState struct {
	Planned   map[string]bool `json:"planned"`
	Completed map[string]bool `json:"completed"`
}

// NewSelectionState returns an empty selection, the state of a first-run
// session before any persisted selection is restored.
func NewSelectionState() SelectionState {
	return SelectionState{
		Planned:   make(map[string]bool),
		Completed: make(map[string]bool),
	}
}

// Normalize replaces nil maps with empty ones. Selections arriving from
// persisted client state may omit either map entirely.
func (s *SelectionState) Normalize() {
	if s.Planned == nil {
		s.Planned = make(map[string]bool)
	}
	if s.Completed == nil {
		s.Completed = make(map[string]bool)
	}
}

// TogglePlanned flips the planned flag for code. An absent key reads as
// false, so the first toggle marks the course planned. Toggle is its own
// inverse.
func (s *SelectionState) TogglePlanned(code string) {
	s.Normalize()
	s.Planned[code] = !s.Planned[code]
}

// ToggleCompleted flips the completed flag for code with the same
// semantics as TogglePlanned.
func (s *SelectionState) ToggleCompleted(code string) {
	s.Normalize()
	s.Completed[code] = !s.Completed[code]
}

// RemoveFromPlan clears the planned flag for code. The key is set to
// false rather than deleted, matching toggle semantics: re-adding later is
// just another toggle.
func (s *SelectionState) RemoveFromPlan(code string) {
	s.Normalize()
	s.Planned[code] = false
}
