package schema

// Outcome is the result of a successful Add* call.
type Outcome int

const (
	// OutcomeNone accompanies a non-nil error.
	OutcomeNone Outcome = iota
	// OutcomeAdded means a new entity was appended and committed.
	OutcomeAdded
	// OutcomeExists means the entity was already present; nothing changed.
	OutcomeExists
	// OutcomeMerged means an enum or set with the same name was present and
	// new structure entries were merged into it.
	OutcomeMerged
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeExists:
		return "already exists"
	case OutcomeMerged:
		return "merged"
	default:
		return "none"
	}
}

// Changed reports whether the outcome modified the document.
func (o Outcome) Changed() bool {
	return o == OutcomeAdded || o == OutcomeMerged
}
