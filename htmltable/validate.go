package htmltable

// ValidationKind identifies why table markup was rejected.
type ValidationKind int

const (
	// MissingTable means no <table> element was found.
	MissingTable ValidationKind = iota
	// NoRows means the table contains no <tr> elements.
	NoRows
	// NoCells means no row contains a <td> or <th> element.
	NoCells
)

func (k ValidationKind) String() string {
	switch k {
	case MissingTable:
		return "missing-table"
	case NoRows:
		return "no-rows"
	case NoCells:
		return "no-cells"
	default:
		return "invalid"
	}
}

// ValidationError reports that a string does not describe a usable table.
// It is returned, never panicked; callers typically fall back to rendering
// the raw markup or a placeholder.
type ValidationError struct {
	Kind ValidationKind
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingTable:
		return "markup contains no <table> element"
	case NoRows:
		return "table contains no rows"
	case NoCells:
		return "table rows contain no cells"
	default:
		return "invalid table markup"
	}
}

// Validate checks that markup describes a structurally usable table: a
// <table> element exists, it contains at least one row, and at least one
// row contains at least one cell. The first failing check short-circuits
// with its kind; a nil return means the markup is usable.
func Validate(markup string) error {
	_, err := parseTable(markup)
	return err
}
