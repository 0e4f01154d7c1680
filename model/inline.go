package model

import "strings"

// InlineType represents the type of an inline span
type InlineType int

const (
	InlineUnknown InlineType = iota
	InlineText
	InlineMath
)

func (it InlineType) String() string {
	switch it {
	case InlineText:
		return "Text"
	case InlineMath:
		return "InlineMath"
	default:
		return "Unknown"
	}
}

// Inline is the interface for all inline content spans
type Inline interface {
	InlineType() InlineType
}

// TextSpan represents a run of plain text
type TextSpan struct {
	Content string
}

func (s TextSpan) InlineType() InlineType { return InlineText }

// MathSpan represents an inline LaTeX expression
type MathSpan struct {
	Latex string
}

func (s MathSpan) InlineType() InlineType { return InlineMath }

// InlineString returns the plain-text rendering of a span sequence. Math spans
// are re-wrapped in single dollar delimiters.
func InlineString(spans []Inline) string {
	var sb strings.Builder
	for _, span := range spans {
		switch s := span.(type) {
		case TextSpan:
			sb.WriteString(s.Content)
		case MathSpan:
			sb.WriteString("$")
			sb.WriteString(s.Latex)
			sb.WriteString("$")
		}
	}
	return sb.String()
}
