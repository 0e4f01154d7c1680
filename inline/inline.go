// Package inline splits raw prose into ordered text and inline-math spans.
package inline

import (
	"regexp"

	"github.com/tsawler/docnorm/model"
)

// mathPattern matches a single-line $...$ span. Nested or multi-line
// delimiters are never recognized as math.
var mathPattern = regexp.MustCompile(`\$([^$\n]+)\$`)

// Parse scans text for $...$ delimiters and returns the resulting span
// sequence: plain text between matches becomes TextSpan values, each match's
// interior becomes a MathSpan. Text with no math yields a single text span;
// empty input yields nil.
//
// Display delimiters ($$...$$) appearing inside prose are not treated
// specially: the scanner matches the inner single-dollar pair, leaving a
// literal "$" text span on either side.
func Parse(text string) []model.Inline {
	if text == "" {
		return nil
	}

	matches := mathPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []model.Inline{model.TextSpan{Content: text}}
	}

	spans := make([]model.Inline, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, model.TextSpan{Content: text[last:m[0]]})
		}
		spans = append(spans, model.MathSpan{Latex: text[m[2]:m[3]]})
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, model.TextSpan{Content: text[last:]})
	}
	return spans
}
