package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/docnorm/model"
)

var (
	// tagPattern removes \tag{...} annotations, tolerating whitespace
	// between the command and its argument.
	tagPattern = regexp.MustCompile(`\\tag\s*\{.*?\}`)

	newlineRun = regexp.MustCompile(`\n+`)
)

// CanConvertToMath reports whether the block is an equation block with
// non-empty text.
func (c *BlockConverter) CanConvertToMath(b *Block) bool {
	return b != nil && b.Type == TypeEquation && strings.TrimSpace(b.Text) != ""
}

// ToMath converts an equation block into display math, normalizing the
// LaTeX source.
func (c *BlockConverter) ToMath(b *Block) (*model.MathBlock, error) {
	if b == nil || b.Type != TypeEquation {
		return nil, &ConversionError{Kind: InvalidBlockType, Target: model.BlockMath, Reason: "not an equation block"}
	}
	if strings.TrimSpace(b.Text) == "" {
		return nil, &ConversionError{Kind: EmptyContent, Target: model.BlockMath, Reason: "equation text is empty"}
	}
	return model.NewMathBlock(c.config.IDs, normalizeLatex(b.Text)), nil
}

// normalizeLatex strips one layer of display delimiters ($$...$$ or
// \[...\], only when both ends are present), drops \tag annotations, and
// collapses newline runs to single spaces.
func normalizeLatex(text string) string {
	s := strings.TrimSpace(text)
	if inner, ok := trimWrap(s, "$$", "$$"); ok {
		s = inner
	} else if inner, ok := trimWrap(s, `\[`, `\]`); ok {
		s = inner
	}
	s = tagPattern.ReplaceAllString(s, "")
	s = newlineRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// trimWrap removes a delimiter pair when both the opening and closing
// delimiter are present.
func trimWrap(s, opening, closing string) (string, bool) {
	if len(s) >= len(opening)+len(closing) && strings.HasPrefix(s, opening) && strings.HasSuffix(s, closing) {
		return strings.TrimSpace(s[len(opening) : len(s)-len(closing)]), true
	}
	return s, false
}
