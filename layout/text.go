package layout

import (
	"strings"

	"github.com/tsawler/docnorm/inline"
	"github.com/tsawler/docnorm/model"
)

// CanConvertToHeading reports whether the block is a text block with a
// positive heading level and non-empty text.
func (c *BlockConverter) CanConvertToHeading(b *Block) bool {
	return b != nil && b.Type == TypeText &&
		b.TextLevel != nil && *b.TextLevel > 0 &&
		strings.TrimSpace(b.Text) != ""
}

// ToHeading converts a text block into a heading. Levels outside 1-6 fall
// back to DefaultHeadingLevel.
func (c *BlockConverter) ToHeading(b *Block) (*model.HeadingBlock, error) {
	if b == nil || b.Type != TypeText {
		return nil, &ConversionError{Kind: InvalidBlockType, Target: model.BlockHeading, Reason: "not a text block"}
	}
	if b.TextLevel == nil || *b.TextLevel <= 0 {
		return nil, &ConversionError{Kind: MissingRequiredField, Target: model.BlockHeading, Reason: "text_level is absent"}
	}
	if strings.TrimSpace(b.Text) == "" {
		return nil, &ConversionError{Kind: EmptyContent, Target: model.BlockHeading, Reason: "heading text is empty"}
	}

	level := *b.TextLevel
	if level < 1 || level > 6 {
		level = DefaultHeadingLevel
	}
	return model.NewHeadingBlock(c.config.IDs, level, inline.Parse(b.Text)), nil
}

// CanConvertToParagraph reports whether the block is a text block with no
// heading level and non-empty text.
func (c *BlockConverter) CanConvertToParagraph(b *Block) bool {
	return b != nil && b.Type == TypeText &&
		(b.TextLevel == nil || *b.TextLevel == 0) &&
		strings.TrimSpace(b.Text) != ""
}

// ToParagraph converts a text block into a paragraph.
func (c *BlockConverter) ToParagraph(b *Block) (*model.ParagraphBlock, error) {
	if b == nil || b.Type != TypeText {
		return nil, &ConversionError{Kind: InvalidBlockType, Target: model.BlockParagraph, Reason: "not a text block"}
	}
	if b.TextLevel != nil && *b.TextLevel != 0 {
		return nil, &ConversionError{Kind: InvalidBlockType, Target: model.BlockParagraph, Reason: "block carries a heading level"}
	}
	if strings.TrimSpace(b.Text) == "" {
		return nil, &ConversionError{Kind: EmptyContent, Target: model.BlockParagraph, Reason: "paragraph text is empty"}
	}
	return model.NewParagraphBlock(c.config.IDs, inline.Parse(b.Text)), nil
}
