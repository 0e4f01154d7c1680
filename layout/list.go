package layout

import (
	"strings"

	"github.com/tsawler/docnorm/inline"
	"github.com/tsawler/docnorm/model"
)

// CanConvertToOrderedList reports whether the block is a plain-text list
// whose items include at least one numeric marker ("1.", "(1)", "1)").
func (c *BlockConverter) CanConvertToOrderedList(b *Block) bool {
	if !c.isTextList(b) {
		return false
	}
	for _, item := range b.ListItems {
		if c.orderedPrefix(item) != "" {
			return true
		}
	}
	return false
}

// ToOrderedList converts a list block into an ordered list. Each item's
// numeric marker is stripped; items without one are kept verbatim. The
// numbering start is taken from the first marked item, defaulting to 1.
func (c *BlockConverter) ToOrderedList(b *Block) (*model.OrderedListBlock, error) {
	if err := c.checkList(b, model.BlockOrderedList); err != nil {
		return nil, err
	}
	if !c.CanConvertToOrderedList(b) {
		return nil, &ConversionError{Kind: EmptyContent, Target: model.BlockOrderedList, Reason: "no item carries a numeric marker"}
	}

	items := make([][]model.Inline, 0, len(b.ListItems))
	start := 0
	for _, raw := range b.ListItems {
		text := strings.TrimSpace(raw)
		if prefix := c.orderedPrefix(text); prefix != "" {
			if start == 0 {
				start = markerNumber(prefix)
			}
			text = strings.TrimSpace(text[len(prefix):])
		}
		items = append(items, inline.Parse(text))
	}
	if start == 0 {
		start = 1
	}
	return model.NewOrderedListBlock(c.config.IDs, items, start), nil
}

// CanConvertToUnorderedList reports whether the block is a plain-text list
// whose items include at least one bullet glyph marker.
func (c *BlockConverter) CanConvertToUnorderedList(b *Block) bool {
	if !c.isTextList(b) {
		return false
	}
	for _, item := range b.ListItems {
		if c.config.BulletPrefix.MatchString(strings.TrimSpace(item)) {
			return true
		}
	}
	return false
}

// ToUnorderedList converts a list block into a bulleted list. Each item's
// bullet marker is stripped; items without one are kept verbatim.
func (c *BlockConverter) ToUnorderedList(b *Block) (*model.UnorderedListBlock, error) {
	if err := c.checkList(b, model.BlockUnorderedList); err != nil {
		return nil, err
	}
	if !c.CanConvertToUnorderedList(b) {
		return nil, &ConversionError{Kind: EmptyContent, Target: model.BlockUnorderedList, Reason: "no item carries a bullet marker"}
	}

	items := make([][]model.Inline, 0, len(b.ListItems))
	for _, raw := range b.ListItems {
		text := strings.TrimSpace(raw)
		if m := c.config.BulletPrefix.FindString(text); m != "" {
			text = strings.TrimSpace(text[len(m):])
		}
		items = append(items, inline.Parse(text))
	}
	return model.NewUnorderedListBlock(c.config.IDs, items), nil
}

// ToListAuto converts a list block, preferring an ordered reading when both
// marker styles are present; unordered is the fallback. Callers that need
// to honor an explicit user choice on ambiguous input should call the
// specific conversion instead.
func (c *BlockConverter) ToListAuto(b *Block) (model.Block, error) {
	if c.CanConvertToOrderedList(b) {
		return c.ToOrderedList(b)
	}
	return c.ToUnorderedList(b)
}

func (c *BlockConverter) isTextList(b *Block) bool {
	return b != nil && b.Type == TypeList && b.SubType == "text" && len(b.ListItems) > 0
}

func (c *BlockConverter) checkList(b *Block, target model.BlockType) error {
	if b == nil || b.Type != TypeList {
		return &ConversionError{Kind: InvalidBlockType, Target: target, Reason: "not a list block"}
	}
	if b.SubType != "text" {
		return &ConversionError{Kind: InvalidBlockType, Target: target, Reason: "unsupported list sub_type " + b.SubType}
	}
	if len(b.ListItems) == 0 {
		return &ConversionError{Kind: MissingRequiredField, Target: target, Reason: "list_items is absent"}
	}
	return nil
}

// orderedPrefix returns the numeric marker at the start of an item, or ""
// when none of the configured patterns match.
func (c *BlockConverter) orderedPrefix(item string) string {
	item = strings.TrimSpace(item)
	for _, pattern := range c.config.OrderedPrefixes {
		if m := pattern.FindString(item); m != "" {
			return m
		}
	}
	return ""
}

// markerNumber extracts the numeric value of an ordered marker such as
// "(3)" or "12."
func markerNumber(prefix string) int {
	n := 0
	for _, r := range prefix {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	return n
}
