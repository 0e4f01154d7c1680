// Package docnorm provides a fluent API for normalizing externally sourced
// document content into the canonical block model.
//
// Basic usage:
//
//	block, err := docnorm.New().ConvertJSON(payload)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	conv := docnorm.New().
//	    WithAssetHost("https://assets.example.com").
//	    WithFileID("doc-42")
//	table, err := conv.ReconstructTable(htmlFragment)
//
// For advanced use cases, the lower-level htmltable, layout, and inline
// packages are also available.
package docnorm

import (
	"fmt"

	"github.com/tsawler/docnorm/htmltable"
	"github.com/tsawler/docnorm/inline"
	"github.com/tsawler/docnorm/layout"
	"github.com/tsawler/docnorm/model"
)

// Converter dispatches layout blocks to the conversion their shape
// supports, exposing a uniform can-convert/convert contract. The zero
// configuration uses UUID identifiers and leaves relative image paths
// untouched.
type Converter struct {
	config layout.Config
	blocks *layout.BlockConverter
}

// New creates a Converter with default configuration.
func New() *Converter {
	c := &Converter{config: layout.DefaultConfig()}
	c.rebuild()
	return c
}

// WithIDGenerator sets the identifier generator used for every produced
// block. Tests typically supply model.NewSequentialGenerator().
func (c *Converter) WithIDGenerator(gen model.IDGenerator) *Converter {
	c.config.IDs = gen
	c.rebuild()
	return c
}

// WithAssetHost sets the host used to resolve service-relative image paths.
func (c *Converter) WithAssetHost(host string) *Converter {
	c.config.AssetHost = host
	c.rebuild()
	return c
}

// WithFileID sets the document identifier combined with the asset host when
// resolving relative image paths.
func (c *Converter) WithFileID(id string) *Converter {
	c.config.FileID = id
	c.rebuild()
	return c
}

func (c *Converter) rebuild() {
	c.blocks = layout.NewBlockConverterWithConfig(c.config)
}

// Blocks returns the underlying converter for callers that need individual
// capability predicates, e.g. to offer per-target conversion actions.
func (c *Converter) Blocks() *layout.BlockConverter {
	return c.blocks
}

// rule pairs a capability predicate with its conversion.
type rule struct {
	can     func(*layout.Block) bool
	convert func(*layout.Block) (model.Block, error)
}

// rules lists the conversions in dispatch order. Headings are checked
// before paragraphs so a leveled text block never degrades to prose.
func (c *Converter) rules() []rule {
	bc := c.blocks
	return []rule{
		{bc.CanConvertToHeading, func(b *layout.Block) (model.Block, error) { return bc.ToHeading(b) }},
		{bc.CanConvertToParagraph, func(b *layout.Block) (model.Block, error) { return bc.ToParagraph(b) }},
		{
			func(b *layout.Block) bool {
				return bc.CanConvertToOrderedList(b) || bc.CanConvertToUnorderedList(b)
			},
			bc.ToListAuto,
		},
		{bc.CanConvertToMath, func(b *layout.Block) (model.Block, error) { return bc.ToMath(b) }},
		{bc.CanConvertToFigure, func(b *layout.Block) (model.Block, error) { return bc.ToFigure(b) }},
		{bc.CanConvertToTable, func(b *layout.Block) (model.Block, error) { return bc.ToTable(b) }},
	}
}

// CanConvert reports whether some conversion accepts the block.
func (c *Converter) CanConvert(b *layout.Block) bool {
	for _, r := range c.rules() {
		if r.can(b) {
			return true
		}
	}
	return false
}

// Convert dispatches the block to the first conversion whose predicate
// accepts it and returns the resulting canonical block.
func (c *Converter) Convert(b *layout.Block) (model.Block, error) {
	for _, r := range c.rules() {
		if r.can(b) {
			return r.convert(b)
		}
	}
	blockType := "<nil>"
	if b != nil {
		blockType = b.Type
	}
	return nil, &layout.ConversionError{
		Kind:   layout.InvalidBlockType,
		Reason: fmt.Sprintf("no conversion accepts block type %q", blockType),
	}
}

// ConvertJSON decodes one layout-service record and converts it.
func (c *Converter) ConvertJSON(data []byte) (model.Block, error) {
	b, err := layout.ParseBlock(data)
	if err != nil {
		return nil, err
	}
	return c.Convert(b)
}

// ReconstructTable normalizes HTML table markup into the canonical grid
// model using this converter's identifier generator.
func (c *Converter) ReconstructTable(markup string) (*model.TableBlock, error) {
	return htmltable.Reconstruct(markup, c.config.IDs)
}

// ValidateTable checks table markup for structural usability.
func ValidateTable(markup string) error {
	return htmltable.Validate(markup)
}

// SerializeTable emits a canonical table as HTML markup.
func SerializeTable(t *model.TableBlock) string {
	return htmltable.Serialize(t)
}

// ParseInline splits raw text into text and inline-math spans.
func ParseInline(text string) []model.Inline {
	return inline.Parse(text)
}
