package layout

import (
	"strings"

	"github.com/tsawler/docnorm/htmltable"
	"github.com/tsawler/docnorm/model"
)

// CanConvertToTable reports whether the block is a table block. The
// embedded markup is not validated here; conversion degrades to a
// placeholder instead of failing.
func (c *BlockConverter) CanConvertToTable(b *Block) bool {
	return b != nil && b.Type == TypeTable
}

// ToTable converts a table block by reconstructing its embedded HTML. When
// reconstruction fails the result is a 1x1 placeholder table rather than an
// error, so a mangled fragment still lands in the document as an editable
// table. The joined caption seeds both language slots.
func (c *BlockConverter) ToTable(b *Block) (*model.TableBlock, error) {
	if b == nil || b.Type != TypeTable {
		return nil, &ConversionError{Kind: InvalidBlockType, Target: model.BlockTable, Reason: "not a table block"}
	}

	table, err := htmltable.Reconstruct(b.TableBody, c.config.IDs)
	if err != nil {
		table = placeholderTable(c.config.IDs)
	}

	caption := strings.Join(b.TableCaption, " ")
	table.Caption = model.LocalizedText{EN: caption, ZH: caption}
	return table, nil
}

// placeholderTable stands in when embedded markup cannot be reconstructed.
func placeholderTable(gen model.IDGenerator) *model.TableBlock {
	row := model.TableRow{Cells: []model.TableCell{{Content: "", RowSpan: 1, ColSpan: 1}}}
	return model.NewTableBlock(gen, nil, []model.TableRow{row})
}
