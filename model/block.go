package model

// BlockType represents the type of a canonical block
type BlockType int

const (
	BlockUnknown BlockType = iota
	BlockHeading
	BlockParagraph
	BlockOrderedList
	BlockUnorderedList
	BlockMath
	BlockFigure
	BlockTable
)

func (bt BlockType) String() string {
	switch bt {
	case BlockHeading:
		return "Heading"
	case BlockParagraph:
		return "Paragraph"
	case BlockOrderedList:
		return "OrderedList"
	case BlockUnorderedList:
		return "UnorderedList"
	case BlockMath:
		return "Math"
	case BlockFigure:
		return "Figure"
	case BlockTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Block is the interface for all canonical blocks
type Block interface {
	ID() string
	Type() BlockType
}

// HeadingBlock represents a heading
type HeadingBlock struct {
	id      string
	Level   int // 1-6
	Content []Inline
}

// NewHeadingBlock creates a heading with a fresh identifier.
func NewHeadingBlock(gen IDGenerator, level int, content []Inline) *HeadingBlock {
	return &HeadingBlock{id: gen.NextID("heading"), Level: level, Content: content}
}

func (b *HeadingBlock) ID() string      { return b.id }
func (b *HeadingBlock) Type() BlockType { return BlockHeading }

// ParagraphBlock represents a paragraph of prose
type ParagraphBlock struct {
	id      string
	Content []Inline
}

// NewParagraphBlock creates a paragraph with a fresh identifier.
func NewParagraphBlock(gen IDGenerator, content []Inline) *ParagraphBlock {
	return &ParagraphBlock{id: gen.NextID("paragraph"), Content: content}
}

func (b *ParagraphBlock) ID() string      { return b.id }
func (b *ParagraphBlock) Type() BlockType { return BlockParagraph }

// OrderedListBlock represents a numbered list
type OrderedListBlock struct {
	id    string
	Items [][]Inline
	Start int // numbering origin, usually 1
}

// NewOrderedListBlock creates an ordered list with a fresh identifier.
func NewOrderedListBlock(gen IDGenerator, items [][]Inline, start int) *OrderedListBlock {
	return &OrderedListBlock{id: gen.NextID("list"), Items: items, Start: start}
}

func (b *OrderedListBlock) ID() string      { return b.id }
func (b *OrderedListBlock) Type() BlockType { return BlockOrderedList }

// UnorderedListBlock represents a bulleted list
type UnorderedListBlock struct {
	id    string
	Items [][]Inline
}

// NewUnorderedListBlock creates an unordered list with a fresh identifier.
func NewUnorderedListBlock(gen IDGenerator, items [][]Inline) *UnorderedListBlock {
	return &UnorderedListBlock{id: gen.NextID("list"), Items: items}
}

func (b *UnorderedListBlock) ID() string      { return b.id }
func (b *UnorderedListBlock) Type() BlockType { return BlockUnorderedList }

// MathBlock represents display math
type MathBlock struct {
	id    string
	Latex string
}

// NewMathBlock creates a math block with a fresh identifier.
func NewMathBlock(gen IDGenerator, latex string) *MathBlock {
	return &MathBlock{id: gen.NextID("math"), Latex: latex}
}

func (b *MathBlock) ID() string      { return b.id }
func (b *MathBlock) Type() BlockType { return BlockMath }

// FigureBlock represents an image with optional caption and description
type FigureBlock struct {
	id          string
	Src         string
	Alt         string
	Caption     []Inline
	Description []Inline
}

// NewFigureBlock creates a figure with a fresh identifier.
func NewFigureBlock(gen IDGenerator, src, alt string, caption, description []Inline) *FigureBlock {
	return &FigureBlock{
		id:          gen.NextID("figure"),
		Src:         src,
		Alt:         alt,
		Caption:     caption,
		Description: description,
	}
}

func (b *FigureBlock) ID() string      { return b.id }
func (b *FigureBlock) Type() BlockType { return BlockFigure }
