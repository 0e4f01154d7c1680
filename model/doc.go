// Package model provides the canonical block model for normalized document
// content.
//
// This package defines the user-facing data structures that every
// normalization operation produces. All conversions ultimately yield these
// types, making them the primary API for consuming normalized content.
//
// # Blocks
//
// All canonical content implements the [Block] interface. The concrete types
// are:
//
//   - [HeadingBlock] - headings (levels 1-6)
//   - [ParagraphBlock] - prose paragraphs
//   - [OrderedListBlock], [UnorderedListBlock] - lists
//   - [MathBlock] - display math
//   - [FigureBlock] - images with captions
//   - [TableBlock] - tables with row/column spans
//
// Every block carries a process-unique identifier issued at construction
// time by an [IDGenerator]. Identifiers are never reused and never change
// after creation.
//
// # Inline content
//
// Prose inside headings, paragraphs, list items, and captions is an ordered
// sequence of [Inline] spans: [TextSpan] for plain text and [MathSpan] for
// inline LaTeX. The sequence losslessly represents mixed prose/math text.
//
// # Tables
//
// The [TableBlock] type represents a normalized grid: header rows followed
// by data rows, where every cell's row/column span covers a contiguous,
// non-overlapping rectangle of the logical grid.
package model
