package model

// LocalizedText holds a text value in the languages the editor tracks.
type LocalizedText struct {
	EN string
	ZH string
}

// IsZero reports whether no language variant is set.
func (lt LocalizedText) IsZero() bool {
	return lt.EN == "" && lt.ZH == ""
}

// TableCell represents a table cell
type TableCell struct {
	// Content is normally the cell's raw inline markup string. Legacy
	// editor payloads occasionally deliver a LocalizedText or a map of
	// language variants instead; the serializer resolves those on export.
	Content  any
	RowSpan  int // 0 means 1
	ColSpan  int // 0 means 1
	IsHeader bool
}

// Spans returns the cell's row and column spans, normalizing absent or
// invalid values to 1.
func (c TableCell) Spans() (rows, cols int) {
	rows, cols = c.RowSpan, c.ColSpan
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return rows, cols
}

// TableRow represents one row of cells in document order
type TableRow struct {
	Cells []TableCell
}

// ColSpanSum returns the number of logical grid columns the row occupies
// once its cells' column spans are expanded.
func (r TableRow) ColSpanSum() int {
	sum := 0
	for _, c := range r.Cells {
		_, cols := c.Spans()
		sum += cols
	}
	return sum
}

// TableBlock represents a normalized table: header rows followed by data
// rows. Every row, expanded through its cells' spans, occupies a
// contiguous, non-overlapping region of a logical grid ColCount columns
// wide.
type TableBlock struct {
	id      string
	Headers []TableRow
	Rows    []TableRow
	Caption LocalizedText
}

// NewTableBlock creates a table with a fresh identifier.
func NewTableBlock(gen IDGenerator, headers, rows []TableRow) *TableBlock {
	return &TableBlock{id: gen.NextID("table"), Headers: headers, Rows: rows}
}

func (t *TableBlock) ID() string      { return t.id }
func (t *TableBlock) Type() BlockType { return BlockTable }

// RowCount returns the total number of rows, headers included.
func (t *TableBlock) RowCount() int {
	return len(t.Headers) + len(t.Rows)
}

// ColCount returns the logical grid width: the maximum column-span sum over
// all rows.
func (t *TableBlock) ColCount() int {
	max := 0
	for _, row := range t.Headers {
		if n := row.ColSpanSum(); n > max {
			max = n
		}
	}
	for _, row := range t.Rows {
		if n := row.ColSpanSum(); n > max {
			max = n
		}
	}
	return max
}

// AllRows returns headers followed by data rows in stored order.
func (t *TableBlock) AllRows() []TableRow {
	all := make([]TableRow, 0, len(t.Headers)+len(t.Rows))
	all = append(all, t.Headers...)
	all = append(all, t.Rows...)
	return all
}
