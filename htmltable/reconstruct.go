package htmltable

import (
	"github.com/tsawler/docnorm/model"
)

// gridSlot is one position of the logical occupancy grid. A slot is either
// empty, covered by some cell's span, or the origin (top-left) of a span,
// in which case it holds the cell itself.
type gridSlot struct {
	occupied bool
	origin   *model.TableCell
}

// Reconstruct parses table markup and resolves its row/column spans into a
// normalized grid model. It validates the markup first and returns a
// *ValidationError when the string does not describe a usable table.
//
// Cells are placed row by row, left to right, skipping grid columns already
// claimed by spans from earlier rows; this skip-occupied rule is what lets
// a vertical span push later cells rightward. Spans reaching past the grid
// edge are clamped rather than rejected. Header rows are then detected
// heuristically (see splitHeaders).
func Reconstruct(markup string, gen model.IDGenerator) (*model.TableBlock, error) {
	parsed, err := parseTable(markup)
	if err != nil {
		return nil, err
	}

	rows := placeCells(parsed)
	headers, data := splitHeaders(rows)
	return model.NewTableBlock(gen, headers, data), nil
}

// placeCells expands parsed rows onto an occupancy grid and re-derives the
// output rows from the origin slots. Rows that end up owning no origin are
// dropped.
func placeCells(parsed [][]model.TableCell) []model.TableRow {
	rowCount := len(parsed)
	maxCols := 0
	for _, row := range parsed {
		sum := 0
		for _, cell := range row {
			_, cols := cell.Spans()
			sum += cols
		}
		if sum > maxCols {
			maxCols = sum
		}
	}
	if rowCount == 0 || maxCols == 0 {
		return nil
	}

	grid := make([][]gridSlot, rowCount)
	for i := range grid {
		grid[i] = make([]gridSlot, maxCols)
	}

	for r, row := range parsed {
		col := 0
		for i := range row {
			// skip columns claimed by spans from earlier rows
			for col < maxCols && grid[r][col].occupied {
				col++
			}
			if col >= maxCols {
				break
			}

			cell := row[i]
			rs, cs := cell.Spans()
			// clamp spans to the remaining grid bounds
			if r+rs > rowCount {
				rs = rowCount - r
			}
			if col+cs > maxCols {
				cs = maxCols - col
			}
			cell.RowSpan, cell.ColSpan = rs, cs

			for dr := 0; dr < rs; dr++ {
				for dc := 0; dc < cs; dc++ {
					grid[r+dr][col+dc].occupied = true
				}
			}
			grid[r][col].origin = &cell
			col += cs
		}
	}

	out := make([]model.TableRow, 0, rowCount)
	for r := 0; r < rowCount; r++ {
		var cells []model.TableCell
		for c := 0; c < maxCols; c++ {
			if grid[r][c].origin != nil {
				cells = append(cells, *grid[r][c].origin)
			}
		}
		if len(cells) > 0 {
			out = append(out, model.TableRow{Cells: cells})
		}
	}
	return out
}

// splitHeaders separates leading header rows from data rows. No explicit
// <thead> is assumed; detection runs in priority order:
//
//  1. Leading contiguous rows containing at least one header-tagged cell
//     all become headers.
//  2. Otherwise, when the first row's maximum rowspan v exceeds 1, the
//     first v rows become headers (merged header cells spanning into a
//     second physical row carry no <th> tag in much real-world markup).
//  3. Otherwise the first row is the single header row, provided at least
//     one data row remains.
//  4. A single unmarked row yields no header at all.
func splitHeaders(rows []model.TableRow) (headers, data []model.TableRow) {
	if len(rows) == 0 {
		return nil, nil
	}

	n := 0
	for n < len(rows) && rowHasHeaderCell(rows[n]) {
		n++
	}
	if n > 0 {
		return rows[:n], rows[n:]
	}

	if v := maxRowSpan(rows[0]); v > 1 && v <= len(rows) {
		return rows[:v], rows[v:]
	}

	if len(rows) > 1 {
		return rows[:1], rows[1:]
	}
	return nil, rows
}

func rowHasHeaderCell(row model.TableRow) bool {
	for _, cell := range row.Cells {
		if cell.IsHeader {
			return true
		}
	}
	return false
}

func maxRowSpan(row model.TableRow) int {
	max := 1
	for _, cell := range row.Cells {
		rows, _ := cell.Spans()
		if rows > max {
			max = rows
		}
	}
	return max
}
