package htmltable

import (
	"errors"
	"testing"

	"github.com/tsawler/docnorm/model"
)

func cellContents(row model.TableRow) []string {
	out := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		s, _ := c.Content.(string)
		out[i] = s
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReconstructSimpleGrid(t *testing.T) {
	markup := `<table>
		<tr><th>Name</th><th>Age</th></tr>
		<tr><td>Ada</td><td>36</td></tr>
		<tr><td>Alan</td><td>41</td></tr>
	</table>`

	table, err := Reconstruct(markup, model.NewSequentialGenerator())
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}

	if len(table.Headers) != 1 {
		t.Fatalf("len(Headers) = %d, want 1", len(table.Headers))
	}
	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}
	if got := cellContents(table.Headers[0]); !equalStrings(got, []string{"Name", "Age"}) {
		t.Errorf("header contents = %v, want [Name Age]", got)
	}
	if got := cellContents(table.Rows[1]); !equalStrings(got, []string{"Alan", "41"}) {
		t.Errorf("row contents = %v, want [Alan 41]", got)
	}
	if table.ID() == "" {
		t.Error("table id is empty")
	}
}

// A vertical span in an earlier row must push later rows' cells rightward:
// the left-to-right skip-occupied rule.
func TestReconstructRowSpanPushesCellsRight(t *testing.T) {
	markup := `<table>
		<tr><th>A</th><th>B</th><th>C</th></tr>
		<tr><td rowspan="2">tall</td><td>b1</td><td>c1</td></tr>
		<tr><td>b2</td><td>c2</td></tr>
	</table>`

	table, err := Reconstruct(markup, model.NewSequentialGenerator())
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}
	if got := cellContents(table.Rows[1]); !equalStrings(got, []string{"b2", "c2"}) {
		t.Errorf("pushed row = %v, want [b2 c2]", got)
	}
	if rs, _ := table.Rows[0].Cells[0].Spans(); rs != 2 {
		t.Errorf("tall cell rowspan = %d, want 2", rs)
	}
}

func TestReconstructColSpan(t *testing.T) {
	markup := `<table>
		<tr><th colspan="2">Pair</th><th>Single</th></tr>
		<tr><td>a</td><td>b</td><td>c</td></tr>
	</table>`

	table, err := Reconstruct(markup, model.NewSequentialGenerator())
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}

	if got := table.ColCount(); got != 3 {
		t.Errorf("ColCount() = %d, want 3", got)
	}
	if _, cs := table.Headers[0].Cells[0].Spans(); cs != 2 {
		t.Errorf("wide cell colspan = %d, want 2", cs)
	}
}

func TestReconstructClampsSpansToGrid(t *testing.T) {
	// The bottom-left cell claims nine rows; only one remains.
	markup := `<table>
		<tr><th>H</th></tr>
		<tr><td rowspan="9">x</td></tr>
	</table>`

	table, err := Reconstruct(markup, model.NewSequentialGenerator())
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	if rs, _ := table.Rows[0].Cells[0].Spans(); rs != 1 {
		t.Errorf("clamped rowspan = %d, want 1", rs)
	}

	// The second row's wide cell is pushed right by a vertical span and
	// runs past the grid edge.
	markup = `<table>
		<tr><td rowspan="2">tall</td><td>b</td></tr>
		<tr><td colspan="2">wide</td></tr>
	</table>`

	table, err = Reconstruct(markup, model.NewSequentialGenerator())
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	all := table.AllRows()
	if len(all) != 2 {
		t.Fatalf("row count = %d, want 2", len(all))
	}
	wide := all[1].Cells[0]
	if _, cs := wide.Spans(); cs != 1 {
		t.Errorf("clamped colspan = %d, want 1", cs)
	}
}

func TestReconstructPreservesEmptyCells(t *testing.T) {
	markup := `<table><tr><td></td><td>B</td></tr><tr><td>C</td><td></td></tr></table>`

	table, err := Reconstruct(markup, model.NewSequentialGenerator())
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}

	all := table.AllRows()
	if len(all[0].Cells) != 2 {
		t.Fatalf("first row cells = %d, want 2", len(all[0].Cells))
	}
	if got := cellContents(all[0]); !equalStrings(got, []string{"", "B"}) {
		t.Errorf("first row = %v, want [ B]", got)
	}
}

func TestReconstructKeepsInlineMarkup(t *testing.T) {
	markup := `<table><tr><td><b>bold</b> text</td><td>plain</td></tr><tr><td>x</td><td>y</td></tr></table>`

	table, err := Reconstruct(markup, model.NewSequentialGenerator())
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	if got := cellContents(table.Headers[0])[0]; got != "<b>bold</b> text" {
		t.Errorf("cell content = %q, want %q", got, "<b>bold</b> text")
	}
}

func TestReconstructIgnoresSurroundingMarkup(t *testing.T) {
	markup := `<div><p>intro</p><table><tr><td>A</td></tr><tr><td>B</td></tr></table><p>outro</p></div>`

	table, err := Reconstruct(markup, model.NewSequentialGenerator())
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	if table.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", table.RowCount())
	}
}

func TestReconstructDropsRowsWithoutOrigins(t *testing.T) {
	// The second physical row's only cell finds every column occupied and
	// is discarded along with the row.
	markup := `<table>
		<tr><td rowspan="2" colspan="2">big</td></tr>
		<tr><td>lost</td></tr>
	</table>`

	table, err := Reconstruct(markup, model.NewSequentialGenerator())
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	if table.RowCount() != 1 {
		t.Errorf("RowCount() = %d, want 1", table.RowCount())
	}
}

func TestReconstructPropagatesValidation(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		kind   ValidationKind
	}{
		{"no table", "<p>x</p>", MissingTable},
		{"no rows", "<table></table>", NoRows},
		{"no cells", "<table><tr></tr></table>", NoCells},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reconstruct(tt.markup, model.NewSequentialGenerator())
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Reconstruct() error = %v, want *ValidationError", err)
			}
			if verr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", verr.Kind, tt.kind)
			}
		})
	}
}

// ============================================================================
// Header detection
// ============================================================================

func TestHeaderDetection(t *testing.T) {
	tests := []struct {
		name        string
		markup      string
		wantHeaders int
		wantRows    int
	}{
		{
			"leading th rows become headers",
			`<table>
				<tr><th>A</th><th>B</th></tr>
				<tr><th>C</th><td>D</td></tr>
				<tr><td>1</td><td>2</td></tr>
			</table>`,
			2, 1,
		},
		{
			"first-row rowspan takes extra header rows",
			`<table>
				<tr><td rowspan="2">Group</td><td>Sub A</td></tr>
				<tr><td>Sub B</td></tr>
				<tr><td>1</td><td>2</td></tr>
			</table>`,
			2, 1,
		},
		{
			"first row defaults to header when data remains",
			`<table><tr><td>A</td></tr><tr><td>1</td></tr></table>`,
			1, 1,
		},
		{
			"single unmarked row has no header",
			`<table><tr><td>only</td></tr></table>`,
			0, 1,
		},
		{
			"explicit thead",
			`<table><thead><tr><th>H</th></tr></thead><tbody><tr><td>1</td></tr></tbody></table>`,
			1, 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Reconstruct(tt.markup, model.NewSequentialGenerator())
			if err != nil {
				t.Fatalf("Reconstruct() error = %v", err)
			}
			if len(table.Headers) != tt.wantHeaders {
				t.Errorf("len(Headers) = %d, want %d", len(table.Headers), tt.wantHeaders)
			}
			if len(table.Rows) != tt.wantRows {
				t.Errorf("len(Rows) = %d, want %d", len(table.Rows), tt.wantRows)
			}
		})
	}
}

// ============================================================================
// Occupancy invariant
// ============================================================================

// checkOccupancy re-expands a reconstructed table onto a fresh grid and
// reports gaps or overlaps. Every grid index must lie in exactly one origin
// cell's span rectangle.
func checkOccupancy(t *testing.T, table *model.TableBlock) {
	t.Helper()

	rows := table.AllRows()
	rowCount := len(rows)
	maxCols := table.ColCount()
	if rowCount == 0 || maxCols == 0 {
		return
	}

	covered := make([][]int, rowCount)
	for i := range covered {
		covered[i] = make([]int, maxCols)
	}

	for r, row := range rows {
		col := 0
		for _, cell := range row.Cells {
			for col < maxCols && covered[r][col] > 0 {
				col++
			}
			if col >= maxCols {
				t.Errorf("row %d: cell overflows the grid", r)
				break
			}
			rs, cs := cell.Spans()
			for dr := 0; dr < rs; dr++ {
				for dc := 0; dc < cs; dc++ {
					covered[r+dr][col+dc]++
				}
			}
			col += cs
		}
	}

	for r := range covered {
		for c := range covered[r] {
			if covered[r][c] != 1 {
				t.Errorf("grid[%d][%d] covered %d times, want exactly 1", r, c, covered[r][c])
			}
		}
	}
}

func TestReconstructOccupancyInvariant(t *testing.T) {
	markups := []string{
		`<table><tr><td>A</td></tr></table>`,
		`<table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td>2</td></tr></table>`,
		`<table>
			<tr><td rowspan="2">a</td><td>b</td><td>c</td></tr>
			<tr><td colspan="2">d</td></tr>
			<tr><td>e</td><td>f</td><td>g</td></tr>
		</table>`,
		`<table>
			<tr><th rowspan="2">x</th><th colspan="2">y</th></tr>
			<tr><td>p</td><td>q</td></tr>
			<tr><td>1</td><td>2</td><td>3</td></tr>
		</table>`,
	}

	for i, markup := range markups {
		table, err := Reconstruct(markup, model.NewSequentialGenerator())
		if err != nil {
			t.Fatalf("case %d: Reconstruct() error = %v", i, err)
		}
		checkOccupancy(t, table)
	}
}
