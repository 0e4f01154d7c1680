package layout

import (
	"errors"
	"testing"

	"github.com/tsawler/docnorm/model"
)

func TestToTableReconstructsBody(t *testing.T) {
	c := testConverter()
	table, err := c.ToTable(&Block{
		Type:         TypeTable,
		TableBody:    `<table><tr><th>A</th></tr><tr><td>1</td></tr></table>`,
		TableCaption: []string{"Table 2:", "results"},
	})
	if err != nil {
		t.Fatalf("ToTable() error = %v", err)
	}

	if len(table.Headers) != 1 || len(table.Rows) != 1 {
		t.Errorf("shape = (%d headers, %d rows), want (1, 1)", len(table.Headers), len(table.Rows))
	}

	want := model.LocalizedText{EN: "Table 2: results", ZH: "Table 2: results"}
	if table.Caption != want {
		t.Errorf("Caption = %+v, want %+v", table.Caption, want)
	}
}

// A mangled fragment still lands in the document as an editable 1x1
// placeholder instead of failing the import.
func TestToTableFallsBackToPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"no table element", "<p>not a table</p>"},
		{"table without rows", "<table></table>"},
	}

	c := testConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := c.ToTable(&Block{Type: TypeTable, TableBody: tt.body})
			if err != nil {
				t.Fatalf("ToTable() error = %v", err)
			}
			if len(table.Headers) != 0 || len(table.Rows) != 1 || len(table.Rows[0].Cells) != 1 {
				t.Errorf("placeholder shape = (%d headers, %d rows), want 1x1 data cell", len(table.Headers), len(table.Rows))
			}
			if content, _ := table.Rows[0].Cells[0].Content.(string); content != "" {
				t.Errorf("placeholder content = %q, want empty", content)
			}
		})
	}
}

func TestToTableErrors(t *testing.T) {
	c := testConverter()
	_, err := c.ToTable(&Block{Type: TypeText})
	var cerr *ConversionError
	if !errors.As(err, &cerr) || cerr.Kind != InvalidBlockType {
		t.Errorf("ToTable(text) error = %v, want InvalidBlockType", err)
	}
}
