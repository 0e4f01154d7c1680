package htmltable

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/docnorm/model"
)

// parseTable parses markup into per-row cell slices, enforcing the
// validation sequence: a <table> exists, it contains rows, and at least one
// row contains a cell. The first failing check wins.
func parseTable(markup string) ([][]model.TableCell, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		// x/net/html recovers from malformed input; a parse failure means
		// the markup cannot describe a table at all.
		return nil, &ValidationError{Kind: MissingTable}
	}

	table := findElement(doc, "table")
	if table == nil {
		return nil, &ValidationError{Kind: MissingTable}
	}

	trs := rowNodes(table)
	if len(trs) == 0 {
		return nil, &ValidationError{Kind: NoRows}
	}

	rows := make([][]model.TableCell, 0, len(trs))
	hasCell := false
	for _, tr := range trs {
		cells := parseRowCells(tr)
		if len(cells) > 0 {
			hasCell = true
		}
		rows = append(rows, cells)
	}
	if !hasCell {
		return nil, &ValidationError{Kind: NoCells}
	}

	return rows, nil
}

// rowNodes collects the <tr> elements of a table in document order,
// tolerant of missing or present <thead>/<tbody>/<tfoot> wrappers.
func rowNodes(table *html.Node) []*html.Node {
	var trs []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for s := c.FirstChild; s != nil; s = s.NextSibling {
				if s.Type == html.ElementNode && s.Data == "tr" {
					trs = append(trs, s)
				}
			}
		case "tr":
			trs = append(trs, c)
		}
	}
	return trs
}

// parseRowCells parses the <td>/<th> children of a row. Empty cells are
// preserved with empty string content.
func parseRowCells(tr *html.Node) []model.TableCell {
	var cells []model.TableCell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}

		cell := model.TableCell{
			Content:  innerHTML(c),
			IsHeader: c.Data == "th",
			RowSpan:  1,
			ColSpan:  1,
		}
		for _, attr := range c.Attr {
			switch attr.Key {
			case "rowspan":
				fmt.Sscanf(attr.Val, "%d", &cell.RowSpan)
			case "colspan":
				fmt.Sscanf(attr.Val, "%d", &cell.ColSpan)
			}
		}
		if cell.RowSpan < 1 {
			cell.RowSpan = 1
		}
		if cell.ColSpan < 1 {
			cell.ColSpan = 1
		}
		cells = append(cells, cell)
	}
	return cells
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// innerHTML renders a node's children back to markup, preserving inline
// formatting inside cells.
func innerHTML(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&sb, c)
	}
	return strings.TrimSpace(sb.String())
}
