package htmltable

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/tsawler/docnorm/model"
)

// Serialize emits a table as HTML markup: one <tr> per header row followed
// by one <tr> per data row, in stored order. Cells become <th> when tagged
// as headers and <td> otherwise, carrying rowspan/colspan attributes only
// when greater than 1.
func Serialize(t *model.TableBlock) string {
	var sb strings.Builder
	sb.WriteString("<table>")
	writeRows(&sb, t.Headers)
	writeRows(&sb, t.Rows)
	sb.WriteString("</table>")
	return sb.String()
}

func writeRows(sb *strings.Builder, rows []model.TableRow) {
	for _, row := range rows {
		sb.WriteString("<tr>")
		for _, cell := range row.Cells {
			tag := "td"
			if cell.IsHeader {
				tag = "th"
			}
			sb.WriteString("<")
			sb.WriteString(tag)
			rs, cs := cell.Spans()
			if rs > 1 {
				fmt.Fprintf(sb, ` rowspan="%d"`, rs)
			}
			if cs > 1 {
				fmt.Fprintf(sb, ` colspan="%d"`, cs)
			}
			sb.WriteString(">")
			sb.WriteString(ContentText(cell.Content))
			sb.WriteString("</")
			sb.WriteString(tag)
			sb.WriteString(">")
		}
		sb.WriteString("</tr>")
	}
}

// ContentText renders an arbitrary cell value to inline markup. Cells
// normally hold plain strings; legacy editor payloads occasionally deliver
// localized objects instead, resolved by preferring the English variant and
// falling back to Chinese. Anything else degrades to a JSON dump. The
// non-string paths are a defensive guard, not a supported contract.
func ContentText(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case model.LocalizedText:
		if c.EN != "" {
			return c.EN
		}
		return c.ZH
	case map[string]string:
		if text, ok := matchVariant(c); ok {
			return text
		}
	case map[string]any:
		variants := make(map[string]string, len(c))
		for k, val := range c {
			if s, ok := val.(string); ok {
				variants[k] = s
			}
		}
		if text, ok := matchVariant(variants); ok {
			return text
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// preferredLanguages orders the variants the editor understands.
var preferredLanguages = []language.Tag{language.English, language.Chinese}

// matchVariant picks the best language variant from a keyed map using BCP-47
// matching, so regional keys like "en-US" still resolve.
func matchVariant(variants map[string]string) (string, bool) {
	if len(variants) == 0 {
		return "", false
	}

	keys := make([]string, 0, len(variants))
	for k := range variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var tags []language.Tag
	var texts []string
	for _, k := range keys {
		tag, err := language.Parse(k)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		texts = append(texts, variants[k])
	}
	if len(tags) == 0 {
		return "", false
	}

	matcher := language.NewMatcher(tags)
	for _, want := range preferredLanguages {
		if _, i, conf := matcher.Match(want); conf > language.No {
			return texts[i], true
		}
	}
	return "", false
}
