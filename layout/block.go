package layout

import (
	"encoding/json"
	"fmt"
)

// Block type discriminators used by the layout-analysis service.
const (
	TypeText     = "text"
	TypeList     = "list"
	TypeEquation = "equation"
	TypeImage    = "image"
	TypeTable    = "table"
)

// Block is one detected region of a source document, prior to
// classification. The service populates fields per Type; absent fields stay
// zero and every conversion treats them defensively.
type Block struct {
	Type string `json:"type"`

	// Page coordinates reported by the service; carried through for
	// callers, unused by conversion.
	PageIdx int        `json:"page_idx"`
	BBox    [4]float64 `json:"bbox"`

	// Text blocks. TextLevel is a pointer because an absent level and a
	// level of 0 both mean "not a heading" but must stay distinguishable
	// at the boundary.
	Text      string `json:"text"`
	TextLevel *int   `json:"text_level,omitempty"`

	// List blocks.
	ListItems []string `json:"list_items"`
	SubType   string   `json:"sub_type"`

	// Image blocks.
	ImgPath       string   `json:"img_path"`
	ImageCaption  []string `json:"image_caption"`
	ImageFootnote []string `json:"image_footnote"`

	// Table blocks.
	TableBody     string   `json:"table_body"`
	TableCaption  []string `json:"table_caption"`
	TableFootnote []string `json:"table_footnote"`
}

// ParseBlock decodes one layout-service record from its JSON form.
func ParseBlock(data []byte) (*Block, error) {
	var b Block
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decoding layout block: %w", err)
	}
	return &b, nil
}
