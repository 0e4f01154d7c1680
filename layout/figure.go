package layout

import (
	"strings"

	"github.com/tsawler/docnorm/inline"
	"github.com/tsawler/docnorm/model"
)

// relativeAssetPrefix marks image paths the layout service writes relative
// to its own output directory.
const relativeAssetPrefix = "images/"

// CanConvertToFigure reports whether the block is an image block. Captions
// and footnotes are optional.
func (c *BlockConverter) CanConvertToFigure(b *Block) bool {
	return b != nil && b.Type == TypeImage
}

// ToFigure converts an image block into a figure. Caption and footnote
// fragments are joined with single spaces; the joined caption doubles as
// the alt text.
func (c *BlockConverter) ToFigure(b *Block) (*model.FigureBlock, error) {
	if b == nil || b.Type != TypeImage {
		return nil, &ConversionError{Kind: InvalidBlockType, Target: model.BlockFigure, Reason: "not an image block"}
	}

	caption := strings.Join(b.ImageCaption, " ")
	description := strings.Join(b.ImageFootnote, " ")
	return model.NewFigureBlock(
		c.config.IDs,
		c.resolveImagePath(b.ImgPath),
		caption,
		inline.Parse(caption),
		inline.Parse(description),
	), nil
}

// resolveImagePath turns service-relative image paths into full asset
// URLs. Absolute URLs and unrecognized values pass through unchanged.
func (c *BlockConverter) resolveImagePath(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if strings.HasPrefix(path, relativeAssetPrefix) && c.config.AssetHost != "" {
		host := strings.TrimSuffix(c.config.AssetHost, "/")
		if c.config.FileID != "" {
			return host + "/" + c.config.FileID + "/" + path
		}
		return host + "/" + path
	}
	return path
}
