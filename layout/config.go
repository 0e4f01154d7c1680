package layout

import (
	"regexp"

	"github.com/tsawler/docnorm/model"
)

// DefaultHeadingLevel is the level used when a text block's level is
// missing from the 1-6 range.
const DefaultHeadingLevel = 2

// Config holds conversion settings.
type Config struct {
	// IDs issues identifiers for produced blocks.
	IDs model.IDGenerator

	// AssetHost and FileID combine with service-relative image paths to
	// form full asset URLs. When AssetHost is empty, relative paths pass
	// through unchanged.
	AssetHost string
	FileID    string

	// OrderedPrefixes are the numeric list-marker patterns: "1.", "(1)",
	// and "1)".
	OrderedPrefixes []*regexp.Regexp

	// BulletPrefix matches a leading bullet glyph followed by whitespace.
	BulletPrefix *regexp.Regexp
}

// DefaultConfig returns the default conversion settings backed by a
// UUID identifier generator.
func DefaultConfig() Config {
	return Config{
		IDs: model.NewUUIDGenerator(),
		OrderedPrefixes: []*regexp.Regexp{
			regexp.MustCompile(`^\d+\.`),
			regexp.MustCompile(`^\(\d+\)`),
			regexp.MustCompile(`^\d+\)`),
		},
		BulletPrefix: regexp.MustCompile(`^[•\-\*·◦‣⁃]\s`),
	}
}

// BlockConverter converts layout-analysis blocks into canonical blocks.
type BlockConverter struct {
	config Config
}

// NewBlockConverter creates a converter with default configuration.
func NewBlockConverter() *BlockConverter {
	return &BlockConverter{config: DefaultConfig()}
}

// NewBlockConverterWithConfig creates a converter with custom configuration.
// Zero-value config fields fall back to their defaults.
func NewBlockConverterWithConfig(config Config) *BlockConverter {
	def := DefaultConfig()
	if config.IDs == nil {
		config.IDs = def.IDs
	}
	if config.OrderedPrefixes == nil {
		config.OrderedPrefixes = def.OrderedPrefixes
	}
	if config.BulletPrefix == nil {
		config.BulletPrefix = def.BulletPrefix
	}
	return &BlockConverter{config: config}
}
