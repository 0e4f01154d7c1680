package layout

import (
	"fmt"

	"github.com/tsawler/docnorm/model"
)

// ConversionKind identifies why a conversion was rejected.
type ConversionKind int

const (
	// InvalidBlockType means the block's type does not match the target.
	InvalidBlockType ConversionKind = iota
	// MissingRequiredField means a field the target needs is absent.
	MissingRequiredField
	// EmptyContent means a required field is present but empty.
	EmptyContent
)

func (k ConversionKind) String() string {
	switch k {
	case InvalidBlockType:
		return "invalid-block-type"
	case MissingRequiredField:
		return "missing-required-field"
	case EmptyContent:
		return "empty-content"
	default:
		return "conversion-error"
	}
}

// ConversionError reports a conversion invoked on a block its capability
// predicate would have rejected. This is a contract violation at the call
// site, recoverable there; it is never surfaced to end users directly.
type ConversionError struct {
	Kind   ConversionKind
	Target model.BlockType
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert block to %s: %s (%s)", e.Target, e.Reason, e.Kind)
}
