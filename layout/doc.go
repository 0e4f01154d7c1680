// Package layout classifies and converts layout-analysis blocks into the
// canonical block model.
//
// A [Block] is one detected region of a source document as reported by an
// external layout-analysis service: text, list, equation, image, or table,
// loosely typed at the boundary. [BlockConverter] exposes one
// (CanConvertToX, ToX) pair per conversion target. The predicate is pure
// and never fails; the conversion returns a *ConversionError when invoked
// on a block its predicate would reject. Callers gate every conversion
// behind its predicate, which lets UI code decide whether to offer a
// conversion before attempting it.
package layout
