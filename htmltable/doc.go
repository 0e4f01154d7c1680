// Package htmltable converts HTML table markup to the canonical grid model
// and back.
//
// [Reconstruct] parses markup containing a <table>, resolves overlapping
// row/column spans into a non-overlapping occupancy grid, and detects
// header rows heuristically when no semantic markup is present. [Serialize]
// is its inverse, emitting deterministic <table>/<tr>/<th>/<td> markup.
// [Validate] performs the structural well-formedness check shared by both
// directions.
//
// Both directions operate on in-memory strings only; arbitrary markup
// surrounding the first <table> element is ignored.
package htmltable
