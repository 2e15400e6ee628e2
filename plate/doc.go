// Package plate models microplate experiments: wells addressed by row and
// column, ordered sets of wells, bounded plates with named well groups, and
// stacks of equally sized plates.
//
// # Addressing
//
// Rows are zero based and spelled with letters in bijective base 26: row 0 is
// "A", row 25 is "Z", row 26 is "AA". Columns are one based. A well ID joins
// both, so "C7" is row 2, column 7.
//
// # Ordering
//
// Wells sort by row, then column. Sets, plates and stacks keep their elements
// sorted and unique under that order, which makes range queries such as
// HeadSet and SubSetAt cheap.
//
// # Batch operations
//
// Add, Remove, Replace and Retain accept many elements at once. Every element
// is attempted; a failing element is logged through the container's
// *slog.Logger and the call returns false once all elements were processed.
//
// # Concurrency
//
// None of the containers are safe for concurrent use. Callers sharing a
// WellSet, Plate or Stack between goroutines must synchronize access.
package plate
