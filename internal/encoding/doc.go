// Package encoding implements the plate label directory of the stack blob.
//
// The index of a stack blob identifies plates by the xxHash64 of their
// labels. When two labels hash alike, or when a label repeats, the encoder
// also writes the labels themselves so decoders can tell plates apart and
// verify the index.
package encoding
