// Package blob stores plate stacks in a compact binary form.
//
// A blob holds one stack: its label and dimensions, and for every plate the
// label, the well groups and each well's values. Decoding yields a stack equal
// to the encoded one.
//
// # Encoding
//
//	enc, err := blob.NewStackEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	)
//	data, err := enc.Encode(stack)
//
// The payload is compressed with S2 unless WithCompression selects another
// codec, and written little-endian unless WithBigEndian is given.
//
// # Decoding
//
//	dec, err := blob.NewStackDecoder(data)
//	info := dec.Info()          // header only
//	labels, err := dec.Labels() // no payload work when a label directory exists
//	p, err := dec.Plate("P1")   // a single plate
//	stack, err := dec.Decode()  // everything
//
// NewStackDecoder checks the header and the plate index. The payload is
// decompressed once, on the first call that needs it, and its CRC-32 is
// compared against the header.
//
// See package section for the byte layout.
package blob
