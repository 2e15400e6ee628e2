// Package section defines the fixed-size binary structures of the stack blob
// format: the header, its packed flag, and the plate index entries.
//
// # Blob Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes)                                       │
//	│  - Flag (4 bytes): options, data type, compression      │
//	│  - Rows, Columns, PlateCount (12 bytes)                 │
//	│  - IndexOffset, PayloadOffset (8 bytes)                 │
//	│  - PayloadLength, Checksum (8 bytes)                    │
//	├─────────────────────────────────────────────────────────┤
//	│ Index (PlateCount × 16 bytes)                           │
//	│  - LabelHash, Offset, Length per plate                  │
//	├─────────────────────────────────────────────────────────┤
//	│ Label Directory (optional)                              │
//	│  - Present when plate labels collide or repeat          │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (compressed)                                    │
//	│  - Stack label, then one record per plate               │
//	└─────────────────────────────────────────────────────────┘
//
// The Options field of the flag is always stored little-endian so a reader
// can learn the byte order before decoding anything else. Every other
// multi-byte field uses the byte order the flag selects.
//
// Index offsets point into the uncompressed payload, so a reader decompresses
// the payload once and slices each plate record out of it.
package section
