// Package hash computes the xxHash64 identities used for well, plate and label
// hashing.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Position hashes a (row, column) coordinate. Equal coordinates always yield
// equal hashes, independent of any data attached to them.
func Position(row, column int) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(row))    //nolint:gosec
	binary.LittleEndian.PutUint64(buf[8:16], uint64(column)) //nolint:gosec

	return xxhash.Sum64(buf[:])
}

// Digest accumulates a hash over a sequence of fields.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// String mixes a length-prefixed string into the digest.
func (d *Digest) String(s string) *Digest {
	d.Int(len(s))
	_, _ = d.d.WriteString(s)

	return d
}

// Int mixes an integer into the digest.
func (d *Digest) Int(v int) *Digest {
	return d.Uint64(uint64(v)) //nolint:gosec
}

// Uint64 mixes a 64-bit value into the digest.
func (d *Digest) Uint64(v uint64) *Digest {
	binary.LittleEndian.PutUint64(d.buf[:], v)
	_, _ = d.d.Write(d.buf[:])

	return d
}

// Sum64 returns the current hash value.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
