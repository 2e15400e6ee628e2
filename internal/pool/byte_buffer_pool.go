package pool

import (
	"slices"
	"sync"
)

// Initial and retained capacities. A 96-well plate with a handful of reads
// per well encodes to a few KiB; a stack to tens or hundreds of KiB.
const (
	PlateBufferSize   = 16 << 10
	PlateBufferRetain = 256 << 10
	StackBufferSize   = 256 << 10
	StackBufferRetain = 8 << 20
)

// ByteBuffer is an append-only byte slice handed out by a ByteBufferPool.
type ByteBuffer struct {
	B []byte
}

// Bytes returns the written bytes.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of written bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer and keeps its storage.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Reserve makes room for n more bytes without changing the length.
func (bb *ByteBuffer) Reserve(n int) {
	bb.B = slices.Grow(bb.B, n)
}

// Extend lengthens the buffer by n bytes and returns them for the caller to
// fill in place.
func (bb *ByteBuffer) Extend(n int) []byte {
	start := len(bb.B)
	bb.B = slices.Grow(bb.B, n)[:start+n]

	return bb.B[start:]
}

// ByteBufferPool recycles buffers. Buffers grown beyond retain bytes are
// left to the garbage collector.
type ByteBufferPool struct {
	pool   sync.Pool
	retain int
}

// NewByteBufferPool creates a pool whose fresh buffers have size bytes of
// capacity.
func NewByteBufferPool(size, retain int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return &ByteBuffer{B: make([]byte, 0, size)} },
		},
		retain: retain,
	}
}

// Get returns an empty buffer.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put hands bb back for reuse.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil || (p.retain > 0 && cap(bb.B) > p.retain) {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var (
	platePool = NewByteBufferPool(PlateBufferSize, PlateBufferRetain)
	stackPool = NewByteBufferPool(StackBufferSize, StackBufferRetain)
)

// GetPlateBuffer returns a buffer sized for one plate record or column.
func GetPlateBuffer() *ByteBuffer { return platePool.Get() }

// PutPlateBuffer recycles a buffer from GetPlateBuffer.
func PutPlateBuffer(bb *ByteBuffer) { platePool.Put(bb) }

// GetStackBuffer returns a buffer sized for a whole stack blob.
func GetStackBuffer() *ByteBuffer { return stackPool.Get() }

// PutStackBuffer recycles a buffer from GetStackBuffer.
func PutStackBuffer(bb *ByteBuffer) { stackPool.Put(bb) }
