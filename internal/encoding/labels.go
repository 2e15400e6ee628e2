package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/microplate/endian"
	"github.com/arloliu/microplate/errs"
)

// EncodeLabels encodes plate labels into the label directory of a stack blob.
//
// Format: [Count: uint32] [Len1: uint16][Label1] [Len2: uint16][Label2] ...
func EncodeLabels(labels []string, engine endian.EndianEngine) ([]byte, error) {
	if len(labels) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d labels", errs.ErrInvalidPayload, len(labels))
	}

	totalSize := 4
	for _, label := range labels {
		if len(label) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: label of %d bytes", errs.ErrTextTooLong, len(label))
		}
		totalSize += 2 + len(label)
	}

	buf := make([]byte, 0, totalSize)
	buf = engine.AppendUint32(buf, uint32(len(labels))) //nolint: gosec
	for _, label := range labels {
		buf = engine.AppendUint16(buf, uint16(len(label))) //nolint: gosec
		buf = append(buf, label...)
	}

	return buf, nil
}

// DecodeLabels decodes a label directory and returns the labels with the
// number of bytes consumed.
func DecodeLabels(data []byte, engine endian.EndianEngine) ([]string, int, error) {
	if len(data) < 4 {
		return nil, 0, fmt.Errorf("%w: label count needs 4 bytes, have %d", errs.ErrTruncatedPayload, len(data))
	}

	count := int(engine.Uint32(data))
	offset := 4
	// every label takes at least its 2-byte length
	if count > (len(data)-offset)/2 {
		return nil, 0, fmt.Errorf("%w: %d labels in %d bytes", errs.ErrTruncatedPayload, count, len(data))
	}

	labels := make([]string, count)
	for i := range count {
		if len(data) < offset+2 {
			return nil, 0, fmt.Errorf("%w: length of label %d at offset %d", errs.ErrTruncatedPayload, i, offset)
		}
		n := int(engine.Uint16(data[offset:]))
		offset += 2

		if len(data) < offset+n {
			return nil, 0, fmt.Errorf("%w: label %d needs %d bytes at offset %d", errs.ErrTruncatedPayload, i, n, offset)
		}
		labels[i] = string(data[offset : offset+n])
		offset += n
	}

	return labels, offset, nil
}

// VerifyLabelHashes checks that hashFunc(labels[i]) equals hashes[i] for
// every entry.
func VerifyLabelHashes(labels []string, hashes []uint64, hashFunc func(string) uint64) error {
	if len(labels) != len(hashes) {
		return fmt.Errorf("%w: %d labels for %d index entries", errs.ErrHashMismatch, len(labels), len(hashes))
	}

	for i, label := range labels {
		if got := hashFunc(label); got != hashes[i] {
			return fmt.Errorf("%w: label %q at index %d: expected 0x%016x, got 0x%016x",
				errs.ErrHashMismatch, label, i, hashes[i], got)
		}
	}

	return nil
}
