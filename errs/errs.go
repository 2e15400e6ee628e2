// Package errs defines the sentinel errors shared by the microplate packages.
//
// Errors fall into a small taxonomy. Specific errors wrap one of the category
// errors, so callers can test either the precise condition or its category:
//
//	if errors.Is(err, errs.ErrInvalidArgument) { ... } // any invalid input
//	if errors.Is(err, errs.ErrOutOfBounds) { ... }     // only plate bounds
package errs

import (
	"errors"
	"fmt"
)

// Categories.
var (
	// ErrInvalidArgument reports malformed or out-of-range input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange reports an index or index range outside a sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotFound reports a missing well, plate or group.
	ErrNotFound = errors.New("not found")
	// ErrTypeMismatch reports a comparison between incompatible types.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Model errors.
var (
	ErrInvalidWellID      = fmt.Errorf("%w: invalid well id", ErrInvalidArgument)
	ErrInvalidRow         = fmt.Errorf("%w: invalid row", ErrInvalidArgument)
	ErrInvalidColumn      = fmt.Errorf("%w: invalid column", ErrInvalidArgument)
	ErrInvalidDimensions  = fmt.Errorf("%w: invalid plate dimensions", ErrInvalidArgument)
	ErrInvalidPlateType   = fmt.Errorf("%w: invalid plate type", ErrInvalidArgument)
	ErrOutOfBounds        = fmt.Errorf("%w: well outside plate bounds", ErrInvalidArgument)
	ErrDuplicate          = fmt.Errorf("%w: duplicate element", ErrInvalidArgument)
	ErrDimensionMismatch  = fmt.Errorf("%w: plate dimensions do not match stack", ErrInvalidArgument)
	ErrOverflow           = fmt.Errorf("%w: value overflows target type", ErrInvalidArgument)
	ErrInvalidRange       = fmt.Errorf("%w: invalid range", ErrInvalidArgument)
	ErrWellNotFound       = fmt.Errorf("%w: well", ErrNotFound)
	ErrPlateNotFound      = fmt.Errorf("%w: plate", ErrNotFound)
	ErrGroupNotFound      = fmt.Errorf("%w: group", ErrNotFound)
	ErrEmptyDelimiter     = fmt.Errorf("%w: empty delimiter", ErrInvalidArgument)
	ErrUnsupportedFeature = errors.New("unsupported feature")
)

// Binary format errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid header size")
	ErrInvalidMagic        = errors.New("invalid magic number")
	ErrInvalidHeaderFlags  = errors.New("invalid header flags")
	ErrInvalidIndexEntry   = errors.New("invalid index entry")
	ErrChecksumMismatch    = errors.New("payload checksum mismatch")
	ErrTruncatedPayload    = errors.New("truncated payload")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrTextTooLong         = errors.New("text exceeds maximum length")
	ErrUnsupportedCompress = errors.New("unsupported compression type")
	ErrHashMismatch        = errors.New("label hash mismatch")
)

// IndexOutOfRange builds an ErrIndexOutOfRange error naming the offending bounds.
func IndexOutOfRange(begin, end, size int) error {
	return fmt.Errorf("%w: [%d, %d) for size %d", ErrIndexOutOfRange, begin, end, size)
}
