package plate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/arloliu/microplate/errs"
)

// DefaultListDelimiter separates well IDs in list strings such as "A1,A2,B3".
const DefaultListDelimiter = ","

const rowRadix = 26

var (
	wellIDPattern = regexp.MustCompile(`^[A-Z]+[0-9]+$`)
	lettersOnly   = regexp.MustCompile(`^[A-Z]+$`)
)

// EncodeRow converts a zero-based row number into its letter form.
//
// The encoding is bijective base-26 without a zero digit, the scheme used for
// spreadsheet columns: 0 is "A", 25 is "Z", 26 is "AA", 701 is "ZZ" and 702 is
// "AAA". Negative rows encode to the empty string.
func EncodeRow(row int) string {
	if row < 0 {
		return ""
	}

	var buf [16]byte
	pos := len(buf)
	for row >= 0 {
		pos--
		buf[pos] = byte('A' + row%rowRadix)
		row = row/rowRadix - 1
	}

	return string(buf[pos:])
}

// DecodeRow converts row letters back into the zero-based row number.
// Lower case letters are accepted.
func DecodeRow(letters string) (int, error) {
	up := strings.ToUpper(letters)
	if !lettersOnly.MatchString(up) {
		return 0, fmt.Errorf("%w: %q is not a row letter sequence", errs.ErrInvalidRow, letters)
	}

	// Horner form of the positional sum: every letter left of the last one
	// carries an implicit +1 because the scheme has no zero digit.
	n := 0
	for i := 0; i < len(up); i++ {
		if n > (math.MaxInt-rowRadix)/rowRadix {
			return 0, fmt.Errorf("%w: row %q overflows", errs.ErrInvalidRow, letters)
		}
		n = n*rowRadix + int(up[i]-'A') + 1
	}

	return n - 1, nil
}

// ParseRow parses a row given either as a non-negative integer literal or as
// row letters.
func ParseRow(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%w: row %d must be non-negative", errs.ErrInvalidRow, n)
		}

		return n, nil
	}

	return DecodeRow(s)
}

// ParseColumn parses a column given as a positive integer literal.
func ParseColumn(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: column %q is not an integer", errs.ErrInvalidColumn, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: column %d must be positive", errs.ErrInvalidColumn, n)
	}

	return n, nil
}

// splitWellID validates a combined well ID such as "B12" or "aa3" and returns
// its row and column.
func splitWellID(id string) (int, int, error) {
	norm := strings.ToUpper(strings.TrimSpace(id))
	if !wellIDPattern.MatchString(norm) {
		return 0, 0, fmt.Errorf("%w: %q", errs.ErrInvalidWellID, id)
	}

	split := strings.IndexFunc(norm, func(r rune) bool { return r >= '0' && r <= '9' })
	row, err := DecodeRow(norm[:split])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %w", errs.ErrInvalidWellID, id, err)
	}
	column, err := ParseColumn(norm[split:])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %w", errs.ErrInvalidWellID, id, err)
	}

	return row, column, nil
}

// splitList splits a delimited ID list, dropping blank entries.
func splitList(ids, delimiter string) ([]string, error) {
	if delimiter == "" {
		return nil, errs.ErrEmptyDelimiter
	}

	parts := strings.Split(ids, delimiter)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out, nil
}

func validatePosition(row, column int) error {
	if row < 0 {
		return fmt.Errorf("%w: row %d must be non-negative", errs.ErrInvalidRow, row)
	}
	if column <= 0 {
		return fmt.Errorf("%w: column %d must be positive", errs.ErrInvalidColumn, column)
	}

	return nil
}
