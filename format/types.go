package format

import "fmt"

type (
	PlateType       uint8
	DataType        uint8
	CompressionType uint8
)

const (
	PlateCustom   PlateType = 0x0 // PlateCustom is any non-standard rows x columns layout.
	Plate6Well    PlateType = 0x1 // Plate6Well is a 2x3 plate.
	Plate12Well   PlateType = 0x2 // Plate12Well is a 3x4 plate.
	Plate24Well   PlateType = 0x3 // Plate24Well is a 4x6 plate.
	Plate48Well   PlateType = 0x4 // Plate48Well is a 6x8 plate.
	Plate96Well   PlateType = 0x5 // Plate96Well is an 8x12 plate.
	Plate384Well  PlateType = 0x6 // Plate384Well is a 16x24 plate.
	Plate1536Well PlateType = 0x7 // Plate1536Well is a 32x48 plate.

	DataTypeDouble DataType = 0x1 // DataTypeDouble tags wells backed by float64 values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

type plateLayout struct {
	rows, columns int
	descriptor    string
}

var presetLayouts = map[PlateType]plateLayout{
	Plate6Well:    {2, 3, "6-Well"},
	Plate12Well:   {3, 4, "12-Well"},
	Plate24Well:   {4, 6, "24-Well"},
	Plate48Well:   {6, 8, "48-Well"},
	Plate96Well:   {8, 12, "96-Well"},
	Plate384Well:  {16, 24, "384-Well"},
	Plate1536Well: {32, 48, "1536-Well"},
}

// PlateTypes returns the predefined plate types in ascending size.
func PlateTypes() []PlateType {
	return []PlateType{Plate6Well, Plate12Well, Plate24Well, Plate48Well, Plate96Well, Plate384Well, Plate1536Well}
}

// PlateTypeOf classifies a rows x columns layout. Layouts that do not match a
// predefined size are PlateCustom.
func PlateTypeOf(rows, columns int) PlateType {
	for t, l := range presetLayouts {
		if l.rows == rows && l.columns == columns {
			return t
		}
	}

	return PlateCustom
}

// Descriptor returns the human readable label for a rows x columns layout.
func Descriptor(rows, columns int) string {
	if l, ok := presetLayouts[PlateTypeOf(rows, columns)]; ok {
		return l.descriptor
	}

	return fmt.Sprintf("Custom Plate: %dx%d", rows, columns)
}

// Dimensions returns the rows and columns of a predefined plate type.
// The second result is false for PlateCustom and unknown values.
func (p PlateType) Dimensions() (rows, columns int, ok bool) {
	l, ok := presetLayouts[p]
	if !ok {
		return 0, 0, false
	}

	return l.rows, l.columns, true
}

// Wells returns the number of wells of a predefined plate type, or zero.
func (p PlateType) Wells() int {
	l, ok := presetLayouts[p]
	if !ok {
		return 0
	}

	return l.rows * l.columns
}

// IsValid reports whether p is one of the declared plate type values.
func (p PlateType) IsValid() bool {
	return p == PlateCustom || presetLayouts[p] != (plateLayout{})
}

func (p PlateType) String() string {
	if l, ok := presetLayouts[p]; ok {
		return l.descriptor
	}
	if p == PlateCustom {
		return "Custom"
	}

	return "Unknown"
}

func (d DataType) String() string {
	switch d {
	case DataTypeDouble:
		return "Double"
	default:
		return "Unknown"
	}
}

// ParseDataType maps a data type name back to its tag.
func ParseDataType(s string) (DataType, bool) {
	if s == DataTypeDouble.String() {
		return DataTypeDouble, true
	}

	return 0, false
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
