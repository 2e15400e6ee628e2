package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/plate"
)

// Directive tags open the non-well lines of tabular documents.
const (
	tagWellSet = "#wellset"
	tagPlate   = "#plate"
	tagGroup   = "#group"
	tagStack   = "#stack"
)

// Tabular encodes containers as delimiter-separated lines.
//
// A document starts with a directive line naming the container:
//
//	#stack   <label> <rows> <columns>
//	#plate   <label> <rows> <columns>
//	#group   <label> <id>...
//	#wellset <label>
//
// Every other line is a well: its ID followed by its values. Group and well
// lines belong to the nearest #plate line above them.
type Tabular struct {
	cfg *config
}

// NewTabular creates a tabular format, tab-delimited unless WithDelimiter
// says otherwise.
func NewTabular(opts ...Option) (*Tabular, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Tabular{cfg: cfg}, nil
}

// Delimiter returns the field delimiter.
func (f *Tabular) Delimiter() string {
	return string(f.cfg.delimiter)
}

// EncodeWellSet writes a #wellset line followed by one line per well.
func (f *Tabular) EncodeWellSet(w io.Writer, s *plate.WellSet) error {
	if s == nil {
		return fmt.Errorf("%w: nil well set", errs.ErrInvalidArgument)
	}

	cw := f.writer(w)
	doc := newWellSetDoc(s)
	_ = cw.Write([]string{tagWellSet, doc.Label})
	writeWells(cw, doc.Wells)
	cw.Flush()

	return cw.Error()
}

// DecodeWellSet reads a well set written by EncodeWellSet.
func (f *Tabular) DecodeWellSet(r io.Reader) (*plate.WellSet, error) {
	records, err := f.records(r)
	if err != nil {
		return nil, err
	}
	head, err := expect(records, tagWellSet, 2)
	if err != nil {
		return nil, err
	}

	doc := wellSetDoc{Label: head[1]}
	for _, rec := range records[1:] {
		if isDirective(rec) {
			return nil, fmt.Errorf("%w: unexpected %s line in well set", errs.ErrInvalidPayload, rec[0])
		}
		wd, err := parseWell(rec)
		if err != nil {
			return nil, err
		}
		doc.Wells = append(doc.Wells, wd)
	}

	return doc.wellSet(f.cfg)
}

// EncodePlate writes a #plate line, its #group lines and one line per well.
func (f *Tabular) EncodePlate(w io.Writer, p *plate.Plate) error {
	if p == nil {
		return fmt.Errorf("%w: nil plate", errs.ErrInvalidArgument)
	}

	cw := f.writer(w)
	writePlate(cw, newPlateDoc(p))
	cw.Flush()

	return cw.Error()
}

// DecodePlate reads a plate written by EncodePlate.
func (f *Tabular) DecodePlate(r io.Reader) (*plate.Plate, error) {
	records, err := f.records(r)
	if err != nil {
		return nil, err
	}
	if _, err := expect(records, tagPlate, 4); err != nil {
		return nil, err
	}

	plates, err := parsePlates(records)
	if err != nil {
		return nil, err
	}
	if len(plates) != 1 {
		return nil, fmt.Errorf("%w: %d plates in plate document", errs.ErrInvalidPayload, len(plates))
	}

	return plates[0].plate(f.cfg)
}

// EncodeStack writes a #stack line followed by every plate.
func (f *Tabular) EncodeStack(w io.Writer, s *plate.Stack) error {
	if s == nil {
		return fmt.Errorf("%w: nil stack", errs.ErrInvalidArgument)
	}

	cw := f.writer(w)
	doc := newStackDoc(s)
	_ = cw.Write([]string{tagStack, doc.Label, strconv.Itoa(doc.Rows), strconv.Itoa(doc.Columns)})
	for _, pd := range doc.Plates {
		writePlate(cw, pd)
	}
	cw.Flush()

	return cw.Error()
}

// DecodeStack reads a stack written by EncodeStack.
func (f *Tabular) DecodeStack(r io.Reader) (*plate.Stack, error) {
	records, err := f.records(r)
	if err != nil {
		return nil, err
	}
	head, err := expect(records, tagStack, 4)
	if err != nil {
		return nil, err
	}
	rows, columns, err := parseDimensions(head[2], head[3])
	if err != nil {
		return nil, err
	}

	plates, err := parsePlates(records[1:])
	if err != nil {
		return nil, err
	}

	doc := stackDoc{Label: head[1], Rows: rows, Columns: columns, Plates: plates}

	return doc.stack(f.cfg)
}

// WriteLayout renders values as a rows x columns grid: a header line of
// column numbers, then one line per row led by its letters. Positions
// without a value are left blank.
func (f *Tabular) WriteLayout(w io.Writer, rows, columns int, values map[plate.WellIndex]float64) error {
	if rows <= 0 || columns <= 0 {
		return fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, rows, columns)
	}

	cw := f.writer(w)
	line := make([]string, columns+1)
	for c := range columns {
		line[c+1] = strconv.Itoa(c + 1)
	}
	_ = cw.Write(line)

	for r := range rows {
		line[0] = plate.EncodeRow(r)
		for c := range columns {
			line[c+1] = ""
			if v, ok := values[plate.NewWellIndex(r, c+1)]; ok {
				line[c+1] = formatValue(v)
			}
		}
		_ = cw.Write(line)
	}
	cw.Flush()

	return cw.Error()
}

func (f *Tabular) writer(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = f.cfg.delimiter

	return cw
}

func (f *Tabular) records(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = f.cfg.delimiter
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	return records, nil
}

func writePlate(cw *csv.Writer, doc plateDoc) {
	_ = cw.Write([]string{tagPlate, doc.Label, strconv.Itoa(doc.Rows), strconv.Itoa(doc.Columns)})
	for _, g := range doc.Groups {
		_ = cw.Write(append([]string{tagGroup, g.Label}, g.Wells...))
	}
	writeWells(cw, doc.Wells)
}

func writeWells(cw *csv.Writer, wells []wellDoc) {
	for _, wd := range wells {
		line := make([]string, 0, len(wd.Values)+1)
		line = append(line, wd.ID)
		for _, v := range wd.Values {
			line = append(line, formatValue(float64(v)))
		}
		_ = cw.Write(line)
	}
}

func parsePlates(records [][]string) ([]plateDoc, error) {
	var plates []plateDoc
	for _, rec := range records {
		if len(rec) == 0 || (len(rec) == 1 && rec[0] == "") {
			continue
		}

		switch rec[0] {
		case tagPlate:
			if len(rec) != 4 {
				return nil, fmt.Errorf("%w: #plate line has %d fields", errs.ErrInvalidPayload, len(rec))
			}
			rows, columns, err := parseDimensions(rec[2], rec[3])
			if err != nil {
				return nil, err
			}
			plates = append(plates, plateDoc{Label: rec[1], Rows: rows, Columns: columns})

			continue
		}

		if len(plates) == 0 {
			return nil, fmt.Errorf("%w: %s line before any #plate line", errs.ErrInvalidPayload, rec[0])
		}
		cur := &plates[len(plates)-1]

		switch rec[0] {
		case tagGroup:
			if len(rec) < 2 {
				return nil, fmt.Errorf("%w: #group line without label", errs.ErrInvalidPayload)
			}
			cur.Groups = append(cur.Groups, groupDoc{Label: rec[1], Wells: rec[2:]})
		case tagStack, tagWellSet:
			return nil, fmt.Errorf("%w: unexpected %s line", errs.ErrInvalidPayload, rec[0])
		default:
			wd, err := parseWell(rec)
			if err != nil {
				return nil, err
			}
			cur.Wells = append(cur.Wells, wd)
		}
	}

	return plates, nil
}

func parseWell(rec []string) (wellDoc, error) {
	wd := wellDoc{ID: rec[0], Values: make([]value, 0, len(rec)-1)}
	for _, field := range rec[1:] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return wellDoc{}, fmt.Errorf("%w: well %s value %q", errs.ErrInvalidArgument, rec[0], field)
		}
		wd.Values = append(wd.Values, value(v))
	}

	return wd, nil
}

func parseDimensions(rows, columns string) (int, int, error) {
	r, errR := strconv.Atoi(rows)
	c, errC := strconv.Atoi(columns)
	if err := errors.Join(errR, errC); err != nil {
		return 0, 0, fmt.Errorf("%w: %q x %q", errs.ErrInvalidDimensions, rows, columns)
	}

	return r, c, nil
}

func expect(records [][]string, tag string, fields int) ([]string, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty document", errs.ErrInvalidPayload)
	}
	head := records[0]
	if head[0] != tag {
		return nil, fmt.Errorf("%w: document starts with %q, want %s", errs.ErrInvalidPayload, head[0], tag)
	}
	if len(head) != fields {
		return nil, fmt.Errorf("%w: %s line has %d fields, want %d", errs.ErrInvalidPayload, tag, len(head), fields)
	}

	return head, nil
}

func isDirective(rec []string) bool {
	switch rec[0] {
	case tagWellSet, tagPlate, tagGroup, tagStack:
		return true
	}

	return false
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
