package codec

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/format"
	"github.com/arloliu/microplate/plate"
)

// value is a float64 that survives JSON with NaN and infinities.
type value float64

func (v value) MarshalJSON() ([]byte, error) {
	f := float64(v)
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return json.Marshal(strconv.FormatFloat(f, 'g', -1, 64))
	default:
		return json.Marshal(f)
	}
}

func (v *value) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = value(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: well value %s", errs.ErrInvalidArgument, data)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: well value %q", errs.ErrInvalidArgument, s)
	}
	*v = value(f)

	return nil
}

type wellDoc struct {
	ID     string  `json:"id" xml:"id,attr"`
	Values []value `json:"values" xml:"value"`
}

type groupDoc struct {
	Label string   `json:"label" xml:"label,attr"`
	Wells []string `json:"wells" xml:"well"`
}

type wellSetDoc struct {
	XMLName xml.Name  `json:"-" xml:"wellset"`
	Label   string    `json:"label" xml:"label,attr"`
	Wells   []wellDoc `json:"wells" xml:"well"`
}

type plateDoc struct {
	XMLName    xml.Name   `json:"-" xml:"plate"`
	Label      string     `json:"label" xml:"label,attr"`
	Rows       int        `json:"rows" xml:"rows,attr"`
	Columns    int        `json:"columns" xml:"columns,attr"`
	Descriptor string     `json:"descriptor,omitempty" xml:"descriptor,attr,omitempty"`
	DataType   string     `json:"dataType,omitempty" xml:"dataType,attr,omitempty"`
	Groups     []groupDoc `json:"groups,omitempty" xml:"groups>group,omitempty"`
	Wells      []wellDoc  `json:"wells" xml:"wells>well"`
}

type stackDoc struct {
	XMLName xml.Name   `json:"-" xml:"stack"`
	Label   string     `json:"label" xml:"label,attr"`
	Rows    int        `json:"rows" xml:"rows,attr"`
	Columns int        `json:"columns" xml:"columns,attr"`
	Plates  []plateDoc `json:"plates" xml:"plate"`
}

func newWellDoc(w *plate.Well) wellDoc {
	doc := wellDoc{ID: w.ID(), Values: make([]value, w.Len())}
	for i, v := range w.Data() {
		doc.Values[i] = value(v)
	}

	return doc
}

func (d wellDoc) well() (*plate.Well, error) {
	values := make([]float64, len(d.Values))
	for i, v := range d.Values {
		values[i] = float64(v)
	}

	return plate.ParseWell(d.ID, values...)
}

func newWellSetDoc(s *plate.WellSet) wellSetDoc {
	doc := wellSetDoc{Label: s.Label(), Wells: make([]wellDoc, 0, s.Len())}
	for w := range s.All() {
		doc.Wells = append(doc.Wells, newWellDoc(w))
	}

	return doc
}

func (d wellSetDoc) wellSet(c *config) (*plate.WellSet, error) {
	s := plate.NewWellSet(plate.WithSetLabel(d.Label), plate.WithSetLogger(c.logger))
	for _, wd := range d.Wells {
		w, err := wd.well()
		if err != nil {
			return nil, err
		}
		if !s.Add(w) {
			return nil, fmt.Errorf("%w: well %s in set %q", errs.ErrDuplicate, w.ID(), d.Label)
		}
	}

	return s, nil
}

func newPlateDoc(p *plate.Plate) plateDoc {
	doc := plateDoc{
		Label:      p.Label(),
		Rows:       p.Rows(),
		Columns:    p.Columns(),
		Descriptor: p.Descriptor(),
		DataType:   p.DataType().String(),
		Wells:      make([]wellDoc, 0, p.Size()),
	}
	for _, g := range p.Groups() {
		gd := groupDoc{Label: g.Label(), Wells: make([]string, 0, g.Len())}
		for idx := range g.All() {
			gd.Wells = append(gd.Wells, idx.String())
		}
		doc.Groups = append(doc.Groups, gd)
	}
	for w := range p.All() {
		doc.Wells = append(doc.Wells, newWellDoc(w))
	}

	return doc
}

func (d plateDoc) plate(c *config) (*plate.Plate, error) {
	if d.DataType != "" {
		if _, ok := format.ParseDataType(d.DataType); !ok {
			return nil, fmt.Errorf("%w: data type %q on plate %q", errs.ErrTypeMismatch, d.DataType, d.Label)
		}
	}

	p, err := plate.NewPlate(d.Rows, d.Columns, plate.WithPlateLogger(c.logger))
	if err != nil {
		return nil, err
	}
	p.SetLabel(d.Label)

	for _, gd := range d.Groups {
		l := plate.NewWellList(gd.Label)
		for _, id := range gd.Wells {
			idx, err := plate.ParseWellIndex(id)
			if err != nil {
				return nil, err
			}
			l.Add(idx)
		}
		if !p.AddGroups(l) {
			return nil, fmt.Errorf("%w: group %q rejected by plate %q", errs.ErrInvalidArgument, gd.Label, d.Label)
		}
	}

	for _, wd := range d.Wells {
		w, err := wd.well()
		if err != nil {
			return nil, err
		}
		if !p.InBounds(w.Index()) {
			return nil, fmt.Errorf("%w: %s on plate %q", errs.ErrOutOfBounds, w.ID(), d.Label)
		}
		if !p.AddWells(w) {
			return nil, fmt.Errorf("%w: well %s on plate %q", errs.ErrDuplicate, w.ID(), d.Label)
		}
	}

	return p, nil
}

func newStackDoc(s *plate.Stack) stackDoc {
	doc := stackDoc{
		Label:   s.Label(),
		Rows:    s.Rows(),
		Columns: s.Columns(),
		Plates:  make([]plateDoc, 0, s.Len()),
	}
	for p := range s.All() {
		doc.Plates = append(doc.Plates, newPlateDoc(p))
	}

	return doc
}

func (d stackDoc) stack(c *config) (*plate.Stack, error) {
	s, err := plate.NewStack(d.Rows, d.Columns, plate.WithStackLogger(c.logger))
	if err != nil {
		return nil, err
	}
	s.SetLabel(d.Label)

	for _, pd := range d.Plates {
		p, err := pd.plate(c)
		if err != nil {
			return nil, err
		}
		if !s.Add(p) {
			return nil, fmt.Errorf("%w: plate %q rejected by stack %q", errs.ErrInvalidArgument, pd.Label, d.Label)
		}
	}

	return s, nil
}
