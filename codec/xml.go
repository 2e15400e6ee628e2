package codec

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/plate"
)

// XML encodes containers as XML documents.
type XML struct {
	cfg *config
}

// NewXML creates an XML format.
func NewXML(opts ...Option) (*XML, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &XML{cfg: cfg}, nil
}

// EncodeWellSet writes s as a <wellset> element.
func (f *XML) EncodeWellSet(w io.Writer, s *plate.WellSet) error {
	if s == nil {
		return fmt.Errorf("%w: nil well set", errs.ErrInvalidArgument)
	}

	return f.encode(w, newWellSetDoc(s))
}

// DecodeWellSet reads a <wellset> element.
func (f *XML) DecodeWellSet(r io.Reader) (*plate.WellSet, error) {
	var doc wellSetDoc
	if err := f.decode(r, &doc); err != nil {
		return nil, err
	}

	return doc.wellSet(f.cfg)
}

// EncodePlate writes p as a <plate> element.
func (f *XML) EncodePlate(w io.Writer, p *plate.Plate) error {
	if p == nil {
		return fmt.Errorf("%w: nil plate", errs.ErrInvalidArgument)
	}

	return f.encode(w, newPlateDoc(p))
}

// DecodePlate reads a <plate> element.
func (f *XML) DecodePlate(r io.Reader) (*plate.Plate, error) {
	var doc plateDoc
	if err := f.decode(r, &doc); err != nil {
		return nil, err
	}

	return doc.plate(f.cfg)
}

// EncodeStack writes s as a <stack> element.
func (f *XML) EncodeStack(w io.Writer, s *plate.Stack) error {
	if s == nil {
		return fmt.Errorf("%w: nil stack", errs.ErrInvalidArgument)
	}

	return f.encode(w, newStackDoc(s))
}

// DecodeStack reads a <stack> element.
func (f *XML) DecodeStack(r io.Reader) (*plate.Stack, error) {
	var doc stackDoc
	if err := f.decode(r, &doc); err != nil {
		return nil, err
	}

	return doc.stack(f.cfg)
}

func (f *XML) encode(w io.Writer, doc any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	if f.cfg.indent != "" {
		enc.Indent("", f.cfg.indent)
	}
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")

	return err
}

func (f *XML) decode(r io.Reader, doc any) error {
	if err := xml.NewDecoder(r).Decode(doc); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	return nil
}
