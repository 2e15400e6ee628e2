package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/plate"
)

// JSON encodes containers as JSON documents.
type JSON struct {
	cfg *config
}

// NewJSON creates a JSON format.
func NewJSON(opts ...Option) (*JSON, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &JSON{cfg: cfg}, nil
}

// EncodeWellSet writes s as a JSON object.
func (f *JSON) EncodeWellSet(w io.Writer, s *plate.WellSet) error {
	if s == nil {
		return fmt.Errorf("%w: nil well set", errs.ErrInvalidArgument)
	}

	return f.encode(w, newWellSetDoc(s))
}

// DecodeWellSet reads a well set written by EncodeWellSet.
func (f *JSON) DecodeWellSet(r io.Reader) (*plate.WellSet, error) {
	var doc wellSetDoc
	if err := f.decode(r, &doc); err != nil {
		return nil, err
	}

	return doc.wellSet(f.cfg)
}

// EncodePlate writes p, its groups included, as a JSON object.
func (f *JSON) EncodePlate(w io.Writer, p *plate.Plate) error {
	if p == nil {
		return fmt.Errorf("%w: nil plate", errs.ErrInvalidArgument)
	}

	return f.encode(w, newPlateDoc(p))
}

// DecodePlate reads a plate written by EncodePlate.
func (f *JSON) DecodePlate(r io.Reader) (*plate.Plate, error) {
	var doc plateDoc
	if err := f.decode(r, &doc); err != nil {
		return nil, err
	}

	return doc.plate(f.cfg)
}

// EncodeStack writes s and all of its plates as a JSON object.
func (f *JSON) EncodeStack(w io.Writer, s *plate.Stack) error {
	if s == nil {
		return fmt.Errorf("%w: nil stack", errs.ErrInvalidArgument)
	}

	return f.encode(w, newStackDoc(s))
}

// DecodeStack reads a stack written by EncodeStack.
func (f *JSON) DecodeStack(r io.Reader) (*plate.Stack, error) {
	var doc stackDoc
	if err := f.decode(r, &doc); err != nil {
		return nil, err
	}

	return doc.stack(f.cfg)
}

func (f *JSON) encode(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	if f.cfg.indent != "" {
		enc.SetIndent("", f.cfg.indent)
	}

	return enc.Encode(doc)
}

func (f *JSON) decode(r io.Reader, doc any) error {
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	return nil
}
