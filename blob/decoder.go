package blob

import (
	"fmt"
	"hash/crc32"
	"log/slog"
	"slices"

	"github.com/arloliu/microplate/compress"
	"github.com/arloliu/microplate/encoding"
	"github.com/arloliu/microplate/endian"
	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/format"
	ienc "github.com/arloliu/microplate/internal/encoding"
	"github.com/arloliu/microplate/internal/hash"
	"github.com/arloliu/microplate/internal/options"
	"github.com/arloliu/microplate/plate"
	"github.com/arloliu/microplate/section"
)

// StackDecoder reads a stack blob.
//
// The header, index and label directory are parsed by NewStackDecoder. The
// payload is decompressed and verified on first use and kept for later
// calls.
//
// Note: StackDecoder is NOT thread-safe.
type StackDecoder struct {
	data    []byte
	header  section.StackHeader
	engine  endian.EndianEngine
	entries []section.PlateIndexEntry
	labels  []string
	payload []byte
	logger  *slog.Logger
}

// Info summarizes a blob without decompressing its payload.
type Info struct {
	Rows              int
	Columns           int
	PlateCount        int
	Compression       format.CompressionType
	BigEndian         bool
	HasGroups         bool
	HasLabelDirectory bool
	PayloadLength     int
	CompressedLength  int
}

// NewStackDecoder validates the header and index of data.
func NewStackDecoder(data []byte, opts ...DecoderOption) (*StackDecoder, error) {
	d := &StackDecoder{
		data:   data,
		logger: slog.Default(),
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseStackHeader(data)
	if err != nil {
		return nil, err
	}
	d.header = header
	d.engine = header.Flag.GetEndianEngine()

	if uint64(len(data)) < uint64(header.PayloadOffset) {
		return nil, fmt.Errorf("%w: payload offset %d beyond %d bytes", errs.ErrTruncatedPayload, header.PayloadOffset, len(data))
	}

	if err := d.parseIndex(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *StackDecoder) parseIndex() error {
	count := int(d.header.PlateCount)
	indexEnd := section.IndexOffsetOffset + d.header.IndexSize()

	d.entries = make([]section.PlateIndexEntry, count)
	hashes := make([]uint64, count)
	prevEnd := 0
	for i := range count {
		offset := section.IndexOffsetOffset + i*section.IndexEntrySize
		entry, err := section.ParsePlateIndexEntry(d.data[offset:indexEnd], d.engine)
		if err != nil {
			return err
		}
		if int(entry.Offset) < prevEnd || entry.End() > int(d.header.PayloadLength) {
			return fmt.Errorf("%w: plate %d spans [%d, %d) of %d payload bytes",
				errs.ErrInvalidIndexEntry, i, entry.Offset, entry.End(), d.header.PayloadLength)
		}
		prevEnd = entry.End()
		d.entries[i] = entry
		hashes[i] = entry.LabelHash
	}

	if !d.header.Flag.HasLabelDirectory() {
		return nil
	}

	labels, _, err := ienc.DecodeLabels(d.data[indexEnd:d.header.PayloadOffset], d.engine)
	if err != nil {
		return fmt.Errorf("label directory: %w", err)
	}
	if err := ienc.VerifyLabelHashes(labels, hashes, hash.ID); err != nil {
		return err
	}
	d.labels = labels

	return nil
}

// Info returns the header summary.
func (d *StackDecoder) Info() Info {
	return Info{
		Rows:              int(d.header.Rows),
		Columns:           int(d.header.Columns),
		PlateCount:        int(d.header.PlateCount),
		Compression:       d.header.Flag.Compression(),
		BigEndian:         d.header.Flag.IsBigEndian(),
		HasGroups:         d.header.Flag.HasGroups(),
		HasLabelDirectory: d.header.Flag.HasLabelDirectory(),
		PayloadLength:     int(d.header.PayloadLength),
		CompressedLength:  len(d.data) - int(d.header.PayloadOffset),
	}
}

// PlateCount returns the number of plates in the blob.
func (d *StackDecoder) PlateCount() int {
	return len(d.entries)
}

// Labels returns the plate labels in stack order. Blobs without a label
// directory need their payload decompressed to answer.
func (d *StackDecoder) Labels() ([]string, error) {
	if d.labels != nil {
		return slices.Clone(d.labels), nil
	}

	payload, err := d.loadPayload()
	if err != nil {
		return nil, err
	}

	reader := d.reader()
	labels := make([]string, len(d.entries))
	for i, entry := range d.entries {
		if labels[i], err = reader.labelOf(payload[entry.Offset:entry.End()]); err != nil {
			return nil, err
		}
	}

	return labels, nil
}

// Decode rebuilds the whole stack.
func (d *StackDecoder) Decode() (*plate.Stack, error) {
	payload, err := d.loadPayload()
	if err != nil {
		return nil, err
	}

	label, err := encoding.NewVarStringDecoder(payload, d.engine).Read()
	if err != nil {
		return nil, fmt.Errorf("stack label: %w", err)
	}

	s, err := plate.NewStack(int(d.header.Rows), int(d.header.Columns), plate.WithStackLogger(d.logger))
	if err != nil {
		return nil, err
	}
	s.SetLabel(label)

	reader := d.reader()
	for _, entry := range d.entries {
		p, err := reader.readPlate(payload[entry.Offset:entry.End()])
		if err != nil {
			return nil, err
		}
		if !s.Add(p) {
			return nil, fmt.Errorf("%w: plate %q rejected by stack", errs.ErrInvalidPayload, p.Label())
		}
	}

	return s, nil
}

// Plate decodes the first plate carrying label.
func (d *StackDecoder) Plate(label string) (*plate.Plate, error) {
	want := hash.ID(label)
	reader := d.reader()

	for i, entry := range d.entries {
		if entry.LabelHash != want {
			continue
		}
		if d.labels != nil && d.labels[i] != label {
			continue
		}

		payload, err := d.loadPayload()
		if err != nil {
			return nil, err
		}
		record := payload[entry.Offset:entry.End()]
		if d.labels == nil {
			// without a directory the hash is unique but still verify it
			got, err := reader.labelOf(record)
			if err != nil {
				return nil, err
			}
			if got != label {
				continue
			}
		}

		return reader.readPlate(record)
	}

	return nil, fmt.Errorf("%w: %q", errs.ErrPlateNotFound, label)
}

func (d *StackDecoder) reader() plateReader {
	return plateReader{
		rows:    int(d.header.Rows),
		columns: int(d.header.Columns),
		engine:  d.engine,
		opts:    []plate.PlateOption{plate.WithPlateLogger(d.logger)},
	}
}

func (d *StackDecoder) loadPayload() ([]byte, error) {
	if d.payload != nil {
		return d.payload, nil
	}

	codec, err := compress.GetCodec(d.header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(d.data[d.header.PayloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	if len(payload) != int(d.header.PayloadLength) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d",
			errs.ErrTruncatedPayload, len(payload), d.header.PayloadLength)
	}
	if crc32.ChecksumIEEE(payload) != d.header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}
	d.payload = payload

	return payload, nil
}
