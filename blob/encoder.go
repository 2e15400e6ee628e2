package blob

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"log/slog"
	"math"

	"github.com/arloliu/microplate/compress"
	"github.com/arloliu/microplate/encoding"
	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/format"
	"github.com/arloliu/microplate/internal/collision"
	ienc "github.com/arloliu/microplate/internal/encoding"
	"github.com/arloliu/microplate/internal/hash"
	"github.com/arloliu/microplate/internal/options"
	"github.com/arloliu/microplate/internal/pool"
	"github.com/arloliu/microplate/plate"
	"github.com/arloliu/microplate/section"
)

// StackEncoder turns stacks into binary blobs.
//
// An encoder keeps no per-stack state between calls to Encode, but it is not
// safe for concurrent use; create one encoder per goroutine.
type StackEncoder struct {
	flag    section.StackFlag
	codec   compress.Codec
	tracker *collision.Tracker
	logger  *slog.Logger
}

// NewStackEncoder creates an encoder. Without options it writes little-endian
// blobs with an S2 compressed payload.
func NewStackEncoder(opts ...EncoderOption) (*StackEncoder, error) {
	e := &StackEncoder{
		flag:    section.NewStackFlag(),
		tracker: collision.NewTracker(),
		logger:  slog.Default(),
	}
	codec, err := compress.GetCodec(e.flag.Compression())
	if err != nil {
		return nil, err
	}
	e.codec = codec

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Compression returns the payload codec type.
func (e *StackEncoder) Compression() format.CompressionType {
	return e.flag.Compression()
}

// Encode serializes the stack, its plates, their groups and all well values.
func (e *StackEncoder) Encode(s *plate.Stack) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil stack", errs.ErrInvalidArgument)
	}

	header := section.NewStackHeader(s.Rows(), s.Columns())
	header.Flag = e.flag
	engine := header.Flag.GetEndianEngine()

	payload := encoding.NewVarStringEncoder(engine)
	defer payload.Reset()
	if err := payload.Write(s.Label()); err != nil {
		return nil, fmt.Errorf("stack label: %w", err)
	}

	e.tracker.Reset()
	entries := make([]section.PlateIndexEntry, 0, s.Len())
	hasGroups := false
	for p := range s.All() {
		start := payload.Size()
		if err := writePlate(payload, p, engine); err != nil {
			return nil, err
		}
		labelHash := hash.ID(p.Label())
		e.tracker.Track(p.Label(), labelHash)
		entries = append(entries, section.NewPlateIndexEntry(labelHash, start, payload.Size()-start))
		hasGroups = hasGroups || p.GroupCount() > 0
	}
	header.Flag.SetGroups(hasGroups)

	var labelDir []byte
	if e.tracker.HasCollision() || e.tracker.HasRepeat() {
		dir, err := ienc.EncodeLabels(e.tracker.Labels(), engine)
		if err != nil {
			return nil, err
		}
		labelDir = dir
		header.Flag.SetLabelDirectory(true)
	}

	raw := payload.Bytes()
	compressed, stats, err := compress.Measure(e.codec, header.Flag.Compression(), raw)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	payloadOffset := section.HeaderSize + len(entries)*section.IndexEntrySize + len(labelDir)
	if len(raw) > section.MaxSectionOffset || payloadOffset+len(compressed) > section.MaxSectionOffset {
		return nil, fmt.Errorf("%w: stack %q exceeds %d bytes", errs.ErrInvalidPayload, s.Label(), uint64(math.MaxUint32))
	}
	header.PlateCount = uint32(len(entries))     //nolint:gosec
	header.PayloadOffset = uint32(payloadOffset) //nolint:gosec
	header.PayloadLength = uint32(len(raw))      //nolint:gosec
	header.Checksum = crc32.ChecksumIEEE(raw)

	buf := pool.GetStackBuffer()
	defer pool.PutStackBuffer(buf)

	buf.MustWrite(header.Bytes())
	index := buf.Extend(len(entries) * section.IndexEntrySize)
	pos := 0
	for _, entry := range entries {
		pos = entry.WriteToSlice(index, pos, engine)
	}
	buf.MustWrite(labelDir)
	buf.MustWrite(compressed)

	e.logger.Debug("stack encoded",
		slog.String("stack", s.Label()),
		slog.Int("plates", len(entries)),
		slog.String("compression", stats.Algorithm.String()),
		slog.Int64("raw_bytes", stats.OriginalSize),
		slog.Int64("compressed_bytes", stats.CompressedSize),
		slog.Float64("ratio", stats.CompressionRatio()),
		slog.Bool("label_directory", header.Flag.HasLabelDirectory()),
	)

	return bytes.Clone(buf.Bytes()), nil
}
