package codec

import (
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/internal/options"
	"github.com/arloliu/microplate/plate"
)

// DefaultTabularDelimiter separates the fields of a tabular line.
const DefaultTabularDelimiter = "\t"

// Format encodes and decodes the plate containers.
type Format interface {
	EncodeWellSet(w io.Writer, s *plate.WellSet) error
	DecodeWellSet(r io.Reader) (*plate.WellSet, error)
	EncodePlate(w io.Writer, p *plate.Plate) error
	DecodePlate(r io.Reader) (*plate.Plate, error)
	EncodeStack(w io.Writer, s *plate.Stack) error
	DecodeStack(r io.Reader) (*plate.Stack, error)
}

type config struct {
	indent    string
	delimiter rune
	logger    *slog.Logger
}

// Option configures a Format.
type Option = options.Option[*config]

// WithIndent pretty-prints JSON and XML output with the given indent.
func WithIndent(indent string) Option {
	return options.NoError(func(c *config) {
		c.indent = indent
	})
}

// WithDelimiter sets the tabular field delimiter. It must be a single
// character other than a quote, carriage return or newline.
func WithDelimiter(delimiter string) Option {
	return options.New(func(c *config) error {
		if delimiter == "" {
			return errs.ErrEmptyDelimiter
		}
		r, size := utf8.DecodeRuneInString(delimiter)
		if size != len(delimiter) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
			return fmt.Errorf("%w: delimiter %q", errs.ErrInvalidArgument, delimiter)
		}
		c.delimiter = r

		return nil
	})
}

// WithLogger sets the logger handed to decoded containers. A nil logger
// keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

func newConfig(opts []Option) (*config, error) {
	c := &config{
		delimiter: '\t',
		logger:    slog.Default(),
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

var (
	_ Format = (*JSON)(nil)
	_ Format = (*XML)(nil)
	_ Format = (*Tabular)(nil)
)
