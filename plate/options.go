package plate

import (
	"log/slog"

	"github.com/arloliu/microplate/internal/options"
)

// WellSetOption configures a WellSet at construction.
type WellSetOption = options.Option[*WellSet]

// PlateOption configures a Plate at construction.
type PlateOption = options.Option[*Plate]

// StackOption configures a Stack at construction.
type StackOption = options.Option[*Stack]

// WithSetLabel sets the label of a WellSet.
func WithSetLabel(label string) WellSetOption {
	return options.NoError(func(s *WellSet) {
		s.SetLabel(label)
	})
}

// WithSetLogger sets the logger receiving per-well failures of batch
// operations. A nil logger keeps the default.
func WithSetLogger(logger *slog.Logger) WellSetOption {
	return options.NoError(func(s *WellSet) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// WithPlateLabel sets the label of a Plate.
func WithPlateLabel(label string) PlateOption {
	return options.NoError(func(p *Plate) {
		p.label = label
	})
}

// WithPlateLogger sets the logger receiving per-well and per-group failures.
// A nil logger keeps the default.
func WithPlateLogger(logger *slog.Logger) PlateOption {
	return options.NoError(func(p *Plate) {
		if logger != nil {
			p.logger = logger
			p.data.logger = logger
		}
	})
}

// WithStackLabel sets the label of a Stack.
func WithStackLabel(label string) StackOption {
	return options.NoError(func(s *Stack) {
		s.label = label
	})
}

// WithStackLogger sets the logger receiving per-plate failures.
// A nil logger keeps the default.
func WithStackLogger(logger *slog.Logger) StackOption {
	return options.NoError(func(s *Stack) {
		if logger != nil {
			s.logger = logger
		}
	})
}

func defaultLogger() *slog.Logger {
	return slog.Default()
}

// reject records a failed element of a batch operation.
func reject(logger *slog.Logger, op, kind, item string, err error) {
	logger.Warn("element rejected",
		slog.String("op", op),
		slog.String(kind, item),
		slog.Any("error", err),
	)
}
