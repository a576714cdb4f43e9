package benchplot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

const (
	DefaultASPFile    = "benchmark_asp.csv"
	DefaultStdFile    = "benchmark_std.csv"
	DefaultOutputFile = "benchmark_time.png"
)

var (
	ErrValueCannotBeNil = errors.New("value cannot be nil")
	ErrEmptyPath        = errors.New("path cannot be empty")
)

// Report turns the two benchmark CSV files into a time comparison chart.
type Report struct {
	aspFile, stdFile string
	output           string
	chart            Chart
	stdout           io.Writer
	logger           *zap.Logger
}

type Option func(*Report) error

func NewReport(opts ...Option) (*Report, error) {
	report := &Report{
		aspFile: DefaultASPFile,
		stdFile: DefaultStdFile,
		output:  DefaultOutputFile,
		chart:   TimeChart(),
		stdout:  os.Stdout,
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		err := o(report)
		if err != nil {
			return nil, err
		}
	}
	report.chart.Logger = report.logger
	return report, nil
}

func WithInputs(aspFile, stdFile string) Option {
	return func(r *Report) error {
		if aspFile == "" || stdFile == "" {
			return fmt.Errorf("inputs: %w", ErrEmptyPath)
		}
		r.aspFile = aspFile
		r.stdFile = stdFile
		return nil
	}
}

func WithOutput(path string) Option {
	return func(r *Report) error {
		if path == "" {
			return fmt.Errorf("output: %w", ErrEmptyPath)
		}
		r.output = path
		return nil
	}
}

func WithStdout(w io.Writer) Option {
	return func(r *Report) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		r.stdout = w
		return nil
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Report) error {
		if l == nil {
			return ErrValueCannotBeNil
		}
		r.logger = l
		return nil
	}
}

func (r Report) Inputs() (aspFile, stdFile string) {
	return r.aspFile, r.stdFile
}

func (r Report) Output() string {
	return r.output
}

// Run checks the inputs, loads and combines them, and saves the chart.
// Missing inputs are not an error: the guidance is printed to stdout
// and no chart is written.
func (r *Report) Run(ctx context.Context) error {
	err := CheckInputs(r.aspFile, r.stdFile)
	var missing *MissingInputError
	if errors.As(err, &missing) {
		r.logger.Debug("inputs missing", zap.Strings("paths", missing.Paths))
		missing.WriteGuidance(r.stdout)
		return nil
	}

	combined, err := r.Combined(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.chart.Save(combined, r.output)
}

// Combined loads both inputs and returns the long-form table the chart
// is drawn from.
func (r *Report) Combined(ctx context.Context) (*Table, error) {
	tables := make([]*Table, 0, 2)
	for _, path := range []string{r.aspFile, r.stdFile} {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := ReadCSVFile(path)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("loaded benchmark results",
			zap.String("path", path),
			zap.Int("rows", t.Len()),
			zap.Strings("columns", t.Names()))
		tables = append(tables, t)
	}
	combined, err := Combine(tables[0], tables[1])
	if err != nil {
		return nil, err
	}
	r.logger.Debug("combined benchmark results", zap.Int("rows", combined.Len()))
	return combined, nil
}
