package pipeline

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/adamValent/CNC-code-utility/pkg/gcode"
	"github.com/adamValent/CNC-code-utility/pkg/gcode/transform"
)

// Runner executes the pipeline. It is stateless apart from the logger, so a
// single Runner can serve multiple requests.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Transform runs the full rewrite pipeline (mode A): parse, conditional
// Y-offset, block segmentation, stable sort by tool number, re-emission.
// Empty input yields an empty Output.
func (r *Runner) Transform(ctx context.Context, src io.Reader, opts Options) (*TransformResult, error) {
	opts.setDefaults()
	start := time.Now()

	prog, err := r.parse(ctx, src)
	if err != nil {
		return nil, err
	}

	prog = transform.Offset(prog, opts.rule)
	blocks := transform.SortBlocks(transform.Segment(prog))

	var buf bytes.Buffer
	if err := transform.Join(blocks).Render(&buf); err != nil {
		return nil, err
	}

	res := &TransformResult{
		Output: buf.Bytes(),
		Stats: Stats{
			Lines:    len(prog.Lines),
			Coords:   prog.CoordCount(),
			Blocks:   countToolBlocks(blocks),
			Duration: time.Since(start),
		},
	}

	r.Logger.Info("transformed program",
		"lines", res.Stats.Lines,
		"blocks", res.Stats.Blocks,
		"duration", res.Stats.Duration)

	return res, nil
}

// Extrema runs the summary pipeline (mode B): parse, conditional Y-offset,
// extrema scan. The report covers post-offset values; an axis with no data
// renders as "-".
func (r *Runner) Extrema(ctx context.Context, src io.Reader, opts Options) (*ExtremaResult, error) {
	opts.setDefaults()
	start := time.Now()

	prog, err := r.parse(ctx, src)
	if err != nil {
		return nil, err
	}

	prog = transform.Offset(prog, opts.rule)
	e := transform.Scan(prog)

	res := &ExtremaResult{
		Extrema: e,
		Report:  e.String(),
		Stats: Stats{
			Lines:    len(prog.Lines),
			Coords:   prog.CoordCount(),
			Duration: time.Since(start),
		},
	}

	r.Logger.Info("scanned extrema",
		"coords", res.Stats.Coords,
		"report", res.Report,
		"duration", res.Stats.Duration)

	return res, nil
}

func (r *Runner) parse(ctx context.Context, src io.Reader) (*gcode.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return gcode.Parse(src)
}

func countToolBlocks(blocks []transform.Block) int {
	n := 0
	for _, b := range blocks {
		if b.Num != transform.PrologueNum {
			n++
		}
	}
	return n
}
