// Package pipeline provides the core transformation pipeline for the CNC
// code utility.
//
// This package implements the parse → offset → segment → sort flow (and the
// parse → offset → extrema flow) shared by the CLI and the HTTP API. By
// centralizing this logic, both entry points behave identically.
//
// # Usage
//
// Create a Runner and execute one of the two pipelines:
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Transform(ctx, file, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(res.Output)
//
// The extrema pipeline returns the four-number summary instead of rewritten
// text:
//
//	res, err := runner.Extrema(ctx, file, pipeline.Options{})
//	fmt.Println(res.Report) // "40.000/60.000/3.000/15.000"
package pipeline

import (
	"time"

	"github.com/adamValent/CNC-code-utility/pkg/gcode/transform"
)

// Options contains the configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Threshold is the X value above which the Y shift applies.
	Threshold float64 `json:"threshold,omitempty"`

	// Shift is the amount added to Y when the threshold is exceeded.
	Shift float64 `json:"shift,omitempty"`

	// rule is the resolved offset rule set by setDefaults.
	rule transform.Rule
}

// setDefaults resolves the offset rule, falling back to the machine's
// standard rule when both fields are zero.
func (o *Options) setDefaults() {
	o.rule = transform.Rule{Threshold: o.Threshold, Shift: o.Shift}
	if o.Threshold == 0 && o.Shift == 0 {
		o.rule = transform.DefaultRule
	}
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Lines    int           // total input lines
	Coords   int           // lines carrying a coordinate
	Blocks   int           // tool blocks found (excluding the prologue)
	Duration time.Duration // total pipeline time
}

// TransformResult is the output of the transform pipeline (mode A).
type TransformResult struct {
	// Output is the rewritten program text, empty for empty input.
	Output []byte

	Stats Stats
}

// ExtremaResult is the output of the extrema pipeline (mode B).
type ExtremaResult struct {
	// Extrema holds the raw accumulator for programmatic access.
	Extrema *transform.Extrema

	// Report is the rendered x_min/x_max/y_min/y_max summary.
	Report string

	Stats Stats
}
