// Package transform provides the pipeline passes applied to a parsed CNC
// program.
//
// # Overview
//
// Each pass is a pure function over a [gcode.Program] or a block slice; the
// input is never mutated. The passes compose into the two pipelines this tool
// ships:
//
//	Offset → Segment → SortBlocks → Join   (rewrite the program text)
//	Offset → Scan                          (report coordinate extrema)
//
// # Conditional offset
//
// [Offset] applies the machine's Y-shift rule: every line whose X coordinate
// is strictly greater than the rule threshold gets the shift added to its Y,
// exactly once, with the source decimal precision preserved.
//
// # Block segmentation and sorting
//
// [Segment] splits the line sequence into contiguous blocks, each opened by a
// tool-header line. Lines before the first header form a prologue block that
// is emitted first and excluded from sorting. [SortBlocks] stable-sorts the
// remaining blocks by ascending tool number, so duplicate tool ids keep their
// input order, and [Join] concatenates the blocks back into a program without
// losing a line.
//
// # Extrema
//
// [Scan] folds every parsed coordinate into an [Extrema] accumulator holding
// the running min/max per axis. The extrema are computed over post-offset
// values; run [Offset] first. An axis with no observed values renders as "-"
// instead of a fabricated zero.
package transform
