package gcode

import (
	"strconv"
	"strings"
)

// Kind classifies a parsed line.
type Kind int

const (
	// KindText is a line with no recognized tokens, passed through verbatim.
	KindText Kind = iota
	// KindCoordinate is a line carrying an X/Y coordinate pair.
	KindCoordinate
	// KindToolHeader is a coordinate line that also opens a tool block.
	KindToolHeader
)

// Value is a numeric literal together with its source decimal precision.
// Rendering a Value reproduces the notation of the input (integer vs.
// fixed-point decimal).
type Value struct {
	F    float64
	Prec int
}

// String renders the value in fixed notation with its source precision.
func (v Value) String() string {
	return strconv.FormatFloat(v.F, 'f', v.Prec, 64)
}

// Add returns a value shifted by delta, keeping the source precision.
func (v Value) Add(delta float64) Value {
	return Value{F: v.F + delta, Prec: v.Prec}
}

func parseValue(s string) (Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, err
	}
	prec := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		prec = len(s) - i - 1
	}
	return Value{F: f, Prec: prec}, nil
}

// Coord holds the coordinate tokens parsed from a single line.
// Tool is the literal tool-definition token (e.g. "T02"); it is empty for
// coordinate lines that do not open a block.
type Coord struct {
	X, Y    Value
	Tool    string
	ToolNum int
}

// Line is one line of a CNC program: the raw text plus any parsed
// coordinate. Lines are immutable once parsed.
type Line struct {
	Num   int    // 1-based line number in the source
	Raw   string // original text, without trailing newline
	Coord *Coord // nil for plain-text lines
}

// Kind returns the line's classification.
func (l Line) Kind() Kind {
	switch {
	case l.Coord == nil:
		return KindText
	case l.Coord.Tool != "":
		return KindToolHeader
	default:
		return KindCoordinate
	}
}

// Render returns the line as it is emitted: coordinate lines in canonical
// X…Y…[T…] form, text lines verbatim.
func (l Line) Render() string {
	if l.Coord == nil {
		return l.Raw
	}
	var b strings.Builder
	b.WriteByte('X')
	b.WriteString(l.Coord.X.String())
	b.WriteByte('Y')
	b.WriteString(l.Coord.Y.String())
	b.WriteString(l.Coord.Tool)
	return b.String()
}
