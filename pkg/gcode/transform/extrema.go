package transform

import (
	"strings"

	"github.com/adamValent/CNC-code-utility/pkg/gcode"
)

// NoData is the report marker for an axis with no observed values.
const NoData = "-"

// Extrema accumulates running min/max values per axis. The zero value is
// ready to use; axes stay unset until a coordinate is observed.
type Extrema struct {
	XMin, XMax gcode.Value
	YMin, YMax gcode.Value

	hasX, hasY bool
}

// Observe folds one coordinate into the accumulator.
func (e *Extrema) Observe(c *gcode.Coord) {
	if !e.hasX || c.X.F < e.XMin.F {
		e.XMin = c.X
	}
	if !e.hasX || c.X.F > e.XMax.F {
		e.XMax = c.X
	}
	e.hasX = true

	if !e.hasY || c.Y.F < e.YMin.F {
		e.YMin = c.Y
	}
	if !e.hasY || c.Y.F > e.YMax.F {
		e.YMax = c.Y
	}
	e.hasY = true
}

// HasX reports whether any X value has been observed.
func (e *Extrema) HasX() bool { return e.hasX }

// HasY reports whether any Y value has been observed.
func (e *Extrema) HasY() bool { return e.hasY }

// String renders the summary as x_min/x_max/y_min/y_max, each number in the
// notation of the value it came from, with NoData filling unset axes.
func (e *Extrema) String() string {
	slots := []string{NoData, NoData, NoData, NoData}
	if e.hasX {
		slots[0] = e.XMin.String()
		slots[1] = e.XMax.String()
	}
	if e.hasY {
		slots[2] = e.YMin.String()
		slots[3] = e.YMax.String()
	}
	return strings.Join(slots, "/")
}

// Scan folds every parsed coordinate of p into a fresh accumulator. Run
// Offset first: the reported extrema cover the post-offset values.
func Scan(p *gcode.Program) *Extrema {
	e := &Extrema{}
	for _, l := range p.Lines {
		if l.Coord != nil {
			e.Observe(l.Coord)
		}
	}
	return e
}
