package transform

import "github.com/adamValent/CNC-code-utility/pkg/gcode"

// Rule describes the conditional Y-offset applied to coordinate lines.
type Rule struct {
	Threshold float64 // X value above which the shift applies (strict)
	Shift     float64 // amount added to Y
}

// DefaultRule is the machine's standard offset: X > 50 shifts Y by +10.
var DefaultRule = Rule{Threshold: 50, Shift: 10}

// Offset returns a copy of p with the rule applied to every coordinate line
// exactly once. Text lines and coordinates at or below the threshold are
// carried over unchanged.
func Offset(p *gcode.Program, rule Rule) *gcode.Program {
	out := &gcode.Program{Lines: make([]gcode.Line, len(p.Lines))}
	for i, l := range p.Lines {
		if l.Coord != nil && l.Coord.X.F > rule.Threshold {
			c := *l.Coord
			c.Y = c.Y.Add(rule.Shift)
			l.Coord = &c
		}
		out.Lines[i] = l
	}
	return out
}
