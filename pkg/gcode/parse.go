package gcode

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/adamValent/CNC-code-utility/pkg/errors"
)

// coordRE matches the coordinate triple anywhere on a line. The numeric
// groups are deliberately loose ([0-9.]+): strconv validates the literal so
// that shapes like X1.2.3 surface as a ParseError instead of silently
// falling through as text.
var coordRE = regexp.MustCompile(`X(-?[0-9][0-9.]*)Y(-?[0-9][0-9.]*)(T[0-9]{2,})?`)

// ParseError reports a recognized coordinate token whose numeric literal
// could not be parsed. The whole run aborts; skipping the field would emit
// machine code that no longer matches its source.
type ParseError struct {
	Line  int    // 1-based line number
	Token string // offending token, e.g. "X1.2.3"
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: malformed coordinate token %q", e.Line, e.Token)
}

// Code returns the structured error code for this error type.
func (e *ParseError) Code() errors.Code {
	return errors.ErrCodeParse
}

// ParseLine tokenizes a single raw line. num is the 1-based line number used
// in error reports.
func ParseLine(raw string, num int) (Line, error) {
	m := coordRE.FindStringSubmatch(raw)
	if m == nil {
		return Line{Num: num, Raw: raw}, nil
	}

	x, err := parseValue(m[1])
	if err != nil {
		return Line{}, &ParseError{Line: num, Token: "X" + m[1]}
	}
	y, err := parseValue(m[2])
	if err != nil {
		return Line{}, &ParseError{Line: num, Token: "Y" + m[2]}
	}

	coord := &Coord{X: x, Y: y}
	if m[3] != "" {
		coord.Tool = m[3]
		n, err := strconv.Atoi(m[3][1:])
		if err != nil {
			return Line{}, &ParseError{Line: num, Token: m[3]}
		}
		coord.ToolNum = n
	}

	return Line{Num: num, Raw: raw, Coord: coord}, nil
}

// Program is the full parsed line sequence of one CNC file.
type Program struct {
	Lines []Line
}

// Parse reads all lines from r. It returns a ParseError on the first
// malformed coordinate token.
func Parse(r io.Reader) (*Program, error) {
	p := &Program{}
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		line, err := ParseLine(scanner.Text(), num)
		if err != nil {
			return nil, err
		}
		p.Lines = append(p.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
	}
	return p, nil
}

// Render writes the program to w, one rendered line per input line.
// An empty program writes nothing.
func (p *Program) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, l := range p.Lines {
		if _, err := bw.WriteString(l.Render()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Empty reports whether the program has no lines.
func (p *Program) Empty() bool { return len(p.Lines) == 0 }

// CoordCount returns the number of lines carrying a parsed coordinate.
func (p *Program) CoordCount() int {
	n := 0
	for _, l := range p.Lines {
		if l.Coord != nil {
			n++
		}
	}
	return n
}
