// Package gcode parses line-oriented CNC program text into typed lines.
//
// # Lexical contract
//
// The dialect is fixed by the machine programs this tool processes. A
// coordinate appears as an X literal immediately followed by a Y literal,
// optionally followed by a tool-definition token:
//
//	X60.000Y5.000        coordinate line
//	X60.000Y5.000T02     coordinate line that opens tool block T02
//	M30                  plain text, passed through verbatim
//
// Numeric literals are signed decimals; tool ids are integers of at least two
// digits. The token triple may appear anywhere on the line; surrounding text
// is not part of the contract and is dropped when a coordinate line is
// re-rendered.
//
// # Parsing policy
//
// A line whose coordinate tokens carry a malformed numeric literal (for
// example X1.2.3Y4.000) aborts parsing with a [ParseError] identifying the
// 1-based line number and the offending token. Lines without recognized
// tokens are kept as plain text.
//
// Each parsed [Value] remembers the decimal precision of its source literal
// so transformed programs render in the same notation as their input.
package gcode
