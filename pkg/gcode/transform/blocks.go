package transform

import (
	"sort"

	"github.com/adamValent/CNC-code-utility/pkg/gcode"
)

// PrologueNum is the sort key of the prologue block. It is below every valid
// tool number, so a plain stable sort keeps the prologue first.
const PrologueNum = -1

// Block is a contiguous run of lines from one tool-header line up to (not
// including) the next. The prologue block has no header: Tool is empty and
// Num is PrologueNum.
type Block struct {
	Tool  string // header token, e.g. "T02"
	Num   int    // numeric tool id; PrologueNum for the prologue
	Lines []gcode.Line
}

// Segment splits p into blocks. A new block begins at every tool-header
// line; lines before the first header form the prologue. A program with no
// headers yields the prologue alone. The prologue is omitted when empty.
func Segment(p *gcode.Program) []Block {
	var blocks []Block
	cur := Block{Num: PrologueNum}

	for _, l := range p.Lines {
		if l.Kind() == gcode.KindToolHeader {
			if len(cur.Lines) > 0 {
				blocks = append(blocks, cur)
			}
			cur = Block{Tool: l.Coord.Tool, Num: l.Coord.ToolNum}
		}
		cur.Lines = append(cur.Lines, l)
	}
	if len(cur.Lines) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}

// SortBlocks returns the blocks ordered by ascending tool number. The sort
// is stable: blocks sharing a tool id keep their input order, and an already
// sorted sequence comes back unchanged. The input slice is not modified.
func SortBlocks(blocks []Block) []Block {
	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Num < sorted[j].Num
	})
	return sorted
}

// Join concatenates the blocks back into a program, each block's internal
// line order preserved.
func Join(blocks []Block) *gcode.Program {
	p := &gcode.Program{}
	for _, b := range blocks {
		p.Lines = append(p.Lines, b.Lines...)
	}
	return p
}
