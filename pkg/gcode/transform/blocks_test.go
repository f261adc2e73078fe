package transform

import (
	"bytes"
	"testing"
)

const sampleProgram = `prologue comment
X10.000Y1.000
X60.000Y5.000T02
X61.000Y6.000
X40.000Y3.000T01
X41.000Y4.000
`

func TestSegment(t *testing.T) {
	p := mustParse(t, sampleProgram)
	blocks := Segment(p)

	if len(blocks) != 3 {
		t.Fatalf("len(blocks) = %d, want 3", len(blocks))
	}

	prologue := blocks[0]
	if prologue.Tool != "" || prologue.Num != PrologueNum {
		t.Errorf("prologue = {%q %d}, want empty tool, PrologueNum", prologue.Tool, prologue.Num)
	}
	if len(prologue.Lines) != 2 {
		t.Errorf("prologue has %d lines, want 2", len(prologue.Lines))
	}

	if blocks[1].Tool != "T02" || blocks[1].Num != 2 {
		t.Errorf("blocks[1] = {%q %d}, want {T02 2}", blocks[1].Tool, blocks[1].Num)
	}
	if len(blocks[1].Lines) != 2 {
		t.Errorf("T02 block has %d lines, want 2", len(blocks[1].Lines))
	}
	if blocks[2].Tool != "T01" || len(blocks[2].Lines) != 2 {
		t.Errorf("blocks[2] = {%q %d lines}, want {T01 2 lines}", blocks[2].Tool, len(blocks[2].Lines))
	}
}

func TestSegment_NoHeaders(t *testing.T) {
	p := mustParse(t, "just text\nX10.000Y1.000\n")
	blocks := Segment(p)
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	if blocks[0].Num != PrologueNum {
		t.Errorf("Num = %d, want PrologueNum", blocks[0].Num)
	}
	if len(blocks[0].Lines) != 2 {
		t.Errorf("block has %d lines, want 2", len(blocks[0].Lines))
	}
}

func TestSegment_HeaderFirstLine(t *testing.T) {
	p := mustParse(t, "X60.000Y5.000T02\nX61.000Y6.000\n")
	blocks := Segment(p)
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1 (no prologue)", len(blocks))
	}
	if blocks[0].Tool != "T02" {
		t.Errorf("Tool = %q, want T02", blocks[0].Tool)
	}
}

func TestSegment_TrailingTextBelongsToLastBlock(t *testing.T) {
	p := mustParse(t, "X60.000Y5.000T02\nM30\n")
	blocks := Segment(p)
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	if len(blocks[0].Lines) != 2 {
		t.Errorf("block has %d lines, want 2", len(blocks[0].Lines))
	}
}

func TestSegment_Empty(t *testing.T) {
	p := mustParse(t, "")
	if blocks := Segment(p); len(blocks) != 0 {
		t.Errorf("len(blocks) = %d, want 0", len(blocks))
	}
}

func TestSegmentJoin_Lossless(t *testing.T) {
	p := mustParse(t, sampleProgram)
	joined := Join(Segment(p))

	if len(joined.Lines) != len(p.Lines) {
		t.Fatalf("joined %d lines, want %d", len(joined.Lines), len(p.Lines))
	}

	var got, want bytes.Buffer
	if err := joined.Render(&got); err != nil {
		t.Fatal(err)
	}
	if err := p.Render(&want); err != nil {
		t.Fatal(err)
	}
	if got.String() != want.String() {
		t.Errorf("Join(Segment(p)) = %q, want %q", got.String(), want.String())
	}
}

func TestSortBlocks(t *testing.T) {
	p := mustParse(t, sampleProgram)
	sorted := SortBlocks(Segment(p))

	wantOrder := []int{PrologueNum, 1, 2}
	for i, want := range wantOrder {
		if sorted[i].Num != want {
			t.Errorf("sorted[%d].Num = %d, want %d", i, sorted[i].Num, want)
		}
	}
}

func TestSortBlocks_StableForDuplicates(t *testing.T) {
	input := "X60.000Y5.000T02\nX1.000Y1.000\nX62.000Y6.000T02\nX2.000Y2.000\n"
	p := mustParse(t, input)
	sorted := SortBlocks(Segment(p))

	if len(sorted) != 2 {
		t.Fatalf("len(sorted) = %d, want 2", len(sorted))
	}
	// Duplicate ids keep input order: the X60 header block stays first.
	if sorted[0].Lines[0].Coord.X.F != 60 {
		t.Errorf("first duplicate block starts at X=%v, want 60", sorted[0].Lines[0].Coord.X.F)
	}
}

func TestSortBlocks_SortedIsNoop(t *testing.T) {
	input := "X1.000Y1.000T01\nX2.000Y2.000T02\nX3.000Y3.000T03\n"
	p := mustParse(t, input)
	blocks := Segment(p)
	sorted := SortBlocks(blocks)

	for i := range blocks {
		if sorted[i].Tool != blocks[i].Tool {
			t.Errorf("sorted[%d].Tool = %q, want %q", i, sorted[i].Tool, blocks[i].Tool)
		}
	}
}

func TestSortBlocks_DoesNotMutateInput(t *testing.T) {
	p := mustParse(t, sampleProgram)
	blocks := Segment(p)
	first := blocks[1].Tool
	_ = SortBlocks(blocks)
	if blocks[1].Tool != first {
		t.Errorf("input slice reordered: blocks[1].Tool = %q, want %q", blocks[1].Tool, first)
	}
}
