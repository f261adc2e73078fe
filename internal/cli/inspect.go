package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/adamValent/CNC-code-utility/pkg/gcode"
	"github.com/adamValent/CNC-code-utility/pkg/gcode/transform"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing tool blocks.
func (c *CLI) inspectCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect <program-file>",
		Short: "Browse a program's tool blocks interactively",
		Long: `Browse a program's tool blocks interactively.

Shows each block (and the prologue, if any) with its line span and per-block
coordinate ranges as parsed from the source, before any offset is applied.
Use --plain to print the table and exit without the interactive browser.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0], plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the block table without the interactive browser")

	return cmd
}

// runInspect parses and segments the program, then shows the block browser.
func (c *CLI) runInspect(input string, plain bool) error {
	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	prog, err := gcode.Parse(in)
	if err != nil {
		return err
	}

	items := blockItems(transform.Segment(prog))
	if len(items) == 0 {
		printError("No lines in %s", input)
		return nil
	}

	if plain {
		fmt.Println(blockTable(items, -1))
		return nil
	}

	m := NewBlockListModel(input, items)
	_, err = tea.NewProgram(m).Run()
	return err
}

// blockItem pairs a block with its per-block coordinate ranges.
type blockItem struct {
	block   transform.Block
	extrema *transform.Extrema
}

func blockItems(blocks []transform.Block) []blockItem {
	items := make([]blockItem, len(blocks))
	for i, b := range blocks {
		e := &transform.Extrema{}
		for _, l := range b.Lines {
			if l.Coord != nil {
				e.Observe(l.Coord)
			}
		}
		items[i] = blockItem{block: b, extrema: e}
	}
	return items
}

// =============================================================================
// BlockListModel - Interactive block browser
// =============================================================================

// BlockListModel is the bubbletea model for browsing tool blocks.
type BlockListModel struct {
	File   string
	Items  []blockItem
	Cursor int
	Detail bool // showing the selected block's lines
}

// NewBlockListModel creates a new block browser model.
func NewBlockListModel(file string, items []blockItem) BlockListModel {
	return BlockListModel{File: file, Items: items}
}

func (m BlockListModel) Init() tea.Cmd {
	return nil
}

func (m BlockListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if !m.Detail && m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if !m.Detail && m.Cursor < len(m.Items)-1 {
				m.Cursor++
			}
		case "enter":
			m.Detail = !m.Detail
		}
	}
	return m, nil
}

func (m BlockListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Tool Blocks – %s", m.File)))
	b.WriteString("\n")
	if m.Detail {
		b.WriteString(listDimStyle.Render("esc back  q quit"))
		b.WriteString("\n\n")
		b.WriteString(m.detailView())
		return b.String()
	}
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ lines  q quit"))
	b.WriteString("\n\n")
	b.WriteString(blockTable(m.Items, m.Cursor))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Items))))

	return b.String()
}

// detailView renders the selected block's lines.
func (m BlockListModel) detailView() string {
	var b strings.Builder
	item := m.Items[m.Cursor]

	b.WriteString(listSelectedStyle.Render(blockLabel(item.block)))
	b.WriteString("\n")
	for _, l := range item.block.Lines {
		b.WriteString("  ")
		b.WriteString(StyleValue.Render(l.Render()))
		b.WriteString("\n")
	}
	return b.String()
}

// blockTable renders the block overview. cursor marks the selected row;
// pass -1 for no selection (plain output).
func blockTable(items []blockItem, cursor int) string {
	rows := make([][]string, len(items))
	for i, item := range items {
		mark := "  "
		if i == cursor {
			mark = "▸ "
		}
		rows[i] = []string{
			mark,
			blockLabel(item.block),
			fmt.Sprintf("%d", len(item.block.Lines)),
			axisRange(item.extrema.HasX(), item.extrema.XMin, item.extrema.XMax),
			axisRange(item.extrema.HasY(), item.extrema.YMin, item.extrema.YMax),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorDim).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Block", "Lines", "X range", "Y range").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}

func blockLabel(b transform.Block) string {
	if b.Num == transform.PrologueNum {
		return "prologue"
	}
	return b.Tool
}

func axisRange(ok bool, min, max gcode.Value) string {
	if !ok {
		return transform.NoData
	}
	return min.String() + " … " + max.String()
}
