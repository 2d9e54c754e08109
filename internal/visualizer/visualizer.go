// Package visualizer renders a puzzle board as a human-readable text
// block: cycling 0-9 column and row headers, a vertical divider every
// sub-block column and a dashed divider every sub-block row.
package visualizer

import (
	"fmt"
	"strings"

	"sudoku_puzzle_go/internal/types"
)

// Board is the read access the renderer needs from a puzzle state.
type Board interface {
	Size() int
	At(row, col int) types.Cell
}

// Visualizer handles board rendering
type Visualizer struct {
	board Board
}

func NewVisualizer(board Board) *Visualizer {
	return &Visualizer{board: board}
}

// String returns the rendered block. Blanks stay spaces; trailing spaces
// are trimmed per line so partially filled rows stay short.
func (v *Visualizer) String() string {
	n := v.board.Size()
	m := types.BoxSize(n)
	divider := " " + strings.Repeat("-", n+m) + "\n"

	var b strings.Builder

	// Column header, digits cycling 0-9.
	b.WriteString("  ")
	for col := 0; col < n; col++ {
		fmt.Fprintf(&b, "%d", col%10)
		if (col+1)%m == 0 && col+1 != n {
			b.WriteByte('|')
		}
	}
	b.WriteByte('\n')
	b.WriteString(divider)

	for row := 0; row < n; row++ {
		line := fmt.Sprintf("%d|", row%10)
		for col := 0; col < n; col++ {
			line += string(v.board.At(row, col))
			if (col+1)%m == 0 && col+1 != n {
				line += "|"
			}
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')

		if (row+1)%m == 0 && row+1 != n {
			b.WriteString(divider)
		}
	}

	return b.String()
}

// Print writes the rendered block to stdout.
func (v *Visualizer) Print() {
	fmt.Print(v.String())
}
