package puzzle

import (
	"fmt"

	"sudoku_puzzle_go/internal/types"
)

// SudokuPuzzle is one concrete Puzzle: an n-by-n letter board where every
// row, column and sub-block must end up a permutation of the first-n
// alphabet letters. The state exclusively owns its grid storage.
type SudokuPuzzle struct {
	size int
	grid *types.Grid
}

// New creates a puzzle state from an initial grid. The grid is validated
// eagerly and deep-copied so the state shares no storage with the caller.
func New(grid *types.Grid) (*SudokuPuzzle, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return &SudokuPuzzle{size: grid.Size, grid: grid.Clone()}, nil
}

// FromRows creates a puzzle state from one string per row, blanks as
// spaces. Short rows are padded on the right.
func FromRows(rows ...string) (*SudokuPuzzle, error) {
	return New(types.FromRows(rows))
}

// Size returns the board edge length.
func (p *SudokuPuzzle) Size() int { return p.size }

// At returns the cell at (row, col), types.Blank when unfilled.
func (p *SudokuPuzzle) At(row, col int) types.Cell {
	return p.grid.Cells[row][col]
}

// Key returns the board content as a map key for visited-set dedup.
func (p *SudokuPuzzle) Key() string { return p.grid.Key() }

// Equal reports cell-for-cell board equality.
func (p *SudokuPuzzle) Equal(other Puzzle) bool {
	o, ok := other.(*SudokuPuzzle)
	if !ok {
		return false
	}
	return p.grid.Equal(o.grid)
}

// String renders the board one row per line, for diagnostics.
func (p *SudokuPuzzle) String() string { return p.grid.Key() }

// IsSolved reports whether the board is completely filled and every row,
// column and sub-block holds each alphabet letter exactly once.
func (p *SudokuPuzzle) IsSolved() bool {
	for _, row := range p.grid.Cells {
		for _, c := range row {
			if c == types.Blank {
				return false
			}
		}
	}

	for _, row := range p.grid.Cells {
		if !p.isPermutation(row) {
			return false
		}
	}

	unit := make([]types.Cell, p.size)
	for col := 0; col < p.size; col++ {
		for row := 0; row < p.size; row++ {
			unit[row] = p.grid.Cells[row][col]
		}
		if !p.isPermutation(unit) {
			return false
		}
	}

	m := types.BoxSize(p.size)
	for top := 0; top < p.size; top += m {
		for left := 0; left < p.size; left += m {
			k := 0
			for i := 0; i < m; i++ {
				for j := 0; j < m; j++ {
					unit[k] = p.grid.Cells[top+i][left+j]
					k++
				}
			}
			if !p.isPermutation(unit) {
				return false
			}
		}
	}

	return true
}

// isPermutation reports whether cells holds each letter of the alphabet
// prefix exactly once.
func (p *SudokuPuzzle) isPermutation(cells []types.Cell) bool {
	seen := make(map[types.Cell]bool, p.size)
	for _, c := range cells {
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	for _, c := range []byte(types.Alphabet(p.size)) {
		if !seen[c] {
			return false
		}
	}
	return true
}

// Extensions expands the state one search level: it picks the first
// blank cell in row-major order and returns one child per letter
// consistent with the row, column and sub-block constraints, in
// ascending letter order. The deterministic cell choice bounds branching
// to a single cell and keeps the implied depth-first search complete.
func (p *SudokuPuzzle) Extensions() []Puzzle {
	row, col, ok := p.firstBlank()
	if !ok {
		return nil
	}
	letters := p.possibleLetters(row, col)
	children := make([]Puzzle, len(letters))
	for i, letter := range letters {
		children[i] = p.extend(letter, row, col)
	}
	return children
}

// firstBlank scans row 0 left to right, then row 1, and so on.
func (p *SudokuPuzzle) firstBlank() (row, col int, ok bool) {
	for i, cells := range p.grid.Cells {
		for j, c := range cells {
			if c == types.Blank {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// possibleLetters returns the letters not yet used in the row, column or
// sub-block of the blank cell (row, col), in ascending order. One O(n)
// scan per constraint family; only defined for blank cells.
func (p *SudokuPuzzle) possibleLetters(row, col int) []types.Cell {
	forbidden := make(map[types.Cell]bool, 3*p.size)

	for _, c := range p.grid.Cells[row] {
		if c != types.Blank {
			forbidden[c] = true
		}
	}
	for i := 0; i < p.size; i++ {
		if c := p.grid.Cells[i][col]; c != types.Blank {
			forbidden[c] = true
		}
	}
	m := types.BoxSize(p.size)
	top, left := row/m*m, col/m*m
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if c := p.grid.Cells[top+i][left+j]; c != types.Blank {
				forbidden[c] = true
			}
		}
	}

	possible := make([]types.Cell, 0, p.size)
	for _, c := range []byte(types.Alphabet(p.size)) {
		if !forbidden[c] {
			possible = append(possible, c)
		}
	}
	return possible
}

// extend returns a new state identical to the receiver except that the
// cell at (row, col) holds letter. The grid is fully copied; parent and
// child never share storage.
func (p *SudokuPuzzle) extend(letter types.Cell, row, col int) *SudokuPuzzle {
	grid := p.grid.Clone()
	grid.Cells[row][col] = letter
	return &SudokuPuzzle{size: p.size, grid: grid}
}

// Hint reports the move that turns the receiver into next, as a
// "(R, C) -> S" description: the first cell in row-major order that is
// blank here and filled in next. It fails when next is not a strict
// one-cell refinement of the receiver.
func (p *SudokuPuzzle) Hint(next *SudokuPuzzle) (string, error) {
	if next == nil || next.size != p.size {
		return "", fmt.Errorf("hint: states have different shapes")
	}
	found := ""
	changed := 0
	for i := 0; i < p.size; i++ {
		for j := 0; j < p.size; j++ {
			a, b := p.grid.Cells[i][j], next.grid.Cells[i][j]
			if a == b {
				continue
			}
			if a != types.Blank {
				return "", fmt.Errorf("hint: states disagree on filled cell (%d, %d)", i, j)
			}
			changed++
			if found == "" {
				found = fmt.Sprintf("(%d, %d) -> %c", i, j, b)
			}
		}
	}
	if changed == 0 {
		return "", fmt.Errorf("hint: states are identical")
	}
	if changed > 1 {
		return "", fmt.Errorf("hint: states differ in %d cells, want exactly one", changed)
	}
	return found, nil
}
