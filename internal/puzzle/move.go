package puzzle

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/duke-git/lancet/v2/slice"

	"sudoku_puzzle_go/internal/types"
)

// ErrInvalidMove matches every rejected move via errors.Is.
var ErrInvalidMove = errors.New("invalid move")

// InvalidMoveError rejects a move request. Row, Col and Letter are only
// meaningful once the description parsed.
type InvalidMoveError struct {
	Move   string
	Row    int
	Col    int
	Letter types.Cell
	Reason string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %q: %s", e.Move, e.Reason)
}

func (e *InvalidMoveError) Unwrap() error { return ErrInvalidMove }

// movePattern accepts the textual move format "(R, C) -> S": decimal row
// and column indices separated by ", " inside parentheses, then a single
// letter. The format is a fixed boundary kept compatible with existing
// move logs, not a grammar to extend.
var movePattern = regexp.MustCompile(`^\((\d+), (\d+)\) -> (.)$`)

// Move validates desc against the state and returns the resulting state.
// It fails with *InvalidMoveError when desc does not parse, the
// coordinates fall outside the board, the target cell is already filled,
// or the letter is not consistent with the cell's row, column and
// sub-block. The receiver is never modified.
func (p *SudokuPuzzle) Move(desc string) (Puzzle, error) {
	match := movePattern.FindStringSubmatch(desc)
	if match == nil {
		return nil, &InvalidMoveError{Move: desc, Reason: `want "(R, C) -> S"`}
	}
	row, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, &InvalidMoveError{Move: desc, Reason: "row is not a valid number"}
	}
	col, err := strconv.Atoi(match[2])
	if err != nil {
		return nil, &InvalidMoveError{Move: desc, Reason: "column is not a valid number"}
	}
	letter := match[3][0]

	if row >= p.size || col >= p.size {
		return nil, &InvalidMoveError{
			Move: desc, Row: row, Col: col, Letter: letter,
			Reason: fmt.Sprintf("cell (%d, %d) is outside the %dx%d board", row, col, p.size, p.size),
		}
	}
	if p.grid.Cells[row][col] != types.Blank {
		return nil, &InvalidMoveError{
			Move: desc, Row: row, Col: col, Letter: letter,
			Reason: fmt.Sprintf("cell (%d, %d) is already filled", row, col),
		}
	}
	// Membership in the consistent set subsumes both "letter outside the
	// alphabet" and "letter already used in row/column/block".
	if !slice.Contain(p.possibleLetters(row, col), letter) {
		return nil, &InvalidMoveError{
			Move: desc, Row: row, Col: col, Letter: letter,
			Reason: fmt.Sprintf("letter %c conflicts with row, column or block at (%d, %d)", letter, row, col),
		}
	}
	return p.extend(letter, row, col), nil
}
