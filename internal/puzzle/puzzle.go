// Package puzzle implements the letter-Sudoku state engine: an immutable
// board state with solved-state detection, consistent-letter computation,
// successor generation, validated move application and move-diff hints.
package puzzle

// Puzzle is the abstract game state a generic search driver operates on.
// Implementations are immutable: every transition returns a fresh state
// and never mutates the receiver, so states can be shared read-only
// across concurrent search branches.
type Puzzle interface {
	// IsSolved reports whether the state satisfies the completion property.
	IsSolved() bool

	// Extensions returns the child states obtained by filling one
	// canonical blank cell with every letter that violates no constraint.
	// The slice is empty when no blank cell remains.
	Extensions() []Puzzle

	// Move validates a textual move description against the state and
	// returns the resulting state, or an *InvalidMoveError.
	Move(desc string) (Puzzle, error)

	// Equal reports whether other holds an identical board.
	Equal(other Puzzle) bool
}
