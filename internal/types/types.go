package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Cell holds one uppercase letter from the board's alphabet prefix,
// or Blank for an unfilled square.
type Cell = byte

// Blank marks an unfilled cell.
const Blank Cell = ' '

// Sizes lists the supported board edge lengths. Every size is a perfect
// square so the board tiles evenly into sub-blocks.
var Sizes = []int{4, 9, 16, 25}

// ErrMalformedGrid reports an initial grid that violates the shape or
// alphabet assumptions.
var ErrMalformedGrid = errors.New("malformed grid")

// Alphabet returns the letters available on a board of edge length size,
// in fixed ascending order. A 4x4 board uses A-D, a 25x25 board A-Y.
func Alphabet(size int) string {
	return letters[:size]
}

// BoxSize returns the sub-block edge length for a board edge length.
func BoxSize(size int) int {
	return int(math.Sqrt(float64(size)))
}

// Grid is a square board of letter cells, addressed row-major by
// zero-based (row, col).
type Grid struct {
	Size  int
	Cells [][]Cell
}

// NewGrid creates a blank grid of the given edge length.
func NewGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
		for j := range cells[i] {
			cells[i][j] = Blank
		}
	}
	return &Grid{Size: size, Cells: cells}
}

// FromRows builds a grid from one string per row. Rows shorter than the
// board edge are padded with blanks on the right.
func FromRows(rows []string) *Grid {
	g := NewGrid(len(rows))
	for i, row := range rows {
		for j := 0; j < len(row) && j < g.Size; j++ {
			g.Cells[i][j] = row[j]
		}
	}
	return g
}

// Clone returns a deep copy sharing no row storage with the receiver.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.Size)
	for i := range cells {
		cells[i] = make([]Cell, g.Size)
		copy(cells[i], g.Cells[i])
	}
	return &Grid{Size: g.Size, Cells: cells}
}

// Equal reports cell-for-cell equality.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Size != other.Size {
		return false
	}
	for i := range g.Cells {
		for j := range g.Cells[i] {
			if g.Cells[i][j] != other.Cells[i][j] {
				return false
			}
		}
	}
	return true
}

// Key returns the full grid content as a string, usable as a map key
// when a search driver deduplicates visited states.
func (g *Grid) Key() string {
	var b strings.Builder
	b.Grow(g.Size * (g.Size + 1))
	for _, row := range g.Cells {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// Validate fails fast when the grid violates the shape or alphabet
// assumptions: size outside Sizes, non-square rows, or a non-blank cell
// outside the alphabet prefix.
func (g *Grid) Validate() error {
	if !slice.Contain(Sizes, g.Size) || len(g.Cells) != g.Size {
		return fmt.Errorf("%w: size must be one of %v, got %d rows", ErrMalformedGrid, Sizes, len(g.Cells))
	}
	alphabet := Alphabet(g.Size)
	for i, row := range g.Cells {
		if len(row) != g.Size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, i, len(row), g.Size)
		}
		for j, c := range row {
			if c != Blank && !strings.ContainsRune(alphabet, rune(c)) {
				return fmt.Errorf("%w: cell (%d, %d) holds %q, want blank or one of %s", ErrMalformedGrid, i, j, c, alphabet)
			}
		}
	}
	return nil
}

type gridJSON struct {
	Size int      `json:"size"`
	Rows []string `json:"rows"`
}

// MarshalJSON encodes the grid as {"size": n, "rows": ["AB D", ...]}.
func (g *Grid) MarshalJSON() ([]byte, error) {
	rows := make([]string, g.Size)
	for i, row := range g.Cells {
		rows[i] = string(row)
	}
	return json.Marshal(gridJSON{Size: g.Size, Rows: rows})
}

// UnmarshalJSON decodes the ToJSON format. Missing or short rows are
// padded with blanks; shape errors surface later via Validate.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Size == 0 {
		raw.Size = len(raw.Rows)
	}
	fresh := NewGrid(raw.Size)
	for i, row := range raw.Rows {
		if i >= raw.Size {
			break
		}
		for j := 0; j < len(row) && j < raw.Size; j++ {
			fresh.Cells[i][j] = row[j]
		}
	}
	*g = *fresh
	return nil
}

// ToJSON converts the grid to JSON bytes
func (g *Grid) ToJSON() ([]byte, error) {
	return json.Marshal(g)
}

// FromJSON creates a Grid from JSON bytes
func FromJSON(data []byte) (*Grid, error) {
	var grid Grid
	err := json.Unmarshal(data, &grid)
	return &grid, err
}
