package visualizer

import (
	"strings"
	"testing"

	"sudoku_puzzle_go/internal/puzzle"
)

func mustPuzzle(t *testing.T, rows ...string) *puzzle.SudokuPuzzle {
	t.Helper()
	p, err := puzzle.FromRows(rows...)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	return p
}

func TestString4x4(t *testing.T) {
	p := mustPuzzle(t, "ABCD", "DCBA", " D", "")
	want := strings.Join([]string{
		"  01|23",
		" ------",
		"0|AB|CD",
		"1|DC|BA",
		" ------",
		"2| D|",
		"3|  |",
		"",
	}, "\n")
	if got := NewVisualizer(p).String(); got != want {
		t.Fatalf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestString4x4Partial(t *testing.T) {
	p := mustPuzzle(t, "ABCD", "CDAB", "BAD", "DC")
	want := strings.Join([]string{
		"  01|23",
		" ------",
		"0|AB|CD",
		"1|CD|AB",
		" ------",
		"2|BA|D",
		"3|DC|",
		"",
	}, "\n")
	if got := NewVisualizer(p).String(); got != want {
		t.Fatalf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestString9x9Layout(t *testing.T) {
	p := mustPuzzle(t, "", "", "", "", "", "", "", "", "")
	got := NewVisualizer(p).String()
	lines := strings.Split(got, "\n")

	if lines[0] != "  012|345|678" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != " ------------" {
		t.Fatalf("divider = %q", lines[1])
	}
	// 1 header + 3 dividers + 9 rows, plus the empty split tail
	if len(lines) != 14 {
		t.Fatalf("got %d lines, want 14", len(lines))
	}
	if lines[5] != " ------------" {
		t.Fatalf("expected divider after third row, got %q", lines[5])
	}
}
