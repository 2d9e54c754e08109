package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sudoku_puzzle_go/internal/puzzle"
	"sudoku_puzzle_go/internal/types"
	"sudoku_puzzle_go/internal/visualizer"
)

var log = logrus.New()

var gridPath string

func loadPuzzle() (*puzzle.SudokuPuzzle, error) {
	if gridPath == "" {
		return nil, fmt.Errorf("no grid file: pass --grid or set SUDOKU_GRID")
	}
	data, err := os.ReadFile(gridPath)
	if err != nil {
		return nil, err
	}
	grid, err := types.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", gridPath, err)
	}
	return puzzle.New(grid)
}

func savePuzzle(p *puzzle.SudokuPuzzle, path string) error {
	grid := types.NewGrid(p.Size())
	for i := 0; i < p.Size(); i++ {
		for j := 0; j < p.Size(); j++ {
			grid.Cells[i][j] = p.At(i, j)
		}
	}
	data, err := grid.ToJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Render the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPuzzle()
			if err != nil {
				return err
			}
			visualizer.NewVisualizer(p).Print()
			return nil
		},
	}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether the board is solved",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPuzzle()
			if err != nil {
				return err
			}
			if p.IsSolved() {
				fmt.Println("solved")
			} else {
				fmt.Println("not solved")
			}
			return nil
		},
	}
}

func newCandidatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates",
		Short: "List the legal moves for the first blank cell",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPuzzle()
			if err != nil {
				return err
			}
			children := p.Extensions()
			if len(children) == 0 {
				fmt.Println("no blank cells")
				return nil
			}
			for _, child := range children {
				hint, err := p.Hint(child.(*puzzle.SudokuPuzzle))
				if err != nil {
					return err
				}
				fmt.Println(hint)
			}
			return nil
		},
	}
}

func newMoveCommand() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   `move "(R, C) -> S"`,
		Short: "Apply a move and render the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPuzzle()
			if err != nil {
				return err
			}
			next, err := p.Move(args[0])
			if err != nil {
				return err
			}
			np := next.(*puzzle.SudokuPuzzle)
			visualizer.NewVisualizer(np).Print()
			if np.IsSolved() {
				fmt.Println("solved!")
			}
			if outPath != "" {
				if err := savePuzzle(np, outPath); err != nil {
					return err
				}
				log.WithField("path", outPath).Info("board written")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the resulting board to this file")
	return cmd
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Debug("loaded .env")
	}
	if level, err := logrus.ParseLevel(os.Getenv("SUDOKU_LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Inspect and play letter Sudoku boards",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&gridPath, "grid", os.Getenv("SUDOKU_GRID"), "grid JSON file")
	root.AddCommand(newShowCommand(), newCheckCommand(), newCandidatesCommand(), newMoveCommand())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
