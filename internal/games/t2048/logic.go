package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four valid directions.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// Board is the 4x4 grid, indexed [row][col]. Zero is an empty cell.
type Board [BoardSize][BoardSize]int

// Cell addresses one board position.
type Cell struct {
	Row, Col int
}

// RowResult is everything CollapseRow learns about one row.
type RowResult struct {
	Row [BoardSize]int

	// Dest maps each source index to its destination index, or -1 when
	// the source cell was empty.
	Dest [BoardSize]int

	// Merged marks destination indices produced by a merge.
	Merged [BoardSize]bool

	Pairs int // Number of merges
	Score int // Sum of merged values
}

// CollapseRow slides a row to the left and merges equal neighbors.
// Tiles are scanned left to right and each tile takes part in at most one
// merge, so [2,2,2,0] becomes [4,2,0,0] and [2,2,4,0] becomes [4,4,0,0].
func CollapseRow(row [BoardSize]int) RowResult {
	var res RowResult
	for i := range res.Dest {
		res.Dest[i] = -1
	}

	srcs := make([]int, 0, BoardSize)
	for i, v := range row {
		if v != 0 {
			srcs = append(srcs, i)
		}
	}

	write := 0
	for k := 0; k < len(srcs); write++ {
		a := srcs[k]
		if k+1 < len(srcs) && row[srcs[k+1]] == row[a] {
			b := srcs[k+1]
			merged := row[a] * 2
			res.Row[write] = merged
			res.Dest[a] = write
			res.Dest[b] = write
			res.Merged[write] = true
			res.Pairs++
			res.Score += merged
			k += 2
			continue
		}

		res.Row[write] = row[a]
		res.Dest[a] = write
		k++
	}

	return res
}

func reverseRows(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[y][BoardSize-1-x]
		}
	}
	return result
}

func transpose(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[x][y]
		}
	}
	return result
}

// RotateToLeft reorients the board so that a move in dir becomes a move
// to the left. Invalid directions leave the board unchanged.
func RotateToLeft(board Board, dir Direction) Board {
	switch dir {
	case DirRight:
		return reverseRows(board)
	case DirUp:
		return transpose(board)
	case DirDown:
		return reverseRows(transpose(board))
	default:
		return board
	}
}

// RotateBack undoes RotateToLeft for the same direction.
func RotateBack(board Board, dir Direction) Board {
	switch dir {
	case DirRight:
		return reverseRows(board)
	case DirUp:
		return transpose(board)
	case DirDown:
		return transpose(reverseRows(board))
	default:
		return board
	}
}

// OrientedCell maps a position in the board produced by RotateToLeft(_, dir)
// back to the position in the original board.
func OrientedCell(dir Direction, row, col int) Cell {
	last := BoardSize - 1
	switch dir {
	case DirRight:
		return Cell{Row: row, Col: last - col}
	case DirUp:
		return Cell{Row: col, Col: row}
	case DirDown:
		return Cell{Row: last - col, Col: row}
	default:
		return Cell{Row: row, Col: col}
	}
}

// TileMove records where one tile went during a move.
type TileMove struct {
	From   Cell
	To     Cell
	Value  int  // Value before the move
	Result int  // Value at the destination after the move
	Merged bool // The destination was produced by a merge
}

// Stationary reports whether the tile stayed in place.
func (m TileMove) Stationary() bool {
	return m.From == m.To
}

// Outcome is the pure result of sliding a board in one direction.
type Outcome struct {
	Board  Board
	Tiles  []TileMove // Every tile of the input board, in scan order
	Score  int
	Merges int
	Moved  bool
}

// Slide applies a move to the board without spawning.
// An invalid direction yields an unmoved outcome.
func Slide(board Board, dir Direction) Outcome {
	if !dir.Valid() {
		return Outcome{Board: board}
	}

	oriented := RotateToLeft(board, dir)
	var collapsed Board
	out := Outcome{Tiles: make([]TileMove, 0, BoardSize*BoardSize)}

	for r := range BoardSize {
		res := CollapseRow(oriented[r])
		collapsed[r] = res.Row
		out.Score += res.Score
		out.Merges += res.Pairs

		for c, dst := range res.Dest {
			if dst < 0 {
				continue
			}
			out.Tiles = append(out.Tiles, TileMove{
				From:   OrientedCell(dir, r, c),
				To:     OrientedCell(dir, r, dst),
				Value:  oriented[r][c],
				Result: res.Row[dst],
				Merged: res.Merged[dst],
			})
		}
	}

	out.Board = RotateBack(collapsed, dir)
	out.Moved = out.Board != board
	return out
}

// EmptyCells returns all empty cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, Cell{Row: y, Col: x})
			}
		}
	}
	return cells
}

// HasAnyMove reports whether some direction would change the board:
// an empty cell exists or two orthogonal neighbors hold equal values.
func HasAnyMove(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if val == 0 {
				return true
			}
			if x < BoardSize-1 && board[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] > maxVal {
				maxVal = board[y][x]
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func Sum(board Board) int {
	total := 0
	for y := range BoardSize {
		for x := range BoardSize {
			total += board[y][x]
		}
	}
	return total
}
