package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 8 // Width of each cell (including the left border)
	cellHeight = 4 // Height of each cell (including the top border)
	hudHeight  = 3

	boardW = BoardSize*cellWidth + 1  // +1 for right border
	boardH = BoardSize*cellHeight + 1 // +1 for bottom border

	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 1
)

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(dst, g.Frame())
}

// RenderFrame draws a frame centered on dst. Slides, when present, replace
// the static grid; otherwise the grid is drawn with spawn tiles scaled in.
func RenderFrame(dst *core.Screen, f Frame) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight

	renderHUD(dst, f, boardX)
	renderGrid(dst, boardX, boardY)

	if len(f.Slides) > 0 {
		for _, a := range f.Slides {
			row, col := a.Position()
			drawTile(dst, boardX, boardY, row, col, a.Move.Value, 1)
		}
	} else {
		scales := make(map[Cell]float64, len(f.Spawns))
		for _, sp := range f.Spawns {
			scales[sp.Spawn.Cell] = sp.Scale
		}
		for y := range BoardSize {
			for x := range BoardSize {
				val := f.Grid[y][x]
				if val == 0 {
					continue
				}
				scale, ok := scales[Cell{Row: y, Col: x}]
				if !ok {
					scale = 1
				}
				drawTile(dst, boardX, boardY, float64(y), float64(x), val, scale)
			}
		}
	}

	if f.GameOver {
		board := core.NewRect(boardX, boardY, boardW, boardH)
		cx, cy := board.Center()
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(f.Grid))
		drawOverlay(dst, cx, cy, "GAME OVER", maxStr, "Press R for a new game")
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorAlert)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorMuted)
}

// renderHUD draws the title, score and max tile.
func renderHUD(dst *core.Screen, f Frame, boardX int) {
	title := "2 0 4 8"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorAccent)

	dst.DrawTextColored(boardX, 1, fmt.Sprintf("Score: %d", f.Score), core.ColorAccent)

	maxStr := fmt.Sprintf("Max: %d", MaxTile(f.Grid))
	dst.DrawTextColored(boardX+boardW-len(maxStr), 1, maxStr, core.ColorMuted)
}

// renderGrid draws the 4x4 cell borders.
func renderGrid(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetWithColor(px, py, corner, core.ColorFrame)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetWithColor(px+i, py, '─', core.ColorFrame)
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetWithColor(px, py+i, '│', core.ColorFrame)
				}
			}
		}
	}
}

// drawTile draws one tile at fractional cell coordinates. Small scales
// draw a dot, medium scales the bare value, full scale a boxed value.
func drawTile(dst *core.Screen, boardX, boardY int, row, col float64, value int, scale float64) {
	x := boardX + 1 + int(math.Round(col*cellWidth))
	y := boardY + 1 + int(math.Round(row*cellHeight))
	inner := core.NewRect(x, y, cellWidth-1, cellHeight-1)
	color := core.TileColor(value)
	cx, cy := inner.Center()

	switch {
	case scale < 1.0/3:
		dst.SetWithColor(cx, cy, '·', color)
		return
	case scale < 2.0/3:
		valStr := strconv.Itoa(value)
		dst.DrawTextColored(cx-len(valStr)/2, cy, valStr, color)
		return
	}

	dst.FillRect(inner, ' ', color)
	dst.DrawBox(inner, color)
	valStr := strconv.Itoa(value)
	dst.DrawTextColored(inner.X+(inner.W-len(valStr))/2, cy, valStr, color)
}

// drawOverlay draws a centered boxed message.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorAlert)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorAlert)
	}
}
