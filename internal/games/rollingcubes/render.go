package rollingcubes

import (
	"fmt"

	"github.com/vovakirdan/rollingcubes/internal/core"
	"github.com/vovakirdan/rollingcubes/internal/cubes"
)

const (
	cellWidth  = 5 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// faceColors gives each cube orientation its own color.
var faceColors = [...]core.Color{
	cubes.Empty: core.ColorDefault,
	cubes.Face1: core.ColorWhite,
	cubes.Face2: core.ColorGreen,
	cubes.Face3: core.ColorYellow,
	cubes.Face4: core.ColorBlue,
	cubes.Face5: core.ColorMagenta,
	cubes.Face6: core.ColorCyan,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Calculate board position (centered)
	boardW := cubes.Size*cellWidth + 1
	boardH := cubes.Size*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardY+boardH+1)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, step counter, timer and goal.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title())

	dst.DrawText(boardX, 1, fmt.Sprintf("Steps: %d", g.steps))

	if g.showTimer {
		timeStr := formatElapsed(g.elapsed().Milliseconds())
		timeX := max(boardX, boardX+boardW-len(timeStr))
		dst.DrawText(timeX, 1, timeStr)
	}

	goal := g.board.Goal()
	goalStr := fmt.Sprintf("Goal: all %d", goal.Int())
	goalX := boardX + (boardW-len(goalStr))/2
	dst.DrawTextColored(goalX, 2, goalStr, faceColors[goal])
}

// renderBoard draws the 4x4 grid with cubes and the cursor.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range cubes.Size + 1 {
		for x := range cubes.Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cubes.Size:
				corner = '┐'
			case y == cubes.Size && x == 0:
				corner = '└'
			case y == cubes.Size && x == cubes.Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == cubes.Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cubes.Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < cubes.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < cubes.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for row := range cubes.Size {
		for col := range cubes.Size {
			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1

			o := g.board.At(row, col)
			if o != cubes.Empty {
				dst.SetColored(cellX+1, cellY, rune('0'+o.Int()), faceColors[o])
			}

			if row == g.cursorRow && col == g.cursorCol && !g.solved {
				c := core.ColorRed
				if g.board.CanRollToEmpty(row, col) {
					c = core.ColorOrange
				}
				dst.SetColored(cellX, cellY, '[', c)
				dst.SetColored(cellX+2, cellY, ']', c)
			}
		}
	}
}

// renderFooter draws the hint line and controls.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	switch {
	case g.hint != "":
		dst.DrawTextCentered(y, g.hint)
	case g.lastMove != "":
		dst.DrawTextCentered(y, "Rolled "+g.lastMove)
	}
	dst.DrawTextCentered(y+1, g.Controls())
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.solved {
		stepsStr := fmt.Sprintf("%d steps", g.steps)
		if g.showTimer {
			stepsStr += " in " + formatElapsed(g.elapsed().Milliseconds())
		}
		g.drawOverlay(dst, centerX, centerY, "SOLVED!", stepsStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawTextColored(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// formatElapsed renders milliseconds as m:ss.t.
func formatElapsed(ms int64) string {
	minutes := ms / 60000
	seconds := (ms / 1000) % 60
	tenths := (ms / 100) % 10
	return fmt.Sprintf("%d:%02d.%d", minutes, seconds, tenths)
}
