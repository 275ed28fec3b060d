package numblast

import (
	"fmt"

	"github.com/mkarpenko/numblast/internal/core"
)

const (
	cellWidth = 3 // Columns per board cell: marker, digit, marker
	hudHeight = 3 // Lines above the board
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.grid.Size()
	boardW := size*cellWidth + 2
	boardH := size + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.boardRect = core.NewRect(boardX, boardY, boardW, boardH)

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst)
	g.renderPowerUp(dst, boardX, boardY+boardH)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title, score, timer, level and combo.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boardX, 1, scoreStr)

	levelStr := fmt.Sprintf("Level %d/%d", g.level, g.rules.MaxLevel)
	levelX := boardX + boardW - len(levelStr)
	if levelX < boardX+len(scoreStr)+2 {
		levelX = boardX + len(scoreStr) + 2
	}
	dst.DrawText(levelX, 1, levelStr)

	comboStr := fmt.Sprintf("Combo: x%d", g.combo)
	dst.DrawText(boardX, 2, comboStr)

	if g.mode == ModeClassic {
		timeStr := fmt.Sprintf("Time: %ds", core.Max(0, g.timeLeft))
		timeColor := core.ColorDefault
		if g.timeLeft <= g.cfg.Timer.LowTimeThreshold {
			timeColor = core.ColorBrightRed
		}
		timeX := boardX + boardW - len(timeStr)
		dst.DrawTextColored(timeX, 2, timeStr, timeColor)
	}
}

// renderBoard draws the bordered digit grid with cursor and hover highlight.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(g.boardRect)

	inPreview := make(map[Coord]bool, len(g.preview))
	for _, c := range g.preview {
		inPreview[c] = true
	}

	size := g.grid.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := C(row, col)
			x := g.boardRect.X + 1 + col*cellWidth
			y := g.boardRect.Y + 1 + row

			if g.grid.IsEmpty(c) {
				dst.SetColored(x+1, y, '·', core.ColorGray)
				continue
			}

			digit := int(g.grid.digit(c))
			dst.SetColored(x+1, y, rune('0'+digit), core.DigitColor(digit))

			switch {
			case c == g.cursor:
				dst.SetColored(x, y, '[', core.ColorBrightWhite)
				dst.SetColored(x+2, y, ']', core.ColorBrightWhite)
			case inPreview[c]:
				dst.SetColored(x, y, '(', core.ColorGray)
				dst.SetColored(x+2, y, ')', core.ColorGray)
			}
		}
	}
}

// renderPowerUp draws the pending power-up banner below the board.
func (g *Game) renderPowerUp(dst *core.Screen, boardX, y int) {
	if g.powerUp == nil {
		return
	}

	secs := (g.powerUp.TicksRemaining(g.tick) + g.tps - 1) / g.tps
	banner := fmt.Sprintf("%c %s - press X (%ds)", g.powerUp.Type.Glyph(), g.powerUp.Type, secs)
	dst.DrawTextColored(boardX, y, banner, core.ColorBrightYellow)
}

// renderOverlays draws pause and game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	centerX, centerY := g.boardRect.Center()

	switch g.phase {
	case PhasePaused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case PhaseEnded:
		finalStr := fmt.Sprintf("Final score: %d", g.score)
		g.drawOverlay(dst, centerX, centerY, "TIME'S UP", finalStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// cellAt maps a screen position to a board cell for mouse input.
func (g *Game) cellAt(x, y int) (Coord, bool) {
	inner := core.NewRect(g.boardRect.X+1, g.boardRect.Y+1, g.boardRect.W-2, g.boardRect.H-2)
	if inner.W <= 0 || !inner.Contains(x, y) {
		return Coord{}, false
	}
	c := C(y-inner.Y, (x-inner.X)/cellWidth)
	if !g.grid.InBounds(c) {
		return Coord{}, false
	}
	return c, true
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter/Click: Blast | X: Power-up | P: Pause | R: Restart | Q: Quit"
}
