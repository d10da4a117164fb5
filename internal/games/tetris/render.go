package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/playfield"
)

const (
	cellCols   = 2  // screen columns per grid cell
	panelGap   = 2  // columns between well and side panel
	panelWidth = 18 // side panel width
	previewW   = 4*cellCols + 2
	previewH   = 4
)

var controlsHelp = []string{
	"←/→  move",
	"↑ x  rotate",
	"z    rotate back",
	"↓    soft drop",
	"p    pause",
	"q    quit",
}

// layout is where the well and the side panel land on screen.
type layout struct {
	well  core.Rect // including the border
	panel core.Rect
}

func (g *Game) layout(w, h int) (layout, bool) {
	visible := g.cfg.Grid.Height - g.cfg.Grid.HiddenRows
	wellW := g.cfg.Grid.Width*cellCols + 2
	wellH := visible + 2
	totalW := wellW + panelGap + panelWidth
	if w < totalW || h < wellH {
		return layout{}, false
	}
	x := (w - totalW) / 2
	y := (h - wellH) / 2
	return layout{
		well:  core.NewRect(x, y, wellW, wellH),
		panel: core.NewRect(x+wellW+panelGap, y, panelWidth, wellH),
	}, true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l, ok := g.layout(dst.Width(), dst.Height())
	g.tooSmall = !ok
	if !ok {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Window too small")
		dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d", g.cfg.Grid.Width*cellCols+2+panelGap+panelWidth,
			g.cfg.Grid.Height-g.cfg.Grid.HiddenRows+2))
		return
	}

	dst.DrawBox(l.well, core.ColorGray)
	switch {
	case g.sessionEnded:
		g.renderWellMessage(dst, l.well, "GAME OVER", "R to restart")
	case g.paused:
		// the well stays hidden while paused
		g.renderWellMessage(dst, l.well, "PAUSED", "P to resume")
	default:
		g.renderGrid(dst, l.well)
	}

	g.renderPanel(dst, l.panel)
}

// renderGrid draws the visible rows; hidden rows never reach the screen.
func (g *Game) renderGrid(dst *core.Screen, well core.Rect) {
	grid := g.field.Grid()
	hidden := grid.HiddenRows()
	rows := grid.Rows()
	for y := hidden; y < grid.Height(); y++ {
		sy := well.Y + 1 + y - hidden
		for x, c := range rows[y] {
			sx := well.X + 1 + x*cellCols
			if c.Filled {
				dst.SetColored(sx, sy, '█', c.Color)
				dst.SetColored(sx+1, sy, '█', c.Color)
			} else {
				dst.SetColored(sx+1, sy, '·', core.ColorGray)
			}
		}
	}
}

func (g *Game) renderWellMessage(dst *core.Screen, well core.Rect, line1, line2 string) {
	mid := well.Y + well.H/2
	center := func(y int, text string, c core.Color) {
		x := well.X + (well.W-len([]rune(text)))/2
		dst.DrawTextColored(x, y, text, c)
	}
	center(mid-1, line1, core.ColorBrightWhite)
	center(mid+1, line2, core.ColorGray)
}

func (g *Game) renderPanel(dst *core.Screen, panel core.Rect) {
	x, y := panel.X, panel.Y

	box := core.NewRect(x, y, previewW, previewH)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawText(x+2, y, " NEXT ")
	if !g.paused && g.field.Phase() != playfield.PhaseGameOver {
		next := g.field.Next()
		for _, off := range next.Offsets(0) {
			sx := box.X + 1 + off.X*cellCols
			sy := box.Y + 1 + off.Y
			dst.SetColored(sx, sy, '█', next.Color())
			dst.SetColored(sx+1, sy, '█', next.Color())
		}
	}

	row := y + previewH + 1
	stat := func(label string, value int) {
		dst.DrawTextColored(x, row, label, core.ColorGray)
		dst.DrawText(x+7, row, fmt.Sprintf("%d", value))
		row++
	}
	stat("SCORE", g.tracker.Score())
	stat("LEVEL", g.tracker.Level())
	stat("LINES", g.tracker.Lines())
	if n := g.tracker.LinesUntilLevelUp(); n > 0 {
		dst.DrawTextColored(x, row, fmt.Sprintf("next level in %d", n), core.ColorGray)
	}
	row += 2
	stat("HIGH", max(g.highs.Best(), g.tracker.Score()))

	row++
	dst.DrawTextColored(x, row, g.Title(), core.ColorCyan)
	row += 2

	for _, line := range controlsHelp {
		if row >= panel.Bottom() {
			break
		}
		dst.DrawTextColored(x, row, line, core.ColorGray)
		row++
	}
}
