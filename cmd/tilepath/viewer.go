package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/tilepath/mapfile"
	"github.com/katalvlaran/tilepath/render"
	"github.com/katalvlaran/tilepath/tilegrid"
)

// Colors follow the debug palette: white open, gray walls, blue water,
// green grass, magenta visited, cyan path, green start, red end.
var tileStyles = map[tilegrid.TileType]tcell.Style{
	tilegrid.TileOpen:    tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
	tilegrid.TileBlocked: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGray),
	tilegrid.TileWater:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue),
	tilegrid.TileGrass:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
}

var markStyles = map[render.Mark]tcell.Style{
	render.MarkVisited: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorFuchsia),
	render.MarkPath:    tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua),
	render.MarkStart:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLime),
	render.MarkEnd:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed),
}

var markRunes = map[render.Mark]rune{
	render.MarkVisited: render.RuneVisited,
	render.MarkPath:    render.RunePath,
	render.MarkStart:   render.RuneStart,
	render.MarkEnd:     render.RuneEnd,
}

const helpLine = "+/- budget  s step  space algorithm  b walls  0 reset  q quit"

// view runs the interactive viewer until the user quits.
func view(sc *mapfile.Scenario) error {
	m, err := newViewModel(sc)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return loop(screen, m)
}

func loop(screen tcell.Screen, m *viewModel) error {
	draw(screen, m)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		quit, err := handle(m, ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		draw(screen, m)
	}
}

// handle applies one event to m and reports whether the viewer should exit.
func handle(m *viewModel, ev tcell.Event) (bool, error) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false, nil
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyRight, tcell.KeyUp:
		return false, m.grow()
	case tcell.KeyLeft, tcell.KeyDown:
		return false, m.shrink()
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return true, nil
		case '+', '=':
			return false, m.grow()
		case '-', '_':
			return false, m.shrink()
		case 's':
			m.cycleStep()
		case ' ':
			return false, m.toggleKind()
		case 'b':
			return false, m.toggleBlocked()
		case '0':
			return false, m.setBudget(0)
		}
	}
	return false, nil
}

// draw paints the grid two columns per cell, then the status and help lines.
func draw(screen tcell.Screen, m *viewModel) {
	screen.Clear()
	g := m.sc.Grid
	marks := render.Marks(g, m.res, m.sc.Start, m.sc.End)
	for i, mark := range marks {
		c, _ := g.CellAt(i)
		t, _ := g.TileTypeAt(c)
		style, ok := markStyles[mark]
		if !ok {
			style = tileStyles[t]
		}
		ch, ok := markRunes[mark]
		if !ok {
			ch = ' '
		}
		screen.SetContent(2*c.Col, c.Row, ch, nil, style)
		screen.SetContent(2*c.Col+1, c.Row, ' ', nil, style)
	}

	status := fmt.Sprintf("%s  walls=%s  budget=%d (step %d)  %s",
		m.sc.Kind, m.sc.Blocked, m.sc.Iterations, m.step, summary(m.sc, m.res))
	drawText(screen, 0, g.Rows()+1, status)
	drawText(screen, 0, g.Rows()+2, helpLine)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, s string) {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
		x++
	}
}
