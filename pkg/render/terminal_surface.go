// pkg/render/terminal_surface.go
package render

import (
	"image/color"

	"egg-invaders/internal/utils"

	"github.com/gdamore/tcell/v2"
)

// Glyph — как спрайт выглядит в терминале.
type Glyph struct {
	Rune  rune
	Color tcell.Color
}

// TerminalGlyphs — символы для логических имён спрайтов.
var TerminalGlyphs = map[string]Glyph{
	"birdUp":        {'^', tcell.ColorAqua},
	"birdMid":       {'=', tcell.ColorAqua},
	"birdDown":      {'v', tcell.ColorAqua},
	"invader":       {'0', tcell.ColorWhite},
	"invaderKilled": {'*', tcell.ColorYellow},
	"bomb":          {'!', tcell.ColorRed},
	"rocket":        {'|', tcell.ColorGreen},
	"bonus":         {'$', tcell.ColorGold},
}

// TerminalSurface масштабирует логический экран на сетку ячеек tcell.
type TerminalSurface struct {
	screen tcell.Screen
	width  float64
	height float64
}

func NewTerminalSurface(screen tcell.Screen, width, height int) *TerminalSurface {
	return &TerminalSurface{screen: screen, width: float64(width), height: float64(height)}
}

func (s *TerminalSurface) Size() (float64, float64) {
	return s.width, s.height
}

// cell переводит логическую точку в ячейку терминала.
func (s *TerminalSurface) cell(x, y float64) (int, int) {
	cols, rows := s.screen.Size()
	return int(utils.Lerp(0, float64(cols), x/s.width)), int(utils.Lerp(0, float64(rows), y/s.height))
}

func (s *TerminalSurface) Clear() {
	s.screen.Clear()
}

func (s *TerminalSurface) DrawSprite(name string, x, y, w, h float64) {
	g, ok := TerminalGlyphs[name]
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(g.Color)
	c0, r0 := s.cell(x, y)
	c1, r1 := s.cell(x+w, y+h)
	for r := r0; r <= max(r0, r1-1); r++ {
		for c := c0; c <= max(c0, c1-1); c++ {
			s.screen.SetContent(c, r, g.Rune, nil, style)
		}
	}
}

func (s *TerminalSurface) DrawText(str string, x, y, _ float64, align Align, clr color.Color) {
	col, row := s.cell(x, y)
	n := len([]rune(str))
	switch align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(clr))
	for i, r := range []rune(str) {
		s.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (s *TerminalSurface) FillRoundRect(x, y, w, h, _ float64, clr color.Color) {
	style := tcell.StyleDefault.Background(tcell.FromImageColor(clr))
	c0, r0 := s.cell(x, y)
	c1, r1 := s.cell(x+w, y+h)
	for r := r0; r < max(r0+1, r1); r++ {
		for c := c0; c < max(c0+1, c1); c++ {
			s.screen.SetContent(c, r, ' ', nil, style)
		}
	}
}

func (s *TerminalSurface) StrokeRect(x, y, w, h float64, clr color.Color) {
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(clr))
	c0, r0 := s.cell(x, y)
	c1, r1 := s.cell(x+w, y+h)
	for c := c0; c <= c1; c++ {
		s.screen.SetContent(c, r0, tcell.RuneHLine, nil, style)
		s.screen.SetContent(c, r1, tcell.RuneHLine, nil, style)
	}
	for r := r0; r <= r1; r++ {
		s.screen.SetContent(c0, r, tcell.RuneVLine, nil, style)
		s.screen.SetContent(c1, r, tcell.RuneVLine, nil, style)
	}
}
