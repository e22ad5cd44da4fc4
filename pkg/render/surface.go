// pkg/render/surface.go
package render

import "image/color"

// Align — горизонтальное выравнивание текста относительно x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface — поверхность, на которую состояния рисуют кадр. Координаты
// логические (пиксели игрового экрана); спрайты задаются именами, а не путями.
type Surface interface {
	Size() (width, height float64)
	Clear()
	// DrawSprite рисует спрайт в прямоугольнике с левым верхним углом (x, y).
	DrawSprite(name string, x, y, w, h float64)
	// DrawText рисует строку; y — вертикальная середина строки.
	DrawText(text string, x, y, size float64, align Align, clr color.Color)
	FillRoundRect(x, y, w, h, radius float64, clr color.Color)
	StrokeRect(x, y, w, h float64, clr color.Color)
}

// DrawCentered рисует спрайт с центром в (x, y).
func DrawCentered(s Surface, name string, x, y, w, h float64) {
	s.DrawSprite(name, x-w/2, y-h/2, w, h)
}
