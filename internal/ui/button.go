// internal/ui/button.go
package ui

import (
	"image/color"

	"egg-invaders/internal/component"
	"egg-invaders/internal/config"
	"egg-invaders/pkg/render"
)

// Button — сенсорная кнопка со скруглёнными углами.
type Button struct {
	X, Y          float64
	Width, Height float64
	Text          string
	TextColor     color.Color
	BgColor       color.RGBA
	Pressed       bool
}

// NewButton создает кнопку с цветами по умолчанию.
func NewButton(x, y, w, h float64, text string) *Button {
	return &Button{
		X:         x,
		Y:         y,
		Width:     w,
		Height:    h,
		Text:      text,
		TextColor: config.TextColor,
		BgColor:   config.TouchButtonColor,
	}
}

// Contains проверяет, попадает ли точка строго внутрь кнопки.
func (b *Button) Contains(x, y float64) bool {
	return x > b.X && x < b.X+b.Width && y > b.Y && y < b.Y+b.Height
}

// Draw рисует кнопку; нажатая кнопка темнее.
func (b *Button) Draw(s render.Surface) {
	bg := b.BgColor
	if b.Pressed {
		bg = render.DarkenColor(bg)
	}
	s.FillRoundRect(b.X, b.Y, b.Width, b.Height, config.TouchButtonRadius, bg)
	s.DrawText(b.Text, b.X+b.Width/2, b.Y+b.Height/2, config.HUDFontSize, render.AlignCenter, b.TextColor)
}

// TouchControls — кнопки «Shoot» и «Use bonus» под игровым полем.
type TouchControls struct {
	Shoot *Button
	Bonus *Button
}

// NewTouchControls раскладывает кнопки по краям поля под строкой HUD.
func NewTouchControls(bounds component.Bounds, width, height float64) *TouchControls {
	w := width * config.TouchButtonWidth
	h := height * config.TouchButtonHeight
	y := HUDTextY(bounds, height) + config.HUDFontSize
	return &TouchControls{
		Shoot: NewButton(bounds.Left, y, w, h, "Shoot"),
		Bonus: NewButton(bounds.Right-w, y, w, h, "Use bonus"),
	}
}

// Release отпускает обе кнопки.
func (c *TouchControls) Release() {
	c.Shoot.Pressed = false
	c.Bonus.Pressed = false
}

func (c *TouchControls) Draw(s render.Surface) {
	c.Shoot.Draw(s)
	c.Bonus.Draw(s)
}
