// internal/ui/hud.go
package ui

import (
	"fmt"

	"egg-invaders/internal/component"
	"egg-invaders/internal/config"
	"egg-invaders/pkg/render"
)

// HUDTextY — вертикальная позиция строки HUD: посередине полосы под полем.
func HUDTextY(bounds component.Bounds, height float64) float64 {
	return bounds.Bottom + (height-bounds.Bottom)/2 - config.HUDFontSize/2
}

// HUD рисует жизни и бонусы слева, счёт и уровень справа.
type HUD struct {
	bounds component.Bounds
	y      float64
}

func NewHUD(bounds component.Bounds, height float64) *HUD {
	return &HUD{bounds: bounds, y: HUDTextY(bounds, height)}
}

func (h *HUD) Draw(s render.Surface, session *component.Session) {
	left := fmt.Sprintf("Lives: %d, Bonus: %d", session.Lives, session.BonusesCaught)
	right := fmt.Sprintf("Score: %d, Level: %d", session.Score, session.Level)
	s.DrawText(left, h.bounds.Left, h.y, config.HUDFontSize, render.AlignLeft, config.TextColor)
	s.DrawText(right, h.bounds.Right, h.y, config.HUDFontSize, render.AlignRight, config.TextColor)
}

// DrawLogo рисует логотип в правом верхнем углу экрана.
func DrawLogo(s render.Surface) {
	w, _ := s.Size()
	s.DrawSprite("logo", w-config.LogoWidth, 0, config.LogoWidth, config.LogoHeight)
}
