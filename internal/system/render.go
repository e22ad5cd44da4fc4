// internal/system/render.go
package system

import (
	"egg-invaders/internal/entity"
	"egg-invaders/pkg/render"
)

// RenderSystem рисует сущности мира в фиксированном порядке: корабль,
// захватчики, бомбы, ракеты, останки, бонусы.
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

func (s *RenderSystem) Draw(surface render.Surface) {
	w := s.world

	if ship := w.Ship; ship != nil {
		render.DrawCentered(surface, ship.Sprite(), ship.X, ship.Y, ship.Width, ship.Height)
	}
	for _, inv := range w.Invaders {
		render.DrawCentered(surface, "invader", inv.X, inv.Y, inv.Width, inv.Height)
	}
	for _, b := range w.Bombs {
		render.DrawCentered(surface, "bomb", b.X, b.Y, b.Width, b.Height)
	}
	for _, r := range w.Rockets {
		render.DrawCentered(surface, "rocket", r.X, r.Y, r.Width, r.Height)
	}
	// Останки рисуются квадратом по ширине захватчика
	for _, k := range w.Killed {
		render.DrawCentered(surface, "invaderKilled", k.X, k.Y, k.Width, k.Width)
	}
	for _, b := range w.Bonuses {
		render.DrawCentered(surface, "bonus", b.X, b.Y, b.Width, b.Height)
	}
}
