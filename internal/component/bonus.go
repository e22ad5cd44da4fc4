// internal/component/bonus.go
package component

import "egg-invaders/internal/config"

// Bonus — подбираемый бонус. Пойманный бонус копится в Session.BonusesCaught.
type Bonus struct {
	Position
	Velocity      float64
	Width, Height float64
}

func NewBonus(x, y, velocity float64) *Bonus {
	return &Bonus{
		Position: Position{X: x, Y: y},
		Velocity: velocity,
		Width:    config.BonusWidth,
		Height:   config.BonusHeight,
	}
}

func (b *Bonus) Box() Box {
	return Box{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}
