// internal/component/projectile.go
package component

import "egg-invaders/internal/config"

// Rocket летит вверх со скоростью Velocity.
type Rocket struct {
	Position
	Velocity      float64
	Width, Height float64
}

func NewRocket(x, y, velocity float64) *Rocket {
	return &Rocket{
		Position: Position{X: x, Y: y},
		Velocity: velocity,
		Width:    config.RocketWidth,
		Height:   config.RocketHeight,
	}
}

func (r *Rocket) Box() Box {
	return Box{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Bomb сбрасывается захватчиком и летит вниз.
type Bomb struct {
	Position
	Velocity      float64
	Width, Height float64
}

func NewBomb(x, y, velocity float64) *Bomb {
	return &Bomb{
		Position: Position{X: x, Y: y},
		Velocity: velocity,
		Width:    config.BombWidth,
		Height:   config.BombHeight,
	}
}
