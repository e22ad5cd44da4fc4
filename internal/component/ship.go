// internal/component/ship.go
package component

import "egg-invaders/internal/config"

// ShipFrames — имена спрайтов анимации корабля.
var ShipFrames = []string{"birdUp", "birdMid", "birdDown"}

// Ship — корабль игрока. Один на сессию PlayState.
type Ship struct {
	Position
	Width, Height float64
	Frame         int // индекс в ShipFrames
	frameTicks    int
}

func NewShip(x, y float64) *Ship {
	return &Ship{
		Position:   Position{X: x, Y: y},
		Width:      config.ShipWidth,
		Height:     config.ShipHeight,
		frameTicks: config.ShipFrameTicks,
	}
}

func (s *Ship) Box() Box {
	return Box{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// Sprite возвращает имя текущего кадра.
func (s *Ship) Sprite() string {
	return ShipFrames[s.Frame]
}

// Animate продвигает анимацию на один тик.
func (s *Ship) Animate() {
	if s.frameTicks > 0 {
		s.frameTicks--
		return
	}
	s.Frame = (s.Frame + 1) % len(ShipFrames)
	s.frameTicks = config.ShipFrameTicks
}
