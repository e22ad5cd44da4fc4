// internal/component/invader.go
package component

import "egg-invaders/internal/config"

// Invader — захватчик. Rank и File задают его клетку в строю.
type Invader struct {
	Position
	Rank, File    int
	Width, Height float64
}

func NewInvader(x, y float64, rank, file int) *Invader {
	return &Invader{
		Position: Position{X: x, Y: y},
		Rank:     rank,
		File:     file,
		Width:    config.InvaderWidth,
		Height:   config.InvaderHeight,
	}
}

func (i *Invader) Box() Box {
	return Box{X: i.X, Y: i.Y, Width: i.Width, Height: i.Height}
}

// KilledInvader — сбитый захватчик, видимый ещё FramesLeft тиков.
type KilledInvader struct {
	Invader
	FramesLeft int
}
