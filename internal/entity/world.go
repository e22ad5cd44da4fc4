// internal/entity/world.go
package entity

import (
	"egg-invaders/internal/component"
	"egg-invaders/internal/config"
)

// LevelParams — параметры сложности, вычисленные при входе в уровень.
// Не меняются до конца уровня.
type LevelParams struct {
	Level                  int
	InvaderInitialVelocity float64
	BombRate               float64
	BombMinVelocity        float64
	BombMaxVelocity        float64
	ShipSpeed              float64
}

// NewLevelParams масштабирует базовые значения на 1 + level*multiplier.
func NewLevelParams(cfg config.Config, level int) LevelParams {
	scale := 1 + float64(level)*cfg.LevelDifficultyMultiplier
	return LevelParams{
		Level:                  level,
		InvaderInitialVelocity: cfg.InvaderInitialVelocity * scale,
		BombRate:               cfg.BombRate * scale,
		BombMinVelocity:        cfg.BombMinVelocity * scale,
		BombMaxVelocity:        cfg.BombMaxVelocity * scale,
		ShipSpeed:              cfg.ShipSpeed,
	}
}

// Flock — общее движение строя захватчиков.
type Flock struct {
	Velocity     component.Position // общий вектор скорости
	NextVelocity component.Position // куда двигаться после спуска
	CurrentSpeed float64
	Dropping     bool
	DropDistance float64 // пройдено вниз в текущем спуске
}

// World хранит все сущности одного уровня.
type World struct {
	Params   LevelParams
	Ship     *component.Ship
	Invaders []*component.Invader
	Killed   []*component.KilledInvader
	Rockets  []*component.Rocket
	Bombs    []*component.Bomb
	Bonuses  []*component.Bonus
	Flock    Flock

	Bounds       component.Bounds
	ScreenWidth  float64
	ScreenHeight float64
}

// NewWorld создаёт корабль и полный строй захватчиков для уровня.
func NewWorld(cfg config.Config, level int, bounds component.Bounds, screenWidth, screenHeight float64) *World {
	params := NewLevelParams(cfg, level)
	w := &World{
		Params:       params,
		Ship:         component.NewShip(screenWidth/2, bounds.Bottom),
		Bounds:       bounds,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}

	ranks, files := cfg.InvaderRanks, cfg.InvaderFiles
	w.Invaders = make([]*component.Invader, 0, ranks*files)
	for rank := 0; rank < ranks; rank++ {
		for file := 0; file < files; file++ {
			x := screenWidth/2 + (float64(files)/2-float64(file))*config.InvaderGridSpan/float64(files)
			y := bounds.Top + float64(rank)*config.InvaderRankSpacing
			w.Invaders = append(w.Invaders, component.NewInvader(x, y, rank, file))
		}
	}

	w.Flock = Flock{
		CurrentSpeed: params.InvaderInitialVelocity,
		Velocity:     component.Position{X: -params.InvaderInitialVelocity},
	}
	return w
}

// FrontRank возвращает для каждой колонки захватчика с наибольшим рангом.
// Пустые колонки остаются nil.
func (w *World) FrontRank(files int) []*component.Invader {
	front := make([]*component.Invader, files)
	for _, inv := range w.Invaders {
		if inv.File < 0 || inv.File >= files {
			continue
		}
		if cur := front[inv.File]; cur == nil || cur.Rank < inv.Rank {
			front[inv.File] = inv
		}
	}
	return front
}
