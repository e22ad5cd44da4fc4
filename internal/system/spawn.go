// internal/system/spawn.go
package system

import (
	"egg-invaders/internal/component"
	"egg-invaders/internal/config"
	"egg-invaders/internal/entity"
	"egg-invaders/internal/interfaces"
)

// SpawnSystem сбрасывает бомбы с передних захватчиков и бонусы со строя.
type SpawnSystem struct {
	world *entity.World
	cfg   config.Config
	rng   interfaces.Random
}

func NewSpawnSystem(world *entity.World, cfg config.Config, rng interfaces.Random) *SpawnSystem {
	return &SpawnSystem{world: world, cfg: cfg, rng: rng}
}

// DropBombs даёт каждому переднему захватчику шанс bombRate*dt сбросить бомбу.
func (s *SpawnSystem) DropBombs(deltaTime float64) int {
	w := s.world
	p := w.Params
	dropped := 0
	for _, inv := range w.FrontRank(s.cfg.InvaderFiles) {
		if inv == nil {
			continue
		}
		chance := p.BombRate * deltaTime
		if chance <= s.rng.Float64() {
			continue
		}
		velocity := p.BombMinVelocity + s.rng.Float64()*(p.BombMaxVelocity-p.BombMinVelocity)
		w.Bombs = append(w.Bombs, component.NewBomb(inv.X, inv.Y+inv.Height/2, velocity))
		dropped++
	}
	return dropped
}

// MaybeDropBonus с вероятностью BonusChance роняет бонус на линии переднего ряда.
func (s *SpawnSystem) MaybeDropBonus() bool {
	if s.rng.Float64() >= s.cfg.BonusChance {
		return false
	}
	s.DropBonus()
	return true
}

// DropBonus роняет бонус в случайной точке по ширине поля.
func (s *SpawnSystem) DropBonus() *component.Bonus {
	w := s.world
	frontY := 0.0
	for _, inv := range w.Invaders {
		if inv.Y > frontY {
			frontY = inv.Y
		}
	}
	span := int(w.Bounds.Right - w.Bounds.Left + 1)
	x := w.Bounds.Left
	if span > 0 {
		x += float64(s.rng.Intn(span))
	}

	bonus := component.NewBonus(x, frontY, s.cfg.BonusVelocity)
	w.Bonuses = append(w.Bonuses, bonus)
	return bonus
}
