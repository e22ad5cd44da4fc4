// internal/system/projectile.go
package system

import (
	"egg-invaders/internal/component"
	"egg-invaders/internal/entity"
)

// ProjectileSystem двигает ракеты, бомбы и бонусы и убирает вылетевшие за экран.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	w := s.world

	bombs := w.Bombs[:0]
	for _, b := range w.Bombs {
		b.Y += deltaTime * b.Velocity
		if b.Y <= w.ScreenHeight {
			bombs = append(bombs, b)
		}
	}
	clearTail(w.Bombs, len(bombs))
	w.Bombs = bombs

	rockets := w.Rockets[:0]
	for _, r := range w.Rockets {
		r.Y -= deltaTime * r.Velocity
		if r.Y >= 0 {
			rockets = append(rockets, r)
		}
	}
	clearTail(w.Rockets, len(rockets))
	w.Rockets = rockets

	bonuses := w.Bonuses[:0]
	for _, b := range w.Bonuses {
		b.Y += deltaTime * b.Velocity
		if b.Y <= w.ScreenHeight {
			bonuses = append(bonuses, b)
		}
	}
	clearTail(w.Bonuses, len(bonuses))
	w.Bonuses = bonuses
}

// clearTail обнуляет хвост после фильтрации на месте, чтобы не держать
// указатели на удалённые сущности.
func clearTail[T any](s []*T, kept int) {
	for i := kept; i < len(s); i++ {
		s[i] = nil
	}
}

// spawnRocket добавляет ракету в мир.
func spawnRocket(w *entity.World, x, y, velocity float64) *component.Rocket {
	r := component.NewRocket(x, y, velocity)
	w.Rockets = append(w.Rockets, r)
	return r
}
