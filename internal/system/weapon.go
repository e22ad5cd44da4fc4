// internal/system/weapon.go
package system

import (
	"time"

	"egg-invaders/internal/component"
	"egg-invaders/internal/config"
	"egg-invaders/internal/entity"
	"egg-invaders/internal/event"
	"egg-invaders/internal/interfaces"
)

// WeaponSystem обрабатывает действия игрока: выстрел и активацию бонуса.
type WeaponSystem struct {
	world      *entity.World
	cfg        config.Config
	clock      interfaces.Clock
	dispatcher *event.Dispatcher

	lastRocketTime time.Time
	hasFired       bool
}

func NewWeaponSystem(world *entity.World, cfg config.Config, clock interfaces.Clock, dispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{world: world, cfg: cfg, clock: clock, dispatcher: dispatcher}
}

// FireCooldown — минимальный интервал между ракетами.
func (s *WeaponSystem) FireCooldown() time.Duration {
	return time.Duration(float64(time.Second) / s.cfg.RocketMaxFireRate)
}

// FireRocket выпускает ракету из носа корабля, если прошло больше FireCooldown
// с прошлого выстрела.
func (s *WeaponSystem) FireRocket() bool {
	ship := s.world.Ship
	if ship == nil {
		return false
	}
	now := s.clock.Now()
	if s.hasFired && now.Sub(s.lastRocketTime) <= s.FireCooldown() {
		return false
	}

	r := spawnRocket(s.world, ship.X+config.RocketOffsetX, ship.Y+config.RocketOffsetY, s.cfg.RocketVelocity)
	s.lastRocketTime = now
	s.hasFired = true
	s.dispatcher.Dispatch(event.Event{Type: event.RocketFired, Data: r})
	return true
}

// ActivateBonus тратит заряд бонуса и отталкивает строй вверх на BonusReward.
// Если верхний захватчик ушёл бы за край экрана, ничего не происходит и заряд
// сохраняется.
func (s *WeaponSystem) ActivateBonus(session *component.Session) bool {
	if session.BonusesCaught <= 0 {
		return false
	}

	w := s.world
	topY := w.ScreenHeight
	for _, inv := range w.Invaders {
		if inv.Y < topY {
			topY = inv.Y
		}
	}

	if topY-s.cfg.BonusReward-config.InvaderHeight <= 0 {
		return false
	}
	for _, inv := range w.Invaders {
		inv.Y -= s.cfg.BonusReward
	}
	session.BonusesCaught--
	s.dispatcher.Dispatch(event.Event{Type: event.BonusActivated, Data: session.BonusesCaught})
	return true
}
