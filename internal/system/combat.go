// internal/system/combat.go
package system

import (
	"egg-invaders/internal/component"
	"egg-invaders/internal/config"
	"egg-invaders/internal/entity"
	"egg-invaders/internal/event"
)

// CombatSystem разрешает столкновения между сущностями и начисляет очки.
type CombatSystem struct {
	world      *entity.World
	cfg        config.Config
	dispatcher *event.Dispatcher
	consumed   []bool
}

func NewCombatSystem(world *entity.World, cfg config.Config, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, cfg: cfg, dispatcher: dispatcher}
}

// RocketsVsInvaders: каждому захватчику достаётся не больше одной ракеты за тик,
// первая подходящая ракета побеждает. Израсходованная ракета не может сбить
// следующего захватчика.
func (s *CombatSystem) RocketsVsInvaders(session *component.Session) int {
	w := s.world
	if len(w.Rockets) == 0 || len(w.Invaders) == 0 {
		return 0
	}

	s.consumed = s.consumed[:0]
	for range w.Rockets {
		s.consumed = append(s.consumed, false)
	}

	kills := 0
	survivors := w.Invaders[:0]
	for _, inv := range w.Invaders {
		box := inv.Box()
		hit := false
		for j, r := range w.Rockets {
			if s.consumed[j] {
				continue
			}
			if r.Box().Touches(box) {
				s.consumed[j] = true
				hit = true
				break
			}
		}
		if !hit {
			survivors = append(survivors, inv)
			continue
		}

		kills++
		session.Score += s.cfg.PointsPerInvader
		w.Killed = append(w.Killed, &component.KilledInvader{
			Invader:    *inv,
			FramesLeft: s.cfg.KilledInvaderFrames,
		})
		s.dispatcher.Dispatch(event.Event{Type: event.InvaderKilled, Data: inv})
	}
	clearTail(w.Invaders, len(survivors))
	w.Invaders = survivors

	rockets := w.Rockets[:0]
	for j, r := range w.Rockets {
		if !s.consumed[j] {
			rockets = append(rockets, r)
		}
	}
	clearTail(w.Rockets, len(rockets))
	w.Rockets = rockets
	return kills
}

// BombsVsShip: бомба, попавшая точкой в корабль, отнимает жизнь.
func (s *CombatSystem) BombsVsShip(session *component.Session) {
	w := s.world
	if w.Ship == nil {
		return
	}
	ship := w.Ship.Box()

	bombs := w.Bombs[:0]
	for _, b := range w.Bombs {
		if !ship.Contains(b.X, b.Y) {
			bombs = append(bombs, b)
			continue
		}
		if session.Lives > 0 {
			session.Lives--
		}
		s.dispatcher.Dispatch(event.Event{Type: event.ShipHit, Data: session.Lives})
	}
	clearTail(w.Bombs, len(bombs))
	w.Bombs = bombs
}

// BonusesVsShip: пойманный бонус копится как заряд.
func (s *CombatSystem) BonusesVsShip(session *component.Session) {
	w := s.world
	if w.Ship == nil {
		return
	}
	ship := w.Ship.Box()

	bonuses := w.Bonuses[:0]
	for _, b := range w.Bonuses {
		if !b.Box().Touches(ship) {
			bonuses = append(bonuses, b)
			continue
		}
		session.BonusesCaught++
		s.dispatcher.Dispatch(event.Event{Type: event.BonusCaught, Data: session.BonusesCaught})
	}
	clearTail(w.Bonuses, len(bonuses))
	w.Bonuses = bonuses
}

// InvadersVsShip: таран корабля заканчивает партию сразу.
func (s *CombatSystem) InvadersVsShip(session *component.Session) bool {
	w := s.world
	if w.Ship == nil {
		return false
	}
	ship := w.Ship.Box()
	for _, inv := range w.Invaders {
		if inv.Box().Overlaps(ship) {
			session.Lives = 0
			s.dispatcher.Dispatch(event.Event{Type: event.ShipRammed, Data: inv})
			return true
		}
	}
	return false
}
