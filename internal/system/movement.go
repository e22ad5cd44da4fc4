// internal/system/movement.go
package system

import (
	"egg-invaders/internal/component"
	"egg-invaders/internal/config"
	"egg-invaders/internal/entity"
	"egg-invaders/internal/event"
)

// Hit — какую границу строй задел в этом тике.
type Hit int

const (
	HitNone Hit = iota
	HitLeft
	HitRight
	HitBottom
)

func (h Hit) String() string {
	switch h {
	case HitLeft:
		return "left"
	case HitRight:
		return "right"
	case HitBottom:
		return "bottom"
	default:
		return "none"
	}
}

// FlockSystem двигает строй захватчиков как одно твёрдое тело.
type FlockSystem struct {
	world        *entity.World
	cfg          config.Config
	dispatcher   *event.Dispatcher
	tentativeXYs []component.Position
}

func NewFlockSystem(world *entity.World, cfg config.Config, dispatcher *event.Dispatcher) *FlockSystem {
	return &FlockSystem{world: world, cfg: cfg, dispatcher: dispatcher}
}

// Update сдвигает строй и применяет правило разворота. Если хоть один
// захватчик пересёк бы границу, не двигается никто. Решает первый нарушитель
// в порядке обхода; у него границы проверяются в порядке лево, право, низ.
func (s *FlockSystem) Update(deltaTime float64) Hit {
	w := s.world
	flock := &w.Flock
	b := w.Bounds

	s.tentativeXYs = s.tentativeXYs[:0]
	hit := HitNone
	for _, inv := range w.Invaders {
		nx := inv.X + flock.Velocity.X*deltaTime
		ny := inv.Y + flock.Velocity.Y*deltaTime
		if nx < b.Left {
			hit = HitLeft
		} else if nx > b.Right {
			hit = HitRight
		} else if ny > b.Bottom {
			hit = HitBottom
		}
		if hit != HitNone {
			break
		}
		s.tentativeXYs = append(s.tentativeXYs, component.Position{X: nx, Y: ny})
	}

	if hit == HitNone {
		for i, inv := range w.Invaders {
			inv.Position = s.tentativeXYs[i]
		}
	}

	// Спуск продолжается, пока не пройдена дистанция спуска
	if flock.Dropping {
		flock.DropDistance += flock.Velocity.Y * deltaTime
		if flock.DropDistance >= s.cfg.InvaderDropDistance {
			flock.Dropping = false
			flock.Velocity = flock.NextVelocity
			flock.DropDistance = 0
		}
	}

	switch hit {
	case HitLeft:
		s.turn(1)
	case HitRight:
		s.turn(-1)
	case HitBottom:
		s.dispatcher.Dispatch(event.Event{Type: event.FlockLanded})
	}
	return hit
}

// turn переводит строй в спуск и запоминает следующее горизонтальное направление.
func (s *FlockSystem) turn(nextDir float64) {
	flock := &s.world.Flock
	flock.CurrentSpeed += s.cfg.InvaderAcceleration
	flock.Velocity = component.Position{X: 0, Y: flock.CurrentSpeed}
	flock.Dropping = true
	flock.NextVelocity = component.Position{X: nextDir * flock.CurrentSpeed, Y: 0}
}
