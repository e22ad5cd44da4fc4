// internal/system/visual_effect.go
package system

import (
	"egg-invaders/internal/entity"
)

// VisualEffectSystem ведёт чисто визуальные таймеры: останки сбитых
// захватчиков и анимацию корабля.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

// Update убирает останки, чей счётчик кадров истёк, и двигает анимацию.
func (s *VisualEffectSystem) Update() {
	w := s.world
	kept := w.Killed[:0]
	for _, k := range w.Killed {
		k.FramesLeft--
		if k.FramesLeft > 0 {
			kept = append(kept, k)
		}
	}
	clearTail(w.Killed, len(kept))
	w.Killed = kept

	if w.Ship != nil {
		w.Ship.Animate()
	}
}
