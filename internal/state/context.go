// internal/state/context.go
package state

import (
	"egg-invaders/internal/component"
	"egg-invaders/internal/config"
	"egg-invaders/internal/event"
	"egg-invaders/internal/interfaces"

	"github.com/charmbracelet/log"
)

// GameContext — то, что игра даёт каждому состоянию. Переходы запрашиваются
// через контекст и применяются сразу.
type GameContext interface {
	Config() config.Config
	Session() *component.Session
	Bounds() component.Bounds
	Size() (width, height float64)
	Mobile() bool

	Dispatcher() *event.Dispatcher
	Clock() interfaces.Clock
	Rand() interfaces.Random
	Logger() *log.Logger

	IsKeyDown(code int) bool
	ToggleMute() bool

	MoveToState(next State)
	PushState(next State)
	PopState()
}
