// internal/state/state.go
package state

import (
	"egg-invaders/internal/event"
	"egg-invaders/internal/input"
	"egg-invaders/pkg/render"
)

// State — экран игры. Всё, кроме имени, необязательно: состояние реализует
// только те интерфейсы ниже, которые ему нужны.
type State interface {
	Name() string
}

type Enterer interface {
	Enter(ctx GameContext)
}

type Leaver interface {
	Leave(ctx GameContext)
}

type Updater interface {
	Update(ctx GameContext, deltaTime float64)
}

type Drawer interface {
	Draw(ctx GameContext, surface render.Surface)
}

type KeyDowner interface {
	KeyDown(ctx GameContext, code int)
}

type KeyUpper interface {
	KeyUp(ctx GameContext, code int)
}

type PointerStarter interface {
	PointerStart(ctx GameContext, ev input.PointerEvent)
}

type PointerMover interface {
	PointerMove(ctx GameContext, ev input.PointerEvent)
}

type PointerEnder interface {
	PointerEnd(ctx GameContext, ev input.PointerEvent)
}

// StateMachine — стек состояний; текущее состояние на вершине.
type StateMachine struct {
	stack []State
}

// NewStateMachine создаёт машину с пустым стеком
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current возвращает вершину стека или nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *StateMachine) Depth() int {
	return len(sm.stack)
}

// MoveToState заменяет текущее состояние на next.
func (sm *StateMachine) MoveToState(ctx GameContext, next State) {
	if cur := sm.Current(); cur != nil {
		if l, ok := cur.(Leaver); ok {
			l.Leave(ctx)
		}
		sm.pop()
	}
	sm.PushState(ctx, next)
}

// PushState кладёт next поверх текущего, не покидая его.
func (sm *StateMachine) PushState(ctx GameContext, next State) {
	if e, ok := next.(Enterer); ok {
		e.Enter(ctx)
	}
	sm.stack = append(sm.stack, next)
	ctx.Logger().Debug("state entered", "state", next.Name(), "depth", len(sm.stack))
	sm.notify(ctx)
}

// PopState покидает текущее состояние и возвращается к лежащему под ним.
func (sm *StateMachine) PopState(ctx GameContext) {
	cur := sm.Current()
	if cur == nil {
		return
	}
	if l, ok := cur.(Leaver); ok {
		l.Leave(ctx)
	}
	sm.pop()
	ctx.Logger().Debug("state left", "state", cur.Name(), "depth", len(sm.stack))
	sm.notify(ctx)
}

// notify сообщает подписчикам имя новой вершины стека ("" для пустого).
func (sm *StateMachine) notify(ctx GameContext) {
	name := ""
	if cur := sm.Current(); cur != nil {
		name = cur.Name()
	}
	ctx.Dispatcher().Dispatch(event.Event{Type: event.StateChanged, Data: name})
}

func (sm *StateMachine) pop() {
	sm.stack[len(sm.stack)-1] = nil
	sm.stack = sm.stack[:len(sm.stack)-1]
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(ctx GameContext, deltaTime float64) {
	if u, ok := sm.Current().(Updater); ok {
		u.Update(ctx, deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(ctx GameContext, surface render.Surface) {
	if d, ok := sm.Current().(Drawer); ok {
		d.Draw(ctx, surface)
	}
}

func (sm *StateMachine) KeyDown(ctx GameContext, code int) {
	if k, ok := sm.Current().(KeyDowner); ok {
		k.KeyDown(ctx, code)
	}
}

func (sm *StateMachine) KeyUp(ctx GameContext, code int) {
	if k, ok := sm.Current().(KeyUpper); ok {
		k.KeyUp(ctx, code)
	}
}

func (sm *StateMachine) PointerStart(ctx GameContext, ev input.PointerEvent) {
	if p, ok := sm.Current().(PointerStarter); ok {
		p.PointerStart(ctx, ev)
	}
}

func (sm *StateMachine) PointerMove(ctx GameContext, ev input.PointerEvent) {
	if p, ok := sm.Current().(PointerMover); ok {
		p.PointerMove(ctx, ev)
	}
}

func (sm *StateMachine) PointerEnd(ctx GameContext, ev input.PointerEvent) {
	if p, ok := sm.Current().(PointerEnder); ok {
		p.PointerEnd(ctx, ev)
	}
}
