package state

import (
	"testing"

	"egg-invaders/internal/event"
	"egg-invaders/internal/input"
	"egg-invaders/pkg/render"
)

// probe записывает вызовы жизненного цикла.
type probe struct {
	name string
	log  *[]string
}

func (p *probe) Name() string                     { return p.name }
func (p *probe) Enter(GameContext)                { *p.log = append(*p.log, "enter "+p.name) }
func (p *probe) Leave(GameContext)                { *p.log = append(*p.log, "leave "+p.name) }
func (p *probe) Update(GameContext, float64)      { *p.log = append(*p.log, "update "+p.name) }
func (p *probe) KeyDown(_ GameContext, code int)  { *p.log = append(*p.log, "key "+p.name) }
func (p *probe) Draw(GameContext, render.Surface) { *p.log = append(*p.log, "draw "+p.name) }
func (p *probe) PointerStart(GameContext, input.PointerEvent) {
	*p.log = append(*p.log, "pointer "+p.name)
}

// bare реализует только имя.
type bare struct{}

func (bare) Name() string { return "bare" }

func TestMoveToStateReplacesTop(t *testing.T) {
	g := newTestGame()
	var calls []string
	a := &probe{name: "a", log: &calls}
	b := &probe{name: "b", log: &calls}

	g.MoveToState(a)
	g.MoveToState(b)
	if g.machine.Depth() != 1 || g.current() != "b" {
		t.Fatalf("depth=%d current=%q", g.machine.Depth(), g.current())
	}
	want := []string{"enter a", "leave a", "enter b"}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestPushPopPreservesUnderlying(t *testing.T) {
	g := newTestGame()
	var calls []string
	a := &probe{name: "a", log: &calls}
	b := &probe{name: "b", log: &calls}

	g.MoveToState(a)
	g.PushState(b)
	if g.machine.Depth() != 2 || g.current() != "b" {
		t.Fatalf("depth=%d current=%q", g.machine.Depth(), g.current())
	}
	calls = calls[:0]
	g.tick()
	if len(calls) != 1 || calls[0] != "update b" {
		t.Fatalf("only the top should update, got %v", calls)
	}

	g.PopState()
	if g.machine.Current() != a {
		t.Fatal("pop should resume the state beneath")
	}
	if calls[len(calls)-1] != "leave b" {
		t.Errorf("calls = %v, want leave b last", calls)
	}
}

func TestMissingCapabilitiesAreNoops(t *testing.T) {
	g := newTestGame()
	s := &recordingSurface{}

	// Пустой стек
	g.tick()
	g.machine.Draw(g, s)
	g.machine.KeyDown(g, input.KeySpace)
	g.PopState()

	g.MoveToState(bare{})
	g.tick()
	g.machine.Draw(g, s)
	g.machine.KeyDown(g, input.KeySpace)
	g.machine.KeyUp(g, input.KeySpace)
	g.machine.PointerStart(g, input.PointerEvent{})
	g.machine.PointerMove(g, input.PointerEvent{})
	g.machine.PointerEnd(g, input.PointerEvent{})
	g.MoveToState(bare{})
	if g.machine.Depth() != 1 {
		t.Errorf("depth = %d, want 1", g.machine.Depth())
	}
}

func TestTransitionsAnnounceTop(t *testing.T) {
	g := newTestGame()
	var names []string
	g.dispatcher.Subscribe(event.StateChanged, event.ListenerFunc(func(e event.Event) {
		names = append(names, e.Data.(string))
	}))
	var calls []string

	g.MoveToState(&probe{name: "a", log: &calls})
	g.PushState(&probe{name: "b", log: &calls})
	g.PopState()
	g.PopState()

	want := []string{"a", "b", "a", ""}
	if len(names) != len(want) {
		t.Fatalf("announced %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("announced %v, want %v", names, want)
			break
		}
	}
}
