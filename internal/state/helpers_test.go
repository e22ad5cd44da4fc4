package state

import (
	"image/color"
	"io"
	"time"

	"egg-invaders/internal/component"
	"egg-invaders/internal/config"
	"egg-invaders/internal/event"
	"egg-invaders/internal/interfaces"
	"egg-invaders/pkg/render"

	"github.com/charmbracelet/log"
)

type mockClock struct{ now time.Time }

func (c *mockClock) Now() time.Time          { return c.now }
func (c *mockClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// quietRand никогда не роняет бомбы и бонусы.
type quietRand struct{}

func (quietRand) Float64() float64 { return 0.999 }
func (quietRand) Intn(int) int     { return 0 }

// testGame — GameContext поверх настоящей машины состояний.
type testGame struct {
	cfg        config.Config
	session    component.Session
	bounds     component.Bounds
	mobile     bool
	machine    *StateMachine
	dispatcher *event.Dispatcher
	clock      *mockClock
	pressed    map[int]bool
	muted      bool
	logger     *log.Logger
	events     []event.EventType
}

func newTestGame() *testGame {
	cfg := config.Default()
	cfg.BombRate = 0
	cfg.BonusChance = 0
	bounds, mobile := component.ComputeBounds(800, 600, cfg)
	g := &testGame{
		cfg:        cfg,
		bounds:     bounds,
		mobile:     mobile,
		machine:    NewStateMachine(),
		dispatcher: event.NewDispatcher(),
		clock:      &mockClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		pressed:    make(map[int]bool),
		logger:     log.New(io.Discard),
	}
	g.session.Reset(cfg.InitialLives)
	g.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		g.events = append(g.events, e.Type)
	}), event.LevelCleared, event.GameLost, event.RocketFired, event.BonusActivated)
	return g
}

func (g *testGame) Config() config.Config         { return g.cfg }
func (g *testGame) Session() *component.Session   { return &g.session }
func (g *testGame) Bounds() component.Bounds      { return g.bounds }
func (g *testGame) Size() (float64, float64)      { return 800, 600 }
func (g *testGame) Mobile() bool                  { return g.mobile }
func (g *testGame) Dispatcher() *event.Dispatcher { return g.dispatcher }
func (g *testGame) Clock() interfaces.Clock       { return g.clock }
func (g *testGame) Rand() interfaces.Random       { return quietRand{} }
func (g *testGame) Logger() *log.Logger           { return g.logger }
func (g *testGame) IsKeyDown(code int) bool       { return g.pressed[code] }
func (g *testGame) ToggleMute() bool              { g.muted = !g.muted; return g.muted }
func (g *testGame) MoveToState(next State)        { g.machine.MoveToState(g, next) }
func (g *testGame) PushState(next State)          { g.machine.PushState(g, next) }
func (g *testGame) PopState()                     { g.machine.PopState(g) }

func (g *testGame) tick() {
	g.machine.Update(g, g.cfg.TickSeconds())
}

func (g *testGame) current() string {
	if cur := g.machine.Current(); cur != nil {
		return cur.Name()
	}
	return ""
}

type recordingSurface struct {
	sprites []string
	texts   []string
	fills   int
	strokes int
}

func (s *recordingSurface) Size() (float64, float64) { return 800, 600 }
func (s *recordingSurface) Clear()                   {}
func (s *recordingSurface) DrawSprite(name string, x, y, w, h float64) {
	s.sprites = append(s.sprites, name)
}
func (s *recordingSurface) DrawText(text string, x, y, size float64, align render.Align, clr color.Color) {
	s.texts = append(s.texts, text)
}
func (s *recordingSurface) FillRoundRect(x, y, w, h, r float64, clr color.Color) { s.fills++ }
func (s *recordingSurface) StrokeRect(x, y, w, h float64, clr color.Color)       { s.strokes++ }

func (s *recordingSurface) hasText(text string) bool {
	for _, t := range s.texts {
		if t == text {
			return true
		}
	}
	return false
}
