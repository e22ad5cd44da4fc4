package system

import (
	"image/color"
	"time"

	"egg-invaders/internal/component"
	"egg-invaders/internal/config"
	"egg-invaders/internal/event"
	"egg-invaders/pkg/render"
)

var testBounds = component.Bounds{Left: 200, Top: 150, Right: 600, Bottom: 450}

// mockClock — управляемое время для проверки темпа стрельбы.
type mockClock struct{ now time.Time }

func newMockClock() *mockClock {
	return &mockClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *mockClock) Now() time.Time          { return c.now }
func (c *mockClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// scriptedRand возвращает заранее заданные значения по кругу.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

// quietConfig — конфигурация без случайных бомб и бонусов.
func quietConfig() config.Config {
	cfg := config.Default()
	cfg.BombRate = 0
	cfg.BonusChance = 0
	return cfg
}

type testSim struct {
	*Simulation
	clock   *mockClock
	rng     *scriptedRand
	events  []event.EventType
	session *component.Session
}

func newTestSim(cfg config.Config, level int) *testSim {
	ts := &testSim{
		clock:   newMockClock(),
		rng:     &scriptedRand{},
		session: &component.Session{Lives: 3, Level: level},
	}
	d := event.NewDispatcher()
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		ts.events = append(ts.events, e.Type)
	}),
		event.RocketFired, event.InvaderKilled, event.ShipHit, event.ShipRammed,
		event.BonusCaught, event.BonusActivated, event.FlockLanded,
	)
	ts.Simulation = NewSimulation(level, Deps{
		Config:     cfg,
		Bounds:     testBounds,
		Width:      800,
		Height:     600,
		Clock:      ts.clock,
		Rand:       ts.rng,
		Dispatcher: d,
	})
	return ts
}

func (ts *testSim) count(t event.EventType) int {
	n := 0
	for _, e := range ts.events {
		if e == t {
			n++
		}
	}
	return n
}

// recordingSurface запоминает порядок вызовов отрисовки.
type recordingSurface struct {
	sprites []string
	texts   []string
}

func (s *recordingSurface) Size() (float64, float64) { return 800, 600 }
func (s *recordingSurface) Clear()                   {}
func (s *recordingSurface) DrawSprite(name string, x, y, w, h float64) {
	s.sprites = append(s.sprites, name)
}
func (s *recordingSurface) DrawText(text string, x, y, size float64, align render.Align, clr color.Color) {
	s.texts = append(s.texts, text)
}
func (s *recordingSurface) FillRoundRect(x, y, w, h, r float64, clr color.Color) {}
func (s *recordingSurface) StrokeRect(x, y, w, h float64, clr color.Color)       {}
