// internal/app/game.go
package app

import (
	"egg-invaders/internal/component"
	"egg-invaders/internal/config"
	"egg-invaders/internal/event"
	"egg-invaders/internal/input"
	"egg-invaders/internal/interfaces"
	"egg-invaders/internal/state"
	"egg-invaders/internal/utils"
	"egg-invaders/pkg/render"

	"github.com/charmbracelet/log"
)

// Muter — звуковая таблица с переключателем тишины.
type Muter interface {
	interfaces.SoundPlayer
	ToggleMute() bool
}

// Options — всё, что нужно игре снаружи. Пустые Clock и Rand заменяются
// системными часами и генератором с сидом по времени.
type Options struct {
	Config config.Config
	Width  int
	Height int
	Sounds Muter
	Clock  interfaces.Clock
	Rand   interfaces.Random
	Logger *log.Logger
}

// Game владеет сессией, машиной состояний и общими сервисами и служит
// контекстом для каждого состояния.
type Game struct {
	cfg     config.Config
	session component.Session
	bounds  component.Bounds
	mobile  bool
	width   float64
	height  float64

	machine    *state.StateMachine
	dispatcher *event.Dispatcher
	sounds     Muter
	clock      interfaces.Clock
	rng        interfaces.Random
	logger     *log.Logger

	pressed map[int]bool
}

var _ state.GameContext = (*Game)(nil)

// NewGame собирает игру. Звуковая таблица, если есть, подписывается на
// игровые события.
func NewGame(opts Options) *Game {
	width, height := float64(opts.Width), float64(opts.Height)
	bounds, mobile := component.ComputeBounds(width, height, opts.Config)

	g := &Game{
		cfg:        opts.Config,
		bounds:     bounds,
		mobile:     mobile,
		width:      width,
		height:     height,
		machine:    state.NewStateMachine(),
		dispatcher: event.NewDispatcher(),
		sounds:     opts.Sounds,
		clock:      opts.Clock,
		rng:        opts.Rand,
		logger:     opts.Logger,
		pressed:    make(map[int]bool),
	}
	if g.clock == nil {
		g.clock = interfaces.SystemClock{}
	}
	if g.rng == nil {
		g.rng = utils.NewPRNGService(0)
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	if l, ok := g.sounds.(event.Listener); ok {
		g.dispatcher.SubscribeAll(l, event.RocketFired, event.InvaderKilled, event.ShipHit, event.ShipRammed)
	}
	g.dispatcher.SubscribeAll(event.ListenerFunc(g.logEvent), event.LevelCleared, event.GameLost)
	g.session.Reset(g.cfg.InitialLives)
	return g
}

// Start показывает вступление.
func (g *Game) Start() {
	g.logger.Info("game started", "bounds", g.bounds, "mobile", g.mobile)
	g.MoveToState(state.NewIntroState())
}

func (g *Game) logEvent(e event.Event) {
	g.logger.Info(string(e.Type), "score", g.session.Score, "level", g.session.Level)
}

// Update продвигает текущее состояние на deltaTime.
func (g *Game) Update(deltaTime float64) {
	g.machine.Update(g, deltaTime)
}

// Draw рисует текущее состояние.
func (g *Game) Draw(surface render.Surface) {
	g.machine.Draw(g, surface)
}

// HandleEvent передаёт событие ввода текущему состоянию. Возвращает false,
// когда игрок просит выйти.
func (g *Game) HandleEvent(ev input.Event) bool {
	switch ev.Kind {
	case input.KeyDown:
		g.KeyDown(ev.Code)
	case input.KeyUp:
		g.KeyUp(ev.Code)
	case input.PointerStart:
		g.machine.PointerStart(g, ev.Pointer)
	case input.PointerMove:
		g.machine.PointerMove(g, ev.Pointer)
	case input.PointerEnd:
		g.machine.PointerEnd(g, ev.Pointer)
	case input.Quit:
		return false
	}
	return true
}

// KeyDown запоминает зажатую клавишу. M переключает звук на любом экране.
func (g *Game) KeyDown(code int) {
	g.pressed[code] = true
	if code == input.KeyM {
		muted := g.ToggleMute()
		g.logger.Debug("mute toggled", "muted", muted)
	}
	g.machine.KeyDown(g, code)
}

func (g *Game) KeyUp(code int) {
	delete(g.pressed, code)
	g.machine.KeyUp(g, code)
}

// Current возвращает имя текущего состояния или пустую строку.
func (g *Game) Current() string {
	if cur := g.machine.Current(); cur != nil {
		return cur.Name()
	}
	return ""
}

func (g *Game) Config() config.Config         { return g.cfg }
func (g *Game) Session() *component.Session   { return &g.session }
func (g *Game) Bounds() component.Bounds      { return g.bounds }
func (g *Game) Size() (float64, float64)      { return g.width, g.height }
func (g *Game) Mobile() bool                  { return g.mobile }
func (g *Game) Dispatcher() *event.Dispatcher { return g.dispatcher }
func (g *Game) Clock() interfaces.Clock       { return g.clock }
func (g *Game) Rand() interfaces.Random       { return g.rng }
func (g *Game) Logger() *log.Logger           { return g.logger }
func (g *Game) IsKeyDown(code int) bool       { return g.pressed[code] }
func (g *Game) MoveToState(next state.State)  { g.machine.MoveToState(g, next) }
func (g *Game) PushState(next state.State)    { g.machine.PushState(g, next) }
func (g *Game) PopState()                     { g.machine.PopState(g) }

// ToggleMute переключает звук; без звуковой таблицы всегда «тихо».
func (g *Game) ToggleMute() bool {
	if g.sounds == nil {
		return true
	}
	return g.sounds.ToggleMute()
}
