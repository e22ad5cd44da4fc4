// internal/state/play_state.go
package state

import (
	"egg-invaders/internal/config"
	"egg-invaders/internal/event"
	"egg-invaders/internal/input"
	"egg-invaders/internal/system"
	"egg-invaders/internal/ui"
	"egg-invaders/pkg/render"
)

// PlayState — один уровень игры.
type PlayState struct {
	level    int
	sim      *system.Simulation
	hud      *ui.HUD
	controls *ui.TouchControls

	dragging bool
	pointerX float64
}

func NewPlayState(level int) *PlayState {
	return &PlayState{level: level}
}

func (s *PlayState) Name() string { return "play" }

func (s *PlayState) Level() int { return s.level }

// Simulation отдаёт мир уровня; nil до Enter.
func (s *PlayState) Simulation() *system.Simulation { return s.sim }

// Enter строит новый мир уровня с параметрами сложности этого уровня.
func (s *PlayState) Enter(ctx GameContext) {
	w, h := ctx.Size()
	s.sim = system.NewSimulation(s.level, system.Deps{
		Config:     ctx.Config(),
		Bounds:     ctx.Bounds(),
		Width:      w,
		Height:     h,
		Clock:      ctx.Clock(),
		Rand:       ctx.Rand(),
		Dispatcher: ctx.Dispatcher(),
	})
	s.hud = ui.NewHUD(ctx.Bounds(), h)
	s.controls = ui.NewTouchControls(ctx.Bounds(), w, h)
	s.dragging = false
}

func (s *PlayState) Update(ctx GameContext, deltaTime float64) {
	session := ctx.Session()
	control := system.ShipControl{
		Left:     ctx.IsKeyDown(input.KeyLeft),
		Right:    ctx.IsKeyDown(input.KeyRight),
		Dragging: s.dragging,
		PointerX: s.pointerX,
	}
	out := s.sim.Step(deltaTime, control, session)

	// Обе проверки независимы: сначала победа, затем поражение
	if out.Cleared {
		session.Score += s.level * ctx.Config().LevelClearPoints
		session.Level++
		ctx.Dispatcher().Dispatch(event.Event{Type: event.LevelCleared, Data: s.level})
		ctx.MoveToState(NewLevelIntroState(session.Level))
	}
	if out.Lost {
		ctx.Dispatcher().Dispatch(event.Event{Type: event.GameLost, Data: session.Score})
		ctx.MoveToState(NewGameOverState())
	}
}

func (s *PlayState) Draw(ctx GameContext, surface render.Surface) {
	surface.Clear()
	ui.DrawLogo(surface)
	s.sim.Render.Draw(surface)
	s.hud.Draw(surface, ctx.Session())

	if ctx.Mobile() {
		s.controls.Draw(surface)
	}

	if ctx.Config().DebugMode {
		w, h := ctx.Size()
		b := ctx.Bounds()
		surface.StrokeRect(0, 0, w, h, config.DebugBoundsColor)
		surface.StrokeRect(b.Left, b.Top, b.Width(), b.Height(), config.DebugBoundsColor)
	}
}

func (s *PlayState) KeyDown(ctx GameContext, code int) {
	switch code {
	case input.KeySpace:
		s.sim.Weapon.FireRocket()
	case input.KeyP:
		ctx.PushState(NewPauseState(s))
	case input.KeyX:
		s.sim.Weapon.ActivateBonus(ctx.Session())
	}
}

// PointerStart: касание кнопки стреляет или тратит бонус, касание в
// другом месте начинает вести корабль за пальцем.
func (s *PlayState) PointerStart(ctx GameContext, ev input.PointerEvent) {
	if len(ev.Touches) != 1 {
		return
	}
	t := ev.Touches[0]
	s.dragging = false

	switch {
	case ctx.Mobile() && s.controls.Shoot.Contains(t.X, t.Y):
		s.controls.Shoot.Pressed = true
		s.sim.Weapon.FireRocket()
	case ctx.Mobile() && s.controls.Bonus.Contains(t.X, t.Y):
		s.controls.Bonus.Pressed = true
		s.sim.Weapon.ActivateBonus(ctx.Session())
	default:
		s.dragging = true
		s.pointerX = t.X
	}
}

func (s *PlayState) PointerMove(ctx GameContext, ev input.PointerEvent) {
	if len(ev.Touches) != 1 {
		return
	}
	s.dragging = true
	s.pointerX = ev.Touches[0].X
}

func (s *PlayState) PointerEnd(ctx GameContext, ev input.PointerEvent) {
	if len(ev.Touches) == 0 {
		s.dragging = false
		s.controls.Release()
	}
}
