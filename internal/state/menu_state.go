// internal/state/menu_state.go
package state

import (
	"egg-invaders/internal/config"
	"egg-invaders/internal/input"
	"egg-invaders/internal/ui"
	"egg-invaders/pkg/render"
)

// WelcomeState — заставка с названием; ждёт пробела или касания.
type WelcomeState struct{}

func NewWelcomeState() *WelcomeState {
	return &WelcomeState{}
}

func (s *WelcomeState) Name() string { return "welcome" }

func (s *WelcomeState) Draw(ctx GameContext, surface render.Surface) {
	w, h := ctx.Size()
	surface.Clear()
	ui.DrawLogo(surface)
	surface.DrawText("Egg Invaders", w/2, h/2-40, 30, render.AlignCenter, config.TextColor)
	surface.DrawText("Press 'Space' or touch screen to start.", w/2, h/2, 16, render.AlignCenter, config.TextColor)
}

func (s *WelcomeState) KeyDown(ctx GameContext, code int) {
	if code == input.KeySpace {
		startGame(ctx)
	}
}

func (s *WelcomeState) PointerStart(ctx GameContext, _ input.PointerEvent) {
	startGame(ctx)
}

// startGame обнуляет сессию и начинает с первого уровня.
func startGame(ctx GameContext) {
	session := ctx.Session()
	session.Reset(ctx.Config().InitialLives)
	ctx.MoveToState(NewLevelIntroState(session.Level))
}
