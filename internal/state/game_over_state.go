// internal/state/game_over_state.go
package state

import (
	"fmt"

	"egg-invaders/internal/config"
	"egg-invaders/internal/input"
	"egg-invaders/internal/ui"
	"egg-invaders/pkg/render"
)

// GameOverState показывает итог партии. Счёт и уровень в сессии не
// меняются, пока игрок не начнёт заново.
type GameOverState struct{}

func NewGameOverState() *GameOverState {
	return &GameOverState{}
}

func (s *GameOverState) Name() string { return "gameOver" }

func (s *GameOverState) Draw(ctx GameContext, surface render.Surface) {
	w, h := ctx.Size()
	session := ctx.Session()
	surface.Clear()
	ui.DrawLogo(surface)
	surface.DrawText("Game Over!", w/2, h/2-40, 30, render.AlignCenter, config.TextColor)
	summary := fmt.Sprintf("You scored %d and got to level %d", session.Score, session.Level)
	surface.DrawText(summary, w/2, h/2, 16, render.AlignCenter, config.TextColor)
	surface.DrawText("Press 'Space' or touch screen to play again.", w/2, h/2+40, 16, render.AlignCenter, config.TextColor)
}

func (s *GameOverState) KeyDown(ctx GameContext, code int) {
	if code == input.KeySpace {
		startGame(ctx)
	}
}

func (s *GameOverState) PointerStart(ctx GameContext, _ input.PointerEvent) {
	startGame(ctx)
}
