// internal/state/pause_state.go
package state

import (
	"egg-invaders/internal/config"
	"egg-invaders/internal/input"
	"egg-invaders/pkg/render"
)

// PauseState кладётся поверх игры. Пока оно на вершине, игра под ним не
// обновляется; P снимает паузу.
type PauseState struct {
	previous State
}

func NewPauseState(previous State) *PauseState {
	return &PauseState{previous: previous}
}

func (s *PauseState) Name() string { return "pause" }

// Draw показывает замершую игру под затемнением.
func (s *PauseState) Draw(ctx GameContext, surface render.Surface) {
	w, h := ctx.Size()
	if d, ok := s.previous.(Drawer); ok {
		d.Draw(ctx, surface)
	} else {
		surface.Clear()
	}
	surface.FillRoundRect(0, 0, w, h, 0, config.DimColor)
	surface.DrawText("Paused", w/2, h/2, config.HUDFontSize, render.AlignCenter, config.TextColor)
}

func (s *PauseState) KeyDown(ctx GameContext, code int) {
	if code == input.KeyP {
		ctx.PopState()
	}
}
