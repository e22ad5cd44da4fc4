// internal/state/level_intro_state.go
package state

import (
	"fmt"
	"math"
	"strconv"

	"egg-invaders/internal/config"
	"egg-invaders/internal/ui"
	"egg-invaders/pkg/render"
)

// LevelIntroState показывает «Level N» и обратный отсчёт до начала уровня.
type LevelIntroState struct {
	level     int
	initial   float64
	countdown float64
	message   string
}

func NewLevelIntroState(level int) *LevelIntroState {
	return &LevelIntroState{level: level}
}

func (s *LevelIntroState) Name() string { return "levelIntro" }

// Level — уровень, который начнётся после отсчёта.
func (s *LevelIntroState) Level() int { return s.level }

// Countdown — текст отсчёта: «3», потом «2» ниже двух секунд, «1» ниже одной.
func (s *LevelIntroState) Countdown() string { return s.message }

func (s *LevelIntroState) Enter(ctx GameContext) {
	s.initial = ctx.Config().LevelIntroSeconds
	s.countdown = s.initial
	s.message = countdownDigit(s.countdown, s.initial)
}

func (s *LevelIntroState) Update(ctx GameContext, deltaTime float64) {
	s.countdown -= deltaTime
	s.message = countdownDigit(s.countdown, s.initial)
	if s.countdown <= 0 {
		ctx.MoveToState(NewPlayState(s.level))
	}
}

// countdownDigit показывает целую секунду, которая ещё не истекла, но не
// больше стартового значения и не меньше единицы.
func countdownDigit(left, initial float64) string {
	d := int(math.Floor(left)) + 1
	d = min(d, int(math.Ceil(initial)))
	d = max(d, 1)
	return strconv.Itoa(d)
}

func (s *LevelIntroState) Draw(ctx GameContext, surface render.Surface) {
	w, h := ctx.Size()
	surface.Clear()
	ui.DrawLogo(surface)
	surface.DrawText(fmt.Sprintf("Level %d", s.level), w/2, h/2, 36, render.AlignCenter, config.TextColor)
	surface.DrawText("Ready in "+s.message, w/2, h/2+36, 24, render.AlignCenter, config.TextColor)
}
