// internal/state/intro_state.go
package state

import (
	"egg-invaders/internal/config"
	"egg-invaders/internal/input"
	"egg-invaders/internal/ui"
	"egg-invaders/pkg/render"
)

const introTitle = "Presenting: Egg Invaders"

// StoryLines — текст вступления, строки открываются по одной.
var StoryLines = []string{
	"A long time ago, in a galaxy far far away,",
	"Eggs decided to invade Planet Technoslavia.",
	"No single power has ever emerged victorious",
	"across all of Technoslavia ...",
	"Will you let it happen now?",
	"Fight against the Invaders!",
	"You have been equipped with a laser cannon",
	"that you can move horizontally to fire at descending Eggs.",
	"Your aim is to defeat the rows of Eggs",
	"before they advance toward the bottom of the screen.",
	"But be careful - the more Eggs you defeat,",
	"the faster and more powerful they become.",
}

// IntroState — вступление с бегущим текстом. Каждая строка держится
// len(строки)*2 тиков, прежде чем откроется следующая. После последней
// строки заставка ждёт IntroHoldSeconds и переходит к WelcomeState.
type IntroState struct {
	lines []string
	shown int
	ticks int
	held  float64
}

func NewIntroState() *IntroState {
	return &IntroState{lines: StoryLines}
}

func (s *IntroState) Name() string { return "intro" }

// Shown — сколько строк уже видно.
func (s *IntroState) Shown() int { return s.shown }

func (s *IntroState) Enter(ctx GameContext) {
	s.shown = min(1, len(s.lines))
	s.ticks = 0
	s.held = 0
}

func (s *IntroState) Update(ctx GameContext, deltaTime float64) {
	if s.shown < len(s.lines) {
		s.ticks++
		if s.ticks >= len(s.lines[s.shown-1])*2 {
			s.ticks = 0
			s.shown++
		}
		return
	}

	s.held += deltaTime
	if s.held >= ctx.Config().IntroHoldSeconds {
		ctx.MoveToState(NewWelcomeState())
	}
}

func (s *IntroState) Draw(ctx GameContext, surface render.Surface) {
	w, h := ctx.Size()
	surface.Clear()
	ui.DrawLogo(surface)
	surface.DrawText(introTitle, w*0.15, h*0.1, w*0.05, render.AlignLeft, config.StoryTextColor)

	lineHeight := w / 40
	for i := 0; i < s.shown; i++ {
		y := h/3 + float64(i)*(lineHeight+5)
		surface.DrawText(s.lines[i], w/2, y, lineHeight, render.AlignCenter, config.StoryTextColor)
	}
}

func (s *IntroState) KeyDown(ctx GameContext, code int) {
	if code == input.KeySpace {
		ctx.MoveToState(NewWelcomeState())
	}
}

func (s *IntroState) PointerStart(ctx GameContext, _ input.PointerEvent) {
	ctx.MoveToState(NewWelcomeState())
}
