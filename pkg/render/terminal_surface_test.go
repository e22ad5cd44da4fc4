package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)
	return s
}

func TestTerminalSurfaceScalesSprites(t *testing.T) {
	screen := newSimScreen(t)
	surface := NewTerminalSurface(screen, 800, 600)
	surface.Clear()

	surface.DrawSprite("invader", 391, 288, 18, 24)
	if r, _, _, _ := screen.GetContent(39, 14); r != '0' {
		t.Errorf("invader glyph = %q, want '0'", r)
	}

	// Неизвестные спрайты не рисуются
	surface.DrawSprite("logo", 0, 0, 100, 100)
	if r, _, _, _ := screen.GetContent(0, 0); r == 'l' {
		t.Error("unknown sprite should not be drawn")
	}
}

func TestTerminalSurfaceAlignsText(t *testing.T) {
	screen := newSimScreen(t)
	surface := NewTerminalSurface(screen, 800, 600)

	surface.DrawText("Hi", 400, 300, 14, AlignCenter, color.White)
	if r, _, _, _ := screen.GetContent(39, 15); r != 'H' {
		t.Errorf("centered text starts with %q, want 'H'", r)
	}

	surface.DrawText("end", 800, 0, 14, AlignRight, color.White)
	if r, _, _, _ := screen.GetContent(77, 0); r != 'e' {
		t.Errorf("right aligned text starts with %q, want 'e'", r)
	}
}

func TestFallbackColor(t *testing.T) {
	if _, ok := FallbackColor("invader"); !ok {
		t.Error("invader should have a fallback color")
	}
	if _, ok := FallbackColor("logo"); ok {
		t.Error("logo should not have a fallback color")
	}
	if got := DarkenColor(color.RGBA{200, 100, 50, 255}); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("DarkenColor = %v", got)
	}
}
