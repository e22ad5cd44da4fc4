package component

import (
	"testing"

	"egg-invaders/internal/config"
)

func TestComputeBounds(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name          string
		width, height float64
		want          Bounds
		mobile        bool
	}{
		{"desktop", 800, 600, Bounds{Left: 200, Top: 150, Right: 600, Bottom: 450}, false},
		{"narrow", 300, 600, Bounds{Left: 25, Top: 150, Right: 275, Bottom: 450}, true},
		{"exact fit", 450, 600, Bounds{Left: 25, Top: 150, Right: 425, Bottom: 450}, true},
		{"short", 800, 200, Bounds{Left: 200, Top: 10, Right: 600, Bottom: 190}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, mobile := ComputeBounds(tc.width, tc.height, cfg)
			if got != tc.want {
				t.Errorf("ComputeBounds = %+v, want %+v", got, tc.want)
			}
			if mobile != tc.mobile {
				t.Errorf("mobile = %v, want %v", mobile, tc.mobile)
			}
		})
	}
}

func TestBoxIntersections(t *testing.T) {
	a := Box{X: 0, Y: 0, Width: 10, Height: 10}
	edge := Box{X: 10, Y: 0, Width: 10, Height: 10}
	apart := Box{X: 20, Y: 0, Width: 10, Height: 10}

	if !a.Touches(edge) {
		t.Error("boxes sharing an edge should touch")
	}
	if a.Overlaps(edge) {
		t.Error("boxes sharing an edge should not strictly overlap")
	}
	if a.Touches(apart) || a.Overlaps(apart) {
		t.Error("separate boxes should not intersect")
	}
	if !a.Contains(5, -5) || a.Contains(5.1, 0) {
		t.Error("Contains should include the border only")
	}
}

func TestShipAnimation(t *testing.T) {
	s := NewShip(0, 0)
	if s.Sprite() != "birdUp" {
		t.Fatalf("initial sprite = %s", s.Sprite())
	}
	for i := 0; i < config.ShipFrameTicks; i++ {
		s.Animate()
	}
	if s.Frame != 0 {
		t.Fatalf("frame advanced too early: %d", s.Frame)
	}
	s.Animate()
	if s.Sprite() != "birdMid" {
		t.Errorf("sprite after %d ticks = %s, want birdMid", config.ShipFrameTicks+1, s.Sprite())
	}
	for i := 0; i < 2*(config.ShipFrameTicks+1); i++ {
		s.Animate()
	}
	if s.Sprite() != "birdUp" {
		t.Errorf("animation should wrap, got %s", s.Sprite())
	}
}

func TestSessionReset(t *testing.T) {
	s := Session{Lives: 0, Score: 120, Level: 4, BonusesCaught: 2}
	s.Reset(3)
	if s != (Session{Lives: 3, Score: 0, Level: 1, BonusesCaught: 0}) {
		t.Errorf("Reset left %+v", s)
	}
}
