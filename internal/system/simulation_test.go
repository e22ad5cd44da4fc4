package system

import (
	"testing"

	"egg-invaders/internal/component"
	"egg-invaders/internal/entity"
)

func TestLevelParamsScale(t *testing.T) {
	cfg := quietConfig()
	cfg.BombRate = 0.05

	p := entity.NewLevelParams(cfg, 0)
	if p.InvaderInitialVelocity != 25 || p.BombRate != 0.05 {
		t.Errorf("level 0 should keep base values: %+v", p)
	}

	p = entity.NewLevelParams(cfg, 5)
	if p.InvaderInitialVelocity != 50 || p.BombMinVelocity != 100 || p.BombMaxVelocity != 100 {
		t.Errorf("level 5 should double velocities: %+v", p)
	}
	if p.ShipSpeed != cfg.ShipSpeed {
		t.Errorf("ship speed scaled to %v", p.ShipSpeed)
	}
}

func TestNewWorldGrid(t *testing.T) {
	ts := newTestSim(quietConfig(), 0)
	w := ts.World
	if len(w.Invaders) != 50 {
		t.Fatalf("invaders = %d, want 50", len(w.Invaders))
	}
	first := w.Invaders[0]
	if first.X != 500 || first.Y != 150 {
		t.Errorf("first invader at (%v,%v), want (500,150)", first.X, first.Y)
	}
	last := w.Invaders[49]
	if last.X != 320 || last.Y != 150+4*26 {
		t.Errorf("last invader at (%v,%v)", last.X, last.Y)
	}
	if w.Ship.X != 400 || w.Ship.Y != 450 {
		t.Errorf("ship at (%v,%v), want (400,450)", w.Ship.X, w.Ship.Y)
	}
	if w.Flock.Velocity.X != -25 {
		t.Errorf("flock starts at %v, want -25", w.Flock.Velocity.X)
	}
}

func TestShipClampedToBounds(t *testing.T) {
	ts := newTestSim(quietConfig(), 0)
	ship := ts.World.Ship
	ship.X = ts.World.Bounds.Left + 1

	ts.Ship.Update(0.02, ShipControl{Left: true})
	if ship.X != ts.World.Bounds.Left {
		t.Errorf("ship x = %v, want clamped to %v", ship.X, ts.World.Bounds.Left)
	}

	ship.X = 400
	ts.Ship.Update(0.5, ShipControl{Left: true, Right: true})
	if ship.X != 400 {
		t.Errorf("opposite keys should cancel, x = %v", ship.X)
	}

	ts.Ship.Update(0.5, ShipControl{Dragging: true, PointerX: 500})
	if ship.X != 460 {
		t.Errorf("drag should move toward the pointer, x = %v", ship.X)
	}
}

func TestProjectilesLeaveScreen(t *testing.T) {
	ts := newTestSim(quietConfig(), 0)
	w := ts.World
	w.Rockets = []*component.Rocket{component.NewRocket(300, 1, 120), component.NewRocket(300, 300, 120)}
	w.Bombs = []*component.Bomb{component.NewBomb(300, 599, 50), component.NewBomb(300, 300, 50)}
	w.Bonuses = []*component.Bonus{component.NewBonus(300, 599, 200)}

	ts.Projectiles.Update(0.1)
	if len(w.Rockets) != 1 || w.Rockets[0].Y != 288 {
		t.Errorf("rockets = %+v", w.Rockets)
	}
	if len(w.Bombs) != 1 || w.Bombs[0].Y != 305 {
		t.Errorf("bombs = %+v", w.Bombs)
	}
	if len(w.Bonuses) != 0 {
		t.Errorf("bonus should be gone")
	}
}

func TestKilledInvadersFade(t *testing.T) {
	ts := newTestSim(quietConfig(), 0)
	w := ts.World
	w.Killed = []*component.KilledInvader{{Invader: *w.Invaders[0], FramesLeft: 2}}

	ts.Effects.Update()
	if len(w.Killed) != 1 {
		t.Fatal("remains should last one more frame")
	}
	ts.Effects.Update()
	if len(w.Killed) != 0 {
		t.Error("remains should be gone")
	}
}

func TestStepClearsLevel(t *testing.T) {
	ts := newTestSim(quietConfig(), 0)
	w := ts.World
	inv := w.Invaders[0]
	w.Invaders = w.Invaders[:1]
	w.Rockets = []*component.Rocket{component.NewRocket(inv.X, inv.Y, 0)}

	out := ts.Step(0.02, ShipControl{}, ts.session)
	if !out.Cleared || out.Kills != 1 || out.Lost {
		t.Errorf("outcome = %+v, want cleared", out)
	}
}

func TestRenderOrder(t *testing.T) {
	ts := newTestSim(quietConfig(), 0)
	w := ts.World
	w.Invaders = w.Invaders[:1]
	w.Bombs = []*component.Bomb{component.NewBomb(300, 300, 50)}
	w.Rockets = []*component.Rocket{component.NewRocket(300, 300, 120)}
	w.Killed = []*component.KilledInvader{{Invader: *w.Invaders[0], FramesLeft: 2}}
	w.Bonuses = []*component.Bonus{component.NewBonus(300, 300, 200)}

	s := &recordingSurface{}
	ts.Render.Draw(s)
	want := []string{"birdUp", "invader", "bomb", "rocket", "invaderKilled", "bonus"}
	if len(s.sprites) != len(want) {
		t.Fatalf("sprites = %v, want %v", s.sprites, want)
	}
	for i := range want {
		if s.sprites[i] != want[i] {
			t.Errorf("sprite %d = %q, want %q", i, s.sprites[i], want[i])
		}
	}
}
