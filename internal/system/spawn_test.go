package system

import (
	"testing"

	"egg-invaders/internal/component"
)

func TestBombsDropFromFrontRankOnly(t *testing.T) {
	cfg := quietConfig()
	cfg.BombRate = 1
	ts := newTestSim(cfg, 0)
	ts.rng.floats = []float64{0}

	dropped := ts.Spawn.DropBombs(0.02)
	if dropped != cfg.InvaderFiles {
		t.Fatalf("dropped = %d, want one per file", dropped)
	}
	frontY := ts.World.Bounds.Top + float64(cfg.InvaderRanks-1)*26
	for _, b := range ts.World.Bombs {
		if b.Y != frontY+12 {
			t.Errorf("bomb at y=%v, want below the front rank at %v", b.Y, frontY+12)
		}
		if b.Velocity != 50 {
			t.Errorf("bomb velocity = %v, want 50", b.Velocity)
		}
	}
}

func TestBombChance(t *testing.T) {
	cfg := quietConfig()
	cfg.BombRate = 1
	ts := newTestSim(cfg, 0)
	// Шанс 0.02 не превышает 0.5
	ts.rng.floats = []float64{0.5}

	if dropped := ts.Spawn.DropBombs(0.02); dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
}

func TestFrontRankSkipsEmptyFiles(t *testing.T) {
	cfg := quietConfig()
	cfg.BombRate = 1
	ts := newTestSim(cfg, 0)
	ts.rng.floats = []float64{0}
	ts.World.Invaders = []*component.Invader{
		component.NewInvader(300, 150, 0, 2),
		component.NewInvader(300, 176, 1, 2),
	}

	if dropped := ts.Spawn.DropBombs(0.02); dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	if got := ts.World.Bombs[0].Y; got != 176+12 {
		t.Errorf("bomb y = %v, want from rank 1", got)
	}
}

func TestBonusDrop(t *testing.T) {
	cfg := quietConfig()
	cfg.BonusChance = 0.5
	ts := newTestSim(cfg, 0)
	ts.rng.floats = []float64{0.7, 0.1}
	ts.rng.ints = []int{40}

	if ts.Spawn.MaybeDropBonus() {
		t.Fatal("0.7 should not drop a bonus at chance 0.5")
	}
	if !ts.Spawn.MaybeDropBonus() {
		t.Fatal("0.1 should drop a bonus at chance 0.5")
	}
	b := ts.World.Bonuses[0]
	if b.X != ts.World.Bounds.Left+40 {
		t.Errorf("bonus x = %v, want %v", b.X, ts.World.Bounds.Left+40)
	}
	frontY := ts.World.Bounds.Top + float64(cfg.InvaderRanks-1)*26
	if b.Y != frontY {
		t.Errorf("bonus y = %v, want front rank line %v", b.Y, frontY)
	}
}
