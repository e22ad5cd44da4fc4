// internal/system/simulation.go
package system

import (
	"egg-invaders/internal/component"
	"egg-invaders/internal/config"
	"egg-invaders/internal/entity"
	"egg-invaders/internal/event"
	"egg-invaders/internal/interfaces"
)

// Outcome — итог тика для машины состояний.
type Outcome struct {
	Hit     Hit
	Kills   int
	Lost    bool // жизней не осталось
	Cleared bool // захватчиков не осталось
}

// Simulation — один уровень: мир и системы, которые его двигают.
type Simulation struct {
	World *entity.World

	Ship        *ShipSystem
	Projectiles *ProjectileSystem
	Flock       *FlockSystem
	Combat      *CombatSystem
	Spawn       *SpawnSystem
	Weapon      *WeaponSystem
	Effects     *VisualEffectSystem
	Render      *RenderSystem
}

// Deps — внешние зависимости симуляции.
type Deps struct {
	Config     config.Config
	Bounds     component.Bounds
	Width      float64
	Height     float64
	Clock      interfaces.Clock
	Rand       interfaces.Random
	Dispatcher *event.Dispatcher
}

// NewSimulation строит мир уровня level со свежим строем захватчиков.
func NewSimulation(level int, d Deps) *Simulation {
	world := entity.NewWorld(d.Config, level, d.Bounds, d.Width, d.Height)
	return &Simulation{
		World:       world,
		Ship:        NewShipSystem(world),
		Projectiles: NewProjectileSystem(world),
		Flock:       NewFlockSystem(world, d.Config, d.Dispatcher),
		Combat:      NewCombatSystem(world, d.Config, d.Dispatcher),
		Spawn:       NewSpawnSystem(world, d.Config, d.Rand),
		Weapon:      NewWeaponSystem(world, d.Config, d.Clock, d.Dispatcher),
		Effects:     NewVisualEffectSystem(world),
		Render:      NewRenderSystem(world),
	}
}

// Step продвигает уровень на deltaTime секунд.
func (s *Simulation) Step(deltaTime float64, control ShipControl, session *component.Session) Outcome {
	var out Outcome

	s.Ship.Update(deltaTime, control)
	s.Projectiles.Update(deltaTime)

	out.Hit = s.Flock.Update(deltaTime)
	if out.Hit == HitBottom {
		session.Lives = 0
	}

	s.Effects.Update()
	out.Kills = s.Combat.RocketsVsInvaders(session)

	s.Spawn.DropBombs(deltaTime)
	s.Spawn.MaybeDropBonus()

	s.Combat.BombsVsShip(session)
	s.Combat.BonusesVsShip(session)
	s.Combat.InvadersVsShip(session)

	out.Lost = session.Lives <= 0
	out.Cleared = len(s.World.Invaders) == 0
	return out
}
