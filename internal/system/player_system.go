// internal/system/player_system.go
package system

import (
	"egg-invaders/internal/entity"
	"egg-invaders/internal/utils"
)

// ShipControl — то, что игрок держит нажатым в текущем тике.
type ShipControl struct {
	Left, Right bool
	Dragging    bool    // палец на экране вне кнопок
	PointerX    float64 // позиция пальца при Dragging
}

// ShipSystem двигает корабль игрока.
type ShipSystem struct {
	world *entity.World
}

func NewShipSystem(world *entity.World) *ShipSystem {
	return &ShipSystem{world: world}
}

// Update смещает корабль по нажатым клавишам и направлению перетаскивания,
// затем прижимает его к горизонтальным границам поля.
func (s *ShipSystem) Update(deltaTime float64, control ShipControl) {
	ship := s.world.Ship
	if ship == nil {
		return
	}
	speed := s.world.Params.ShipSpeed

	if control.Left {
		ship.X -= speed * deltaTime
	}
	if control.Right {
		ship.X += speed * deltaTime
	}
	if control.Dragging {
		if control.PointerX > ship.X {
			ship.X += speed * deltaTime
		} else {
			ship.X -= speed * deltaTime
		}
	}

	ship.X = utils.Clamp(ship.X, s.world.Bounds.Left, s.world.Bounds.Right)
}
