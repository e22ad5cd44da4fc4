// internal/event/types.go
package event

const (
	RocketFired    EventType = "RocketFired"    // Выстрел ракетой
	InvaderKilled  EventType = "InvaderKilled"  // Захватчик сбит
	ShipHit        EventType = "ShipHit"        // Бомба попала в корабль
	ShipRammed     EventType = "ShipRammed"     // Захватчик столкнулся с кораблём
	BonusCaught    EventType = "BonusCaught"    // Бонус пойман
	BonusActivated EventType = "BonusActivated" // Строй отброшен бонусом
	FlockLanded    EventType = "FlockLanded"    // Строй достиг низа поля
	LevelCleared   EventType = "LevelCleared"   // Уровень пройден, Data — номер уровня
	GameLost       EventType = "GameLost"       // Жизни закончились
	StateChanged   EventType = "StateChanged"   // Сменилось текущее состояние, Data — имя
)
