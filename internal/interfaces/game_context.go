// internal/interfaces/game_context.go
package interfaces

import "time"

// Clock отдаёт текущее время. Используется для ограничения темпа стрельбы.
type Clock interface {
	Now() time.Time
}

// Random — источник случайности для появления бомб и бонусов.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// SoundPlayer проигрывает звук по имени. Незагруженные звуки молча пропускаются.
type SoundPlayer interface {
	PlaySound(name string)
}

// SystemClock — Clock поверх time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
