// internal/component/bounds.go
package component

import (
	"math"

	"egg-invaders/internal/config"
)

// Bounds — игровое поле внутри экрана.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// ComputeBounds вписывает поле gameWidth x gameHeight в экран, оставляя отступы.
// mobile == true, когда экран уже игрового поля и поле сжимается по ширине.
func ComputeBounds(screenWidth, screenHeight float64, cfg config.Config) (b Bounds, mobile bool) {
	halfW := math.Min(screenWidth/2-config.BoundsMarginX, cfg.GameWidth/2)
	halfH := math.Min(screenHeight/2-config.BoundsMarginY, cfg.GameHeight/2)
	b = Bounds{
		Left:   screenWidth/2 - halfW,
		Right:  screenWidth/2 + halfW,
		Top:    screenHeight/2 - halfH,
		Bottom: screenHeight/2 + halfH,
	}
	return b, halfW == screenWidth/2-config.BoundsMarginX
}

func (b Bounds) Width() float64  { return b.Right - b.Left }
func (b Bounds) Height() float64 { return b.Bottom - b.Top }
