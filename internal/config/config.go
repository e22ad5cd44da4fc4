// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	// Отступы игрового поля от краёв экрана
	BoundsMarginX = 25
	BoundsMarginY = 10

	// Сетка захватчиков
	InvaderGridSpan    = 200.0 // ширина строя при старте уровня
	InvaderRankSpacing = 26.0

	// Размеры сущностей
	ShipWidth     = 50.0
	ShipHeight    = 50.0
	InvaderWidth  = 18.0
	InvaderHeight = 24.0
	RocketWidth   = 4.0
	RocketHeight  = 16.0
	BombWidth     = 16.0
	BombHeight    = 16.0
	BonusWidth    = 20.0
	BonusHeight   = 20.0

	// Ракета вылетает из носа корабля
	RocketOffsetX = -2.0
	RocketOffsetY = -24.0

	ShipFrameTicks = 10 // тиков на кадр анимации корабля

	// Сенсорные кнопки (доли экрана)
	TouchButtonWidth  = 0.3
	TouchButtonHeight = 0.08
	TouchButtonRadius = 10.0

	HUDFontSize = 14

	LogoWidth  = 200.0
	LogoHeight = 154.0
)

var (
	BackgroundColor  = color.RGBA{0, 0, 0, 255}
	TextColor        = color.RGBA{255, 255, 255, 255}
	StoryTextColor   = color.RGBA{254, 218, 74, 255}
	TouchButtonColor = color.RGBA{236, 199, 126, 255}
	DebugBoundsColor = color.RGBA{255, 0, 0, 255}
	DimColor         = color.RGBA{0, 0, 0, 128}
)

// Config — набор настраиваемых параметров игры. Читается при входе в уровень
// и не меняется до его конца.
type Config struct {
	BombRate                  float64 `json:"bombRate"`
	BombMinVelocity           float64 `json:"bombMinVelocity"`
	BombMaxVelocity           float64 `json:"bombMaxVelocity"`
	InvaderInitialVelocity    float64 `json:"invaderInitialVelocity"`
	InvaderAcceleration       float64 `json:"invaderAcceleration"`
	InvaderDropDistance       float64 `json:"invaderDropDistance"`
	RocketVelocity            float64 `json:"rocketVelocity"`
	RocketMaxFireRate         float64 `json:"rocketMaxFireRate"`
	BonusVelocity             float64 `json:"bonusVelocity"`
	BonusReward               float64 `json:"bonusReward"`
	BonusChance               float64 `json:"bonusChance"`
	GameWidth                 float64 `json:"gameWidth"`
	GameHeight                float64 `json:"gameHeight"`
	FPS                       int     `json:"fps"`
	DebugMode                 bool    `json:"debugMode"`
	InvaderRanks              int     `json:"invaderRanks"`
	InvaderFiles              int     `json:"invaderFiles"`
	ShipSpeed                 float64 `json:"shipSpeed"`
	LevelDifficultyMultiplier float64 `json:"levelDifficultyMultiplier"`
	PointsPerInvader          int     `json:"pointsPerInvader"`
	LevelClearPoints          int     `json:"levelClearPoints"`
	KilledInvaderFrames       int     `json:"killedInvaderFrames"`
	LevelIntroSeconds         float64 `json:"levelIntroSeconds"`
	IntroHoldSeconds          float64 `json:"introHoldSeconds"`
	InitialLives              int     `json:"initialLives"`
}

// Default возвращает значения по умолчанию.
func Default() Config {
	return Config{
		BombRate:                  0.05,
		BombMinVelocity:           50,
		BombMaxVelocity:           50,
		InvaderInitialVelocity:    25,
		InvaderAcceleration:       0,
		InvaderDropDistance:       30,
		RocketVelocity:            120,
		RocketMaxFireRate:         2,
		BonusVelocity:             200,
		BonusReward:               8,
		BonusChance:               0.04,
		GameWidth:                 400,
		GameHeight:                300,
		FPS:                       50,
		DebugMode:                 false,
		InvaderRanks:              5,
		InvaderFiles:              10,
		ShipSpeed:                 120,
		LevelDifficultyMultiplier: 0.2,
		PointsPerInvader:          5,
		LevelClearPoints:          50,
		KilledInvaderFrames:       5,
		LevelIntroSeconds:         3,
		IntroHoldSeconds:          25,
		InitialLives:              3,
	}
}

// TickSeconds — фиксированный шаг симуляции.
func (c Config) TickSeconds() float64 {
	return 1 / float64(c.FPS)
}

// Validate отбрасывает конфигурации, с которыми симуляция не может работать.
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.InvaderRanks <= 0 || c.InvaderFiles <= 0 {
		return fmt.Errorf("invader grid must be non-empty, got %dx%d", c.InvaderRanks, c.InvaderFiles)
	}
	if c.BombMinVelocity > c.BombMaxVelocity {
		return fmt.Errorf("bombMinVelocity %.1f exceeds bombMaxVelocity %.1f", c.BombMinVelocity, c.BombMaxVelocity)
	}
	if c.RocketMaxFireRate <= 0 {
		return fmt.Errorf("rocketMaxFireRate must be positive, got %.2f", c.RocketMaxFireRate)
	}
	if c.InitialLives <= 0 {
		return fmt.Errorf("initialLives must be positive, got %d", c.InitialLives)
	}
	if c.GameWidth <= 0 || c.GameHeight <= 0 {
		return fmt.Errorf("game area must be positive, got %.0fx%.0f", c.GameWidth, c.GameHeight)
	}
	return nil
}
