// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// SpriteColors — цвета-заглушки для спрайтов, картинки которых не загрузились.
var SpriteColors = map[string]color.RGBA{
	"birdUp":        {80, 200, 255, 255},
	"birdMid":       {80, 200, 255, 255},
	"birdDown":      {80, 200, 255, 255},
	"invader":       {245, 240, 220, 255},
	"invaderKilled": {255, 200, 40, 255},
	"bomb":          {220, 60, 60, 255},
	"rocket":        {120, 255, 120, 255},
	"bonus":         {255, 215, 0, 255},
}

// FallbackColor возвращает цвет-заглушку для спрайта. Для неизвестных имён
// ok == false, и такой спрайт не рисуется вовсе.
func FallbackColor(sprite string) (color.RGBA, bool) {
	c, ok := SpriteColors[sprite]
	return c, ok
}
