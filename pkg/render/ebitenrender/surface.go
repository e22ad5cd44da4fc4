// pkg/render/ebitenrender/surface.go
// Package ebitenrender рисует кадры игры средствами ebiten.
package ebitenrender

import (
	"image/color"

	"egg-invaders/internal/assets"
	"egg-invaders/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Surface рисует на *ebiten.Image. Спрайты берутся из SpriteManager;
// пока картинка не загружена, вместо неё рисуется цветной прямоугольник.
type Surface struct {
	dst     *ebiten.Image
	sprites *assets.SpriteManager
	fonts   *assets.Fonts
	images  map[string]*ebiten.Image
	width   float64
	height  float64
}

var _ render.Surface = (*Surface)(nil)

func NewSurface(sprites *assets.SpriteManager, fonts *assets.Fonts, width, height int) *Surface {
	return &Surface{
		sprites: sprites,
		fonts:   fonts,
		images:  make(map[string]*ebiten.Image),
		width:   float64(width),
		height:  float64(height),
	}
}

// image переносит декодированную картинку в ebiten при первом обращении.
func (s *Surface) image(name string) *ebiten.Image {
	if img, ok := s.images[name]; ok {
		return img
	}
	decoded, ok := s.sprites.Image(name)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(decoded)
	s.images[name] = img
	return img
}

// Bind задаёт кадр, в который идёт отрисовка.
func (s *Surface) Bind(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *Surface) Clear() {
	s.dst.Fill(color.Black)
}

func (s *Surface) DrawSprite(name string, x, y, w, h float64) {
	img := s.image(name)
	if img == nil {
		if c, ok := render.FallbackColor(name); ok {
			vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
		}
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

func (s *Surface) DrawText(str string, x, y, size float64, align render.Align, clr color.Color) {
	face := s.fonts.Face(size)

	width := float64(font.MeasureString(face, str).Ceil())
	switch align {
	case render.AlignCenter:
		x -= width / 2
	case render.AlignRight:
		x -= width
	}

	m := face.Metrics()
	baseline := y + float64(m.Ascent.Round()-m.Descent.Round())/2
	text.Draw(s.dst, str, face, int(x), int(baseline), clr)
}

func (s *Surface) FillRoundRect(x, y, w, h, radius float64, clr color.Color) {
	r := float32(radius)
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)
	vector.DrawFilledRect(s.dst, fx+r, fy, fw-2*r, fh, clr, true)
	vector.DrawFilledRect(s.dst, fx, fy+r, fw, fh-2*r, clr, true)
	vector.DrawFilledCircle(s.dst, fx+r, fy+r, r, clr, true)
	vector.DrawFilledCircle(s.dst, fx+fw-r, fy+r, r, clr, true)
	vector.DrawFilledCircle(s.dst, fx+r, fy+fh-r, r, clr, true)
	vector.DrawFilledCircle(s.dst, fx+fw-r, fy+fh-r, r, clr, true)
}

func (s *Surface) StrokeRect(x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}
