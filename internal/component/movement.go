// internal/component/movement.go
package component

// Position — центр сущности
type Position struct {
	X, Y float64
}

// Box — прямоугольник, центрированный в позиции сущности.
type Box struct {
	X, Y          float64
	Width, Height float64
}

func (b Box) Left() float64   { return b.X - b.Width/2 }
func (b Box) Right() float64  { return b.X + b.Width/2 }
func (b Box) Top() float64    { return b.Y - b.Height/2 }
func (b Box) Bottom() float64 { return b.Y + b.Height/2 }

// Touches проверяет пересечение с учётом общих границ.
func (b Box) Touches(o Box) bool {
	return b.Right() >= o.Left() && b.Left() <= o.Right() &&
		b.Bottom() >= o.Top() && b.Top() <= o.Bottom()
}

// Overlaps проверяет строгое пересечение: касание краями не считается.
func (b Box) Overlaps(o Box) bool {
	return b.Right() > o.Left() && b.Left() < o.Right() &&
		b.Bottom() > o.Top() && b.Top() < o.Bottom()
}

// Contains проверяет, лежит ли точка внутри (включая границу).
func (b Box) Contains(x, y float64) bool {
	return x >= b.Left() && x <= b.Right() && y >= b.Top() && y <= b.Bottom()
}
