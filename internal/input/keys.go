// internal/input/keys.go
package input

// Коды клавиш, на которые реагирует игра. Остальные коды игнорируются.
const (
	KeySpace = 32
	KeyLeft  = 37
	KeyRight = 39
	KeyM     = 77
	KeyP     = 80
	KeyX     = 88
)

// Touch — одно активное касание (или курсор мыши) в логических координатах.
type Touch struct {
	ID   int
	X, Y float64
}

// PointerEvent несёт список касаний, активных после события.
type PointerEvent struct {
	Touches []Touch
}

// Kind — вид входного события.
type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	PointerStart
	PointerMove
	PointerEnd
	Quit
)

func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "keyDown"
	case KeyUp:
		return "keyUp"
	case PointerStart:
		return "pointerStart"
	case PointerMove:
		return "pointerMove"
	case PointerEnd:
		return "pointerEnd"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event — дискретное событие ввода, независимое от фронтенда.
type Event struct {
	Kind    Kind
	Code    int
	Pointer PointerEvent
}
