// internal/input/ebiteninput/poller.go
// Package ebiteninput опрашивает клавиатуру, мышь и касания ebiten и отдаёт
// их как события игры.
package ebiteninput

import (
	"egg-invaders/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mouseTouchID — идентификатор, под которым левая кнопка мыши
// выдаётся за касание.
const mouseTouchID = -1

var keyCodes = map[ebiten.Key]int{
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyM:          input.KeyM,
	ebiten.KeyP:          input.KeyP,
	ebiten.KeyX:          input.KeyX,
}

// Poller вызывается раз в тик из Update.
type Poller struct {
	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
	lastX    map[ebiten.TouchID]int
}

func NewPoller() *Poller {
	return &Poller{lastX: make(map[ebiten.TouchID]int)}
}

// Poll собирает события, произошедшие с прошлого тика.
func (p *Poller) Poll() []input.Event {
	var out []input.Event

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if code, ok := keyCodes[k]; ok {
			out = append(out, input.Event{Kind: input.KeyDown, Code: code})
		}
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if code, ok := keyCodes[k]; ok {
			out = append(out, input.Event{Kind: input.KeyUp, Code: code})
		}
	}

	return p.pollPointers(out)
}

func (p *Poller) pollPointers(out []input.Event) []input.Event {
	active := p.activeTouches()

	started := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if started || len(p.touchIDs) > 0 {
		out = append(out, input.Event{Kind: input.PointerStart, Pointer: input.PointerEvent{Touches: active}})
	}

	ended := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	p.touchIDs = inpututil.AppendJustReleasedTouchIDs(p.touchIDs[:0])
	if ended || len(p.touchIDs) > 0 {
		out = append(out, input.Event{Kind: input.PointerEnd, Pointer: input.PointerEvent{Touches: active}})
	}

	moved := false
	for _, t := range active {
		id := ebiten.TouchID(t.ID)
		if x, ok := p.lastX[id]; ok && x != int(t.X) {
			moved = true
		}
	}
	clear(p.lastX)
	for _, t := range active {
		p.lastX[ebiten.TouchID(t.ID)] = int(t.X)
	}
	if moved && !started {
		out = append(out, input.Event{Kind: input.PointerMove, Pointer: input.PointerEvent{Touches: active}})
	}
	return out
}

// activeTouches возвращает касания, а при их отсутствии зажатую мышь.
func (p *Poller) activeTouches() []input.Touch {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	touches := make([]input.Touch, 0, len(p.touchIDs)+1)
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		touches = append(touches, input.Touch{ID: int(id), X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		touches = append(touches, input.Touch{ID: mouseTouchID, X: float64(x), Y: float64(y)})
	}
	return touches
}
