// internal/input/terminal.go
package input

import (
	"context"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// DefaultKeyHold — сколько клавиша считается зажатой после последнего
// нажатия. Терминал не сообщает об отпускании, поэтому KeyUp синтезируется
// по таймауту; значение перекрывает задержку автоповтора.
const DefaultKeyHold = 500 * time.Millisecond

// TerminalReader превращает события tcell в события игры. Run читает экран в
// своей горутине и только пересылает сырые события; разбор и таймауты
// выполняются в Drain на горутине тиков.
type TerminalReader struct {
	screen        tcell.Screen
	width, height float64
	Hold          time.Duration

	raw     chan tcell.Event
	held    map[int]time.Time
	pointer bool
}

// NewTerminalReader создаёт читатель для логического экрана width x height.
func NewTerminalReader(screen tcell.Screen, width, height int) *TerminalReader {
	return &TerminalReader{
		screen: screen,
		width:  float64(width),
		height: float64(height),
		Hold:   DefaultKeyHold,
		raw:    make(chan tcell.Event, 100),
		held:   make(map[int]time.Time),
	}
}

// Run пересылает события экрана, пока ctx не отменён или экран не закрыт.
func (r *TerminalReader) Run(ctx context.Context) {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case r.raw <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Drain разбирает накопившиеся события без блокировки и добавляет KeyUp для
// клавиш, которые не повторялись дольше Hold.
func (r *TerminalReader) Drain(now time.Time) []Event {
	var out []Event
	for {
		select {
		case ev := <-r.raw:
			out = r.translate(out, ev, now)
			continue
		default:
		}
		break
	}
	return r.expire(out, now)
}

func (r *TerminalReader) translate(out []Event, ev tcell.Event, now time.Time) []Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return append(out, Event{Kind: Quit})
		}
		code, ok := keyCode(ev)
		if !ok {
			return out
		}
		if _, down := r.held[code]; !down {
			out = append(out, Event{Kind: KeyDown, Code: code})
		}
		r.held[code] = now
	case *tcell.EventMouse:
		x, y := ev.Position()
		lx, ly := r.logical(x, y)
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !r.pointer:
			r.pointer = true
			out = append(out, Event{Kind: PointerStart, Pointer: PointerEvent{Touches: []Touch{{X: lx, Y: ly}}}})
		case pressed:
			out = append(out, Event{Kind: PointerMove, Pointer: PointerEvent{Touches: []Touch{{X: lx, Y: ly}}}})
		case r.pointer:
			r.pointer = false
			out = append(out, Event{Kind: PointerEnd})
		}
	}
	return out
}

func (r *TerminalReader) expire(out []Event, now time.Time) []Event {
	for code, last := range r.held {
		if now.Sub(last) > r.Hold {
			delete(r.held, code)
			out = append(out, Event{Kind: KeyUp, Code: code})
		}
	}
	return out
}

// logical переводит центр ячейки в координаты логического экрана.
func (r *TerminalReader) logical(col, row int) (float64, float64) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) * r.width / float64(cols), (float64(row) + 0.5) * r.height / float64(rows)
}

func keyCode(ev *tcell.EventKey) (int, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyRune:
		switch unicode.ToUpper(ev.Rune()) {
		case ' ':
			return KeySpace, true
		case 'M':
			return KeyM, true
		case 'P':
			return KeyP, true
		case 'X':
			return KeyX, true
		}
	}
	return 0, false
}
