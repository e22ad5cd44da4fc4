// internal/loop/driver.go
package loop

import (
	"context"
	"sync"
	"time"

	"egg-invaders/pkg/render"

	"github.com/charmbracelet/log"
)

// Frame — то, что крутит драйвер: обычно app.Game или обёртка над ней.
type Frame interface {
	Update(deltaTime float64)
	Draw(surface render.Surface)
}

// Driver вызывает Update и Draw с фиксированным шагом 1/fps. Тик никогда
// не прерывается; Stop отменяет только следующие.
type Driver struct {
	frame   Frame
	surface render.Surface
	fps     int
	logger  *log.Logger

	stop     chan struct{}
	stopOnce sync.Once
	ticks    uint64
}

func NewDriver(frame Frame, surface render.Surface, fps int, logger *log.Logger) *Driver {
	return &Driver{
		frame:   frame,
		surface: surface,
		fps:     fps,
		logger:  logger,
		stop:    make(chan struct{}),
	}
}

// Tick выполняет один шаг: обновление, затем отрисовка.
func (d *Driver) Tick() {
	d.frame.Update(1 / float64(d.fps))
	d.frame.Draw(d.surface)
	d.ticks++
}

// Ticks — число выполненных шагов.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Run тикает, пока не вызван Stop или не отменён ctx.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(d.fps))
	defer ticker.Stop()

	d.logger.Info("loop started", "fps", d.fps)
	defer func() { d.logger.Info("loop stopped", "ticks", d.ticks) }()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.stop:
			return nil
		case <-ticker.C:
			if d.stopped() {
				return nil
			}
			d.Tick()
		}
	}
}

// Stop можно вызывать из любой горутины и повторно, в том числе из Update.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() { close(d.stop) })
}

func (d *Driver) stopped() bool {
	select {
	case <-d.stop:
		return true
	default:
		return false
	}
}
