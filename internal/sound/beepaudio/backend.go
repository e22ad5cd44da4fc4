// internal/sound/beepaudio/backend.go
// Package beepaudio проигрывает звуки через динамик beep. Используется
// терминальным фронтендом.
package beepaudio

import (
	"bytes"
	"fmt"
	"time"

	"egg-invaders/internal/sound"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Backend держит один микшер, подключённый к динамику; каждый Play
// добавляет в него новый поток.
type Backend struct {
	mixer *beep.Mixer
}

// NewBackend инициализирует динамик. Без звуковой карты возвращает ошибку;
// игра тогда работает без звука.
func NewBackend() (*Backend, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	b := &Backend{mixer: &beep.Mixer{}}
	speaker.Play(b.mixer)
	return b, nil
}

// Close останавливает динамик.
func (b *Backend) Close() {
	speaker.Clear()
	speaker.Close()
}

func (b *Backend) Decode(name string, data []byte) (sound.Clip, error) {
	stream, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav %s: %w", name, err)
	}
	defer stream.Close()

	buf := beep.NewBuffer(format)
	buf.Append(stream)
	return &clip{backend: b, buffer: buf, rate: format.SampleRate}, nil
}

type clip struct {
	backend *Backend
	buffer  *beep.Buffer
	rate    beep.SampleRate
}

func (c *clip) Play() {
	var s beep.Streamer = c.buffer.Streamer(0, c.buffer.Len())
	if c.rate != sampleRate {
		s = beep.Resample(4, c.rate, sampleRate, s)
	}
	speaker.Lock()
	c.backend.mixer.Add(s)
	speaker.Unlock()
}
