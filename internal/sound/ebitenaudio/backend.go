// internal/sound/ebitenaudio/backend.go
// Package ebitenaudio проигрывает звуки через аудиоконтекст ebiten.
package ebitenaudio

import (
	"bytes"
	"fmt"
	"io"

	"egg-invaders/internal/sound"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Backend декодирует WAV в PCM целиком, чтобы каждый выстрел создавал
// дешёвый плеер поверх готовых байт.
type Backend struct {
	ctx *audio.Context
}

// NewBackend создаёт аудиоконтекст. Он должен быть единственным в процессе.
func NewBackend() *Backend {
	return &Backend{ctx: audio.NewContext(SampleRate)}
}

func (b *Backend) Decode(name string, data []byte) (sound.Clip, error) {
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav %s: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pcm %s: %w", name, err)
	}
	return &clip{ctx: b.ctx, pcm: pcm}, nil
}

type clip struct {
	ctx *audio.Context
	pcm []byte
}

func (c *clip) Play() {
	c.ctx.NewPlayerFromBytes(c.pcm).Play()
}
