// internal/sound/sounds.go
package sound

import (
	"fmt"
	"io/fs"
	"sync"

	"egg-invaders/internal/event"

	"github.com/charmbracelet/log"
)

// DefaultSounds — звуки игры и их файлы относительно корня ассетов.
var DefaultSounds = map[string]string{
	"shoot":     "sounds/shoot.wav",
	"bang":      "sounds/bang.wav",
	"explosion": "sounds/explosion.wav",
}

// EventSounds — какой звук сопровождает игровое событие.
var EventSounds = map[event.EventType]string{
	event.RocketFired:   "shoot",
	event.InvaderKilled: "bang",
	event.ShipHit:       "explosion",
	event.ShipRammed:    "explosion",
}

// Clip — декодированный звук, готовый к проигрыванию.
type Clip interface {
	Play()
}

// Backend декодирует файл в Clip. Реализации живут в ebitenaudio и beepaudio.
type Backend interface {
	Decode(name string, data []byte) (Clip, error)
}

// Sounds — таблица звуков. Загрузка асинхронная, проигрывание по принципу
// «запустил и забыл».
type Sounds struct {
	fsys    fs.FS
	backend Backend
	logger  *log.Logger

	mu    sync.Mutex
	clips map[string]Clip
	muted bool
	wg    sync.WaitGroup
}

func NewSounds(fsys fs.FS, backend Backend, logger *log.Logger) *Sounds {
	return &Sounds{
		fsys:    fsys,
		backend: backend,
		logger:  logger,
		clips:   make(map[string]Clip),
	}
}

// LoadTable запускает загрузку всех звуков таблицы.
func (s *Sounds) LoadTable(table map[string]string) {
	for name, path := range table {
		s.LoadSound(name, path)
	}
}

// LoadSound читает и декодирует файл в фоне. Ошибка только логируется,
// звук остаётся незагруженным.
func (s *Sounds) LoadSound(name, path string) {
	if s.backend == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		clip, err := s.load(name, path)
		if err != nil {
			s.logger.Warn("sound not loaded", "name", name, "path", path, "err", err)
			return
		}
		s.mu.Lock()
		s.clips[name] = clip
		s.mu.Unlock()
		s.logger.Debug("sound loaded", "name", name)
	}()
}

func (s *Sounds) load(name, path string) (Clip, error) {
	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	clip, err := s.backend.Decode(name, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return clip, nil
}

// Wait блокируется до окончания начатых загрузок.
func (s *Sounds) Wait() {
	s.wg.Wait()
}

// Loaded сообщает, готов ли звук.
func (s *Sounds) Loaded(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.clips[name]
	return ok
}

// PlaySound ничего не делает, если звук не загружен или включена тишина.
func (s *Sounds) PlaySound(name string) {
	s.mu.Lock()
	clip, ok := s.clips[name]
	muted := s.muted
	s.mu.Unlock()
	if !ok || muted {
		return
	}
	clip.Play()
}

func (s *Sounds) SetMute(muted bool) {
	s.mu.Lock()
	s.muted = muted
	s.mu.Unlock()
}

// ToggleMute переключает тишину и возвращает новое значение.
func (s *Sounds) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return s.muted
}

func (s *Sounds) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// OnEvent проигрывает звук, привязанный к событию.
func (s *Sounds) OnEvent(e event.Event) {
	if name, ok := EventSounds[e.Type]; ok {
		s.PlaySound(name)
	}
}

// Subscribe подписывает таблицу на все события со звуком.
func (s *Sounds) Subscribe(d *event.Dispatcher) {
	for t := range EventSounds {
		d.Subscribe(t, s)
	}
}
