// internal/assets/sprite_manager.go
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultSprites — таблица логических имён спрайтов и файлов относительно
// корня ассетов.
var DefaultSprites = map[string]string{
	"logo":          "images/egg-logo.png",
	"birdUp":        "images/birdUp.png",
	"birdMid":       "images/birdMid.png",
	"birdDown":      "images/birdDown.png",
	"invader":       "images/egg.png",
	"invaderKilled": "images/friedegg.png",
	"bomb":          "images/bomb.png",
	"rocket":        "images/startup.png",
	"bonus":         "images/bonus.png",
}

// SpriteManager асинхронно загружает картинки и отдаёт их по имени.
// Картинка, которая не загрузилась, просто остаётся незаданной.
type SpriteManager struct {
	fsys   fs.FS
	logger *log.Logger

	mu      sync.Mutex
	decoded map[string]image.Image
	wg      sync.WaitGroup
}

// NewSpriteManager создает менеджер, читающий файлы из fsys.
func NewSpriteManager(fsys fs.FS, logger *log.Logger) *SpriteManager {
	return &SpriteManager{
		fsys:    fsys,
		logger:  logger,
		decoded: make(map[string]image.Image),
	}
}

// LoadTable запускает загрузку всех спрайтов таблицы.
func (m *SpriteManager) LoadTable(table map[string]string) {
	for name, path := range table {
		m.Load(name, path)
	}
}

// Load запускает загрузку и сразу возвращается.
func (m *SpriteManager) Load(name, path string) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		img, err := m.decode(path)
		if err != nil {
			m.logger.Warn("sprite not loaded", "name", name, "path", path, "err", err)
			return
		}
		m.mu.Lock()
		m.decoded[name] = img
		m.mu.Unlock()
		m.logger.Debug("sprite loaded", "name", name, "path", path)
	}()
}

func (m *SpriteManager) decode(path string) (image.Image, error) {
	f, err := m.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Wait блокируется до окончания всех начатых загрузок.
func (m *SpriteManager) Wait() {
	m.wg.Wait()
}

// Image возвращает декодированную картинку. ok == false, пока загрузка
// не закончилась или если она не удалась.
func (m *SpriteManager) Image(name string) (image.Image, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	img, ok := m.decoded[name]
	return img, ok
}
