// internal/assets/fonts.go
package assets

import (
	"fmt"
	"io/fs"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPath — TTF-шрифт относительно корня ассетов.
const DefaultFontPath = "fonts/arial.ttf"

// Fonts отдаёт начертания нужного размера. Без TTF все размеры
// рисуются встроенным basicfont.
type Fonts struct {
	tt *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// LoadFonts читает TTF из fsys. При ошибке возвращает рабочий Fonts на
// basicfont вместе с ошибкой, чтобы вызывающий мог её залогировать.
func LoadFonts(fsys fs.FS, path string) (*Fonts, error) {
	f := &Fonts{faces: make(map[float64]font.Face)}

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return f, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return f, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	f.tt = tt
	return f, nil
}

// Face возвращает начертание размера size.
func (f *Fonts) Face(size float64) font.Face {
	if f == nil || f.tt == nil {
		return basicfont.Face7x13
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(f.tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	f.faces[size] = face
	return face
}

// Scalable сообщает, загружен ли TTF.
func (f *Fonts) Scalable() bool {
	return f != nil && f.tt != nil
}
