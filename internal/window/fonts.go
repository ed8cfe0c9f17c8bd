package window

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts 一个字体源，按字号缓存 face
// 内置的 Go Regular 没有中文字形，需要中文时用 LoadFonts 指定字体文件
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
}

// DefaultFonts 使用内置的 Go Regular
func DefaultFonts() (*Fonts, error) {
	return newFonts(goregular.TTF)
}

// LoadFonts 从 TTF/OTF 文件加载
func LoadFonts(path string) (*Fonts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	return newFonts(data)
}

func newFonts(data []byte) (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font data: %w", err)
	}
	return &Fonts{source: source, faces: make(map[int]*text.GoTextFace)}, nil
}

// Face 返回指定字号的 face，字号按整数缓存
func (f *Fonts) Face(size float64) text.Face {
	if f == nil || size <= 0 {
		return nil
	}
	key := int(math.Round(size))
	if key < 1 {
		key = 1
	}
	face, ok := f.faces[key]
	if !ok {
		face = &text.GoTextFace{Source: f.source, Size: float64(key)}
		f.faces[key] = face
	}
	return face
}
