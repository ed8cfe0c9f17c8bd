// Package termui 用 tcell 在终端里显示动画
//
// 每个字符格显示上下两个像素：前景色画上半块 '▀'，背景色是下半块。
// 文本不参与光栅化，最后按字符格覆盖在画面上。
package termui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/AisuKyobu/christmas-particle-tree/internal/animation"
	"github.com/AisuKyobu/christmas-particle-tree/internal/raster"
)

const (
	halfBlock = '▀'

	// 发光半径（像素）换算成背景染色强度
	glowPerPixel = 0.06
	glowMax      = 0.6
)

type textRun struct {
	text  string
	x, y  float64
	style animation.TextStyle
}

var _ animation.Surface = (*Surface)(nil)

// Surface 终端绘制目标
type Surface struct {
	canvas *raster.Canvas
	texts  []textRun
	points []raster.Point
}

// NewSurface 按字符格尺寸创建，像素高度是行数的两倍
func NewSurface(cols, rows int) *Surface {
	return &Surface{canvas: raster.New(cols, rows*2)}
}

// Resize 字符格尺寸变化
func (s *Surface) Resize(cols, rows int) {
	s.canvas.Resize(cols, rows*2)
}

// PixelSize 画布像素尺寸
func (s *Surface) PixelSize() (int, int) {
	return s.canvas.W, s.canvas.H
}

func (s *Surface) Clear(bg colorful.Color) {
	s.canvas.Fill(bg)
	s.texts = s.texts[:0]
}

func (s *Surface) FillCircle(x, y, r float64, c colorful.Color, alpha float64) {
	s.canvas.FillCircle(x, y, r, c, alpha)
}

func (s *Surface) FillPolygon(pts []animation.Point, c colorful.Color, alpha float64) {
	s.points = s.points[:0]
	for _, p := range pts {
		s.points = append(s.points, raster.Point{X: p.X, Y: p.Y})
	}
	s.canvas.FillPolygon(s.points, c, alpha)
}

func (s *Surface) Glow(x, y, radius float64, c colorful.Color, strength float64) {
	s.canvas.Glow(x, y, radius, c, strength)
}

func (s *Surface) DrawText(text string, x, y float64, st animation.TextStyle) {
	s.texts = append(s.texts, textRun{text: text, x: x, y: y, style: st})
}

// Present 把画布和文本写入 tcell 屏幕（不调用 Show）
func (s *Surface) Present(screen tcell.Screen) {
	cols, rows := screen.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := s.canvas.At(cx, cy*2)
			bottom := s.canvas.At(cx, cy*2+1)
			st := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			screen.SetContent(cx, cy, halfBlock, nil, st)
		}
	}
	for _, run := range s.texts {
		s.presentText(screen, run, cols, rows)
	}
}

// cellBackground 字符格下两个像素的平均色
func (s *Surface) cellBackground(cx, cy int) colorful.Color {
	return s.canvas.At(cx, cy*2).BlendRgb(s.canvas.At(cx, cy*2+1), 0.5)
}

func (s *Surface) presentText(screen tcell.Screen, run textRun, cols, rows int) {
	cy := int(math.Floor(run.y / 2))
	if cy < 0 || cy >= rows {
		return
	}
	startX := int(math.Round(run.x))
	if run.style.Align == animation.AlignCenter {
		startX -= runewidth.StringWidth(run.text) / 2
	}

	glow := math.Min(glowMax, run.style.GlowRadius*glowPerPixel)

	cx := startX
	gr := uniseg.NewGraphemes(run.text)
	for gr.Next() {
		runes := gr.Runes()
		w := gr.Width()
		if w <= 0 {
			continue
		}
		if cx >= 0 && cx+w <= cols {
			bg := s.cellBackground(cx, cy)
			if glow > 0 {
				bg = bg.BlendRgb(run.style.Glow, glow)
			}
			fg := bg.BlendRgb(run.style.Color, run.style.Alpha)
			st := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg)).Bold(run.style.Bold)
			screen.SetContent(cx, cy, runes[0], runes[1:], st)
		}
		cx += w
		if cx >= cols {
			break
		}
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
