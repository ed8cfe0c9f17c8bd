// Package window 用 ebiten 在桌面窗口中显示动画
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/AisuKyobu/christmas-particle-tree/internal/animation"
)

// 光晕用若干同心圆叠加近似 shadowBlur
const glowRings = 8

var whitePixel *ebiten.Image

// white 三角形填充用的纯白源图，第一次绘制时创建
func white() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

var _ animation.Surface = (*Surface)(nil)

// Surface 把 animation.Surface 调用转成 ebiten 绘制
type Surface struct {
	dst   *ebiten.Image
	fonts *Fonts

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface fonts 提供文本字体
func NewSurface(fonts *Fonts) *Surface {
	return &Surface{fonts: fonts}
}

// Target 设置本帧的绘制目标
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	a := max(0, min(1, alpha))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

func (s *Surface) Clear(bg colorful.Color) {
	s.dst.Fill(nrgba(bg, 1))
}

func (s *Surface) FillCircle(x, y, r float64, c colorful.Color, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), nrgba(c, alpha), true)
}

// FillPolygon 以顶点重心为中心做扇形三角化，适用于星形这类星状多边形
func (s *Surface) FillPolygon(pts []animation.Point, c colorful.Color, alpha float64) {
	if len(pts) < 3 {
		return
	}
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	col := nrgba(c, alpha)
	cr := float32(col.R) / 255
	cg := float32(col.G) / 255
	cb := float32(col.B) / 255
	ca := float32(col.A) / 255

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	s.vertices = append(s.vertices, vertex(cx, cy))
	for _, p := range pts {
		s.vertices = append(s.vertices, vertex(p.X, p.Y))
	}
	n := uint16(len(pts))
	for i := uint16(0); i < n; i++ {
		s.indices = append(s.indices, 0, 1+i, 1+(i+1)%n)
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(s.vertices, s.indices, white(), op)
}

func (s *Surface) Glow(x, y, radius float64, c colorful.Color, strength float64) {
	if radius <= 0 || strength <= 0 {
		return
	}
	// 外圈先画，越往里叠加越亮
	per := strength / glowRings
	for i := glowRings; i >= 1; i-- {
		r := radius * float64(i) / glowRings
		s.FillCircle(x, y, r, c, per)
	}
}

func (s *Surface) DrawText(str string, x, y float64, st animation.TextStyle) {
	face := s.fonts.Face(st.Size)
	if face == nil {
		return
	}

	op := &text.DrawOptions{}
	if st.Align == animation.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	// 网页版 fillText 的 y 是基线
	baseline := face.Metrics().HAscent

	if st.GlowRadius > 0 {
		g := nrgba(st.Glow, 1)
		spread := st.GlowRadius / 6
		for _, d := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, 1}, {-1, 1}, {1, -1}} {
			gop := &text.DrawOptions{}
			gop.PrimaryAlign = op.PrimaryAlign
			gop.GeoM.Translate(x+d[0]*spread, y-baseline+d[1]*spread)
			gop.ColorScale.ScaleWithColor(g)
			gop.ColorScale.ScaleAlpha(0.18)
			text.Draw(s.dst, str, face, gop)
		}
	}

	op.GeoM.Translate(x, y-baseline)
	op.ColorScale.ScaleWithColor(nrgba(st.Color, 1))
	op.ColorScale.ScaleAlpha(float32(st.Alpha))
	text.Draw(s.dst, str, face, op)
}
