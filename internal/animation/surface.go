package animation

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Point 画布坐标
type Point struct {
	X, Y float64
}

// Align 文本水平对齐
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle 文本绘制参数
type TextStyle struct {
	Color colorful.Color
	Alpha float64
	Size  float64 // 字号，画布像素
	Align Align
	Bold  bool

	Glow       colorful.Color
	GlowRadius float64 // 0 表示不发光
}

// Surface 绘制目标，终端和窗口各有一个实现
// 调用顺序即绘制顺序，后画的盖住先画的
type Surface interface {
	Clear(bg colorful.Color)
	FillCircle(x, y, r float64, c colorful.Color, alpha float64)
	FillPolygon(pts []Point, c colorful.Color, alpha float64)
	Glow(x, y, radius float64, c colorful.Color, strength float64)
	DrawText(s string, x, y float64, st TextStyle)
}

// StarPoints 以 (cx, cy) 为中心、尖角朝上的星形顶点
func StarPoints(cx, cy, outer, inner float64, points int) []Point {
	pts := make([]Point, 0, points*2)
	step := math.Pi / float64(points)
	for k := 0; k < points*2; k++ {
		r := outer
		if k%2 == 1 {
			r = inner
		}
		a := float64(k) * step
		pts = append(pts, Point{X: cx + r*math.Sin(a), Y: cy - r*math.Cos(a)})
	}
	return pts
}
