// Package raster 终端用的软件光栅化画布
//
// 像素保存为 go-colorful 的 RGB 浮点值，混合直接在像素上完成，
// 最后由终端层把上下两个像素合成一个半块字符。
package raster

import (
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Point 画布坐标
type Point struct {
	X, Y float64
}

// Canvas 一块 W×H 的像素缓冲
type Canvas struct {
	W, H int
	Pix  []colorful.Color
}

// New 创建画布
func New(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize 改变尺寸，内容清空
func (c *Canvas) Resize(w, h int) {
	w = max(w, 0)
	h = max(h, 0)
	c.W, c.H = w, h
	if cap(c.Pix) >= w*h {
		c.Pix = c.Pix[:w*h]
	} else {
		c.Pix = make([]colorful.Color, w*h)
	}
	clear(c.Pix)
}

// Fill 整块填充
func (c *Canvas) Fill(col colorful.Color) {
	for i := range c.Pix {
		c.Pix[i] = col
	}
}

// At 读取像素，越界返回黑色
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return colorful.Color{}
	}
	return c.Pix[y*c.W+x]
}

func (c *Canvas) blend(x, y int, col colorful.Color, alpha float64) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H || alpha <= 0 {
		return
	}
	i := y*c.W + x
	if alpha >= 1 {
		c.Pix[i] = col
		return
	}
	c.Pix[i] = c.Pix[i].BlendRgb(col, alpha)
}

// FillCircle 以 alpha 混合填充圆
// 半径太小覆盖不到任何像素中心时，按面积比例淡淡地点亮圆心所在像素
func (c *Canvas) FillCircle(cx, cy, r float64, col colorful.Color, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	r2 := r * r

	hit := false
	for y := max(y0, 0); y <= min(y1, c.H-1); y++ {
		dy := float64(y) + 0.5 - cy
		for x := max(x0, 0); x <= min(x1, c.W-1); x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				c.blend(x, y, col, alpha)
				hit = true
			}
		}
	}
	if !hit {
		coverage := math.Min(1, math.Pi*r2)
		c.blend(int(math.Floor(cx)), int(math.Floor(cy)), col, alpha*coverage)
	}
}

// Glow 径向光晕，强度随距离平方衰减
func (c *Canvas) Glow(cx, cy, radius float64, col colorful.Color, strength float64) {
	if radius <= 0 || strength <= 0 {
		return
	}
	for y := max(int(cy-radius), 0); y <= min(int(cy+radius), c.H-1); y++ {
		dy := float64(y) + 0.5 - cy
		for x := max(int(cx-radius), 0); x <= min(int(cx+radius), c.W-1); x++ {
			dx := float64(x) + 0.5 - cx
			d := math.Sqrt(dx*dx+dy*dy) / radius
			if d >= 1 {
				continue
			}
			f := 1 - d
			c.blend(x, y, col, strength*f*f)
		}
	}
}

// FillPolygon 扫描线填充（奇偶规则）
func (c *Canvas) FillPolygon(pts []Point, col colorful.Color, alpha float64) {
	if len(pts) < 3 || alpha <= 0 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	var xs []float64
	for y := max(int(math.Floor(minY)), 0); y <= min(int(math.Ceil(maxY)), c.H-1); y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if (a.Y <= sy) == (b.Y <= sy) {
				continue
			}
			xs = append(xs, a.X+(sy-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			start := max(int(math.Ceil(xs[i]-0.5)), 0)
			end := min(int(math.Floor(xs[i+1]-0.5)), c.W-1)
			for x := start; x <= end; x++ {
				c.blend(x, y, col, alpha)
			}
		}
	}
}
